/*
Package gateway adapts host numeric arrays to the interpolation kernel.

	Output_images = interp2(Input_images, X, Y)

interpolates the 2D image, or the stack of images, Input_images at the
points X, Y. The images are defined at the regularly spaced points 1:N, 1:M
where [M, N] = size(Input_images); points outside of them give NaN. The
output takes the shape of X, with a third dimension when the input is a
stack.
*/
package gateway

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gointerp/interp2d"
	"github.com/notargets/gointerp/utils"
)

const Usage = "Output_images = interp2(Input_images, X, Y)"

var ErrUsage = errors.New("usage error")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s, usage: %s", ErrUsage, fmt.Sprintf(format, args...), Usage)
}

// Gateway dispatches host calls to the kernel, in parallel when
// ParallelDegree is larger than one
type Gateway struct {
	ParallelDegree int
}

/*
Call validates the host arguments prhs = (Z, X, Y), allocates the output and
runs the interpolation. nlhs is the number of outputs requested by the host.
*/
func (g *Gateway) Call(nlhs int, prhs ...*Array) (plhs []*Array, err error) {
	if nlhs > 1 {
		err = usageError("wrong number of output parameters")
		return
	}
	if len(prhs) != 3 {
		err = usageError("wrong number of input parameters")
		return
	}
	var (
		Z, S, T = prhs[0], prhs[1], prhs[2]
	)
	for _, a := range prhs {
		if a == nil {
			err = usageError("input arguments must be double, have none")
			return
		}
		if !a.IsDouble() {
			err = usageError("input arguments must be double, have %s", a.Class.Name())
			return
		}
	}
	for _, a := range prhs {
		if a.NumberOfDimensions() < 2 {
			err = usageError("input arguments must have at least two dimensions, have %d", a.NumberOfDimensions())
			return
		}
	}
	if S.NumberOfDimensions() != T.NumberOfDimensions() ||
		S.NumberOfElements() != T.NumberOfElements() {
		err = usageError("inputs X, Y must have the same size")
		return
	}
	ndim := Z.NumberOfDimensions()
	if ndim > 3 {
		err = usageError("input images must have two or three dimensions, have %d", ndim)
		return
	}
	for _, a := range prhs {
		if len(a.Real) != a.NumberOfElements() {
			err = usageError("array of size %v holds %d values", a.Dims, len(a.Real))
			return
		}
	}
	var (
		M, N    = S.M(), S.N()
		newDims = []int{M, N}
		layers  = 1
	)
	if ndim > 2 {
		layers = Z.Dims[2]
		newDims = append(newDims, layers)
	}
	out := NewDouble(newDims)
	plhs = []*Array{out}
	if M*N == 0 || Z.NumberOfElements() == 0 {
		// Nothing to sample, or nothing to sample from
		for i := range out.Real {
			out.Real[i] = math.NaN()
		}
		return
	}
	var (
		grid = utils.NewArray3D(Z.Dims[0], Z.Dims[1], layers, Z.Real)
		F    = utils.NewArray3D(M, N, layers, out.Real)
	)
	interp2d.BilinearParallel(grid, S.Real, T.Real, F, g.ParallelDegree)
	return
}

// Call runs a serial gateway
func Call(nlhs int, prhs ...*Array) ([]*Array, error) {
	g := &Gateway{}
	return g.Call(nlhs, prhs...)
}
