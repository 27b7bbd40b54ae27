package interp2d

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"

	"github.com/notargets/gointerp/utils"
)

/*
Operator is the bilinear interpolation of one query set written as a sparse
Q x (rows*cols) matrix W, so that a layer z interpolates to W*z. Each row
holds the non zero corner weights of its query; queries outside the grid
have an empty row.

Building the operator pays the coefficient computation once for any number
of grids sampled at the same points, and gives access to the adjoint W^T.
*/
type Operator struct {
	Rows, Cols int
	W          *sparse.CSR
	outside    []bool
}

func NewOperator(rows, cols int, S, T []float64) (op *Operator) {
	if len(S) != len(T) {
		panic(fmt.Errorf("coordinate lengths differ: len(S) = %v, len(T) = %v", len(S), len(T)))
	}
	var (
		Q   = len(S)
		dok = sparse.NewDOK(Q, rows*cols)
	)
	op = &Operator{
		Rows:    rows,
		Cols:    cols,
		outside: make([]bool, Q),
	}
	for n := 0; n < Q; n++ {
		c, ok := NewCell(S[n], T[n], rows, cols)
		if !ok {
			op.outside[n] = true
			continue
		}
		for k := 0; k < c.N; k++ {
			if c.Weight[k] == 0 {
				continue
			}
			// Corners coincide on a single row grid
			dok.Set(n, c.Index[k], dok.At(n, c.Index[k])+c.Weight[k])
		}
	}
	op.W = dok.ToCSR()
	return
}

// Dims returns the number of queries and the number of samples per layer
func (op *Operator) Dims() (Q, size int) { return op.W.Dims() }

func (op *Operator) NumQueries() int { return len(op.outside) }

func (op *Operator) Outside(n int) bool { return op.outside[n] }

// Apply interpolates every layer of Z into F, NaN for queries outside the grid
func (op *Operator) Apply(Z utils.Array3D, F utils.Array3D) {
	var (
		rows, cols, layers = Z.Dims()
		_, _, fLayers      = F.Dims()
		nan                = math.NaN()
	)
	switch {
	case rows != op.Rows || cols != op.Cols:
		panic(fmt.Errorf("grid is %v x %v, operator built for %v x %v", rows, cols, op.Rows, op.Cols))
	case F.LayerStride() != op.NumQueries() || fLayers != layers:
		panic(fmt.Errorf("output dimensions %v do not match %v queries, %v layers", F.Shape, op.NumQueries(), layers))
	}
	for i := 0; i < layers; i++ {
		f := F.Layer(i)
		op.mulVec(f, Z.Layer(i))
		for n, out := range op.outside {
			if out {
				f[n] = nan
			}
		}
	}
}

/*
ApplyTranspose scatters the query values of every layer of F back onto the
grid, Z = W^T * F per layer. Queries outside the grid contribute nothing.
*/
func (op *Operator) ApplyTranspose(F utils.Array3D, Z utils.Array3D) {
	var (
		rows, cols, layers = Z.Dims()
		_, _, fLayers      = F.Dims()
	)
	switch {
	case rows != op.Rows || cols != op.Cols:
		panic(fmt.Errorf("grid is %v x %v, operator built for %v x %v", rows, cols, op.Rows, op.Cols))
	case F.LayerStride() != op.NumQueries() || fLayers != layers:
		panic(fmt.Errorf("input dimensions %v do not match %v queries, %v layers", F.Shape, op.NumQueries(), layers))
	}
	for i := 0; i < layers; i++ {
		op.mulVecTrans(Z.Layer(i), F.Layer(i))
	}
}

func (op *Operator) mulVec(dst, x []float64) {
	var (
		raw = op.W.RawMatrix()
	)
	for n := range op.outside {
		var sum float64
		for ii := raw.Indptr[n]; ii < raw.Indptr[n+1]; ii++ {
			sum += raw.Data[ii] * x[raw.Ind[ii]]
		}
		dst[n] = sum
	}
}

func (op *Operator) mulVecTrans(dst, x []float64) {
	var (
		raw = op.W.RawMatrix()
	)
	for j := range dst {
		dst[j] = 0
	}
	for n := range op.outside {
		if op.outside[n] {
			continue
		}
		for ii := raw.Indptr[n]; ii < raw.Indptr[n+1]; ii++ {
			dst[raw.Ind[ii]] += raw.Data[ii] * x[n]
		}
	}
}
