package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Array3D is a view of a stack of dense matrices sharing one flat storage.
Within a layer the storage is column major, index = i + j*rows, and layers
are stacked contiguously with stride rows*cols.
*/
type Array3D struct {
	Shape   [3]int // rows, cols, layers
	Strides [3]int
	DataP   []float64
}

func NewArray3D(rows, cols, layers int, dataO ...[]float64) (A Array3D) {
	if rows < 1 || cols < 1 || layers < 1 {
		err := fmt.Errorf("invalid dimensions: NewArray3D rows,cols,layers = %v,%v,%v\n", rows, cols, layers)
		panic(err)
	}
	var (
		size = rows * cols * layers
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != size {
			err := fmt.Errorf("mismatch in allocation: NewArray3D rows,cols,layers = %v,%v,%v, len(data[0]) = %v\n",
				rows, cols, layers, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, size)
	}
	A = Array3D{
		Shape:   [3]int{rows, cols, layers},
		Strides: [3]int{1, rows, rows * cols},
		DataP:   data,
	}
	return
}

// NewArray3DFromMatrices copies equally sized matrices into consecutive layers
func NewArray3DFromMatrices(layers ...mat.Matrix) (A Array3D) {
	if len(layers) == 0 {
		panic("NewArray3DFromMatrices requires at least one layer")
	}
	var (
		rows, cols = layers[0].Dims()
	)
	A = NewArray3D(rows, cols, len(layers))
	for k, M := range layers {
		if nr, nc := M.Dims(); nr != rows || nc != cols {
			err := fmt.Errorf("layer %d has dimensions %v,%v, expected %v,%v", k, nr, nc, rows, cols)
			panic(err)
		}
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				A.DataP[A.Index(i, j, k)] = M.At(i, j)
			}
		}
	}
	return
}

func (a Array3D) Dims() (rows, cols, layers int) {
	return a.Shape[0], a.Shape[1], a.Shape[2]
}

func (a Array3D) Len() int { return len(a.DataP) }

func (a Array3D) LayerStride() int { return a.Strides[2] }

func (a Array3D) Index(i, j, k int) int {
	if i < 0 || i >= a.Shape[0] || j < 0 || j >= a.Shape[1] || k < 0 || k >= a.Shape[2] {
		err := fmt.Errorf("index out of bounds: i,j,k = %v,%v,%v, dims = %v", i, j, k, a.Shape)
		panic(err)
	}
	return i*a.Strides[0] + j*a.Strides[1] + k*a.Strides[2]
}

func (a Array3D) At(i, j, k int) float64 { return a.DataP[a.Index(i, j, k)] }

func (a Array3D) Set(i, j, k int, val float64) { a.DataP[a.Index(i, j, k)] = val }

// Layer returns the storage of layer k, not a copy
func (a Array3D) Layer(k int) []float64 {
	if k < 0 || k >= a.Shape[2] {
		panic(fmt.Errorf("layer out of bounds: k = %v, layers = %v", k, a.Shape[2]))
	}
	return a.DataP[k*a.Strides[2] : (k+1)*a.Strides[2]]
}

func (a Array3D) LayerMatrix(k int) mat.Matrix {
	// Column major rows x cols is row major cols x rows, transposed
	return mat.NewDense(a.Shape[1], a.Shape[0], a.Layer(k)).T()
}

