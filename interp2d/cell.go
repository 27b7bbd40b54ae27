/*
Package interp2d implements bilinear interpolation of regularly sampled grids
at arbitrary 1-based coordinates. A grid may hold a stack of layers, in which
case the interpolation coefficients of a query point are computed once and
applied to every layer, as when an image and its gradients are sampled at the
same positions.
*/
package interp2d

import (
	"math"
)

/*
Cell holds the grid corners enclosing one query point and their bilinear
weights. Index is the 0-based column major offset of a corner within a
layer. Only the first N entries are used.
*/
type Cell struct {
	Index  [4]int
	Weight [4]float64
	N      int
}

/*
NewCell resolves the cell enclosing (s, t) on a rows x cols layer, where s is
the column coordinate and t the row coordinate, both 1-based.

The valid domain is the closed interval [1, cols] x [1, rows]; ok is false
outside of it, and for NaN coordinates. A query on the last column or the
last row is shifted back into the last cell with a fractional offset of one,
so it never addresses samples past the grid edge.
*/
func NewCell(s, t float64, rows, cols int) (c Cell, ok bool) {
	if !(s >= 1 && s <= float64(cols) && t >= 1 && t <= float64(rows)) {
		return
	}
	var (
		fs, ft = math.Floor(s), math.Floor(t)
		ndx    = int(ft) + (int(fs)-1)*rows
	)
	if s == float64(cols) {
		s++
		ndx -= rows
	}
	s -= fs
	if t == float64(rows) {
		t++
		ndx--
	}
	t -= ft
	var (
		in1, in2 = ndx - 1, ndx
		in4      = ndx + rows
		in3      = in4 - 1
		m4       = t * s
		m1       = 1 + m4 - t - s
		m2       = t - m4
		m3       = s - m4
		size     = rows * cols
	)
	// With a single row or column the shifted cell reaches outside the
	// layer, only through corners of zero weight
	for k, ind := range [4]int{in1, in2, in3, in4} {
		if ind < 0 || ind >= size {
			continue
		}
		c.Index[c.N] = ind
		c.Weight[c.N] = [4]float64{m1, m2, m3, m4}[k]
		c.N++
	}
	ok = true
	return
}

// Eval blends the cell corners of one layer
func (c *Cell) Eval(layer []float64) (f float64) {
	for k := 0; k < c.N; k++ {
		f += layer[c.Index[k]] * c.Weight[k]
	}
	return
}
