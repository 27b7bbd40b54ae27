package interp2d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestCellWeights(t *testing.T) {
	var (
		rows, cols = 5, 7
		rng        = rand.New(rand.NewSource(1))
	)
	check := func(s, tt float64) {
		c, ok := NewCell(s, tt, rows, cols)
		require.True(t, ok, "s, t = %v, %v", s, tt)
		require.Equal(t, 4, c.N)
		for k := 0; k < c.N; k++ {
			assert.GreaterOrEqual(t, c.Weight[k], -1.e-15)
			assert.LessOrEqual(t, c.Weight[k], 1+1.e-15)
			assert.True(t, c.Index[k] >= 0 && c.Index[k] < rows*cols)
		}
		assert.InDelta(t, 1., floats.Sum(c.Weight[:c.N]), 1.e-14)
	}
	for i := 0; i < 1000; i++ {
		check(1+rng.Float64()*float64(cols-1), 1+rng.Float64()*float64(rows-1))
	}
	// Edges and corners of the closed domain
	for _, st := range [][2]float64{
		{1, 1}, {float64(cols), 1}, {1, float64(rows)}, {float64(cols), float64(rows)},
		{float64(cols), 2.5}, {3.25, float64(rows)},
	} {
		check(st[0], st[1])
	}
}

func TestCellBounds(t *testing.T) {
	var (
		rows, cols = 3, 4
	)
	for _, st := range [][2]float64{
		{0.999, 1}, {1, 0.999}, {4.0001, 2}, {2, 3.0001}, {-1, -1},
		{math.NaN(), 2}, {2, math.NaN()}, {math.Inf(1), 2}, {2, math.Inf(-1)},
	} {
		_, ok := NewCell(st[0], st[1], rows, cols)
		assert.False(t, ok, "s, t = %v, %v", st[0], st[1])
	}
}

func TestCellLastColumnAndRow(t *testing.T) {
	var (
		rows, cols = 2, 2
	)
	// Last column resolves to the last valid cell with a full column offset
	c, ok := NewCell(2, 1, rows, cols)
	require.True(t, ok)
	assert.Equal(t, [4]int{0, 1, 2, 3}, c.Index)
	assert.Equal(t, [4]float64{0, 0, 1, 0}, c.Weight)
	// Last row
	c, ok = NewCell(1, 2, rows, cols)
	require.True(t, ok)
	assert.Equal(t, [4]int{0, 1, 2, 3}, c.Index)
	assert.Equal(t, [4]float64{0, 1, 0, 0}, c.Weight)
	// Far corner
	c, ok = NewCell(2, 2, rows, cols)
	require.True(t, ok)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, c.Weight)
}

func TestCellDegenerateAxes(t *testing.T) {
	// A single column: every corner read stays inside the layer
	layer := []float64{10, 20, 30}
	c, ok := NewCell(1, 1.5, 3, 1)
	require.True(t, ok)
	assert.Equal(t, 2, c.N)
	assert.InDelta(t, 15., c.Eval(layer), 1.e-12)
	c, _ = NewCell(1, 3, 3, 1)
	assert.InDelta(t, 30., c.Eval(layer), 1.e-12)
	// A single row
	c, ok = NewCell(2.25, 1, 1, 3)
	require.True(t, ok)
	assert.InDelta(t, 22.5, c.Eval(layer), 1.e-12)
	c, _ = NewCell(1, 1, 1, 3)
	assert.InDelta(t, 10., c.Eval(layer), 1.e-12)
	c, _ = NewCell(3, 1, 1, 3)
	assert.InDelta(t, 30., c.Eval(layer), 1.e-12)
	// A single sample
	c, ok = NewCell(1, 1, 1, 1)
	require.True(t, ok)
	assert.Equal(t, 7., c.Eval([]float64{7}))
}
