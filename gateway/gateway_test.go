package gateway

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayUsageErrors(t *testing.T) {
	var (
		Z = NewDouble([]int{2, 2}, []float64{1, 3, 2, 4})
		S = NewDouble([]int{1, 2}, []float64{1, 2})
		T = NewDouble([]int{1, 2}, []float64{1, 2})
	)
	testCases := []struct {
		name    string
		nlhs    int
		prhs    []*Array
		message string
	}{
		{"two outputs", 2, []*Array{Z, S, T}, "wrong number of output parameters"},
		{"two inputs", 1, []*Array{Z, S}, "wrong number of input parameters"},
		{"four inputs", 1, []*Array{Z, S, T, T}, "wrong number of input parameters"},
		{"single grid", 1, []*Array{{Class: SingleClass, Dims: []int{2, 2}, Real: Z.Real}, S, T},
			"input arguments must be double, have single"},
		{"int coordinates", 1, []*Array{Z, S, {Class: Int32Class, Dims: []int{1, 2}, Real: T.Real}},
			"input arguments must be double, have int32"},
		{"nil input", 1, []*Array{Z, nil, T}, "input arguments must be double"},
		{"vector grid", 1, []*Array{{Class: DoubleClass, Dims: []int{4}, Real: make([]float64, 4)}, S, T},
			"at least two dimensions, have 1"},
		{"scalar coordinates", 1, []*Array{Z, {Class: DoubleClass, Real: []float64{1}}, T},
			"at least two dimensions, have 0"},
		{"count mismatch", 1, []*Array{Z, S, NewDouble([]int{1, 3})}, "inputs X, Y must have the same size"},
		{"rank mismatch", 1, []*Array{Z, S, NewDouble([]int{1, 2, 1})}, "inputs X, Y must have the same size"},
		{"four dimensional grid", 1, []*Array{NewDouble([]int{2, 2, 1, 1}), S, T}, "two or three dimensions"},
		{"short storage", 1, []*Array{NewDouble([]int{2, 2}, []float64{1}), S, T}, "holds 1 values"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plhs, err := Call(tc.nlhs, tc.prhs...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, err.Error(), tc.message)
			assert.Contains(t, err.Error(), Usage)
			assert.Nil(t, plhs)
		})
	}
}

func TestGatewayCall(t *testing.T) {
	var (
		Z = NewDouble([]int{2, 2}, []float64{1, 3, 2, 4})
		S = NewDouble([]int{2, 3}, []float64{1, 2, 1.5, 0.5, 2, 1})
		T = NewDouble([]int{2, 3}, []float64{1, 2, 1.5, 1, 1, 2})
	)
	for _, nlhs := range []int{0, 1} {
		plhs, err := Call(nlhs, Z, S, T)
		require.NoError(t, err)
		require.Len(t, plhs, 1)
		F := plhs[0]
		assert.Equal(t, []int{2, 3}, F.Dims)
		assert.True(t, F.IsDouble())
		assert.Equal(t, []float64{1, 4, 2.5}, F.Real[:3])
		assert.True(t, math.IsNaN(F.Real[3]))
		assert.Equal(t, []float64{2, 3}, F.Real[4:])
	}
}

func TestGatewayStack(t *testing.T) {
	// Layers of a stack share the query coordinates
	var (
		Z = NewDouble([]int{2, 2, 3}, []float64{
			1, 3, 2, 4,
			10, 30, 20, 40,
			-1, -3, -2, -4,
		})
		S = NewDouble([]int{4, 1}, []float64{1, 2, 1.5, 3})
		T = NewDouble([]int{4, 1}, []float64{1, 1, 1.5, 1})
		g = &Gateway{ParallelDegree: 2}
	)
	plhs, err := g.Call(1, Z, S, T)
	require.NoError(t, err)
	F := plhs[0]
	assert.Equal(t, []int{4, 1, 3}, F.Dims)
	for i, scale := range []float64{1, 10, -1} {
		f := F.Real[4*i : 4*(i+1)]
		assert.Equal(t, []float64{scale, 2 * scale, 2.5 * scale}, f[:3])
		assert.True(t, math.IsNaN(f[3]))
	}
}

func TestGatewayShapes(t *testing.T) {
	// N collapses every coordinate dimension past the first
	var (
		Z = NewDouble([]int{3, 3, 2})
		S = NewDouble([]int{2, 2, 2})
		T = NewDouble([]int{2, 2, 2})
	)
	plhs, err := Call(1, Z, S, T)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 2}, plhs[0].Dims)
	assert.Len(t, plhs[0].Real, 16)
	// Empty coordinates give an empty output
	plhs, err = Call(1, Z, NewDouble([]int{0, 0}), NewDouble([]int{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2}, plhs[0].Dims)
	assert.Empty(t, plhs[0].Real)
	// Vectors are two dimensional arrays
	v := NewDouble([]int{5})
	assert.Equal(t, []int{5, 1}, v.Dims)
	assert.Equal(t, 5, v.M())
	assert.Equal(t, 1, v.N())
	assert.Equal(t, "double", DoubleClass.Name())
	assert.Equal(t, "int32", Int32Class.Name())
}
