package np

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/tensor"
)

func TestNDArray_Metadata(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, a.Shape())
	assert.Equal(t, 2, a.NDim())
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, Float64, a.DType())
}

func TestNDArray_ShapeIsACopy(t *testing.T) {
	a := Zeros(Float64, 2, 3)
	shape := a.Shape()
	shape[0] = 99

	assert.Equal(t, tensor.Shape{2, 3}, a.Shape(), "mutating the returned shape must not affect the array")
}

func TestNDArray_AsType(t *testing.T) {
	a, err := FromSlice([]float64{1.9, -1.9, 3})
	require.NoError(t, err)

	b := a.AsType(Int32)
	assert.Equal(t, Int32, b.DType())
	assert.Equal(t, []int64{1, -1, 3}, b.Int64s())

	// Source is unchanged.
	assert.Equal(t, []float64{1.9, -1.9, 3}, a.Float64s())
}

func TestNDArray_ReshapeTranspose(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	b := a.Reshape(3, 2)
	assert.Equal(t, tensor.Shape{3, 2}, b.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, b.Float64s())

	c := a.T()
	assert.Equal(t, tensor.Shape{3, 2}, c.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, c.Float64s())

	assert.Panics(t, func() { Zeros(Float64, 3).T() }, "T() requires a 2D array")
}

func TestNDArray_Ravel(t *testing.T) {
	a := Zeros(Float64, 2, 3, 4)
	flat := a.Ravel()
	assert.Equal(t, tensor.Shape{24}, flat.Shape())
}

func TestNDArray_Item(t *testing.T) {
	s, err := Asarray(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, s.Item())

	i, err := Asarray(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), i.Item())

	b, err := Asarray(true)
	require.NoError(t, err)
	assert.Equal(t, true, b.Item())

	vec := Zeros(Float64, 3)
	assert.Panics(t, func() { vec.Item() }, "Item() requires a scalar array")
}

func TestNDArray_AccessorsReturnCopies(t *testing.T) {
	a, err := FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)

	vals := a.Float64s()
	vals[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, a.Float64s(), "mutating the returned slice must not affect the array")
}

func TestNDArray_String(t *testing.T) {
	a, err := FromSlice([]float64{1, 2.5})
	require.NoError(t, err)
	assert.Equal(t, "ndarray([1 2.5], shape=[2], dtype=float64)", a.String())

	big := Zeros(Float32, 100)
	assert.Contains(t, big.String(), "...")
	assert.Contains(t, big.String(), "dtype=float32")
}
