package np

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinfo(t *testing.T) {
	f32 := Finfo(Float32)
	assert.Equal(t, Float32, f32.Dtype)
	assert.Equal(t, 32, f32.Bits)
	assert.Equal(t, float64(math.MaxFloat32), f32.Max)
	assert.Equal(t, -float64(math.MaxFloat32), f32.Min)
	assert.Equal(t, 0x1p-23, f32.Eps)
	assert.Equal(t, 0x1p-126, f32.Tiny)

	f64 := Finfo(Float64)
	assert.Equal(t, 64, f64.Bits)
	assert.Equal(t, math.MaxFloat64, f64.Max)
	assert.Equal(t, 0x1p-52, f64.Eps)
	assert.Equal(t, 0x1p-1022, f64.Tiny)

	assert.Panics(t, func() { Finfo(Int32) }, "finfo requires a float dtype")
}

func TestIinfo(t *testing.T) {
	u8 := Iinfo(Uint8)
	assert.Equal(t, int64(0), u8.Min)
	assert.Equal(t, int64(255), u8.Max)

	i32 := Iinfo(Int32)
	assert.Equal(t, int64(math.MinInt32), i32.Min)
	assert.Equal(t, int64(math.MaxInt32), i32.Max)

	i64 := Iinfo(Int64)
	assert.Equal(t, int64(math.MinInt64), i64.Min)
	assert.Equal(t, int64(math.MaxInt64), i64.Max)

	assert.Panics(t, func() { Iinfo(Float64) }, "iinfo requires an integer dtype")
}

func TestResultType(t *testing.T) {
	a := Zeros(Int32, 2)
	f := Zeros(Float32, 2)

	t.Run("StrongOperands", func(t *testing.T) {
		assert.Equal(t, Float64, ResultType(a, f), "int32 and float32 promote to float64")
		assert.Equal(t, Int64, ResultType(Int32, Int64))
		assert.Equal(t, Float32, ResultType(Uint8, Float32))
	})

	t.Run("WeakScalarsAlone", func(t *testing.T) {
		assert.Equal(t, Int64, ResultType(3))
		assert.Equal(t, Float64, ResultType(3.0))
		assert.Equal(t, Bool, ResultType(true))
		assert.Equal(t, Float64, ResultType(3, 3.0), "float scalar wins over int scalar")
	})

	t.Run("WeakScalarsDoNotWidenArrays", func(t *testing.T) {
		// An int scalar leaves int and float results alone.
		assert.Equal(t, Int32, ResultType(a, 3))
		assert.Equal(t, Float32, ResultType(f, 3))

		// A float scalar widens integers to float64 but not floats.
		assert.Equal(t, Float64, ResultType(a, 3.0))
		assert.Equal(t, Float32, ResultType(f, 3.0))

		// An int scalar widens bool to int64.
		assert.Equal(t, Int64, ResultType(Bool, 3))
	})

	t.Run("Errors", func(t *testing.T) {
		assert.Panics(t, func() { ResultType() }, "no operands")
		assert.Panics(t, func() { ResultType("nope") }, "unsupported operand")
	})
}

func TestAxis(t *testing.T) {
	ax := Axis(-1)
	require.NotNil(t, ax)
	assert.Equal(t, -1, *ax)
}
