package np

import (
	"fmt"
	"strings"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// NDArray is a NumPy-compatible wrapper over an immutable tensor. The
// underlying buffer is never mutated after construction: every operation
// returns a new NDArray, and accessors hand out copies.
type NDArray struct {
	raw *tensor.RawTensor
}

func wrap(raw *tensor.RawTensor) *NDArray {
	return &NDArray{raw: raw}
}

// Raw returns the underlying tensor. Callers must treat it as read-only.
func (a *NDArray) Raw() *tensor.RawTensor {
	return a.raw
}

// Shape returns a copy of the array's shape.
func (a *NDArray) Shape() tensor.Shape {
	return a.raw.Shape().Clone()
}

// NDim returns the number of dimensions.
func (a *NDArray) NDim() int {
	return len(a.raw.Shape())
}

// Size returns the total number of elements.
func (a *NDArray) Size() int {
	return a.raw.NumElements()
}

// DType returns the array's data type.
func (a *NDArray) DType() DataType {
	return a.raw.DType()
}

// AsType returns a copy of the array cast to the given dtype.
func (a *NDArray) AsType(dtype DataType) *NDArray {
	return wrap(backend.Cast(a.raw, dtype))
}

// Reshape returns a view of the array with a new shape. The element count
// must be unchanged.
func (a *NDArray) Reshape(shape ...int) *NDArray {
	return wrap(backend.Reshape(a.raw, tensor.Shape(shape)))
}

// Transpose returns the array with permuted dimensions. With no axes, all
// dimensions are reversed.
func (a *NDArray) Transpose(axes ...int) *NDArray {
	return wrap(backend.Transpose(a.raw, axes...))
}

// T is the 2D transpose shortcut.
// Panics if the array is not 2D.
func (a *NDArray) T() *NDArray {
	if a.NDim() != 2 {
		panic("T() only works for 2D arrays")
	}
	return a.Transpose(1, 0)
}

// Ravel returns the array flattened to 1D.
func (a *NDArray) Ravel() *NDArray {
	return wrap(backend.Reshape(a.raw, tensor.Shape{a.Size()}))
}

// Item returns the value of a 0-d (scalar) array as a Go value.
// Panics if the array is not a scalar.
func (a *NDArray) Item() any {
	if a.NDim() != 0 {
		panic(fmt.Sprintf("Item() only works for scalar arrays, got shape %v", a.raw.Shape()))
	}
	switch a.DType() {
	case Float32:
		return a.raw.AsFloat32()[0]
	case Float64:
		return a.raw.AsFloat64()[0]
	case Int32:
		return a.raw.AsInt32()[0]
	case Int64:
		return a.raw.AsInt64()[0]
	case Uint8:
		return a.raw.AsUint8()[0]
	case Bool:
		return a.raw.AsBool()[0]
	default:
		panic("unsupported dtype")
	}
}

// Float64s returns the elements converted to float64, in row-major order.
// The returned slice is a copy.
func (a *NDArray) Float64s() []float64 {
	if a.DType() == Float64 {
		return append([]float64(nil), a.raw.AsFloat64()...)
	}
	converted := backend.Cast(a.raw, Float64)
	return append([]float64(nil), converted.AsFloat64()...)
}

// Int64s returns the elements converted to int64, in row-major order.
// The returned slice is a copy.
func (a *NDArray) Int64s() []int64 {
	if a.DType() == Int64 {
		return append([]int64(nil), a.raw.AsInt64()...)
	}
	converted := backend.Cast(a.raw, Int64)
	return append([]int64(nil), converted.AsInt64()...)
}

// Bools returns the elements of a Bool array as a copied slice.
// Panics if the dtype is not Bool.
func (a *NDArray) Bools() []bool {
	return append([]bool(nil), a.raw.AsBool()...)
}

// String returns a compact representation with shape and dtype.
func (a *NDArray) String() string {
	const maxShown = 8

	var data string
	switch {
	case a.Size() <= maxShown && a.DType() == Bool:
		data = fmt.Sprintf("%v", a.Bools())
	case a.Size() <= maxShown:
		vals := a.Float64s()
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = fmt.Sprintf("%g", v)
		}
		data = "[" + strings.Join(parts, " ") + "]"
	default:
		data = "..."
	}

	return fmt.Sprintf("ndarray(%s, shape=%v, dtype=%s)", data, a.raw.Shape(), a.DType())
}
