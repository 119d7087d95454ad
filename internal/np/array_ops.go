package np

import (
	"fmt"
	"math"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Array construction and manipulation, plus the named reductions the
// namespace exposes (Amax, Amin, Around, Sum, Mean, Argmax, Argmin).

// Zeros creates an array of the given dtype filled with zeros.
func Zeros(dtype DataType, shape ...int) *NDArray {
	raw, err := tensor.NewRaw(tensor.Shape(shape), dtype, backend.Device())
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	// Buffers are allocated zero-initialized.
	return wrap(raw)
}

// Ones creates an array of the given dtype filled with ones.
func Ones(dtype DataType, shape ...int) *NDArray {
	return Full(dtype, 1, shape...)
}

// Full creates an array filled with value, converted to dtype.
func Full(dtype DataType, value float64, shape ...int) *NDArray {
	a := Zeros(dtype, shape...)
	fill(a.raw, value)
	return a
}

func fill(raw *tensor.RawTensor, value float64) {
	switch raw.DType() {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = float32(value)
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = value
		}
	case Int32:
		data := raw.AsInt32()
		for i := range data {
			data[i] = int32(value)
		}
	case Int64:
		data := raw.AsInt64()
		for i := range data {
			data[i] = int64(value)
		}
	case Uint8:
		data := raw.AsUint8()
		for i := range data {
			data[i] = uint8(value)
		}
	case Bool:
		data := raw.AsBool()
		for i := range data {
			data[i] = value != 0
		}
	default:
		panic("unsupported dtype")
	}
}

// Eye creates an n×n identity matrix of the given dtype.
func Eye(n int, dtype DataType) *NDArray {
	a := Zeros(dtype, n, n)
	for i := 0; i < n; i++ {
		setFlat(a.raw, i*n+i, 1)
	}
	return a
}

func setFlat(raw *tensor.RawTensor, idx int, value float64) {
	switch raw.DType() {
	case Float32:
		raw.AsFloat32()[idx] = float32(value)
	case Float64:
		raw.AsFloat64()[idx] = value
	case Int32:
		raw.AsInt32()[idx] = int32(value)
	case Int64:
		raw.AsInt64()[idx] = int64(value)
	case Uint8:
		raw.AsUint8()[idx] = uint8(value)
	case Bool:
		raw.AsBool()[idx] = value != 0
	default:
		panic("unsupported dtype")
	}
}

// Arange creates a 1D array with values from start up to (but excluding)
// stop, stepping by step. Panics if step is 0 or the range is empty.
func Arange(start, stop, step float64, dtype DataType) *NDArray {
	if step == 0 {
		panic("arange: step must be non-zero")
	}
	num := int(math.Ceil((stop - start) / step))
	if num <= 0 {
		panic(fmt.Sprintf("arange: empty range [%g, %g) with step %g", start, stop, step))
	}

	a := Zeros(dtype, num)
	for i := 0; i < num; i++ {
		setFlat(a.raw, i, start+float64(i)*step)
	}
	return a
}

// Linspace creates a float64 array of num evenly spaced values from start to
// stop inclusive. Panics if num < 1.
func Linspace(start, stop float64, num int) *NDArray {
	if num < 1 {
		panic(fmt.Sprintf("linspace: number of samples must be >= 1, got %d", num))
	}

	a := Zeros(Float64, num)
	data := a.raw.AsFloat64()
	if num == 1 {
		data[0] = start
		return a
	}
	stepSize := (stop - start) / float64(num-1)
	for i := range data {
		data[i] = start + float64(i)*stepSize
	}
	data[num-1] = stop // Exact endpoint, no accumulation error.
	return a
}

// FromSlice creates an array from a Go slice, copying the data. With no
// shape the array is 1D. The dtype is inferred from the element type.
func FromSlice[T tensor.DType](data []T, shape ...int) (*NDArray, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	s := tensor.Shape(shape)
	if s.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", s, s.NumElements(), len(data))
	}

	var dummy T
	raw, err := tensor.NewRaw(s, tensor.InferDataType(dummy), backend.Device())
	if err != nil {
		return nil, err
	}
	copySliceInto(raw, data)
	return wrap(raw), nil
}

func copySliceInto[T tensor.DType](raw *tensor.RawTensor, data []T) {
	switch d := any(data).(type) {
	case []float32:
		copy(raw.AsFloat32(), d)
	case []float64:
		copy(raw.AsFloat64(), d)
	case []int32:
		copy(raw.AsInt32(), d)
	case []int64:
		copy(raw.AsInt64(), d)
	case []uint8:
		copy(raw.AsUint8(), d)
	case []bool:
		copy(raw.AsBool(), d)
	default:
		panic("unsupported type")
	}
}

// Asarray converts v to an NDArray. NDArrays pass through unchanged
// (identity-preserving); slices and scalars are copied into new arrays.
// Go int slices and scalars map to int64, matching NumPy's default.
func Asarray(v any) (*NDArray, error) {
	switch x := v.(type) {
	case *NDArray:
		return x, nil
	case []float64:
		return FromSlice(x)
	case []float32:
		return FromSlice(x)
	case []int64:
		return FromSlice(x)
	case []int32:
		return FromSlice(x)
	case []uint8:
		return FromSlice(x)
	case []bool:
		return FromSlice(x)
	case []int:
		converted := make([]int64, len(x))
		for i, n := range x {
			converted[i] = int64(n)
		}
		return FromSlice(converted)
	case float64:
		return scalarArray(Float64, x), nil
	case float32:
		return scalarArray(Float32, float64(x)), nil
	case int:
		return scalarArray(Int64, float64(x)), nil
	case int32:
		return scalarArray(Int32, float64(x)), nil
	case int64:
		return scalarArray(Int64, float64(x)), nil
	case uint8:
		return scalarArray(Uint8, float64(x)), nil
	case bool:
		b := scalarArray(Bool, 0)
		b.raw.AsBool()[0] = x
		return b, nil
	default:
		return nil, fmt.Errorf("asarray: unsupported input type %T", v)
	}
}

func scalarArray(dtype DataType, value float64) *NDArray {
	a := Zeros(dtype)
	setFlat(a.raw, 0, value)
	return a
}

// Reshape returns a view of a with a new shape.
func Reshape(a *NDArray, shape ...int) *NDArray {
	return a.Reshape(shape...)
}

// Transpose returns a with permuted dimensions.
func Transpose(a *NDArray, axes ...int) *NDArray {
	return a.Transpose(axes...)
}

// Ravel returns a flattened to 1D.
func Ravel(a *NDArray) *NDArray {
	return a.Ravel()
}

// ExpandDims inserts a new axis of size 1 at the given position.
// Negative axes count from the end (NumPy convention: -1 appends).
func ExpandDims(a *NDArray, axis int) *NDArray {
	shape := a.Shape()
	ndim := len(shape)
	if axis < 0 {
		axis += ndim + 1
	}
	if axis < 0 || axis > ndim {
		panic(fmt.Sprintf("expand_dims: axis %d out of range for %dD array", axis, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:axis]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[axis:]...)
	return wrap(backend.Reshape(a.raw, newShape))
}

// Squeeze removes axes of size 1. With a nil axis all size-1 axes are
// removed; otherwise only the given axis, which must have size 1.
func Squeeze(a *NDArray, axis *int) *NDArray {
	shape := a.Shape()

	var newShape tensor.Shape
	if axis == nil {
		for _, d := range shape {
			if d != 1 {
				newShape = append(newShape, d)
			}
		}
	} else {
		ax := tensor.NormalizeAxis(*axis, len(shape))
		if shape[ax] != 1 {
			panic(fmt.Sprintf("squeeze: cannot squeeze axis %d with size %d", ax, shape[ax]))
		}
		newShape = append(newShape, shape[:ax]...)
		newShape = append(newShape, shape[ax+1:]...)
	}

	return wrap(backend.Reshape(a.raw, newShape))
}

// BroadcastTo broadcasts a to the given shape, materializing the result.
func BroadcastTo(a *NDArray, shape ...int) *NDArray {
	return wrap(backend.Expand(a.raw, tensor.Shape(shape)))
}

// reduce applies a full or per-axis reduction with NumPy axis semantics.
func reduce(a *NDArray, axis *int, keepdims bool,
	full func(*tensor.RawTensor) *tensor.RawTensor,
	dim func(*tensor.RawTensor, int, bool) *tensor.RawTensor,
) *NDArray {
	if axis != nil {
		return wrap(dim(a.raw, *axis, keepdims))
	}

	result := full(a.raw)
	if keepdims {
		ones := make(tensor.Shape, a.NDim())
		for i := range ones {
			ones[i] = 1
		}
		result = backend.Reshape(result, ones)
	}
	return wrap(result)
}

// Amax returns the maximum of an array, or the maxima along an axis.
// A nil axis reduces over all elements.
func Amax(a *NDArray, axis *int, keepdims bool) *NDArray {
	if a.DType() == Bool {
		// Reduce as uint8, then restore bool (NumPy keeps bool for amax).
		r := Amax(a.AsType(Uint8), axis, keepdims)
		return r.AsType(Bool)
	}
	return reduce(a, axis, keepdims, backend.Max, backend.MaxDim)
}

// Amin returns the minimum of an array, or the minima along an axis.
// A nil axis reduces over all elements.
func Amin(a *NDArray, axis *int, keepdims bool) *NDArray {
	if a.DType() == Bool {
		r := Amin(a.AsType(Uint8), axis, keepdims)
		return r.AsType(Bool)
	}
	return reduce(a, axis, keepdims, backend.Min, backend.MinDim)
}

// Sum returns the sum of array elements, totally or along an axis.
// Bool arrays count true elements into int64 (NumPy behavior).
func Sum(a *NDArray, axis *int, keepdims bool) *NDArray {
	if a.DType() == Bool {
		a = a.AsType(Int64)
	}
	return reduce(a, axis, keepdims, backend.Sum, backend.SumDim)
}

// Mean returns the arithmetic mean, totally or along an axis. Integer and
// bool inputs promote to float64 first (NumPy behavior).
func Mean(a *NDArray, axis *int, keepdims bool) *NDArray {
	if !a.DType().IsFloat() {
		a = a.AsType(DefaultFloat)
	}

	if axis != nil {
		return wrap(backend.MeanDim(a.raw, *axis, keepdims))
	}

	total := Sum(a, nil, keepdims)
	size := Full(a.DType(), float64(a.Size()), total.Shape()...)
	return wrap(backend.Div(total.raw, size.raw))
}

// Argmax returns the indices of maximum values along an axis as int64.
// A nil axis operates on the flattened array and returns a scalar index.
func Argmax(a *NDArray, axis *int) *NDArray {
	if axis == nil {
		flat := a.Ravel()
		return wrap(backend.Argmax(flat.raw, 0))
	}
	return wrap(backend.Argmax(a.raw, *axis))
}

// Argmin returns the indices of minimum values along an axis as int64.
// A nil axis operates on the flattened array and returns a scalar index.
func Argmin(a *NDArray, axis *int) *NDArray {
	if axis == nil {
		flat := a.Ravel()
		return wrap(backend.Argmin(flat.raw, 0))
	}
	return wrap(backend.Argmin(a.raw, *axis))
}

// Around rounds to the given number of decimals, with ties going to the
// nearest even value (NumPy's around).
func Around(a *NDArray, decimals int) *NDArray {
	return wrap(backend.Round(a.raw, decimals))
}
