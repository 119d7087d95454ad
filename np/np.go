// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package np

import (
	"io"

	np "github.com/numgo-ml/numgo/internal/np"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// Type aliases for the public API. Aliasing (not wrapping) keeps re-exports
// identity-preserving: a value built here is the same type the internal
// layer produces.

// NDArray is a NumPy-compatible wrapper over an immutable tensor.
type NDArray = np.NDArray

// DataType is the runtime dtype of an ndarray.
type DataType = np.DataType

// Shape represents array dimensions.
type Shape = tensor.Shape

// DType is the constraint satisfied by Go element types usable in FromSlice.
type DType = tensor.DType

// FloatInfo describes machine limits for a floating-point dtype.
type FloatInfo = np.FloatInfo

// IntInfo describes machine limits for an integer dtype.
type IntInfo = np.IntInfo

// Supported dtypes.
const (
	Float32 = np.Float32
	Float64 = np.Float64
	Int32   = np.Int32
	Int64   = np.Int64
	Uint8   = np.Uint8
	Bool    = np.Bool
)

// Axis wraps an axis index for the optional axis parameter of reductions.
// A nil axis means "reduce over all elements" (NumPy's axis=None).
func Axis(axis int) *int {
	return np.Axis(axis)
}

// Array construction

// Zeros creates an array of the given dtype filled with zeros.
//
// Example:
//
//	x := np.Zeros(np.Float64, 2, 3)
func Zeros(dtype DataType, shape ...int) *NDArray {
	return np.Zeros(dtype, shape...)
}

// Ones creates an array of the given dtype filled with ones.
func Ones(dtype DataType, shape ...int) *NDArray {
	return np.Ones(dtype, shape...)
}

// Full creates an array filled with value, converted to dtype.
func Full(dtype DataType, value float64, shape ...int) *NDArray {
	return np.Full(dtype, value, shape...)
}

// Eye creates an n×n identity matrix of the given dtype.
func Eye(n int, dtype DataType) *NDArray {
	return np.Eye(n, dtype)
}

// Arange creates a 1D array with values from start up to (but excluding)
// stop, stepping by step.
//
// Example:
//
//	x := np.Arange(0, 10, 1, np.Int64) // [0, 1, ..., 9]
func Arange(start, stop, step float64, dtype DataType) *NDArray {
	return np.Arange(start, stop, step, dtype)
}

// Linspace creates a float64 array of num evenly spaced values from start
// to stop inclusive.
func Linspace(start, stop float64, num int) *NDArray {
	return np.Linspace(start, stop, num)
}

// FromSlice creates an array from a Go slice, copying the data. With no
// shape the array is 1D.
//
// Example:
//
//	x, err := np.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
func FromSlice[T DType](data []T, shape ...int) (*NDArray, error) {
	return np.FromSlice(data, shape...)
}

// Asarray converts v (an *NDArray, a Go slice, or a Go scalar) to an
// NDArray. NDArrays pass through unchanged.
func Asarray(v any) (*NDArray, error) {
	return np.Asarray(v)
}

// Array manipulation

// Reshape returns a view of a with a new shape.
func Reshape(a *NDArray, shape ...int) *NDArray {
	return np.Reshape(a, shape...)
}

// Transpose returns a with permuted dimensions. With no axes, all
// dimensions are reversed.
func Transpose(a *NDArray, axes ...int) *NDArray {
	return np.Transpose(a, axes...)
}

// Ravel returns a flattened to 1D.
func Ravel(a *NDArray) *NDArray {
	return np.Ravel(a)
}

// ExpandDims inserts a new axis of size 1 at the given position.
func ExpandDims(a *NDArray, axis int) *NDArray {
	return np.ExpandDims(a, axis)
}

// Squeeze removes axes of size 1 (all of them when axis is nil).
func Squeeze(a *NDArray, axis *int) *NDArray {
	return np.Squeeze(a, axis)
}

// BroadcastTo broadcasts a to the given shape.
func BroadcastTo(a *NDArray, shape ...int) *NDArray {
	return np.BroadcastTo(a, shape...)
}

// Reductions

// Amax returns the maximum of an array, or the maxima along an axis.
func Amax(a *NDArray, axis *int, keepdims bool) *NDArray {
	return np.Amax(a, axis, keepdims)
}

// Amin returns the minimum of an array, or the minima along an axis.
func Amin(a *NDArray, axis *int, keepdims bool) *NDArray {
	return np.Amin(a, axis, keepdims)
}

// Sum returns the sum of array elements, totally or along an axis.
func Sum(a *NDArray, axis *int, keepdims bool) *NDArray {
	return np.Sum(a, axis, keepdims)
}

// Mean returns the arithmetic mean, totally or along an axis.
func Mean(a *NDArray, axis *int, keepdims bool) *NDArray {
	return np.Mean(a, axis, keepdims)
}

// Argmax returns the indices of maximum values along an axis as int64.
func Argmax(a *NDArray, axis *int) *NDArray {
	return np.Argmax(a, axis)
}

// Argmin returns the indices of minimum values along an axis as int64.
func Argmin(a *NDArray, axis *int) *NDArray {
	return np.Argmin(a, axis)
}

// Around rounds to the given number of decimals, ties to even.
func Around(a *NDArray, decimals int) *NDArray {
	return np.Around(a, decimals)
}

// Math operations

// Add computes a + b element-wise with broadcasting.
func Add(a, b *NDArray) *NDArray {
	return np.Add(a, b)
}

// Subtract computes a - b element-wise with broadcasting.
func Subtract(a, b *NDArray) *NDArray {
	return np.Subtract(a, b)
}

// Multiply computes a * b element-wise with broadcasting.
func Multiply(a, b *NDArray) *NDArray {
	return np.Multiply(a, b)
}

// Divide computes a / b element-wise (true division: integers promote to
// float64).
func Divide(a, b *NDArray) *NDArray {
	return np.Divide(a, b)
}

// Maximum computes the element-wise maximum of a and b.
func Maximum(a, b *NDArray) *NDArray {
	return np.Maximum(a, b)
}

// Minimum computes the element-wise minimum of a and b.
func Minimum(a, b *NDArray) *NDArray {
	return np.Minimum(a, b)
}

// Matmul performs 2D matrix multiplication.
func Matmul(a, b *NDArray) *NDArray {
	return np.Matmul(a, b)
}

// Exp computes e**x element-wise.
func Exp(a *NDArray) *NDArray {
	return np.Exp(a)
}

// Log computes the natural logarithm element-wise.
func Log(a *NDArray) *NDArray {
	return np.Log(a)
}

// Sqrt computes the non-negative square root element-wise.
func Sqrt(a *NDArray) *NDArray {
	return np.Sqrt(a)
}

// Sin computes the sine element-wise (radians).
func Sin(a *NDArray) *NDArray {
	return np.Sin(a)
}

// Cos computes the cosine element-wise (radians).
func Cos(a *NDArray) *NDArray {
	return np.Cos(a)
}

// Tanh computes the hyperbolic tangent element-wise.
func Tanh(a *NDArray) *NDArray {
	return np.Tanh(a)
}

// Abs computes the absolute value element-wise.
func Abs(a *NDArray) *NDArray {
	return np.Abs(a)
}

// Negative computes -a element-wise.
func Negative(a *NDArray) *NDArray {
	return np.Negative(a)
}

// Clip limits values to [lo, hi].
func Clip(a *NDArray, lo, hi float64) *NDArray {
	return np.Clip(a, lo, hi)
}

// Comparisons (return Bool arrays)

// Greater computes a > b element-wise.
func Greater(a, b *NDArray) *NDArray {
	return np.Greater(a, b)
}

// GreaterEqual computes a >= b element-wise.
func GreaterEqual(a, b *NDArray) *NDArray {
	return np.GreaterEqual(a, b)
}

// Less computes a < b element-wise.
func Less(a, b *NDArray) *NDArray {
	return np.Less(a, b)
}

// LessEqual computes a <= b element-wise.
func LessEqual(a, b *NDArray) *NDArray {
	return np.LessEqual(a, b)
}

// Equal computes a == b element-wise.
func Equal(a, b *NDArray) *NDArray {
	return np.Equal(a, b)
}

// NotEqual computes a != b element-wise.
func NotEqual(a, b *NDArray) *NDArray {
	return np.NotEqual(a, b)
}

// Dtype utilities

// Finfo returns the machine limits for a float dtype.
func Finfo(dtype DataType) FloatInfo {
	return np.Finfo(dtype)
}

// Iinfo returns the machine limits for an integer dtype.
func Iinfo(dtype DataType) IntInfo {
	return np.Iinfo(dtype)
}

// PromoteTypes returns the smallest dtype to which both a and b can be
// safely cast.
func PromoteTypes(a, b DataType) DataType {
	return np.PromoteTypes(a, b)
}

// ResultType applies NumPy promotion rules to a mix of arrays, dtypes, and
// Go scalars.
func ResultType(operands ...any) DataType {
	return np.ResultType(operands...)
}

// Persistence (.npy format)

// Save writes a to path as a .npy file.
func Save(path string, a *NDArray) error {
	return np.Save(path, a)
}

// Load reads a .npy file from path.
func Load(path string) (*NDArray, error) {
	return np.Load(path)
}

// Write encodes a into w in .npy format.
func Write(w io.Writer, a *NDArray) error {
	return np.Write(w, a)
}

// Read decodes a .npy stream from r.
func Read(r io.Reader) (*NDArray, error) {
	return np.Read(r)
}
