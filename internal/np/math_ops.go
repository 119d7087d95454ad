package np

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Math operations with NumPy semantics: operands are promoted to a common
// dtype before dispatching to the backend, and transcendental functions
// promote integer inputs to float64.

func promotePair(a, b *NDArray) (*NDArray, *NDArray) {
	dt := PromoteTypes(a.DType(), b.DType())
	if a.DType() != dt {
		a = a.AsType(dt)
	}
	if b.DType() != dt {
		b = b.AsType(dt)
	}
	return a, b
}

func binary(op func(x, y *tensor.RawTensor) *tensor.RawTensor, a, b *NDArray) *NDArray {
	x, y := promotePair(a, b)
	return wrap(op(x.raw, y.raw))
}

// Add computes a + b element-wise with broadcasting.
func Add(a, b *NDArray) *NDArray {
	return binary(backend.Add, a, b)
}

// Subtract computes a - b element-wise with broadcasting.
func Subtract(a, b *NDArray) *NDArray {
	return binary(backend.Sub, a, b)
}

// Multiply computes a * b element-wise with broadcasting.
func Multiply(a, b *NDArray) *NDArray {
	return binary(backend.Mul, a, b)
}

// Divide computes a / b element-wise with broadcasting. True division:
// integer and bool operands promote to float64 (NumPy's true_divide).
func Divide(a, b *NDArray) *NDArray {
	x, y := promotePair(a, b)
	if !x.DType().IsFloat() {
		x = x.AsType(DefaultFloat)
		y = y.AsType(DefaultFloat)
	}
	return wrap(backend.Div(x.raw, y.raw))
}

// Maximum computes the element-wise maximum of a and b with broadcasting.
func Maximum(a, b *NDArray) *NDArray {
	return binary(backend.Maximum, a, b)
}

// Minimum computes the element-wise minimum of a and b with broadcasting.
func Minimum(a, b *NDArray) *NDArray {
	return binary(backend.Minimum, a, b)
}

// Matmul performs 2D matrix multiplication after promotion.
func Matmul(a, b *NDArray) *NDArray {
	return binary(backend.MatMul, a, b)
}

// unaryFloat promotes integer/bool inputs to float64 and applies op.
func unaryFloat(op func(*tensor.RawTensor) *tensor.RawTensor, a *NDArray) *NDArray {
	if !a.DType().IsFloat() {
		a = a.AsType(DefaultFloat)
	}
	return wrap(op(a.raw))
}

// Exp computes e**x element-wise.
func Exp(a *NDArray) *NDArray {
	return unaryFloat(backend.Exp, a)
}

// Log computes the natural logarithm element-wise.
func Log(a *NDArray) *NDArray {
	return unaryFloat(backend.Log, a)
}

// Sqrt computes the non-negative square root element-wise.
func Sqrt(a *NDArray) *NDArray {
	return unaryFloat(backend.Sqrt, a)
}

// Sin computes the sine element-wise (input in radians).
func Sin(a *NDArray) *NDArray {
	return unaryFloat(backend.Sin, a)
}

// Cos computes the cosine element-wise (input in radians).
func Cos(a *NDArray) *NDArray {
	return unaryFloat(backend.Cos, a)
}

// Tanh computes the hyperbolic tangent element-wise.
func Tanh(a *NDArray) *NDArray {
	return unaryFloat(backend.Tanh, a)
}

// Abs computes the absolute value element-wise, keeping the input dtype.
func Abs(a *NDArray) *NDArray {
	return wrap(backend.Abs(a.raw))
}

// Negative computes -a element-wise, keeping the input dtype.
func Negative(a *NDArray) *NDArray {
	return wrap(backend.Neg(a.raw))
}

// Clip limits values to [lo, hi]. The bounds are converted to a's dtype, so
// clipping an integer array keeps it integer (NumPy behavior).
func Clip(a *NDArray, lo, hi float64) *NDArray {
	if lo > hi {
		panic(fmt.Sprintf("clip: lo %g greater than hi %g", lo, hi))
	}
	loArr := scalarArray(a.DType(), lo)
	hiArr := scalarArray(a.DType(), hi)
	return wrap(backend.Minimum(backend.Maximum(a.raw, loArr.raw), hiArr.raw))
}

// Comparison operations. All return Bool arrays with the broadcast shape.

// Greater computes a > b element-wise.
func Greater(a, b *NDArray) *NDArray {
	return binary(backend.Greater, a, b)
}

// GreaterEqual computes a >= b element-wise.
func GreaterEqual(a, b *NDArray) *NDArray {
	return binary(backend.GreaterEqual, a, b)
}

// Less computes a < b element-wise.
func Less(a, b *NDArray) *NDArray {
	return binary(backend.Less, a, b)
}

// LessEqual computes a <= b element-wise.
func LessEqual(a, b *NDArray) *NDArray {
	return binary(backend.LessEqual, a, b)
}

// Equal computes a == b element-wise.
func Equal(a, b *NDArray) *NDArray {
	return binary(backend.Equal, a, b)
}

// NotEqual computes a != b element-wise.
func NotEqual(a, b *NDArray) *NDArray {
	return binary(backend.NotEqual, a, b)
}
