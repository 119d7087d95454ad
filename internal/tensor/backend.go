package tensor

// Backend defines the interface a compute backend must implement to execute
// array operations. The np layer never touches element data itself: every
// operation with NumPy semantics bottoms out in one of these calls.
type Backend interface {
	// Element-wise binary operations with NumPy broadcasting
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor
	Maximum(a, b *RawTensor) *RawTensor // element-wise max
	Minimum(a, b *RawTensor) *RawTensor // element-wise min

	// Matrix operations
	MatMul(a, b *RawTensor) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Sin(x *RawTensor) *RawTensor
	Cos(x *RawTensor) *RawTensor
	Tanh(x *RawTensor) *RawTensor
	Abs(x *RawTensor) *RawTensor
	Neg(x *RawTensor) *RawTensor
	Round(x *RawTensor, decimals int) *RawTensor // round half to even

	// Comparison operations (element-wise, return bool tensor)
	Greater(a, b *RawTensor) *RawTensor      // a > b
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b
	Less(a, b *RawTensor) *RawTensor         // a < b
	LessEqual(a, b *RawTensor) *RawTensor    // a <= b
	Equal(a, b *RawTensor) *RawTensor        // a == b
	NotEqual(a, b *RawTensor) *RawTensor     // a != b

	// Reduction operations. Dim variants support negative axes and keepdims.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MeanDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	Max(x *RawTensor) *RawTensor
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	Min(x *RawTensor) *RawTensor
	MinDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	Argmax(x *RawTensor, dim int) *RawTensor // int64 result
	Argmin(x *RawTensor, dim int) *RawTensor // int64 result

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor
	Expand(x *RawTensor, shape Shape) *RawTensor // broadcast to shape

	// Type conversion
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
