package cpu

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Comparison operations. All return a Bool tensor with the broadcast shape.

// Greater computes a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opGreater, a, b)
}

// GreaterEqual computes a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opGreaterEqual, a, b)
}

// Less computes a < b element-wise.
func (cpu *CPUBackend) Less(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opLess, a, b)
}

// LessEqual computes a <= b element-wise.
func (cpu *CPUBackend) LessEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opLessEqual, a, b)
}

// Equal computes a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opEqual, a, b)
}

// NotEqual computes a != b element-wise.
func (cpu *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.compare(opNotEqual, a, b)
}

func (cpu *CPUBackend) compare(op cmpOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	switch a.DType() {
	case tensor.Float32:
		compareKernel(result.AsBool(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, op, cpu.par)
	case tensor.Float64:
		compareKernel(result.AsBool(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, op, cpu.par)
	case tensor.Int32:
		compareKernel(result.AsBool(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, op, cpu.par)
	case tensor.Int64:
		compareKernel(result.AsBool(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, op, cpu.par)
	case tensor.Uint8:
		compareKernel(result.AsBool(), a.AsUint8(), b.AsUint8(), a.Shape(), b.Shape(), outShape, op, cpu.par)
	case tensor.Bool:
		if op != opEqual && op != opNotEqual {
			panic(fmt.Sprintf("%s: not supported for bool tensors", op))
		}
		compareBoolKernel(result.AsBool(), a.AsBool(), b.AsBool(), a.Shape(), b.Shape(), outShape, op == opNotEqual)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

// compareBoolKernel handles bool == bool and bool != bool, which fall outside
// the numeric kernel constraint.
func compareBoolKernel(dst, a, b []bool, aShape, bShape, outShape tensor.Shape, negate bool) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		ai := flatIndex(i, outStrides, aStrides)
		bi := flatIndex(i, outStrides, bStrides)
		dst[i] = (a[ai] == b[bi]) != negate
	}
}
