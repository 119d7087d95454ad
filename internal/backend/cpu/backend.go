// Package cpu implements the CPU compute backend for the NumGo array library.
package cpu

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/parallel"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// CPUBackend implements tensor.Backend with pure Go kernels.
// Large flat loops are chunked across goroutines via internal/parallel.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opMul, a, b)
}

// Div performs element-wise division with broadcasting.
// Integer operands use truncated integer division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opDiv, a, b)
}

// Maximum computes the element-wise maximum with broadcasting.
func (cpu *CPUBackend) Maximum(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opMaximum, a, b)
}

// Minimum computes the element-wise minimum with broadcasting.
func (cpu *CPUBackend) Minimum(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary(opMinimum, a, b)
}

// binary dispatches a binary arithmetic op by dtype. Operands must share a
// dtype: the np layer promotes before calling the backend.
func (cpu *CPUBackend) binary(op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}

	fast := !needsBroadcast && a.Shape().Equal(b.Shape())

	switch a.DType() {
	case tensor.Float32:
		if fast {
			binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), op, cpu.par)
		} else {
			binaryBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, op, cpu.par)
		}
	case tensor.Float64:
		if fast {
			binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), op, cpu.par)
		} else {
			binaryBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, op, cpu.par)
		}
	case tensor.Int32:
		if fast {
			binaryKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), op, cpu.par)
		} else {
			binaryBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, op, cpu.par)
		}
	case tensor.Int64:
		if fast {
			binaryKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), op, cpu.par)
		} else {
			binaryBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, op, cpu.par)
		}
	case tensor.Uint8:
		if fast {
			binaryKernel(result.AsUint8(), a.AsUint8(), b.AsUint8(), op, cpu.par)
		} else {
			binaryBroadcastKernel(result.AsUint8(), a.AsUint8(), b.AsUint8(), a.Shape(), b.Shape(), outShape, op, cpu.par)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}
