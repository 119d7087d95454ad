package cpu

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Reshape returns a tensor with the same data but a different shape.
// Storage is contiguous row-major, so this is a zero-copy view.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}
	return t.WithShape(newShape)
}

// Transpose permutes the tensor's dimensions. With no axes given, all
// dimensions are reversed (NumPy default).
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	for i, ax := range axes {
		ax = tensor.NormalizeAxis(ax, ndim)
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
		axes[i] = ax
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	// Gather with permuted source strides; output is written contiguously.
	srcStrides := shape.ComputeStrides()
	permStrides := make([]int, ndim)
	for i, ax := range axes {
		permStrides[i] = srcStrides[ax]
	}
	outStrides := newShape.ComputeStrides()

	elemSize := t.DType().Size()
	src := t.Data()
	dst := result.Data()
	n := newShape.NumElements()
	for i := 0; i < n; i++ {
		srcIdx := flatIndex(i, outStrides, permStrides)
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])
	}

	return result
}

// Expand broadcasts the tensor to the given shape, materializing the result.
func (cpu *CPUBackend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	outShape, _, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil {
		panic(fmt.Sprintf("broadcast_to: %v", err))
	}
	if !outShape.Equal(shape) {
		panic(fmt.Sprintf("broadcast_to: cannot broadcast %v to %v", x.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("broadcast_to: %v", err))
	}

	outStrides := shape.ComputeStrides()
	inStrides := broadcastStrides(x.Shape(), shape)

	elemSize := x.DType().Size()
	src := x.Data()
	dst := result.Data()
	n := shape.NumElements()
	for i := 0; i < n; i++ {
		srcIdx := flatIndex(i, outStrides, inStrides)
		copy(dst[i*elemSize:(i+1)*elemSize], src[srcIdx*elemSize:(srcIdx+1)*elemSize])
	}

	return result
}
