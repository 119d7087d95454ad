package cpu

import (
	"github.com/numgo-ml/numgo/internal/parallel"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// numeric is the set of element types arithmetic kernels operate on.
// Bool participates only in comparisons and casts.
type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// binOp selects the arithmetic performed by a binary kernel.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opMaximum
	opMinimum
)

func (op binOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "subtract"
	case opMul:
		return "multiply"
	case opDiv:
		return "divide"
	case opMaximum:
		return "maximum"
	case opMinimum:
		return "minimum"
	default:
		return "unknown"
	}
}

func applyBin[T numeric](op binOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	case opMaximum:
		if x > y {
			return x
		}
		return y
	case opMinimum:
		if x < y {
			return x
		}
		return y
	default:
		panic("unknown binary op")
	}
}

// binaryKernel computes dst[i] = a[i] op b[i] for same-shape operands.
func binaryKernel[T numeric](dst, a, b []T, op binOp, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = applyBin(op, a[i], b[i])
		}
	}, cfg)
}

// binaryBroadcastKernel computes dst = a op b where a and b broadcast to
// outShape. Broadcast dimensions are walked with stride 0.
func binaryBroadcastKernel[T numeric](dst, a, b []T, aShape, bShape, outShape tensor.Shape, op binOp, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	parallel.ForRange(outShape.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			ai := flatIndex(i, outStrides, aStrides)
			bi := flatIndex(i, outStrides, bStrides)
			dst[i] = applyBin(op, a[ai], b[bi])
		}
	}, cfg)
}

// cmpOp selects the predicate evaluated by a comparison kernel.
type cmpOp int

const (
	opGreater cmpOp = iota
	opGreaterEqual
	opLess
	opLessEqual
	opEqual
	opNotEqual
)

func (op cmpOp) String() string {
	switch op {
	case opGreater:
		return "greater"
	case opGreaterEqual:
		return "greater_equal"
	case opLess:
		return "less"
	case opLessEqual:
		return "less_equal"
	case opEqual:
		return "equal"
	case opNotEqual:
		return "not_equal"
	default:
		return "unknown"
	}
}

func applyCmp[T numeric](op cmpOp, x, y T) bool {
	switch op {
	case opGreater:
		return x > y
	case opGreaterEqual:
		return x >= y
	case opLess:
		return x < y
	case opLessEqual:
		return x <= y
	case opEqual:
		return x == y
	case opNotEqual:
		return x != y
	default:
		panic("unknown comparison op")
	}
}

// compareKernel evaluates dst[i] = a op b element-wise with broadcasting.
func compareKernel[T numeric](dst []bool, a, b []T, aShape, bShape, outShape tensor.Shape, op cmpOp, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	parallel.ForRange(outShape.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			ai := flatIndex(i, outStrides, aStrides)
			bi := flatIndex(i, outStrides, bStrides)
			dst[i] = applyCmp(op, a[ai], b[bi])
		}
	}, cfg)
}

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of size 1 (or missing on the left) get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat source index using
// broadcast-adjusted strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := 0; i < len(outStrides); i++ {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// convertKernel copies src into dst with an element-type conversion.
func convertKernel[S, D numeric](dst []D, src []S, cfg parallel.Config) {
	parallel.ForRange(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = D(src[i])
		}
	}, cfg)
}
