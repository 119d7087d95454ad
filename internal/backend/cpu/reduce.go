package cpu

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// Reduction operations. Dim variants support negative axes and keepdims,
// following NumPy conventions: the reduced axis is kept with size 1 when
// keepDim is true and removed otherwise.

// redOp selects the fold performed by a reduction kernel.
type redOp int

const (
	redSum redOp = iota
	redMax
	redMin
)

// applyRed folds one element. NaN propagates out of max/min as NumPy's
// amax/amin do; the v != v test is never true for integer types.
func applyRed[T numeric](op redOp, acc, v T) T {
	switch op {
	case redSum:
		return acc + v
	case redMax:
		if acc != acc {
			return acc
		}
		if v != v || v > acc {
			return v
		}
		return acc
	case redMin:
		if acc != acc {
			return acc
		}
		if v != v || v < acc {
			return v
		}
		return acc
	default:
		panic("unknown reduction op")
	}
}

// Sum computes the total sum of all elements (scalar result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduceAll("sum", redSum, x)
}

// Max computes the maximum over all elements (scalar result).
func (cpu *CPUBackend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduceAll("amax", redMax, x)
}

// Min computes the minimum over all elements (scalar result).
func (cpu *CPUBackend) Min(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.reduceAll("amin", redMin, x)
}

func (cpu *CPUBackend) reduceAll(name string, op redOp, x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = foldAll(op, x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = foldAll(op, x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = foldAll(op, x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = foldAll(op, x.AsInt64())
	case tensor.Uint8:
		result.AsUint8()[0] = foldAll(op, x.AsUint8())
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func foldAll[T numeric](op redOp, data []T) T {
	var acc T
	if op != redSum {
		acc = data[0] // max/min seed from the first element
	}
	for _, v := range data {
		acc = applyRed(op, acc, v)
	}
	return acc
}

// SumDim sums elements along the specified dimension.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("sum", redSum, x, dim, keepDim)
}

// MaxDim computes the maximum along the specified dimension.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("amax", redMax, x, dim, keepDim)
}

// MinDim computes the minimum along the specified dimension.
func (cpu *CPUBackend) MinDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return cpu.reduceDim("amin", redMin, x, dim, keepDim)
}

// MeanDim computes the mean along the specified dimension.
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	sumResult := cpu.SumDim(x, dim, keepDim)

	shape := x.Shape()
	dim = tensor.NormalizeAxis(dim, len(shape))
	divisor := float64(shape[dim])

	switch sumResult.DType() {
	case tensor.Float32:
		data := sumResult.AsFloat32()
		divisorF32 := float32(divisor)
		for i := range data {
			data[i] /= divisorF32
		}
	case tensor.Float64:
		data := sumResult.AsFloat64()
		for i := range data {
			data[i] /= divisor
		}
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %s (only float32/float64 supported)", sumResult.DType()))
	}

	return sumResult
}

func (cpu *CPUBackend) reduceDim(name string, op redOp, x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	dim = tensor.NormalizeAxis(dim, ndim)

	result, err := tensor.NewRaw(reducedShape(shape, dim, keepDim), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		reduceDimKernel(op, x.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		reduceDimKernel(op, x.AsFloat64(), result.AsFloat64(), shape, dim)
	case tensor.Int32:
		reduceDimKernel(op, x.AsInt32(), result.AsInt32(), shape, dim)
	case tensor.Int64:
		reduceDimKernel(op, x.AsInt64(), result.AsInt64(), shape, dim)
	case tensor.Uint8:
		reduceDimKernel(op, x.AsUint8(), result.AsUint8(), shape, dim)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// reducedShape computes the output shape of a reduction along dim.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}

// reduceDimKernel folds along dim. For each output position it walks the
// reduced dimension with its stride, seeding max/min from the first slice.
func reduceDimKernel[T numeric](op redOp, data, result []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	for group := range result {
		baseIdx := groupBaseIndex(group, shape, strides, dim)

		var acc T
		start := 0
		if op != redSum {
			acc = data[baseIdx]
			start = 1
		}
		for i := start; i < dimSize; i++ {
			acc = applyRed(op, acc, data[baseIdx+i*dimStride])
		}
		result[group] = acc
	}
}

// groupBaseIndex maps a flat output index (with dim removed) to the flat
// input index of the first element of its reduction slice.
func groupBaseIndex(group int, shape tensor.Shape, strides []int, dim int) int {
	baseIdx := 0
	remaining := group
	for i := len(shape) - 1; i >= 0; i-- {
		if i == dim {
			continue
		}
		coord := remaining % shape[i]
		remaining /= shape[i]
		baseIdx += coord * strides[i]
	}
	return baseIdx
}

// Argmax returns the index of the maximum value along the specified
// dimension as an int64 tensor. Ties resolve to the first occurrence.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	return cpu.argReduce("argmax", true, x, dim)
}

// Argmin returns the index of the minimum value along the specified
// dimension as an int64 tensor. Ties resolve to the first occurrence.
func (cpu *CPUBackend) Argmin(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	return cpu.argReduce("argmin", false, x, dim)
}

func (cpu *CPUBackend) argReduce(name string, wantMax bool, x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = tensor.NormalizeAxis(dim, len(shape))

	result, err := tensor.NewRaw(reducedShape(shape, dim, false), tensor.Int64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		argReduceKernel(wantMax, x.AsFloat32(), result.AsInt64(), shape, dim)
	case tensor.Float64:
		argReduceKernel(wantMax, x.AsFloat64(), result.AsInt64(), shape, dim)
	case tensor.Int32:
		argReduceKernel(wantMax, x.AsInt32(), result.AsInt64(), shape, dim)
	case tensor.Int64:
		argReduceKernel(wantMax, x.AsInt64(), result.AsInt64(), shape, dim)
	case tensor.Uint8:
		argReduceKernel(wantMax, x.AsUint8(), result.AsInt64(), shape, dim)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func argReduceKernel[T numeric](wantMax bool, data []T, result []int64, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	for group := range result {
		baseIdx := groupBaseIndex(group, shape, strides, dim)

		best := data[baseIdx]
		bestIdx := int64(0)
		for i := 1; i < dimSize; i++ {
			if best != best {
				break // first NaN wins, as in NumPy's argmax/argmin
			}
			v := data[baseIdx+i*dimStride]
			if v != v || (wantMax && v > best) || (!wantMax && v < best) {
				best = v
				bestIdx = int64(i)
			}
		}
		result[group] = bestIdx
	}
}
