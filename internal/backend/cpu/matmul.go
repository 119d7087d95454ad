package cpu

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/parallel"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch: %s vs %s", a.DType(), b.DType()))
	}

	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: expected 2D tensors, got %v and %v", aShape, bShape))
	}
	m, k := aShape[0], aShape[1]
	k2, n := bShape[0], bShape[1]
	if k != k2 {
		panic(fmt.Sprintf("matmul: inner dimensions mismatch: %v @ %v", aShape, bShape))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: %v", err))
	}

	// Skipping zero rows of a is only safe for integers: for floats,
	// 0*Inf and 0*NaN must produce NaN (IEEE), not be elided.
	skipZero := a.DType().IsInteger()

	switch a.DType() {
	case tensor.Float32:
		matmulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, skipZero, cpu.par)
	case tensor.Float64:
		matmulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, skipZero, cpu.par)
	case tensor.Int32:
		matmulKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, k, n, skipZero, cpu.par)
	case tensor.Int64:
		matmulKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, k, n, skipZero, cpu.par)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulKernel is a cache-friendly ikj loop parallelized over output rows.
func matmulKernel[T numeric](dst, a, b []T, m, k, n int, skipZero bool, cfg parallel.Config) {
	rowCfg := cfg
	rowCfg.MinChunkSize = 1 // Rows are heavyweight work items.
	parallel.ForRange(m, func(start, end int) {
		for i := start; i < end; i++ {
			dstRow := dst[i*n : (i+1)*n]
			for p := 0; p < k; p++ {
				av := a[i*k+p]
				if skipZero && av == 0 {
					continue
				}
				bRow := b[p*n : (p+1)*n]
				for j, bv := range bRow {
					dstRow[j] += av * bv
				}
			}
		}
	}, rowCfg)
}
