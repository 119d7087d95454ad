package cpu

import (
	"fmt"
	"math"

	"github.com/numgo-ml/numgo/internal/parallel"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// Unary math operations. Transcendental kernels are defined for float32 and
// float64 only; the np layer promotes integer inputs before calling them.

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("exp", x, math.Exp)
}

// Log computes element-wise natural logarithm: ln(x).
// Non-positive inputs produce NaN/-Inf following IEEE semantics.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("log", x, math.Log)
}

// Sqrt computes element-wise square root: sqrt(x).
// Negative inputs produce NaN following IEEE semantics.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("sqrt", x, math.Sqrt)
}

// Sin computes element-wise sine: sin(x).
func (cpu *CPUBackend) Sin(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("sin", x, math.Sin)
}

// Cos computes element-wise cosine: cos(x).
func (cpu *CPUBackend) Cos(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("cos", x, math.Cos)
}

// Tanh computes element-wise hyperbolic tangent: tanh(x).
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unaryFloat("tanh", x, math.Tanh)
}

func (cpu *CPUBackend) unaryFloat(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForRange(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = float32(f(float64(src[i])))
			}
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForRange(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = f(src[i])
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}

// Abs computes the element-wise absolute value.
func (cpu *CPUBackend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32, tensor.Float64:
		return cpu.unaryFloat("abs", x, math.Abs)
	case tensor.Uint8:
		return x.Clone() // already non-negative
	}

	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("abs: %v", err))
	}

	switch x.DType() {
	case tensor.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		for i, v := range src {
			if v < 0 {
				v = -v
			}
			dst[i] = v
		}
	case tensor.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		for i, v := range src {
			if v < 0 {
				v = -v
			}
			dst[i] = v
		}
	default:
		panic(fmt.Sprintf("abs: unsupported dtype %s", x.DType()))
	}

	return result
}

// Neg computes the element-wise negation: -x.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("negative: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Int32:
		src := x.AsInt32()
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Int64:
		src := x.AsInt64()
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = -v
		}
	default:
		panic(fmt.Sprintf("negative: unsupported dtype %s", x.DType()))
	}

	return result
}

// Round rounds element-wise to the given number of decimals, with ties going
// to the nearest even value (NumPy's around semantics). Negative decimals
// round to positions left of the decimal point. Integer tensors are returned
// unchanged for decimals >= 0.
func (cpu *CPUBackend) Round(x *tensor.RawTensor, decimals int) *tensor.RawTensor {
	if x.DType().IsInteger() && decimals >= 0 {
		return x.Clone()
	}

	f := func(v float64) float64 { return roundHalfEven(v, decimals) }

	switch x.DType() {
	case tensor.Float32, tensor.Float64:
		return cpu.unaryFloat("around", x, f)
	default:
		panic(fmt.Sprintf("around: unsupported dtype %s", x.DType()))
	}
}

func roundHalfEven(v float64, decimals int) float64 {
	if decimals == 0 {
		return math.RoundToEven(v)
	}
	p := math.Pow(10, float64(decimals))
	scaled := v * p
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.RoundToEven(scaled) / p
}
