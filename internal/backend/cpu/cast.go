package cpu

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/parallel"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// Cast converts the tensor to a different data type.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("astype: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32(), dtype, cpu.par)
	case tensor.Float64:
		castFrom(result, x.AsFloat64(), dtype, cpu.par)
	case tensor.Int32:
		castFrom(result, x.AsInt32(), dtype, cpu.par)
	case tensor.Int64:
		castFrom(result, x.AsInt64(), dtype, cpu.par)
	case tensor.Uint8:
		castFrom(result, x.AsUint8(), dtype, cpu.par)
	case tensor.Bool:
		castFromBool(result, x.AsBool(), dtype)
	default:
		panic(fmt.Sprintf("astype: unsupported source dtype %s", x.DType()))
	}

	return result
}

func castFrom[S numeric](result *tensor.RawTensor, src []S, dtype tensor.DataType, cfg parallel.Config) {
	switch dtype {
	case tensor.Float32:
		convertKernel(result.AsFloat32(), src, cfg)
	case tensor.Float64:
		convertKernel(result.AsFloat64(), src, cfg)
	case tensor.Int32:
		convertKernel(result.AsInt32(), src, cfg)
	case tensor.Int64:
		convertKernel(result.AsInt64(), src, cfg)
	case tensor.Uint8:
		convertKernel(result.AsUint8(), src, cfg)
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("astype: unsupported target dtype %s", dtype))
	}
}

func castFromBool(result *tensor.RawTensor, src []bool, dtype tensor.DataType) {
	one := func(b bool) uint8 {
		if b {
			return 1
		}
		return 0
	}

	switch dtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(one(v))
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = float64(one(v))
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range src {
			dst[i] = int32(one(v))
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range src {
			dst[i] = int64(one(v))
		}
	case tensor.Uint8:
		dst := result.AsUint8()
		for i, v := range src {
			dst[i] = one(v)
		}
	default:
		panic(fmt.Sprintf("astype: unsupported target dtype %s from bool", dtype))
	}
}
