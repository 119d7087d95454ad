package np

import (
	"fmt"
	"math"
)

// FloatInfo describes machine limits for a floating-point dtype, following
// NumPy's finfo fields.
type FloatInfo struct {
	Dtype DataType
	Bits  int
	Eps   float64 // Difference between 1.0 and the next representable float.
	Max   float64 // Largest representable value.
	Min   float64 // Most negative representable value.
	Tiny  float64 // Smallest positive normal value.
}

// Finfo returns the machine limits for a float dtype.
// Panics if dtype is not a floating-point type.
func Finfo(dtype DataType) FloatInfo {
	switch dtype {
	case Float32:
		return FloatInfo{
			Dtype: Float32,
			Bits:  32,
			Eps:   0x1p-23,
			Max:   math.MaxFloat32,
			Min:   -math.MaxFloat32,
			Tiny:  0x1p-126,
		}
	case Float64:
		return FloatInfo{
			Dtype: Float64,
			Bits:  64,
			Eps:   0x1p-52,
			Max:   math.MaxFloat64,
			Min:   -math.MaxFloat64,
			Tiny:  0x1p-1022,
		}
	default:
		panic(fmt.Sprintf("finfo: %s is not a floating-point dtype", dtype))
	}
}

// IntInfo describes machine limits for an integer dtype.
type IntInfo struct {
	Dtype DataType
	Bits  int
	Min   int64
	Max   int64
}

// Iinfo returns the machine limits for an integer dtype.
// Panics if dtype is not an integer type.
func Iinfo(dtype DataType) IntInfo {
	switch dtype {
	case Uint8:
		return IntInfo{Dtype: Uint8, Bits: 8, Min: 0, Max: math.MaxUint8}
	case Int32:
		return IntInfo{Dtype: Int32, Bits: 32, Min: math.MinInt32, Max: math.MaxInt32}
	case Int64:
		return IntInfo{Dtype: Int64, Bits: 64, Min: math.MinInt64, Max: math.MaxInt64}
	default:
		panic(fmt.Sprintf("iinfo: %s is not an integer dtype", dtype))
	}
}

// scalarKind classifies a weak (Go scalar) operand for ResultType.
type scalarKind int

const (
	kindNone scalarKind = iota
	kindBool
	kindInt
	kindFloat
)

// ResultType returns the dtype resulting from applying NumPy promotion rules
// to the operands. Operands may be *NDArray, DataType, or Go scalars
// (bool, int, int32, int64, float32, float64).
//
// Array and dtype operands are "strong": they promote against each other via
// PromoteTypes. Go scalars are "weak" (NumPy value-based semantics): a float
// scalar only widens an integer or bool result to float64, an int scalar
// only widens a bool result to int64, and neither widens an existing float
// or int result.
func ResultType(operands ...any) DataType {
	if len(operands) == 0 {
		panic("result_type: at least one operand is required")
	}

	var strong *DataType
	weak := kindNone

	record := func(k scalarKind) {
		if k > weak {
			weak = k
		}
	}

	for _, op := range operands {
		switch x := op.(type) {
		case *NDArray:
			dt := x.DType()
			strong = foldStrong(strong, dt)
		case DataType:
			strong = foldStrong(strong, x)
		case bool:
			record(kindBool)
		case int, int32, int64:
			record(kindInt)
		case float32, float64:
			record(kindFloat)
		default:
			panic(fmt.Sprintf("result_type: unsupported operand type %T", op))
		}
	}

	if strong == nil {
		switch weak {
		case kindBool:
			return Bool
		case kindInt:
			return Int64
		case kindFloat:
			return Float64
		default:
			panic("result_type: at least one operand is required")
		}
	}

	result := *strong
	switch weak {
	case kindFloat:
		if !result.IsFloat() {
			result = Float64
		}
	case kindInt:
		if result == Bool {
			result = Int64
		}
	}
	return result
}

func foldStrong(acc *DataType, dt DataType) *DataType {
	if acc == nil {
		return &dt
	}
	promoted := PromoteTypes(*acc, dt)
	return &promoted
}
