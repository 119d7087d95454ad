package np

import (
	"fmt"

	"github.com/numgo-ml/numgo/internal/tensor"
)

// DataType is the runtime dtype of an ndarray.
type DataType = tensor.DataType

// Supported dtypes. A subset of NumPy's dtype zoo; promotion between them
// follows NumPy semantics.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
	Uint8   = tensor.Uint8
	Bool    = tensor.Bool
)

// DefaultFloat is the dtype used when a float result is required and no
// operand dictates one (NumPy's float64 default).
const DefaultFloat = Float64

// intRank orders the integer dtypes for promotion.
func intRank(dt DataType) int {
	switch dt {
	case Uint8:
		return 0
	case Int32:
		return 1
	case Int64:
		return 2
	default:
		panic(fmt.Sprintf("promote_types: %s is not an integer dtype", dt))
	}
}

// PromoteTypes returns the smallest dtype to which both a and b can be
// safely cast, following NumPy's promote_types:
//
//   - bool promotes to the other operand
//   - uint8 < int32 < int64
//   - float32 < float64
//   - uint8 with float32 stays float32; wider integers need float64
func PromoteTypes(a, b DataType) DataType {
	if a == b {
		return a
	}
	if a == Bool {
		return b
	}
	if b == Bool {
		return a
	}

	aFloat, bFloat := a.IsFloat(), b.IsFloat()
	switch {
	case aFloat && bFloat:
		return Float64 // float32 + float64
	case !aFloat && !bFloat:
		if intRank(a) > intRank(b) {
			return a
		}
		return b
	default:
		// Mixed integer and float.
		flt, it := a, b
		if bFloat {
			flt, it = b, a
		}
		if flt == Float32 && it == Uint8 {
			return Float32 // float32 covers all uint8 values exactly
		}
		return Float64
	}
}
