// Package np implements NumPy-compatible array semantics on top of the
// tensor runtime. The public np package re-exports this API; everything with
// NumPy behavior (broadcasting, type promotion, reductions, rounding) is
// implemented here and executed by a tensor.Backend.
package np

import (
	"github.com/numgo-ml/numgo/internal/backend/cpu"
	"github.com/numgo-ml/numgo/internal/tensor"
)

// backend executes all array operations. The array API is eager and
// CPU-resident, matching the runtime it adapts.
var backend tensor.Backend = cpu.New()

// Backend returns the compute backend used by the array API.
func Backend() tensor.Backend {
	return backend
}

// Axis wraps an axis index for the optional axis parameter of reductions.
// A nil axis means "reduce over all elements" (NumPy's axis=None).
func Axis(axis int) *int {
	return &axis
}
