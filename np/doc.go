// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package np provides a NumPy-compatible array API on top of the NumGo
// tensor runtime.
//
// # Overview
//
// The package re-exports the array construction, manipulation, math, and
// dtype-utility operations implemented by the internal numpy layer, plus the
// random subpackage (np/random). It is a namespace: no computation is
// implemented here.
//
// The ndarray type wraps an immutable tensor. Operations return new arrays;
// buffers are never mutated in place.
//
// # Basic Usage
//
//	import "github.com/numgo-ml/numgo/np"
//
//	func main() {
//	    x := np.Arange(0, 6, 1, np.Float64)
//	    m := np.Reshape(x, 2, 3)
//	    rowMax := np.Max(m, np.Axis(1), false) // same as np.Amax
//	    total := np.Sum(m, nil, false)
//	}
//
// # Dtypes and Promotion
//
// A subset of NumPy dtypes is supported: float32, float64, int32, int64,
// uint8, and bool. Binary operations promote operands following NumPy
// semantics; see PromoteTypes and ResultType.
//
// # Aliases
//
// Max, Min, and Round are aliases of Amax, Amin, and Around. The
// implementations carry the a-prefixed names to avoid colliding with Go's
// built-in max and min and math.Round conventions; the NumPy spellings
// delegate unchanged.
package np
