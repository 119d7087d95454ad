// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package np

// NumPy-name aliases. The reduction and rounding implementations are named
// Amax, Amin, and Around; these functions expose the np.max/np.min/np.round
// spellings and forward their arguments unchanged. No validation or error
// translation happens here: whatever the delegate panics with propagates.

// Max is an alias of Amax: the maximum of an array, or the maxima along an
// axis. A nil axis reduces over all elements.
func Max(a *NDArray, axis *int, keepdims bool) *NDArray {
	return Amax(a, axis, keepdims)
}

// Min is an alias of Amin: the minimum of an array, or the minima along an
// axis. A nil axis reduces over all elements.
func Min(a *NDArray, axis *int, keepdims bool) *NDArray {
	return Amin(a, axis, keepdims)
}

// Round is an alias of Around: round to the given number of decimals, ties
// to even. NumPy's round defaults decimals to 0; pass 0 for that behavior.
func Round(a *NDArray, decimals int) *NDArray {
	return Around(a, decimals)
}
