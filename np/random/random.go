// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package random provides the np.random submodule: pseudo-random array
// generation backed by a shared, seedable source.
package random

import (
	np "github.com/numgo-ml/numgo/internal/np"
	"github.com/numgo-ml/numgo/internal/np/random"
)

// Seed reseeds the shared source. Sequences generated after identical seeds
// are identical.
func Seed(seed int64) {
	random.Seed(seed)
}

// Random returns a float64 array with values uniformly distributed in [0, 1).
func Random(shape ...int) *np.NDArray {
	return random.Random(shape...)
}

// Uniform returns a float64 array with values uniformly distributed in
// [low, high).
func Uniform(low, high float64, shape ...int) *np.NDArray {
	return random.Uniform(low, high, shape...)
}

// StandardNormal returns a float64 array with values drawn from N(0, 1).
func StandardNormal(shape ...int) *np.NDArray {
	return random.StandardNormal(shape...)
}

// Randn is the NumPy-style alias for StandardNormal.
func Randn(shape ...int) *np.NDArray {
	return random.Randn(shape...)
}

// Randint returns an int64 array with values uniformly distributed in
// [low, high).
func Randint(low, high int64, shape ...int) *np.NDArray {
	return random.Randint(low, high, shape...)
}
