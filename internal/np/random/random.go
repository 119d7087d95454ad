// Package random implements the np.random submodule: pseudo-random array
// generation backed by a shared, seedable source.
//
// Uses math/rand deliberately: reproducibility under Seed matters for
// numerical code, cryptographic quality does not.
package random

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/numgo-ml/numgo/internal/np"
)

var (
	mu  sync.Mutex
	src = rand.New(rand.NewSource(1)) //nolint:gosec // G404: seeded PRNG for numerics
)

// Seed reseeds the shared source. Sequences generated after identical seeds
// are identical.
func Seed(seed int64) {
	mu.Lock()
	defer mu.Unlock()
	src = rand.New(rand.NewSource(seed)) //nolint:gosec // G404: seeded PRNG for numerics
}

// Random returns a float64 array of the given shape with values uniformly
// distributed in [0, 1).
func Random(shape ...int) *np.NDArray {
	return Uniform(0, 1, shape...)
}

// Uniform returns a float64 array of the given shape with values uniformly
// distributed in [low, high).
func Uniform(low, high float64, shape ...int) *np.NDArray {
	a := np.Zeros(np.Float64, shape...)
	data := a.Raw().AsFloat64()

	mu.Lock()
	defer mu.Unlock()
	for i := range data {
		data[i] = low + (high-low)*src.Float64()
	}
	return a
}

// StandardNormal returns a float64 array of the given shape with values
// drawn from the standard normal distribution N(0, 1).
// Uses the Box-Muller transform.
func StandardNormal(shape ...int) *np.NDArray {
	a := np.Zeros(np.Float64, shape...)
	data := a.Raw().AsFloat64()

	mu.Lock()
	defer mu.Unlock()
	for i := 0; i < len(data); i += 2 {
		u1 := src.Float64()
		u2 := src.Float64()
		r := math.Sqrt(-2.0 * math.Log(1-u1)) // 1-u1 avoids log(0)
		data[i] = r * math.Cos(2.0*math.Pi*u2)
		if i+1 < len(data) {
			data[i+1] = r * math.Sin(2.0*math.Pi*u2)
		}
	}
	return a
}

// Randn is the NumPy-style alias for StandardNormal.
func Randn(shape ...int) *np.NDArray {
	return StandardNormal(shape...)
}

// Randint returns an int64 array of the given shape with values uniformly
// distributed in [low, high). Panics if low >= high.
func Randint(low, high int64, shape ...int) *np.NDArray {
	if low >= high {
		panic(fmt.Sprintf("randint: low %d must be < high %d", low, high))
	}

	a := np.Zeros(np.Int64, shape...)
	data := a.Raw().AsInt64()

	mu.Lock()
	defer mu.Unlock()
	for i := range data {
		data[i] = low + src.Int63n(high-low)
	}
	return a
}
