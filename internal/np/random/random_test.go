package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/numgo-ml/numgo/internal/np"
	"github.com/numgo-ml/numgo/internal/tensor"
)

func TestSeedReproducibility(t *testing.T) {
	Seed(42)
	first := Random(100).Float64s()

	Seed(42)
	second := Random(100).Float64s()

	assert.Equal(t, first, second, "identical seeds must produce identical sequences")

	Seed(43)
	third := Random(100).Float64s()
	assert.NotEqual(t, first, third, "different seeds should diverge")
}

func TestRandomRange(t *testing.T) {
	Seed(7)
	a := Random(3, 4)
	assert.Equal(t, tensor.Shape{3, 4}, a.Shape())
	assert.Equal(t, np.Float64, a.DType())

	for _, v := range a.Float64s() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUniformRange(t *testing.T) {
	Seed(7)
	a := Uniform(-5, 5, 1000)

	for _, v := range a.Float64s() {
		assert.GreaterOrEqual(t, v, -5.0)
		assert.Less(t, v, 5.0)
	}
}

func TestStandardNormal(t *testing.T) {
	Seed(7)
	a := StandardNormal(10000)

	vals := a.Float64s()
	var sum, sumSq float64
	for _, v := range vals {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
		sum += v
		sumSq += v * v
	}

	n := float64(len(vals))
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 0, mean, 0.05)
	assert.InDelta(t, 1, variance, 0.1)
}

func TestRandnOddLength(t *testing.T) {
	Seed(7)
	a := Randn(5)
	assert.Equal(t, tensor.Shape{5}, a.Shape())
}

func TestRandint(t *testing.T) {
	Seed(7)
	a := Randint(-3, 3, 1000)
	assert.Equal(t, np.Int64, a.DType())

	seen := map[int64]bool{}
	for _, v := range a.Int64s() {
		assert.GreaterOrEqual(t, v, int64(-3))
		assert.Less(t, v, int64(3))
		seen[v] = true
	}
	assert.Len(t, seen, 6, "all values in [-3, 3) should appear in 1000 draws")

	assert.Panics(t, func() { Randint(3, 3) })
}
