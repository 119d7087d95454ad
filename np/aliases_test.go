// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package np_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/np"
)

// assertSameResult checks that two arrays agree in shape, dtype, and data.
func assertSameResult(t *testing.T, want, got *np.NDArray) {
	t.Helper()
	assert.Equal(t, want.Shape(), got.Shape())
	assert.Equal(t, want.DType(), got.DType())
	if want.DType() == np.Bool {
		assert.Equal(t, want.Bools(), got.Bools())
	} else {
		assert.Equal(t, want.Float64s(), got.Float64s())
	}
}

// TestMaxMatchesAmax checks np.Max against np.Amax over axis and keepdims
// combinations.
func TestMaxMatchesAmax(t *testing.T) {
	a, err := np.FromSlice([]float64{1, 5, 3, 4, 2, 6}, 2, 3)
	require.NoError(t, err)

	axes := []*int{nil, np.Axis(0), np.Axis(1), np.Axis(-1)}
	for _, axis := range axes {
		for _, keepdims := range []bool{false, true} {
			assertSameResult(t, np.Amax(a, axis, keepdims), np.Max(a, axis, keepdims))
		}
	}
}

// TestMinMatchesAmin checks np.Min against np.Amin over axis and keepdims
// combinations.
func TestMinMatchesAmin(t *testing.T) {
	a, err := np.FromSlice([]float64{1, 5, 3, 4, 2, 6}, 2, 3)
	require.NoError(t, err)

	axes := []*int{nil, np.Axis(0), np.Axis(1), np.Axis(-1)}
	for _, axis := range axes {
		for _, keepdims := range []bool{false, true} {
			assertSameResult(t, np.Amin(a, axis, keepdims), np.Min(a, axis, keepdims))
		}
	}
}

// TestRoundMatchesAround checks np.Round against np.Around across decimals.
func TestRoundMatchesAround(t *testing.T) {
	a, err := np.FromSlice([]float64{0.5, 1.5, 2.675, -1234.5, 0.125})
	require.NoError(t, err)

	for _, decimals := range []int{-2, -1, 0, 1, 2, 3} {
		assertSameResult(t, np.Around(a, decimals), np.Round(a, decimals))
	}
}

// TestAliasesOnIntegerAndBoolInputs covers the non-float dtypes the aliases
// must forward unchanged.
func TestAliasesOnIntegerAndBoolInputs(t *testing.T) {
	i, err := np.Asarray([]int64{3, -7, 5})
	require.NoError(t, err)
	assertSameResult(t, np.Amax(i, nil, false), np.Max(i, nil, false))
	assertSameResult(t, np.Around(i, 1), np.Round(i, 1))

	b, err := np.Asarray([]bool{true, false})
	require.NoError(t, err)
	assertSameResult(t, np.Amax(b, nil, false), np.Max(b, nil, false))
	assertSameResult(t, np.Amin(b, nil, false), np.Min(b, nil, false))
}

// TestAliasesPropagatePanics checks that invalid arguments fail through the
// alias exactly as they do through the delegate.
func TestAliasesPropagatePanics(t *testing.T) {
	a, err := np.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)

	assert.Panics(t, func() { np.Amax(a, np.Axis(5), false) })
	assert.Panics(t, func() { np.Max(a, np.Axis(5), false) })
	assert.Panics(t, func() { np.Min(a, np.Axis(5), false) })
}
