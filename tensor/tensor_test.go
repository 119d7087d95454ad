// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/backend/cpu"
	"github.com/numgo-ml/numgo/tensor"
)

// TestRawTensorThroughFacade exercises the low-level API as an external
// consumer would: allocate, fill, and run a backend op.
func TestRawTensorThroughFacade(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(a.AsFloat64(), []float64{1, 2, 3, 4})

	b, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(b.AsFloat64(), []float64{10, 20, 30, 40})

	var backend tensor.Backend = cpu.New()
	sum := backend.Add(a, b)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.AsFloat64())
}

func TestBroadcastShapes(t *testing.T) {
	shape, broadcast, err := tensor.BroadcastShapes(tensor.Shape{3, 1}, tensor.Shape{1, 4})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 4}, shape)
	assert.True(t, broadcast)

	_, _, err = tensor.BroadcastShapes(tensor.Shape{3}, tensor.Shape{4})
	assert.Error(t, err)
}
