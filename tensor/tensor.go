// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor exposes the low-level tensor runtime the np array API is
// built on: shapes, dtypes, the raw tensor representation, and the Backend
// compute interface.
//
// Most users should use the np package instead. This package exists for
// advanced interop: wrapping raw buffers, implementing custom backends, and
// inspecting array internals.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float64, tensor.CPU)
//	data := raw.AsFloat64()
package tensor

import (
	"github.com/numgo-ml/numgo/internal/tensor"
)

// DType is a constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU Device = tensor.CPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a dtype-tagged buffer
// with shape and row-major strides, shared via reference counting.
type RawTensor = tensor.RawTensor

// Backend defines the interface a compute backend must implement to execute
// array operations. See backend/cpu for the pure Go implementation.
type Backend = tensor.Backend

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
// Memory is allocated zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// BroadcastShapes computes the broadcast shape for two shapes following
// NumPy broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}
