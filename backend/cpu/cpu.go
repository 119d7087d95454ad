// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu exposes the pure Go CPU backend of the NumGo tensor runtime.
package cpu

import (
	internalcpu "github.com/numgo-ml/numgo/internal/backend/cpu"
	"github.com/numgo-ml/numgo/tensor"
)

// Backend represents the CPU backend implementation.
//
// All array operations are implemented as pure Go kernels; large flat loops
// are chunked across goroutines.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
