// Copyright 2026 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor1d

import (
	"github.com/stride-ml/stride/internal/tensor1d"
)

// Tensor is a strided one-dimensional view over shared storage.
//
// Views produced by Slice and GetView alias their parent's storage. Use
// Retain/Release to manage the storage lifetime explicitly; the buffer is
// freed when the last view is released.
type Tensor = tensor1d.Tensor

// Re-exported failure sentinels. Compare with errors.Is.
var (
	ErrIndexOutOfRange = tensor1d.ErrIndexOutOfRange
	ErrShapeMismatch   = tensor1d.ErrShapeMismatch
	ErrZeroStep        = tensor1d.ErrZeroStep
	ErrNegativeStep    = tensor1d.ErrNegativeStep
	ErrNotScalar       = tensor1d.ErrNotScalar
)

// Empty creates a tensor of n uninitialized cells.
//
// Example:
//
//	t, err := tensor1d.Empty(10)
func Empty(n int) (*Tensor, error) {
	return tensor1d.Empty(n)
}

// Zeros creates a tensor of n zero cells.
func Zeros(n int) (*Tensor, error) {
	return tensor1d.Zeros(n)
}

// Arange creates a tensor holding 0..n-1 as floats.
//
// Example:
//
//	t, err := tensor1d.Arange(10)  // [0.0, 1.0, ..., 9.0]
func Arange(n int) (*Tensor, error) {
	return tensor1d.Arange(n)
}

// FromSlice creates a tensor holding a copy of data.
// The round trip FromSlice(data).ToSlice() reproduces data exactly.
func FromSlice(data []float32) (*Tensor, error) {
	return tensor1d.FromSlice(data)
}
