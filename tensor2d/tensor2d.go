// Copyright 2026 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor2d

import (
	"github.com/stride-ml/stride/internal/tensor2d"
)

// Tensor is a strided two-dimensional view over shared storage.
//
// Views produced by Slice and Reshape alias their parent's storage. Use
// Retain/Release to manage the storage lifetime explicitly; the buffer is
// freed when the last view is released.
type Tensor = tensor2d.Tensor

// Re-exported failure sentinels. Compare with errors.Is.
var (
	ErrIndexOutOfRange = tensor2d.ErrIndexOutOfRange
	ErrShapeMismatch   = tensor2d.ErrShapeMismatch
	ErrZeroStep        = tensor2d.ErrZeroStep
	ErrNegativeStep    = tensor2d.ErrNegativeStep
	ErrNotScalar       = tensor2d.ErrNotScalar
	ErrNotContiguous   = tensor2d.ErrNotContiguous
	ErrRaggedRows      = tensor2d.ErrRaggedRows
)

// Empty creates an uninitialized rows×cols tensor in row-major layout.
func Empty(rows, cols int) (*Tensor, error) {
	return tensor2d.Empty(rows, cols)
}

// Zeros creates a zero-filled rows×cols tensor.
func Zeros(rows, cols int) (*Tensor, error) {
	return tensor2d.Zeros(rows, cols)
}

// Arange creates a (1, n) tensor holding 0..n-1 as floats.
//
// Example:
//
//	t, _ := tensor2d.Arange(10)
//	m, _ := t.Reshape(2, 5)
func Arange(n int) (*Tensor, error) {
	return tensor2d.Arange(n)
}

// FromRows creates a tensor holding a copy of the given rows, which must be
// rectangular. The round trip FromRows(rows).ToRows() reproduces rows
// exactly.
func FromRows(rows [][]float32) (*Tensor, error) {
	return tensor2d.FromRows(rows)
}

// Dot returns the matrix product of a and b.
func Dot(a, b *Tensor) (*Tensor, error) {
	return tensor2d.Dot(a, b)
}
