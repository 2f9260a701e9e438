// Copyright 2026 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor2d provides two-dimensional tensors with torch-like view
// semantics.
//
// # Overview
//
// A Tensor is a strided view (per-axis offsets and strides over shape
// rows×cols, row-major) of a shared, reference-counted float32 storage.
// Slicing and reshaping never copy: they produce new views over the same
// storage, so a write through one view is visible through every other view
// aliasing the same cells.
//
// # Basic Usage
//
//	t, _ := tensor2d.Arange(10)       // shape (1, 10)
//	m, _ := t.Reshape(2, 5)           // shape (2, 5), same storage
//	v, _ := m.Get(1, -1)              // 9.0
//	p, _ := tensor2d.Dot(m, mT)       // matrix product
//
// # Indexing and Slicing
//
// Negative row/column indices wrap around their axis. Slice takes a
// start/stop/step triple per axis; negative bounds wrap, out-of-range bounds
// clamp silently into [0, size], and degenerate ranges yield valid empty
// views. Steps must be positive.
//
// # Reshape
//
// Reshape returns a view over the same storage with row-major strides for
// the new shape. It requires a contiguous view: reshaping a strided slice
// fails with ErrNotContiguous instead of silently addressing wrong cells.
//
// # Memory Management
//
// Each view holds one reference to its storage. Release drops it; the
// buffer is freed when the last view referencing it is released.
package tensor2d
