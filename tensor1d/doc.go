// Copyright 2026 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor1d provides one-dimensional tensors with torch-like view
// semantics.
//
// # Overview
//
// A Tensor is a strided view (offset, size, stride) over a shared,
// reference-counted float32 storage. Slicing never copies: it produces a new
// view over the same storage, so a write through one view is visible through
// every other view aliasing the same cells.
//
// # Basic Usage
//
//	t, _ := tensor1d.Arange(20)       // [0.0, 1.0, ..., 19.0]
//	v, _ := t.Slice(5, 15, 1)         // view of t[5:15]
//	_ = v.Set(0, 100)                 // t.Get(5) now returns 100
//	sum, _ := tensor1d.Add(t, tensor1d.Scalar(1))
//
// # Indexing and Slicing
//
// Negative indices wrap around the size, as in torch: Get(-1) is the last
// element. Slice bounds also wrap when negative and clamp silently into
// [0, size] when out of range; a degenerate range yields a valid empty view.
// Slice steps must be positive.
//
// # Memory Management
//
// Each view holds one reference to its storage. Release drops it; the
// buffer is freed when the last view referencing it is released, so a view
// stays valid after its parent has been released.
package tensor1d
