// Package tensor1d implements the one-dimensional tensor engine: strided
// views over shared, reference-counted float32 storage.
//
// A Tensor is a view descriptor (offset, size, stride) addressing a
// storage.Storage. Many tensors may alias the same storage; a write through
// one view is immediately visible through every other view of the same
// cells. The storage is freed when the last view referencing it is released.
package tensor1d

import (
	"github.com/pkg/errors"

	"github.com/stride-ml/stride/internal/storage"
)

// Tensor is a strided one-dimensional view over a shared Storage.
// Logical index i maps to physical cell offset + i*stride.
type Tensor struct {
	store  *storage.Storage
	offset int
	size   int
	stride int
}

// Empty creates a tensor of n uninitialized cells with unit stride.
func Empty(n int) (*Tensor, error) {
	store, err := storage.New(n)
	if err != nil {
		return nil, errors.Wrapf(err, "empty(%d)", n)
	}
	return &Tensor{store: store, offset: 0, size: n, stride: 1}, nil
}

// Zeros creates a tensor of n zero cells with unit stride.
func Zeros(n int) (*Tensor, error) {
	// Storage buffers are zero-initialized on allocation.
	return Empty(n)
}

// Arange creates a tensor holding 0..n-1 as floats.
func Arange(n int) (*Tensor, error) {
	t, err := Empty(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.size; i++ {
		t.store.SetAt(t.physical(i), float32(i))
	}
	return t, nil
}

// FromSlice creates a tensor holding a copy of data.
func FromSlice(data []float32) (*Tensor, error) {
	t, err := Empty(len(data))
	if err != nil {
		return nil, err
	}
	copy(t.store.Data(), data)
	return t, nil
}

// physical translates a logical index to a physical storage offset.
// It performs no bounds check and no negative-index normalization; both are
// the caller's responsibility. This keeps the translator reusable by get,
// set, slicing and formatting alike.
func (t *Tensor) physical(i int) int {
	return t.offset + i*t.stride
}

// normalize wraps a negative index around the tensor size and reports
// whether the result lies in [0, size).
func (t *Tensor) normalize(i int) (int, bool) {
	if i < 0 {
		i += t.size
	}
	return i, i >= 0 && i < t.size
}

// Size returns the number of logical elements.
func (t *Tensor) Size() int {
	return t.size
}

// Offset returns the view's physical offset into its storage.
func (t *Tensor) Offset() int {
	return t.offset
}

// Stride returns the step, in storage cells, between logical neighbors.
func (t *Tensor) Stride() int {
	return t.stride
}

// Get returns the element at index i. Negative indices wrap around.
func (t *Tensor) Get(i int) (float32, error) {
	ix, ok := t.normalize(i)
	if !ok {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d out of bounds for size %d", i, t.size)
	}
	return t.store.At(t.physical(ix)), nil
}

// Set writes the element at index i. Negative indices wrap around.
// The write is visible through every view aliasing the same cell.
func (t *Tensor) Set(i int, v float32) error {
	ix, ok := t.normalize(i)
	if !ok {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d out of bounds for size %d", i, t.size)
	}
	t.store.SetAt(t.physical(ix), v)
	return nil
}

// GetView returns a size-1 view aliasing the element at index i, the way
// indexing a torch tensor yields a one-element tensor rather than a scalar.
func (t *Tensor) GetView(i int) (*Tensor, error) {
	ix, ok := t.normalize(i)
	if !ok {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d out of bounds for size %d", i, t.size)
	}
	return t.Slice(ix, ix+1, 1)
}

// Item returns the sole element of a size-1 tensor.
func (t *Tensor) Item() (float32, error) {
	if t.size != 1 {
		return 0, errors.Wrapf(ErrNotScalar, "size %d", t.size)
	}
	return t.store.At(t.physical(0)), nil
}

// ToSlice returns the logical contents as a fresh slice.
func (t *Tensor) ToSlice() []float32 {
	out := make([]float32, t.size)
	for i := range out {
		out[i] = t.store.At(t.physical(i))
	}
	return out
}

// Retain adds a reference to the underlying storage.
func (t *Tensor) Retain() {
	t.store.Retain()
}

// Release drops this view's reference to the underlying storage, freeing
// the buffer when no other view references it. The tensor must not be used
// after Release.
func (t *Tensor) Release() {
	t.store.Release()
}
