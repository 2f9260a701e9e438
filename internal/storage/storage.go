// Package storage provides the reference-counted flat buffer that backs
// tensor views. A Storage has no knowledge of the tensors addressing it;
// the only back-reference is the count of live views.
package storage

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ErrAllocation indicates a buffer could not be allocated.
var ErrAllocation = errors.New("storage: allocation failed")

// Storage is a reference-counted buffer of float32 cells shared by any
// number of tensor views. The reference count is atomic and deallocation is
// mutex-guarded, so retain/release are safe across goroutines.
//
// WARNING: the cell data itself is not synchronized. Concurrent writes
// through aliasing views require external locking.
type Storage struct {
	data []float32
	refs atomic.Int32
	mu   sync.Mutex // for safe deallocation
}

// New allocates a zero-initialized Storage of n cells with refcount 1.
func New(n int) (*Storage, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrAllocation, "negative size %d", n)
	}
	s := &Storage{data: make([]float32, n)}
	s.refs.Store(1)
	return s, nil
}

// Len returns the number of cells in the buffer.
func (s *Storage) Len() int {
	return len(s.data)
}

// Data returns the underlying cell slice.
// WARNING: direct access to shared memory. Use with caution.
func (s *Storage) Data() []float32 {
	return s.data
}

// At returns the cell at physical index i.
// Panics if i is outside the buffer: callers translate and bounds-check
// logical indices before reaching the storage layer.
func (s *Storage) At(i int) float32 {
	if i < 0 || i >= len(s.data) {
		panic(fmt.Sprintf("storage: physical index %d out of bounds of %d", i, len(s.data)))
	}
	return s.data[i]
}

// SetAt writes the cell at physical index i.
// The write is visible through every view sharing this Storage.
func (s *Storage) SetAt(i int, v float32) {
	if i < 0 || i >= len(s.data) {
		panic(fmt.Sprintf("storage: physical index %d out of bounds of %d", i, len(s.data)))
	}
	s.data[i] = v
}

// Retain increments the reference count. Called whenever a new view is
// constructed over this Storage.
func (s *Storage) Retain() {
	s.refs.Add(1)
}

// Release decrements the reference count and frees the buffer when it
// reaches zero. Releasing past zero is a programming error.
func (s *Storage) Release() {
	if s.refs.Add(-1) == 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.data = nil
	}
}

// RefCount returns the current number of live references.
func (s *Storage) RefCount() int32 {
	return s.refs.Load()
}
