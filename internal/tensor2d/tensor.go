// Package tensor2d implements the two-dimensional tensor engine. It is the
// structural sibling of tensor1d: strided row/column views over shared,
// reference-counted float32 storage, with per-axis offsets and strides so
// that slices of slices compose.
package tensor2d

import (
	"github.com/pkg/errors"

	"github.com/stride-ml/stride/internal/storage"
)

// Tensor is a strided two-dimensional view over a shared Storage.
// Logical (r, c) maps to physical cell
// rowOff + r*rowStride + colOff + c*colStride.
type Tensor struct {
	store     *storage.Storage
	rowOff    int
	colOff    int
	nrows     int
	ncols     int
	rowStride int
	colStride int
}

// Empty creates an uninitialized rows×cols tensor in row-major layout.
func Empty(rows, cols int) (*Tensor, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(storage.ErrAllocation, "negative shape (%d, %d)", rows, cols)
	}
	store, err := storage.New(rows * cols)
	if err != nil {
		return nil, errors.Wrapf(err, "empty(%d, %d)", rows, cols)
	}
	return &Tensor{
		store:     store,
		nrows:     rows,
		ncols:     cols,
		rowStride: cols,
		colStride: 1,
	}, nil
}

// Zeros creates a zero-filled rows×cols tensor.
func Zeros(rows, cols int) (*Tensor, error) {
	// Storage buffers are zero-initialized on allocation.
	return Empty(rows, cols)
}

// Arange creates a (1, n) tensor holding 0..n-1 as floats. Combine with
// Reshape to lay the sequence out over multiple rows.
func Arange(n int) (*Tensor, error) {
	t, err := Empty(1, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.store.SetAt(t.physical(0, i), float32(i))
	}
	return t, nil
}

// FromRows creates a tensor holding a copy of the given rows, which must be
// rectangular.
func FromRows(rows [][]float32) (*Tensor, error) {
	nrows := len(rows)
	ncols := 0
	if nrows > 0 {
		ncols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != ncols {
			return nil, errors.Wrapf(ErrRaggedRows, "row %d has %d elements, want %d", i, len(row), ncols)
		}
	}
	t, err := Empty(nrows, ncols)
	if err != nil {
		return nil, err
	}
	data := t.store.Data()
	for i, row := range rows {
		copy(data[i*ncols:(i+1)*ncols], row)
	}
	return t, nil
}

// physical translates logical (r, c) to a physical storage offset. No bounds
// check, no negative-index normalization; callers validate first. Keeping
// the translator raw lets get, set, slicing and formatting share it.
func (t *Tensor) physical(r, c int) int {
	return t.rowOff + r*t.rowStride + t.colOff + c*t.colStride
}

// normalize wraps negative indices around the axis sizes and reports whether
// both land in bounds.
func (t *Tensor) normalize(r, c int) (int, int, bool) {
	if r < 0 {
		r += t.nrows
	}
	if c < 0 {
		c += t.ncols
	}
	ok := r >= 0 && r < t.nrows && c >= 0 && c < t.ncols
	return r, c, ok
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	return t.nrows
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	return t.ncols
}

// Size returns the total number of logical elements.
func (t *Tensor) Size() int {
	return t.nrows * t.ncols
}

// Strides returns the row and column strides, in storage cells.
func (t *Tensor) Strides() (row, col int) {
	return t.rowStride, t.colStride
}

// Offsets returns the row and column components of the view's physical
// offset into its storage.
func (t *Tensor) Offsets() (row, col int) {
	return t.rowOff, t.colOff
}

// contiguous reports whether the view is a tightly packed row-major layout.
func (t *Tensor) contiguous() bool {
	return t.rowStride == t.ncols && t.colStride == 1
}

// Get returns the element at (r, c). Negative indices wrap around their axis.
func (t *Tensor) Get(r, c int) (float32, error) {
	row, col, ok := t.normalize(r, c)
	if !ok {
		return 0, errors.Wrapf(ErrIndexOutOfRange,
			"index (%d, %d) out of bounds for shape (%d, %d)", r, c, t.nrows, t.ncols)
	}
	return t.store.At(t.physical(row, col)), nil
}

// Set writes the element at (r, c). Negative indices wrap around their axis.
// The write is visible through every view aliasing the same cell.
func (t *Tensor) Set(r, c int, v float32) error {
	row, col, ok := t.normalize(r, c)
	if !ok {
		return errors.Wrapf(ErrIndexOutOfRange,
			"index (%d, %d) out of bounds for shape (%d, %d)", r, c, t.nrows, t.ncols)
	}
	t.store.SetAt(t.physical(row, col), v)
	return nil
}

// Item returns the sole element of a size-1 tensor.
func (t *Tensor) Item() (float32, error) {
	if t.Size() != 1 {
		return 0, errors.Wrapf(ErrNotScalar, "shape (%d, %d)", t.nrows, t.ncols)
	}
	return t.store.At(t.physical(0, 0)), nil
}

// ToRows returns the logical contents as a fresh nested slice, one inner
// slice per row.
func (t *Tensor) ToRows() [][]float32 {
	out := make([][]float32, t.nrows)
	for r := 0; r < t.nrows; r++ {
		row := make([]float32, t.ncols)
		for c := 0; c < t.ncols; c++ {
			row[c] = t.store.At(t.physical(r, c))
		}
		out[r] = row
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
