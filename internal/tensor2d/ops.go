package tensor2d

import "github.com/pkg/errors"

// elementwise combines a and b cell by cell into a fresh tensor. Shapes must
// match, except that a single-element operand broadcasts as a per-cell
// constant. Neither operand is mutated.
func elementwise(a, b *Tensor, verb string, f func(x, y float32) float32) (*Tensor, error) {
	switch {
	case a.nrows == b.nrows && a.ncols == b.ncols:
		out, err := Empty(a.nrows, a.ncols)
		if err != nil {
			return nil, err
		}
		for r := 0; r < a.nrows; r++ {
			for c := 0; c < a.ncols; c++ {
				v := f(a.store.At(a.physical(r, c)), b.store.At(b.physical(r, c)))
				out.store.SetAt(out.physical(r, c), v)
			}
		}
		return out, nil
	case a.Size() == 1:
		x := a.store.At(a.physical(0, 0))
		return b.mapEach(func(y float32) float32 { return f(x, y) })
	case b.Size() == 1:
		y := b.store.At(b.physical(0, 0))
		return a.mapEach(func(x float32) float32 { return f(x, y) })
	default:
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot %s tensor of shape (%d, %d) with tensor of shape (%d, %d)",
			verb, a.nrows, a.ncols, b.nrows, b.ncols)
	}
}

// mapEach applies f to every element, producing a fresh tensor of the same
// shape.
func (t *Tensor) mapEach(f func(float32) float32) (*Tensor, error) {
	out, err := Empty(t.nrows, t.ncols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < t.nrows; r++ {
		for c := 0; c < t.ncols; c++ {
			out.store.SetAt(out.physical(r, c), f(t.store.At(t.physical(r, c))))
		}
	}
	return out, nil
}

// Add returns the elementwise sum of a and b in a freshly allocated tensor.
func Add(a, b *Tensor) (*Tensor, error) {
	return elementwise(a, b, "add", func(x, y float32) float32 { return x + y })
}

// Mul returns the elementwise product of a and b in a freshly allocated
// tensor.
func Mul(a, b *Tensor) (*Tensor, error) {
	return elementwise(a, b, "multiply", func(x, y float32) float32 { return x * y })
}

// AddScalar returns t with v added to every element, in a fresh tensor.
func (t *Tensor) AddScalar(v float32) (*Tensor, error) {
	return t.mapEach(func(x float32) float32 { return x + v })
}

// MulScalar returns t with every element multiplied by v, in a fresh tensor.
func (t *Tensor) MulScalar(v float32) (*Tensor, error) {
	return t.mapEach(func(x float32) float32 { return x * v })
}

// Dot returns the matrix product of a and b. a's column count must equal
// b's row count; the result has shape (a.Rows(), b.Cols()).
// C[i,j] = sum_k A[i,k] * B[k,j], accumulated in float32.
func Dot(a, b *Tensor) (*Tensor, error) {
	if a.ncols != b.nrows {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot take dot product of shape (%d, %d) with shape (%d, %d): %d != %d",
			a.nrows, a.ncols, b.nrows, b.ncols, a.ncols, b.nrows)
	}
	out, err := Empty(a.nrows, b.ncols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.nrows; i++ {
		for j := 0; j < b.ncols; j++ {
			var sum float32
			for k := 0; k < a.ncols; k++ {
				sum += a.store.At(a.physical(i, k)) * b.store.At(b.physical(k, j))
			}
			out.store.SetAt(out.physical(i, j), sum)
		}
	}
	return out, nil
}

// Reshape returns a rows×cols view over the same storage. The element count
// must be unchanged and the view must be contiguous: reinterpreting the
// strides of a gapped view would address the wrong cells, so it fails fast
// instead.
func (t *Tensor) Reshape(rows, cols int) (*Tensor, error) {
	if rows < 0 || cols < 0 || rows*cols != t.Size() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot reshape tensor of size %d to shape (%d, %d)", t.Size(), rows, cols)
	}
	if !t.contiguous() {
		return nil, errors.Wrapf(ErrNotContiguous,
			"strides (%d, %d) for shape (%d, %d)", t.rowStride, t.colStride, t.nrows, t.ncols)
	}
	t.store.Retain()
	return &Tensor{
		store:     t.store,
		rowOff:    t.rowOff,
		colOff:    t.colOff,
		nrows:     rows,
		ncols:     cols,
		rowStride: cols,
		colStride: 1,
	}, nil
}
