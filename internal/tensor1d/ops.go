package tensor1d

import "github.com/pkg/errors"

// Add returns the elementwise sum of a and b in a freshly allocated tensor.
// Sizes must match, except that a single-element operand broadcasts as a
// per-cell constant. Neither operand is mutated.
func Add(a, b *Tensor) (*Tensor, error) {
	switch {
	case a.size == b.size:
		out, err := Empty(a.size)
		if err != nil {
			return nil, err
		}
		for i := 0; i < out.size; i++ {
			v := a.store.At(a.physical(i)) + b.store.At(b.physical(i))
			out.store.SetAt(out.physical(i), v)
		}
		return out, nil
	case a.size == 1:
		return b.AddScalar(a.store.At(a.physical(0)))
	case b.size == 1:
		return a.AddScalar(b.store.At(b.physical(0)))
	default:
		return nil, errors.Wrapf(ErrShapeMismatch,
			"cannot add tensor of size %d to tensor of size %d", a.size, b.size)
	}
}

// AddScalar returns t with v added to every element, in a fresh tensor.
func (t *Tensor) AddScalar(v float32) (*Tensor, error) {
	out, err := Empty(t.size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.size; i++ {
		out.store.SetAt(out.physical(i), t.store.At(t.physical(i))+v)
	}
	return out, nil
}
