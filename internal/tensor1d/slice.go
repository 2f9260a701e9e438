package tensor1d

import "github.com/pkg/errors"

// ceilDiv is integer division rounding up, for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Slice returns a view of t covering [start, stop) with the given step.
// The view shares t's storage: writes through either are visible to both.
//
// Bounds follow torch slicing rules: negative start/stop wrap around the
// size, and out-of-range bounds clamp silently to [0, size] rather than
// failing, so stop >= size means "to the end". A degenerate range yields a
// valid empty view. Step must be positive.
//
// Slicing a slice composes, because the new offset and stride are derived
// from the current view's, not the root tensor's.
func (t *Tensor) Slice(start, stop, step int) (*Tensor, error) {
	if step == 0 {
		return nil, errors.WithStack(ErrZeroStep)
	}
	if step < 0 {
		return nil, errors.Wrapf(ErrNegativeStep, "step %d", step)
	}
	if start < 0 {
		start += t.size
	}
	if stop < 0 {
		stop += t.size
	}
	start = clamp(start, 0, t.size)
	stop = clamp(stop, 0, t.size)

	size := 0
	if stop > start {
		size = ceilDiv(stop-start, step)
	}
	t.store.Retain()
	return &Tensor{
		store:  t.store,
		offset: t.offset + start*t.stride,
		size:   size,
		stride: t.stride * step,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
