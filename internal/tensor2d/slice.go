package tensor2d

import "github.com/pkg/errors"

// ceilDiv is integer division rounding up, for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// axisView is the per-axis slicing transform: normalize negative bounds,
// clamp into [0, size], and derive the new extent, offset delta and stride.
func axisView(start, stop, step, size, stride int) (newSize, offDelta, newStride int, err error) {
	if step == 0 {
		return 0, 0, 0, errors.WithStack(ErrZeroStep)
	}
	if step < 0 {
		return 0, 0, 0, errors.Wrapf(ErrNegativeStep, "step %d", step)
	}
	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}
	start = clamp(start, 0, size)
	stop = clamp(stop, 0, size)

	if stop > start {
		newSize = ceilDiv(stop-start, step)
	}
	return newSize, start * stride, stride * step, nil
}

// Slice returns a view of t covering [rowStart, rowStop) by rowStep on the
// row axis and [colStart, colStop) by colStep on the column axis. The view
// shares t's storage.
//
// Bounds follow torch slicing rules per axis: negative bounds wrap around
// the axis size and out-of-range bounds clamp silently to [0, size], so a
// stop at or beyond the axis size means "to the end". Degenerate ranges
// yield valid empty views. Steps must be positive.
//
// Slicing a slice composes, because each transform is applied to the
// current view's offsets and strides, not the root tensor's.
func (t *Tensor) Slice(rowStart, rowStop, rowStep, colStart, colStop, colStep int) (*Tensor, error) {
	nrows, rowDelta, rowStride, err := axisView(rowStart, rowStop, rowStep, t.nrows, t.rowStride)
	if err != nil {
		return nil, errors.Wrap(err, "row axis")
	}
	ncols, colDelta, colStride, err := axisView(colStart, colStop, colStep, t.ncols, t.colStride)
	if err != nil {
		return nil, errors.Wrap(err, "column axis")
	}
	t.store.Retain()
	return &Tensor{
		store:     t.store,
		rowOff:    t.rowOff + rowDelta,
		colOff:    t.colOff + colDelta,
		nrows:     nrows,
		ncols:     ncols,
		rowStride: rowStride,
		colStride: colStride,
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
