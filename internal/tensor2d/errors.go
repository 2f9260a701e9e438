package tensor2d

import "errors"

var (
	// ErrIndexOutOfRange indicates a row or column index outside the tensor's
	// bounds after negative-index normalization.
	ErrIndexOutOfRange = errors.New("tensor2d: index out of range")
	// ErrShapeMismatch indicates operands whose shapes cannot be combined.
	ErrShapeMismatch = errors.New("tensor2d: incompatible shapes")
	// ErrZeroStep indicates a slice step of zero.
	ErrZeroStep = errors.New("tensor2d: slice step cannot be zero")
	// ErrNegativeStep indicates a negative slice step, which is not supported.
	ErrNegativeStep = errors.New("tensor2d: slice step cannot be negative")
	// ErrNotScalar indicates Item was called on a tensor of size != 1.
	ErrNotScalar = errors.New("tensor2d: can only convert a tensor of size 1 to a scalar")
	// ErrNotContiguous indicates a view whose strides do not match a tightly
	// packed row-major layout, which cannot be reshaped in place.
	ErrNotContiguous = errors.New("tensor2d: tensor is not contiguous")
	// ErrRaggedRows indicates nested input rows of differing lengths.
	ErrRaggedRows = errors.New("tensor2d: all rows must have the same length")
)
