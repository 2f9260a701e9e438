package tensor1d

import "errors"

var (
	// ErrIndexOutOfRange indicates an element index outside [0, size) after
	// negative-index normalization.
	ErrIndexOutOfRange = errors.New("tensor1d: index out of range")
	// ErrShapeMismatch indicates operands whose sizes cannot be combined.
	ErrShapeMismatch = errors.New("tensor1d: incompatible shapes")
	// ErrZeroStep indicates a slice step of zero.
	ErrZeroStep = errors.New("tensor1d: slice step cannot be zero")
	// ErrNegativeStep indicates a negative slice step, which is not supported.
	ErrNegativeStep = errors.New("tensor1d: slice step cannot be negative")
	// ErrNotScalar indicates Item was called on a tensor of size != 1.
	ErrNotScalar = errors.New("tensor1d: can only convert a tensor of size 1 to a scalar")
)
