// Copyright 2026 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor2d

import (
	"github.com/pkg/errors"

	"github.com/stride-ml/stride/internal/tensor2d"
)

// ErrUnsupportedOperand indicates an operand kind Add or Mul cannot combine
// with a tensor.
var ErrUnsupportedOperand = errors.New("tensor2d: unsupported operand")

// Operand is one arm of the tagged operand variant accepted by Add and Mul:
// either a Scalar or a tensor wrapped with Of. The set is closed, so
// unsupported operand kinds cannot be constructed outside this package.
type Operand interface {
	isOperand()
}

// Scalar is a float operand, broadcast per cell.
type Scalar float32

func (Scalar) isOperand() {}

type tensorOperand struct {
	t *Tensor
}

func (tensorOperand) isOperand() {}

// Of wraps a tensor as an Operand.
func Of(t *Tensor) Operand {
	return tensorOperand{t: t}
}

// Add returns t combined with op by elementwise addition, in a freshly
// allocated tensor. A Scalar operand adds a per-cell constant; a tensor
// operand must have the same shape as t, except that a single-element
// tensor broadcasts. Neither input is mutated.
func Add(t *Tensor, op Operand) (*Tensor, error) {
	switch v := op.(type) {
	case Scalar:
		return t.AddScalar(float32(v))
	case tensorOperand:
		return tensor2d.Add(t, v.t)
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperand, "%T", op)
	}
}

// Mul returns t combined with op by elementwise multiplication, in a
// freshly allocated tensor, under the same operand rules as Add.
func Mul(t *Tensor, op Operand) (*Tensor, error) {
	switch v := op.(type) {
	case Scalar:
		return t.MulScalar(float32(v))
	case tensorOperand:
		return tensor2d.Mul(t, v.t)
	default:
		return nil, errors.Wrapf(ErrUnsupportedOperand, "%T", op)
	}
}
