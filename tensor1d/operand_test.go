// Copyright 2026 Stride ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor1d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddScalarOperand(t *testing.T) {
	tn, err := Arange(5)
	require.NoError(t, err)

	sum, err := Add(tn, Scalar(1))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, sum.ToSlice())
}

func TestAddTensorOperand(t *testing.T) {
	a, _ := Arange(3)
	b, _ := FromSlice([]float32{10, 10, 10})

	sum, err := Add(a, Of(b))
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 11, 12}, sum.ToSlice())

	short, _ := Arange(2)
	_, err = Add(a, Of(short))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAddNilOperand(t *testing.T) {
	tn, _ := Arange(3)

	_, err := Add(tn, nil)
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
}

func TestSliceThroughFacade(t *testing.T) {
	tn, _ := Arange(20)
	v, err := tn.Slice(5, 15, 1)
	require.NoError(t, err)

	require.NoError(t, v.Set(0, 100))
	got, err := tn.Get(5)
	require.NoError(t, err)
	assert.Equal(t, float32(100), got)
}
