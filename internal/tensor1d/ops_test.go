package tensor1d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a, _ := Arange(5)
	b, _ := FromSlice([]float32{10, 20, 30, 40, 50})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 21, 32, 43, 54}, sum.ToSlice())

	// Operands are untouched.
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, a.ToSlice())
	assert.Equal(t, []float32{10, 20, 30, 40, 50}, b.ToSlice())
}

func TestAddShapeMismatch(t *testing.T) {
	a, _ := Arange(5)
	b, _ := Arange(3)

	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAddBroadcastsSingleElement(t *testing.T) {
	a, _ := Arange(5)
	one, _ := FromSlice([]float32{1})

	sum, err := Add(a, one)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, sum.ToSlice())

	// Broadcasting works from either side.
	sum, err = Add(one, a)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, sum.ToSlice())
}

func TestAddStridedViews(t *testing.T) {
	tn, _ := Arange(20)
	evens, err := tn.Slice(0, 10, 2) // 0, 2, 4, 6, 8
	require.NoError(t, err)
	odds, err := tn.Slice(1, 11, 2) // 1, 3, 5, 7, 9
	require.NoError(t, err)

	sum, err := Add(evens, odds)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 5, 9, 13, 17}, sum.ToSlice())

	// The result owns fresh storage: writing to it leaves the views alone.
	require.NoError(t, sum.Set(0, 99))
	v, _ := evens.Get(0)
	assert.Equal(t, float32(0), v)
}

func TestAddScalar(t *testing.T) {
	tn, _ := Arange(4)

	out, err := tn.AddScalar(2.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 3.5, 4.5, 5.5}, out.ToSlice())
	assert.Equal(t, []float32{0, 1, 2, 3}, tn.ToSlice())
}

func TestAddEmpty(t *testing.T) {
	a, _ := Arange(0)
	b, _ := Arange(0)

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Size())
}
