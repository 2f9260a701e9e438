package tensor2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float32{{10, 20}, {30, 40}})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{11, 22}, {33, 44}}, sum.ToRows())

	// Operands are untouched.
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, a.ToRows())
	assert.Equal(t, [][]float32{{10, 20}, {30, 40}}, b.ToRows())
}

func TestAddShapeMismatch(t *testing.T) {
	a, _ := Zeros(2, 3)
	b, _ := Zeros(3, 2)

	_, err := Add(a, b)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAddBroadcastsSingleElement(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	one, _ := FromRows([][]float32{{10}})

	sum, err := Add(a, one)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{11, 12}, {13, 14}}, sum.ToRows())

	sum, err = Add(one, a)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{11, 12}, {13, 14}}, sum.ToRows())
}

func TestMul(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float32{{2, 2}, {0.5, -1}})

	prod, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 4}, {1.5, -4}}, prod.ToRows())

	_, err = Mul(a, mustZeros(t, 1, 3))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestScalarOps(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2}, {3, 4}})

	sum, err := a.AddScalar(0.5)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1.5, 2.5}, {3.5, 4.5}}, sum.ToRows())

	prod, err := a.MulScalar(2)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 4}, {6, 8}}, prod.ToRows())

	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, a.ToRows())
}

func TestDot(t *testing.T) {
	a, _ := FromRows([][]float32{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float32{{5, 6}, {7, 8}})

	p, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{19, 22}, {43, 50}}, p.ToRows())
}

func TestDotShapeCheck(t *testing.T) {
	ok1, _ := Zeros(5, 4)
	ok2, _ := Zeros(4, 5)

	p, err := Dot(ok1, ok2)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Rows())
	assert.Equal(t, 5, p.Cols())

	bad, _ := Zeros(5, 4)
	_, err = Dot(ok1, bad)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDotOnStridedViews(t *testing.T) {
	m := grid(t, 4, 4)
	// Every other row and column: [[0, 2], [8, 10]].
	s, err := m.Slice(0, 4, 2, 0, 4, 2)
	require.NoError(t, err)

	p, err := Dot(s, s)
	require.NoError(t, err)
	// [[0*0+2*8, 0*2+2*10], [8*0+10*8, 8*2+10*10]]
	assert.Equal(t, [][]float32{{16, 20}, {80, 116}}, p.ToRows())
}

func TestReshapePreservesValues(t *testing.T) {
	seq, _ := Arange(20)
	m, err := seq.Reshape(4, 5)
	require.NoError(t, err)
	assert.Equal(t, [][]float32{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{10, 11, 12, 13, 14},
		{15, 16, 17, 18, 19},
	}, m.ToRows())
}

func TestReshapeSharesStorage(t *testing.T) {
	seq, _ := Arange(10)
	m, err := seq.Reshape(2, 5)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 42))
	v, err := seq.Get(0, 5)
	require.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

func TestReshapeSizeMismatch(t *testing.T) {
	seq, _ := Arange(10)
	_, err := seq.Reshape(3, 4)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestReshapeRequiresContiguous(t *testing.T) {
	m := grid(t, 4, 4)
	s, err := m.Slice(0, 4, 1, 0, 4, 2) // gapped column view
	require.NoError(t, err)

	_, err = s.Reshape(4, 2)
	assert.ErrorIs(t, err, ErrNotContiguous)
}

func mustZeros(t *testing.T, rows, cols int) *Tensor {
	t.Helper()
	z, err := Zeros(rows, cols)
	require.NoError(t, err)
	return z
}
