package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := mustRows(t, []float64{1, 2}, []float64{3, 4})
	b := mustRows(t, []float64{10, 20}, []float64{30, 40})

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data(), "operands are not modified")
}

func TestAddValidation(t *testing.T) {
	a := mustRows(t, []int{1, 2}, []int{3, 4})

	_, err := Add(a, FromScalar(1))
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Add(a, mustRows(t, []int{1, 2, 3}, []int{4, 5, 6}))
	assert.ErrorIs(t, err, ErrInvalidShapes)

	// An accumulator seed carries the Empty tag and is not addable.
	_, err = Sub(a, NewEmpty[int](Shape{2, 2}))
	require.ErrorIs(t, err, ErrInvalidDataTypes)
	var terr *Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, []DataType{Int, Empty}, terr.DataTypes)
}

func TestDot(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3})
	require.NoError(t, err)
	b, err := FromSlice([]int{4, 5, 6})
	require.NoError(t, err)

	got, err := Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, 32, got)

	short, err := FromSlice([]int{1, 2})
	require.NoError(t, err)
	_, err = Dot(a, short)
	assert.ErrorIs(t, err, ErrInvalidLengths)

	_, err = Dot(a, nine(t))
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestMatMul(t *testing.T) {
	a := mustRows(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	b := mustRows(t, []float64{1, 0, 1}, []float64{0, 1, 1})

	c, err := MatMul(a, b)
	require.NoError(t, err)

	want := mustRows(t,
		[]float64{1, 2, 3},
		[]float64{3, 4, 7},
		[]float64{5, 6, 11},
	)
	assert.True(t, c.Equal(want), "got\n%s", c)

	_, err = MatMul(a, a)
	assert.ErrorIs(t, err, ErrInvalidShapes)
}

func TestMatMulIdentity(t *testing.T) {
	m := nine(t)
	id, err := Identity[int](3)
	require.NoError(t, err)

	got, err := MatMul(m, id)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))

	got, err = MatMul(id, m)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestMulScalar(t *testing.T) {
	m := mustRows(t, []int32{1, -2}, []int32{3, 0})
	got := MulScalar(m, 3)
	assert.Equal(t, []int32{3, -6, 9, 0}, got.Data())
	assert.Equal(t, m.Shape(), got.Shape())
}

func TestAddLarge(t *testing.T) {
	n := 3 * elementwise.MinChunkSize
	a, err := Full(Shape{n}, 1.5)
	require.NoError(t, err)
	b, err := Full(Shape{n}, 2.0)
	require.NoError(t, err)

	sum, err := Add(a, b)
	require.NoError(t, err)
	for i, v := range sum.Data() {
		require.Equal(t, 3.5, v, "element %d", i)
	}

	scaled := MulScalar(sum, 2)
	assert.Equal(t, 7.0, scaled.Data()[n-1])
}
