package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtSet(t *testing.T) {
	m, err := FromRows([]float32{1, 2, 3}, []float32{4, 5, 6})
	require.NoError(t, err)

	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)

	require.NoError(t, m.Set(9, 0, 1))
	assert.Equal(t, float32(9), m.MustAt(0, 1))
	assert.Equal(t, []float32{1, 2, 3, 9, 5, 6}, m.Data())
}

func TestAtInvalid(t *testing.T) {
	m, err := FromRows([]int{1, 2}, []int{3, 4})
	require.NoError(t, err)

	_, err = m.At(0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, ErrInvalidIndices)
	var terr *Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, []int{2, 0}, terr.Ints)

	assert.ErrorIs(t, m.Set(1, 0, -1), ErrInvalidIndices)
	assert.Panics(t, func() { m.MustAt(5, 5) })
}

func TestClone(t *testing.T) {
	m, err := FromRows([]int{1, 2}, []int{3, 4})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, c.Set(7, 0, 0))
	assert.Equal(t, 1, m.MustAt(0, 0))
	assert.True(t, m.Shape().Equal(c.Shape()))
}

func TestSizes(t *testing.T) {
	m, err := FromRows([]float32{1, 2, 3}, []float32{4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rank())
	assert.Equal(t, 6, m.NumElements())
	assert.Equal(t, 4, m.ElementSize())
	assert.Equal(t, 24, m.ByteSize())
	assert.False(t, m.IsSquare())

	v := FromScalar(1.0)
	assert.Equal(t, 0, v.Rows())
	assert.Equal(t, 0, v.Cols())

	acc := NewEmpty[float64](Shape{0, 3})
	assert.Equal(t, 0, acc.ElementSize())
	assert.Equal(t, 0, acc.ByteSize())

	s := FromScalar("x")
	assert.Equal(t, String.Size(), s.ElementSize())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{invalidDimension(3), "tensor: invalid dimension 3"},
		{invalidDimensions(1, 2), "tensor: invalid dimensions [1 2]"},
		{invalidShapes(Shape{2, 2}, Shape{3, 2}), "tensor: invalid shapes [[2 2] [3 2]]"},
		{invalidDataTypes(Float32, Float64), "tensor: invalid data types [float32 float64]"},
		{SolveError(true, false, true), "tensor: matrix solve error [true false true]"},
		{ErrDeterminantIsZero, "tensor: determinant is zero"},
	}

	for _, tt := range tests {
		assert.EqualError(t, tt.err, tt.want)
	}
}

func TestErrorIs(t *testing.T) {
	err := NewError(KindNotImplemented, 1, 4)
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.NotErrorIs(t, err, ErrInvalidIndex)
	assert.ErrorIs(t, InvalidShape(Shape{0}), ErrInvalidShape)
	assert.ErrorIs(t, InvalidDimension(1), ErrInvalidDimension)
}
