package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRows[T Element](t *testing.T, rows ...[]T) *Tensor[T] {
	t.Helper()
	m, err := FromRows(rows...)
	require.NoError(t, err)
	return m
}

func nine(t *testing.T) *Tensor[int] {
	t.Helper()
	return mustRows(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{7, 8, 9})
}

func TestTranspose(t *testing.T) {
	m := mustRows(t, []int{1, 2, 3}, []int{4, 5, 6})

	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, tr.Shape())
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Data())

	back, err := tr.Transpose()
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	v := FromScalar(1)
	_, err = v.Transpose()
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestSwapAxesRank3(t *testing.T) {
	data := make([]int, 24)
	for i := range data {
		data[i] = i
	}
	x, err := FromShape(data, Shape{4, 3, 2})
	require.NoError(t, err)

	y, err := x.SwapAxes(0, 2)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 4}, y.Shape())

	for a := 0; a < 4; a++ {
		for b := 0; b < 3; b++ {
			for c := 0; c < 2; c++ {
				assert.Equal(t, x.MustAt(a, b, c), y.MustAt(c, b, a))
			}
		}
	}

	_, err = x.SwapAxes(0, 3)
	assert.ErrorIs(t, err, ErrInvalidIndices)
}

func TestRowCol(t *testing.T) {
	m := nine(t)

	row, err := m.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 9}, row.Data())
	assert.Equal(t, Shape{3}, row.Shape())

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 8}, col.Data())

	_, err = m.Row(3)
	assert.ErrorIs(t, err, ErrInvalidIndex)
	_, err = m.Col(-1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestSubmatrix(t *testing.T) {
	rows := make([][]int, 10)
	for r := range rows {
		rows[r] = make([]int, 10)
		for c := range rows[r] {
			rows[r][c] = r*10 + c
		}
	}
	m, err := FromSlice2D(rows)
	require.NoError(t, err)

	sub, err := m.Submatrix(Range{2, 6}, Range{3, 8})
	require.NoError(t, err)

	want := mustRows(t,
		[]int{32, 33, 34, 35},
		[]int{42, 43, 44, 45},
		[]int{52, 53, 54, 55},
		[]int{62, 63, 64, 65},
		[]int{72, 73, 74, 75},
	)
	assert.True(t, sub.Equal(want), "got\n%s", sub)
}

func TestSubmatrixErrors(t *testing.T) {
	m := nine(t)

	tests := []struct {
		name   string
		ranges []Range
		want   error
	}{
		{"too few ranges", []Range{{0, 1}}, ErrInvalidDimensions},
		{"past the end", []Range{{0, 4}, {0, 3}}, ErrInvalidBounds},
		{"empty range", []Range{{1, 1}, {0, 3}}, ErrInvalidBounds},
		{"negative start", []Range{{-1, 2}, {0, 3}}, ErrInvalidBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Submatrix(tt.ranges...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWithoutRC(t *testing.T) {
	m := nine(t)

	got, err := m.WithoutRC(1, 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustRows(t, []int{1, 3}, []int{7, 9})))

	got, err = m.WithoutRC(0, 2)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustRows(t, []int{4, 5}, []int{7, 8})))

	_, err = m.WithoutRC(3, 0)
	assert.ErrorIs(t, err, ErrInvalidIndices)
}

func TestWithoutCol(t *testing.T) {
	got, err := nine(t).WithoutCol(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(mustRows(t, []int{2, 3}, []int{5, 6}, []int{8, 9})))
}

func TestExpandAlongAxis(t *testing.T) {
	m1 := nine(t)
	m2 := mustRows(t, []int{10, 11, 12}, []int{13, 14, 15}, []int{16, 17, 18})

	cols, err := m1.ExpandAlongAxis(m2, 0)
	require.NoError(t, err)
	assert.True(t, cols.Equal(mustRows(t,
		[]int{1, 2, 3, 10, 11, 12},
		[]int{4, 5, 6, 13, 14, 15},
		[]int{7, 8, 9, 16, 17, 18},
	)))

	rows, err := m1.ExpandAlongAxis(m2, 1)
	require.NoError(t, err)
	assert.True(t, rows.Equal(mustRows(t,
		[]int{1, 2, 3},
		[]int{4, 5, 6},
		[]int{7, 8, 9},
		[]int{10, 11, 12},
		[]int{13, 14, 15},
		[]int{16, 17, 18},
	)))
}

func TestExpandFromEmpty(t *testing.T) {
	m := nine(t)

	acc := NewEmpty[int](Shape{0, 3})
	acc, err := acc.ExpandAlongAxis(m, 0)
	require.NoError(t, err)
	assert.Equal(t, Int, acc.DType())
	assert.True(t, acc.Equal(m))

	acc = NewEmpty[int](Shape{3, 0})
	for i := 0; i < 2; i++ {
		acc, err = acc.ExpandAlongAxis(m, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, Shape{3, 6}, acc.Shape())
}

func TestExpandWithEmpty(t *testing.T) {
	m := nine(t)

	tests := []struct {
		name  string
		empty Shape
		axis  int
	}{
		{"rows", Shape{3, 5}, 1},
		{"columns", Shape{2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.ExpandAlongAxis(NewEmpty[int](tt.empty), tt.axis)
			require.NoError(t, err)
			assert.Equal(t, Shape{3, 3}, got.Shape())
			assert.Len(t, got.Data(), got.Shape().NumElements())
			assert.True(t, got.Equal(m))

			_, err = got.At(2, 2)
			assert.NoError(t, err)
		})
	}
}

func TestExpandAlongAxisErrors(t *testing.T) {
	m := nine(t)
	v := FromScalar(1)

	_, err := m.ExpandAlongAxis(v, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = v.ExpandAlongAxis(v, 0)
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = m.ExpandAlongAxis(m, 2)
	assert.ErrorIs(t, err, ErrNotImplemented)

	narrow := mustRows(t, []int{1, 2}, []int{3, 4})
	_, err = m.ExpandAlongAxis(narrow, 1)
	assert.ErrorIs(t, err, ErrInvalidShapes)
}

func TestSplitUndoesExpand(t *testing.T) {
	m1 := nine(t)
	m2 := mustRows(t, []int{10, 11}, []int{13, 14}, []int{16, 17})

	joined, err := m1.ExpandAlongAxis(m2, 0)
	require.NoError(t, err)

	left, right, err := joined.Split(0, 3)
	require.NoError(t, err)
	assert.True(t, left.Equal(m1))
	assert.True(t, right.Equal(m2))

	joined, err = m1.ExpandAlongAxis(m1, 1)
	require.NoError(t, err)
	top, bottom, err := joined.Split(1, 3)
	require.NoError(t, err)
	assert.True(t, top.Equal(m1))
	assert.True(t, bottom.Equal(m1))

	_, _, err = joined.Split(1, 0)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}
