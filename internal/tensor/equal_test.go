package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualTolerance(t *testing.T) {
	a := mustRows(t, []float64{1, 2}, []float64{3, 4})
	b := mustRows(t, []float64{1 + 1e-7, 2}, []float64{3, 4 - 1e-7})
	c := mustRows(t, []float64{1.001, 2}, []float64{3, 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestEqualReport(t *testing.T) {
	a := mustRows(t, []int{1, 2}, []int{3, 4})
	flat, err := FromShape([]int{1, 2, 3, 4}, Shape{4})
	assert.NoError(t, err)

	shapeEq, dtypeEq, elemsEq := a.EqualReport(flat)
	assert.False(t, shapeEq)
	assert.True(t, dtypeEq)
	assert.True(t, elemsEq)

	shapeEq, dtypeEq, elemsEq = a.EqualReport(nil)
	assert.False(t, shapeEq || dtypeEq || elemsEq)

	assert.False(t, a.Equal(NewEmpty[int](Shape{2, 2})))
}

func TestEqualExact(t *testing.T) {
	a, _ := FromSlice([]string{"a", "b"})
	b, _ := FromSlice([]string{"a", "b"})
	c, _ := FromSlice([]string{"a", "c"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
