package tensor

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	ints := mustRows(t, []int{1, 2}, []int{3, 4})
	floats := Convert[float32](ints)

	assert.Equal(t, Float32, floats.DType())
	assert.Equal(t, ints.Shape(), floats.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4}, floats.Data())

	back := Convert[int8](mustRows(t, []float64{1.9, -2.7}))
	assert.Equal(t, []int8{1, -2}, back.Data())
}

func TestBytes(t *testing.T) {
	v, err := FromSlice([]float32{1.5, -2})
	require.NoError(t, err)

	raw, err := v.Bytes()
	require.NoError(t, err)
	require.Len(t, raw, 8)
	assert.Equal(t, math.Float32bits(1.5), binary.NativeEndian.Uint32(raw[0:4]))
	assert.Equal(t, math.Float32bits(-2), binary.NativeEndian.Uint32(raw[4:8]))
	assert.NotNil(t, v.Pointer())

	s, err := FromSlice([]string{"a"})
	require.NoError(t, err)
	_, err = s.Bytes()
	assert.ErrorIs(t, err, ErrInvalidDataTypes)

	empty := NewEmpty[float32](Shape{0})
	raw, err = empty.Bytes()
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.Nil(t, empty.Pointer())
}
