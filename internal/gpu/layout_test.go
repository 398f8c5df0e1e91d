package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/numeracy/internal/tensor"
)

func vertices(t *testing.T, width, count int) *tensor.Tensor[float32] {
	t.Helper()
	v, err := tensor.Zeros[float32](tensor.Shape{width, count})
	require.NoError(t, err)
	return v
}

func TestVertexLayoutPlain(t *testing.T) {
	layout, err := VertexLayoutOf(vertices(t, 7, 3))
	require.NoError(t, err)

	assert.Equal(t, uint64(28), layout.Stride)
	assert.Equal(t, 3, layout.VertexCount)
	assert.False(t, layout.HasNormals)
	require.Len(t, layout.Attributes, 3)

	offsets := []uint64{0, 12, 24}
	for i, a := range layout.Attributes {
		assert.Equal(t, uint32(i), a.Location)
		assert.Equal(t, offsets[i], a.Offset, a.Name)
	}
	assert.Equal(t, 1, layout.Attributes[2].Components)
}

func TestVertexLayoutNormals(t *testing.T) {
	layout, err := VertexLayoutOf(vertices(t, 10, 4))
	require.NoError(t, err)

	assert.Equal(t, uint64(40), layout.Stride)
	assert.True(t, layout.HasNormals)
	require.Len(t, layout.Attributes, 4)
	assert.Equal(t, "normal", layout.Attributes[3].Name)
	assert.Equal(t, uint64(28), layout.Attributes[3].Offset)
}

func TestVertexLayoutFloat64(t *testing.T) {
	v, err := tensor.Zeros[float64](tensor.Shape{7, 1})
	require.NoError(t, err)

	layout, err := VertexLayoutOf(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(56), layout.Stride)
	assert.Equal(t, uint64(48), layout.Attributes[2].Offset)
}

func TestVertexLayoutErrors(t *testing.T) {
	_, err := VertexLayoutOf(vertices(t, 8, 2))
	assert.ErrorIs(t, err, ErrVertexWidth)

	flat, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)
	_, err = VertexLayoutOf(flat)
	assert.ErrorIs(t, err, tensor.ErrInvalidDimension)
}

func TestAlignUniform(t *testing.T) {
	tests := []struct {
		size, want uint64
	}{
		{0, 0},
		{1, 16},
		{16, 16},
		{17, 32},
		{64, 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, alignUniform(tt.size))
	}
}
