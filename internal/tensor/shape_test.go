package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearIndexOf(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		coord Coordinate
		want  int
	}{
		{"origin", Shape{2, 3, 4}, Coordinate{0, 0, 0}, 0},
		{"middle", Shape{2, 3, 4}, Coordinate{0, 1, 2}, 14},
		{"outer", Shape{2, 3, 4}, Coordinate{1, 0, 3}, 19},
		{"last", Shape{2, 3, 4}, Coordinate{1, 2, 3}, 23},
		{"matrix", Shape{4, 3}, Coordinate{2, 1}, 6},
		{"vector", Shape{5}, Coordinate{4}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinearIndexOf(tt.shape, tt.coord))
			assert.Equal(t, tt.want, tt.shape.LinearIndexOf(tt.coord...))
		})
	}
}

func TestCoordinateOf(t *testing.T) {
	shape := Shape{2, 3, 4}
	assert.Equal(t, Coordinate{0, 1, 2}, CoordinateOf(shape, 14))
	assert.Equal(t, Coordinate{1, 0, 3}, CoordinateOf(shape, 19))
	assert.Equal(t, Coordinate{0, 0, 0}, shape.CoordinateOf(0))
}

func TestCodecBijection(t *testing.T) {
	shapes := []Shape{{1}, {7}, {3, 2}, {2, 3, 4}, {5, 1, 2, 3}}

	for _, shape := range shapes {
		t.Run(shape.String(), func(t *testing.T) {
			seen := make(map[int]bool)
			for i := 0; i < shape.NumElements(); i++ {
				coord := CoordinateOf(shape, i)
				require.True(t, shape.Contains(coord), "coordinate %v out of %v", coord, shape)
				assert.Equal(t, i, LinearIndexOf(shape, coord))
				seen[i] = true
			}
			assert.Len(t, seen, shape.NumElements())
		})
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{3, 2}.Validate())
	assert.NoError(t, Shape{0, 2}.Validate())
	assert.ErrorIs(t, Shape{}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
}

func TestShapeHelpers(t *testing.T) {
	s := Shape{4, 3, 2}
	assert.Equal(t, 24, s.NumElements())
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, "[4 3 2]", s.String())
	assert.True(t, s.Equal(Shape{4, 3, 2}))
	assert.False(t, s.Equal(Shape{4, 3}))

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 4, s[0], "Clone must not alias")

	assert.True(t, s.Contains(Coordinate{3, 2, 1}))
	assert.False(t, s.Contains(Coordinate{4, 0, 0}))
	assert.False(t, s.Contains(Coordinate{0, 0}))
}
