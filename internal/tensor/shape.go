package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
//
// Axes are listed from the innermost (fastest varying) to the outermost.
// A rank-2 tensor with 3 rows of 4 columns has Shape{4, 3}.
type Shape []int

// Coordinate is one index per axis, in the same axis order as Shape.
// For a rank-2 tensor a coordinate is (col, row).
type Coordinate []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that the shape has at least one axis and no negative axis.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return invalidShape(s)
	}
	for _, dim := range s {
		if dim < 0 {
			return invalidShape(s)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// Contains reports whether coord has one component per axis and every
// component lies within its axis.
func (s Shape) Contains(coord Coordinate) bool {
	if len(coord) != len(s) {
		return false
	}
	for i, c := range coord {
		if c < 0 || c >= s[i] {
			return false
		}
	}
	return true
}

// CoordinateOf converts a linear offset into a coordinate.
// See CoordinateOf.
func (s Shape) CoordinateOf(linear int) Coordinate {
	return CoordinateOf(s, linear)
}

// LinearIndexOf converts a coordinate into a linear offset.
// See LinearIndexOf.
func (s Shape) LinearIndexOf(coord ...int) int {
	return LinearIndexOf(s, coord)
}

// CoordinateOf converts a linear offset into the coordinate it addresses
// under shape.
//
// Axes are walked from the outermost to the innermost. At each axis the
// remaining capacity is split into equal sections, one per position along
// the axis; the section that holds the offset is the axis component. All
// divisions truncate.
//
// No bounds checking is done: callers validate linear first.
func CoordinateOf(shape Shape, linear int) Coordinate {
	coord := make(Coordinate, len(shape))
	capacity := shape.NumElements()
	rest := linear
	for i := len(shape) - 1; i >= 0; i-- {
		section := capacity / shape[i]
		c := rest / section
		rest -= c * section
		capacity /= shape[i]
		coord[i] = c
	}
	return coord
}

// LinearIndexOf converts a coordinate into its linear offset under shape:
// the sum over axes of coord[i] times the product of all more inner axes.
//
// No bounds checking is done: callers validate coord first.
func LinearIndexOf(shape Shape, coord Coordinate) int {
	linear := 0
	for i := len(shape) - 1; i >= 0; i-- {
		stride := 1
		for j := 0; j < i; j++ {
			stride *= shape[j]
		}
		linear += coord[i] * stride
	}
	return linear
}
