// Copyright 2025 The Numeracy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// Type aliases for public API

// Element is the constraint for values a Tensor can hold.
type Element = tensor.Element

// Numeric is the constraint for element types that support arithmetic.
type Numeric = tensor.Numeric

// Float is the constraint for floating-point element types.
type Float = tensor.Float

// DataType is the runtime tag of a tensor's element type.
type DataType = tensor.DataType

// Data type constants.
const (
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	String  DataType = tensor.String
	Bool    DataType = tensor.Bool
	Empty   DataType = tensor.Empty
)

// Shape represents the dimensions of a tensor, innermost axis first.
// Example: Shape{4, 3} is a matrix of 3 rows of 4 columns.
type Shape = tensor.Shape

// Coordinate is one index per axis, innermost axis first.
type Coordinate = tensor.Coordinate

// Range is a half-open interval [Start, End) along one axis.
type Range = tensor.Range

// Tensor is a dense N-dimensional tensor of T.
//
// Example:
//
//	m, _ := tensor.FromRows([]float32{1, 2}, []float32{3, 4})
//	t, _ := m.Transpose()
type Tensor[T Element] = tensor.Tensor[T]

// Epsilon is the tolerance of Equal for floating-point elements.
const Epsilon = tensor.Epsilon

// DataTypeOf returns the data type tag of T.
func DataTypeOf[T Element]() DataType {
	return tensor.DataTypeOf[T]()
}

// CoordinateOf converts a linear offset into the coordinate it addresses.
func CoordinateOf(shape Shape, linear int) Coordinate {
	return tensor.CoordinateOf(shape, linear)
}

// LinearIndexOf converts a coordinate into its linear offset.
func LinearIndexOf(shape Shape, coord Coordinate) int {
	return tensor.LinearIndexOf(shape, coord)
}

// Creation functions

// FromScalar creates a rank-1 tensor holding v.
func FromScalar[T Element](v T) *Tensor[T] {
	return tensor.FromScalar(v)
}

// FromSlice creates a rank-1 tensor from a copy of data.
//
// Example:
//
//	v, err := tensor.FromSlice([]float64{1, 2, 3})
func FromSlice[T Element](data []T) (*Tensor[T], error) {
	return tensor.FromSlice(data)
}

// FromShape creates a tensor of the given shape from a copy of a flat buffer.
//
// Example:
//
//	x, err := tensor.FromShape([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
func FromShape[T Element](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromShape(data, shape)
}

// FromSlice2D creates a matrix from a slice of equally long rows.
func FromSlice2D[T Element](rows [][]T) (*Tensor[T], error) {
	return tensor.FromSlice2D(rows)
}

// FromRows creates a matrix from rows given as arguments.
//
// Example:
//
//	m, err := tensor.FromRows(
//	    []float64{1, 2},
//	    []float64{3, 4},
//	)
func FromRows[T Element](rows ...[]T) (*Tensor[T], error) {
	return tensor.FromRows(rows...)
}

// FromSlice3D creates a rank-3 tensor from blocks of rows.
func FromSlice3D[T Element](blocks [][][]T) (*Tensor[T], error) {
	return tensor.FromSlice3D(blocks)
}

// NewEmpty creates an element-less accumulator for ExpandAlongAxis.
//
// Example:
//
//	acc := tensor.NewEmpty[float64](tensor.Shape{0, 3})
//	for _, block := range blocks {
//	    acc, err = acc.ExpandAlongAxis(block, 0)
//	}
func NewEmpty[T Element](shape Shape) *Tensor[T] {
	return tensor.NewEmpty[T](shape)
}

// Full creates a tensor with every element set to v.
func Full[T Element](shape Shape, v T) (*Tensor[T], error) {
	return tensor.Full(shape, v)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x, err := tensor.Zeros[float32](tensor.Shape{4, 4})
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Null creates a zero tensor; see Zeros.
func Null[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Null[T](shape)
}

// Identity creates an n×n identity matrix.
//
// Example:
//
//	id, err := tensor.Identity[float64](3)
func Identity[T Numeric](n int) (*Tensor[T], error) {
	return tensor.Identity[T](n)
}

// IdentityLike creates a matrix of the given shape with ones on the leading
// diagonal.
func IdentityLike[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.IdentityLike[T](shape)
}

// Convert returns a copy of t with elements converted to To.
//
// Example:
//
//	f := tensor.Convert[float64](ints)
func Convert[To, From Numeric](t *Tensor[From]) *Tensor[To] {
	return tensor.Convert[To](t)
}

// Arithmetic

// Add returns the element-wise sum a + b.
func Add[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Add(a, b)
}

// Sub returns the element-wise difference a - b.
func Sub[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.Sub(a, b)
}

// Dot returns the dot product of two rank-1 tensors.
func Dot[T Numeric](a, b *Tensor[T]) (T, error) {
	return tensor.Dot(a, b)
}

// MatMul returns the matrix product a·b.
//
// Example:
//
//	c, err := tensor.MatMul(a, b) // a is m×k, b is k×n, c is m×n
func MatMul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	return tensor.MatMul(a, b)
}

// MulScalar returns t with every element multiplied by scalar.
func MulScalar[T Numeric](t *Tensor[T], scalar T) *Tensor[T] {
	return tensor.MulScalar(t, scalar)
}
