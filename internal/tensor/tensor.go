package tensor

import "fmt"

// Tensor is a dense, row-major, runtime-shaped container of T.
//
// The element buffer is flat; its layout is fixed by the shape through
// CoordinateOf and LinearIndexOf. Every Tensor owns its buffer: operations
// return new tensors and never alias the receiver, except Data, which is an
// explicit view.
//
// Example:
//
//	m, _ := tensor.FromRows([]float32{1, 2, 3}, []float32{4, 5, 6})
//	m.Shape()     // [3 2]
//	v, _ := m.At(2, 1) // column 2, row 1 => 6
type Tensor[T Element] struct {
	shape Shape
	data  []T
	dtype DataType
}

// newTensor wraps data without copying it. data must hold shape.NumElements()
// values.
func newTensor[T Element](shape Shape, data []T) *Tensor[T] {
	return &Tensor[T]{
		shape: shape,
		data:  data,
		dtype: DataTypeOf[T](),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.dtype
}

// NumElements returns the number of stored elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// ElementSize returns the byte size of one element of the tensor's data
// type. It is 0 for an Empty accumulator.
func (t *Tensor[T]) ElementSize() int {
	return t.dtype.Size()
}

// ByteSize returns the total size of the element buffer in bytes.
func (t *Tensor[T]) ByteSize() int {
	return t.NumElements() * t.ElementSize()
}

// Data returns the element buffer in linear order.
//
// WARNING: the slice is the tensor's own storage; writes through it modify
// the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		shape: t.shape.Clone(),
		data:  data,
		dtype: t.dtype,
	}
}

// checkCoordinate validates that coord addresses an element.
func (t *Tensor[T]) checkCoordinate(coord []int) error {
	if len(coord) != len(t.shape) {
		return invalidDimensions(len(coord), len(t.shape))
	}
	if !t.shape.Contains(coord) {
		return invalidIndices(coord...)
	}
	return nil
}

// At returns the element at the given coordinate (innermost axis first).
//
// Returns an InvalidDimensions error if the number of components differs from
// the rank, and InvalidIndices if any component is out of range.
func (t *Tensor[T]) At(coord ...int) (T, error) {
	if err := t.checkCoordinate(coord); err != nil {
		var zero T
		return zero, err
	}
	return t.data[LinearIndexOf(t.shape, coord)], nil
}

// MustAt is like At but panics on an invalid coordinate.
// Use it only where the coordinate was derived from the tensor's own shape.
func (t *Tensor[T]) MustAt(coord ...int) T {
	v, err := t.At(coord...)
	if err != nil {
		panic(fmt.Sprintf("MustAt%v: %v", coord, err))
	}
	return v
}

// Set stores value at the given coordinate (innermost axis first).
// Errors are those of At.
func (t *Tensor[T]) Set(value T, coord ...int) error {
	if err := t.checkCoordinate(coord); err != nil {
		return err
	}
	t.data[LinearIndexOf(t.shape, coord)] = value
	return nil
}

// Rows returns the number of rows of a rank-2 tensor (shape[1]).
// It returns 0 for other ranks.
func (t *Tensor[T]) Rows() int {
	if len(t.shape) != 2 {
		return 0
	}
	return t.shape[1]
}

// Cols returns the number of columns of a rank-2 tensor (shape[0]).
// It returns 0 for other ranks.
func (t *Tensor[T]) Cols() int {
	if len(t.shape) != 2 {
		return 0
	}
	return t.shape[0]
}

// IsSquare reports whether the tensor is a rank-2 tensor with as many rows
// as columns.
func (t *Tensor[T]) IsSquare() bool {
	return len(t.shape) == 2 && t.shape[0] == t.shape[1]
}
