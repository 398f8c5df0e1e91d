package tensor

import "github.com/born-ml/numeracy/internal/cartesian"

// Range is a half-open interval [Start, End) along one axis.
type Range struct {
	Start, End int
}

// Len returns the number of positions in the range.
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// SwapAxes returns a new tensor with axes a and b exchanged: the element at
// coordinate c of the receiver is found at c with components a and b
// swapped in the result.
//
// This is the general N-dimensional transpose. Returns InvalidIndices if
// either axis is out of range.
//
// Example:
//
//	x := ... // Shape{4, 3, 2}
//	y, _ := x.SwapAxes(0, 2) // Shape{2, 3, 4}
func (t *Tensor[T]) SwapAxes(a, b int) (*Tensor[T], error) {
	if a < 0 || a >= len(t.shape) || b < 0 || b >= len(t.shape) {
		return nil, invalidIndices(a, b)
	}

	shape := t.shape.Clone()
	shape[a], shape[b] = t.shape[b], t.shape[a]

	data := make([]T, len(t.data))
	for i, v := range t.data {
		coord := CoordinateOf(t.shape, i)
		coord[a], coord[b] = coord[b], coord[a]
		data[LinearIndexOf(shape, coord)] = v
	}

	return &Tensor[T]{shape: shape, data: data, dtype: t.dtype}, nil
}

// Transpose returns the transpose of a rank-2 tensor.
// Returns InvalidDimension for any other rank.
func (t *Tensor[T]) Transpose() (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, invalidDimension(len(t.shape))
	}
	return t.SwapAxes(0, 1)
}

// Row returns row i of a rank-2 tensor as a rank-1 tensor.
// The row is a contiguous run of the buffer.
func (t *Tensor[T]) Row(i int) (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, invalidDimension(len(t.shape))
	}
	if i < 0 || i >= t.shape[1] {
		return nil, invalidIndex(i)
	}

	width := t.shape[0]
	start := LinearIndexOf(t.shape, Coordinate{0, i})
	data := make([]T, width)
	copy(data, t.data[start:start+width])
	return &Tensor[T]{shape: Shape{width}, data: data, dtype: t.dtype}, nil
}

// Col returns column j of a rank-2 tensor as a rank-1 tensor.
// It is defined as the row j of the transpose.
func (t *Tensor[T]) Col(j int) (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, invalidDimension(len(t.shape))
	}
	tr, err := t.Transpose()
	if err != nil {
		return nil, err
	}
	return tr.Row(j)
}

// Submatrix extracts the hyper-rectangle described by one range per axis
// (innermost axis first). Every point keeps its position relative to the
// range starts.
//
// Returns InvalidDimensions if the number of ranges differs from the rank,
// and InvalidBounds if a range is empty or leaves its axis.
//
// Example:
//
//	// columns 2..5 of rows 3..7
//	sub, err := m.Submatrix(tensor.Range{2, 6}, tensor.Range{3, 8})
func (t *Tensor[T]) Submatrix(ranges ...Range) (*Tensor[T], error) {
	if len(ranges) != len(t.shape) {
		return nil, invalidDimensions(len(ranges), len(t.shape))
	}

	shape := make(Shape, len(ranges))
	lists := make([][]int, len(ranges))
	for i, r := range ranges {
		if r.Len() == 0 || r.Start < 0 || r.End > t.shape[i] {
			return nil, ErrInvalidBounds
		}
		shape[i] = r.Len()
		lists[i] = cartesian.Ranges(r.Start, r.End)
	}

	data := make([]T, shape.NumElements())
	rel := make(Coordinate, len(ranges))
	for _, coord := range cartesian.Product(lists...) {
		for i, c := range coord {
			rel[i] = c - ranges[i].Start
		}
		data[LinearIndexOf(shape, rel)] = t.data[LinearIndexOf(t.shape, coord)]
	}

	return &Tensor[T]{shape: shape, data: data, dtype: t.dtype}, nil
}

// WithoutRC returns a rank-2 tensor with row and column col removed,
// preserving the order of the remaining elements.
func (t *Tensor[T]) WithoutRC(row, col int) (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, invalidDimension(len(t.shape))
	}
	if row < 0 || row >= t.shape[1] || col < 0 || col >= t.shape[0] {
		return nil, invalidIndices(row, col)
	}

	shape := Shape{t.shape[0] - 1, t.shape[1] - 1}
	data := make([]T, 0, shape.NumElements())
	for i, v := range t.data {
		c := CoordinateOf(t.shape, i)
		if c[0] != col && c[1] != row {
			data = append(data, v)
		}
	}
	return &Tensor[T]{shape: shape, data: data, dtype: t.dtype}, nil
}

// WithoutCol returns a rank-2 tensor with column col removed.
func (t *Tensor[T]) WithoutCol(col int) (*Tensor[T], error) {
	if len(t.shape) != 2 {
		return nil, invalidDimension(len(t.shape))
	}
	if col < 0 || col >= t.shape[0] {
		return nil, invalidIndex(col)
	}

	shape := Shape{t.shape[0] - 1, t.shape[1]}
	data := make([]T, 0, shape.NumElements())
	for i, v := range t.data {
		if CoordinateOf(t.shape, i)[0] != col {
			data = append(data, v)
		}
	}
	return &Tensor[T]{shape: shape, data: data, dtype: t.dtype}, nil
}

// ExpandAlongAxis concatenates other onto the receiver along axis and returns
// the result. The sizes of the other axes must match.
//
// Only rank-2 tensors along axis 0 (append columns) or axis 1 (append rows)
// are supported; other combinations fail with NotImplemented carrying
// (axis, rank).
//
// A tensor created by NewEmpty holds no elements: on either side it
// contributes nothing along axis, and the result takes the data type of the
// other operand.
func (t *Tensor[T]) ExpandAlongAxis(other *Tensor[T], axis int) (*Tensor[T], error) {
	if len(t.shape) != len(other.shape) {
		return nil, invalidDimensions(len(t.shape), len(other.shape))
	}
	if !Compatible(t.dtype, other.dtype) {
		return nil, invalidDataTypes(t.dtype, other.dtype)
	}
	if len(t.shape) != 2 || (axis != 0 && axis != 1) {
		return nil, &Error{Kind: KindNotImplemented, Ints: []int{axis, len(t.shape)}}
	}

	fixed := 1 - axis
	if t.shape[fixed] != other.shape[fixed] {
		return nil, invalidShapes(t.shape, other.shape)
	}

	dtype := t.dtype
	if dtype == Empty {
		dtype = other.dtype
	}
	extent, otherExtent := t.shape[axis], other.shape[axis]
	if len(t.data) == 0 {
		extent = 0
	}
	if len(other.data) == 0 {
		otherExtent = 0
	}

	shape := other.shape.Clone()
	shape[axis] = extent + otherExtent
	data := make([]T, 0, shape.NumElements())

	switch axis {
	case 1:
		data = append(data, t.data...)
		data = append(data, other.data...)
	case 0:
		for row := 0; row < shape[1]; row++ {
			if extent > 0 {
				start := LinearIndexOf(t.shape, Coordinate{0, row})
				data = append(data, t.data[start:start+extent]...)
			}
			if otherExtent > 0 {
				start := LinearIndexOf(other.shape, Coordinate{0, row})
				data = append(data, other.data[start:start+otherExtent]...)
			}
		}
	}

	return &Tensor[T]{shape: shape, data: data, dtype: dtype}, nil
}

// Split cuts a rank-2 tensor in two along axis at position at: the first
// part holds positions [0, at) and the second [at, size).
// It is the inverse of ExpandAlongAxis.
func (t *Tensor[T]) Split(axis, at int) (*Tensor[T], *Tensor[T], error) {
	if len(t.shape) != 2 || (axis != 0 && axis != 1) {
		return nil, nil, &Error{Kind: KindNotImplemented, Ints: []int{axis, len(t.shape)}}
	}
	if at <= 0 || at >= t.shape[axis] {
		return nil, nil, invalidIndex(at)
	}

	first := []Range{{0, t.shape[0]}, {0, t.shape[1]}}
	second := []Range{{0, t.shape[0]}, {0, t.shape[1]}}
	first[axis].End = at
	second[axis].Start = at

	a, err := t.Submatrix(first...)
	if err != nil {
		return nil, nil, err
	}
	b, err := t.Submatrix(second...)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
