package tensor

// FromScalar creates a rank-1 tensor holding the single value v.
func FromScalar[T Element](v T) *Tensor[T] {
	return newTensor(Shape{1}, []T{v})
}

// FromSlice creates a rank-1 tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T Element](data []T) (*Tensor[T], error) {
	if len(data) == 0 {
		return nil, invalidShape(Shape{0})
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return newTensor(Shape{len(buf)}, buf), nil
}

// FromShape creates a tensor of the given shape from a flat buffer laid out
// in linear order. The buffer is copied.
func FromShape[T Element](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, invalidShape(shape)
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return newTensor(shape.Clone(), buf), nil
}

// FromSlice2D creates a rank-2 tensor from a slice of rows.
// Rows are flattened in order; the result has Shape{len(row), len(rows)}.
//
// Returns an InhomogenousLength error carrying every row's length if the
// rows differ in length.
func FromSlice2D[T Element](rows [][]T) (*Tensor[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, invalidShape(Shape{0, len(rows)})
	}

	width := len(rows[0])
	lengths := make([]int, len(rows))
	homogenous := true
	for i, row := range rows {
		lengths[i] = len(row)
		if len(row) != width {
			homogenous = false
		}
	}
	if !homogenous {
		return nil, &Error{Kind: KindInhomogenousLength, Ints: lengths}
	}

	data := make([]T, 0, width*len(rows))
	for _, row := range rows {
		data = append(data, row...)
	}
	return newTensor(Shape{width, len(rows)}, data), nil
}

// FromRows is FromSlice2D with the rows given as arguments.
//
// Example:
//
//	m, err := tensor.FromRows(
//	    []float64{1, 2, 3},
//	    []float64{4, 5, 6},
//	)
func FromRows[T Element](rows ...[]T) (*Tensor[T], error) {
	return FromSlice2D(rows)
}

// FromSlice3D creates a rank-3 tensor from blocks of rows.
// The result has Shape{len(row), len(block), len(blocks)}.
//
// Returns an InhomogenousLength error carrying the length of every row (in
// block order) if rows or blocks differ in length.
func FromSlice3D[T Element](blocks [][][]T) (*Tensor[T], error) {
	if len(blocks) == 0 || len(blocks[0]) == 0 || len(blocks[0][0]) == 0 {
		return nil, invalidShape(Shape{0, 0, len(blocks)})
	}

	height := len(blocks[0])
	width := len(blocks[0][0])
	var lengths []int
	homogenous := true
	for _, block := range blocks {
		if len(block) != height {
			homogenous = false
		}
		for _, row := range block {
			lengths = append(lengths, len(row))
			if len(row) != width {
				homogenous = false
			}
		}
	}
	if !homogenous {
		return nil, &Error{Kind: KindInhomogenousLength, Ints: lengths}
	}

	data := make([]T, 0, width*height*len(blocks))
	for _, block := range blocks {
		for _, row := range block {
			data = append(data, row...)
		}
	}
	return newTensor(Shape{width, height, len(blocks)}, data), nil
}

// NewEmpty creates a tensor with the given shape, no elements and data type
// Empty. It exists only as an accumulator seed for ExpandAlongAxis, which
// lets it absorb the data type of the first piece concatenated into it.
func NewEmpty[T Element](shape Shape) *Tensor[T] {
	return &Tensor[T]{
		shape: shape.Clone(),
		data:  []T{},
		dtype: Empty,
	}
}

// Full creates a tensor of the given shape with every element set to v.
func Full[T Element](shape Shape, v T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = v
	}
	return newTensor(shape.Clone(), data), nil
}

// Zeros creates a tensor of the given shape filled with zeros.
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	return Full(shape, T(0))
}

// Null creates a zero tensor with the same shape as a reference shape.
// It is an alias of Zeros kept for the linear algebra vocabulary, where an
// all-zero matrix is the null matrix.
func Null[T Numeric](shape Shape) (*Tensor[T], error) {
	return Zeros[T](shape)
}

// Identity creates an n×n identity matrix.
func Identity[T Numeric](n int) (*Tensor[T], error) {
	if n <= 0 {
		return nil, invalidShape(Shape{n, n})
	}
	shape := Shape{n, n}
	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		data[LinearIndexOf(shape, Coordinate{i, i})] = 1
	}
	return newTensor(shape, data), nil
}

// IdentityLike creates a rank-2 tensor of the given shape with ones on the
// leading diagonal (coordinates (i, i)) and zeros elsewhere. For a
// non-square shape only min(cols, rows) ones are set.
func IdentityLike[T Numeric](shape Shape) (*Tensor[T], error) {
	if len(shape) != 2 {
		return nil, invalidDimension(len(shape))
	}
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	n := min(shape[0], shape[1])
	for i := 0; i < n; i++ {
		t.data[LinearIndexOf(shape, Coordinate{i, i})] = 1
	}
	return t, nil
}
