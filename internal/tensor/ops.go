package tensor

import "github.com/born-ml/numeracy/internal/parallel"

// elementwise runs element-wise loops; large tensors are split across
// goroutines, each writing a disjoint range of the output.
var elementwise = parallel.DefaultConfig()

// checkElementwise validates two operands of an element-wise operation:
// rank, then data type, then shape.
func checkElementwise[T Numeric](a, b *Tensor[T]) error {
	if len(a.shape) != len(b.shape) {
		return invalidDimensions(len(a.shape), len(b.shape))
	}
	if a.dtype != b.dtype {
		return invalidDataTypes(a.dtype, b.dtype)
	}
	if !a.shape.Equal(b.shape) {
		return invalidShapes(a.shape, b.shape)
	}
	return nil
}

// Add returns the element-wise sum a + b.
//
// The operands must have the same rank (InvalidDimensions), data type
// (InvalidDataTypes) and shape (InvalidShapes), checked in that order.
// Neither operand is modified.
func Add[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	data := make([]T, len(a.data))
	parallel.For(len(data), func(i int) {
		data[i] = a.data[i] + b.data[i]
	}, elementwise)
	return &Tensor[T]{shape: a.shape.Clone(), data: data, dtype: a.dtype}, nil
}

// Sub returns the element-wise difference a - b.
// Validation is that of Add.
func Sub[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	if err := checkElementwise(a, b); err != nil {
		return nil, err
	}
	data := make([]T, len(a.data))
	parallel.For(len(data), func(i int) {
		data[i] = a.data[i] - b.data[i]
	}, elementwise)
	return &Tensor[T]{shape: a.shape.Clone(), data: data, dtype: a.dtype}, nil
}

// Dot returns the dot product of two rank-1 tensors.
//
// Returns InvalidDimensions if either operand is not rank 1 and
// InvalidLengths if their lengths differ.
func Dot[T Numeric](a, b *Tensor[T]) (T, error) {
	var sum T
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return sum, invalidDimensions(len(a.shape), len(b.shape))
	}
	if len(a.data) != len(b.data) {
		return sum, &Error{Kind: KindInvalidLengths, Ints: []int{len(a.data), len(b.data)}}
	}
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}
	return sum, nil
}

// MatMul returns the matrix product a·b of two rank-2 tensors.
//
// The inner dimensions must agree: a has as many columns (a.shape[0]) as b
// has rows (b.shape[1]). The result has Shape{b.shape[0], a.shape[1]}; each
// element is the dot product of a row of a and a column of b.
//
// Example:
//
//	a, _ := tensor.FromRows([]float64{1, 2}, []float64{3, 4}, []float64{5, 6}) // 3×2
//	b, _ := tensor.FromRows([]float64{1, 0, 1}, []float64{0, 1, 1})          // 2×3
//	c, _ := tensor.MatMul(a, b)                                               // 3×3
func MatMul[T Numeric](a, b *Tensor[T]) (*Tensor[T], error) {
	if len(a.shape) != 2 || len(b.shape) != 2 {
		return nil, invalidDimensions(len(a.shape), len(b.shape))
	}
	if a.shape[0] != b.shape[1] {
		return nil, invalidShapes(a.shape, b.shape)
	}
	if a.dtype != b.dtype {
		return nil, invalidDataTypes(a.dtype, b.dtype)
	}

	rows, cols := a.shape[1], b.shape[0]
	bt, err := b.Transpose()
	if err != nil {
		return nil, err
	}

	shape := Shape{cols, rows}
	data := make([]T, 0, rows*cols)
	for r := 0; r < rows; r++ {
		row, err := a.Row(r)
		if err != nil {
			return nil, err
		}
		for c := 0; c < cols; c++ {
			col, err := bt.Row(c)
			if err != nil {
				return nil, err
			}
			v, err := Dot(row, col)
			if err != nil {
				return nil, err
			}
			data = append(data, v)
		}
	}
	return &Tensor[T]{shape: shape, data: data, dtype: a.dtype}, nil
}

// MulScalar returns a new tensor with every element multiplied by scalar.
func MulScalar[T Numeric](t *Tensor[T], scalar T) *Tensor[T] {
	data := make([]T, len(t.data))
	parallel.For(len(data), func(i int) {
		data[i] = t.data[i] * scalar
	}, elementwise)
	return &Tensor[T]{shape: t.shape.Clone(), data: data, dtype: t.dtype}
}
