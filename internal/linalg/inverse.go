package linalg

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// GaussJordanInverse returns the inverse of a square matrix by reducing the
// augmented matrix [A | I] and reading the inverse off its right half.
//
// If the left half does not reduce to the identity the matrix is singular
// and a *NotInvertibleError carrying the reduced augmented matrix is
// returned.
func GaussJordanInverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := checkSquare(m); err != nil {
		return nil, err
	}

	n := m.Cols()
	id, err := tensor.Identity[T](n)
	if err != nil {
		return nil, err
	}
	augmented, err := m.ExpandAlongAxis(id, 0)
	if err != nil {
		return nil, err
	}
	reduced, err := ReducedEchelon(augmented)
	if err != nil {
		return nil, err
	}

	left, right, err := reduced.Split(0, n)
	if err != nil {
		return nil, err
	}
	if !left.Equal(id) {
		return nil, &NotInvertibleError[T]{Augmented: reduced}
	}
	return right, nil
}

// Inverse returns the inverse of a square matrix.
// It is GaussJordanInverse; AdjugateInverse gives the same result for small
// matrices at a much higher cost.
func Inverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return GaussJordanInverse(m)
}
