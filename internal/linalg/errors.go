package linalg

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// NotInvertibleError is returned by GaussJordanInverse when the left half of
// the reduced augmented matrix is not the identity.
//
// It matches tensor.ErrMatrixNotInvertible with errors.Is.
type NotInvertibleError[T tensor.Float] struct {
	// Augmented is the reduced [A | I] matrix that failed the check.
	Augmented *tensor.Tensor[T]
}

// Error implements the error interface.
func (e *NotInvertibleError[T]) Error() string {
	return tensor.ErrMatrixNotInvertible.Error()
}

// Unwrap returns tensor.ErrMatrixNotInvertible.
func (e *NotInvertibleError[T]) Unwrap() error {
	return tensor.ErrMatrixNotInvertible
}

// checkSquare validates that m is a square rank-2 tensor.
func checkSquare[T tensor.Float](m *tensor.Tensor[T]) error {
	if m.Rank() != 2 {
		return tensor.InvalidDimension(m.Rank())
	}
	if !m.IsSquare() {
		return tensor.InvalidShape(m.Shape())
	}
	return nil
}
