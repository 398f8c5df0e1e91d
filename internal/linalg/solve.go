package linalg

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// Solve solves the linear system given as an augmented matrix [A | b], where
// A is n×n and b is the last column, and returns the solution as a rank-1
// tensor of length n.
//
// Returns ErrAugmentedMatrix unless m has exactly one more column than rows.
// After reduction the coefficient part must equal the identity; otherwise a
// MatrixSolve error carries the (shape, data type, elements) checks of the
// comparison, which fails for singular or inconsistent systems.
func Solve[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if m.Rank() != 2 {
		return nil, tensor.InvalidDimension(m.Rank())
	}
	if m.Cols() != m.Rows()+1 {
		return nil, tensor.ErrAugmentedMatrix
	}

	reduced, err := ReducedEchelon(m)
	if err != nil {
		return nil, err
	}
	id, err := tensor.IdentityLike[T](reduced.Shape())
	if err != nil {
		return nil, err
	}
	diff, err := tensor.Sub(reduced, id)
	if err != nil {
		return nil, err
	}
	residue, err := diff.WithoutCol(m.Cols() - 1)
	if err != nil {
		return nil, err
	}
	null, err := tensor.Null[T](residue.Shape())
	if err != nil {
		return nil, err
	}

	shapeEq, dtypeEq, elemsEq := residue.EqualReport(null)
	if !shapeEq || !dtypeEq || !elemsEq {
		return nil, tensor.SolveError(shapeEq, dtypeEq, elemsEq)
	}
	return reduced.Col(m.Cols() - 1)
}
