package linalg

import (
	"github.com/born-ml/numeracy/internal/parallel"
	"github.com/born-ml/numeracy/internal/tensor"
)

// cofactors computes the cells of a cofactor matrix concurrently once the
// matrix has at least 16 of them.
var cofactors = parallel.DefaultConfig().WithMinChunk(16)

// Determinant returns the determinant of a square matrix by Laplace
// expansion along the first row.
//
// Returns InvalidDimension for a tensor that is not rank 2 and InvalidShape
// for a non-square matrix. The empty matrix left by removing the only row
// and column of a 1×1 matrix has determinant 1, so its cofactor is 1. The
// expansion is O(n!) and meant for small
// matrices; use GaussJordanInverse for anything larger than a handful of
// rows.
func Determinant[T tensor.Float](m *tensor.Tensor[T]) (T, error) {
	if err := checkSquare(m); err != nil {
		return 0, err
	}

	d := m.Data()
	switch n := m.Cols(); n {
	case 0:
		return 1, nil
	case 1:
		return d[0], nil
	case 2:
		a, b := m.MustAt(0, 0), m.MustAt(1, 0)
		c, e := m.MustAt(0, 1), m.MustAt(1, 1)
		return a*e - b*c, nil
	default:
		var sum T
		for col := 0; col < n; col++ {
			cof, err := Cofactor(m, 0, col)
			if err != nil {
				return 0, err
			}
			sum += m.MustAt(col, 0) * cof
		}
		return sum, nil
	}
}

// Minor returns the determinant of m with row and col removed.
func Minor[T tensor.Float](m *tensor.Tensor[T], row, col int) (T, error) {
	if err := checkSquare(m); err != nil {
		return 0, err
	}
	sub, err := m.WithoutRC(row, col)
	if err != nil {
		return 0, err
	}
	return Determinant(sub)
}

// Cofactor returns the signed minor (-1)^(row+col) · Minor(m, row, col).
func Cofactor[T tensor.Float](m *tensor.Tensor[T], row, col int) (T, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 != 0 {
		return -minor, nil
	}
	return minor, nil
}

// CofactorMatrix returns the matrix C with C[row][col] = Cofactor(m, row, col).
func CofactorMatrix[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if err := checkSquare(m); err != nil {
		return nil, err
	}

	shape := m.Shape()
	data := make([]T, m.NumElements())
	err := parallel.ForErr(len(data), func(i int) error {
		c := shape.CoordinateOf(i)
		cof, err := Cofactor(m, c[1], c[0])
		data[i] = cof
		return err
	}, cofactors)
	if err != nil {
		return nil, err
	}
	return tensor.FromShape(data, shape)
}

// Adjugate returns the transpose of the cofactor matrix.
func Adjugate[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, err
	}
	return c.Transpose()
}

// AdjugateInverse returns Adjugate(m) / Determinant(m).
//
// The determinant is compared against zero exactly; a nearly singular
// matrix yields a numerically poor inverse rather than an error. Returns
// ErrDeterminantIsZero for a singular matrix.
func AdjugateInverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, err
	}
	if det == 0 {
		return nil, tensor.ErrDeterminantIsZero
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, err
	}
	return tensor.MulScalar(adj, 1/det), nil
}
