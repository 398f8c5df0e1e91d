package linalg

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// matrix is a private working copy of a rank-2 tensor with row operations.
// Entries are addressed (col, row) like tensor coordinates.
type matrix[T tensor.Float] struct {
	t          *tensor.Tensor[T]
	d          []T
	shape      tensor.Shape
	cols, rows int
}

func workingCopy[T tensor.Float](m *tensor.Tensor[T]) *matrix[T] {
	c := m.Clone()
	return &matrix[T]{t: c, d: c.Data(), shape: c.Shape(), cols: c.Cols(), rows: c.Rows()}
}

func (w *matrix[T]) idx(col, row int) int {
	return tensor.LinearIndexOf(w.shape, tensor.Coordinate{col, row})
}

func (w *matrix[T]) at(col, row int) T {
	return w.d[w.idx(col, row)]
}

// addRow adds row src to row dst.
func (w *matrix[T]) addRow(dst, src int) {
	for col := 0; col < w.cols; col++ {
		w.d[w.idx(col, dst)] += w.d[w.idx(col, src)]
	}
}

// divRow divides row by v.
func (w *matrix[T]) divRow(row int, v T) {
	for col := 0; col < w.cols; col++ {
		w.d[w.idx(col, row)] /= v
	}
}

// subRow subtracts k times row src from row dst.
func (w *matrix[T]) subRow(dst, src int, k T) {
	for col := 0; col < w.cols; col++ {
		w.d[w.idx(col, dst)] -= k * w.d[w.idx(col, src)]
	}
}

// colIsNullFrom reports whether column col is zero in every row from start.
func (w *matrix[T]) colIsNullFrom(col, start int) bool {
	for row := start; row < w.rows; row++ {
		if w.at(col, row) != 0 {
			return false
		}
	}
	return true
}

// ColIsNull reports whether every entry of column col is zero.
func ColIsNull[T tensor.Float](m *tensor.Tensor[T], col int) (bool, error) {
	if m.Rank() != 2 {
		return false, tensor.InvalidDimension(m.Rank())
	}
	c, err := m.Col(col)
	if err != nil {
		return false, err
	}
	for _, v := range c.Data() {
		if v != 0 {
			return false, nil
		}
	}
	return true, nil
}

// Echelon returns the row echelon form of m by Gaussian elimination.
//
// For each pivot column base, taken in row order: a column that is zero from
// row base down is skipped. Otherwise every row from base down is brought to
// a non-zero entry in column base by adding the rows below it, divided by
// that entry, and, below the pivot row, has the pivot row subtracted. A row
// that cannot get a non-zero entry from the rows below already has a zero
// there and is left alone.
//
// Example:
//
//	m, _ := tensor.FromRows(
//	    []float64{2, 3, 4, 1.5},
//	    []float64{0, 0, 9, 0.3},
//	    []float64{1, 1, 2, 9},
//	)
//	e, _ := linalg.Echelon(m)
//	// [1 1.5   2   0.75]
//	// [0 1   -18 -17.1 ]
//	// [0 0     1   1/30]
func Echelon[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if m.Rank() != 2 {
		return nil, tensor.InvalidDimension(m.Rank())
	}
	w := workingCopy(m)
	w.echelon()
	return w.t, nil
}

func (w *matrix[T]) echelon() {
	for base := 0; base < min(w.rows, w.cols); base++ {
		if w.colIsNullFrom(base, base) {
			continue
		}
		for row := base; row < w.rows; row++ {
			below := row + 1
			for w.at(base, row) == 0 && below < w.rows {
				w.addRow(row, below)
				below++
			}
			pivot := w.at(base, row)
			if pivot == 0 {
				continue
			}
			w.divRow(row, pivot)
			if row != base {
				w.subRow(row, base, 1)
			}
		}
	}
}

// ReducedEchelon returns the reduced row echelon form of m by Gauss-Jordan
// elimination: the echelon form with every entry above a pivot cleared,
// working from the last pivot upwards.
func ReducedEchelon[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if m.Rank() != 2 {
		return nil, tensor.InvalidDimension(m.Rank())
	}
	w := workingCopy(m)
	w.echelon()
	w.reduce()
	return w.t, nil
}

func (w *matrix[T]) reduce() {
	for base := min(w.rows, w.cols) - 1; base >= 0; base-- {
		for row := base - 1; row >= 0; row-- {
			w.subRow(row, base, w.at(base, row))
		}
	}
}
