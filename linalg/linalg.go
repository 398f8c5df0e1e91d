// Copyright 2025 The Numeracy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides linear algebra on float tensors: determinants,
// cofactors, row echelon forms, linear solving and inversion.
//
// Example:
//
//	m, _ := tensor.FromRows(
//	    []float64{2, 3, 4, 1.5},
//	    []float64{0, 0, 9, 0.3},
//	    []float64{1, 1, 2, 9},
//	)
//	x, err := linalg.Solve(m) // [763/30, -16.5, 1/30]
package linalg

import (
	"github.com/born-ml/numeracy/internal/linalg"
	"github.com/born-ml/numeracy/tensor"
)

// NotInvertibleError carries the reduced augmented matrix of a singular
// input. It matches tensor.ErrMatrixNotInvertible.
type NotInvertibleError[T tensor.Float] = linalg.NotInvertibleError[T]

// Determinant returns the determinant of a square matrix.
func Determinant[T tensor.Float](m *tensor.Tensor[T]) (T, error) {
	return linalg.Determinant(m)
}

// Minor returns the determinant of m with row and col removed.
func Minor[T tensor.Float](m *tensor.Tensor[T], row, col int) (T, error) {
	return linalg.Minor(m, row, col)
}

// Cofactor returns (-1)^(row+col) · Minor(m, row, col).
func Cofactor[T tensor.Float](m *tensor.Tensor[T], row, col int) (T, error) {
	return linalg.Cofactor(m, row, col)
}

// CofactorMatrix returns the matrix of cofactors of m.
func CofactorMatrix[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.CofactorMatrix(m)
}

// Adjugate returns the transposed cofactor matrix of m.
func Adjugate[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.Adjugate(m)
}

// AdjugateInverse returns the inverse of m computed as Adjugate(m)/det(m).
func AdjugateInverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.AdjugateInverse(m)
}

// ColIsNull reports whether every entry of column col is zero.
func ColIsNull[T tensor.Float](m *tensor.Tensor[T], col int) (bool, error) {
	return linalg.ColIsNull(m, col)
}

// Echelon returns the row echelon form of m.
func Echelon[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.Echelon(m)
}

// ReducedEchelon returns the reduced row echelon form of m.
func ReducedEchelon[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.ReducedEchelon(m)
}

// Solve solves the system given as an augmented matrix [A | b].
func Solve[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.Solve(m)
}

// GaussJordanInverse returns the inverse of m by Gauss-Jordan elimination.
func GaussJordanInverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.GaussJordanInverse(m)
}

// Inverse returns the inverse of m.
//
// Example:
//
//	inv, err := linalg.Inverse(m)
//	if errors.Is(err, tensor.ErrMatrixNotInvertible) {
//	    // m is singular
//	}
func Inverse[T tensor.Float](m *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return linalg.Inverse(m)
}
