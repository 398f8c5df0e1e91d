// Package linalg implements linear algebra on rank-2 floating-point tensors:
// determinants and cofactors by Laplace expansion, row echelon forms by
// Gaussian elimination, and solving and inversion by Gauss-Jordan
// elimination.
//
// Matrices are *tensor.Tensor values with Shape{cols, rows}. All functions
// leave their arguments untouched and return new tensors.
package linalg
