// Copyright 2025 The Numeracy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides N-dimensional tensors for the numeracy library.
//
// # Overview
//
// A Tensor is a dense, row-major container of a single element type with a
// runtime shape. This package provides:
//   - Generic tensors of numbers, strings and booleans (Tensor[T])
//   - Construction from Go slices, fills and identity matrices
//   - Axis swapping, row and column extraction, sub-matrices and
//     concatenation
//   - Element-wise arithmetic and matrix multiplication
//
// # Axis Order
//
// Shapes list axes from the innermost to the outermost. A matrix with 2 rows
// of 3 columns has Shape{3, 2}, and its elements are addressed (col, row):
//
//	m, _ := tensor.FromRows(
//	    []float64{1, 2, 3},
//	    []float64{4, 5, 6},
//	)
//	m.Shape()          // [3 2]
//	v, _ := m.At(2, 0) // 3
//
// # Errors
//
// Every fallible operation returns an *Error whose Kind names the failure.
// Compare with the sentinels using errors.Is:
//
//	if _, err := tensor.Add(a, b); errors.Is(err, tensor.ErrInvalidShapes) {
//	    // shapes differ
//	}
//
// # Supported Data Types
//
// Any Go integer or floating-point type, string and bool. Arithmetic is
// limited to the Numeric types; linear algebra (package linalg) to the Float
// types.
package tensor
