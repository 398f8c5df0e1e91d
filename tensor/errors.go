// Copyright 2025 The Numeracy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// Error is the error type returned by tensor operations.
type Error = tensor.Error

// ErrorKind classifies an Error.
type ErrorKind = tensor.ErrorKind

// Sentinels for errors.Is. Each matches any Error of its kind.
var (
	ErrInvalidDimension    = tensor.ErrInvalidDimension
	ErrInvalidDimensions   = tensor.ErrInvalidDimensions
	ErrInvalidShape        = tensor.ErrInvalidShape
	ErrInvalidShapes       = tensor.ErrInvalidShapes
	ErrInhomogenousLength  = tensor.ErrInhomogenousLength
	ErrInvalidLengths      = tensor.ErrInvalidLengths
	ErrInvalidIndex        = tensor.ErrInvalidIndex
	ErrInvalidIndices      = tensor.ErrInvalidIndices
	ErrInvalidBounds       = tensor.ErrInvalidBounds
	ErrInvalidDataTypes    = tensor.ErrInvalidDataTypes
	ErrDeterminantIsZero   = tensor.ErrDeterminantIsZero
	ErrAugmentedMatrix     = tensor.ErrAugmentedMatrix
	ErrMatrixSolve         = tensor.ErrMatrixSolve
	ErrMatrixNotInvertible = tensor.ErrMatrixNotInvertible
	ErrNotImplemented      = tensor.ErrNotImplemented
)
