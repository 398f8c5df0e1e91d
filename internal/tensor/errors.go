package tensor

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a tensor error.
type ErrorKind int

// Error kinds, grouped by cause.
const (
	// Shape and rank mismatches.
	KindInvalidDimension ErrorKind = iota
	KindInvalidDimensions
	KindInvalidShape
	KindInvalidShapes
	KindInhomogenousLength
	KindInvalidLengths

	// Index and bounds errors.
	KindInvalidIndex
	KindInvalidIndices
	KindInvalidBounds

	// Data type errors.
	KindInvalidDataTypes

	// Linear algebra errors.
	KindDeterminantIsZero
	KindAugmentedMatrixShape
	KindMatrixSolve
	KindMatrixNotInvertible
	KindNotImplemented
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDimension:
		return "invalid dimension"
	case KindInvalidDimensions:
		return "invalid dimensions"
	case KindInvalidShape:
		return "invalid shape"
	case KindInvalidShapes:
		return "invalid shapes"
	case KindInhomogenousLength:
		return "inhomogenous length"
	case KindInvalidLengths:
		return "invalid lengths"
	case KindInvalidIndex:
		return "invalid index"
	case KindInvalidIndices:
		return "invalid indices"
	case KindInvalidBounds:
		return "invalid bounds"
	case KindInvalidDataTypes:
		return "invalid data types"
	case KindDeterminantIsZero:
		return "determinant is zero"
	case KindAugmentedMatrixShape:
		return "augmented matrix shape error"
	case KindMatrixSolve:
		return "matrix solve error"
	case KindMatrixNotInvertible:
		return "matrix not invertible"
	case KindNotImplemented:
		return "not implemented"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every fallible tensor operation.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind ErrorKind

	// Ints holds offending dimensions, lengths or indices.
	Ints []int
	// Shapes holds offending shapes.
	Shapes []Shape
	// DataTypes holds the two mismatching tags of KindInvalidDataTypes.
	DataTypes []DataType
	// Flags holds the diagnostic checks of KindMatrixSolve.
	Flags []bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "tensor: " + e.Kind.String()
	switch {
	case len(e.DataTypes) > 0:
		msg += fmt.Sprintf(" %v", e.DataTypes)
	case len(e.Shapes) == 1:
		msg += fmt.Sprintf(" %v", e.Shapes[0])
	case len(e.Shapes) > 1:
		msg += fmt.Sprintf(" %v", e.Shapes)
	case len(e.Flags) > 0:
		msg += fmt.Sprintf(" %v", e.Flags)
	case len(e.Ints) == 1:
		msg += fmt.Sprintf(" %d", e.Ints[0])
	case len(e.Ints) > 1:
		msg += fmt.Sprintf(" %v", e.Ints)
	}
	return msg
}

// Is reports whether target is an *Error of the same kind, so that the
// package sentinels match any error of their kind via errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is. They carry no diagnostic values.
var (
	ErrInvalidDimension    = &Error{Kind: KindInvalidDimension}
	ErrInvalidDimensions   = &Error{Kind: KindInvalidDimensions}
	ErrInvalidShape        = &Error{Kind: KindInvalidShape}
	ErrInvalidShapes       = &Error{Kind: KindInvalidShapes}
	ErrInhomogenousLength  = &Error{Kind: KindInhomogenousLength}
	ErrInvalidLengths      = &Error{Kind: KindInvalidLengths}
	ErrInvalidIndex        = &Error{Kind: KindInvalidIndex}
	ErrInvalidIndices      = &Error{Kind: KindInvalidIndices}
	ErrInvalidBounds       = &Error{Kind: KindInvalidBounds}
	ErrInvalidDataTypes    = &Error{Kind: KindInvalidDataTypes}
	ErrDeterminantIsZero   = &Error{Kind: KindDeterminantIsZero}
	ErrAugmentedMatrix     = &Error{Kind: KindAugmentedMatrixShape}
	ErrMatrixSolve         = &Error{Kind: KindMatrixSolve}
	ErrMatrixNotInvertible = &Error{Kind: KindMatrixNotInvertible}
	ErrNotImplemented      = &Error{Kind: KindNotImplemented}
)

func invalidDimension(rank int) error {
	return &Error{Kind: KindInvalidDimension, Ints: []int{rank}}
}

func invalidDimensions(a, b int) error {
	return &Error{Kind: KindInvalidDimensions, Ints: []int{a, b}}
}

func invalidShape(s Shape) error {
	return &Error{Kind: KindInvalidShape, Shapes: []Shape{s.Clone()}}
}

func invalidShapes(a, b Shape) error {
	return &Error{Kind: KindInvalidShapes, Shapes: []Shape{a.Clone(), b.Clone()}}
}

func invalidIndex(i int) error {
	return &Error{Kind: KindInvalidIndex, Ints: []int{i}}
}

func invalidIndices(idx ...int) error {
	return &Error{Kind: KindInvalidIndices, Ints: append([]int(nil), idx...)}
}

func invalidDataTypes(a, b DataType) error {
	return &Error{Kind: KindInvalidDataTypes, DataTypes: []DataType{a, b}}
}

// NewError builds an *Error of the given kind carrying ints as diagnostics.
// It is used by the layers built on top of this package.
func NewError(kind ErrorKind, ints ...int) *Error {
	return &Error{Kind: kind, Ints: append([]int(nil), ints...)}
}

// InvalidDimension returns a KindInvalidDimension error for the given rank.
func InvalidDimension(rank int) error { return invalidDimension(rank) }

// InvalidShape returns a KindInvalidShape error for the given shape.
func InvalidShape(s Shape) error { return invalidShape(s) }

// SolveError returns a KindMatrixSolve error carrying the failed checks.
func SolveError(flags ...bool) error {
	return &Error{Kind: KindMatrixSolve, Flags: append([]bool(nil), flags...)}
}
