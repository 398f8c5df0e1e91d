// Package tensor provides the core tensor type and operations for numeracy.
package tensor

import (
	"reflect"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Element is the constraint for values a Tensor can hold.
type Element interface {
	Numeric | ~string | ~bool
}

// Numeric is the constraint for element types that support arithmetic.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Float is the constraint for element types used by the linear algebra layer.
type Float interface {
	constraints.Float
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Uint DataType = iota
	Uint8
	Uint16
	Uint32
	Uint64
	Int
	Int8
	Int16
	Int32
	Int64
	Float32
	Float64
	String
	Bool

	// Empty marks a tensor created by NewEmpty that has not yet absorbed
	// the data type of a concatenated piece.
	Empty
)

// Size returns the byte size of one element of the data type.
// Empty has size 0.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8, Bool:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64:
		return 8
	case Uint, Int:
		return strconv.IntSize / 8
	case String:
		return int(unsafe.Sizeof(""))
	case Empty:
		return 0
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint:
		return "uint"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point kind.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// Compatible reports whether two tensors of the given data types may be
// combined: the tags are equal, or one of them is Empty.
func Compatible(a, b DataType) bool {
	return a == b || a == Empty || b == Empty
}

// DataTypeOf returns the data type tag carried by values of type T.
// Named types map to the tag of their underlying kind.
func DataTypeOf[T Element]() DataType {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Uint, reflect.Uintptr:
		return Uint
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Int:
		return Int
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.String:
		return String
	case reflect.Bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
