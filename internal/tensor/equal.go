package tensor

import (
	"math"
	"reflect"
)

// Epsilon is the tolerance used when comparing floating-point elements.
// Results of division and elimination are not bit-exact across equivalent
// computations, so float tensors compare equal within this bound.
const Epsilon = 1e-5

// Equal reports whether the two tensors have the same shape, data type and
// elements. Floating-point elements are equal when they differ by less than
// Epsilon.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	shapeEq, dtypeEq, elemsEq := t.EqualReport(other)
	return shapeEq && dtypeEq && elemsEq
}

// EqualReport returns the three checks behind Equal separately:
// shape equality, data type equality and element equality. Elements are
// only compared when the element counts match.
func (t *Tensor[T]) EqualReport(other *Tensor[T]) (shapeEq, dtypeEq, elemsEq bool) {
	if other == nil {
		return false, false, false
	}
	shapeEq = t.shape.Equal(other.shape)
	dtypeEq = t.dtype == other.dtype
	elemsEq = elementsEqual(t.data, other.data, t.dtype.IsFloat() || other.dtype.IsFloat())
	return shapeEq, dtypeEq, elemsEq
}

func elementsEqual[T Element](a, b []T, approx bool) bool {
	if len(a) != len(b) {
		return false
	}
	if !approx {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	for i := range a {
		x := reflect.ValueOf(a[i]).Float()
		y := reflect.ValueOf(b[i]).Float()
		if !(math.Abs(x-y) < Epsilon) {
			return false
		}
	}
	return true
}
