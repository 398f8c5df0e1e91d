// Package cartesian enumerates cross products of ordered index lists.
package cartesian

import (
	"cmp"
	"slices"
)

// Product returns every combination that takes one value from each list,
// one combination per row, in ascending lexicographic order.
//
// Combinations are built incrementally: the partial products of the first k
// lists are extended with every value of list k+1. The final order does not
// depend on that build order because the result is sorted before returning.
//
// With no lists the result holds a single empty combination. If any list is
// empty the result is empty.
//
// Example:
//
//	Product([]int{1, 2}, []int{3, 4})
//	// [[1 3] [1 4] [2 3] [2 4]]
func Product[T cmp.Ordered](lists ...[]T) [][]T {
	out := [][]T{{}}
	for _, list := range lists {
		next := make([][]T, 0, len(out)*len(list))
		for _, v := range list {
			for _, prefix := range out {
				combo := make([]T, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, v))
			}
		}
		out = next
	}
	slices.SortFunc(out, slices.Compare[[]T])
	return out
}

// Ranges returns the half-open integer range [start, end) as a slice,
// suitable as one input list of Product.
func Ranges(start, end int) []int {
	if end <= start {
		return []int{}
	}
	r := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		r = append(r, i)
	}
	return r
}
