package tensor

// Convert returns a copy of t with every element converted to To using Go's
// numeric conversion rules. Float to integer conversion truncates toward
// zero; out-of-range values follow the platform conversion.
//
// Example:
//
//	f, _ := tensor.FromSlice([]int{1, 2, 3})
//	g := tensor.Convert[float64](f) // [1, 2, 3] as float64
func Convert[To, From Numeric](t *Tensor[From]) *Tensor[To] {
	data := make([]To, len(t.data))
	for i, v := range t.data {
		data[i] = To(v)
	}
	return newTensor(t.shape.Clone(), data)
}
