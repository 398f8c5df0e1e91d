package tensor

import (
	"fmt"
	"strings"
)

// String renders the tensor. See Render. Ranks above 3 render as a short
// placeholder instead of failing.
func (t *Tensor[T]) String() string {
	s, err := t.Render()
	if err != nil {
		return fmt.Sprintf("<tensor rank %d: display not implemented>", len(t.shape))
	}
	return s
}

// Render formats the tensor for display:
//   - rank 1 as a flat bracketed list,
//   - rank 2 as a bracketed grid, one row per line, with decimal points
//     aligned across the whole grid,
//   - rank 3 as a sequence of rank-2 blocks separated by blank lines.
//
// Higher ranks return a NotImplemented error.
func (t *Tensor[T]) Render() (string, error) {
	var b strings.Builder
	switch len(t.shape) {
	case 1:
		b.WriteByte('[')
		for i, v := range t.data {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, v)
		}
		b.WriteByte(']')
	case 2:
		cells, left, right := t.cells()
		b.WriteString("[\n")
		writeGrid(&b, cells, t.shape, Coordinate{0, 0}, left, right)
		b.WriteByte(']')
	case 3:
		cells, left, right := t.cells()
		b.WriteString("[\n")
		for block := 0; block < t.shape[2]; block++ {
			if block > 0 {
				b.WriteByte('\n')
			}
			writeGrid(&b, cells, t.shape, Coordinate{0, 0, block}, left, right)
		}
		b.WriteByte(']')
	default:
		return "", &Error{Kind: KindNotImplemented, Ints: []int{len(t.shape)}}
	}
	return b.String(), nil
}

// cell is one printed element split at its decimal point.
type cell struct {
	whole, frac string
	dot         bool
}

// cells prints every element and returns the widest integer and fractional
// parts, so that rows can be aligned on the decimal point.
func (t *Tensor[T]) cells() (cells []cell, left, right int) {
	cells = make([]cell, len(t.data))
	for i, v := range t.data {
		s := fmt.Sprint(v)
		whole, frac, dot := strings.Cut(s, ".")
		cells[i] = cell{whole: whole, frac: frac, dot: dot}
		left = max(left, len(whole))
		right = max(right, len(frac))
	}
	return cells, left, right
}

// writeGrid writes the rank-2 slice of a grid of the given shape that holds
// at: every row and column varies, the outer components of at stay fixed.
func writeGrid(b *strings.Builder, cells []cell, shape Shape, at Coordinate, left, right int) {
	for row := 0; row < shape[1]; row++ {
		at[1] = row
		b.WriteString("  [")
		for col := 0; col < shape[0]; col++ {
			at[0] = col
			c := cells[LinearIndexOf(shape, at)]
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%*s", left, c.whole)
			if right > 0 {
				sep := " "
				if c.dot {
					sep = "."
				}
				fmt.Fprintf(b, "%s%-*s", sep, right, c.frac)
			}
		}
		b.WriteString("],\n")
	}
}
