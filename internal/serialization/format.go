package serialization

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/born-ml/numeracy/internal/tensor"
)

// metadataKey is the reserved header entry holding string metadata.
const metadataKey = "__metadata__"

// entry describes one tensor in the header.
type entry struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// TensorMeta locates a tensor's bytes within the data section.
type TensorMeta struct {
	Name   string
	Offset int64
	Size   int64
}

var littleEndian = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// dtypeName returns the SafeTensors name of a data type: F, I or U
// followed by the width in bits.
func dtypeName(dt tensor.DataType) (string, error) {
	bits := strconv.Itoa(dt.Size() * 8)
	switch dt {
	case tensor.Float32, tensor.Float64:
		return "F" + bits, nil
	case tensor.Int, tensor.Int8, tensor.Int16, tensor.Int32, tensor.Int64:
		return "I" + bits, nil
	case tensor.Uint, tensor.Uint8, tensor.Uint16, tensor.Uint32, tensor.Uint64:
		return "U" + bits, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDType, dt)
	}
}

// outerFirst converts an innermost-first shape to the header order.
func outerFirst(shape tensor.Shape) []int64 {
	out := make([]int64, len(shape))
	for i, d := range shape {
		out[len(shape)-1-i] = int64(d)
	}
	return out
}

// innerFirst converts a header shape back to tensor order.
func innerFirst(shape []int64) tensor.Shape {
	out := make(tensor.Shape, len(shape))
	for i, d := range shape {
		out[len(shape)-1-i] = int(d)
	}
	return out
}

// encode returns the little-endian bytes of t's elements.
func encode[T tensor.Numeric](t *tensor.Tensor[T]) ([]byte, error) {
	b, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	if littleEndian {
		return b, nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	swapBytes(out, t.ElementSize())
	return out, nil
}

// decode copies little-endian bytes into a new buffer of n elements.
func decode[T tensor.Numeric](raw []byte, n int) []T {
	data := make([]T, n)
	if n == 0 {
		return data
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), n*size)
	copy(dst, raw)
	if !littleEndian {
		swapBytes(dst, size)
	}
	return data
}

func swapBytes(b []byte, size int) {
	for i := 0; i+size <= len(b); i += size {
		for l, r := i, i+size-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
	}
}
