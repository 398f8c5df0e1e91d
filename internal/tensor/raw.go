package tensor

import "unsafe"

// Bytes returns the element buffer reinterpreted as bytes, in linear order
// and native byte order. The slice aliases the tensor's storage.
//
// It is meant for handing vertex and uniform data to graphics APIs. String
// tensors hold pointers rather than values and return InvalidDataTypes.
func (t *Tensor[T]) Bytes() ([]byte, error) {
	if t.dtype == String {
		return nil, invalidDataTypes(String, String)
	}
	if len(t.data) == 0 {
		return []byte{}, nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&t.data[0])), t.ByteSize()), nil
}

// Pointer returns the address of the first element, or nil for a tensor
// without elements.
//
// The pointer is only valid while the tensor is reachable.
func (t *Tensor[T]) Pointer() unsafe.Pointer {
	if len(t.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&t.data[0])
}
