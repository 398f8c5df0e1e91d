package serialization

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/numeracy/internal/tensor"
)

// Read decodes a SafeTensors stream into tensors of element type T.
//
// Every tensor must be stored with T's data type; otherwise Read returns
// ErrDTypeMismatch. Offsets and names are validated and the checksum in
// the metadata, if any, must match the data section.
func Read[T tensor.Numeric](r io.Reader) (map[string]*tensor.Tensor[T], map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
	}

	var metadata map[string]string
	if m, ok := raw[metadataKey]; ok {
		if err := json.Unmarshal(m, &metadata); err != nil {
			return nil, nil, fmt.Errorf("%w: metadata: %w", ErrMalformedHeader, err)
		}
		delete(raw, metadataKey)
	}

	entries := make(map[string]entry, len(raw))
	metas := make([]TensorMeta, 0, len(raw))
	for name, msg := range raw {
		if err := ValidateTensorName(name); err != nil {
			return nil, nil, err
		}
		var e entry
		if err := json.Unmarshal(msg, &e); err != nil {
			return nil, nil, fmt.Errorf("%w: tensor %q: %w", ErrMalformedHeader, name, err)
		}
		entries[name] = e
		metas = append(metas, TensorMeta{
			Name:   name,
			Offset: e.DataOffsets[0],
			Size:   e.DataOffsets[1] - e.DataOffsets[0],
		})
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	if err := ValidateTensorOffsets(metas, int64(len(data))); err != nil {
		return nil, nil, err
	}
	if stored, ok := metadata[ChecksumKey]; ok {
		if err := ValidateChecksum(data, stored); err != nil {
			return nil, nil, err
		}
	}

	want, err := dtypeName(tensor.DataTypeOf[T]())
	if err != nil {
		return nil, nil, err
	}
	tensors := make(map[string]*tensor.Tensor[T], len(entries))
	for name, e := range entries {
		if e.DType != want {
			return nil, nil, fmt.Errorf("%w: tensor %q is %s, want %s", ErrDTypeMismatch, name, e.DType, want)
		}
		t, err := decodeEntry[T](name, e, data)
		if err != nil {
			return nil, nil, err
		}
		tensors[name] = t
	}
	return tensors, metadata, nil
}

func decodeEntry[T tensor.Numeric](name string, e entry, data []byte) (*tensor.Tensor[T], error) {
	shape := innerFirst(e.Shape)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor %q: %w", name, err)
	}
	n := shape.NumElements()
	size := int64(n * tensor.DataTypeOf[T]().Size())
	region := data[e.DataOffsets[0]:e.DataOffsets[1]]
	if int64(len(region)) != size {
		return nil, &ValidationError{
			Type:    "size_mismatch",
			Tensor:  name,
			Details: fmt.Sprintf("shape %v needs %d bytes, region holds %d", shape, size, len(region)),
		}
	}
	return tensor.FromShape(decode[T](region, n), shape)
}

// Load reads a SafeTensors file from path.
func Load[T tensor.Numeric](path string) (map[string]*tensor.Tensor[T], map[string]string, error) {
	//nolint:gosec // G304: the path is chosen by the caller.
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return Read[T](bufio.NewReader(file))
}
