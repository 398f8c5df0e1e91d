package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/born-ml/numeracy/internal/tensor"
)

// Write encodes tensors and metadata in SafeTensors format.
//
// Tensors are stored in name order. The checksum of the data section is
// added to a copy of metadata under ChecksumKey.
func Write[T tensor.Numeric](w io.Writer, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	names := slices.Sorted(maps.Keys(tensors))

	header := make(map[string]any, len(names)+1)
	blobs := make([][]byte, 0, len(names))
	var offset int64
	for _, name := range names {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		t := tensors[name]
		if t == nil {
			return fmt.Errorf("%w: %q", ErrNilTensor, name)
		}
		dtype, err := dtypeName(t.DType())
		if err != nil {
			return fmt.Errorf("tensor %q: %w", name, err)
		}
		blob, err := encode(t)
		if err != nil {
			return fmt.Errorf("tensor %q: %w", name, err)
		}

		size := int64(len(blob))
		header[name] = entry{
			DType:       dtype,
			Shape:       outerFirst(t.Shape()),
			DataOffsets: [2]int64{offset, offset + size},
		}
		blobs = append(blobs, blob)
		offset += size
	}

	meta := maps.Clone(metadata)
	if meta == nil {
		meta = make(map[string]string, 1)
	}
	sum := ComputeChecksum(bytes.Join(blobs, nil))
	meta[ChecksumKey] = hex.EncodeToString(sum[:])
	header[metadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if pad := len(headerJSON) % 8; pad != 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte{' '}, 8-pad)...)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, blob := range blobs {
		if _, err := w.Write(blob); err != nil {
			return fmt.Errorf("failed to write tensor %s: %w", names[i], err)
		}
	}
	return nil
}

// Save writes tensors to a SafeTensors file at path.
func Save[T tensor.Numeric](path string, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	//nolint:gosec // G304: the path is chosen by the caller.
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	buf := bufio.NewWriter(file)
	if err := Write(buf, tensors, metadata); err != nil {
		_ = file.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
