// Package gpu hands tensors to the GPU: it derives vertex layouts from
// interleaved vertex tensors and uploads vertex and uniform data into
// WebGPU buffers.
//
// Uploading uses go-webgpu (github.com/go-webgpu/webgpu) and is only built
// on Windows; elsewhere NewUploader returns ErrUnavailable.
package gpu

import (
	"errors"
	"fmt"

	"github.com/born-ml/numeracy/internal/tensor"
)

var (
	// ErrVertexWidth is returned for vertex tensors whose rows are neither 7
	// nor 10 elements wide.
	ErrVertexWidth = errors.New("gpu: vertex width must be 7 or 10")

	// ErrUnavailable is returned when no WebGPU device can be used.
	ErrUnavailable = errors.New("gpu: webgpu not available")
)

// Vertex attribute widths, in elements.
const (
	positionWidth = 3
	colourWidth   = 3
	opacityWidth  = 1
	normalWidth   = 3

	// Width of a vertex without and with a normal.
	PlainVertexWidth  = positionWidth + colourWidth + opacityWidth
	NormalVertexWidth = PlainVertexWidth + normalWidth
)

// Attribute describes one shader input inside an interleaved vertex.
type Attribute struct {
	Location   uint32
	Name       string
	Components int
	// Offset is the byte offset from the start of the vertex.
	Offset uint64
}

// VertexLayout describes how a rank-2 vertex tensor is laid out in memory:
// one vertex per row, attributes interleaved within the row.
type VertexLayout struct {
	// Stride is the byte size of one vertex.
	Stride      uint64
	Attributes  []Attribute
	VertexCount int
	HasNormals  bool
}

// VertexLayoutOf returns the layout of a vertex tensor. Each row holds a
// position (3), a colour (3) and an opacity (1), optionally followed by a
// normal (3).
func VertexLayoutOf[T tensor.Numeric](t *tensor.Tensor[T]) (VertexLayout, error) {
	if t.Rank() != 2 {
		return VertexLayout{}, tensor.InvalidDimension(t.Rank())
	}

	width := t.Cols()
	if width != PlainVertexWidth && width != NormalVertexWidth {
		return VertexLayout{}, fmt.Errorf("%w: got %d", ErrVertexWidth, width)
	}

	size := uint64(t.ElementSize())
	layout := VertexLayout{
		Stride:      uint64(width) * size,
		VertexCount: t.Rows(),
		HasNormals:  width == NormalVertexWidth,
		Attributes: []Attribute{
			{Location: 0, Name: "position", Components: positionWidth, Offset: 0},
			{Location: 1, Name: "colour", Components: colourWidth, Offset: positionWidth * size},
			{Location: 2, Name: "opacity", Components: opacityWidth, Offset: (positionWidth + colourWidth) * size},
		},
	}
	if layout.HasNormals {
		layout.Attributes = append(layout.Attributes, Attribute{
			Location:   3,
			Name:       "normal",
			Components: normalWidth,
			Offset:     PlainVertexWidth * size,
		})
	}
	return layout, nil
}

// alignUniform rounds size up to the 16-byte alignment required for uniform
// buffers.
func alignUniform(size uint64) uint64 {
	return (size + 15) &^ 15
}

// Buffer is a GPU buffer created by an Uploader.
type Buffer struct {
	// Size is the allocated byte size, including uniform padding.
	Size uint64
	// Layout is set for vertex buffers.
	Layout *VertexLayout

	handle handle
}

// UploadVertices copies a vertex tensor into a new vertex buffer.
func UploadVertices[T tensor.Numeric](u *Uploader, t *tensor.Tensor[T]) (*Buffer, error) {
	layout, err := VertexLayoutOf(t)
	if err != nil {
		return nil, err
	}
	data, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	buf, err := u.upload(data, uint64(len(data)), usageVertex)
	if err != nil {
		return nil, err
	}
	buf.Layout = &layout
	return buf, nil
}

// UploadUniform copies a tensor, typically a 4×4 transform, into a new
// uniform buffer padded to 16 bytes.
func UploadUniform[T tensor.Numeric](u *Uploader, t *tensor.Tensor[T]) (*Buffer, error) {
	data, err := t.Bytes()
	if err != nil {
		return nil, err
	}
	return u.upload(data, alignUniform(uint64(len(data))), usageUniform)
}

type usage int

const (
	usageVertex usage = iota
	usageUniform
)
