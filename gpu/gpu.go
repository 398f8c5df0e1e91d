// Copyright 2025 The Numeracy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gpu uploads vertex and uniform tensors into WebGPU buffers.
//
// Uploading requires Windows and the wgpu-native library; elsewhere
// NewUploader returns ErrUnavailable.
//
// Example:
//
//	u, err := gpu.NewUploader()
//	if err != nil {
//	    return err
//	}
//	defer u.Release()
//	vbo, err := gpu.UploadVertices(u, vertices)
package gpu

import (
	"github.com/born-ml/numeracy/internal/gpu"
	"github.com/born-ml/numeracy/tensor"
)

// Errors.
var (
	ErrVertexWidth = gpu.ErrVertexWidth
	ErrUnavailable = gpu.ErrUnavailable
)

// Vertex widths in elements.
const (
	PlainVertexWidth  = gpu.PlainVertexWidth
	NormalVertexWidth = gpu.NormalVertexWidth
)

// Type aliases for public API
type (
	Attribute    = gpu.Attribute
	VertexLayout = gpu.VertexLayout
	Buffer       = gpu.Buffer
	Uploader     = gpu.Uploader
)

// VertexLayoutOf returns the interleaved layout of a vertex tensor.
func VertexLayoutOf[T tensor.Numeric](t *tensor.Tensor[T]) (VertexLayout, error) {
	return gpu.VertexLayoutOf(t)
}

// NewUploader opens the default WebGPU device.
func NewUploader() (*Uploader, error) {
	return gpu.NewUploader()
}

// UploadVertices copies a vertex tensor into a new vertex buffer.
func UploadVertices[T tensor.Numeric](u *Uploader, t *tensor.Tensor[T]) (*Buffer, error) {
	return gpu.UploadVertices(u, t)
}

// UploadUniform copies a tensor into a new 16-byte aligned uniform buffer.
func UploadUniform[T tensor.Numeric](u *Uploader, t *tensor.Tensor[T]) (*Buffer, error) {
	return gpu.UploadUniform(u, t)
}

// IsAvailable reports whether WebGPU can be used.
func IsAvailable() bool {
	return gpu.IsAvailable()
}
