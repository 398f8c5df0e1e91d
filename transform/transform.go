// Copyright 2025 The Numeracy Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform builds 4×4 float32 transformation and projection
// matrices for rendering.
//
// Example:
//
//	cam := transform.NewCamera()
//	proj := cam.Projection(16.0 / 9.0)
//	view, err := cam.Transform()
package transform

import (
	"github.com/born-ml/numeracy/internal/transform"
	"github.com/born-ml/numeracy/tensor"
)

// Vec3 is a point or a triple of per-axis values.
type Vec3 = transform.Vec3

// Camera is an orthographic camera; see NewCamera.
type Camera = transform.Camera

// NewCamera returns a camera looking at the xy plane.
func NewCamera() *Camera {
	return transform.NewCamera()
}

// Scale returns the scaling matrix diag(sx, sy, sz, 1).
func Scale(sx, sy, sz float32) *tensor.Tensor[float32] {
	return transform.Scale(sx, sy, sz)
}

// Translate returns the translation by t.
func Translate(t Vec3) *tensor.Tensor[float32] {
	return transform.Translate(t)
}

// Rotate returns the rotation Rx·(Ry·Rz) for angles in degrees.
func Rotate(rx, ry, rz float32) (*tensor.Tensor[float32], error) {
	return transform.Rotate(rx, ry, rz)
}

// RotateAround returns the rotation by r about pivot p. The pivot's y and z
// components are exchanged.
func RotateAround(p, r Vec3) (*tensor.Tensor[float32], error) {
	return transform.RotateAround(p, r)
}

// OpenGLToRightHanded returns the matrix exchanging the y and z axes.
func OpenGLToRightHanded() *tensor.Tensor[float32] {
	return transform.OpenGLToRightHanded()
}

// Orthographic returns the orthographic projection for the given aspect
// ratio, zoom and depth.
func Orthographic(aspect, zoom, depth float32) *tensor.Tensor[float32] {
	return transform.Orthographic(aspect, zoom, depth)
}
