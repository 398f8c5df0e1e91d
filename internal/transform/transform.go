// Package transform builds the 4×4 float32 matrices used to place and view
// geometry: scaling, translation, rotation and orthographic projection.
//
// Matrices are row-major tensors and are applied to column vectors, so
// translation lives in the last column. Angles are in degrees.
package transform

import (
	"github.com/chewxy/math32"

	"github.com/born-ml/numeracy/internal/tensor"
)

// Vec3 is a point or a triple of per-axis values.
type Vec3 struct {
	X, Y, Z float32
}

// mat4 builds a 4×4 tensor from rows.
func mat4(rows [4][4]float32) *tensor.Tensor[float32] {
	data := make([]float32, 0, 16)
	for _, row := range rows {
		data = append(data, row[:]...)
	}
	m, err := tensor.FromShape(data, tensor.Shape{4, 4})
	if err != nil {
		panic(err)
	}
	return m
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Scale returns the scaling matrix diag(sx, sy, sz, 1).
func Scale(sx, sy, sz float32) *tensor.Tensor[float32] {
	return mat4([4][4]float32{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	})
}

// Translate returns the matrix moving points by t.
func Translate(t Vec3) *tensor.Tensor[float32] {
	return mat4([4][4]float32{
		{1, 0, 0, t.X},
		{0, 1, 0, t.Y},
		{0, 0, 1, t.Z},
		{0, 0, 0, 1},
	})
}

// Rotate returns the rotation Rx·(Ry·Rz) about the origin for angles given
// in degrees.
func Rotate(rx, ry, rz float32) (*tensor.Tensor[float32], error) {
	sx, cx := math32.Sincos(radians(rx))
	sy, cy := math32.Sincos(radians(ry))
	sz, cz := math32.Sincos(radians(rz))

	rotX := mat4([4][4]float32{
		{1, 0, 0, 0},
		{0, cx, sx, 0},
		{0, -sx, cx, 0},
		{0, 0, 0, 1},
	})
	rotY := mat4([4][4]float32{
		{cy, 0, -sy, 0},
		{0, 1, 0, 0},
		{sy, 0, cy, 0},
		{0, 0, 0, 1},
	})
	rotZ := mat4([4][4]float32{
		{cz, -sz, 0, 0},
		{sz, cz, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})

	yz, err := tensor.MatMul(rotY, rotZ)
	if err != nil {
		return nil, err
	}
	return tensor.MatMul(rotX, yz)
}

// RotateAround returns the rotation by r (degrees) about pivot p:
// translate p to the origin, rotate, and translate back.
//
// The pivot's second and third components are exchanged before use, so
// p.Y is the offset along z and p.Z the offset along y. This matches the
// axis order produced by OpenGLToRightHanded.
func RotateAround(p, r Vec3) (*tensor.Tensor[float32], error) {
	pivot := Vec3{X: p.X, Y: p.Z, Z: p.Y}
	back := Translate(pivot)
	toOrigin := Translate(Vec3{X: -pivot.X, Y: -pivot.Y, Z: -pivot.Z})

	rot, err := Rotate(r.X, r.Y, r.Z)
	if err != nil {
		return nil, err
	}
	m, err := tensor.MatMul(rot, toOrigin)
	if err != nil {
		return nil, err
	}
	return tensor.MatMul(back, m)
}

// OpenGLToRightHanded returns the matrix exchanging the y and z axes,
// converting between a right-handed z-up frame and OpenGL's y-up frame.
func OpenGLToRightHanded() *tensor.Tensor[float32] {
	return mat4([4][4]float32{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
}

// Orthographic returns the orthographic projection of the box
// [-aspect·zoom, aspect·zoom] × [-zoom, zoom] × [-depth, depth].
//
// The translation terms are stored in the last row, as the renderer
// uploads the matrix without transposing it.
func Orthographic(aspect, zoom, depth float32) *tensor.Tensor[float32] {
	l, r := -aspect*zoom, aspect*zoom
	b, t := -zoom, zoom
	n, f := -depth, depth

	return mat4([4][4]float32{
		{2 / (r - l), 0, 0, 0},
		{0, 2 / (t - b), 0, 0},
		{0, 0, 2 / (f - n), 0},
		{-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1},
	})
}
