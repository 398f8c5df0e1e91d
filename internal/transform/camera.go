package transform

import (
	"github.com/born-ml/numeracy/internal/tensor"
)

// Camera is an orthographic camera orbiting and panning around the origin.
type Camera struct {
	RenderDistance uint32
	// Angle holds the rotation about each axis in degrees.
	Angle Vec3
	Pan   Vec3
	Zoom  float32

	PanSensitivity   float32
	AngleSensitivity float32

	Background [3]float32
}

// NewCamera returns a camera looking at the xy plane.
func NewCamera() *Camera {
	return &Camera{
		RenderDistance:   512,
		Angle:            Vec3{X: 90},
		Zoom:             20,
		PanSensitivity:   0.001,
		AngleSensitivity: 0.01,
		Background:       [3]float32{0.5, 0.5, 0.5},
	}
}

// Projection returns the orthographic projection for a viewport with the
// given width/height ratio.
func (c *Camera) Projection(aspect float32) *tensor.Tensor[float32] {
	return Orthographic(aspect, c.Zoom, float32(c.RenderDistance))
}

// Transform returns the view matrix: the camera rotation about the origin
// followed by the pan.
func (c *Camera) Transform() (*tensor.Tensor[float32], error) {
	rot, err := RotateAround(Vec3{}, c.Angle)
	if err != nil {
		return nil, err
	}
	return tensor.MatMul(Translate(c.Pan), rot)
}

// Drag pans the camera by a cursor movement of (dx, dy) pixels. Screen y
// grows downwards, so dy is subtracted. The step scales with Zoom.
func (c *Camera) Drag(dx, dy float32) {
	c.Pan.X += dx * c.PanSensitivity * c.Zoom
	c.Pan.Y -= dy * c.PanSensitivity * c.Zoom
}

// Orbit rotates the camera by a cursor movement of (dx, dy) pixels.
// Vertical movement tilts about x and horizontal movement turns about y.
func (c *Camera) Orbit(dx, dy float32) {
	c.Angle.X += dy * c.AngleSensitivity * c.Zoom
	c.Angle.Y += dx * c.AngleSensitivity * c.Zoom
}

// Scroll zooms by a wheel offset; positive offsets zoom in.
func (c *Camera) Scroll(offset float32) {
	c.Zoom -= 0.24 * offset * c.Zoom * 0.25
}
