package scene

import (
	"still-life/math"
)

// Camera is a free-fly view camera. Front is kept normalized by the input
// controller; ViewMatrix looks from Position toward Position+Front.
type Camera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	FOVDegrees float32
	Near       float32
	Far        float32

	// Orthographic switches ProjectionMatrix to a centered ortho box with
	// half-height OrthoHalfHeight.
	Orthographic    bool
	OrthoHalfHeight float32
}

// NewCamera returns a camera at the scene's start view, slightly above the
// counter looking down its length.
func NewCamera() *Camera {
	return &Camera{
		Position:        math.Vec3{X: 0, Y: 5.5, Z: 16},
		Front:           math.Vec3{X: 0, Y: -0.2, Z: -1}.Normalize(),
		Up:              math.Vec3Up,
		FOVDegrees:      45,
		Near:            0.1,
		Far:             100,
		OrthoHalfHeight: 8,
	}
}

func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if c.Orthographic {
		h := c.OrthoHalfHeight
		w := h * aspect
		return math.Mat4Orthographic(-w, w, -h, h, c.Near, c.Far)
	}
	return math.Mat4Perspective(math.Radians(c.FOVDegrees), aspect, c.Near, c.Far)
}
