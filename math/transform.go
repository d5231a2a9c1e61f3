package math

import "math"

func Radians(degrees float32) float32 {
	return degrees * float32(math.Pi) / 180.0
}

func Degrees(radians float32) float32 {
	return radians * 180.0 / float32(math.Pi)
}

// ComposeTransform builds the model matrix translate * rotX * rotY * rotZ *
// scale, with rotation angles given in degrees. Applied right to left: local
// vertices are scaled first, rotated Z then Y then X, and translated last,
// so the composed matrix always maps the local origin onto position.
func ComposeTransform(scale, rotationDeg, position Vec3) Mat4 {
	return Mat4Scale(scale).
		Mul(Mat4RotationZ(Radians(rotationDeg.Z))).
		Mul(Mat4RotationY(Radians(rotationDeg.Y))).
		Mul(Mat4RotationX(Radians(rotationDeg.X))).
		Mul(Mat4Translation(position))
}
