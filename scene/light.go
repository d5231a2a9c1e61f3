package scene

import (
	"still-life/math"
)

// Light is one point light in the fixed three-light rig. FocalStrength sets
// the floor of the specular exponent when the lit material's shininess is
// lower; SpecularIntensity scales the resulting specular term.
type Light struct {
	Position          math.Vec3
	AmbientColor      math.Vec3
	DiffuseColor      math.Vec3
	SpecularColor     math.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// StillLifeLights returns the scene's three lights: one white key light
// overhead and two warm fills from the left and right.
func StillLifeLights() []Light {
	return []Light{
		{
			Position:          math.Vec3{X: 0, Y: 10, Z: 6},
			AmbientColor:      math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			DiffuseColor:      math.Vec3{X: 1, Y: 1, Z: 1},
			SpecularColor:     math.Vec3{X: 1, Y: 1, Z: 1},
			FocalStrength:     5,
			SpecularIntensity: 5,
		},
		{
			Position:          math.Vec3{X: -10, Y: 10, Z: 6},
			AmbientColor:      math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			DiffuseColor:      math.Vec3{X: 1, Y: 0.95, Z: 0.6},
			SpecularColor:     math.Vec3{X: 1, Y: 0.95, Z: 0.6},
			FocalStrength:     15,
			SpecularIntensity: 5,
		},
		{
			Position:          math.Vec3{X: 10, Y: 10, Z: 6},
			AmbientColor:      math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			DiffuseColor:      math.Vec3{X: 1, Y: 0.95, Z: 0.6},
			SpecularColor:     math.Vec3{X: 1, Y: 0.95, Z: 0.6},
			FocalStrength:     15,
			SpecularIntensity: 5,
		},
	}
}
