package scene

import (
	"still-life/math"
)

// Material describes Phong surface properties pushed to the shader before a
// draw that names its tag.
type Material struct {
	Tag             string
	AmbientColor    math.Vec3
	AmbientStrength float32
	DiffuseColor    math.Vec3
	SpecularColor   math.Vec3
	Shininess       float32
}

// MaterialRegistry keeps materials in definition order and resolves draw
// tags with a case-sensitive first-match scan.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

func (r *MaterialRegistry) Add(m Material) {
	r.materials = append(r.materials, m)
}

// FindByTag returns the first material whose tag matches exactly.
func (r *MaterialRegistry) FindByTag(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Count() int {
	return len(r.materials)
}

// StillLifeMaterials returns the three surface finishes the scene uses.
func StillLifeMaterials() []Material {
	return []Material{
		{
			Tag:             "glass",
			AmbientColor:    math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
			AmbientStrength: 0.4,
			DiffuseColor:    math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
			SpecularColor:   math.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
			Shininess:       85.0,
		},
		{
			Tag:             "ceramic",
			AmbientColor:    math.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
			AmbientStrength: 0.5,
			DiffuseColor:    math.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
			SpecularColor:   math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			Shininess:       25.0,
		},
		{
			Tag:             "cardboard",
			AmbientColor:    math.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
			AmbientStrength: 0.2,
			DiffuseColor:    math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
			SpecularColor:   math.Vec3{X: 0, Y: 0, Z: 0},
			Shininess:       0.0,
		},
	}
}
