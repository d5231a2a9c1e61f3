package io

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"still-life/math"
	"still-life/scene"
)

// ExportGLB writes the still-life parts to a binary glTF file. Each shape
// kind used by the scene becomes one glTF mesh; each part becomes a scene
// node referencing its kind's mesh with the part transform stored as TRS.
func ExportGLB(path string, parts []scene.Part) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "still-life"

	meshIndex := make(map[scene.ShapeKind]int)
	for _, part := range parts {
		if _, ok := meshIndex[part.Shape]; ok {
			continue
		}
		mesh := scene.BuildShape(part.Shape)
		if mesh == nil {
			return fmt.Errorf("no geometry for shape %v", part.Shape)
		}

		positions := make([][3]float32, len(mesh.Vertices))
		normals := make([][3]float32, len(mesh.Vertices))
		uvs := make([][2]float32, len(mesh.Vertices))
		for i, v := range mesh.Vertices {
			positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
			normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
			uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		}

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: mesh.Name,
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
				Attributes: gltf.PrimitiveAttributes{
					gltf.POSITION:   modeler.WritePosition(doc, positions),
					gltf.NORMAL:     modeler.WriteNormal(doc, normals),
					gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
				},
			}},
		})
		meshIndex[part.Shape] = len(doc.Meshes) - 1
	}

	for _, part := range parts {
		q := rotationQuaternion(part.Transform.RotationDeg)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: part.Name,
			Mesh: gltf.Index(meshIndex[part.Shape]),
			Translation: [3]float64{
				float64(part.Transform.Position.X),
				float64(part.Transform.Position.Y),
				float64(part.Transform.Position.Z),
			},
			Rotation: [4]float64{
				float64(q.X), float64(q.Y), float64(q.Z), float64(q.W),
			},
			Scale: [3]float64{
				float64(part.Transform.Scale.X),
				float64(part.Transform.Scale.Y),
				float64(part.Transform.Scale.Z),
			},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// rotationQuaternion converts per-axis Euler degrees into the quaternion
// matching ComposeTransform's Z then Y then X application order.
func rotationQuaternion(deg math.Vec3) math.Quaternion {
	qx := math.QuaternionFromAxisAngle(math.Vec3Right, math.Radians(deg.X))
	qy := math.QuaternionFromAxisAngle(math.Vec3Up, math.Radians(deg.Y))
	qz := math.QuaternionFromAxisAngle(math.Vec3{X: 0, Y: 0, Z: 1}, math.Radians(deg.Z))
	return qx.Mul(qy).Mul(qz).Normalize()
}
