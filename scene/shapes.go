package scene

import (
	stdmath "math"

	"still-life/core"
	"still-life/math"
)

// ShapeKind identifies one of the primitive meshes the scene is assembled
// from. Each kind is generated and uploaded once; draws reuse it under
// different transforms.
type ShapeKind int

const (
	ShapePlane ShapeKind = iota
	ShapeBox
	ShapeCylinder
	ShapeTaperedCylinder
	ShapeTorus
	ShapePrism
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePlane:
		return "Plane"
	case ShapeBox:
		return "Box"
	case ShapeCylinder:
		return "Cylinder"
	case ShapeTaperedCylinder:
		return "TaperedCylinder"
	case ShapeTorus:
		return "Torus"
	case ShapePrism:
		return "Prism"
	}
	return "Unknown"
}

// AllShapes returns the six primitive kinds in a fixed order.
func AllShapes() []ShapeKind {
	return []ShapeKind{
		ShapePlane,
		ShapeBox,
		ShapeCylinder,
		ShapeTaperedCylinder,
		ShapeTorus,
		ShapePrism,
	}
}

// BuildShape generates the mesh for the given kind at the scene's default
// tessellation. Returns nil for an unknown kind.
func BuildShape(kind ShapeKind) *Mesh {
	switch kind {
	case ShapePlane:
		return CreatePlane()
	case ShapeBox:
		return CreateBox()
	case ShapeCylinder:
		return CreateCylinder(36)
	case ShapeTaperedCylinder:
		return CreateTaperedCylinder(36)
	case ShapeTorus:
		return CreateTorus(36, 18)
	case ShapePrism:
		return CreatePrism()
	}
	return nil
}

// CreatePlane generates a quad spanning -1..1 on X and Z at Y=0, facing +Y.
func CreatePlane() *Mesh {
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -1, Y: 0, Z: -1}, Normal: math.Vec3Up, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 1, Y: 0, Z: -1}, Normal: math.Vec3Up, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 1, Y: 0, Z: 1}, Normal: math.Vec3Up, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -1, Y: 0, Z: 1}, Normal: math.Vec3Up, UV: math.Vec2{X: 0, Y: 1}},
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return CreateMeshFromData("Plane", vertices, indices)
}

// CreateBox generates a unit cube spanning -0.5..0.5 per axis with per-face
// normals (24 vertices, 36 indices).
func CreateBox() *Mesh {
	const s float32 = 0.5

	vertices := []core.Vertex{
		// Front face
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
		// Back face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 1, Y: 1}},
		// Top face
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, UV: math.Vec2{X: 0, Y: 1}},
		// Bottom face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 0, Y: 0}},
		// Right face
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 1}},
		// Left face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, UV: math.Vec2{X: 1, Y: 1}},
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Box", vertices, indices)
}

// CreateCylinder generates a cylinder of radius 1 with its base ring at Y=0
// and its top ring at Y=1, closed by caps on both ends.
func CreateCylinder(segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := math.Vec3{X: cosT, Y: 0, Z: sinT}
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT, Y: 0, Z: sinT},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT, Y: 1, Z: sinT},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 1},
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendDiskCap(&vertices, &indices, 1, 1, segments, true)
	appendDiskCap(&vertices, &indices, 1, 0, segments, false)

	return CreateMeshFromData("Cylinder", vertices, indices)
}

// CreateTaperedCylinder generates a cylinder whose radius narrows from 1 at
// the base ring (Y=0) to 0.5 at the top ring (Y=1), closed by caps.
func CreateTaperedCylinder(segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	const baseRadius float32 = 1.0
	const topRadius float32 = 0.5

	var vertices []core.Vertex
	var indices []uint32

	// Side normals tilt upward by the taper of the profile line.
	taper := baseRadius - topRadius
	invLen := 1.0 / float32(stdmath.Sqrt(float64(1+taper*taper)))

	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := math.Vec3{X: cosT * invLen, Y: taper * invLen, Z: sinT * invLen}
		u := float32(i) / float32(segments)

		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * baseRadius, Y: 0, Z: sinT * baseRadius},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT * topRadius, Y: 1, Z: sinT * topRadius},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 1},
		})
	}

	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	appendDiskCap(&vertices, &indices, topRadius, 1, segments, true)
	appendDiskCap(&vertices, &indices, baseRadius, 0, segments, false)

	return CreateMeshFromData("TaperedCylinder", vertices, indices)
}

// CreateTorus generates a torus with main radius 1 and tube radius 0.2. The
// ring lies in the XY plane, so an X rotation of 90 degrees lays it flat.
func CreateTorus(majorSegments, minorSegments int) *Mesh {
	if majorSegments < 3 {
		majorSegments = 3
	}
	if minorSegments < 3 {
		minorSegments = 3
	}

	const mainRadius float32 = 1.0
	const tubeRadius float32 = 0.2

	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= majorSegments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(majorSegments)
		cosTheta := float32(stdmath.Cos(theta))
		sinTheta := float32(stdmath.Sin(theta))

		for j := 0; j <= minorSegments; j++ {
			phi := float64(j) * 2.0 * stdmath.Pi / float64(minorSegments)
			cosPhi := float32(stdmath.Cos(phi))
			sinPhi := float32(stdmath.Sin(phi))

			x := (mainRadius + tubeRadius*cosPhi) * cosTheta
			y := (mainRadius + tubeRadius*cosPhi) * sinTheta
			z := tubeRadius * sinPhi

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: x, Y: y, Z: z},
				Normal:   math.Vec3{X: cosPhi * cosTheta, Y: cosPhi * sinTheta, Z: sinPhi}.Normalize(),
				UV:       math.Vec2{X: float32(i) / float32(majorSegments), Y: float32(j) / float32(minorSegments)},
			})
		}
	}

	for i := 0; i < majorSegments; i++ {
		for j := 0; j < minorSegments; j++ {
			current := uint32(i*(minorSegments+1) + j)
			next := uint32((i+1)*(minorSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return CreateMeshFromData("Torus", vertices, indices)
}

// CreatePrism generates a triangular wedge filling the unit cube: the
// cross-section in XY has base corners (±0.5,-0.5) and apex (0,0.5), extruded
// along Z from -0.5 to 0.5.
func CreatePrism() *Mesh {
	const s float32 = 0.5

	slopeLeft := math.Vec3{X: -1, Y: 0.5, Z: 0}.Normalize()
	slopeRight := math.Vec3{X: 1, Y: 0.5, Z: 0}.Normalize()

	vertices := []core.Vertex{
		// Front triangle (+Z)
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 0, Y: s, Z: s}, Normal: math.Vec3{X: 0, Y: 0, Z: 1}, UV: math.Vec2{X: 0.5, Y: 1}},
		// Back triangle (-Z)
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 0, Y: s, Z: -s}, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, UV: math.Vec2{X: 0.5, Y: 1}},
		// Bottom face (-Y)
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, UV: math.Vec2{X: 0, Y: 1}},
		// Left slope
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: slopeLeft, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 0, Y: s, Z: s}, Normal: slopeLeft, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 0, Y: s, Z: -s}, Normal: slopeLeft, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: slopeLeft, UV: math.Vec2{X: 0, Y: 1}},
		// Right slope
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: slopeRight, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 0, Y: s, Z: -s}, Normal: slopeRight, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 0, Y: s, Z: s}, Normal: slopeRight, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: slopeRight, UV: math.Vec2{X: 0, Y: 1}},
	}

	indices := []uint32{
		0, 1, 2,
		3, 4, 5,
		6, 7, 8, 8, 9, 6,
		10, 11, 12, 12, 13, 10,
		14, 15, 16, 16, 17, 14,
	}

	return CreateMeshFromData("Prism", vertices, indices)
}

// appendDiskCap appends a triangle-fan cap ring at the given radius and
// height. facingUp selects the +Y or -Y normal and the matching winding.
func appendDiskCap(vertices *[]core.Vertex, indices *[]uint32, radius, y float32, segments int, facingUp bool) {
	normal := math.Vec3Up
	if !facingUp {
		normal = math.Vec3Down
	}

	center := uint32(len(*vertices))
	*vertices = append(*vertices, core.Vertex{
		Position: math.Vec3{X: 0, Y: y, Z: 0},
		Normal:   normal,
		UV:       math.Vec2{X: 0.5, Y: 0.5},
	})

	for i := 0; i < segments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(segments)
		nextTheta := float64(i+1) * 2.0 * stdmath.Pi / float64(segments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		cosN := float32(stdmath.Cos(nextTheta))
		sinN := float32(stdmath.Sin(nextTheta))

		v1 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: math.Vec3{X: cosT * radius, Y: y, Z: sinT * radius},
			Normal:   normal,
			UV:       math.Vec2{X: cosT*0.5 + 0.5, Y: sinT*0.5 + 0.5},
		})
		v2 := uint32(len(*vertices))
		*vertices = append(*vertices, core.Vertex{
			Position: math.Vec3{X: cosN * radius, Y: y, Z: sinN * radius},
			Normal:   normal,
			UV:       math.Vec2{X: cosN*0.5 + 0.5, Y: sinN*0.5 + 0.5},
		})
		if facingUp {
			*indices = append(*indices, center, v2, v1)
		} else {
			*indices = append(*indices, center, v1, v2)
		}
	}
}
