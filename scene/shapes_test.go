package scene

import (
	stdmath "math"
	"testing"
)

func TestAllShapesBuild(t *testing.T) {
	kinds := AllShapes()
	if len(kinds) != 6 {
		t.Fatalf("AllShapes: expected 6 kinds, got %d", len(kinds))
	}

	for _, kind := range kinds {
		mesh := BuildShape(kind)
		if mesh == nil {
			t.Fatalf("BuildShape(%v): returned nil", kind)
		}
		if len(mesh.Vertices) == 0 {
			t.Errorf("%v: no vertices", kind)
		}
		if len(mesh.Indices) == 0 || len(mesh.Indices)%3 != 0 {
			t.Errorf("%v: index count %d is not a triangle list", kind, len(mesh.Indices))
		}
		if mesh.IndexCount != uint32(len(mesh.Indices)) {
			t.Errorf("%v: IndexCount %d != len(Indices) %d", kind, mesh.IndexCount, len(mesh.Indices))
		}
		for _, idx := range mesh.Indices {
			if int(idx) >= len(mesh.Vertices) {
				t.Fatalf("%v: index %d out of range (%d vertices)", kind, idx, len(mesh.Vertices))
			}
		}
		for i, v := range mesh.Vertices {
			if l := v.Normal.Length(); l < 0.99 || l > 1.01 {
				t.Errorf("%v: vertex %d normal length %v, expected unit", kind, i, l)
			}
		}
	}
}

func TestCreatePlaneSpansUnitQuad(t *testing.T) {
	mesh := CreatePlane()
	if len(mesh.Vertices) != 4 || len(mesh.Indices) != 6 {
		t.Fatalf("plane: expected 4 vertices / 6 indices, got %d / %d", len(mesh.Vertices), len(mesh.Indices))
	}
	for i, v := range mesh.Vertices {
		if v.Position.Y != 0 {
			t.Errorf("vertex %d: expected Y=0, got %v", i, v.Position.Y)
		}
		if abs32(v.Position.X) != 1 || abs32(v.Position.Z) != 1 {
			t.Errorf("vertex %d: expected corner at ±1, got %v", i, v.Position)
		}
		if v.Normal.Y != 1 {
			t.Errorf("vertex %d: expected +Y normal, got %v", i, v.Normal)
		}
	}
}

func TestCreateBoxIsUnitCube(t *testing.T) {
	mesh := CreateBox()
	if len(mesh.Vertices) != 24 {
		t.Errorf("box: expected 24 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 36 {
		t.Errorf("box: expected 36 indices, got %d", len(mesh.Indices))
	}
	for i, v := range mesh.Vertices {
		if abs32(v.Position.X) != 0.5 || abs32(v.Position.Y) != 0.5 || abs32(v.Position.Z) != 0.5 {
			t.Errorf("vertex %d: expected corner at ±0.5, got %v", i, v.Position)
		}
	}
}

func TestCreateCylinderSpansUnitHeight(t *testing.T) {
	mesh := CreateCylinder(16)

	minY, maxY := mesh.Vertices[0].Position.Y, mesh.Vertices[0].Position.Y
	maxRadial := float32(0)
	for _, v := range mesh.Vertices {
		if v.Position.Y < minY {
			minY = v.Position.Y
		}
		if v.Position.Y > maxY {
			maxY = v.Position.Y
		}
		if r := radial(v.Position.X, v.Position.Z); r > maxRadial {
			maxRadial = r
		}
	}

	if minY != 0 || maxY != 1 {
		t.Errorf("cylinder: expected Y range [0,1], got [%v,%v]", minY, maxY)
	}
	if maxRadial < 0.999 || maxRadial > 1.001 {
		t.Errorf("cylinder: expected radius 1, got %v", maxRadial)
	}
}

func TestCreateTaperedCylinderNarrowsToHalf(t *testing.T) {
	mesh := CreateTaperedCylinder(16)

	baseRadial, topRadial := float32(0), float32(0)
	for _, v := range mesh.Vertices {
		r := radial(v.Position.X, v.Position.Z)
		switch v.Position.Y {
		case 0:
			if r > baseRadial {
				baseRadial = r
			}
		case 1:
			if r > topRadial {
				topRadial = r
			}
		}
	}

	if baseRadial < 0.999 || baseRadial > 1.001 {
		t.Errorf("tapered cylinder: expected base radius 1, got %v", baseRadial)
	}
	if topRadial < 0.499 || topRadial > 0.501 {
		t.Errorf("tapered cylinder: expected top radius 0.5, got %v", topRadial)
	}
}

func TestCreateTorusRingLiesInXYPlane(t *testing.T) {
	mesh := CreateTorus(16, 8)

	for i, v := range mesh.Vertices {
		if abs32(v.Position.Z) > 0.201 {
			t.Fatalf("vertex %d: |Z| %v exceeds tube radius", i, v.Position.Z)
		}
		r := radial(v.Position.X, v.Position.Y)
		if r < 0.799 || r > 1.201 {
			t.Errorf("vertex %d: ring distance %v outside [0.8,1.2]", i, r)
		}
	}
}

func TestCreatePrismFillsUnitCube(t *testing.T) {
	mesh := CreatePrism()
	if len(mesh.Vertices) != 18 {
		t.Errorf("prism: expected 18 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 24 {
		t.Errorf("prism: expected 24 indices, got %d", len(mesh.Indices))
	}
	for i, v := range mesh.Vertices {
		p := v.Position
		if abs32(p.X) > 0.5 || abs32(p.Y) > 0.5 || abs32(p.Z) > 0.5 {
			t.Errorf("vertex %d: %v outside the unit cube", i, p)
		}
	}
}

func TestCreateCylinderClampsSegments(t *testing.T) {
	mesh := CreateCylinder(1)
	if len(mesh.Vertices) == 0 {
		t.Error("cylinder with segments<3: expected clamped mesh, got none")
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func radial(a, b float32) float32 {
	return float32(stdmath.Sqrt(float64(a*a + b*b)))
}

func BenchmarkBuildCylinder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CreateCylinder(36)
	}
}
