package io

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"still-life/scene"
)

func TestExportGLBRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "still_life.glb")
	parts := scene.StillLifeParts()

	if err := ExportGLB(path, parts); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}

	if len(doc.Nodes) != len(parts) {
		t.Fatalf("ExportGLB: expected %d nodes, got %d", len(parts), len(doc.Nodes))
	}
	if len(doc.Meshes) != len(scene.AllShapes()) {
		t.Errorf("ExportGLB: expected %d meshes, got %d", len(scene.AllShapes()), len(doc.Meshes))
	}
	if len(doc.Scenes) == 0 || len(doc.Scenes[0].Nodes) != len(parts) {
		t.Errorf("ExportGLB: scene should reference every node")
	}

	for i, part := range parts {
		if doc.Nodes[i].Name != part.Name {
			t.Errorf("node %d: expected name %q, got %q", i, part.Name, doc.Nodes[i].Name)
		}
	}
}

func TestExportGLBNodeTransforms(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transforms.glb")
	parts := scene.StillLifeParts()

	if err := ExportGLB(path, parts); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}

	for i, part := range parts {
		node := doc.Nodes[i]
		wantPos := [3]float64{
			float64(part.Transform.Position.X),
			float64(part.Transform.Position.Y),
			float64(part.Transform.Position.Z),
		}
		if node.Translation != wantPos {
			t.Errorf("node %q: expected translation %v, got %v", part.Name, wantPos, node.Translation)
		}
		wantScale := [3]float64{
			float64(part.Transform.Scale.X),
			float64(part.Transform.Scale.Y),
			float64(part.Transform.Scale.Z),
		}
		if node.Scale != wantScale {
			t.Errorf("node %q: expected scale %v, got %v", part.Name, wantScale, node.Scale)
		}
	}

	// The counter is authored without rotation, so its node keeps the
	// identity quaternion.
	if rot := doc.Nodes[0].Rotation; rot != [4]float64{0, 0, 0, 1} {
		t.Errorf("counter: expected identity rotation, got %v", rot)
	}
}

func TestExportGLBMeshGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geometry.glb")
	parts := scene.StillLifeParts()

	if err := ExportGLB(path, parts); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}
	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}

	// Meshes appear in first-use order, so the counter's plane comes first.
	first := doc.Meshes[0]
	if first.Name != "Plane" {
		t.Fatalf("expected first mesh Plane, got %q", first.Name)
	}
	prim := first.Primitives[0]
	if prim.Indices == nil {
		t.Fatal("plane primitive has no indices")
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		t.Fatalf("read indices: %v", err)
	}
	if len(indices) != 6 {
		t.Errorf("plane: expected 6 indices, got %d", len(indices))
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		t.Fatal("plane primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		t.Fatalf("read positions: %v", err)
	}
	if len(positions) != 4 {
		t.Errorf("plane: expected 4 vertices, got %d", len(positions))
	}
	if _, ok := prim.Attributes["NORMAL"]; !ok {
		t.Error("plane primitive has no NORMAL attribute")
	}
	if _, ok := prim.Attributes["TEXCOORD_0"]; !ok {
		t.Error("plane primitive has no TEXCOORD_0 attribute")
	}
}
