package scene

import (
	"strings"
	"testing"

	"still-life/math"
)

func TestStillLifePartsOrder(t *testing.T) {
	parts := StillLifeParts()
	if len(parts) != 21 {
		t.Fatalf("StillLifeParts: expected 21 parts, got %d", len(parts))
	}

	order := []string{
		"counter",
		"wall",
		"mug body",
		"mug lip",
		"mug handle",
		"mug coffee",
		"candle wax",
		"candle wick",
		"candle jar bottom",
		"candle jar bottom taper",
		"candle jar narrow",
		"candle jar lip",
		"candle jar lid",
		"bag box",
		"bag fold",
		"bag label",
		"bag clip front",
		"bag clip back",
		"cube body",
		"cube red face",
		"cube blue top",
	}
	for i, name := range order {
		if parts[i].Name != name {
			t.Errorf("parts[%d]: expected %q, got %q", i, name, parts[i].Name)
		}
	}
}

func TestStillLifePartGroups(t *testing.T) {
	counts := map[string]int{}
	for _, p := range StillLifeParts() {
		group := p.Name
		if i := strings.IndexByte(p.Name, ' '); i >= 0 {
			group = p.Name[:i]
		}
		counts[group]++
	}

	expected := map[string]int{
		"counter": 1,
		"wall":    1,
		"mug":     4,
		"candle":  7,
		"bag":     5,
		"cube":    3,
	}
	for group, n := range expected {
		if counts[group] != n {
			t.Errorf("group %q: expected %d parts, got %d", group, n, counts[group])
		}
	}
}

func TestStillLifeTexturePlan(t *testing.T) {
	plan := StillLifeTexturePlan()
	if len(plan) != 10 {
		t.Fatalf("StillLifeTexturePlan: expected 10 textures, got %d", len(plan))
	}
	if plan[0].Tag != "counter" {
		t.Errorf("plan[0]: expected tag counter, got %q", plan[0].Tag)
	}
	if plan[9].Tag != "mug" {
		t.Errorf("plan[9]: expected tag mug, got %q", plan[9].Tag)
	}

	tags := map[string]bool{}
	for _, ref := range plan {
		if ref.Path == "" {
			t.Errorf("tag %q: empty path", ref.Tag)
		}
		if tags[ref.Tag] {
			t.Errorf("tag %q: duplicated in plan", ref.Tag)
		}
		tags[ref.Tag] = true
	}

	// Every texture a part references must be in the plan.
	for _, p := range StillLifeParts() {
		if p.TextureTag != "" && !tags[p.TextureTag] {
			t.Errorf("part %q: texture tag %q not in plan", p.Name, p.TextureTag)
		}
	}
}

func TestStillLifePartsSurface(t *testing.T) {
	for _, p := range StillLifeParts() {
		if p.TextureTag != "" {
			if p.UVScale.X == 0 || p.UVScale.Y == 0 {
				t.Errorf("part %q: textured draw with zero UV scale", p.Name)
			}
			continue
		}
		if p.Color.A == 0 {
			t.Errorf("part %q: color draw with zero alpha", p.Name)
		}
	}
}

func TestStillLifeMaterialTagsResolve(t *testing.T) {
	reg := NewMaterialRegistry()
	for _, m := range StillLifeMaterials() {
		reg.Add(m)
	}

	for _, p := range StillLifeParts() {
		if p.MaterialTag == "" {
			continue
		}
		if _, ok := reg.FindByTag(p.MaterialTag); !ok {
			t.Errorf("part %q: material tag %q not defined", p.Name, p.MaterialTag)
		}
	}
}

func TestStillLifeTransformsReachAuthoredPositions(t *testing.T) {
	for _, p := range StillLifeParts() {
		m := p.Transform.Matrix()
		got := m.TransformPoint(math.Vec3Zero)
		if got != p.Transform.Position {
			t.Errorf("part %q: origin maps to %v, want %v", p.Name, got, p.Transform.Position)
		}
	}
}
