package scene

import (
	"testing"
)

func TestStillLifeMaterials(t *testing.T) {
	materials := StillLifeMaterials()
	if len(materials) != 3 {
		t.Fatalf("StillLifeMaterials: expected 3, got %d", len(materials))
	}

	order := []string{"glass", "ceramic", "cardboard"}
	for i, tag := range order {
		if materials[i].Tag != tag {
			t.Errorf("materials[%d]: expected tag %q, got %q", i, tag, materials[i].Tag)
		}
	}
}

func TestMaterialRegistryFindByTag(t *testing.T) {
	reg := NewMaterialRegistry()
	for _, m := range StillLifeMaterials() {
		reg.Add(m)
	}

	glass, ok := reg.FindByTag("glass")
	if !ok {
		t.Fatal("FindByTag(glass): expected a match")
	}
	if glass.AmbientStrength != 0.4 {
		t.Errorf("glass AmbientStrength: expected 0.4, got %v", glass.AmbientStrength)
	}
	if glass.Shininess != 85.0 {
		t.Errorf("glass Shininess: expected 85, got %v", glass.Shininess)
	}

	cardboard, ok := reg.FindByTag("cardboard")
	if !ok {
		t.Fatal("FindByTag(cardboard): expected a match")
	}
	if cardboard.Shininess != 0 {
		t.Errorf("cardboard Shininess: expected 0, got %v", cardboard.Shininess)
	}

	if _, ok := reg.FindByTag("Glass"); ok {
		t.Error("FindByTag(Glass): lookup must be case-sensitive")
	}
	if _, ok := reg.FindByTag("velvet"); ok {
		t.Error("FindByTag(velvet): expected no match")
	}
}

func TestMaterialRegistryFirstMatchWins(t *testing.T) {
	reg := NewMaterialRegistry()
	reg.Add(Material{Tag: "glass", Shininess: 85})
	reg.Add(Material{Tag: "glass", Shininess: 1})

	m, ok := reg.FindByTag("glass")
	if !ok {
		t.Fatal("FindByTag(glass): expected a match")
	}
	if m.Shininess != 85 {
		t.Errorf("FindByTag(glass): expected first entry (shininess 85), got %v", m.Shininess)
	}
}
