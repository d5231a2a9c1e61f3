package scene

import (
	"still-life/core"
	"still-life/math"
)

// Transform is the per-draw placement of a part: scale, then rotation about
// X, Y and Z in degrees, then translation.
type Transform struct {
	Scale       math.Vec3
	RotationDeg math.Vec3
	Position    math.Vec3
}

// Matrix composes the transform into a model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.ComposeTransform(t.Scale, t.RotationDeg, t.Position)
}

// TextureRef names one texture file and the tag draws use to reference it.
type TextureRef struct {
	Path string
	Tag  string
}

// Part is one draw of the still life: a primitive kind under a transform,
// surfaced either by a tagged texture (with UV tiling) or a flat color, and
// optionally a material. An empty MaterialTag leaves the material uniforms
// as the previous draw set them.
type Part struct {
	Name        string
	Shape       ShapeKind
	Transform   Transform
	TextureTag  string
	UVScale     math.Vec2
	Color       core.Color
	MaterialTag string
}

// StillLifeTexturePlan returns the fixed texture load list. Load order fixes
// each texture's sampler slot.
func StillLifeTexturePlan() []TextureRef {
	return []TextureRef{
		{Path: "textures/granite1.jpg", Tag: "counter"},
		{Path: "textures/tiles.jpg", Tag: "wall"},
		{Path: "textures/Rubiks_white.jpg", Tag: "box_white"},
		{Path: "textures/Rubiks_red.jpg", Tag: "box_red"},
		{Path: "textures/Rubiks_blue.jpg", Tag: "box_blue"},
		{Path: "textures/cardboard.jpg", Tag: "paperbag"},
		{Path: "textures/wood.jpg", Tag: "bagclip"},
		{Path: "textures/bagtag.jpg", Tag: "label"},
		{Path: "textures/wax.jpg", Tag: "candlewax"},
		{Path: "textures/ceramic.jpg", Tag: "mug"},
	}
}

// StillLifeParts returns the 21 draws of the scene in render order: counter,
// wall, mug, candle, paper bag, puzzle cubes.
func StillLifeParts() []Part {
	return []Part{
		// Counter top and back wall
		{
			Name:  "counter",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:    math.Vec3{X: 20, Y: 1, Z: 10},
				Position: math.Vec3{X: 0, Y: 0, Z: 2},
			},
			TextureTag:  "counter",
			UVScale:     math.Vec2{X: 2, Y: 2},
			MaterialTag: "ceramic",
		},
		{
			Name:  "wall",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:       math.Vec3{X: 20, Y: 1, Z: 10},
				RotationDeg: math.Vec3{X: 90},
				Position:    math.Vec3{X: 0, Y: 5, Z: -4},
			},
			TextureTag:  "wall",
			UVScale:     math.Vec2{X: 1, Y: 1},
			MaterialTag: "ceramic",
		},

		// Coffee mug: an upside-down tapered body, a torus lip laid flat, a
		// tilted torus handle, and the coffee surface inside the opening.
		{
			Name:  "mug body",
			Shape: ShapeTaperedCylinder,
			Transform: Transform{
				Scale:       math.Vec3{X: 2.5, Y: 3, Z: 2.5},
				RotationDeg: math.Vec3{X: 180},
				Position:    math.Vec3{X: -7, Y: 2.5, Z: 0},
			},
			TextureTag:  "mug",
			UVScale:     math.Vec2{X: 1, Y: 1},
			MaterialTag: "ceramic",
		},
		{
			Name:  "mug lip",
			Shape: ShapeTorus,
			Transform: Transform{
				Scale:       math.Vec3{X: 2, Y: 2, Z: 1.75},
				RotationDeg: math.Vec3{X: 90},
				Position:    math.Vec3{X: -7, Y: 2.5, Z: 0},
			},
			TextureTag:  "mug",
			UVScale:     math.Vec2{X: 1, Y: 1},
			MaterialTag: "ceramic",
		},
		{
			Name:  "mug handle",
			Shape: ShapeTorus,
			Transform: Transform{
				Scale:       math.Vec3{X: 1.8, Y: 0.9, Z: 1},
				RotationDeg: math.Vec3{Z: -30},
				Position:    math.Vec3{X: -8.9, Y: 1.5, Z: 0},
			},
			TextureTag:  "mug",
			UVScale:     math.Vec2{X: 1, Y: 1},
			MaterialTag: "ceramic",
		},
		{
			Name:  "mug coffee",
			Shape: ShapeCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 1.9, Y: 0.1, Z: 1.9},
				Position: math.Vec3{X: -7, Y: 2.2, Z: 0},
			},
			Color: core.Color{R: 0.24, G: 0.12, B: 0.05, A: 1},
		},

		// Candle: textured wax pillar with a wick, inside a glass jar built
		// from stacked cylinder sections and a torus lid.
		{
			Name:  "candle wax",
			Shape: ShapeCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 1.95, Y: 3.25, Z: 1.95},
				Position: math.Vec3{X: -2, Y: 0, Z: 0},
			},
			TextureTag: "candlewax",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},
		{
			Name:  "candle wick",
			Shape: ShapeCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 0.1, Y: 0.5, Z: 0.1},
				Position: math.Vec3{X: -2, Y: 3.25, Z: 0},
			},
			Color: core.ColorBlack,
		},
		{
			Name:  "candle jar bottom",
			Shape: ShapeCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 2, Y: 3.75, Z: 2},
				Position: math.Vec3{X: -2, Y: 0, Z: 0},
			},
			Color:       core.Color{R: 0.7, G: 0.7, B: 0.8, A: 0.3},
			MaterialTag: "glass",
		},
		{
			Name:  "candle jar bottom taper",
			Shape: ShapeTaperedCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 2, Y: 0.5, Z: 2},
				Position: math.Vec3{X: -2, Y: 3.74, Z: 0},
			},
			Color:       core.Color{R: 0.7, G: 0.7, B: 0.8, A: 0.3},
			MaterialTag: "glass",
		},
		{
			Name:  "candle jar narrow",
			Shape: ShapeCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 1.75, Y: 0.85, Z: 1.75},
				Position: math.Vec3{X: -2, Y: 4.1, Z: 0},
			},
			Color:       core.Color{R: 0.95, G: 0.95, B: 0.95, A: 0.7},
			MaterialTag: "glass",
		},
		{
			Name:  "candle jar lip",
			Shape: ShapeTaperedCylinder,
			Transform: Transform{
				Scale:    math.Vec3{X: 1.75, Y: 0.5, Z: 1.75},
				Position: math.Vec3{X: -2, Y: 4.95, Z: 0},
			},
			Color:       core.Color{R: 0.7, G: 0.7, B: 0.8, A: 0.3},
			MaterialTag: "glass",
		},
		{
			Name:  "candle jar lid",
			Shape: ShapeTorus,
			Transform: Transform{
				Scale:       math.Vec3{X: 1, Y: 1, Z: 3},
				RotationDeg: math.Vec3{X: 90},
				Position:    math.Vec3{X: -2, Y: 5.4, Z: 0},
			},
			Color:       core.Color{R: 0.7, G: 0.7, B: 0.8, A: 0.3},
			MaterialTag: "glass",
		},

		// Paper bag: a box base with a folded-over prism top, a hanging
		// label, and two wooden clips pinching the fold.
		{
			Name:  "bag box",
			Shape: ShapeBox,
			Transform: Transform{
				Scale:       math.Vec3{X: 3.95, Y: 2.6, Z: 2.3},
				RotationDeg: math.Vec3{Y: -20},
				Position:    math.Vec3{X: 6.5, Y: 1.25, Z: 0},
			},
			TextureTag:  "paperbag",
			UVScale:     math.Vec2{X: 1, Y: 1},
			MaterialTag: "cardboard",
		},
		{
			Name:  "bag fold",
			Shape: ShapePrism,
			Transform: Transform{
				Scale:       math.Vec3{X: 2.35, Y: 3.95, Z: 4.5},
				RotationDeg: math.Vec3{X: -90, Z: -110},
				Position:    math.Vec3{X: 6.5, Y: 4.55, Z: 0},
			},
			TextureTag:  "paperbag",
			UVScale:     math.Vec2{X: 1, Y: 1},
			MaterialTag: "cardboard",
		},
		{
			Name:  "bag label",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:       math.Vec3{X: 1.2, Y: 0, Z: 1.6},
				RotationDeg: math.Vec3{X: 78, Y: -5, Z: 20},
				Position:    math.Vec3{X: 6.2, Y: 4.5, Z: 0.65},
			},
			TextureTag: "label",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},
		{
			Name:  "bag clip front",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:       math.Vec3{X: 0.4, Y: 0, Z: 0.15},
				RotationDeg: math.Vec3{X: 78, Y: -5, Z: 20},
				Position:    math.Vec3{X: 4.9, Y: 6.25, Z: -0.3},
			},
			TextureTag: "bagclip",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},
		{
			Name:  "bag clip back",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:       math.Vec3{X: 0.4, Y: 0, Z: 0.15},
				RotationDeg: math.Vec3{X: 78, Y: -5, Z: 20},
				Position:    math.Vec3{X: 7.91, Y: 6.25, Z: 0.72},
			},
			TextureTag: "bagclip",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},

		// Puzzle cube: white-stickered body plus two decal planes pressed
		// against its front face and top.
		{
			Name:  "cube body",
			Shape: ShapeBox,
			Transform: Transform{
				Scale:       math.Vec3{X: 2, Y: 2, Z: 2},
				RotationDeg: math.Vec3{Y: 45},
				Position:    math.Vec3{X: 3, Y: 1, Z: 2},
			},
			TextureTag: "box_white",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},
		{
			Name:  "cube red face",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:       math.Vec3{X: 1, Y: 1, Z: 1},
				RotationDeg: math.Vec3{X: 90, Z: 135},
				Position:    math.Vec3{X: 3.75, Y: 1, Z: 2.71},
			},
			TextureTag: "box_red",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},
		{
			Name:  "cube blue top",
			Shape: ShapePlane,
			Transform: Transform{
				Scale:       math.Vec3{X: 1, Y: 1, Z: 1},
				RotationDeg: math.Vec3{Y: 45},
				Position:    math.Vec3{X: 3, Y: 2.01, Z: 2},
			},
			TextureTag: "box_blue",
			UVScale:    math.Vec2{X: 1, Y: 1},
		},
	}
}
