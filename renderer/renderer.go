package renderer

import (
	"fmt"

	"still-life/core"
	"still-life/internal/opengl"
	"still-life/math"
	"still-life/scene"
)

// SceneRenderer drives the OpenGL backend for the still life. It owns the
// shader program, one GPU mesh per shape kind, and the texture and material
// registries. Construct one per window; every method must run on the thread
// that owns the GL context.
type SceneRenderer struct {
	program   *opengl.Program
	backend   opengl.TextureBackend
	meshes    map[scene.ShapeKind]*opengl.GPUMesh
	textures  *scene.TextureRegistry
	materials *scene.MaterialRegistry
	lights    []scene.Light
	parts     []scene.Part

	lastDraws int
}

// NewSceneRenderer initializes OpenGL and builds the scene shader program.
// The window's GL context must already be current.
func NewSceneRenderer(window *core.Window) (*SceneRenderer, error) {
	if err := opengl.Init(); err != nil {
		return nil, err
	}

	program, err := opengl.NewSceneProgram()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene shader program: %w", err)
	}

	width, height := window.GetFramebufferSize()
	opengl.Viewport(width, height)

	fmt.Println("Scene renderer initialized (OpenGL)")
	return &SceneRenderer{
		program:   program,
		meshes:    make(map[scene.ShapeKind]*opengl.GPUMesh),
		textures:  scene.NewTextureRegistry(),
		materials: scene.NewMaterialRegistry(),
		lights:    scene.StillLifeLights(),
		parts:     scene.StillLifeParts(),
	}, nil
}

// LoadSceneTextures decodes and uploads every texture in the still-life plan,
// then activates each one on the texture unit matching its registry slot.
// A file that fails to decode or upload is reported and skipped; parts that
// reference it draw with whatever the sampler returns.
func (sr *SceneRenderer) LoadSceneTextures() {
	for _, ref := range scene.StillLifeTexturePlan() {
		if err := sr.textures.Load(sr.backend, ref.Path, ref.Tag); err != nil {
			fmt.Printf("Failed to load texture %s: %v\n", ref.Path, err)
		}
	}
	for _, entry := range sr.textures.Entries() {
		opengl.BindTextureUnit(entry.Slot, uint32(entry.Handle))
	}
	fmt.Printf("Loaded %d scene textures\n", sr.textures.Count())
}

// DefineMaterials fills the material registry with the still-life materials.
func (sr *SceneRenderer) DefineMaterials() {
	for _, m := range scene.StillLifeMaterials() {
		sr.materials.Add(m)
	}
}

// SetupLights pushes the three fixed light sources to the shader and turns
// lighting on. The light rig never changes after this call.
func (sr *SceneRenderer) SetupLights() {
	sr.program.Use()
	for i, light := range sr.lights {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		sr.program.SetVec3(prefix+".position", light.Position)
		sr.program.SetVec3(prefix+".ambientColor", light.AmbientColor)
		sr.program.SetVec3(prefix+".diffuseColor", light.DiffuseColor)
		sr.program.SetVec3(prefix+".specularColor", light.SpecularColor)
		sr.program.SetFloat(prefix+".focalStrength", light.FocalStrength)
		sr.program.SetFloat(prefix+".specularIntensity", light.SpecularIntensity)
	}
	sr.program.SetBool("bUseLighting", true)
}

// LoadShapes builds and uploads one GPU mesh per shape kind. Parts share
// these meshes; per-part variation comes entirely from the model matrix.
func (sr *SceneRenderer) LoadShapes() {
	for _, kind := range scene.AllShapes() {
		sr.meshes[kind] = opengl.UploadMesh(scene.BuildShape(kind))
	}
}

// SetTransformations uploads the model matrix composed from one transform.
func (sr *SceneRenderer) SetTransformations(t scene.Transform) {
	sr.program.SetMat4("model", t.Matrix())
}

// SetShaderColor switches the program to flat-color output.
func (sr *SceneRenderer) SetShaderColor(c core.Color) {
	sr.program.SetColor("objectColor", c)
	sr.program.SetBool("bUseTexture", false)
}

// SetShaderTexture switches the program to textured output, addressing the
// sampler by the tag's registry slot. An unknown tag passes the -1 sentinel
// straight through to the sampler uniform.
func (sr *SceneRenderer) SetShaderTexture(tag string) {
	slot := sr.textures.SlotByTag(tag)
	sr.program.SetInt("objectTexture", slot)
	sr.program.SetBool("bUseTexture", true)
	if handle := sr.textures.HandleByTag(tag); handle >= 0 {
		opengl.BindTextureUnit(slot, uint32(handle))
	}
}

// SetTextureUVScale sets the UV multiplier applied before sampling.
func (sr *SceneRenderer) SetTextureUVScale(u, v float32) {
	sr.program.SetVec2("UVscale", math.Vec2{X: u, Y: v})
}

// SetShaderMaterial uploads the Phong material registered under tag. An
// unknown tag leaves the previous material in place.
func (sr *SceneRenderer) SetShaderMaterial(tag string) {
	mat, ok := sr.materials.FindByTag(tag)
	if !ok {
		return
	}
	sr.program.SetVec3("material.ambientColor", mat.AmbientColor)
	sr.program.SetFloat("material.ambientStrength", mat.AmbientStrength)
	sr.program.SetVec3("material.diffuseColor", mat.DiffuseColor)
	sr.program.SetVec3("material.specularColor", mat.SpecularColor)
	sr.program.SetFloat("material.shininess", mat.Shininess)
}

// SetView uploads the camera matrices and eye position for this frame.
func (sr *SceneRenderer) SetView(camera *scene.Camera, width, height int) {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	sr.program.Use()
	sr.program.SetMat4("view", camera.ViewMatrix())
	sr.program.SetMat4("projection", camera.ProjectionMatrix(aspect))
	sr.program.SetVec3("viewPosition", camera.Position)
}

// BeginFrame sizes the viewport and clears the color and depth buffers.
func (sr *SceneRenderer) BeginFrame(width, height int) {
	opengl.Viewport(width, height)
	opengl.Clear()
}

// RenderScene draws the full still life: every part in authored order, one
// draw submission each. Texture, color, and material state set for a part
// stays in effect until a later part changes it.
func (sr *SceneRenderer) RenderScene() {
	sr.program.Use()
	draws := 0
	for _, part := range sr.parts {
		sr.SetTransformations(part.Transform)
		if part.TextureTag != "" {
			sr.SetShaderTexture(part.TextureTag)
			sr.SetTextureUVScale(part.UVScale.X, part.UVScale.Y)
		} else {
			sr.SetShaderColor(part.Color)
		}
		if part.MaterialTag != "" {
			sr.SetShaderMaterial(part.MaterialTag)
		}
		sr.meshes[part.Shape].Draw()
		draws++
	}
	sr.lastDraws = draws
}

// DrawCount reports the number of draw submissions in the last RenderScene.
func (sr *SceneRenderer) DrawCount() int {
	return sr.lastDraws
}

// Destroy releases every GPU resource the renderer owns.
func (sr *SceneRenderer) Destroy() {
	sr.textures.Destroy(sr.backend)
	for _, mesh := range sr.meshes {
		mesh.Delete()
	}
	sr.meshes = nil
	sr.program.Delete()
}
