package main

import (
	"fmt"
	stdmath "math"
	"time"

	"still-life/core"
	"still-life/math"
	"still-life/renderer"
	"still-life/scene"
)

// CameraController turns polled keyboard and mouse state into free-fly
// camera motion: WASD planar movement, Q/E vertical, mouse look.
type CameraController struct {
	moveSpeed  float32
	lookSpeed  float32
	lastMouseX float64
	lastMouseY float64
	firstMouse bool
	yaw        float32
	pitch      float32

	pKeyWasDown bool
	oKeyWasDown bool
}

// NewCameraController derives the initial yaw and pitch from the camera's
// front vector so the first mouse movement doesn't snap the view.
func NewCameraController(camera *scene.Camera) *CameraController {
	f := camera.Front.Normalize()
	return &CameraController{
		moveSpeed:  6.0,
		lookSpeed:  0.1,
		firstMouse: true,
		yaw:        math.Degrees(float32(stdmath.Atan2(float64(f.Z), float64(f.X)))),
		pitch:      math.Degrees(float32(stdmath.Asin(float64(f.Y)))),
	}
}

// AdjustSpeed applies one scroll-wheel step to the movement speed.
func (cc *CameraController) AdjustSpeed(offset float32) {
	cc.moveSpeed += offset
	if cc.moveSpeed < 1.0 {
		cc.moveSpeed = 1.0
	}
	if cc.moveSpeed > 25.0 {
		cc.moveSpeed = 25.0
	}
}

func (cc *CameraController) Update(window *core.Window, camera *scene.Camera, deltaTime float32) {
	// Cap deltaTime to avoid huge jumps on first frames or hitches
	if deltaTime > 0.05 {
		deltaTime = 0.05
	}

	// Mouse look
	mouseX, mouseY := window.GetCursorPos()
	if cc.firstMouse {
		cc.lastMouseX = mouseX
		cc.lastMouseY = mouseY
		cc.firstMouse = false
	}
	cc.yaw += float32(mouseX-cc.lastMouseX) * cc.lookSpeed
	cc.pitch += float32(cc.lastMouseY-mouseY) * cc.lookSpeed
	if cc.pitch > 89.0 {
		cc.pitch = 89.0
	}
	if cc.pitch < -89.0 {
		cc.pitch = -89.0
	}
	cc.lastMouseX = mouseX
	cc.lastMouseY = mouseY

	yawRad := float64(math.Radians(cc.yaw))
	pitchRad := float64(math.Radians(cc.pitch))
	camera.Front = math.Vec3{
		X: float32(stdmath.Cos(yawRad) * stdmath.Cos(pitchRad)),
		Y: float32(stdmath.Sin(pitchRad)),
		Z: float32(stdmath.Sin(yawRad) * stdmath.Cos(pitchRad)),
	}.Normalize()

	right := camera.Front.Cross(camera.Up).Normalize()
	velocity := cc.moveSpeed * deltaTime

	if window.IsKeyPressed(core.KeyW) {
		camera.Position = camera.Position.Add(camera.Front.Mul(velocity))
	}
	if window.IsKeyPressed(core.KeyS) {
		camera.Position = camera.Position.Sub(camera.Front.Mul(velocity))
	}
	if window.IsKeyPressed(core.KeyA) {
		camera.Position = camera.Position.Sub(right.Mul(velocity))
	}
	if window.IsKeyPressed(core.KeyD) {
		camera.Position = camera.Position.Add(right.Mul(velocity))
	}
	if window.IsKeyPressed(core.KeyQ) {
		camera.Position = camera.Position.Sub(camera.Up.Mul(velocity))
	}
	if window.IsKeyPressed(core.KeyE) {
		camera.Position = camera.Position.Add(camera.Up.Mul(velocity))
	}

	// Projection switches (debounced so the log prints once per press)
	pDown := window.IsKeyPressed(core.KeyP)
	if pDown && !cc.pKeyWasDown && camera.Orthographic {
		camera.Orthographic = false
		fmt.Println("[Projection] perspective")
	}
	cc.pKeyWasDown = pDown

	oDown := window.IsKeyPressed(core.KeyO)
	if oDown && !cc.oKeyWasDown && !camera.Orthographic {
		camera.Orthographic = true
		fmt.Println("[Projection] orthographic")
	}
	cc.oKeyWasDown = oDown
}

func main() {
	fmt.Println("Starting still life...")

	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		return
	}
	defer window.Destroy()

	sceneRenderer, err := renderer.NewSceneRenderer(window)
	if err != nil {
		fmt.Printf("Failed to create scene renderer: %v\n", err)
		return
	}
	defer sceneRenderer.Destroy()

	sceneRenderer.LoadSceneTextures()
	sceneRenderer.DefineMaterials()
	sceneRenderer.SetupLights()
	sceneRenderer.LoadShapes()

	camera := scene.NewCamera()
	controller := NewCameraController(camera)
	window.SetScrollCallback(func(xoff, yoff float64) {
		controller.AdjustSpeed(float32(yoff))
	})

	fmt.Println("Controls: WASD move | Q/E down/up | mouse look | scroll speed | P perspective | O orthographic | Esc quit")

	lastFrame := time.Now()
	fpsTimer := lastFrame
	frames := 0

	for !window.ShouldClose() {
		now := time.Now()
		deltaTime := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			window.SetShouldClose(true)
		}
		controller.Update(window, camera, deltaTime)

		width, height := window.GetFramebufferSize()
		sceneRenderer.BeginFrame(width, height)
		sceneRenderer.SetView(camera, width, height)
		sceneRenderer.RenderScene()
		window.SwapBuffers()

		frames++
		if now.Sub(fpsTimer).Seconds() >= 1.0 {
			window.SetTitle(fmt.Sprintf("Still Life | FPS: %d | draws: %d",
				frames, sceneRenderer.DrawCount()))
			frames = 0
			fpsTimer = now
		}
	}

	fmt.Println("Exiting...")
}
