package main

import (
	"fmt"
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lukaszgryglicki/gravlens/internal/gravlens"
)

const (
	winWidth  = 1200
	winHeight = 900

	// CPU marching budget: render at reduced resolution and blow the
	// texture up to the window.
	renderWidth  = 400
	renderHeight = 300

	orbitSpeed = 0.01
	zoomSpeed  = 25e9
	fovDeg     = 60
)

// viewParams trades marching depth for interactive frame times; the
// offline renderer keeps the full budgets.
func viewParams() gravlens.Params {
	p := gravlens.DefaultParams()
	p.MaxSteps = 4000
	p.MaxStepsMoving = 800
	return p
}

func main() {
	rl.InitWindow(winWidth, winHeight, "Black Hole Ray Tracer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	hole := gravlens.BlackHole{Mass: gravlens.SagittariusAMass, Rs: gravlens.SagittariusARs}
	disk := gravlens.DefaultDisk(hole.Rs)
	params := viewParams()
	orbit := gravlens.DefaultOrbit()
	preset := gravlens.PresetEquatorial

	img := rl.GenImageColor(renderWidth, renderHeight, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	pixels := make([]color.RGBA, renderWidth*renderHeight)

	fmt.Println("[INFO] Controls:")
	fmt.Println("[INFO]   Mouse drag: Rotate camera")
	fmt.Println("[INFO]   Mouse wheel: Zoom")
	fmt.Println("[INFO]   R: Reset camera")
	fmt.Println("[INFO]   P: Cycle camera presets")
	fmt.Println("[INFO]   ESC: Exit")

	frames := 0
	for !rl.WindowShouldClose() {
		moving := false
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			d := rl.GetMouseDelta()
			if d.X != 0 || d.Y != 0 {
				orbit.Drag(float64(d.X)*orbitSpeed, float64(d.Y)*orbitSpeed)
			}
			moving = true
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			orbit.Zoom(float64(wheel) * zoomSpeed)
			moving = true
		}
		if rl.IsKeyPressed(rl.KeyR) {
			orbit.Preset(gravlens.PresetEquatorial)
			preset = gravlens.PresetEquatorial
			fmt.Println("[INFO] Camera reset")
		}
		if rl.IsKeyPressed(rl.KeyP) {
			preset++
			orbit.Preset(preset)
			fmt.Printf("[INFO] %s view\n", gravlens.PresetName(preset%3))
		}

		cam := orbit.Camera(fovDeg, renderWidth, renderHeight, moving)
		sc := gravlens.NewScene(cam, hole, disk, params, rl.GetTime())
		gravlens.RenderFrame(sc, nil)

		for i := range pixels {
			pixels[i] = color.RGBA{
				R: toByte(sc.Buf[i*4+gravlens.ChR]),
				G: toByte(sc.Buf[i*4+gravlens.ChG]),
				B: toByte(sc.Buf[i*4+gravlens.ChB]),
				A: 255,
			}
		}
		rl.UpdateTexture(tex, pixels)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexturePro(tex,
			rl.NewRectangle(0, 0, renderWidth, renderHeight),
			rl.NewRectangle(0, 0, winWidth, winHeight),
			rl.NewVector2(0, 0), 0, rl.White)
		rl.DrawFPS(10, 10)
		rl.EndDrawing()

		frames++
		if frames%60 == 0 {
			fmt.Printf("[INFO] FPS: %.1f\n", 1.0/math.Max(1e-6, float64(rl.GetFrameTime())))
		}
	}
}

// toByte tone-maps one linear channel to 8 bits with a sqrt gamma.
func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	n := math.Sqrt(math.Min(v, 1))
	return uint8(math.Round(n * 255))
}
