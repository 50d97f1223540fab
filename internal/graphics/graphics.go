package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindowInit is returned by Run when the window or its GL context could not be created.
var ErrWindowInit = errors.New("failed to create window")

// Window describes the window Run opens.
type Window struct {
	Width      int32
	Height     int32
	Title      string
	TargetFPS  int32
	NearPlane  float64
	FarPlane   float64
	Background rl.Color
}

// DefaultWindow is the 1200x900 simulator window on a dark blue background. The clip planes
// keep the whole space-time sheet visible from the starting camera.
func DefaultWindow() Window {
	return Window{
		Width:      1200,
		Height:     900,
		Title:      "3D Solar System Simulation",
		TargetFPS:  60,
		NearPlane:  1,
		FarPlane:   10000,
		Background: rl.NewColor(13, 13, 26, 255),
	}
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls update
// (input and simulation), then clears the screen and calls draw.
// ESC is reserved for the console, so the window only closes through its close button.
func Run(w Window, update, draw func()) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	if !rl.IsWindowReady() {
		return ErrWindowInit
	}
	defer rl.CloseWindow()

	rl.SetClipPlanes(w.NearPlane, w.FarPlane)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	return nil
}
