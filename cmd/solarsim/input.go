package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"solar-sim/internal/camera"
	"solar-sim/internal/controls"
)

// Held keys repeat every frame; pressed keys fire once.
var (
	heldKeys = []struct {
		key   int32
		event camera.Event
	}{
		{rl.KeyW, camera.PitchUp},
		{rl.KeyS, camera.PitchDown},
		{rl.KeyA, camera.RollLeft},
		{rl.KeyD, camera.RollRight},
		{rl.KeyLeft, camera.YawLeft},
		{rl.KeyRight, camera.YawRight},
		{rl.KeyQ, camera.ZoomIn},
		{rl.KeyE, camera.ZoomOut},
	}
	pressedKeys = []struct {
		key    int32
		toggle controls.Toggle
	}{
		{rl.KeyG, controls.ToggleGrid},
		{rl.KeyT, controls.ToggleGridMode},
		{rl.KeyP, controls.TogglePause},
		{rl.KeyR, controls.RequestReset},
	}
)

// input reuses its slices between frames.
type input struct {
	held    []camera.Event
	pressed []controls.Toggle
}

func newInput() *input {
	return &input{
		held:    make([]camera.Event, 0, len(heldKeys)),
		pressed: make([]controls.Toggle, 0, len(pressedKeys)),
	}
}

func (in *input) poll() ([]camera.Event, []controls.Toggle) {
	in.held = in.held[:0]
	in.pressed = in.pressed[:0]
	for _, k := range heldKeys {
		if rl.IsKeyDown(k.key) {
			in.held = append(in.held, k.event)
		}
	}
	for _, k := range pressedKeys {
		if rl.IsKeyPressed(k.key) {
			in.pressed = append(in.pressed, k.toggle)
		}
	}
	return in.held, in.pressed
}
