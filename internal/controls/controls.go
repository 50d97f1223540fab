// Package controls holds the interactive state shared by the frame driver: the camera,
// display toggles, pause and reset requests. Key polling lives with the window code; this
// package only interprets the resulting inputs.
package controls

import (
	"solar-sim/internal/camera"
	"solar-sim/internal/logger"
)

// Toggle is a one-shot input, triggered on key press rather than while held.
type Toggle uint8

const (
	ToggleGrid Toggle = iota
	ToggleGridMode
	TogglePause
	RequestReset
)

// Context is passed to the frame driver every frame. The physics never reads it.
type Context struct {
	Camera   *camera.Orbit
	ShowGrid bool
	Grid3D   bool
	Paused   bool

	resetRequested bool
	log            *logger.Logger
}

// New returns a context with the default camera and the 2D sheet grid shown, in both 2D
// and 3D runs. log receives toggle messages and may be nil.
func New(log *logger.Logger) *Context {
	return &Context{
		Camera:   camera.New(),
		ShowGrid: true,
		log:      log,
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func (c *Context) logf(format string, args ...any) {
	if c.log != nil {
		c.log.Logf(format, args...)
	}
}

// Apply feeds held camera events to the orbit and handles pressed toggles in order.
func (c *Context) Apply(held []camera.Event, pressed []Toggle) {
	for _, e := range held {
		c.Camera.Apply(e)
	}
	for _, t := range pressed {
		c.Toggle(t)
	}
}

// Toggle flips one piece of state and logs the new value.
func (c *Context) Toggle(t Toggle) {
	switch t {
	case ToggleGrid:
		c.ShowGrid = !c.ShowGrid
		c.logf("Space-time grid: %s", onOff(c.ShowGrid))
	case ToggleGridMode:
		c.Grid3D = !c.Grid3D
		mode := "2D"
		if c.Grid3D {
			mode = "3D"
		}
		c.logf("Grid mode: %s", mode)
	case TogglePause:
		c.Paused = !c.Paused
		if c.Paused {
			c.logf("Simulation paused")
		} else {
			c.logf("Simulation resumed")
		}
	case RequestReset:
		c.resetRequested = true
	}
}

// TakeReset reports whether a reset was requested since the last call and clears the request.
func (c *Context) TakeReset() bool {
	r := c.resetRequested
	c.resetRequested = false
	return r
}

// Banner lists the key bindings, printed once at startup.
func Banner() []string {
	return []string{
		"Controls:",
		"  W/S: pitch camera",
		"  A/D: roll camera",
		"  Left/Right: yaw camera",
		"  Q/E: zoom in/out",
		"  G: toggle space-time grid",
		"  T: toggle 2D/3D grid",
		"  P: pause",
		"  R: reset",
		"  ESC: console",
	}
}
