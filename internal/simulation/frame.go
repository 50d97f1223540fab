package simulation

import (
	"solar-sim/internal/curvature"
	"solar-sim/internal/lighting"
	"solar-sim/internal/physics"
)

// BodyView is what the renderer receives for one body.
type BodyView struct {
	Name      string
	Position  [3]float32
	Radius    float32
	Kind      physics.Kind
	Color     [4]float32 // already shaded
	Intensity float32
}

// Frame is the renderer contract for one frame. Shadows are rebuilt from the current
// positions every call.
type Frame struct {
	Bodies  []BodyView
	Light   [3]float32
	Shadows []lighting.Shadow
	Grid    []curvature.Segment
	Bounds  *[2][3]float32 // containment box of the bounce variant
}

// FrameRequest carries the display toggles owned by the input context.
type FrameRequest struct {
	ShowGrid bool
	Grid3D   bool
}

// Frame derives the renderer input from the current bodies. The grid is produced only when
// the options allow it and req asks for it.
func (s *System) Frame(req FrameRequest) Frame {
	bodies := s.world.Bodies
	f := Frame{Bodies: make([]BodyView, len(bodies))}

	if s.variant == Bounce {
		for i, b := range bodies {
			f.Bodies[i] = BodyView{
				Name:      b.Name,
				Position:  b.Position,
				Radius:    b.Radius(s.radius, s.world.Scale),
				Kind:      b.Kind,
				Color:     b.Color,
				Intensity: 1,
			}
		}
		box := [2][3]float32{s.resolver.Bounds.Min, s.resolver.Bounds.Max}
		f.Bounds = &box
		return f
	}

	if len(bodies) == 0 {
		return f
	}
	primary := bodies[0]
	f.Light = primary.Position
	f.Shadows = lighting.ShadowSources(bodies, s.radius, s.world.Scale)

	for i, b := range bodies {
		intensity := float32(1)
		if b.Kind == physics.Planet {
			intensity = s.light.Intensity(f.Light, b.Position, f.Shadows)
		}
		f.Bodies[i] = BodyView{
			Name:      b.Name,
			Position:  b.Position,
			Radius:    b.Radius(s.radius, s.world.Scale),
			Kind:      b.Kind,
			Color:     lighting.Shade(b.Kind, b.Color, intensity),
			Intensity: intensity,
		}
	}

	if s.opts.EnableGrid && req.ShowGrid {
		f.Grid = s.grid.Segments(req.Grid3D, primary, bodies)
	}
	return f
}
