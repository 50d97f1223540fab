// Package lighting computes how brightly the primary light source illuminates a body.
// The falloff is tuned for visibility, not physical accuracy, and black holes near a body
// cast a partial shadow when they sit between it and the light.
package lighting

import (
	"solar-sim/internal/physics"
	"solar-sim/internal/units"
	"solar-sim/internal/vecmath"
)

// Shadow is a black hole that can occlude light this frame.
type Shadow struct {
	Position      [3]float32
	HorizonRadius float32
}

// Model holds the tuning of the falloff curve and shadow attenuation.
type Model struct {
	BaseFloor     float32 // intensity added before the falloff term
	Falloff       float32 // numerator of the falloff term
	FalloffOffset float32 // added to distance in the falloff denominator
	SourceRadius  float32 // below this distance the body is at the light
	MinAmbient    float32 // final floor after shadows
	ShadowReach   float32 // shadow test radius as a multiple of the horizon radius
	MaxShadow     float32 // fraction of intensity removed by a fully centered shadow
}

// DefaultModel returns the tuning used by every preset.
func DefaultModel() Model {
	return Model{
		BaseFloor:     0.8,
		Falloff:       200000,
		FalloffOffset: 100,
		SourceRadius:  1,
		MinAmbient:    0.4,
		ShadowReach:   2,
		MaxShadow:     0.4,
	}
}

// Intensity returns the illumination of a body at bodyPos lit from lightPos, in
// [MinAmbient, 1]. It is exactly 1 when the body is within SourceRadius of the light.
func (m Model) Intensity(lightPos, bodyPos [3]float32, shadows []Shadow) float32 {
	distance := vecmath.Distance(lightPos, bodyPos)
	if distance < m.SourceRadius {
		return 1
	}

	intensity := min(1, m.BaseFloor+m.Falloff/(distance+m.FalloffOffset))

	lightToBody := vecmath.Sub(bodyPos, lightPos)
	for _, s := range shadows {
		reach := s.HorizonRadius * m.ShadowReach
		toHole := vecmath.Distance(bodyPos, s.Position)
		if toHole >= reach {
			continue
		}
		lightToHole := vecmath.Sub(s.Position, lightPos)
		if vecmath.Dot(lightToHole, lightToBody) <= 0 || vecmath.Len(lightToHole) >= distance {
			continue
		}
		depth := 1 - toHole/reach
		intensity *= 1 - depth*m.MaxShadow
	}

	return max(m.MinAmbient, intensity)
}

// ShadowSources collects the black holes of bodies with their current horizon radius.
// Call once per frame after positions change.
func ShadowSources(bodies []*physics.Body, radius physics.RadiusModel, scale units.Scale) []Shadow {
	var out []Shadow
	for _, b := range bodies {
		if b.Kind != physics.BlackHole {
			continue
		}
		out = append(out, Shadow{Position: b.Position, HorizonRadius: b.Radius(radius, scale)})
	}
	return out
}

// Absorber is the color black holes are drawn with.
var Absorber = [4]float32{0, 0, 0, 1}

// Shade returns the draw color of a body of the given kind. Stars glow with their own
// color and black holes are opaque black; planets have RGB scaled by intensity.
func Shade(kind physics.Kind, color [4]float32, intensity float32) [4]float32 {
	switch kind {
	case physics.Star:
		return color
	case physics.BlackHole:
		return Absorber
	case physics.Planet:
		return [4]float32{color[0] * intensity, color[1] * intensity, color[2] * intensity, color[3]}
	}
	panic("lighting: unhandled kind " + kind.String())
}
