// Package curvature computes the cosmetic space-time curvature used to bend the
// visualization grid. It has no effect on the physics.
package curvature

import (
	"solar-sim/internal/physics"
	"solar-sim/internal/vecmath"
)

// Field sums mass/distance² terms from the primary and every sufficiently massive body.
// Calibration is a display constant with no physical meaning.
type Field struct {
	Calibration  float32 // multiplies every mass/distance² term
	MinDistance  float32 // closer sample points get no contribution from that body
	MassFraction float64 // bodies at or below this fraction of the primary's mass are ignored
}

// DefaultField returns the calibration used by the presets.
func DefaultField() Field {
	return Field{
		Calibration:  1e-25,
		MinDistance:  1,
		MassFraction: 0.01,
	}
}

// At returns the curvature at point. primary always contributes; each other body contributes
// only when its mass exceeds MassFraction of the primary's. primary may also appear in bodies,
// it is counted once.
func (f Field) At(point [3]float32, primary *physics.Body, bodies []*physics.Body) float32 {
	total := f.term(point, primary)
	threshold := primary.Mass * f.MassFraction
	for _, b := range bodies {
		if b == primary || b.Mass <= threshold {
			continue
		}
		total += f.term(point, b)
	}
	return total
}

func (f Field) term(point [3]float32, b *physics.Body) float32 {
	d := vecmath.Distance(point, b.Position)
	if d <= f.MinDistance {
		return 0
	}
	// Mass is scaled before narrowing so stellar masses stay in float32 range.
	return float32(b.Mass*float64(f.Calibration)) / (d * d)
}
