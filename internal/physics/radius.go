package physics

import (
	"math"

	"solar-sim/internal/units"
)

// RadiusModel maps mass, density and kind to a rendered radius in scene units.
// Real sizes span nine orders of magnitude, so stars and planets use their own divisors
// and clamps (a ceiling for stars, a floor for planets). Black holes use the Schwarzschild
// radius through the run's scale, amplified to stay visible.
type RadiusModel struct {
	StarDivisor            float64 // meters per scene unit for stars
	PlanetDivisor          float64 // meters per scene unit for planets
	MaxStarRadius          float64
	MinPlanetRadius        float64
	StarMassThreshold      float64 // kg; any body above it is sized as a star
	BlackHoleAmplification float64
}

// DefaultRadiusModel returns the model used by the orbital presets.
func DefaultRadiusModel() RadiusModel {
	return RadiusModel{
		StarDivisor:            5e6,
		PlanetDivisor:          1e6,
		MaxStarRadius:          250,
		MinPlanetRadius:        6,
		StarMassThreshold:      1e29,
		BlackHoleAmplification: 1e6,
	}
}

// ToyRadiusModel returns the model for the bouncing variant, where masses are abstract and
// one meter is one scene unit. Every body falls in the planet regime.
func ToyRadiusModel() RadiusModel {
	return RadiusModel{
		StarDivisor:            1,
		PlanetDivisor:          1,
		MaxStarRadius:          math.Inf(1),
		MinPlanetRadius:        2,
		StarMassThreshold:      math.Inf(1),
		BlackHoleAmplification: 1,
	}
}

// SchwarzschildRadius returns 2GM/c² in meters.
func SchwarzschildRadius(mass float64) float64 {
	return 2 * units.G * mass / (units.C * units.C)
}

// VolumeRadius returns the radius in meters of a sphere of the given mass and density.
func VolumeRadius(mass, density float64) float64 {
	if density <= 0 {
		density = DefaultDensity
	}
	volume := mass / density
	return math.Cbrt(3 * volume / (4 * math.Pi))
}

// Radius returns the scene radius for a body. Result is always positive for mass > 0.
func (m RadiusModel) Radius(mass, density float64, kind Kind, scale units.Scale) float32 {
	switch kind {
	case BlackHole:
		return float32(scale.ToScene(SchwarzschildRadius(mass)) * m.BlackHoleAmplification)
	case Star, Planet:
		r := VolumeRadius(mass, density)
		if kind == Star || mass > m.StarMassThreshold {
			return float32(math.Min(r/m.StarDivisor, m.MaxStarRadius))
		}
		return float32(math.Max(r/m.PlanetDivisor, m.MinPlanetRadius))
	}
	panic("physics: unhandled kind " + kind.String())
}
