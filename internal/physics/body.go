package physics

import (
	"fmt"

	"solar-sim/internal/units"
)

// DefaultDensity is the density (kg/m³) used for rocky bodies when none is given.
const DefaultDensity = 1400.0

// Kind selects the radius formula and the shading rule for a body.
type Kind uint8

const (
	Planet Kind = iota
	Star
	BlackHole
)

func (k Kind) String() string {
	switch k {
	case Planet:
		return "planet"
	case Star:
		return "star"
	case BlackHole:
		return "black hole"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind reads the names produced by Kind.String. "blackhole" and "black_hole" are accepted too.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "planet":
		return Planet, nil
	case "star":
		return Star, nil
	case "black hole", "blackhole", "black_hole":
		return BlackHole, nil
	}
	return Planet, fmt.Errorf("unknown body kind %q", s)
}

// Body is a point mass with scene-space position and velocity and physical mass and density.
// Position is in scene units, Velocity in scene units per second, Mass in kg, Density in kg/m³.
// Color is normalized RGBA. Static bodies attract others but are never moved.
// Radius is not stored; call Radius with the run's model and scale.
type Body struct {
	Name     string
	Position [3]float32
	Velocity [3]float32
	Mass     float64
	Density  float64
	Kind     Kind
	Color    [4]float32
	Static   bool
}

// NewBody returns a body at position with the given velocity, mass and kind.
// mass must be positive; a non-positive mass is replaced with 1. Density defaults to DefaultDensity.
func NewBody(name string, position, velocity [3]float32, mass float64, kind Kind, color [4]float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Name:     name,
		Position: position,
		Velocity: velocity,
		Mass:     mass,
		Density:  DefaultDensity,
		Kind:     kind,
		Color:    color,
	}
}

// Radius returns the rendered radius of b in scene units.
func (b *Body) Radius(m RadiusModel, scale units.Scale) float32 {
	return m.Radius(b.Mass, b.Density, b.Kind, scale)
}
