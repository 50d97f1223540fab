package simulation

import "solar-sim/internal/physics"

// Variant selects the orbital core or the bouncing-body core.
type Variant uint8

const (
	Orbital Variant = iota
	Bounce
)

func (v Variant) String() string {
	if v == Bounce {
		return "bounce"
	}
	return "orbital"
}

// Entry is one configured body: distance from the primary in kilometers, mass in kilograms.
type Entry struct {
	Name       string
	DistanceKm float64
	Mass       float64
	Density    float64 // 0 uses physics.DefaultDensity
	Color      [4]float32
	Kind       physics.Kind
}

// BounceConfig describes the randomized bouncing variant. Masses are abstract units and
// one scene unit is one meter.
type BounceConfig struct {
	Count    int
	Seed     uint64
	Boundary float32 // half extent of the containment box
	Gravity  float64 // G used between bodies; 0 disables attraction
	MassMin  float64
	MassMax  float64
	Density  float64
	Speed    float32 // maximum initial speed per axis
}

// Scenario is a complete initial configuration.
type Scenario struct {
	Name     string
	Variant  Variant
	Timestep float64 // seconds per tick
	Primary  Entry
	Bodies   []Entry
	Bounce   BounceConfig
}
