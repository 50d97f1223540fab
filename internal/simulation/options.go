package simulation

import (
	"fmt"
	"sort"
	"strconv"

	"solar-sim/internal/physics"
	"solar-sim/internal/units"
)

// Options selects one configuration of the shared core. Named combinations live in Presets.
type Options struct {
	Dimensions       int     // 2 keeps every body in the orbital plane; 3 adds inclination
	EnableBlackHoles bool    // place black hole entries of the scenario
	EnableGrid       bool    // allow the space-time grid in frames
	Timestep         float64 // seconds per tick; 0 uses the scenario's
	Policy           physics.Policy
}

// DefaultOptions returns the 3D single-primary configuration.
func DefaultOptions() Options {
	return Options{
		Dimensions: 3,
		EnableGrid: true,
		Policy:     physics.PolicyObserved,
	}
}

// Presets names the supported option sets. A zero Timestep keeps the scenario's step.
var Presets = map[string]Options{
	"2d":             {Dimensions: 2},
	"2d-grid":        {Dimensions: 2, EnableGrid: true},
	"3d":             {Dimensions: 3, EnableGrid: true},
	"3d-black-holes": {Dimensions: 3, EnableBlackHoles: true, EnableGrid: true},
}

// PresetNames returns the keys of Presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the named option set.
func Preset(name string) (Options, error) {
	o, ok := Presets[name]
	if !ok {
		return Options{}, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	return o, nil
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Dimensions != 2 && o.Dimensions != 3 {
		return fmt.Errorf("dimensions must be 2 or 3, got %d", o.Dimensions)
	}
	if o.Timestep < 0 {
		return fmt.Errorf("timestep must not be negative, got %g", o.Timestep)
	}
	return nil
}

// ParseTimestep reads "year", "month" or a number of seconds.
func ParseTimestep(s string) (float64, error) {
	switch s {
	case "year":
		return units.Year, nil
	case "month":
		return units.Month, nil
	}
	dt, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("timestep %q: want year, month or seconds: %w", s, err)
	}
	if dt <= 0 {
		return 0, fmt.Errorf("timestep %q must be positive", s)
	}
	return dt, nil
}
