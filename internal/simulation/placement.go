package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"solar-sim/internal/physics"
	"solar-sim/internal/units"
)

// Orbit spacing in scene units: the first orbit clears the primary by orbitPadding and each
// orbit clears the previous one by the body's radius plus orbitGap.
const (
	orbitPadding = 20
	orbitGap     = 10
	// Per-index visual spread, degrees.
	inclinationStep = 5
	startAngleStep  = 40
)

// OrbitalSpeed returns the circular orbit speed in m/s at distance meters from a primary of
// mass kg.
func OrbitalSpeed(primaryMass, meters float64) float64 {
	return math.Sqrt(units.G * primaryMass / meters)
}

func newEntryBody(e Entry, pos, vel [3]float32) *physics.Body {
	b := physics.NewBody(e.Name, pos, vel, e.Mass, e.Kind, e.Color)
	if e.Density > 0 {
		b.Density = e.Density
	}
	return b
}

// Place builds the orbital body set: the primary at the origin followed by every entry
// sorted by distance on a near-circular orbit. Black hole entries are dropped unless
// opts.EnableBlackHoles is set; in 2D every body stays in the XY plane.
func Place(sc Scenario, opts Options, model physics.RadiusModel, scale units.Scale) []*physics.Body {
	primary := newEntryBody(sc.Primary, [3]float32{}, [3]float32{})
	bodies := []*physics.Body{primary}

	entries := make([]Entry, 0, len(sc.Bodies))
	for _, e := range sc.Bodies {
		if e.Kind == physics.BlackHole && !opts.EnableBlackHoles {
			continue
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DistanceKm < entries[j].DistanceKm
	})

	lastOrbit := float64(primary.Radius(model, scale)) + orbitPadding
	for i, e := range entries {
		density := e.Density
		if density <= 0 {
			density = physics.DefaultDensity
		}
		radius := float64(model.Radius(e.Mass, density, e.Kind, scale))

		distance := scale.ToScene(e.DistanceKm * units.Kilometer)
		if floor := lastOrbit + radius + orbitGap; distance < floor {
			distance = floor
		}
		lastOrbit = distance

		speed := scale.VelocityToScene(OrbitalSpeed(primary.Mass, scale.ToPhysical(distance)))

		inclination := 0.0
		if opts.Dimensions == 3 {
			inclination = float64(i*inclinationStep) * math.Pi / 180
		}
		angle := float64(i*startAngleStep) * math.Pi / 180

		x := distance * math.Cos(angle) * math.Cos(inclination)
		y := distance * math.Sin(angle) * math.Cos(inclination)
		z := distance * math.Sin(inclination)

		pos := [3]float32{float32(x), float32(y), float32(z)}
		// Tangent in the XY plane, scaled by the full orbit distance.
		vel := [3]float32{float32(-y * speed / distance), float32(x * speed / distance), 0}
		bodies = append(bodies, newEntryBody(e, pos, vel))
	}
	return bodies
}

// PlaceBounce builds the randomized bouncing set inside the configured box, each body fully
// inside the walls. The same seed always yields the same bodies.
func PlaceBounce(cfg BounceConfig, dimensions int, model physics.RadiusModel, scale units.Scale) []*physics.Body {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	uniform := func(lo, hi float32) float32 {
		return lo + rng.Float32()*(hi-lo)
	}

	bodies := make([]*physics.Body, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		mass := cfg.MassMin
		if cfg.MassMax > cfg.MassMin {
			mass += rng.Float64() * (cfg.MassMax - cfg.MassMin)
		}
		c := colorful.Hsv(rng.Float64()*360, 0.7, 0.95)
		b := physics.NewBody(fmt.Sprintf("body-%d", i+1), [3]float32{}, [3]float32{}, mass,
			physics.Planet, [4]float32{float32(c.R), float32(c.G), float32(c.B), 1})
		if cfg.Density > 0 {
			b.Density = cfg.Density
		}

		spread := max(0, cfg.Boundary-b.Radius(model, scale))
		axes := 2
		if dimensions == 3 {
			axes = 3
		}
		for k := 0; k < axes; k++ {
			b.Position[k] = uniform(-spread, spread)
			b.Velocity[k] = uniform(-cfg.Speed, cfg.Speed)
		}
		bodies = append(bodies, b)
	}
	return bodies
}
