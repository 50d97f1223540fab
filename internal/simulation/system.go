// Package simulation assembles bodies, the gravity integrator, lighting and the curvature
// grid into one per-frame System. The System is single-threaded: the frame driver calls Tick
// and then Frame once per frame and nothing else mutates the bodies in between.
package simulation

import (
	"fmt"

	"github.com/jinzhu/copier"

	"solar-sim/internal/curvature"
	"solar-sim/internal/lighting"
	"solar-sim/internal/physics"
	"solar-sim/internal/units"
)

// System owns the body set for one run.
type System struct {
	name     string
	variant  Variant
	opts     Options
	radius   physics.RadiusModel
	light    lighting.Model
	grid     curvature.Grid
	world    *physics.World
	resolver *physics.Resolver // bounce variant only
	timestep float64
	initial  []*physics.Body

	ticks    uint64
	elapsed  float64
	contacts int
}

// New builds the system for sc under opts. The orbital variant uses units.Default and the
// real gravitational constant; the bounce variant uses one meter per scene unit and the
// scenario's gravity.
func New(sc Scenario, opts Options) (*System, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	timestep := sc.Timestep
	if opts.Timestep > 0 {
		timestep = opts.Timestep
	}
	if timestep <= 0 {
		return nil, fmt.Errorf("scenario %q: timestep must be positive", sc.Name)
	}

	s := &System{
		name:     sc.Name,
		variant:  sc.Variant,
		opts:     opts,
		light:    lighting.DefaultModel(),
		grid:     curvature.DefaultGrid(),
		timestep: timestep,
	}

	var bodies []*physics.Body
	switch sc.Variant {
	case Orbital:
		s.radius = physics.DefaultRadiusModel()
		s.world = physics.NewWorld(units.Default)
		bodies = Place(sc, opts, s.radius, s.world.Scale)
	case Bounce:
		if sc.Bounce.Count <= 0 {
			return nil, fmt.Errorf("scenario %q: bounce count must be positive", sc.Name)
		}
		s.radius = physics.ToyRadiusModel()
		s.world = physics.NewWorld(units.Scale(1))
		s.world.G = sc.Bounce.Gravity
		s.resolver = physics.NewResolver(opts.Policy, physics.Square(sc.Bounce.Boundary), s.radius, s.world.Scale)
		s.resolver.Dimensions = opts.Dimensions
		bodies = PlaceBounce(sc.Bounce, opts.Dimensions, s.radius, s.world.Scale)
	default:
		return nil, fmt.Errorf("scenario %q: unknown variant %d", sc.Name, sc.Variant)
	}

	s.world.Bodies = bodies
	initial, err := cloneBodies(bodies)
	if err != nil {
		return nil, err
	}
	s.initial = initial
	return s, nil
}

func cloneBodies(src []*physics.Body) ([]*physics.Body, error) {
	out := make([]*physics.Body, len(src))
	for i, b := range src {
		dst := new(physics.Body)
		if err := copier.CopyWithOption(dst, b, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("copy body %q: %w", b.Name, err)
		}
		out[i] = dst
	}
	return out, nil
}

// Tick advances the system by one fixed timestep: the full gravity pass, then (bounce
// variant) collision and boundary resolution.
func (s *System) Tick() {
	s.world.Step(s.timestep)
	if s.resolver != nil {
		s.contacts = s.resolver.Resolve(s.world.Bodies)
	}
	s.ticks++
	s.elapsed += s.timestep
}

// Reset restores the bodies to their initial configuration and clears the counters.
func (s *System) Reset() error {
	bodies, err := cloneBodies(s.initial)
	if err != nil {
		return err
	}
	s.world.Bodies = bodies
	s.ticks = 0
	s.elapsed = 0
	s.contacts = 0
	return nil
}

// Bodies returns the live body set; index 0 is the primary in the orbital variant.
func (s *System) Bodies() []*physics.Body { return s.world.Bodies }

// World returns the integrator, e.g. for energy diagnostics.
func (s *System) World() *physics.World { return s.world }

func (s *System) Name() string { return s.name }
func (s *System) Variant() Variant { return s.variant }
func (s *System) Options() Options { return s.opts }
func (s *System) Ticks() uint64 { return s.ticks }
func (s *System) Elapsed() float64 { return s.elapsed }
func (s *System) Contacts() int { return s.contacts }
func (s *System) Timestep() float64 { return s.timestep }

// SetTimestep changes the fixed step for subsequent ticks. Non-positive values are ignored.
func (s *System) SetTimestep(dt float64) {
	if dt > 0 {
		s.timestep = dt
	}
}

// SetPolicy changes the collision response of the bounce variant. It reports false for
// the orbital variant, which has no resolver.
func (s *System) SetPolicy(p physics.Policy) bool {
	if s.resolver == nil {
		return false
	}
	s.resolver.Policy = p
	s.opts.Policy = p
	return true
}
