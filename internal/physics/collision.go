package physics

import (
	"fmt"

	"github.com/chewxy/math32"

	"solar-sim/internal/units"
	"solar-sim/internal/vecmath"
)

// Policy selects how overlapping bodies respond.
type Policy uint8

const (
	// PolicyObserved flips vertical velocity on both bodies of a contact (the first by
	// negation, the second by scaling with (1, -1, 1)) and does not separate them.
	// Momentum is not conserved.
	PolicyObserved Policy = iota
	// PolicyImpulse applies an equal and opposite impulse along the contact normal and
	// pushes the bodies apart by inverse mass.
	PolicyImpulse
)

func (p Policy) String() string {
	switch p {
	case PolicyObserved:
		return "observed"
	case PolicyImpulse:
		return "impulse"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// ParsePolicy reads the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "observed", "":
		return PolicyObserved, nil
	case "impulse":
		return PolicyImpulse, nil
	}
	return PolicyObserved, fmt.Errorf("unknown collision policy %q", s)
}

// Bounds is an axis-aligned containment box in scene units.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Square returns bounds spanning [-half, half] on every axis.
func Square(half float32) Bounds {
	return Bounds{
		Min: [3]float32{-half, -half, -half},
		Max: [3]float32{half, half, half},
	}
}

// Resolver handles body-body overlap and boundary containment for the bouncing variant.
// Radii are derived through Model and Scale on every call.
type Resolver struct {
	Policy      Policy
	Bounds      Bounds
	Damping     float32 // velocity kept after a wall bounce, < 1
	Restitution float32 // PolicyImpulse only
	Dimensions  int     // axes checked against Bounds (2 or 3)
	Model       RadiusModel
	Scale       units.Scale
}

// NewResolver returns a resolver with damping 0.8 and restitution 1 over two axes.
func NewResolver(policy Policy, bounds Bounds, model RadiusModel, scale units.Scale) *Resolver {
	return &Resolver{
		Policy:      policy,
		Bounds:      bounds,
		Damping:     0.8,
		Restitution: 1,
		Dimensions:  2,
		Model:       model,
		Scale:       scale,
	}
}

// Resolve handles every overlapping pair and then contains every body inside Bounds.
// It returns the number of contacts found.
func (r *Resolver) Resolve(bodies []*Body) int {
	radii := make([]float32, len(bodies))
	for i, b := range bodies {
		radii[i] = b.Radius(r.Model, r.Scale)
	}

	contacts := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bi, bj := bodies[i], bodies[j]
			d := vecmath.Distance(bi.Position, bj.Position)
			if d >= radii[i]+radii[j] {
				continue
			}
			contacts++
			switch r.Policy {
			case PolicyObserved:
				reflectObserved(bi, bj)
			case PolicyImpulse:
				r.applyImpulse(bi, bj, d, radii[i]+radii[j])
			}
		}
	}

	for i, b := range bodies {
		r.contain(b, radii[i])
	}
	return contacts
}

func reflectObserved(a, b *Body) {
	if !a.Static {
		a.Velocity[1] = -a.Velocity[1]
	}
	if !b.Static {
		b.Velocity[1] = -b.Velocity[1]
	}
}

func inverseMass(b *Body) float32 {
	if b.Static {
		return 0
	}
	return float32(1 / b.Mass)
}

// applyImpulse resolves a contact between a and b at center distance d where reach is the
// sum of their radii.
func (r *Resolver) applyImpulse(a, b *Body, d, reach float32) {
	invA, invB := inverseMass(a), inverseMass(b)
	invSum := invA + invB
	if invSum == 0 {
		return
	}
	normal := [3]float32{1, 0, 0}
	if d > DefaultEpsilon {
		normal = vecmath.Scale(vecmath.Sub(b.Position, a.Position), 1/d)
	}

	approach := vecmath.Dot(vecmath.Sub(b.Velocity, a.Velocity), normal)
	if approach < 0 {
		j := -(1 + r.Restitution) * approach / invSum
		a.Velocity = vecmath.Sub(a.Velocity, vecmath.Scale(normal, j*invA))
		b.Velocity = vecmath.Add(b.Velocity, vecmath.Scale(normal, j*invB))
	}

	// Push apart along the normal, the lighter body moving further.
	depth := reach - d
	a.Position = vecmath.Sub(a.Position, vecmath.Scale(normal, depth*invA/invSum))
	b.Position = vecmath.Add(b.Position, vecmath.Scale(normal, depth*invB/invSum))
}

// contain clamps b inside Bounds inset by radius, reflecting and damping the velocity
// component of each axis it crossed.
func (r *Resolver) contain(b *Body, radius float32) {
	if b.Static {
		return
	}
	axes := r.Dimensions
	if axes < 1 || axes > 3 {
		axes = 3
	}
	for k := 0; k < axes; k++ {
		hi := r.Bounds.Max[k] - radius
		lo := r.Bounds.Min[k] + radius
		switch {
		case b.Position[k] > hi:
			b.Position[k] = hi
			b.Velocity[k] = -math32.Abs(b.Velocity[k]) * r.Damping
		case b.Position[k] < lo:
			b.Position[k] = lo
			b.Velocity[k] = math32.Abs(b.Velocity[k]) * r.Damping
		}
	}
}
