package physics

import (
	"math"

	"solar-sim/internal/units"
)

// DefaultEpsilon is the scene-unit separation below which a pair exerts no force.
const DefaultEpsilon = 1e-3

// World holds the body set and advances it with pairwise Newtonian gravity.
// Positions live in scene units; distances are converted to meters through Scale for the
// force law and the resulting acceleration is converted back before integration.
type World struct {
	Bodies  []*Body
	Scale   units.Scale
	G       float64
	Epsilon float64
}

// NewWorld returns an empty world using scale and the real gravitational constant.
func NewWorld(scale units.Scale) *World {
	return &World{
		Scale:   scale,
		G:       units.G,
		Epsilon: DefaultEpsilon,
	}
}

// AddBody appends a body to the world. Order is preserved; index 0 is the primary.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Accelerations returns the acceleration of every body in scene units/s², computed from the
// current positions only. Pairs closer than Epsilon scene units are skipped.
func (w *World) Accelerations() [][3]float64 {
	acc := make([][3]float64, len(w.Bodies))
	for i, bi := range w.Bodies {
		for j, bj := range w.Bodies {
			if i == j {
				continue
			}
			dx := float64(bj.Position[0] - bi.Position[0])
			dy := float64(bj.Position[1] - bi.Position[1])
			dz := float64(bj.Position[2] - bi.Position[2])
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if dist < w.Epsilon {
				continue
			}
			meters := w.Scale.ToPhysical(dist)
			a := w.Scale.AccelerationToScene(w.G * bj.Mass / (meters * meters))
			acc[i][0] += dx / dist * a
			acc[i][1] += dy / dist * a
			acc[i][2] += dz / dist * a
		}
	}
	return acc
}

// Step advances the world by dt seconds with semi-implicit Euler: all accelerations are taken
// from the pre-step snapshot, then every velocity is updated, then every position.
// Static bodies are skipped in both passes.
func (w *World) Step(dt float64) {
	acc := w.Accelerations()
	for i, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity[0] += float32(acc[i][0] * dt)
		b.Velocity[1] += float32(acc[i][1] * dt)
		b.Velocity[2] += float32(acc[i][2] * dt)
	}
	step := float32(dt)
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Position[0] += b.Velocity[0] * step
		b.Position[1] += b.Velocity[1] * step
		b.Position[2] += b.Velocity[2] * step
	}
}

// Energy returns the total kinetic plus gravitational potential energy in joules.
func (w *World) Energy() float64 {
	var kinetic, potential float64
	s := float64(w.Scale)
	for i, bi := range w.Bodies {
		vx := float64(bi.Velocity[0]) * s
		vy := float64(bi.Velocity[1]) * s
		vz := float64(bi.Velocity[2]) * s
		kinetic += 0.5 * bi.Mass * (vx*vx + vy*vy + vz*vz)
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			dx := float64(bj.Position[0] - bi.Position[0])
			dy := float64(bj.Position[1] - bi.Position[1])
			dz := float64(bj.Position[2] - bi.Position[2])
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if dist < w.Epsilon {
				continue
			}
			potential -= w.G * bi.Mass * bj.Mass / w.Scale.ToPhysical(dist)
		}
	}
	return kinetic + potential
}

// Momentum returns the total linear momentum in kg·m/s.
func (w *World) Momentum() [3]float64 {
	var p [3]float64
	s := float64(w.Scale)
	for _, b := range w.Bodies {
		for k := 0; k < 3; k++ {
			p[k] += b.Mass * float64(b.Velocity[k]) * s
		}
	}
	return p
}
