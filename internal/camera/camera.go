// Package camera holds the orbiting view state driven by directional input events.
// It never touches the physics; the frame driver turns View into a renderer camera.
package camera

import (
	"github.com/chewxy/math32"

	"solar-sim/internal/vecmath"
)

// Event is one discrete directional input.
type Event uint8

const (
	PitchUp Event = iota
	PitchDown
	RollLeft
	RollRight
	YawLeft
	YawRight
	ZoomIn
	ZoomOut
)

func (e Event) String() string {
	switch e {
	case PitchUp:
		return "pitch up"
	case PitchDown:
		return "pitch down"
	case RollLeft:
		return "roll left"
	case RollRight:
		return "roll right"
	case YawLeft:
		return "yaw left"
	case YawRight:
		return "yaw right"
	case ZoomIn:
		return "zoom in"
	case ZoomOut:
		return "zoom out"
	}
	return "unknown"
}

// Orbit is a camera on a sphere around the origin. Angles are in degrees.
type Orbit struct {
	Pitch    float32
	Yaw      float32
	Roll     float32
	Distance float32

	Speed       float32 // degrees per angle event
	ZoomStep    float32 // distance per zoom event
	MinDistance float32
	MaxDistance float32
}

// New returns the default orbit: tilted 115° from the pole, 1000 units out.
func New() *Orbit {
	return &Orbit{
		Pitch:       115,
		Yaw:         90,
		Roll:        0,
		Distance:    1000,
		Speed:       2,
		ZoomStep:    50,
		MinDistance: 100,
		MaxDistance: 30000000,
	}
}

// Apply updates the orbit for one event. Distance is clamped to [MinDistance, MaxDistance].
func (o *Orbit) Apply(e Event) {
	switch e {
	case PitchUp:
		o.Pitch -= o.Speed
	case PitchDown:
		o.Pitch += o.Speed
	case RollLeft:
		o.Roll -= o.Speed
	case RollRight:
		o.Roll += o.Speed
	case YawLeft:
		o.Yaw -= o.Speed
	case YawRight:
		o.Yaw += o.Speed
	case ZoomIn:
		o.Distance -= o.ZoomStep
	case ZoomOut:
		o.Distance += o.ZoomStep
	}
	o.SetDistance(o.Distance)
}

// SetDistance sets the orbit radius, clamped to the allowed range.
func (o *Orbit) SetDistance(d float32) {
	o.Distance = vecmath.Clamp(d, o.MinDistance, o.MaxDistance)
}

// View is the eye transform handed to the renderer.
type View struct {
	Eye    [3]float32
	Target [3]float32
	Up     [3]float32
}

func radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// View returns the eye on the sphere (pitch measured from +Y, yaw around Y) looking at the
// origin, with the world up vector rolled about the view axis.
func (o *Orbit) View() View {
	pitch, yaw := radians(o.Pitch), radians(o.Yaw)
	eye := [3]float32{
		o.Distance * math32.Sin(pitch) * math32.Cos(yaw),
		o.Distance * math32.Cos(pitch),
		o.Distance * math32.Sin(pitch) * math32.Sin(yaw),
	}
	forward := vecmath.Normalize(vecmath.Scale(eye, -1))
	return View{
		Eye:    eye,
		Target: [3]float32{},
		Up:     RolledUp(forward, radians(o.Roll)),
	}
}

// RolledUp rotates (0, 1, 0) about forward by roll radians (Rodrigues' formula).
func RolledUp(forward [3]float32, roll float32) [3]float32 {
	up := [3]float32{0, 1, 0}
	k := vecmath.Normalize(forward)
	cos, sin := math32.Cos(roll), math32.Sin(roll)

	out := vecmath.Scale(up, cos)
	out = vecmath.Add(out, vecmath.Scale(vecmath.Cross(k, up), sin))
	out = vecmath.Add(out, vecmath.Scale(k, vecmath.Dot(k, up)*(1-cos)))
	return vecmath.Normalize(out)
}
