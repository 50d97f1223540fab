// Package render draws a simulation.Frame with raylib. It holds no simulation state; every
// Draw call renders exactly the frame it is given.
package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"solar-sim/internal/camera"
	"solar-sim/internal/physics"
	"solar-sim/internal/simulation"
)

const (
	fovy = 45

	diskInner    = 3 // times the horizon radius
	diskOuter    = 8
	diskRings    = 16
	diskSegments = 64
	diskAlphaLo  = 0.3
	diskAlphaHi  = 0.7
)

var (
	// Reused every frame to avoid per-frame color allocations.
	gridColor   = rl.NewColor(102, 102, 153, 90)
	boundsColor = rl.NewColor(160, 160, 160, 200)

	diskHot  = colorful.Color{R: 1, G: 0.6, B: 0}
	diskCool = colorful.Color{R: 1, G: 1, B: 0.2}
)

// Renderer turns frames into draw calls. Camera mirrors the controls' orbit each frame.
type Renderer struct {
	Camera rl.Camera3D
	disk   [diskRings]rl.Color
	ring   [diskSegments + 1][2]float32 // unit circle
}

// New returns a renderer with a perspective camera and precomputed disk colors.
func New() *Renderer {
	r := &Renderer{}
	r.Camera.Fovy = fovy
	r.Camera.Projection = rl.CameraPerspective
	r.Camera.Up = rl.NewVector3(0, 1, 0)
	for i := range r.disk {
		t := float64(i) / float64(diskRings-1)
		c := diskHot.BlendRgb(diskCool, t)
		r.disk[i] = rgba(float32(c.R), float32(c.G), float32(c.B), diskAlphaLo+float32(t)*(diskAlphaHi-diskAlphaLo))
	}
	for i := range r.ring {
		a := 2 * math32.Pi * float32(i) / diskSegments
		r.ring[i] = [2]float32{math32.Cos(a), math32.Sin(a)}
	}
	return r
}

func rgba(r, g, b, a float32) rl.Color {
	return rl.ColorFromNormalized(rl.NewVector4(r, g, b, a))
}

func vec(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// SetView points the camera along v.
func (r *Renderer) SetView(v camera.View) {
	r.Camera.Position = vec(v.Eye)
	r.Camera.Target = vec(v.Target)
	r.Camera.Up = vec(v.Up)
}

// Draw renders the frame in 3D mode. Call after ClearBackground and before 2D overlays.
func (r *Renderer) Draw(f simulation.Frame) {
	rl.BeginMode3D(r.Camera)
	r.drawGrid(f)
	if f.Bounds != nil {
		lo, hi := f.Bounds[0], f.Bounds[1]
		center := rl.NewVector3((lo[0]+hi[0])/2, (lo[1]+hi[1])/2, (lo[2]+hi[2])/2)
		size := rl.NewVector3(hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])
		rl.DrawCubeWiresV(center, size, boundsColor)
	}
	for _, b := range f.Bodies {
		c := b.Color
		rl.DrawSphere(vec(b.Position), b.Radius, rgba(c[0], c[1], c[2], c[3]))
		if b.Kind == physics.BlackHole {
			r.drawDisk(b)
		}
	}
	rl.EndMode3D()
}

// drawGrid draws the precomputed curvature segments. Reuses start/end vectors in the hot loop.
func (r *Renderer) drawGrid(f simulation.Frame) {
	var start, end rl.Vector3
	for _, s := range f.Grid {
		start.X, start.Y, start.Z = s.A[0], s.A[1], s.A[2]
		end.X, end.Y, end.Z = s.B[0], s.B[1], s.B[2]
		rl.DrawLine3D(start, end, gridColor)
	}
}

// diskRadius is the radius of ring i around a body of horizon radius horizon.
func diskRadius(horizon float32, i int) float32 {
	t := float32(i) / float32(diskRings-1)
	return horizon * (diskInner + t*(diskOuter-diskInner))
}

// diskPoint places dir on a ring of the given radius in the orbital (XY) plane through
// center, so the disk lines up with the orbits and the 2D sheet.
func diskPoint(out *rl.Vector3, center [3]float32, dir [2]float32, radius float32) {
	out.X, out.Y, out.Z = center[0]+dir[0]*radius, center[1]+dir[1]*radius, center[2]
}

// drawDisk draws concentric rings around a black hole, orange at the inner edge and pale
// yellow at the outer.
func (r *Renderer) drawDisk(b simulation.BodyView) {
	var start, end rl.Vector3
	for i, c := range r.disk {
		radius := diskRadius(b.Radius, i)
		for j := 0; j < diskSegments; j++ {
			diskPoint(&start, b.Position, r.ring[j], radius)
			diskPoint(&end, b.Position, r.ring[j+1], radius)
			rl.DrawLine3D(start, end, c)
		}
	}
}
