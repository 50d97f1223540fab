package render

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestDiskLiesInOrbitalPlane(t *testing.T) {
	r := New()
	center := [3]float32{10, -20, 30}
	const horizon = 2

	var p rl.Vector3
	for i := 0; i < diskRings; i++ {
		radius := diskRadius(horizon, i)
		for _, dir := range r.ring {
			diskPoint(&p, center, dir, radius)
			assert.Equal(t, center[2], p.Z)
			d := math32.Hypot(p.X-center[0], p.Y-center[1])
			assert.InDelta(t, radius, d, 1e-3)
		}
	}
}

func TestDiskSpansInnerToOuterEdge(t *testing.T) {
	assert.Equal(t, float32(6), diskRadius(2, 0))
	assert.Equal(t, float32(16), diskRadius(2, diskRings-1))

	r := New()
	assert.InDelta(t, r.ring[0][0], r.ring[diskSegments][0], 1e-5)
	assert.InDelta(t, r.ring[0][1], r.ring[diskSegments][1], 1e-5)
	assert.Less(t, r.disk[0].A, r.disk[diskRings-1].A)
}
