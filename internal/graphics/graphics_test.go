package graphics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"solar-sim/internal/camera"
	"solar-sim/internal/curvature"
)

func TestDefaultWindowClipPlanes(t *testing.T) {
	w := DefaultWindow()
	assert.Equal(t, 1.0, w.NearPlane)
	assert.Equal(t, 10000.0, w.FarPlane)
	assert.Equal(t, int32(60), w.TargetFPS)
}

func TestDefaultFarPlaneCoversSheet(t *testing.T) {
	w := DefaultWindow()
	eye := camera.New().View().Eye
	g := curvature.DefaultGrid()
	half := float32(g.Size) / 2 * g.Spacing

	for _, corner := range [][3]float32{
		{-half, -half, g.PlaneOffset},
		{-half, half, g.PlaneOffset},
		{half, -half, g.PlaneOffset},
		{half, half, g.PlaneOffset},
	} {
		dx, dy, dz := corner[0]-eye[0], corner[1]-eye[1], corner[2]-eye[2]
		d := math32.Sqrt(dx*dx + dy*dy + dz*dz)
		assert.Less(t, float64(d), w.FarPlane, "corner %v", corner)
	}
}
