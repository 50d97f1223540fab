package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-sim/internal/units"
)

const (
	sunMass   = 1.989e30
	earthMass = 5.972e24
	au        = 1.496e11
)

func white() [4]float32 { return [4]float32{1, 1, 1, 1} }

func magnitude(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func speed(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}

func TestAccelerationsNewtonThirdLaw(t *testing.T) {
	w := NewWorld(units.Default)
	x := float32(units.Default.ToScene(au))
	w.AddBody(NewBody("earth", [3]float32{}, [3]float32{}, earthMass, Planet, white()))
	w.AddBody(NewBody("sun", [3]float32{x, 0, 0}, [3]float32{}, sunMass, Star, white()))

	acc := w.Accelerations()
	require.Len(t, acc, 2)

	d := w.Scale.ToPhysical(float64(x))
	onEarth := w.Scale.AccelerationToPhysical(magnitude(acc[0]))
	onSun := w.Scale.AccelerationToPhysical(magnitude(acc[1]))

	assert.InEpsilon(t, 5.93e-3, onEarth, 1e-3)
	assert.InEpsilon(t, units.G*sunMass/(d*d), onEarth, 1e-9)
	assert.InEpsilon(t, units.G*earthMass/(d*d), onSun, 1e-9)

	// Opposite directions along the separation axis.
	assert.Greater(t, acc[0][0], 0.0)
	assert.Less(t, acc[1][0], 0.0)
	assert.Zero(t, acc[0][1])
	assert.Zero(t, acc[1][2])

	// Equal and opposite forces.
	assert.InEpsilon(t, earthMass*onEarth, sunMass*onSun, 1e-9)
}

func TestAccelerationsSkipCoincidentBodies(t *testing.T) {
	w := NewWorld(units.Default)
	p := [3]float32{5, 5, 5}
	w.AddBody(NewBody("a", p, [3]float32{}, earthMass, Planet, white()))
	w.AddBody(NewBody("b", p, [3]float32{}, sunMass, Star, white()))

	for _, a := range w.Accelerations() {
		assert.Equal(t, [3]float64{}, a)
	}
	w.Step(units.Year)
	for _, b := range w.Bodies {
		assert.Equal(t, p, b.Position)
		assert.False(t, math.IsNaN(float64(b.Velocity[0])))
	}
}

func TestStepUpdatesVelocityBeforePosition(t *testing.T) {
	w := NewWorld(units.Scale(1))
	w.G = 1
	sun := NewBody("sun", [3]float32{}, [3]float32{}, 100, Star, white())
	sun.Static = true
	moon := NewBody("moon", [3]float32{10, 0, 0}, [3]float32{}, 1, Planet, white())
	w.AddBody(sun)
	w.AddBody(moon)

	w.Step(1)

	// a = G*M/r² = 1 toward the sun; semi-implicit Euler moves with the new velocity.
	assert.InDelta(t, -1.0, moon.Velocity[0], 1e-6)
	assert.InDelta(t, 9.0, moon.Position[0], 1e-6)
	assert.Equal(t, [3]float32{}, sun.Position)
	assert.Equal(t, [3]float32{}, sun.Velocity)
}

func TestStepIsSimultaneous(t *testing.T) {
	w := NewWorld(units.Scale(1))
	w.G = 1
	a := NewBody("a", [3]float32{-1, 0, 0}, [3]float32{}, 4, Planet, white())
	b := NewBody("b", [3]float32{1, 0, 0}, [3]float32{}, 4, Planet, white())
	w.AddBody(a)
	w.AddBody(b)

	w.Step(0.5)

	// Both see the same pre-step separation, so the update is mirror symmetric.
	assert.Equal(t, -a.Velocity[0], b.Velocity[0])
	assert.Equal(t, -a.Position[0], b.Position[0])
	assert.InDelta(t, 0.5, a.Velocity[0], 1e-6)
}

// circularWorld places a body on a circular orbit around a static sun and returns the period.
func circularWorld() (*World, *Body, float64) {
	w := NewWorld(units.Default)
	sun := NewBody("sun", [3]float32{}, [3]float32{}, sunMass, Star, white())
	sun.Static = true
	v := math.Sqrt(units.G * sunMass / au)
	earth := NewBody("earth",
		[3]float32{float32(w.Scale.ToScene(au)), 0, 0},
		[3]float32{0, float32(w.Scale.VelocityToScene(v)), 0},
		earthMass, Planet, white())
	w.AddBody(sun)
	w.AddBody(earth)
	return w, earth, 2 * math.Pi * au / v
}

func TestCircularOrbitOneStep(t *testing.T) {
	w, earth, period := circularWorld()
	v0 := speed(earth.Velocity)

	w.Step(period / 1000)

	assert.Less(t, math.Abs(speed(earth.Velocity)-v0)/v0, 1e-3)
}

func TestCircularOrbitEnergyDrift(t *testing.T) {
	w, earth, period := circularWorld()
	r0 := speed(earth.Position)
	v0 := speed(earth.Velocity)
	e0 := w.Energy()

	for i := 0; i < 1000; i++ {
		w.Step(period / 1000)
	}

	assert.Less(t, math.Abs(speed(earth.Position)-r0)/r0, 0.02)
	assert.Less(t, math.Abs(speed(earth.Velocity)-v0)/v0, 0.02)
	assert.Less(t, math.Abs(w.Energy()-e0)/math.Abs(e0), 0.02)
}

func TestMomentum(t *testing.T) {
	w := NewWorld(units.Scale(2))
	w.AddBody(NewBody("a", [3]float32{}, [3]float32{1, 0, 0}, 3, Planet, white()))
	w.AddBody(NewBody("b", [3]float32{5, 0, 0}, [3]float32{0, -1, 0}, 2, Planet, white()))
	assert.Equal(t, [3]float64{6, -4, 0}, w.Momentum())
}

func TestNewBodyDefaults(t *testing.T) {
	b := NewBody("x", [3]float32{}, [3]float32{}, -5, Planet, white())
	assert.Equal(t, 1.0, b.Mass)
	assert.Equal(t, DefaultDensity, b.Density)
	assert.False(t, b.Static)
}
