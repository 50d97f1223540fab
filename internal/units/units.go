package units

// Physical constants and time steps used by the simulation. SI units throughout.
const (
	G         = 6.67430e-11 // gravitational constant (m^3 kg^-1 s^-2)
	C         = 299792458.0 // speed of light (m/s)
	Kilometer = 1000.0
	Year      = 3600.0 * 24 * 365.24 // seconds
	Month     = Year / 12
)

// Reference fit for the default scale: Neptune's orbit spans 45% of an 1200-unit wide scene.
const (
	ReferenceDistance = 4.495e12 // meters
	WindowWidth       = 800 * 1.5
	WindowHeight      = 600 * 1.5
	MarginFraction    = 0.45
)

// Scale is the number of meters represented by one scene unit (pixel).
// A run owns exactly one Scale; every physical<->scene conversion goes through it so
// distances, velocities and accelerations stay in the same unit system.
type Scale float64

// Default is the scale used by the orbital presets.
var Default = NewScale(ReferenceDistance, WindowWidth, MarginFraction)

// NewScale returns the scale that maps referenceMeters onto windowWidth*margin scene units.
func NewScale(referenceMeters, windowWidth, margin float64) Scale {
	return Scale(referenceMeters / (windowWidth * margin))
}

// ToScene converts meters to scene units.
func (s Scale) ToScene(meters float64) float64 {
	return meters / float64(s)
}

// ToPhysical converts scene units to meters.
func (s Scale) ToPhysical(sceneUnits float64) float64 {
	return sceneUnits * float64(s)
}

// VelocityToScene converts m/s to scene units per second.
func (s Scale) VelocityToScene(metersPerSecond float64) float64 {
	return metersPerSecond / float64(s)
}

// AccelerationToScene converts m/s² to scene units per second².
func (s Scale) AccelerationToScene(metersPerSecond2 float64) float64 {
	return metersPerSecond2 / float64(s)
}

// AccelerationToPhysical converts scene units per second² to m/s².
func (s Scale) AccelerationToPhysical(sceneUnits float64) float64 {
	return sceneUnits * float64(s)
}
