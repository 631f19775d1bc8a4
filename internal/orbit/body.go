// Package orbit derives per-body model matrices from simulation time.
//
// A body is placed by spinning it about its own Y axis, translating it out
// to its orbit radius and revolving it about its orbit axis. Children
// (moons, rings) are then carried by each ancestor's translation and
// revolution, and the whole system is turned by the global spin angle.
package orbit

import "github.com/Faultbox/orrery/pkg/math"

// ScaleFactor converts tabulated period and spin ratios into angles of a
// usable on-screen magnitude.
const ScaleFactor = 0.001

// Body is the read-only description of one celestial body.
type Body struct {
	Name string `yaml:"name"`
	// Mesh is the asset path of the body's OBJ model.
	Mesh string `yaml:"mesh"`

	OrbitRadius float32 `yaml:"orbit_radius"`
	PeriodCoeff float32 `yaml:"period"`
	SpinCoeff   float32 `yaml:"spin"`

	// OrbitAxis is the revolution axis. Zero means world Y.
	OrbitAxis math.Vec3 `yaml:"orbit_axis,omitempty"`
	// Parent names the body this one is carried by.
	Parent string `yaml:"parent,omitempty"`
	// FixedRate bodies ignore the speed multiplier.
	FixedRate bool `yaml:"fixed_rate,omitempty"`
}

// axis returns the revolution axis, defaulting to world Y.
func (b Body) axis() math.Vec3 {
	if b.OrbitAxis == (math.Vec3{}) {
		return math.Up
	}
	return b.OrbitAxis
}

// rate returns the multiplier applied to this body's coefficients.
func (b Body) rate(simTime, speed float32) float32 {
	if b.FixedRate {
		return ScaleFactor * simTime
	}
	return ScaleFactor * speed * simTime
}

// SpinAngle returns the body's own-axis rotation in radians.
func (b Body) SpinAngle(simTime, speed float32) float32 {
	return b.SpinCoeff * b.rate(simTime, speed)
}

// RevolutionAngle returns the body's orbital revolution in radians.
func (b Body) RevolutionAngle(simTime, speed float32) float32 {
	return b.PeriodCoeff * b.rate(simTime, speed)
}

// orbitMatrix is the revolution applied after the translation out to the
// orbit radius. Children inherit exactly this part of their parent.
func (b Body) orbitMatrix(simTime, speed float32) math.Mat4 {
	rev := math.RotateAxis(b.axis(), b.RevolutionAngle(simTime, speed))
	return rev.Mul(math.Translate(b.OrbitRadius, 0, 0))
}
