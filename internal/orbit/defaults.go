package orbit

import "github.com/Faultbox/orrery/pkg/math"

// DefaultBodies returns the sun, the eight planets, the moon and Saturn's
// ring. Radii are in world units, coefficients are relative rates.
func DefaultBodies() []Body {
	return []Body{
		{Name: "sun", Mesh: "models/planet/sun.obj", SpinCoeff: 1997, FixedRate: true},
		{Name: "mercury", Mesh: "models/planet/mercury.obj", OrbitRadius: 46 + 200, PeriodCoeff: 47.87, SpinCoeff: 10.8},
		{Name: "venus", Mesh: "models/planet/venus.obj", OrbitRadius: 107 + 200, PeriodCoeff: 35.02, SpinCoeff: 6.5},
		{Name: "earth", Mesh: "models/planet/earth.obj", OrbitRadius: 147 + 200, PeriodCoeff: 29.78, SpinCoeff: 1574},
		{Name: "moon", Mesh: "models/planet/moon.obj", Parent: "earth", OrbitRadius: 10, PeriodCoeff: 3683, OrbitAxis: math.Vec3{X: 0, Y: 1, Z: 1}},
		{Name: "mars", Mesh: "models/planet/mars.obj", OrbitRadius: 205 + 200, PeriodCoeff: 24.07, SpinCoeff: 866},
		{Name: "jupiter", Mesh: "models/planet/jupyter.obj", OrbitRadius: 741 + 200, PeriodCoeff: 13.07, SpinCoeff: 45583},
		{Name: "saturn", Mesh: "models/planet/saturn.obj", OrbitRadius: 1350, PeriodCoeff: 13.07, SpinCoeff: 36840},
		{Name: "saturn_ring", Mesh: "models/planet/saturn_circle.obj", Parent: "saturn", SpinCoeff: 36840},
		{Name: "uranus", Mesh: "models/planet/uranus.obj", OrbitRadius: 2250, PeriodCoeff: 6.81, SpinCoeff: 14794},
		{Name: "neptune", Mesh: "models/planet/neptun.obj", OrbitRadius: 3950, PeriodCoeff: 5.43, SpinCoeff: 9719},
	}
}
