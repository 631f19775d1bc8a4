package orbit

import "github.com/Faultbox/orrery/pkg/math"

// ModelMatrix composes the model matrix of b.
//
// ancestors lists b's parent chain nearest first. The product, applied
// right to left, is: own spin, own translation, own revolution, then each
// ancestor's translation and revolution, then the global spin.
func ModelMatrix(b Body, ancestors []Body, simTime, spinAngle, speed float32) math.Mat4 {
	m := b.orbitMatrix(simTime, speed).Mul(math.RotateY(b.SpinAngle(simTime, speed)))
	for _, p := range ancestors {
		m = p.orbitMatrix(simTime, speed).Mul(m)
	}
	return math.RotateY(spinAngle).Mul(m)
}
