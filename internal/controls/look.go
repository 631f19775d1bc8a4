package controls

import (
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/pkg/math"
)

// Look turns cursor motion into pitch and yaw in degrees.
// The first cursor sample only records a reference point.
type Look struct {
	Pitch       float32
	Yaw         float32
	Sensitivity float32

	lastX, lastY float32
	primed       bool
}

// Seed sets the angles, typically from camera.Angles.
func (l *Look) Seed(pitch, yaw float32) {
	l.Pitch = pitch
	l.Yaw = yaw
}

// Turn adds to the angles, clamping pitch to the camera limit.
func (l *Look) Turn(dPitch, dYaw float32) {
	l.Yaw += dYaw
	l.Pitch = math.Clamp(l.Pitch+dPitch, -camera.MaxPitch, camera.MaxPitch)
}

// Update consumes a cursor sample and reports whether the angles changed.
// Moving the cursor up (negative y) pitches up.
func (l *Look) Update(x, y float32) bool {
	if !l.primed {
		l.lastX, l.lastY = x, y
		l.primed = true
		return false
	}
	dx, dy := x-l.lastX, y-l.lastY
	l.lastX, l.lastY = x, y
	if dx == 0 && dy == 0 {
		return false
	}
	l.Turn(-dy*l.Sensitivity, dx*l.Sensitivity)
	return true
}
