package sim

// Limits bounds the speed multiplier.
type Limits struct {
	MinSpeed float32
	MaxSpeed float32
}

// State is the per-run simulation state read by the orbit composer.
type State struct {
	Clock

	// SpinAngle rotates the whole system about world Y, in radians.
	SpinAngle float32
	// Speed scales every body's revolution and spin rate.
	Speed float32

	limits Limits
}

// NewState creates a state with the given clock rate, initial speed and limits.
// Zero limits disable clamping on that side.
func NewState(rate, speed float32, limits Limits) *State {
	s := &State{
		Clock:  NewClock(rate),
		limits: limits,
	}
	s.Speed = s.clampSpeed(speed)
	return s
}

// Spin adds delta radians to the global spin angle.
func (s *State) Spin(delta float32) {
	s.SpinAngle += delta
}

// ScaleSpeed multiplies the speed multiplier by factor.
func (s *State) ScaleSpeed(factor float32) {
	s.Speed = s.clampSpeed(s.Speed * factor)
}

func (s *State) clampSpeed(v float32) float32 {
	if s.limits.MinSpeed > 0 && v < s.limits.MinSpeed {
		return s.limits.MinSpeed
	}
	if s.limits.MaxSpeed > 0 && v > s.limits.MaxSpeed {
		return s.limits.MaxSpeed
	}
	return v
}
