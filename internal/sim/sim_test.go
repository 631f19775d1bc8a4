package sim

import "testing"

func TestClockAdvance(t *testing.T) {
	c := NewClock(DefaultRate)
	c.Advance(1)
	c.Advance(0.5)
	want := float32(DefaultRate * 1.5)
	if d := c.Elapsed - want; d > 1e-6 || d < -1e-6 {
		t.Errorf("Elapsed = %f, want %f", c.Elapsed, want)
	}
}

func TestClockMonotonic(t *testing.T) {
	c := NewClock(2)
	c.Advance(3)
	before := c.Elapsed
	c.Advance(-1)
	c.Advance(0)
	if c.Elapsed != before {
		t.Errorf("Elapsed changed from %f to %f on non-positive delta", before, c.Elapsed)
	}
}

func TestStateSpin(t *testing.T) {
	s := NewState(DefaultRate, 1, Limits{})
	s.Spin(0.01)
	s.Spin(0.01)
	s.Spin(-0.005)
	if d := s.SpinAngle - 0.015; d > 1e-6 || d < -1e-6 {
		t.Errorf("SpinAngle = %f, want 0.015", s.SpinAngle)
	}
}

func TestStateScaleSpeed(t *testing.T) {
	tests := []struct {
		name   string
		limits Limits
		steps  []float32
		want   float32
	}{
		{"unbounded", Limits{}, []float32{2, 2, 0.5}, 2},
		{"max", Limits{MinSpeed: 0.01, MaxSpeed: 100}, []float32{10, 10, 10}, 100},
		{"min", Limits{MinSpeed: 0.01, MaxSpeed: 100}, []float32{0.001}, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(DefaultRate, 1, tt.limits)
			for _, f := range tt.steps {
				s.ScaleSpeed(f)
			}
			if d := s.Speed - tt.want; d > 1e-4 || d < -1e-4 {
				t.Errorf("Speed = %f, want %f", s.Speed, tt.want)
			}
		})
	}
}

func TestNewStateClampsInitialSpeed(t *testing.T) {
	s := NewState(DefaultRate, 500, Limits{MaxSpeed: 50})
	if s.Speed != 50 {
		t.Errorf("Speed = %f, want 50", s.Speed)
	}
	if s.Rate != DefaultRate {
		t.Errorf("Rate = %f, want %f", s.Rate, float32(DefaultRate))
	}
}
