// Package sim holds the simulation clock and the user-adjustable state
// that drives body animation.
package sim

// DefaultRate converts wall-clock seconds into simulation time.
const DefaultRate = 0.09

// Clock accumulates scaled wall-clock time. Elapsed never decreases.
type Clock struct {
	Rate    float32
	Elapsed float32
}

// NewClock creates a clock with the given rate.
func NewClock(rate float32) Clock {
	return Clock{Rate: rate}
}

// Advance adds rate * wallSeconds to the elapsed simulation time.
// Non-positive deltas are ignored.
func (c *Clock) Advance(wallSeconds float64) {
	if wallSeconds <= 0 {
		return
	}
	c.Elapsed += c.Rate * float32(wallSeconds)
}
