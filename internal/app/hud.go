package app

import (
	"fmt"
	"time"

	"github.com/Faultbox/orrery/internal/sim"
)

// hud counts frames and produces the window title once per second.
type hud struct {
	frames int
	since  time.Time
}

func (h *hud) reset(now time.Time) {
	h.frames = 0
	h.since = now
}

// frame records one frame. It returns a new title when at least a second
// has passed since the last one.
func (h *hud) frame(now time.Time, st *sim.State) (string, bool) {
	h.frames++
	elapsed := now.Sub(h.since)
	if elapsed < time.Second {
		return "", false
	}
	fps := float64(h.frames) / elapsed.Seconds()
	h.reset(now)
	return hudTitle(fps, st.Speed, st.Elapsed), true
}

func hudTitle(fps float64, speed, elapsed float32) string {
	return fmt.Sprintf("%s | %.0f fps | speed x%.3g | t=%.2f", Title, fps, speed, elapsed)
}
