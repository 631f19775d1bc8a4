package controls

import (
	gomath "math"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/sim"
)

// KeyState reports held keys and fresh presses by key code.
type KeyState interface {
	KeyDown(code int) bool
	KeyPressed(code int) bool
}

// Settings tune how far each held key moves things per frame.
type Settings struct {
	MoveSpeed        float32 // world units per frame
	RotateStep       float32 // degrees per frame for key look
	SpinStep         float32 // radians per frame
	SpeedStep        float32 // multiplier per frame
	MouseSensitivity float32 // degrees per cursor unit

	// FrameIndependent scales per-frame steps by dt*60, so the feel at
	// 60 fps is unchanged.
	FrameIndependent bool
}

// NoMode means no polygon mode key was pressed.
const NoMode = -1

// Result carries the actions the frame loop handles itself.
type Result struct {
	Mode       int // index into the renderer's polygon modes, or NoMode
	Screenshot bool
	Quit       bool
}

// Controller applies bindings to a camera and simulation state.
type Controller struct {
	bindings Bindings
	settings Settings
	look     Look
}

// New creates a controller. Look angles start from the camera's facing.
func New(b Bindings, s Settings, cam *camera.Camera) *Controller {
	c := &Controller{
		bindings: b,
		settings: s,
		look:     Look{Sensitivity: s.MouseSensitivity},
	}
	c.look.Seed(cam.Angles())
	return c
}

// Look returns the mouse-look state.
func (c *Controller) Look() *Look {
	return &c.look
}

func (c *Controller) down(keys KeyState, a Action) bool {
	code, ok := c.bindings[a]
	return ok && keys.KeyDown(code)
}

func (c *Controller) pressed(keys KeyState, a Action) bool {
	code, ok := c.bindings[a]
	return ok && keys.KeyPressed(code)
}

// Apply handles one frame of held keys. dt is wall time in seconds and
// only matters when FrameIndependent is set.
func (c *Controller) Apply(keys KeyState, cam *camera.Camera, st *sim.State, dt float64) Result {
	res := Result{Mode: NoMode}
	scale := float32(1)
	if c.settings.FrameIndependent {
		scale = float32(dt * 60)
	}

	moves := []struct {
		action Action
		dir    camera.Direction
	}{
		{Up, camera.Up},
		{Down, camera.Down},
		{Forward, camera.Forward},
		{Backward, camera.Backward},
		{Left, camera.Left},
		{Right, camera.Right},
	}
	step := c.settings.MoveSpeed * scale
	for _, m := range moves {
		if c.down(keys, m.action) {
			cam.Move(m.dir, step)
		}
	}

	if c.down(keys, SpinLeft) {
		st.Spin(-c.settings.SpinStep * scale)
	}
	if c.down(keys, SpinRight) {
		st.Spin(c.settings.SpinStep * scale)
	}

	// Per-frame multiplicative steps compound, so scale the exponent.
	if c.down(keys, Faster) {
		st.ScaleSpeed(pow(c.settings.SpeedStep, scale))
	}
	if c.down(keys, Slower) {
		st.ScaleSpeed(1 / pow(c.settings.SpeedStep, scale))
	}

	var dPitch, dYaw float32
	rot := c.settings.RotateStep * scale
	if c.down(keys, PitchUp) {
		dPitch += rot
	}
	if c.down(keys, PitchDown) {
		dPitch -= rot
	}
	if c.down(keys, YawRight) {
		dYaw += rot
	}
	if c.down(keys, YawLeft) {
		dYaw -= rot
	}
	if dPitch != 0 || dYaw != 0 {
		c.look.Turn(dPitch, dYaw)
		cam.Rotate(c.look.Pitch, c.look.Yaw)
	}

	if c.pressed(keys, ResetView) {
		cam.ResetFrontDirection()
		c.look.Seed(cam.Angles())
	}

	modes := []Action{ModeFill, ModeLine, ModePoint, ModeSmooth}
	for i, a := range modes {
		if c.down(keys, a) {
			res.Mode = i
		}
	}

	res.Screenshot = c.pressed(keys, Screenshot)
	res.Quit = c.pressed(keys, Quit)
	return res
}

// Mouse feeds the virtual cursor position to mouse-look and rotates the
// camera.
func (c *Controller) Mouse(cam *camera.Camera, x, y float32) {
	if c.look.Update(x, y) {
		cam.Rotate(c.look.Pitch, c.look.Yaw)
	}
}

func pow(base, exp float32) float32 {
	if exp == 1 {
		return base
	}
	return float32(gomath.Pow(float64(base), float64(exp)))
}
