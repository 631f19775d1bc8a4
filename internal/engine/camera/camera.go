// Package camera provides the free-flying navigation camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/orrery/pkg/math"
)

// MaxPitch is the pitch limit in degrees. Looking straight up or down
// would make the front direction parallel to world-up.
const MaxPitch = 89.9

// Direction selects a movement axis for Move.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Camera is a first-person camera with a fixed world-up and no roll.
//
// Target is the last explicit look-at point. Rotate does not update it, so
// after the first rotation it no longer matches the facing; use
// ResetFrontDirection to snap the facing back onto it.
type Camera struct {
	position math.Vec3
	target   math.Vec3
	front    math.Vec3
	right    math.Vec3
}

// New creates a camera at position looking at target.
// The third argument is accepted for symmetry with LookAt; the camera always
// uses world-up (0,1,0). A target equal to position, or straight above or
// below it, produces degenerate basis vectors.
func New(position, target, _ math.Vec3) *Camera {
	c := &Camera{
		position: position,
		target:   target,
	}
	c.ResetFrontDirection()
	return c
}

// ViewMatrix returns the right-handed look-at matrix for the current state.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.front), math.Up)
}

// Move translates the camera by speed along the given direction.
// Up and Down shift the target together with the position.
func (c *Camera) Move(dir Direction, speed float32) {
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Scale(speed))
	case Backward:
		c.position = c.position.Sub(c.front.Scale(speed))
	case Right:
		c.position = c.position.Add(c.right.Scale(speed))
	case Left:
		c.position = c.position.Sub(c.right.Scale(speed))
	case Up:
		c.position.Y += speed
		c.target.Y += speed
	case Down:
		c.position.Y -= speed
		c.target.Y -= speed
	}
}

// Rotate sets the facing from pitch and yaw in degrees.
// Pitch is clamped to ±MaxPitch.
func (c *Camera) Rotate(pitch, yaw float32) {
	pitch = math.Clamp(pitch, -MaxPitch, MaxPitch)

	p := float64(math.Radians(pitch))
	y := float64(math.Radians(yaw))

	c.front = math.Vec3{
		X: float32(gomath.Cos(y) * gomath.Cos(p)),
		Y: float32(gomath.Sin(p)),
		Z: float32(gomath.Sin(y) * gomath.Cos(p)),
	}
	c.updateRight()
}

// ResetFrontDirection points the camera back at its target, discarding
// any rotation since construction.
func (c *Camera) ResetFrontDirection() {
	c.front = c.target.Sub(c.position).Normalize()
	c.updateRight()
}

// Angles returns the pitch and yaw in degrees that Rotate would need to
// reproduce the current facing.
func (c *Camera) Angles() (pitch, yaw float32) {
	pitch = math.Degrees(float32(gomath.Asin(float64(math.Clamp(c.front.Y, -1, 1)))))
	yaw = math.Degrees(float32(gomath.Atan2(float64(c.front.Z), float64(c.front.X))))
	return pitch, yaw
}

// Position returns the camera position.
func (c *Camera) Position() math.Vec3 {
	return c.position
}

// Target returns the last explicit look-at point.
func (c *Camera) Target() math.Vec3 {
	return c.target
}

// Front returns the unit facing direction.
func (c *Camera) Front() math.Vec3 {
	return c.front
}

// Right returns the unit strafe direction.
func (c *Camera) Right() math.Vec3 {
	return c.right
}

func (c *Camera) updateRight() {
	c.right = c.front.Cross(math.Up).Normalize()
}
