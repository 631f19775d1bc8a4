// Package lighting provides the directional light that stands in for the sun.
package lighting

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// Shadow volume of the light-space projection.
const (
	shadowHalfExtent = 20
	shadowNear       = 1
	shadowFar        = 5
)

// Directional is a light at infinity. Dir points towards the light and
// need not be unit length; the light-space view sits at Dir.
type Directional struct {
	Dir   math.Vec3
	Color math.Vec3
}

// Direction returns the unit direction towards the light.
func (d Directional) Direction() math.Vec3 {
	return d.Dir.Normalize()
}

// LightSpaceMatrix returns the orthographic light-space transform that
// maps world positions into the shadow volume, looking from Dir at the
// origin.
func (d Directional) LightSpaceMatrix() math.Mat4 {
	up := math.Up
	// Avoid a degenerate basis when the light is straight overhead.
	if n := d.Direction(); n.X == 0 && n.Z == 0 {
		up = math.Vec3{Z: 1}
	}
	view := math.LookAt(d.Dir, math.Vec3{}, up)
	proj := math.Ortho(-shadowHalfExtent, shadowHalfExtent, -shadowHalfExtent, shadowHalfExtent, shadowNear, shadowFar)
	return proj.Mul(view)
}
