package renderer

import (
	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PolygonMode selects how body triangles are rasterized.
type PolygonMode int

const (
	ModeFill PolygonMode = iota
	ModeLine
	ModePoint
	ModeSmooth // fill with line smoothing enabled
)

// String returns the mode name.
func (m PolygonMode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeLine:
		return "line"
	case ModePoint:
		return "point"
	case ModeSmooth:
		return "smooth"
	default:
		return "unknown"
	}
}

// glMode returns the glPolygonMode value and whether line smoothing is on.
// Line and point keep whatever smoothing state was last set.
func (m PolygonMode) glMode() (mode uint32, smooth, setSmooth bool) {
	switch m {
	case ModeLine:
		return gl.LINE, false, false
	case ModePoint:
		return gl.POINT, false, false
	case ModeSmooth:
		return gl.FILL, true, true
	default:
		return gl.FILL, false, true
	}
}

// SetPolygonMode switches the rasterization mode.
func (r *Renderer) SetPolygonMode(m PolygonMode) {
	if m == r.mode {
		return
	}
	mode, smooth, setSmooth := m.glMode()
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
	if setSmooth {
		if smooth {
			gl.Enable(gl.LINE_SMOOTH)
		} else {
			gl.Disable(gl.LINE_SMOOTH)
		}
	}
	r.mode = m
	r.log.Debug("polygon mode", zap.Stringer("mode", m))
}

// PolygonMode returns the current rasterization mode.
func (r *Renderer) PolygonMode() PolygonMode {
	return r.mode
}
