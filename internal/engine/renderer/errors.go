package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrGL reports errors raised by the GL driver during a frame.
var ErrGL = errors.New("gl error")

// maxGLErrors bounds the drain loop; a lost context can report forever.
const maxGLErrors = 16

// glErrorName returns the GL enum name for an error code.
func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04X", code)
	}
}

// drainErrors pulls codes from next until it reports NO_ERROR and joins
// them into one ErrGL-wrapped error.
func drainErrors(next func() uint32) error {
	var names []string
	for i := 0; i < maxGLErrors; i++ {
		code := next()
		if code == gl.NO_ERROR {
			break
		}
		names = append(names, glErrorName(code))
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrGL, strings.Join(names, ", "))
}

// CheckError returns the GL errors raised since the last check, or nil.
func (r *Renderer) CheckError() error {
	return drainErrors(gl.GetError)
}
