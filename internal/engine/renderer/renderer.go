// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/renderer/shaders"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOV        float32 // vertical, degrees
	Near       float32
	Far        float32
	ClearColor [4]float32
}

// Projection returns the perspective projection for the configured size.
// A zero height (minimized window) is treated as one pixel.
func (c Config) Projection() math.Mat4 {
	h := max(c.Height, 1)
	aspect := float32(c.Width) / float32(h)
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// Frame is the per-frame render context handed to every draw call.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Light      lighting.Directional
	lightSpace math.Mat4
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config     Config
	projection math.Mat4
	mode       PolygonMode

	// Shader program for lit, textured bodies
	program *shader.Program

	log *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		projection: cfg.Projection(),
		log:        logger.Named(logger.ComponentRender),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	// Create shader program
	var err error
	r.program, err = shader.NewProgram(shaders.BasicVertexShader, shaders.BasicFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.projection = r.config.Projection()
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Projection returns the current projection matrix.
func (r *Renderer) Projection() math.Mat4 {
	return r.projection
}

// Begin clears the frame and sets the per-frame uniforms.
func (r *Renderer) Begin(view math.Mat4, light lighting.Directional) Frame {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	f := Frame{
		View:       view,
		Projection: r.projection,
		Light:      light,
		lightSpace: light.LightSpaceMatrix(),
	}

	r.program.Use()
	r.program.SetMat4("view", f.View)
	r.program.SetMat4("projection", f.Projection)
	r.program.SetVec3("lightDir", f.Light.Dir)
	r.program.SetVec3("lightColor", f.Light.Color)
	r.program.SetMat4("lightSpaceTrMatrix", f.lightSpace)
	r.program.SetInt("diffuseTexture", 0)
	return f
}

// DrawBody draws one mesh with the given model matrix.
func (r *Renderer) DrawBody(f Frame, m *mesh.Mesh, model math.Mat4) {
	r.program.Use()
	r.program.SetMat4("model", model)
	r.program.SetMat3("normalMatrix", f.View.Mul(model).NormalMatrix())
	m.Draw()
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Nothing to do for now - batched draws would be flushed here
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	return pixels, w, h
}
