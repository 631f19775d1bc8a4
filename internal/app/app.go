// Package app implements the frame loop that ties the simulation, the
// camera and the renderer together.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/controls"
	"github.com/Faultbox/orrery/internal/engine/audio"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/debug"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/sim"
	"github.com/Faultbox/orrery/pkg/math"
)

// Title is the window title prefix.
const Title = "orrery"

// App is the running orrery instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager
	loader   *mesh.Loader
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	scene      *Scene
	camera     *camera.Camera
	controller *controls.Controller
	state      *sim.State
	light      lighting.Directional
	hud        hud

	// pendingShot captures the next rendered frame before it is swapped.
	pendingShot bool
	glErrors    errorLog

	log *zap.Logger
}

// New creates the window, GL resources and scene described by cfg.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named(logger.ComponentApp),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("bodies", len(cfg.Scene.Bodies)),
	)

	var err error
	a.assets, err = newAssets(cfg.Assets.Roots)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The drawable can be larger than the window on high-DPI displays.
	width, height := a.window.DrawableSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		FOV:        cfg.Graphics.FOV,
		Near:       cfg.Graphics.Near,
		Far:        cfg.Graphics.Far,
		ClearColor: cfg.Scene.ClearColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.loader = mesh.NewLoader(a.assets, cfg.Assets.MaxTextureSize)
	a.scene, err = LoadScene(cfg.Scene, a.assets, a.loader, cfg.Assets.MaxTextureSize)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	a.input = input.New()
	bindings, err := controls.NewBindings(cfg.Controls, input.Scancode)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to bind controls: %w", err)
	}

	a.camera = camera.New(cfg.Camera.Position, cfg.Camera.Target, math.Up)
	a.controller = controls.New(bindings, settings(cfg), a.camera)
	a.state = newState(cfg.Simulation)
	a.light = lighting.Directional{
		Dir:   cfg.Scene.LightDir,
		Color: cfg.Scene.LightColor,
	}
	a.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, Title)
	a.window.SetRelativeMouse(true)

	a.startAudio()

	a.log.Info("initialized successfully")
	return a, nil
}

// newAssets creates an asset manager over the configured roots.
// Missing roots are skipped with a warning.
func newAssets(roots []string) (*assets.Manager, error) {
	m := assets.NewManager()
	for _, root := range roots {
		if err := m.AddRoot(root); err != nil {
			logger.Warn("skipping asset root", zap.String("root", root), zap.Error(err))
		}
	}
	if len(m.Roots()) == 0 {
		return nil, fmt.Errorf("no usable asset roots in %v", roots)
	}
	return m, nil
}

// settings converts config values into controller tuning.
func settings(cfg *config.Config) controls.Settings {
	return controls.Settings{
		MoveSpeed:        cfg.Camera.MoveSpeed,
		RotateStep:       cfg.Camera.RotateStep,
		SpinStep:         cfg.Simulation.SpinStep,
		SpeedStep:        cfg.Simulation.SpeedStep,
		MouseSensitivity: cfg.Camera.MouseSensitivity,
		FrameIndependent: cfg.Camera.FrameIndependent,
	}
}

// newState creates the simulation state from config.
func newState(c config.SimulationConfig) *sim.State {
	return sim.NewState(c.Rate, c.Speed, sim.Limits{
		MinSpeed: c.MinSpeed,
		MaxSpeed: c.MaxSpeed,
	})
}

// startAudio plays the configured soundtrack. Failures leave the app silent.
func (a *App) startAudio() {
	c := a.cfg.Audio
	if c.Music == "" {
		return
	}

	data, err := a.assets.Load(c.Music)
	if err != nil {
		a.log.Warn("soundtrack not found, continuing silently", zap.String("music", c.Music), zap.Error(err))
		return
	}

	log := logger.Named(logger.ComponentAudio)
	a.audio = audio.New()
	if err := a.audio.Init(); err != nil {
		log.Warn("audio unavailable", zap.Error(err))
		a.audio = nil
		return
	}
	a.audio.SetMasterVolume(c.MasterVolume)
	a.audio.SetMusicVolume(c.MusicVolume)
	a.audio.SetMuted(c.Muted)

	if err := a.audio.PlayAmbient(data, c.Music); err != nil {
		log.Warn("failed to play soundtrack", zap.String("music", c.Music), zap.Error(err))
		return
	}
	log.Info("playing soundtrack",
		zap.String("music", c.Music),
		zap.Float64("volume", c.MasterVolume*c.MusicVolume),
		zap.Bool("muted", c.Muted),
	)
}

// Run starts the frame loop and returns when the user quits. GL errors
// are logged and do not stop the loop.
func (a *App) Run() {
	a.running = true

	// Timing
	lastTime := time.Now()
	a.hud.reset(lastTime)

	a.log.Info("starting frame loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Advance the simulation clock
		a.state.Advance(dt)

		// 2. Process input
		if a.input.Update() {
			// Quit event received
			a.running = false
			break
		}
		a.handleEvents()
		a.handleControls(dt)

		// 3. Compute transforms and 4. draw
		if err := a.render(); a.glErrors.changed(err) {
			a.log.Warn("render error", zap.Error(err), logger.Sim(a.state.Elapsed, a.state.Speed, a.state.SpinAngle))
		}

		if a.pendingShot {
			a.pendingShot = false
			a.screenshot()
		}

		// Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		if title, ok := a.hud.frame(now, a.state); ok {
			a.window.SetTitle(title)
			if a.cfg.Debug.ShowFPS {
				a.log.Info("fps",
					zap.String("hud", title),
					zap.Duration("dt", time.Duration(dt*float64(time.Second))),
					logger.Sim(a.state.Elapsed, a.state.Speed, a.state.SpinAngle),
				)
			}
		}
	}
}

// handleEvents applies window events from the last input update.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := a.window.DrawableSize()
			a.renderer.Resize(width, height)
		}
	}
}

// handleControls applies held keys and mouse-look for this frame.
func (a *App) handleControls(dt float64) {
	res := a.controller.Apply(a.input, a.camera, a.state, dt)

	if x, y, moved := a.input.Cursor(); moved {
		a.controller.Mouse(a.camera, x, y)
	}

	if res.Mode != controls.NoMode {
		a.renderer.SetPolygonMode(renderer.PolygonMode(res.Mode))
	}
	if res.Quit {
		a.running = false
	}
	if res.Screenshot {
		a.pendingShot = true
	}
}

// render draws every body, then the skybox, and reports GL errors raised
// while doing so.
func (a *App) render() error {
	transforms := a.scene.Update(a.state)

	f := a.renderer.Begin(a.camera.ViewMatrix(), a.light)
	for i, b := range a.scene.bodies {
		if b.mesh == nil {
			continue
		}
		a.renderer.DrawBody(f, b.mesh, transforms[i])
	}
	if a.scene.skybox != nil {
		a.scene.skybox.Draw(f.View, f.Projection)
	}
	a.renderer.End()

	return a.renderer.CheckError()
}

// screenshot writes the current back buffer to a PNG file.
func (a *App) screenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases every resource created by New.
func (a *App) Close() {
	a.log.Info("closing")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.scene != nil {
		a.scene.Close()
	}
	if a.loader != nil {
		a.loader.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	if a.assets != nil {
		a.assets.Close()
	}
}
