package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/orrery/pkg/math"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.FOV != 45 || cfg.Graphics.Near != 0.1 || cfg.Graphics.Far != 10000 {
		t.Errorf("unexpected projection defaults: %+v", cfg.Graphics)
	}

	// Test camera defaults
	if cfg.Camera.Position != (math.Vec3{X: 3000, Y: 5000, Z: 2000}) {
		t.Errorf("unexpected camera position %v", cfg.Camera.Position)
	}
	if cfg.Camera.MoveSpeed != 10 {
		t.Errorf("expected move speed 10, got %f", cfg.Camera.MoveSpeed)
	}

	// Test simulation defaults
	if cfg.Simulation.Rate != 0.09 {
		t.Errorf("expected rate 0.09, got %f", cfg.Simulation.Rate)
	}
	if cfg.Simulation.SpeedStep != 1.2 || cfg.Simulation.SpinStep != 0.01 {
		t.Errorf("unexpected step defaults: %+v", cfg.Simulation)
	}

	// Test scene defaults
	if len(cfg.Scene.Bodies) != 11 {
		t.Errorf("expected 11 bodies, got %d", len(cfg.Scene.Bodies))
	}
	if len(cfg.Scene.Skybox) != 6 {
		t.Errorf("expected 6 skybox faces, got %d", len(cfg.Scene.Skybox))
	}
	if cfg.Controls["forward"] != "W" || cfg.Controls["quit"] != "Escape" {
		t.Errorf("unexpected default controls: %v", cfg.Controls)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1280
  height: 720
  fullscreen: true
  fov: 60

camera:
  position: {x: 0, y: 100, z: 500}
  target: {x: 0, y: 0, z: 0}
  move_speed: 4

simulation:
  speed: 3

scene:
  bodies:
    - name: sun
      mesh: models/sun.obj
      spin: 100
      fixed_rate: true
    - name: world
      mesh: models/world.obj
      orbit_radius: 200
      period: 10
      spin: 50
    - name: satellite
      mesh: models/sat.obj
      parent: world
      orbit_radius: 8
      period: 400
      orbit_axis: {x: 0, y: 1, z: 1}

controls:
  forward: Z

logging:
  level: "debug"
  log_file: "orrery.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1280 || cfg.Graphics.Height != 720 {
		t.Errorf("expected 1280x720, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Graphics.FOV)
	}
	// Untouched keys keep their defaults.
	if cfg.Graphics.Far != 10000 {
		t.Errorf("expected default far plane, got %f", cfg.Graphics.Far)
	}

	if cfg.Camera.Position != (math.Vec3{Y: 100, Z: 500}) {
		t.Errorf("unexpected camera position %v", cfg.Camera.Position)
	}
	if cfg.Simulation.Speed != 3 {
		t.Errorf("expected speed 3, got %f", cfg.Simulation.Speed)
	}

	if len(cfg.Scene.Bodies) != 3 {
		t.Fatalf("body table should be replaced, got %d bodies", len(cfg.Scene.Bodies))
	}
	sat := cfg.Scene.Bodies[2]
	if sat.Parent != "world" || sat.OrbitRadius != 8 || sat.PeriodCoeff != 400 {
		t.Errorf("unexpected satellite %+v", sat)
	}
	if sat.OrbitAxis != (math.Vec3{Y: 1, Z: 1}) {
		t.Errorf("unexpected orbit axis %v", sat.OrbitAxis)
	}
	if !cfg.Scene.Bodies[0].FixedRate {
		t.Error("expected sun to be fixed rate")
	}

	// Bindings merge into the defaults.
	if cfg.Controls["forward"] != "Z" {
		t.Errorf("expected forward bound to Z, got %s", cfg.Controls["forward"])
	}
	if cfg.Controls["backward"] != "S" {
		t.Errorf("expected backward to keep default S, got %s", cfg.Controls["backward"])
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "orrery.log" {
		t.Errorf("expected log file 'orrery.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"far before near", func(c *Config) { c.Graphics.Far = 0.01 }},
		{"target on position", func(c *Config) { c.Camera.Target = c.Camera.Position }},
		{"looking straight down", func(c *Config) {
			c.Camera.Target = c.Camera.Position.Sub(math.Vec3{Y: 10})
		}},
		{"negative rate", func(c *Config) { c.Simulation.Rate = -1 }},
		{"zero rate freezes the clock", func(c *Config) { c.Simulation.Rate = 0 }},
		{"zero speed", func(c *Config) { c.Simulation.Speed = 0 }},
		{"five skybox faces", func(c *Config) { c.Scene.Skybox = c.Scene.Skybox[:5] }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Point the user config dir somewhere empty
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "speed flag",
			setup: func() {
				*flagSpeed = 2.5
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.Speed != 2.5 {
					t.Errorf("expected speed 2.5, got %f", cfg.Simulation.Speed)
				}
			},
			teardown: func() {
				*flagSpeed = 0
			},
		},
		{
			name: "assets flag",
			setup: func() {
				*flagAssets = "/opt/orrery/data"
			},
			verify: func(cfg *Config) {
				roots := cfg.Assets.Roots
				if len(roots) == 0 || roots[len(roots)-1] != "/opt/orrery/data" {
					t.Errorf("expected assets root appended last, got %v", roots)
				}
			},
			teardown: func() {
				*flagAssets = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Simulation.Speed = 7
	cfg.Scene.Bodies = cfg.Scene.Bodies[:2]
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if loaded.Simulation.Speed != 7 {
		t.Errorf("expected speed 7, got %f", loaded.Simulation.Speed)
	}
	if len(loaded.Scene.Bodies) != 2 || loaded.Scene.Bodies[1].Name != "mercury" {
		t.Errorf("unexpected bodies after round trip: %+v", loaded.Scene.Bodies)
	}
	if loaded.Scene.Bodies[0].FixedRate != true {
		t.Error("expected sun fixed_rate to survive round trip")
	}
}
