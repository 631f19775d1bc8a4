package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a configuration value the program cannot run with.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Orrery")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Orrery")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "orrery")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "orrery")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks settings that would otherwise fail deep inside the
// renderer or produce a degenerate camera.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("%w: clip planes near=%g far=%g", ErrInvalid, c.Graphics.Near, c.Graphics.Far)
	}
	front := c.Camera.Target.Sub(c.Camera.Position)
	if front.Length() == 0 {
		return fmt.Errorf("%w: camera target equals position", ErrInvalid)
	}
	if front.X == 0 && front.Z == 0 {
		return fmt.Errorf("%w: camera looks straight along world up", ErrInvalid)
	}
	if c.Simulation.Rate <= 0 {
		return fmt.Errorf("%w: simulation rate must be positive, got %g", ErrInvalid, c.Simulation.Rate)
	}
	if c.Simulation.Speed <= 0 {
		return fmt.Errorf("%w: simulation speed must be positive", ErrInvalid)
	}
	if len(c.Scene.Skybox) != 0 && len(c.Scene.Skybox) != 6 {
		return fmt.Errorf("%w: skybox needs 6 faces, got %d", ErrInvalid, len(c.Scene.Skybox))
	}
	return nil
}
