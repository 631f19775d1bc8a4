// Package config handles orrery configuration loading and management.
package config

import (
	"github.com/Faultbox/orrery/internal/orbit"
	"github.com/Faultbox/orrery/pkg/math"
)

// Config holds all settings.
type Config struct {
	Graphics   GraphicsConfig    `yaml:"graphics"`
	Camera     CameraConfig      `yaml:"camera"`
	Simulation SimulationConfig  `yaml:"simulation"`
	Scene      SceneConfig       `yaml:"scene"`
	Assets     AssetsConfig      `yaml:"assets"`
	Controls   map[string]string `yaml:"controls"`
	Audio      AudioConfig       `yaml:"audio"`
	Debug      DebugConfig       `yaml:"debug"`
	Logging    LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// CameraConfig holds the initial camera placement and navigation tuning.
type CameraConfig struct {
	Position         math.Vec3 `yaml:"position"`
	Target           math.Vec3 `yaml:"target"`
	MoveSpeed        float32   `yaml:"move_speed"`        // world units per frame
	MouseSensitivity float32   `yaml:"mouse_sensitivity"` // degrees per pixel
	RotateStep       float32   `yaml:"rotate_step"`       // degrees per frame for key look
	FrameIndependent bool      `yaml:"frame_independent"`
}

// SimulationConfig holds clock and speed settings.
type SimulationConfig struct {
	Rate      float32 `yaml:"rate"`
	Speed     float32 `yaml:"speed"`
	MinSpeed  float32 `yaml:"min_speed"`
	MaxSpeed  float32 `yaml:"max_speed"`
	SpeedStep float32 `yaml:"speed_step"` // multiplier per frame
	SpinStep  float32 `yaml:"spin_step"`  // radians per frame
}

// SceneConfig holds the body table, skybox and light.
type SceneConfig struct {
	Bodies     []orbit.Body `yaml:"bodies"`
	Skybox     []string     `yaml:"skybox"` // +X, -X, +Y, -Y, +Z, -Z
	LightDir   math.Vec3    `yaml:"light_dir"`
	LightColor math.Vec3    `yaml:"light_color"`
	ClearColor [4]float32   `yaml:"clear_color"`
}

// AssetsConfig holds asset search roots.
type AssetsConfig struct {
	Roots          []string `yaml:"roots"` // later roots take priority
	MaxTextureSize int      `yaml:"max_texture_size"`
}

// AudioConfig holds soundtrack settings.
type AudioConfig struct {
	Music        string  `yaml:"music"`
	MasterVolume float64 `yaml:"master_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
	Muted        bool    `yaml:"muted"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultControls maps actions to SDL key names.
func DefaultControls() map[string]string {
	return map[string]string{
		"forward":     "W",
		"backward":    "S",
		"left":        "A",
		"right":       "D",
		"up":          "Up",
		"down":        "Down",
		"spin_left":   "Q",
		"spin_right":  "E",
		"faster":      "0",
		"slower":      "9",
		"pitch_up":    "K",
		"pitch_down":  "H",
		"yaw_left":    "J",
		"yaw_right":   "U",
		"reset_view":  "R",
		"mode_fill":   "1",
		"mode_line":   "2",
		"mode_point":  "3",
		"mode_smooth": "4",
		"screenshot":  "F12",
		"quit":        "Escape",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	stars := "skybox/stars.jpg"
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1920,
			Height:     1080,
			Fullscreen: false,
			VSync:      true,
			FOV:        45,
			Near:       0.1,
			Far:        10000,
		},
		Camera: CameraConfig{
			Position:         math.Vec3{X: 3000, Y: 5000, Z: 2000},
			Target:           math.Vec3{X: 40, Y: 10, Z: 0},
			MoveSpeed:        10,
			MouseSensitivity: 0.25,
			RotateStep:       0.3,
		},
		Simulation: SimulationConfig{
			Rate:      0.09,
			Speed:     1,
			MinSpeed:  0.001,
			MaxSpeed:  1000,
			SpeedStep: 1.2,
			SpinStep:  0.01,
		},
		Scene: SceneConfig{
			Bodies:     orbit.DefaultBodies(),
			Skybox:     []string{stars, stars, stars, stars, stars, stars},
			LightDir:   math.Vec3{X: 0, Y: 1, Z: 1},
			LightColor: math.Vec3{X: 1, Y: 1, Z: 1},
			ClearColor: [4]float32{0.8, 0.8, 0.8, 1},
		},
		Assets: AssetsConfig{
			Roots:          []string{"."},
			MaxTextureSize: 4096,
		},
		Controls: DefaultControls(),
		Audio: AudioConfig{
			Music:        "",
			MasterVolume: 0.8,
			MusicVolume:  0.7,
			Muted:        false,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
