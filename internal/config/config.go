// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Display modes.
const (
	DisplayTerminal = "terminal"
	DisplayText     = "text"
	DisplayWindow   = "window"
	DisplayNone     = "none"
)

// Config holds all viewer settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`
	Render  RenderConfig  `yaml:"render"`
	Display DisplayConfig `yaml:"display"`
	Network NetworkConfig `yaml:"network"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig selects what to draw.
type SceneConfig struct {
	Path        string `yaml:"path"`         // .dat or .yaml scene file
	Procedural  bool   `yaml:"procedural"`   // generate terrain instead of loading Path
	Seed        int64  `yaml:"seed"`         // terrain seed, 0 picks one from the clock
	TerrainSize int    `yaml:"terrain_size"` // grid cells per side
	TerrainFill string `yaml:"terrain_fill"` // single fill character
}

// CameraConfig holds the starting pose. Angles are in degrees.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	Yaw      float64    `yaml:"yaw"`
	Pitch    float64    `yaml:"pitch"`
}

// RenderConfig holds frame loop settings.
type RenderConfig struct {
	FPS        int        `yaml:"fps"`
	Flat       bool       `yaml:"flat"`        // painter's order without depth buffer
	Spin       bool       `yaml:"spin"`        // rotate the world every frame
	SpinAxis   string     `yaml:"spin_axis"`   // x, y or z
	SpinStep   float64    `yaml:"spin_step"`   // radians per frame
	SpinCenter [3]float64 `yaml:"spin_center"` // world point the scene turns about

	// SnapshotDir is where the snapshot key writes frames. Empty disables
	// snapshots.
	SnapshotDir string `yaml:"snapshot_dir"`
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	Mode       string `yaml:"mode"`
	Clear      bool   `yaml:"clear"` // text mode: clear the terminal between frames
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	VSync      bool   `yaml:"vsync"`
	Software   bool   `yaml:"software"` // window mode: software renderer
}

// NetworkConfig holds the websocket viewer settings. An empty Addr disables
// it.
type NetworkConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Path:        "data/house.dat",
			TerrainSize: 30,
			TerrainFill: ".",
		},
		Render: RenderConfig{
			FPS:         20,
			SpinAxis:    "y",
			SpinStep:    0.034,
			SpinCenter:  [3]float64{30, 10, 230},
			SnapshotDir: "snapshots",
		},
		Display: DisplayConfig{
			Mode:       DisplayTerminal,
			Clear:      true,
			CellWidth:  6,
			CellHeight: 12,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports every setting the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Render.FPS <= 0 {
		errs = append(errs, fmt.Errorf("render.fps must be positive, got %d", c.Render.FPS))
	}
	switch c.Render.SpinAxis {
	case "x", "y", "z":
	default:
		errs = append(errs, fmt.Errorf("render.spin_axis must be x, y or z, got %q", c.Render.SpinAxis))
	}
	switch c.Display.Mode {
	case DisplayTerminal, DisplayText, DisplayWindow, DisplayNone:
	default:
		errs = append(errs, fmt.Errorf("unknown display.mode %q", c.Display.Mode))
	}
	if c.Scene.Procedural {
		if c.Scene.TerrainSize < 2 {
			errs = append(errs, fmt.Errorf("scene.terrain_size must be at least 2, got %d", c.Scene.TerrainSize))
		}
		if len(c.Scene.TerrainFill) != 1 {
			errs = append(errs, fmt.Errorf("scene.terrain_fill must be one character, got %q", c.Scene.TerrainFill))
		}
	} else if c.Scene.Path == "" {
		errs = append(errs, errors.New("scene.path is required unless scene.procedural is set"))
	}
	return errors.Join(errs...)
}
