package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scene.Path != "data/house.dat" {
		t.Errorf("expected scene data/house.dat, got %s", cfg.Scene.Path)
	}
	if cfg.Scene.Procedural {
		t.Error("expected procedural to be false by default")
	}
	if cfg.Scene.TerrainSize != 30 {
		t.Errorf("expected terrain size 30, got %d", cfg.Scene.TerrainSize)
	}

	if cfg.Render.FPS != 20 {
		t.Errorf("expected fps 20, got %d", cfg.Render.FPS)
	}
	if cfg.Render.Spin {
		t.Error("expected spin to be off by default")
	}
	if cfg.Render.SpinCenter != [3]float64{30, 10, 230} {
		t.Errorf("unexpected spin center %v", cfg.Render.SpinCenter)
	}
	if cfg.Render.SnapshotDir != "snapshots" {
		t.Errorf("expected snapshot dir snapshots, got %q", cfg.Render.SnapshotDir)
	}

	if cfg.Display.Mode != DisplayTerminal {
		t.Errorf("expected display mode terminal, got %s", cfg.Display.Mode)
	}
	if cfg.Network.Addr != "" {
		t.Errorf("expected websocket viewer disabled, got %s", cfg.Network.Addr)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene:
  procedural: true
  seed: 99
  terrain_size: 12
  terrain_fill: "#"

camera:
  position: [100, 50, -300]
  yaw: 45

render:
  fps: 30
  flat: true
  spin: true
  spin_axis: x

display:
  mode: text
  clear: false

network:
  addr: ":9000"

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if !cfg.Scene.Procedural || cfg.Scene.Seed != 99 || cfg.Scene.TerrainSize != 12 || cfg.Scene.TerrainFill != "#" {
		t.Errorf("scene = %+v", cfg.Scene)
	}
	if cfg.Scene.Path != "data/house.dat" {
		t.Errorf("unset scene path should keep default, got %s", cfg.Scene.Path)
	}
	if cfg.Camera.Position != [3]float64{100, 50, -300} || cfg.Camera.Yaw != 45 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Render.FPS != 30 || !cfg.Render.Flat || !cfg.Render.Spin || cfg.Render.SpinAxis != "x" {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Render.SpinStep != 0.034 {
		t.Errorf("unset spin step should keep default, got %v", cfg.Render.SpinStep)
	}
	if cfg.Display.Mode != DisplayText || cfg.Display.Clear {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Network.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %s", cfg.Network.Addr)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad syntax", "render:\n  fps: not a number\n  invalid syntax here\n"},
		{"unknown key", "render:\n  frames: 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid config, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load, got %v", err)
	}
	if cfg.Render.FPS != 20 {
		t.Errorf("empty file changed defaults: fps %d", cfg.Render.FPS)
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
		modify func(*Config)
		want   string
	}{
		{"zero fps", func(c *Config) { c.Render.FPS = 0 }, "render.fps"},
		{"bad axis", func(c *Config) { c.Render.SpinAxis = "w" }, "spin_axis"},
		{"bad mode", func(c *Config) { c.Display.Mode = "hologram" }, "display.mode"},
		{"no scene", func(c *Config) { c.Scene.Path = "" }, "scene.path"},
		{"tiny terrain", func(c *Config) { c.Scene.Procedural = true; c.Scene.TerrainSize = 1 }, "terrain_size"},
		{"long fill", func(c *Config) { c.Scene.Procedural = true; c.Scene.TerrainFill = "##" }, "terrain_fill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %s", err, tt.want)
			}
		})
	}

	cfg := Default()
	cfg.Scene.Path = ""
	cfg.Scene.Procedural = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("procedural config without path should be valid: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("render:\n  fps: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "scene flag overrides procedural",
			setup: func() {
				*flagScene = "data/cube.yaml"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "data/cube.yaml" || cfg.Scene.Procedural {
					t.Errorf("scene = %+v", cfg.Scene)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name: "procedural and seed flags",
			setup: func() {
				*flagProcedural = true
				*flagSeed = 1234
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Scene.Procedural || cfg.Scene.Seed != 1234 {
					t.Errorf("scene = %+v", cfg.Scene)
				}
			},
			teardown: func() {
				*flagProcedural = false
				*flagSeed = 0
			},
		},
		{
			name: "display and addr flags",
			setup: func() {
				*flagDisplay = DisplayWindow
				*flagAddr = ":8080"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Display.Mode != DisplayWindow {
					t.Errorf("expected window mode, got %s", cfg.Display.Mode)
				}
				if cfg.Network.Addr != ":8080" {
					t.Errorf("expected addr :8080, got %s", cfg.Network.Addr)
				}
			},
			teardown: func() {
				*flagDisplay = ""
				*flagAddr = ""
			},
		},
		{
			name: "fps and spin flags",
			setup: func() {
				*flagFPS = 60
				*flagSpin = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.FPS != 60 || !cfg.Render.Spin {
					t.Errorf("render = %+v", cfg.Render)
				}
			},
			teardown: func() {
				*flagFPS = 0
				*flagSpin = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
render:
  fps: 15
  spin_step: 0.1
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFPS = 40
	defer func() {
		*flagConfig = ""
		*flagFPS = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// FPS from flag, not file
	if cfg.Render.FPS != 40 {
		t.Errorf("expected fps 40 from flag, got %d", cfg.Render.FPS)
	}
	// Spin step from file since no flag overrides it
	if cfg.Render.SpinStep != 0.1 {
		t.Errorf("expected spin step 0.1 from file, got %v", cfg.Render.SpinStep)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("display:\n  mode: hologram\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject an invalid display mode")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.Procedural = true
	cfg.Camera.Position = [3]float64{1, 2, 3}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config failed: %v", err)
	}
	if !loaded.Scene.Procedural || loaded.Camera.Position != [3]float64{1, 2, 3} {
		t.Errorf("saved config not reloaded: %+v %+v", loaded.Scene, loaded.Camera)
	}
}

func TestSaveToConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME is linux only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())

	cfg := Default()
	cfg.Render.FPS = 12
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := findConfigFile()
	if path != filepath.Join(ConfigDir(), "config.yaml") {
		t.Fatalf("findConfigFile = %q, want the saved file", path)
	}
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config failed: %v", err)
	}
	if loaded.Render.FPS != 12 {
		t.Errorf("fps = %d, want 12", loaded.Render.FPS)
	}
}
