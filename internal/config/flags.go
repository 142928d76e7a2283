package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Scene file (.dat or .yaml)")
	flagProcedural = flag.Bool("procedural", false, "Generate random terrain instead of loading a scene")
	flagSeed       = flag.Int64("seed", 0, "Terrain seed")
	flagDisplay    = flag.String("display", "", "Display mode: terminal, text, window or none")
	flagAddr       = flag.String("addr", "", "Serve frames to browsers on this address, e.g. :8080")
	flagFPS        = flag.Int("fps", 0, "Frames per second")
	flagSpin       = flag.Bool("spin", false, "Start with the world spinning")
	flagWrite      = flag.String("write-config", "", "Write the effective config to this path and exit")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WritePath returns the path given via --write-config.
func WritePath() string {
	return *flagWrite
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
		cfg.Scene.Procedural = false
	}
	if *flagProcedural {
		cfg.Scene.Procedural = true
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagDisplay != "" {
		cfg.Display.Mode = *flagDisplay
	}
	if *flagAddr != "" {
		cfg.Network.Addr = *flagAddr
	}
	if *flagFPS > 0 {
		cfg.Render.FPS = *flagFPS
	}
	if *flagSpin {
		cfg.Render.Spin = true
	}
}
