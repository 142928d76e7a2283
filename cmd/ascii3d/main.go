// Package main is the entry point for the ascii3d viewer.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	gomath "math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/config"
	"github.com/Faultbox/ascii3d/internal/engine/camera"
	"github.com/Faultbox/ascii3d/internal/engine/debug"
	"github.com/Faultbox/ascii3d/internal/engine/display"
	"github.com/Faultbox/ascii3d/internal/engine/input"
	"github.com/Faultbox/ascii3d/internal/engine/scene"
	"github.com/Faultbox/ascii3d/internal/engine/terrain"
	"github.com/Faultbox/ascii3d/internal/logger"
	"github.com/Faultbox/ascii3d/internal/network"
	"github.com/Faultbox/ascii3d/internal/viewer"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// eyeHeight is how far above procedural terrain the camera starts.
const eyeHeight = 100.0

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WritePath(); path != "" || config.SaveRequested() {
		save := cfg.Save
		if path != "" {
			save = func() error { return cfg.SaveTo(path) }
		}
		if err := save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize logger. The terminal and text displays own stdout, so the
	// console log is only kept for the window and headless modes.
	var err error
	if cfg.Display.Mode == config.DisplayWindow || cfg.Display.Mode == config.DisplayNone {
		err = logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	} else {
		err = logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(cfg.Logging.LogFile), false)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== ascii3d ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cam := camera.New(math.Point3{X: cfg.Camera.Position[0], Y: cfg.Camera.Position[1], Z: cfg.Camera.Position[2]})
	cam.Rotate(cfg.Camera.Yaw*gomath.Pi/180, cfg.Camera.Pitch*gomath.Pi/180)

	shapes, err := loadShapes(cfg, cam)
	if err != nil {
		return err
	}

	keys := input.NewMailbox()
	var (
		sinks  []display.Sink
		poller *input.TermboxPoller
	)

	switch cfg.Display.Mode {
	case config.DisplayTerminal:
		term, err := display.NewTerminal()
		if err != nil {
			return err
		}
		poller = input.NewTermboxPoller(keys)
		go poller.Run()
		sinks = append(sinks, term)

	case config.DisplayText:
		sinks = append(sinks, display.NewWriter(os.Stdout, cfg.Display.Clear))

	case config.DisplayWindow:
		win, err := display.NewWindow(display.WindowConfig{
			Title:      "ascii3d",
			CellWidth:  cfg.Display.CellWidth,
			CellHeight: cfg.Display.CellHeight,
			VSync:      cfg.Display.VSync,
			Software:   cfg.Display.Software,
		})
		if err != nil {
			return fmt.Errorf("failed to create window: %w", err)
		}
		sinks = append(sinks, win)
	}

	if cfg.Network.Addr != "" {
		hub := network.NewHub(keys)
		go hub.Run(ctx)
		go func() {
			if err := network.ListenAndServe(ctx, cfg.Network.Addr, hub); err != nil {
				logger.Error("websocket server stopped", zap.Error(err))
				stop()
			}
		}()
		sinks = append(sinks, hub)
	}

	if len(sinks) == 0 {
		return errors.New("nothing to display: display.mode is none and network.addr is empty")
	}

	opts := viewer.Options{
		FPS:        cfg.Render.FPS,
		Flat:       cfg.Render.Flat,
		Spin:       cfg.Render.Spin,
		SpinAxis:   spinAxis(cfg.Render.SpinAxis),
		SpinStep:   cfg.Render.SpinStep,
		SpinCenter: math.Point3{X: cfg.Render.SpinCenter[0], Y: cfg.Render.SpinCenter[1], Z: cfg.Render.SpinCenter[2]},
	}
	if cfg.Render.SnapshotDir != "" {
		opts.Snapshots = debug.NewSnapshots(cfg.Render.SnapshotDir, "ascii3d")
		opts.SnapshotCell = image.Pt(cfg.Display.CellWidth, cfg.Display.CellHeight)
	}
	v := viewer.New(shapes, cam, keys, sinks, opts)
	defer func() {
		// Stop polling before the terminal is restored.
		if poller != nil {
			poller.Stop()
		}
		if err := v.Close(); err != nil {
			logger.Warn("closing displays", zap.Error(err))
		}
	}()

	return v.Run(ctx)
}

// loadShapes reads the configured scene or generates terrain. For terrain
// the camera is lifted above the ground under it.
func loadShapes(cfg *config.Config, cam *camera.Camera) ([]scene.Shape, error) {
	if !cfg.Scene.Procedural {
		shapes, err := scene.Load(cfg.Scene.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("scene loaded", zap.String("path", cfg.Scene.Path), zap.Int("shapes", len(shapes)))
		return shapes, nil
	}

	seed := cfg.Scene.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	hm := terrain.Generate(cfg.Scene.TerrainSize, terrain.DefaultSpacing, rand.New(rand.NewSource(seed)))
	shapes := hm.Mesh(cfg.Scene.TerrainFill[0])
	cam.Pos.Y = gomath.Max(cam.Pos.Y, hm.HeightAt(cam.Pos.X, cam.Pos.Z)+eyeHeight)

	logger.Info("terrain generated",
		zap.Int64("seed", seed),
		zap.Int("size", hm.Size),
		zap.Int("shapes", len(shapes)),
	)
	return shapes, nil
}

func spinAxis(name string) scene.Axis {
	switch name {
	case "x":
		return scene.AxisX
	case "z":
		return scene.AxisZ
	default:
		return scene.AxisY
	}
}
