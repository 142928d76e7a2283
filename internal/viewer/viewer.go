// Package viewer runs the frame loop: it applies keys to the camera, moves
// the world, renders the scene and hands each frame to the display sinks.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/engine/camera"
	"github.com/Faultbox/ascii3d/internal/engine/debug"
	"github.com/Faultbox/ascii3d/internal/engine/display"
	"github.com/Faultbox/ascii3d/internal/engine/input"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/internal/engine/scene"
	"github.com/Faultbox/ascii3d/internal/logger"
	"github.com/Faultbox/ascii3d/pkg/math"
)

// Options controls the frame loop.
type Options struct {
	FPS        int
	Flat       bool // painter's order into a flat grid, no depth buffer
	Spin       bool
	SpinAxis   scene.Axis
	SpinStep   float64 // radians per frame
	SpinCenter math.Point3

	// Snapshots receives frames captured with the snapshot key. Nil
	// disables capture. A non-zero SnapshotCell also writes an image with
	// that many pixels per cell.
	Snapshots    *debug.Snapshots
	SnapshotCell image.Point
}

// inputPoller is implemented by sinks that also own an input device and
// must be polled from the frame loop's thread.
type inputPoller interface {
	PollInput(mb *input.Mailbox)
}

// anchors are the fixed reference points of the position check on the
// status line.
var anchors = [4]math.Point3{
	{X: 0, Y: 0, Z: 0},
	{X: 1000, Y: 0, Z: 0},
	{X: 0, Y: 1000, Z: 0},
	{X: 0, Y: 0, Z: 1000},
}

// Viewer owns the scene, the camera and the display sinks.
type Viewer struct {
	opts   Options
	shapes []scene.Shape
	cam    *camera.Camera
	keys   *input.Mailbox
	sinks  []display.Sink
	spin   bool
	snap   bool
	log    *zap.Logger
}

// New creates a viewer. The viewer mutates shapes in place when spinning.
func New(shapes []scene.Shape, cam *camera.Camera, keys *input.Mailbox, sinks []display.Sink, opts Options) *Viewer {
	if opts.FPS <= 0 {
		opts.FPS = 20
	}
	return &Viewer{
		opts:   opts,
		shapes: shapes,
		cam:    cam,
		keys:   keys,
		sinks:  sinks,
		spin:   opts.Spin,
		log:    logger.Named("viewer"),
	}
}

// Run draws frames until the quit key is pressed or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	delay := time.Second / time.Duration(v.opts.FPS)

	v.log.Info("frame loop started",
		zap.Int("shapes", len(v.shapes)),
		zap.Int("fps", v.opts.FPS),
		zap.Int("sinks", len(v.sinks)),
	)

	frames := 0
	fpsTimer := time.Now()
	for {
		start := time.Now()

		quit, err := v.Step()
		if err != nil {
			return err
		}
		if quit {
			v.log.Info("quit requested")
			return nil
		}

		frames++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frames), zap.Stringer("camera", v.cam))
			frames = 0
			fpsTimer = time.Now()
		}

		select {
		case <-ctx.Done():
			v.log.Info("frame loop cancelled")
			return nil
		case <-time.After(delay - time.Since(start)):
		}
	}
}

// Step runs one frame: poll input, apply the latest key, move the world,
// render and present. quit reports that the quit key was pressed, in which
// case nothing is drawn.
func (v *Viewer) Step() (quit bool, err error) {
	for _, s := range v.sinks {
		if p, ok := s.(inputPoller); ok {
			p.PollInput(v.keys)
		}
	}

	if key, ok := v.keys.Take(); ok {
		if !v.Apply(input.ActionFor(key)) {
			return true, nil
		}
	}

	if v.spin {
		scene.Rotate(v.shapes, v.opts.SpinAxis, v.opts.SpinCenter, v.opts.SpinStep)
	}

	frame := v.Frame()
	status := v.Status()
	if v.snap {
		v.snap = false
		v.capture(frame, status)
	}
	for _, s := range v.sinks {
		if err := s.Present(frame, status); err != nil {
			return false, fmt.Errorf("presenting frame: %w", err)
		}
	}
	return false, nil
}

// capture writes the frame to the snapshot directory. Failures are logged
// and do not stop the loop.
func (v *Viewer) capture(frame raster.Frame, status []string) {
	if v.opts.Snapshots == nil {
		return
	}
	name, err := v.opts.Snapshots.Capture(frame, status)
	if err != nil {
		v.log.Warn("snapshot failed", zap.Error(err))
		return
	}
	v.log.Info("snapshot saved", zap.String("file", name))

	if cell := v.opts.SnapshotCell; cell.X > 0 && cell.Y > 0 {
		name, err := v.opts.Snapshots.CapturePNG(frame, cell.X, cell.Y)
		if err != nil {
			v.log.Warn("snapshot image failed", zap.Error(err))
			return
		}
		v.log.Info("snapshot saved", zap.String("file", name))
	}
}

// Apply performs one action. It returns false for ActionQuit.
func (v *Viewer) Apply(a input.Action) bool {
	switch a {
	case input.ActionForward:
		v.cam.Move(camera.MoveStep, 0, 0)
	case input.ActionBack:
		v.cam.Move(-camera.MoveStep, 0, 0)
	case input.ActionLeft:
		v.cam.Move(0, -camera.MoveStep, 0)
	case input.ActionRight:
		v.cam.Move(0, camera.MoveStep, 0)
	case input.ActionUp:
		v.cam.Move(0, 0, camera.ClimbStep)
	case input.ActionDown:
		v.cam.Move(0, 0, -camera.ClimbStep)
	case input.ActionYawLeft:
		v.cam.Rotate(camera.TurnStep, 0)
	case input.ActionYawRight:
		v.cam.Rotate(-camera.TurnStep, 0)
	case input.ActionPitchUp:
		v.cam.Rotate(0, camera.TurnStep)
	case input.ActionPitchDown:
		v.cam.Rotate(0, -camera.TurnStep)
	case input.ActionToggleSpin:
		v.spin = !v.spin
		v.log.Debug("spin toggled", zap.Bool("spin", v.spin))
	case input.ActionSnapshot:
		v.snap = true
	case input.ActionQuit:
		return false
	}
	return true
}

// Frame renders the scene from the current camera.
func (v *Viewer) Frame() raster.Frame {
	if v.opts.Flat {
		return scene.RenderFlat(v.shapes, v.cam)
	}
	return scene.Render(v.shapes, v.cam)
}

// Status returns the lines shown under the frame: camera position, rotation
// in degrees and the position recovered from anchor distances.
func (v *Viewer) Status() []string {
	pos, rot := v.cam.Pos, v.cam.RotationDegrees()
	lines := []string{
		fmt.Sprintf("POS: (%.1f, %.1f, %.1f)", pos.X, pos.Y, pos.Z),
		fmt.Sprintf("ROT: (%.1f, %.1f, %.1f)", rot.X, rot.Y, rot.Z),
	}

	var dist [4]float64
	for i, a := range anchors {
		dist[i] = a.Distance(pos)
	}
	if p, err := math.Trilaterate(anchors, dist); err == nil {
		lines = append(lines, fmt.Sprintf("TRI: (%.1f, %.1f, %.1f)", p.X, p.Y, p.Z))
	} else {
		lines = append(lines, "TRI: n/a")
	}
	return lines
}

// Spinning reports whether the world is currently rotating.
func (v *Viewer) Spinning() bool {
	return v.spin
}

// Camera returns the viewer's camera.
func (v *Viewer) Camera() *camera.Camera {
	return v.cam
}

// Close closes every sink.
func (v *Viewer) Close() error {
	var errs []error
	for _, s := range v.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
