package display

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/engine/input"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/internal/logger"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// WindowConfig holds SDL window settings.
type WindowConfig struct {
	Title      string
	CellWidth  int
	CellHeight int
	VSync      bool
	Software   bool // use the software renderer instead of the GPU
}

// Window draws each non-blank cell as a gray rectangle in an SDL window.
type Window struct {
	config   WindowConfig
	window   *sdl.Window
	renderer *sdl.Renderer
	rect     sdl.Rect
}

// NewWindow opens a window sized to the frame.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 6
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 12
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	w := &Window{config: cfg}
	width := int32(raster.Width * cfg.CellWidth)
	height := int32(raster.Height * cfg.CellHeight)

	var err error
	w.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.Software {
		flags = sdl.RENDERER_SOFTWARE
	}
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, flags)
	if err != nil {
		w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Bool("vsync", cfg.VSync),
		zap.Bool("software", cfg.Software),
	)
	return w, nil
}

// Present implements Sink. Status lines go to the window title.
func (w *Window) Present(frame raster.Frame, status []string) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("setting draw color: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing window: %w", err)
	}

	cw, ch := int32(w.config.CellWidth), int32(w.config.CellHeight)
	for row, line := range Rows(frame) {
		for x := 0; x < len(line); x++ {
			if line[x] == raster.Blank {
				continue
			}
			g := gray(line[x])
			if err := w.renderer.SetDrawColor(g, g, g, 255); err != nil {
				return fmt.Errorf("setting draw color: %w", err)
			}
			w.rect = sdl.Rect{X: int32(x) * cw, Y: int32(row) * ch, W: cw, H: ch}
			if err := w.renderer.FillRect(&w.rect); err != nil {
				return fmt.Errorf("drawing cell: %w", err)
			}
		}
	}
	w.renderer.Present()

	if len(status) > 0 {
		w.window.SetTitle(w.config.Title + " | " + strings.Join(status, " | "))
	}
	return nil
}

// PollInput forwards pending SDL key presses to mb.
func (w *Window) PollInput(mb *input.Mailbox) {
	input.PollSDL(mb)
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() error {
	logger.Info("closing window")
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
	return nil
}

// gray converts a cell character to an 8-bit gray value.
func gray(c byte) uint8 {
	return uint8(Shade(c) * 255 / (Shades - 1))
}
