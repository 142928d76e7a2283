package display

import (
	"fmt"

	"github.com/nsf/termbox-go"
	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/internal/logger"
)

// Terminal draws frames into a termbox screen in grayscale.
type Terminal struct {
	warned bool
}

// NewTerminal takes over the terminal. Call Close to restore it.
func NewTerminal() (*Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetOutputMode(termbox.OutputGrayscale)
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return &Terminal{}, nil
}

// Present implements Sink.
func (t *Terminal) Present(frame raster.Frame, status []string) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return fmt.Errorf("clearing terminal: %w", err)
	}

	if w, h := termbox.Size(); !t.warned && (w < raster.Width || h < raster.Height+len(status)) {
		logger.Warn("terminal smaller than frame",
			zap.Int("cols", w), zap.Int("rows", h),
			zap.Int("want_cols", raster.Width), zap.Int("want_rows", raster.Height+len(status)))
		t.warned = true
	}

	for row, line := range Rows(frame) {
		for x := 0; x < len(line); x++ {
			c := line[x]
			termbox.SetCell(x, row, rune(c), termbox.Attribute(Shade(c)+1), termbox.ColorDefault)
		}
	}
	for i, s := range status {
		for x, r := range s {
			termbox.SetCell(x, raster.Height+i, r, termbox.ColorDefault, termbox.ColorDefault)
		}
	}

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("flushing terminal: %w", err)
	}
	return nil
}

// Close implements Sink.
func (t *Terminal) Close() error {
	termbox.Close()
	return nil
}
