package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/ascii3d/internal/engine/raster"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Writer prints frames as text.
type Writer struct {
	w     *bufio.Writer
	clear bool
}

// NewWriter creates a text sink. With clear set every frame starts with an
// ANSI clear so frames replace each other in a terminal.
func NewWriter(w io.Writer, clear bool) *Writer {
	return &Writer{w: bufio.NewWriter(w), clear: clear}
}

// Present implements Sink.
func (w *Writer) Present(frame raster.Frame, status []string) error {
	if w.clear {
		if _, err := w.w.WriteString(clearScreen); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}
	if _, err := w.w.WriteString(Format(frame, status)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close implements Sink.
func (w *Writer) Close() error {
	return w.w.Flush()
}
