// Package display presents finished frames: as plain text, in a termbox
// terminal, or in an SDL window.
package display

import (
	"strings"

	"github.com/Faultbox/ascii3d/internal/engine/raster"
)

// Sink shows frames. status holds lines shown below the picture.
type Sink interface {
	Present(frame raster.Frame, status []string) error
	Close() error
}

// Rows returns the frame as strings, top of the picture first. Row 0 of a
// frame is the bottom, so rows come out in reverse order.
func Rows(frame raster.Frame) []string {
	rows := make([]string, raster.Height)
	for y := 0; y < raster.Height; y++ {
		rows[raster.Height-1-y] = string(frame.Row(y))
	}
	return rows
}

// Format renders the frame the way the Writer prints it: a row of '=', the
// picture, another row of '=', then the status lines.
func Format(frame raster.Frame, status []string) string {
	border := strings.Repeat("=", raster.Width+2)

	var b strings.Builder
	b.Grow((raster.Width + 1) * (raster.Height + 2 + len(status)))
	b.WriteString(border)
	b.WriteByte('\n')
	for _, row := range Rows(frame) {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString(border)
	b.WriteByte('\n')
	for _, s := range status {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}

// ramp orders characters from faint to dense.
const ramp = ".,-~:;=!*#$@"

// Shades is the number of distinct non-blank gray levels.
const Shades = 24

// Shade maps a cell character to a gray level in [0, Shades). Blank cells
// are 0; characters on the density ramp brighten along it; anything else
// sits in the middle.
func Shade(c byte) int {
	if c == raster.Blank {
		return 0
	}
	if i := strings.IndexByte(ramp, c); i >= 0 {
		return 4 + i*(Shades-5)/(len(ramp)-1)
	}
	return Shades / 2
}
