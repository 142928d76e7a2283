// Package debug provides frame capture for inspecting rendered output.
package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/ascii3d/internal/engine/display"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
)

// Snapshots writes frames to timestamped files.
type Snapshots struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewSnapshots creates a capture handler writing into outputDir.
func NewSnapshots(outputDir, prefix string) *Snapshots {
	return &Snapshots{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Capture writes the frame and its status lines as text and returns the
// file name.
func (s *Snapshots) Capture(frame raster.Frame, status []string) (string, error) {
	filename, err := s.prepare("txt")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(display.Format(frame, status)), 0644); err != nil {
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	return filename, nil
}

// CapturePNG writes the frame as a grayscale image with cellW x cellH
// pixels per cell.
func (s *Snapshots) CapturePNG(frame raster.Frame, cellW, cellH int) (string, error) {
	if cellW <= 0 || cellH <= 0 {
		return "", fmt.Errorf("invalid cell size %dx%d", cellW, cellH)
	}
	filename, err := s.prepare("png")
	if err != nil {
		return "", err
	}

	img := image.NewGray(image.Rect(0, 0, raster.Width*cellW, raster.Height*cellH))
	for row := 0; row < raster.Height; row++ {
		// Row 0 of the image is the top of the screen.
		cells := frame.Row(raster.Height - 1 - row)
		for x, c := range cells {
			g := color.Gray{Y: uint8(display.Shade(c) * 255 / (display.Shades - 1))}
			for py := row * cellH; py < (row+1)*cellH; py++ {
				for px := x * cellW; px < (x+1)*cellW; px++ {
					img.SetGray(px, py, g)
				}
			}
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// GenerateFilename returns the name the next capture with ext would use.
func (s *Snapshots) GenerateFilename(ext string) string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", s.prefix, timestamp, ext)
	if s.outputDir != "" {
		filename = filepath.Join(s.outputDir, filename)
	}
	return filename
}

func (s *Snapshots) prepare(ext string) (string, error) {
	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	return s.GenerateFilename(ext), nil
}
