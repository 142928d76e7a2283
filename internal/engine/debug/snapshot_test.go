package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/ascii3d/internal/engine/raster"
)

func fixedSnapshots(dir string) *Snapshots {
	s := NewSnapshots(dir, "frame")
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC) }
	return s
}

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		dir  string
		ext  string
		want string
	}{
		{"", "txt", "frame_2024-03-01_12-30-45.000.txt"},
		{"out", "png", filepath.Join("out", "frame_2024-03-01_12-30-45.000.png")},
	}
	for _, tt := range tests {
		if got := fixedSnapshots(tt.dir).GenerateFilename(tt.ext); got != tt.want {
			t.Errorf("GenerateFilename(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestCaptureText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snaps")
	s := fixedSnapshots(dir)

	g := raster.NewGrid()
	g.Set(0, raster.Height-1, '#')

	name, err := s.Capture(g, []string{"POS: (0.0, 0.0, 0.0)"})
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("reading snapshot: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if !strings.HasPrefix(lines[1], "#") {
		t.Errorf("first picture row = %q, want top-left '#'", lines[1])
	}
	if lines[raster.Height+2] != "POS: (0.0, 0.0, 0.0)" {
		t.Errorf("status line = %q", lines[raster.Height+2])
	}
}

func TestCapturePNG(t *testing.T) {
	s := fixedSnapshots(t.TempDir())

	g := raster.NewGrid()
	g.Set(0, raster.Height-1, '@')

	name, err := s.CapturePNG(g, 2, 3)
	if err != nil {
		t.Fatalf("CapturePNG failed: %v", err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatalf("opening image: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding image: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != raster.Width*2 || b.Dy() != raster.Height*3 {
		t.Fatalf("image size = %dx%d", b.Dx(), b.Dy())
	}

	lit, _, _, _ := img.At(1, 2).RGBA()
	dark, _, _, _ := img.At(2, 0).RGBA()
	if lit == 0 {
		t.Error("top-left cell should be lit")
	}
	if dark != 0 {
		t.Error("blank cell should be black")
	}
}

func TestCapturePNGRejectsBadCellSize(t *testing.T) {
	if _, err := fixedSnapshots(t.TempDir()).CapturePNG(raster.NewGrid(), 0, 4); err == nil {
		t.Error("expected an error for a zero cell width")
	}
}
