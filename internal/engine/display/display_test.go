package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Faultbox/ascii3d/internal/engine/raster"
)

func sampleFrame() *raster.Grid {
	g := raster.NewGrid()
	g.Set(0, 0, 'a')                            // bottom left
	g.Set(raster.Width-1, raster.Height-1, 'z') // top right
	return g
}

func TestRowsTopFirst(t *testing.T) {
	rows := Rows(sampleFrame())

	if len(rows) != raster.Height {
		t.Fatalf("got %d rows, want %d", len(rows), raster.Height)
	}
	if rows[0][raster.Width-1] != 'z' {
		t.Errorf("top row = %q, want 'z' at the right edge", rows[0])
	}
	if rows[raster.Height-1][0] != 'a' {
		t.Errorf("bottom row = %q, want 'a' at the left edge", rows[raster.Height-1])
	}
	for i, r := range rows {
		if len(r) != raster.Width {
			t.Fatalf("row %d has width %d", i, len(r))
		}
	}
}

func TestFormat(t *testing.T) {
	out := Format(sampleFrame(), []string{"POS: (0, 0, 0)", "ROT: (0, 0, 0)"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if want := raster.Height + 4; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}

	border := strings.Repeat("=", raster.Width+2)
	if lines[0] != border || lines[raster.Height+1] != border {
		t.Errorf("frame not enclosed by '=' rows of width %d", raster.Width+2)
	}
	if lines[1][raster.Width-1] != 'z' || lines[raster.Height][0] != 'a' {
		t.Error("picture rows not printed bottom row last")
	}
	if lines[raster.Height+2] != "POS: (0, 0, 0)" || lines[raster.Height+3] != "ROT: (0, 0, 0)" {
		t.Errorf("status lines = %q", lines[raster.Height+2:])
	}
}

func TestWriterPresent(t *testing.T) {
	tests := []struct {
		name  string
		clear bool
	}{
		{"plain", false},
		{"clear", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf, tt.clear)

			if err := w.Present(sampleFrame(), []string{"status"}); err != nil {
				t.Fatalf("Present failed: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}

			out := buf.String()
			if got := strings.HasPrefix(out, clearScreen); got != tt.clear {
				t.Errorf("clear prefix present = %v, want %v", got, tt.clear)
			}
			if !strings.HasSuffix(out, Format(sampleFrame(), []string{"status"})) {
				t.Error("writer output does not end with the formatted frame")
			}
		})
	}
}

func TestShade(t *testing.T) {
	if Shade(raster.Blank) != 0 {
		t.Errorf("blank shade = %d, want 0", Shade(raster.Blank))
	}

	prev := 0
	for i := 0; i < len(ramp); i++ {
		s := Shade(ramp[i])
		if s <= prev || s >= Shades {
			t.Errorf("Shade(%q) = %d, want increasing and below %d", ramp[i], s, Shades)
		}
		prev = s
	}
	if Shade('@') != Shades-1 {
		t.Errorf("densest shade = %d, want %d", Shade('@'), Shades-1)
	}
	if s := Shade('A'); s != Shades/2 {
		t.Errorf("off-ramp shade = %d, want %d", s, Shades/2)
	}
	if gray('@') != 255 || gray(raster.Blank) != 0 {
		t.Errorf("gray range = %d..%d", gray(raster.Blank), gray('@'))
	}
}
