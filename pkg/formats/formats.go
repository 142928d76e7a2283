// Package formats provides parsers for scene description files.
//
// Two encodings describe the same SceneFile: the line-oriented .dat format
// (dat.go) and a YAML document (yaml.go).
package formats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scene format errors.
var (
	ErrUnknownRecord  = errors.New("unknown record tag")
	ErrMalformedPoint = errors.New("malformed point")
	ErrPointCount     = errors.New("wrong number of points")
	ErrBadChar        = errors.New("character must be a single printable ASCII byte")
	ErrEmptyScene     = errors.New("scene has no primitives")
)

// Kind names a primitive shape.
type Kind string

// Primitive kinds.
const (
	KindTriangle Kind = "triangle"
	KindLine     Kind = "line"
)

// Char is a single printable ASCII character. The zero value means "none".
type Char byte

func (c Char) valid() bool {
	return c == 0 || (c >= 0x20 && c < 0x7f)
}

// Primitive is one triangle or line as written in a scene file.
type Primitive struct {
	Kind   Kind         `yaml:"kind"`
	Points [][3]float64 `yaml:"points"`

	// Triangles
	Fill   Char `yaml:"fill,omitempty"`
	Border Char `yaml:"border,omitempty"`

	// Lines
	Stroke Char `yaml:"char,omitempty"`
}

// SceneFile is a parsed scene description.
type SceneFile struct {
	Primitives []Primitive `yaml:"primitives"`
}

// Counts returns the number of triangles and lines.
func (s *SceneFile) Counts() (triangles, lines int) {
	for _, p := range s.Primitives {
		switch p.Kind {
		case KindTriangle:
			triangles++
		case KindLine:
			lines++
		}
	}
	return triangles, lines
}

// Validate checks point counts and characters of every primitive.
func (s *SceneFile) Validate() error {
	if len(s.Primitives) == 0 {
		return ErrEmptyScene
	}
	for i, p := range s.Primitives {
		if err := p.validate(); err != nil {
			return fmt.Errorf("primitive %d: %w", i, err)
		}
	}
	return nil
}

func (p *Primitive) validate() error {
	var want int
	switch p.Kind {
	case KindTriangle:
		want = 3
		if p.Fill == 0 {
			return fmt.Errorf("%w: triangle without fill", ErrBadChar)
		}
	case KindLine:
		want = 2
		if p.Stroke == 0 {
			return fmt.Errorf("%w: line without char", ErrBadChar)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecord, p.Kind)
	}
	if len(p.Points) != want {
		return fmt.Errorf("%w: %s has %d, want %d", ErrPointCount, p.Kind, len(p.Points), want)
	}
	for _, c := range []Char{p.Fill, p.Border, p.Stroke} {
		if !c.valid() {
			return fmt.Errorf("%w: %q", ErrBadChar, byte(c))
		}
	}
	return nil
}

// ParseSceneFile reads a scene from disk, choosing the parser by extension:
// .yaml and .yml are YAML, anything else is the .dat format.
func ParseSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseSceneYAML(data)
	default:
		return ParseDAT(data)
	}
}
