package formats

import (
	"fmt"
	"strconv"
	"strings"
)

// DAT record tags.
const (
	datTriangle = "TRI"
	datLine     = "LIN"

	// datNoBorder in the border slot of a TRI record means no outline.
	datNoBorder = 'N'
)

// ParseDAT parses the line-oriented scene format:
//
//	TRI{<border>}{<fill>}(x, y, z)(x, y, z)(x, y, z)
//	LIN{<char>}(x, y, z)(x, y, z)
//
// A border of N means none. Blank lines and lines starting with # are skipped.
func ParseDAT(data []byte) (*SceneFile, error) {
	scene := &SceneFile{}
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parseDATRecord(line)
		if err == nil {
			err = p.validate()
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		scene.Primitives = append(scene.Primitives, p)
	}
	if len(scene.Primitives) == 0 {
		return nil, ErrEmptyScene
	}
	return scene, nil
}

func parseDATRecord(line string) (Primitive, error) {
	if len(line) < 3 {
		return Primitive{}, fmt.Errorf("%w: %q", ErrUnknownRecord, line)
	}
	tag, rest := line[:3], line[3:]

	chars, rest, err := takeChars(rest)
	if err != nil {
		return Primitive{}, err
	}
	points, err := parsePoints(rest)
	if err != nil {
		return Primitive{}, err
	}

	switch tag {
	case datTriangle:
		if len(chars) != 2 {
			return Primitive{}, fmt.Errorf("%w: TRI needs {border}{fill}", ErrBadChar)
		}
		border := chars[0]
		if border == datNoBorder {
			border = 0
		}
		return Primitive{Kind: KindTriangle, Points: points, Border: border, Fill: chars[1]}, nil
	case datLine:
		if len(chars) != 1 {
			return Primitive{}, fmt.Errorf("%w: LIN needs {char}", ErrBadChar)
		}
		return Primitive{Kind: KindLine, Points: points, Stroke: chars[0]}, nil
	default:
		return Primitive{}, fmt.Errorf("%w: %q", ErrUnknownRecord, tag)
	}
}

// takeChars consumes leading {c} groups.
func takeChars(s string) ([]Char, string, error) {
	var chars []Char
	for strings.HasPrefix(s, "{") {
		// The character itself may be '}', so look past it.
		if len(s) < 3 || s[2] != '}' {
			return nil, "", fmt.Errorf("%w: %q", ErrBadChar, s)
		}
		chars = append(chars, Char(s[1]))
		s = s[3:]
	}
	return chars, s, nil
}

// parsePoints reads a sequence of (x, y, z) groups.
func parsePoints(s string) ([][3]float64, error) {
	var points [][3]float64
	for {
		s = strings.TrimSpace(s)
		if s == "" {
			return points, nil
		}
		if s[0] != '(' {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPoint, s)
		}
		end := strings.IndexByte(s, ')')
		if end < 0 {
			return nil, fmt.Errorf("%w: unclosed %q", ErrMalformedPoint, s)
		}

		fields := strings.Split(s[1:end], ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPoint, s[:end+1])
		}
		var p [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPoint, err)
			}
			p[i] = v
		}
		points = append(points, p)
		s = s[end+1:]
	}
}
