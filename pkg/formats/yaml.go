package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML reads a one-character string. An empty string is "none".
func (c *Char) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch len(s) {
	case 0:
		*c = 0
	case 1:
		*c = Char(s[0])
	default:
		return fmt.Errorf("%w: %q", ErrBadChar, s)
	}
	return nil
}

// MarshalYAML writes c as a one-character string.
func (c Char) MarshalYAML() (interface{}, error) {
	if c == 0 {
		return "", nil
	}
	return string([]byte{byte(c)}), nil
}

// ParseSceneYAML parses a YAML scene:
//
//	primitives:
//	  - kind: triangle
//	    points: [[0, 0, 300], [100, 0, 300], [0, 100, 300]]
//	    fill: "#"
//	    border: "*"
//	  - kind: line
//	    points: [[0, 0, 300], [0, 100, 300]]
//	    char: "|"
func ParseSceneYAML(data []byte) (*SceneFile, error) {
	scene := &SceneFile{}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("parsing YAML scene: %w", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

// MarshalSceneYAML encodes scene as YAML.
func MarshalSceneYAML(scene *SceneFile) ([]byte, error) {
	return yaml.Marshal(scene)
}
