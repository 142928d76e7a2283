// Package network streams rendered frames to browsers over websockets and
// accepts their key presses as viewer input.
package network

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/Faultbox/ascii3d/internal/engine/display"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
)

// Event names.
const (
	EventFrame = "frame"
	EventKey   = "key"
)

// ErrBadKey is returned for key events that do not carry a single ASCII key.
var ErrBadKey = errors.New("key event must carry one ASCII character")

// Event is the struct sent and received from the clients
type Event struct {
	Name string      `json:"name"`
	Data interface{} `json:"data"`
}

// FrameData is the payload of a frame event. Rows are top of the picture
// first.
type FrameData struct {
	Rows   []string `json:"rows" mapstructure:"rows"`
	Status []string `json:"status" mapstructure:"status"`
}

// KeyData is the payload of a key event.
type KeyData struct {
	Key string `json:"key" mapstructure:"key"`
}

// NewFrameEvent wraps a frame and its status lines.
func NewFrameEvent(frame raster.Frame, status []string) Event {
	return Event{Name: EventFrame, Data: FrameData{Rows: display.Rows(frame), Status: status}}
}

// DecodeKey extracts the key from a key event.
func DecodeKey(e Event) (byte, error) {
	var data KeyData
	if err := mapstructure.Decode(e.Data, &data); err != nil {
		return 0, fmt.Errorf("decoding key event: %w", err)
	}
	if len(data.Key) != 1 || data.Key[0] >= 0x80 {
		return 0, fmt.Errorf("%w: %q", ErrBadKey, data.Key)
	}
	return data.Key[0], nil
}
