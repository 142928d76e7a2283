// Package input maps keys to viewer actions and carries the most recent key
// from an input source to the frame loop.
package input

import (
	"sync"
)

// KeyEscape is the key posted for Esc and for window close requests.
const KeyEscape byte = 0x1b

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionToggleSpin
	ActionSnapshot
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:       "none",
	ActionForward:    "forward",
	ActionBack:       "back",
	ActionLeft:       "left",
	ActionRight:      "right",
	ActionUp:         "up",
	ActionDown:       "down",
	ActionYawLeft:    "yaw-left",
	ActionYawRight:   "yaw-right",
	ActionPitchUp:    "pitch-up",
	ActionPitchDown:  "pitch-down",
	ActionToggleSpin: "toggle-spin",
	ActionSnapshot:   "snapshot",
	ActionQuit:       "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// ActionFor returns the action bound to key, or ActionNone.
func ActionFor(key byte) Action {
	switch key {
	case 'w':
		return ActionForward
	case 's':
		return ActionBack
	case 'a':
		return ActionLeft
	case 'd':
		return ActionRight
	case 'x':
		return ActionUp
	case 'z':
		return ActionDown
	case 'h':
		return ActionYawLeft
	case 'l':
		return ActionYawRight
	case 'k':
		return ActionPitchUp
	case 'j':
		return ActionPitchDown
	case 'r':
		return ActionToggleSpin
	case 'p':
		return ActionSnapshot
	case 'q', KeyEscape:
		return ActionQuit
	}
	return ActionNone
}

// Mailbox holds the most recent key. Put overwrites any key not yet taken,
// so a slow frame loop never falls behind a fast key repeat.
type Mailbox struct {
	mu  sync.Mutex
	key byte
	ok  bool
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Put stores key, replacing any pending one. It never blocks.
func (m *Mailbox) Put(key byte) {
	m.mu.Lock()
	m.key, m.ok = key, true
	m.mu.Unlock()
}

// Take removes and returns the pending key.
func (m *Mailbox) Take() (byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, ok := m.key, m.ok
	m.key, m.ok = 0, false
	return key, ok
}
