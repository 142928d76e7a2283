package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// PollSDL drains pending SDL events and posts key presses to mb. A window
// close request is posted as KeyEscape. It must run on the thread that owns
// the SDL window.
func PollSDL(mb *Mailbox) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			mb.Put(KeyEscape)

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if key, ok := sdlKey(e.Keysym.Sym); ok {
				mb.Put(key)
			}
		}
	}
}

// sdlKey converts a keycode to its ASCII key. SDL keycodes for printable
// keys and Esc are their ASCII values.
func sdlKey(sym sdl.Keycode) (byte, bool) {
	if sym > 0 && sym < 0x80 {
		return byte(sym), true
	}
	return 0, false
}
