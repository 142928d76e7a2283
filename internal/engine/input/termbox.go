package input

import (
	"github.com/nsf/termbox-go"
	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/logger"
)

// TermboxPoller forwards terminal key presses to a mailbox. termbox must
// already be initialized.
type TermboxPoller struct {
	mb   *Mailbox
	done chan struct{}
}

// NewTermboxPoller creates a poller that posts to mb.
func NewTermboxPoller(mb *Mailbox) *TermboxPoller {
	return &TermboxPoller{mb: mb, done: make(chan struct{})}
}

// Run polls events until Stop is called or termbox reports an error.
func (p *TermboxPoller) Run() {
	defer close(p.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if key, ok := termboxKey(ev); ok {
				p.mb.Put(key)
			}
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			logger.Warn("terminal input failed", zap.Error(ev.Err))
			p.mb.Put(KeyEscape)
			return
		}
	}
}

// Stop interrupts Run and waits for it to return.
func (p *TermboxPoller) Stop() {
	select {
	case <-p.done:
		return
	default:
	}
	termbox.Interrupt()
	<-p.done
}

func termboxKey(ev termbox.Event) (byte, bool) {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return KeyEscape, true
	}
	if ev.Ch > 0 && ev.Ch < 0x80 {
		return byte(ev.Ch), true
	}
	return 0, false
}
