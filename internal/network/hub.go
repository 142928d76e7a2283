package network

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/ascii3d/internal/engine/input"
	"github.com/Faultbox/ascii3d/internal/engine/raster"
	"github.com/Faultbox/ascii3d/internal/logger"
)

// Hub maintains the set of active clients and broadcasts frames to them.
// Key events from any client go to a shared mailbox.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound messages for every client.
	broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	keys  *input.Mailbox
	count atomic.Int32

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewHub creates a hub that posts remote key presses to keys.
func NewHub(keys *input.Mailbox) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		keys:       keys,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run serves the hub until ctx is cancelled or Close is called.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	defer func() {
		for client := range h.clients {
			delete(h.clients, client)
			close(client.send)
		}
		h.count.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.stop:
			return
		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int32(len(h.clients)))
			logger.Debug("viewer connected", zap.String("remote", client.remote), zap.Int("clients", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.count.Store(int32(len(h.clients)))
				logger.Debug("viewer disconnected", zap.String("remote", client.remote), zap.Int("clients", len(h.clients)))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					close(client.send)
					delete(h.clients, client)
					h.count.Store(int32(len(h.clients)))
					logger.Warn("dropping slow viewer", zap.String("remote", client.remote))
				}
			}
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Present implements display.Sink by broadcasting the frame as an event.
// Frames presented after the hub stopped are dropped.
func (h *Hub) Present(frame raster.Frame, status []string) error {
	if h.Clients() == 0 {
		return nil
	}
	msg, err := json.Marshal(NewFrameEvent(frame, status))
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	select {
	case h.broadcast <- msg:
		return nil
	case <-h.done:
		return nil
	}
}

// Close stops Run, which then disconnects every client.
func (h *Hub) Close() error {
	h.stopOnce.Do(func() { close(h.stop) })
	return nil
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// handleEvent applies an event received from a client.
func (h *Hub) handleEvent(e Event) {
	switch e.Name {
	case EventKey:
		key, err := DecodeKey(e)
		if err != nil {
			logger.Warn("bad key event", zap.Error(err))
			return
		}
		h.keys.Put(key)
	default:
		logger.Debug("ignoring event", zap.String("name", e.Name))
	}
}
