package tui

import (
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Host adapts the Bubble Tea loop to the engine's collaborators: it is the
// drawing surface, the frame scheduler and the input source. It is only
// touched from the Bubble Tea update goroutine.
type Host struct {
	screen *core.Screen

	pending   func()
	pendingID uint64

	handlers    map[uint64]func(core.KeyEvent)
	nextHandler uint64
}

// NewHost creates a host with a screen of the given size.
func NewHost(width, height int) *Host {
	return &Host{
		screen:   core.NewScreen(max(width, 0), max(height, 0)),
		handlers: make(map[uint64]func(core.KeyEvent)),
	}
}

// Screen returns the drawing buffer.
func (h *Host) Screen() *core.Screen {
	return h.screen
}

// Resize changes the drawing buffer size.
func (h *Host) Resize(width, height int) {
	h.screen.Resize(max(width, 0), max(height, 0))
}

// Schedule queues frame for the next tick, replacing any queued frame.
func (h *Host) Schedule(frame func()) func() {
	h.pendingID++
	id := h.pendingID
	h.pending = frame
	return func() {
		if h.pendingID == id {
			h.pending = nil
		}
	}
}

// HasPending reports whether a frame is queued.
func (h *Host) HasPending() bool {
	return h.pending != nil
}

// RunFrame runs the queued frame, if any. Frames scheduled while it runs wait
// for the next tick.
func (h *Host) RunFrame() bool {
	frame := h.pending
	if frame == nil {
		return false
	}
	h.pending = nil
	frame()
	return true
}

// Subscribe registers an input handler.
func (h *Host) Subscribe(handler func(core.KeyEvent)) func() {
	h.nextHandler++
	id := h.nextHandler
	h.handlers[id] = handler
	return func() {
		delete(h.handlers, id)
	}
}

// Subscribers returns the number of registered input handlers.
func (h *Host) Subscribers() int {
	return len(h.handlers)
}

// Dispatch delivers key events to every handler.
func (h *Host) Dispatch(events ...core.KeyEvent) {
	for _, ev := range events {
		for _, handler := range h.handlers {
			handler(ev)
		}
	}
}
