package doodle

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

const eps = 1e-9

func near(a, b float64) bool {
	d := a - b
	return d < eps && d > -eps
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSeed(42)}, opts...)
	return New(config.DefaultDoodleConfig(), opts...)
}

// manualScheduler queues frames until the test fires them.
type manualScheduler struct {
	pending   map[int]func()
	next      int
	cancelled int
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{pending: make(map[int]func())}
}

func (s *manualScheduler) Schedule(frame func()) func() {
	s.next++
	id := s.next
	s.pending[id] = frame
	return func() {
		if _, ok := s.pending[id]; ok {
			delete(s.pending, id)
			s.cancelled++
		}
	}
}

// Tick runs every frame that was pending before the call.
func (s *manualScheduler) Tick() {
	frames := s.pending
	s.pending = make(map[int]func())
	for _, f := range frames {
		f()
	}
}

func (s *manualScheduler) Pending() int {
	return len(s.pending)
}

// fakeInput fans key events out to its subscribers.
type fakeInput struct {
	handlers map[int]func(core.KeyEvent)
	next     int
}

func newFakeInput() *fakeInput {
	return &fakeInput{handlers: make(map[int]func(core.KeyEvent))}
}

func (in *fakeInput) Subscribe(h func(core.KeyEvent)) func() {
	in.next++
	id := in.next
	in.handlers[id] = h
	return func() { delete(in.handlers, id) }
}

func (in *fakeInput) Send(ev core.KeyEvent) {
	for _, h := range in.handlers {
		h(ev)
	}
}

type fakeSurface struct {
	screen *core.Screen
}

func (s fakeSurface) Screen() *core.Screen {
	return s.screen
}

// ptrSurface has a pointer receiver, so a nil *ptrSurface panics on Screen.
type ptrSurface struct {
	screen *core.Screen
}

func (s *ptrSurface) Screen() *core.Screen {
	return s.screen
}
