package tui

import (
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func TestHostScheduleReplacesPending(t *testing.T) {
	h := NewHost(10, 5)

	var ran []int
	h.Schedule(func() { ran = append(ran, 1) })
	h.Schedule(func() { ran = append(ran, 2) })

	if !h.RunFrame() {
		t.Fatal("RunFrame() = false, expected a pending frame")
	}
	if len(ran) != 1 || ran[0] != 2 {
		t.Errorf("ran = %v, expected [2]", ran)
	}
	if h.RunFrame() {
		t.Error("RunFrame() = true after the queue was drained")
	}
}

func TestHostCancel(t *testing.T) {
	h := NewHost(10, 5)

	cancelOld := h.Schedule(func() {})
	h.Schedule(func() {})

	// A stale cancel must not drop the newer frame.
	cancelOld()
	if !h.HasPending() {
		t.Fatal("stale cancel removed the current frame")
	}

	cancel := h.Schedule(func() {})
	cancel()
	if h.HasPending() {
		t.Error("cancel did not remove the pending frame")
	}
}

func TestHostFrameSchedulesNext(t *testing.T) {
	h := NewHost(10, 5)

	count := 0
	var frame func()
	frame = func() {
		count++
		h.Schedule(frame)
	}
	h.Schedule(frame)

	for range 3 {
		h.RunFrame()
	}
	if count != 3 {
		t.Errorf("count = %d, expected 3 (one frame per tick)", count)
	}
	if !h.HasPending() {
		t.Error("expected the next frame to be queued")
	}
}

func TestHostDispatch(t *testing.T) {
	h := NewHost(10, 5)

	var got []core.KeyEvent
	unsubscribe := h.Subscribe(func(ev core.KeyEvent) { got = append(got, ev) })

	h.Dispatch(core.Press(core.ActionLeft), core.Release(core.ActionLeft))
	if len(got) != 2 {
		t.Fatalf("got %d events, expected 2", len(got))
	}
	if got[1] != core.Release(core.ActionLeft) {
		t.Errorf("second event = %+v, expected left release", got[1])
	}

	unsubscribe()
	if h.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, expected 0", h.Subscribers())
	}
	h.Dispatch(core.Press(core.ActionRight))
	if len(got) != 2 {
		t.Error("handler received events after unsubscribe")
	}
}

func TestHostResize(t *testing.T) {
	h := NewHost(10, 5)
	h.Resize(40, -3)

	if h.Screen().Width() != 40 || h.Screen().Height() != 0 {
		t.Errorf("screen = %dx%d, expected 40x0", h.Screen().Width(), h.Screen().Height())
	}
}
