package doodle

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

func TestMovementKeys(t *testing.T) {
	e := newTestEngine(t)
	a := &e.World().Actor

	steps := []struct {
		name   string
		ev     core.KeyEvent
		vx     float64
		facing Facing
	}{
		{"press right", core.Press(core.ActionRight), 4, FacingRight},
		{"press left overrides", core.Press(core.ActionLeft), -4, FacingLeft},
		{"stale right release is ignored", core.Release(core.ActionRight), -4, FacingLeft},
		{"left release stops", core.Release(core.ActionLeft), 0, FacingLeft},
		{"press right again", core.Press(core.ActionRight), 4, FacingRight},
		{"stale left release is ignored", core.Release(core.ActionLeft), 4, FacingRight},
		{"right release stops", core.Release(core.ActionRight), 0, FacingRight},
	}

	for _, s := range steps {
		e.HandleKey(s.ev)
		if a.VelocityX != s.vx || a.Facing != s.facing {
			t.Errorf("%s: velocity=%f facing=%s, expected %f/%s", s.name, a.VelocityX, a.Facing, s.vx, s.facing)
		}
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	e := newTestEngine(t)
	for i := 0; i < 30; i++ {
		e.Step()
	}
	w := e.World()
	y := w.Actor.WorldY

	e.HandleKey(core.Press(core.ActionRestart))
	if w.Actor.WorldY != y {
		t.Error("restart key should be a no-op while running")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()

	// Fake a finished run with progress
	w.Score = 12
	w.HighScore = 12
	w.Tier = 2
	w.CameraY = -3000
	w.Touched[1] = struct{}{}
	w.Platforms = w.Platforms[:3]
	w.GameOver = true

	e.HandleKey(core.Press(core.ActionRestart))

	if w.GameOver {
		t.Error("restart should clear game over")
	}
	if w.Score != 0 || w.Tier != 0 || w.CameraY != 0 {
		t.Errorf("score=%d tier=%d camera=%f, expected zeroes", w.Score, w.Tier, w.CameraY)
	}
	if len(w.Touched) != 0 {
		t.Errorf("touched set has %d entries after restart", len(w.Touched))
	}
	if len(w.Platforms) != 7 {
		t.Errorf("expected 7 platforms after restart, got %d", len(w.Platforms))
	}
	if w.HighScore != 12 {
		t.Errorf("high score = %d, expected 12 to survive restart", w.HighScore)
	}
	if w.Actor.X != 157 || w.Actor.WorldY != 378 || w.Actor.VelocityY != -5.5 || w.Actor.VelocityX != 0 {
		t.Errorf("actor not respawned: %+v", w.Actor)
	}
}

func TestStartRequiresSurface(t *testing.T) {
	tests := []struct {
		name    string
		surface core.Surface
		want    error
	}{
		{"no surface", nil, ErrNoSurface},
		{"typed nil surface", (*ptrSurface)(nil), ErrNoSurface},
		{"no render context", fakeSurface{}, ErrNoRenderContext},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t)
			sched := newManualScheduler()
			input := newFakeInput()

			err := e.Start(tc.surface, sched, input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Start() = %v, expected %v", err, tc.want)
			}
			if sched.Pending() != 0 {
				t.Error("failed start must not schedule a frame")
			}
			if len(input.handlers) != 0 {
				t.Error("failed start must not subscribe to input")
			}
			if e.Running() {
				t.Error("engine should not be running")
			}
		})
	}

	e := newTestEngine(t)
	if err := e.Start(fakeSurface{core.NewScreen(80, 24)}, nil, nil); !errors.Is(err, ErrNoScheduler) {
		t.Errorf("Start() without scheduler = %v, expected %v", err, ErrNoScheduler)
	}
	if err := e.Start(fakeSurface{core.NewScreen(80, 24)}, (*manualScheduler)(nil), nil); !errors.Is(err, ErrNoScheduler) {
		t.Errorf("Start() with typed nil scheduler = %v, expected %v", err, ErrNoScheduler)
	}
}

func TestStartWithoutInput(t *testing.T) {
	e := newTestEngine(t)
	sched := newManualScheduler()

	if err := e.Start(&ptrSurface{core.NewScreen(80, 24)}, sched, (*fakeInput)(nil)); err != nil {
		t.Fatalf("Start() with typed nil input = %v, expected nil", err)
	}
	defer e.Stop()

	if sched.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", sched.Pending())
	}
}

func TestStartLogsDifficulty(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	e := newTestEngine(t, WithLogger(logger))
	if err := e.Start(fakeSurface{core.NewScreen(80, 24)}, newManualScheduler(), nil); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer e.Stop()

	out := buf.String()
	for _, want := range []string{"engine started", "escalation=true", "tiers=5"} {
		if !strings.Contains(out, want) {
			t.Errorf("start log missing %q: %s", want, out)
		}
	}
}

func TestFrameLoop(t *testing.T) {
	e := newTestEngine(t)
	sched := newManualScheduler()
	input := newFakeInput()
	screen := core.NewScreen(80, 24)

	if err := e.Start(fakeSurface{screen}, sched, input); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := e.Start(fakeSurface{screen}, sched, input); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start() = %v, expected %v", err, ErrAlreadyRunning)
	}
	if sched.Pending() != 1 || len(input.handlers) != 1 {
		t.Fatalf("after Start: pending=%d handlers=%d, expected 1/1", sched.Pending(), len(input.handlers))
	}

	input.Send(core.Press(core.ActionRight))
	sched.Tick()
	if x := e.World().Actor.X; x != 161 {
		t.Errorf("X after one frame moving right = %f, expected 161", x)
	}
	if sched.Pending() != 1 {
		t.Errorf("each frame should schedule exactly one more, pending=%d", sched.Pending())
	}
	if screen.Get(28, 1) != '0' {
		t.Errorf("frame should render the score card, row 1 = %q", screen.Row(1))
	}

	e.Stop()
	if sched.Pending() != 0 {
		t.Error("Stop should cancel the pending frame")
	}
	if len(input.handlers) != 0 {
		t.Error("Stop should unsubscribe from input")
	}
	e.Stop() // idempotent
}

func TestRestartKeepsSingleLoop(t *testing.T) {
	e := newTestEngine(t)
	sched := newManualScheduler()
	input := newFakeInput()
	if err := e.Start(fakeSurface{core.NewScreen(80, 24)}, sched, input); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	w := e.World()
	w.Actor.WorldY = w.CameraY + w.BoardH
	w.Actor.VelocityY = 1
	sched.Tick()
	if !e.State().GameOver {
		t.Fatal("expected game over")
	}

	// The loop keeps running during game over to draw the message
	if sched.Pending() != 1 {
		t.Fatalf("pending=%d during game over, expected 1", sched.Pending())
	}

	input.Send(core.Press(core.ActionRestart))
	if sched.Pending() != 1 {
		t.Errorf("restart should leave exactly one pending frame, got %d", sched.Pending())
	}
	if sched.cancelled != 1 {
		t.Errorf("restart should cancel the old frame, cancelled=%d", sched.cancelled)
	}
	if e.State().GameOver {
		t.Error("restart should resume the run")
	}

	sched.Tick()
	if !near(w.Actor.WorldY, 372.7) {
		t.Errorf("first frame after restart WorldY = %f, expected 372.7", w.Actor.WorldY)
	}
}

func TestScoreListener(t *testing.T) {
	var events []core.ScoreEvent
	e := newTestEngine(t, WithScoreListener(func(ev core.ScoreEvent) {
		events = append(events, ev)
	}))
	w := e.World()

	// Drop the actor onto the starting platform
	p := w.Platforms[0]
	w.Actor.WorldY = p.WorldY - w.Actor.Height - 1
	w.Actor.VelocityY = 3
	e.Step()

	if len(events) != 1 {
		t.Fatalf("expected one score event, got %d", len(events))
	}
	if ev := events[0]; ev.Score != 1 || ev.HighScore != 1 || !ev.NewHigh {
		t.Errorf("event = %+v, expected score 1, new high", ev)
	}

	// Landing on the same platform again stays silent
	w.Actor.WorldY = p.WorldY - w.Actor.Height - 1
	w.Actor.VelocityY = 3
	e.Step()
	if len(events) != 1 {
		t.Errorf("re-landing fired %d events, expected 1 total", len(events))
	}
}
