package doodle

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

func TestInitialSpawn(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()

	if w.Actor.X != 157 || w.Actor.WorldY != 378 {
		t.Errorf("actor spawn = (%f, %f), expected (157, 378)", w.Actor.X, w.Actor.WorldY)
	}
	if w.Actor.VelocityY != -5.5 {
		t.Errorf("initial velocity = %f, expected -5.5", w.Actor.VelocityY)
	}
	if w.CameraY != 0 || w.Score != 0 || w.GameOver {
		t.Errorf("run counters not zeroed: camera=%f score=%d over=%v", w.CameraY, w.Score, w.GameOver)
	}
}

func TestInitialLadder(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()

	if len(w.Platforms) != 7 {
		t.Fatalf("expected 7 platforms, got %d", len(w.Platforms))
	}

	first := w.Platforms[0]
	if first.X != 150 || first.WorldY != 526 {
		t.Errorf("first platform = (%f, %f), expected (150, 526) under the spawn", first.X, first.WorldY)
	}

	// The starting platform lies under the actor's horizontal span
	a := w.Actor
	if a.X+a.Width <= first.X || a.X >= first.X+first.Width {
		t.Error("start platform is not under the actor")
	}

	for i, p := range w.Platforms[1:] {
		want := 576 - 75*float64(i) - 150
		if p.WorldY != want {
			t.Errorf("ladder[%d].WorldY = %f, expected %f", i, p.WorldY, want)
		}
		if p.X < 0 || p.X >= 270 || p.X != math.Floor(p.X) {
			t.Errorf("ladder[%d].X = %f, expected a whole number in [0, 270)", i, p.X)
		}
	}
}

func TestPlatformIDsAreUnique(t *testing.T) {
	e := newTestEngine(t)
	w := e.World()

	seen := make(map[PlatformID]bool)
	for _, p := range w.Platforms {
		if seen[p.ID] {
			t.Fatalf("duplicate platform id %d", p.ID)
		}
		seen[p.ID] = true
	}

	// A new run never reuses identities from the last one
	w.GameOver = true
	e.Restart()
	for _, p := range w.Platforms {
		if seen[p.ID] {
			t.Fatalf("platform id %d reused after restart", p.ID)
		}
	}
}

func TestSameSeedSameLadder(t *testing.T) {
	a := New(config.DefaultDoodleConfig(), WithSeed(7)).World()
	b := New(config.DefaultDoodleConfig(), WithSeed(7)).World()

	for i := range a.Platforms {
		if a.Platforms[i].X != b.Platforms[i].X || a.Platforms[i].WorldY != b.Platforms[i].WorldY {
			t.Fatalf("platform %d differs between runs with the same seed", i)
		}
	}
}

func TestWorldState(t *testing.T) {
	w := NewWorld(config.DefaultDoodleConfig())
	w.Score = 3
	w.HighScore = 9
	w.Tier = 1
	w.GameOver = true

	want := core.GameState{Score: 3, HighScore: 9, Tier: 1, GameOver: true}
	if got := w.State(); got != want {
		t.Errorf("State() = %+v, expected %+v", got, want)
	}
}
