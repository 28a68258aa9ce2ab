// Package doodle implements the vertical jumping engine: an actor bounces up a
// shaft of generated platforms while the camera follows it upward.
package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Facing selects which way the actor sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns "right" or "left".
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Actor is the player sprite. Y is always WorldY minus the camera offset.
type Actor struct {
	X         float64
	WorldY    float64
	Y         float64 // Screen position, derived
	Width     float64
	Height    float64
	VelocityX float64
	VelocityY float64
	Facing    Facing
}

// Box returns the actor's bounding box in world coordinates.
func (a Actor) Box() core.Box {
	return core.Box{X: a.X, Y: a.WorldY, W: a.Width, H: a.Height}
}

// PlatformID identifies a platform for scoring. IDs increase monotonically
// within a World and are never reused, even across resets.
type PlatformID uint64

// Platform is a static ledge. Only the camera moves it on screen.
type Platform struct {
	ID     PlatformID
	X      float64
	WorldY float64
	Y      float64 // Screen position, derived
	Width  float64
	Height float64
}

// Box returns the platform's bounding box in world coordinates.
func (p Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.WorldY, W: p.Width, H: p.Height}
}

// World is the whole mutable state of a run. The engine is its only writer.
type World struct {
	BoardW float64
	BoardH float64

	Actor     Actor
	Platforms []Platform // Oldest (lowest) first
	CameraY   float64

	Score     int
	HighScore int
	Tier      int
	GameOver  bool
	Touched   map[PlatformID]struct{}

	nextID PlatformID
}

// NewWorld allocates an empty world for the configured board. Call
// Initialize before stepping it.
func NewWorld(cfg config.DoodleConfig) *World {
	return &World{
		BoardW:  cfg.Board.Width,
		BoardH:  cfg.Board.Height,
		Touched: make(map[PlatformID]struct{}),
	}
}

// Initialize places the actor at its spawn point, launches it upward, builds
// the initial ladder and zeroes the run counters. The high score is kept.
func (w *World) Initialize(cfg config.DoodleConfig, gen *Generator, tier int) {
	w.Actor = Actor{
		X:         cfg.Board.Width/2 - cfg.Actor.Width/2,
		WorldY:    cfg.Actor.StartY,
		Y:         cfg.Actor.StartY,
		Width:     cfg.Actor.Width,
		Height:    cfg.Actor.Height,
		VelocityY: cfg.Physics.LaunchVelocity,
		Facing:    FacingRight,
	}
	w.CameraY = 0
	w.Score = 0
	w.Tier = tier
	w.GameOver = false
	clear(w.Touched)
	w.Platforms = gen.PlaceInitial(w)
}

// newPlatform allocates the next platform identity.
func (w *World) newPlatform(x, worldY, width, height float64) Platform {
	w.nextID++
	return Platform{
		ID:     w.nextID,
		X:      x,
		WorldY: worldY,
		Y:      worldY - w.CameraY,
		Width:  width,
		Height: height,
	}
}

// Top returns the most recently generated (highest) platform.
func (w *World) Top() (Platform, bool) {
	if len(w.Platforms) == 0 {
		return Platform{}, false
	}
	return w.Platforms[len(w.Platforms)-1], true
}

// State returns the host-facing snapshot.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:     w.Score,
		HighScore: w.HighScore,
		Tier:      w.Tier,
		GameOver:  w.GameOver,
	}
}
