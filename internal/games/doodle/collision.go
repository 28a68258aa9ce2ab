package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
)

// Bounce describes one resolved landing.
type Bounce struct {
	Platform PlatformID
	Scored   bool // First touch of this platform in the run
	NewHigh  bool // The score passed the previous high score
	TierUp   bool // The score moved the world into a higher tier
}

// Resolver handles actor/platform landings and scoring.
type Resolver struct {
	launch     float64
	difficulty *config.DifficultyManager
}

// NewResolver creates a resolver from the engine config.
func NewResolver(cfg config.DoodleConfig, diff *config.DifficultyManager) *Resolver {
	return &Resolver{
		launch:     cfg.Physics.LaunchVelocity,
		difficulty: diff,
	}
}

// Resolve tests the actor against every platform in world coordinates, so the
// result does not depend on the camera. A landing only counts while the actor
// is falling or at rest; overlaps on the way up pass through.
func (r *Resolver) Resolve(w *World) []Bounce {
	var bounces []Bounce
	for i := range w.Platforms {
		p := w.Platforms[i]
		if w.Actor.VelocityY < 0 || !w.Actor.Box().Overlaps(p.Box()) {
			continue
		}
		w.Actor.VelocityY = r.launch
		w.Actor.WorldY = p.WorldY - w.Actor.Height
		w.Actor.Y = w.Actor.WorldY - w.CameraY

		b := Bounce{Platform: p.ID}
		r.award(w, p, &b)
		bounces = append(bounces, b)
	}
	return bounces
}

// award scores a platform once per run and refreshes high score and tier.
func (r *Resolver) award(w *World, p Platform, b *Bounce) {
	if _, seen := w.Touched[p.ID]; seen {
		return
	}
	w.Touched[p.ID] = struct{}{}
	w.Score++
	b.Scored = true
	if w.Score > w.HighScore {
		w.HighScore = w.Score
		b.NewHigh = true
	}

	tier := r.difficulty.Tier(w.Score)
	b.TierUp = tier > w.Tier
	w.Tier = tier
}
