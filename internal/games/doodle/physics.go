package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
)

// Integrator advances the actor and the camera by one frame.
type Integrator struct {
	physics    config.PhysicsConfig
	threshold  float64
	difficulty *config.DifficultyManager
}

// NewIntegrator creates an integrator from the engine config.
func NewIntegrator(cfg config.DoodleConfig, diff *config.DifficultyManager) *Integrator {
	return &Integrator{
		physics:    cfg.Physics,
		threshold:  cfg.Camera.Threshold,
		difficulty: diff,
	}
}

// Step moves the actor, drags the camera and refreshes screen positions.
// It returns true when the actor has fallen a full board below the camera,
// in which case the world is marked game over.
func (in *Integrator) Step(w *World) bool {
	a := &w.Actor

	// Horizontal motion with wraparound
	a.X += a.VelocityX
	if a.X > w.BoardW {
		a.X = 0
	} else if a.X+a.Width < 0 {
		a.X = w.BoardW
	}

	// Vertical motion: tier-scaled gravity, capped fall speed
	gravity := in.physics.Gravity * in.difficulty.Multiplier(w.Tier)
	a.VelocityY = min(a.VelocityY+gravity, in.physics.MaxFallSpeed)
	a.WorldY += a.VelocityY

	in.UpdateCamera(w)

	if a.WorldY > w.CameraY+w.BoardH {
		w.GameOver = true
		return true
	}
	return false
}

// UpdateCamera pins the actor at the threshold line whenever it would rise
// above it. The camera only ever moves up (CameraY only decreases).
func (in *Integrator) UpdateCamera(w *World) {
	screenY := w.Actor.WorldY - w.CameraY
	if screenY < in.threshold {
		w.CameraY -= in.threshold - screenY
	}
	Project(w)
}

// Project recomputes every screen position from world position and camera.
func Project(w *World) {
	w.Actor.Y = w.Actor.WorldY - w.CameraY
	for i := range w.Platforms {
		w.Platforms[i].Y = w.Platforms[i].WorldY - w.CameraY
	}
}
