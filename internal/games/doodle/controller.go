package doodle

import (
	"reflect"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Start validates the host collaborators, subscribes to input and requests
// the first frame. Nothing is registered when an error is returned.
func (e *Engine) Start(surface core.Surface, scheduler core.FrameScheduler, input core.InputSource) error {
	if e.running {
		return ErrAlreadyRunning
	}
	if isNil(surface) {
		return ErrNoSurface
	}
	if surface.Screen() == nil {
		return ErrNoRenderContext
	}
	if isNil(scheduler) {
		return ErrNoScheduler
	}

	e.surface = surface
	e.scheduler = scheduler
	if !isNil(input) {
		e.unsubscribe = input.Subscribe(e.HandleKey)
	}
	e.running = true
	e.logger.Debug("engine started",
		"seed", e.seed,
		"tier", e.TierName(),
		"escalation", e.difficulty.IsEnabled(),
		"tiers", e.difficulty.TierCount(),
	)
	e.requestFrame()
	return nil
}

// Stop unsubscribes from input and cancels the pending frame. It is safe to
// call more than once.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.cancelPending()
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
	e.running = false
	e.logger.Debug("engine stopped", "score", e.world.Score, "high", e.world.HighScore, "frames", e.frames)
}

// HandleKey applies one input event. Movement keys only touch velocity and
// facing; the restart key only acts after game over.
func (e *Engine) HandleKey(ev core.KeyEvent) {
	a := &e.world.Actor
	speed := e.cfg.Physics.MoveSpeed

	switch ev.Kind {
	case core.KeyDown:
		switch ev.Action {
		case core.ActionRight:
			a.VelocityX = speed
			a.Facing = FacingRight
		case core.ActionLeft:
			a.VelocityX = -speed
			a.Facing = FacingLeft
		case core.ActionRestart:
			if e.world.GameOver {
				e.Restart()
			}
		}

	case core.KeyUp:
		// A release only stops motion in its own direction.
		switch ev.Action {
		case core.ActionRight:
			if a.VelocityX > 0 {
				a.VelocityX = 0
			}
		case core.ActionLeft:
			if a.VelocityX < 0 {
				a.VelocityX = 0
			}
		}
	}
}

// Restart rebuilds the world for a new run, keeping the high score, and
// resumes the frame loop. It is a no-op unless the run is over.
func (e *Engine) Restart() {
	if !e.world.GameOver {
		return
	}
	e.cancelPending()
	e.world.Initialize(e.cfg, e.generator, e.difficulty.Tier(0))
	e.frames = 0
	e.logger.Debug("restart", "high", e.world.HighScore)
	if e.running {
		e.requestFrame()
	}
}

// Render draws the world into the surface's screen.
func (e *Engine) Render(dst *core.Screen) {
	e.renderer.Render(dst, e.world)
}

// frame is the scheduled callback: step, draw, then ask for the next frame.
func (e *Engine) frame() {
	e.cancelFrame = nil
	if !e.running {
		return
	}
	e.Step()
	if screen := e.surface.Screen(); screen != nil {
		e.Render(screen)
	}
	e.requestFrame()
}

func (e *Engine) requestFrame() {
	e.cancelPending()
	e.cancelFrame = e.scheduler.Schedule(e.frame)
}

func (e *Engine) cancelPending() {
	if e.cancelFrame != nil {
		e.cancelFrame()
		e.cancelFrame = nil
	}
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
