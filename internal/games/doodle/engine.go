package doodle

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

var (
	// ErrNoSurface is returned by Start when the host has no drawing surface.
	ErrNoSurface = errors.New("doodle: no drawing surface")
	// ErrNoRenderContext is returned by Start when the surface cannot be drawn on.
	ErrNoRenderContext = errors.New("doodle: no rendering context")
	// ErrNoScheduler is returned by Start without a frame scheduler.
	ErrNoScheduler = errors.New("doodle: no frame scheduler")
	// ErrAlreadyRunning is returned by Start on an engine that is already started.
	ErrAlreadyRunning = errors.New("doodle: engine already running")
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithSeed fixes the platform RNG seed. Without it the clock is used.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithScoreListener registers a callback fired on every scoring bounce.
func WithScoreListener(fn func(core.ScoreEvent)) Option {
	return func(e *Engine) {
		e.onScore = fn
	}
}

// Engine owns one World and drives it one step per host frame.
// All methods must be called from the host's event goroutine.
type Engine struct {
	cfg        config.DoodleConfig
	difficulty *config.DifficultyManager
	world      *World
	generator  *Generator
	integrator *Integrator
	resolver   *Resolver
	renderer   *Renderer
	logger     *log.Logger
	onScore    func(core.ScoreEvent)
	seed       int64

	surface     core.Surface
	scheduler   core.FrameScheduler
	cancelFrame func()
	unsubscribe func()
	running     bool
	frames      int
}

// New creates an engine with an initialized world. Nothing runs until Start.
func New(cfg config.DoodleConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.seed == 0 {
		e.seed = time.Now().UnixNano()
	}

	e.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	e.generator = NewGenerator(cfg, e.seed, e.difficulty)
	e.integrator = NewIntegrator(cfg, e.difficulty)
	e.resolver = NewResolver(cfg, e.difficulty)
	e.renderer = NewRenderer(cfg, e.difficulty)
	e.world = NewWorld(cfg)
	e.world.Initialize(cfg, e.generator, e.difficulty.Tier(0))
	return e
}

// Step advances the simulation by one frame. It does nothing once the run is over.
func (e *Engine) Step() {
	w := e.world
	if w.GameOver {
		return
	}
	e.frames++

	if e.integrator.Step(w) {
		e.logger.Debug("game over", "score", w.Score, "high", w.HighScore, "frames", e.frames)
		return
	}

	for _, b := range e.resolver.Resolve(w) {
		if !b.Scored {
			continue
		}
		if b.TierUp {
			e.logger.Debug("tier up", "tier", w.Tier, "name", e.difficulty.TierName(w.Tier), "score", w.Score)
		}
		e.notifyScore(b.NewHigh)
	}

	e.generator.Recycle(w)
}

func (e *Engine) notifyScore(newHigh bool) {
	if e.onScore == nil {
		return
	}
	w := e.world
	e.onScore(core.ScoreEvent{
		Score:     w.Score,
		HighScore: w.HighScore,
		NewHigh:   newHigh,
	})
}

// State returns the current run snapshot.
func (e *Engine) State() core.GameState {
	return e.world.State()
}

// World exposes the simulated world for inspection. Callers must not mutate it.
func (e *Engine) World() *World {
	return e.world
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.DoodleConfig {
	return e.cfg
}

// TierName returns the display name of the current tier.
func (e *Engine) TierName() string {
	return e.difficulty.TierName(e.world.Tier)
}

// Running reports whether the frame loop is active.
func (e *Engine) Running() bool {
	return e.running
}
