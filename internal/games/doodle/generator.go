package doodle

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

// Generator places the starting ladder and spawns platforms above it.
type Generator struct {
	cfg        config.PlatformConfig
	boardW     float64
	boardH     float64
	startX     float64
	rng        *rand.Rand
	difficulty *config.DifficultyManager
}

// NewGenerator creates a generator with its own seeded RNG.
func NewGenerator(cfg config.DoodleConfig, seed int64, diff *config.DifficultyManager) *Generator {
	return &Generator{
		cfg:        cfg.Platforms,
		boardW:     cfg.Board.Width,
		boardH:     cfg.Board.Height,
		startX:     cfg.Board.Width/2 - cfg.Platforms.Width/2,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: diff,
	}
}

// PlaceInitial builds the starting ladder: one platform centered under the
// spawn point plus ladder_count platforms a fixed step apart above it.
func (g *Generator) PlaceInitial(w *World) []Platform {
	platforms := make([]Platform, 0, g.cfg.LadderCount+1)

	firstY := g.boardH - g.cfg.FirstOffset
	platforms = append(platforms, w.newPlatform(g.startX, firstY, g.cfg.Width, g.cfg.Height))

	for i := 0; i < g.cfg.LadderCount; i++ {
		worldY := g.boardH - g.cfg.LadderStep*float64(i) - g.cfg.LadderOffset
		platforms = append(platforms, w.newPlatform(g.randomX(), worldY, g.cfg.Width, g.cfg.Height))
	}
	return platforms
}

// SpawnNext creates one platform base_gap + gapIncrement above prev, where
// gapIncrement = score * gap_score_factor * (1 + tier * tier_scale).
func (g *Generator) SpawnNext(w *World, prev Platform, score, tier int) Platform {
	gap := g.cfg.BaseGap + g.difficulty.GapIncrement(score, tier)
	return w.newPlatform(g.randomX(), prev.WorldY-gap, g.cfg.Width, g.cfg.Height)
}

// Recycle drops platforms that fell below the camera frame and appends one
// new platform per dropped one, so the window length stays constant.
// Returns how many platforms were replaced.
func (g *Generator) Recycle(w *World) int {
	replaced := 0
	bottom := w.CameraY + w.BoardH
	for len(w.Platforms) > 0 && w.Platforms[0].WorldY > bottom {
		top, _ := w.Top()
		w.Platforms = append(w.Platforms[1:], g.SpawnNext(w, top, w.Score, w.Tier))
		replaced++
	}
	return replaced
}

// randomX returns a whole-unit x in [0, spawn_width_ratio * boardW).
func (g *Generator) randomX() float64 {
	return math.Floor(g.rng.Float64() * g.boardW * g.cfg.SpawnWidthRatio)
}
