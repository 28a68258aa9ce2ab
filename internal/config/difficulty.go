package config

import (
	"fmt"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// DifficultyManager derives the tier and the tier-scaled multipliers from score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if len(cfg.Tiers) == 0 {
		cfg.Tiers = DefaultTiers()
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether score-driven escalation is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Tier returns the tier for a score. The table is scanned from the highest
// threshold down and the first threshold <= score wins. The result never drops
// below the initial tier; with escalation disabled it is always the initial tier.
func (d *DifficultyManager) Tier(score int) int {
	initial := d.clampTier(d.cfg.InitialTier)
	if !d.cfg.Enabled {
		return initial
	}
	tier := 0
	for i := len(d.cfg.Tiers) - 1; i >= 0; i-- {
		if score >= d.cfg.Tiers[i].Threshold {
			tier = i
			break
		}
	}
	return max(tier, initial)
}

// Multiplier returns 1 + tier*tier_scale. It scales both gravity and the gap increment.
func (d *DifficultyManager) Multiplier(tier int) float64 {
	return 1 + float64(tier)*d.cfg.TierScale
}

// GapIncrement returns the extra spacing above base_gap for the next platform.
func (d *DifficultyManager) GapIncrement(score, tier int) float64 {
	return float64(score) * d.cfg.GapScoreFactor * d.Multiplier(tier)
}

// TierName returns the display name of a tier.
func (d *DifficultyManager) TierName(tier int) string {
	if tier < 0 || tier >= len(d.cfg.Tiers) {
		return fmt.Sprintf("tier-%d", tier)
	}
	return d.cfg.Tiers[tier].Name
}

// TierCount returns the number of tiers in the table.
func (d *DifficultyManager) TierCount() int {
	return len(d.cfg.Tiers)
}

func (d *DifficultyManager) clampTier(tier int) int {
	return core.Clamp(tier, 0, len(d.cfg.Tiers)-1)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DoodleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = 0
		cfg.Physics.Gravity *= 0.8
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialTier = 2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
