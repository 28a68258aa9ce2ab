// Package config provides YAML-based engine configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// DoodleConfig contains all tunables of the jumping engine.
type DoodleConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Actor      ActorConfig      `yaml:"actor"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Camera     CameraConfig     `yaml:"camera"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig is the logical drawing surface, in board units.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the player sprite.
type ActorConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartY float64 `yaml:"start_y"` // World Y of the top edge at spawn
}

// PhysicsConfig defines per-frame motion parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	LaunchVelocity float64 `yaml:"launch_velocity"` // Negative = up
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	MoveSpeed      float64 `yaml:"move_speed"`
}

// CameraConfig defines the scrolling dead zone.
type CameraConfig struct {
	Threshold float64 `yaml:"threshold"` // Screen Y the actor may not rise above
}

// PlatformConfig defines platform size and placement.
type PlatformConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	LadderCount     int     `yaml:"ladder_count"`
	LadderStep      float64 `yaml:"ladder_step"`
	LadderOffset    float64 `yaml:"ladder_offset"`
	FirstOffset     float64 `yaml:"first_offset"`
	BaseGap         float64 `yaml:"base_gap"`
	SpawnWidthRatio float64 `yaml:"spawn_width_ratio"`
}

// DifficultyConfig defines score-driven tier escalation.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	InitialTier    int     `yaml:"initial_tier"`
	TierScale      float64 `yaml:"tier_scale"`       // Added to the multiplier per tier
	GapScoreFactor float64 `yaml:"gap_score_factor"` // Extra gap per point of score
	Tiers          []Tier  `yaml:"tiers"`
}

// Tier is one entry of the threshold table.
type Tier struct {
	Name      string `yaml:"name"`
	Threshold int    `yaml:"threshold"`
}

// Validate reports configuration values the engine cannot run with.
func (c DoodleConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %gx%g", c.Board.Width, c.Board.Height))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %gx%g", c.Actor.Width, c.Actor.Height))
	}
	if c.Platforms.Width <= 0 || c.Platforms.Height <= 0 {
		errs = append(errs, fmt.Errorf("platform size must be positive, got %gx%g", c.Platforms.Width, c.Platforms.Height))
	}
	if c.Platforms.LadderCount < 0 {
		errs = append(errs, fmt.Errorf("ladder_count must not be negative, got %d", c.Platforms.LadderCount))
	}
	if c.Physics.LaunchVelocity >= 0 {
		errs = append(errs, fmt.Errorf("launch_velocity must be negative (upward), got %g", c.Physics.LaunchVelocity))
	}
	if c.Physics.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max_fall_speed must be positive, got %g", c.Physics.MaxFallSpeed))
	}
	if c.Physics.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("move_speed must not be negative, got %g", c.Physics.MoveSpeed))
	}
	// New platforms must spawn above the previous top so the window stays ordered.
	if c.Platforms.BaseGap <= 0 {
		errs = append(errs, fmt.Errorf("base_gap must be positive, got %g", c.Platforms.BaseGap))
	}
	if c.Platforms.LadderStep <= 0 {
		errs = append(errs, fmt.Errorf("ladder_step must be positive, got %g", c.Platforms.LadderStep))
	}
	if r := c.Platforms.SpawnWidthRatio; r <= 0 || r > 1 {
		errs = append(errs, fmt.Errorf("spawn_width_ratio must be in (0, 1], got %g", r))
	}
	if err := validateTiers(c.Difficulty.Tiers); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return errors.New("difficulty.tiers must not be empty")
	}
	if tiers[0].Threshold != 0 {
		return fmt.Errorf("first tier threshold must be 0, got %d", tiers[0].Threshold)
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold <= tiers[i-1].Threshold {
			return fmt.Errorf("tier thresholds must be strictly ascending (%s=%d after %s=%d)",
				tiers[i].Name, tiers[i].Threshold, tiers[i-1].Name, tiers[i-1].Threshold)
		}
	}
	return nil
}
