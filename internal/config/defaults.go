package config

import (
	_ "embed"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the built-in configuration. It matches the
// embedded defaults/doodle.yaml.
func DefaultDoodleConfig() DoodleConfig {
	return DoodleConfig{
		Board: BoardConfig{
			Width:  360,
			Height: 576,
		},
		Actor: ActorConfig{
			Width:  46,
			Height: 46,
			StartY: 378,
		},
		Physics: PhysicsConfig{
			Gravity:        0.2,
			LaunchVelocity: -5.5,
			MaxFallSpeed:   8,
			MoveSpeed:      4,
		},
		Camera: CameraConfig{
			Threshold: 150,
		},
		Platforms: PlatformConfig{
			Width:           60,
			Height:          18,
			LadderCount:     6,
			LadderStep:      75,
			LadderOffset:    150,
			FirstOffset:     50,
			BaseGap:         75,
			SpawnWidthRatio: 0.75,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			InitialTier:    0,
			TierScale:      0.2,
			GapScoreFactor: 0.2,
			Tiers:          DefaultTiers(),
		},
	}
}

// ApplyClassicTuning switches a config to the slow early tuning: weak
// gravity, a soft launch and no tier escalation.
func ApplyClassicTuning(cfg *DoodleConfig) {
	cfg.Physics.Gravity = 0.03
	cfg.Physics.LaunchVelocity = -2.5
	cfg.Difficulty.Enabled = false
}

// DefaultTiers returns the background tier table.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "sky", Threshold: 0},
		{Name: "dusk", Threshold: 5},
		{Name: "night", Threshold: 10},
		{Name: "space", Threshold: 15},
		{Name: "deep-space", Threshold: 20},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDoodleYAML
}
