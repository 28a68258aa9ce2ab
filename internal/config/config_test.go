package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateSpacingAndSpeed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DoodleConfig)
		field  string // empty when valid
	}{
		{"defaults", func(*DoodleConfig) {}, ""},
		{"classic", ApplyClassicTuning, ""},
		{"negative base gap", func(c *DoodleConfig) { c.Platforms.BaseGap = -700 }, "base_gap"},
		{"zero base gap", func(c *DoodleConfig) { c.Platforms.BaseGap = 0 }, "base_gap"},
		{"zero ladder step", func(c *DoodleConfig) { c.Platforms.LadderStep = 0 }, "ladder_step"},
		{"negative move speed", func(c *DoodleConfig) { c.Physics.MoveSpeed = -1 }, "move_speed"},
		{"zero move speed", func(c *DoodleConfig) { c.Physics.MoveSpeed = 0 }, ""},
		{"zero spawn ratio", func(c *DoodleConfig) { c.Platforms.SpawnWidthRatio = 0 }, "spawn_width_ratio"},
		{"spawn ratio above one", func(c *DoodleConfig) { c.Platforms.SpawnWidthRatio = 1.5 }, "spawn_width_ratio"},
		{"full width spawn", func(c *DoodleConfig) { c.Platforms.SpawnWidthRatio = 1 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDoodleConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected an error naming %s", err, tc.field)
			}
		})
	}
}

func TestLoadRejectsNegativeGap(t *testing.T) {
	_, work := isolate(t)

	path := filepath.Join(work, "gap.yaml")
	writeFile(t, path, "platforms:\n  base_gap: -700\n")
	if _, _, err := LoadDoodle(path); err == nil || !strings.Contains(err.Error(), "base_gap") {
		t.Errorf("LoadDoodle() = %v, expected base_gap validation error", err)
	}
}
