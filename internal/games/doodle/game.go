package doodle

import (
	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// Variant is an Engine with a registry identity.
type Variant struct {
	*Engine
	id    string
	title string
}

// ID returns the registry identifier.
func (v *Variant) ID() string {
	return v.id
}

// Title returns the display name.
func (v *Variant) Title() string {
	return v.title
}

func newVariant(id, title string, cfg config.DoodleConfig, s registry.Settings) *Variant {
	opts := []Option{
		WithSeed(s.Seed),
		WithScoreListener(s.OnScore),
	}
	if s.Logger != nil {
		opts = append(opts, WithLogger(s.Logger.With("variant", id)))
	}
	return &Variant{Engine: New(cfg, opts...), id: id, title: title}
}

// Register the variants with the registry
func init() {
	registry.Register("doodle", "Doodle Jump", func(cfg config.DoodleConfig, s registry.Settings) registry.Game {
		return newVariant("doodle", "Doodle Jump", cfg, s)
	})
	registry.Register("doodle_classic", "Doodle Jump (classic)", func(cfg config.DoodleConfig, s registry.Settings) registry.Game {
		config.ApplyClassicTuning(&cfg)
		return newVariant("doodle_classic", "Doodle Jump (classic)", cfg, s)
	})
}
