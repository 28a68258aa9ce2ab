package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

const defaultVariant = "doodle"

var (
	flagConfig     string
	flagDifficulty string
	flagRelease    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: doodle).

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Terminals do not report key releases, so a movement key counts as held
until no auto-repeat arrives within --release, or the other direction is
pressed.

Difficulty options:
  easy   - Softer gravity
  normal - Config as loaded
  hard   - Start at the third tier
  fixed  - No escalation, stays at the config's initial tier

Examples:
  doodle play
  doodle play doodle_classic
  doodle play --difficulty easy
  doodle play --config ./my-doodle.yaml --release 300ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().DurationVar(&flagRelease, "release", tui.DefaultReleaseAfter, "Treat a movement key as released after this long without a repeat")
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := defaultVariant
	if len(args) > 0 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'doodle list' to see available variants)", variant)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rt := runtimeConfig()
	logger.Info("starting", "variant", variant, "fps", rt.TickRate, "seed", rt.Seed)
	if err := tui.Run(variant, cfg, rt, flagRelease, screenLogger(logger, flagLogFile)); err != nil {
		return fmt.Errorf("running %s: %w", variant, err)
	}
	return nil
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.DoodleConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DoodleConfig{}, err
	}

	cfg, source, err := config.LoadDoodle(flagConfig)
	if err != nil {
		return config.DoodleConfig{}, err
	}
	if source == config.SourceBuiltin {
		logger.Warn("embedded config unusable, using built-in defaults")
	}
	logger.Debug("config loaded", "source", source, "preset", preset)

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig sizes the board to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}
