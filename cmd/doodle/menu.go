package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After quitting a game you return to the menu.

Examples:
  doodle menu
  doodle menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	for {
		result, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt = result.Config
		if result.Quit || result.GameID == "" {
			return nil
		}

		logger.Info("starting", "variant", result.GameID, "fps", rt.TickRate, "seed", rt.Seed)
		if err := tui.Run(result.GameID, cfg, rt, flagRelease, screenLogger(logger, flagLogFile)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
