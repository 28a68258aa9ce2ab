package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-doodle/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default configuration",
	Long: `Prints the embedded default YAML. Save it to
~/.doodle/configs/doodle.yaml or ./configs/doodle.yaml and edit it to tune
the board, physics, platform spacing and difficulty tiers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

