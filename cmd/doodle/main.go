// doodle is a vertical platform-jumping game for the terminal.
//
// Usage:
//
//	doodle list               - List available variants
//	doodle play [variant]     - Play a variant (default: doodle)
//	doodle menu               - Pick a variant interactively
//	doodle defaults           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible platform layouts
//	--log-level <level>  - debug, info, warn, error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import variants to register them
	_ "github.com/vovakirdan/tui-doodle/internal/games/doodle"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle - jump your way up in the terminal",
	Long: `Doodle is a terminal take on the classic vertical jumper: bounce off
platforms, steer left and right, wrap around the edges and climb as high as
you can. Every platform you land on for the first time scores a point.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  defaults  - Print the embedded default config

Examples:
  doodle play
  doodle play doodle_classic
  doodle play --difficulty hard --seed 42
  doodle defaults > ~/.doodle/configs/doodle.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger builds the process logger. It writes to --log-file when given,
// otherwise to stderr.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "doodle",
		Level:           level,
	})
	return logger, closeFn, nil
}

// screenLogger returns the logger to hand to the TUI. Bubble Tea owns the
// terminal while it runs, so without --log-file the program's logs are
// dropped instead of being drawn over the board.
func screenLogger(logger *log.Logger, logFile string) *log.Logger {
	if logFile != "" {
		return logger
	}
	quiet := logger.With()
	quiet.SetOutput(io.Discard)
	return quiet
}
