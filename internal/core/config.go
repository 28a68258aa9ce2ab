package core

// RuntimeConfig carries host-level settings handed to a game when it starts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host
	Seed     int64 // RNG seed; 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is a read-only snapshot of a run, used by hosts for status display.
type GameState struct {
	Score     int  // Distinct platforms touched this run
	HighScore int  // Best score since the game was created
	Tier      int  // Current difficulty tier
	GameOver  bool // Whether the run has ended
}

// ScoreEvent is delivered to hosts every time a platform awards a point.
type ScoreEvent struct {
	Score     int
	HighScore int
	NewHigh   bool // This point raised the high score
}
