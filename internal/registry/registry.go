// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI and the
// platform to list and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Game is what the platform needs from a running variant.
// Games contain pure logic with no Bubble Tea dependency; the platform
// supplies the surface, the frame scheduler and the input source.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "doodle").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Start subscribes to input and begins requesting frames.
	Start(surface core.Surface, scheduler core.FrameScheduler, input core.InputSource) error

	// Stop cancels the pending frame and drops the input subscription.
	Stop()

	// State returns the current run snapshot (score, high score, game over).
	State() core.GameState
}

// Settings carries host-provided collaborators into a factory.
type Settings struct {
	Seed    int64 // 0 = clock-based
	Logger  *log.Logger
	OnScore func(core.ScoreEvent)
}

// GameInfo contains metadata about a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a variant from the loaded engine config.
type Factory func(cfg config.DoodleConfig, s Settings) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Panics if a variant with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns information about all registered variants, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.DoodleConfig, s Settings) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(cfg, s), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
