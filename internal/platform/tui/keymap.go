package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a semantic action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// KeyReleaser synthesizes key-up events. Terminals only report presses (and
// auto-repeats while a key is held), so a movement key counts as released
// once no repeat has arrived for the hold window, or as soon as the opposite
// direction is pressed.
type KeyReleaser struct {
	hold time.Duration
	held map[core.Action]time.Time
}

// DefaultReleaseAfter covers the usual initial auto-repeat delay.
const DefaultReleaseAfter = 550 * time.Millisecond

// NewKeyReleaser creates a releaser with the given hold window.
func NewKeyReleaser(hold time.Duration) *KeyReleaser {
	if hold <= 0 {
		hold = DefaultReleaseAfter
	}
	return &KeyReleaser{
		hold: hold,
		held: make(map[core.Action]time.Time),
	}
}

// Press records a movement key press and returns the events to deliver.
func (r *KeyReleaser) Press(a core.Action, now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	if opp := opposite(a); opp != core.ActionNone {
		if _, ok := r.held[opp]; ok {
			delete(r.held, opp)
			events = append(events, core.Release(opp))
		}
	}
	r.held[a] = now
	return append(events, core.Press(a))
}

// Expire returns releases for keys whose hold window has passed.
func (r *KeyReleaser) Expire(now time.Time) []core.KeyEvent {
	var events []core.KeyEvent
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		last, ok := r.held[a]
		if ok && now.Sub(last) >= r.hold {
			delete(r.held, a)
			events = append(events, core.Release(a))
		}
	}
	return events
}

// Reset forgets all held keys.
func (r *KeyReleaser) Reset() {
	clear(r.held)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}
