package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
	"github.com/vovakirdan/tui-doodle/internal/registry"
)

// chromeRows is the space reserved below the board for status and help.
const chromeRows = 2

// tierNamer is implemented by games that can name their current tier.
type tierNamer interface {
	TierName() string
}

// status is shared between the model copies and the game's score callback.
type status struct {
	last core.ScoreEvent
}

// Model is the Bubble Tea model for running a doodle variant.
type Model struct {
	game     registry.Game
	host     *Host
	keys     KeyMap
	help     help.Model
	releaser *KeyReleaser
	status   *status
	logger   *log.Logger
	config   core.RuntimeConfig
	state    core.GameState
	now      func() time.Time

	quitting bool
	err      error
}

// NewModel creates a model around an already constructed game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, releaseAfter time.Duration, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:     game,
		host:     NewHost(cfg.ScreenW, cfg.ScreenH-chromeRows),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		releaser: NewKeyReleaser(releaseAfter),
		status:   &status{},
		logger:   logger,
		config:   cfg,
		now:      time.Now,
	}
}

// Start hands the host to the game as its surface, scheduler and input.
func (m Model) Start() error {
	if err := m.game.Start(m.host, m.host, m.host); err != nil {
		return err
	}
	m.logger.Debug("game started", "game", m.game.ID(), "w", m.host.Screen().Width(), "h", m.host.Screen().Height())
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.host.Resize(msg.Width, msg.Height-chromeRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to engine events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionLeft, core.ActionRight:
		m.host.Dispatch(m.releaser.Press(action, m.now())...)

	case core.ActionRestart:
		if m.state.GameOver {
			m.releaser.Reset()
		}
		m.host.Dispatch(core.Press(action))
		m.state = m.game.State()
	}

	return m, nil
}

// handleTick expires held keys, runs the pending frame and reschedules.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.host.Dispatch(m.releaser.Expire(now)...)
	m.host.RunFrame()

	prev := m.state
	m.state = m.game.State()
	if m.state.GameOver && !prev.GameOver {
		m.releaser.Reset()
		m.logger.Info("run ended", "game", m.game.ID(), "score", m.state.Score, "best", m.state.HighScore)
	}

	return m, tickCmd(m.config.TickRate)
}

// State returns the last observed game snapshot.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the board, the status line and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	tier := ""
	if tn, ok := m.game.(tierNamer); ok {
		tier = tn.TierName()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.host.Screen()),
		renderStatus(m.game.Title(), tier, m.state, m.status.last),
		m.help.View(m.keys),
	)
}

// Run creates the variant, wires its score callback to the status line and
// runs the Bubble Tea program until the player quits.
func Run(id string, cfg config.DoodleConfig, rt core.RuntimeConfig, releaseAfter time.Duration, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	st := &status{}
	game, err := registry.Create(id, cfg, registry.Settings{
		Seed:   rt.Seed,
		Logger: logger,
		OnScore: func(ev core.ScoreEvent) {
			st.last = ev
			if ev.NewHigh {
				logger.Debug("new best", "score", ev.Score)
			}
		},
	})
	if err != nil {
		return err
	}
	defer game.Stop()

	model := NewModel(game, rt, releaseAfter, logger)
	model.status = st
	if err := model.Start(); err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
