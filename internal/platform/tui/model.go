package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Screen rows reserved below the game for the short and full key help.
const (
	shortHelpRows = 1
	fullHelpRows  = 4
)

// RunJournal records terminated runs. *storage.Store implements it.
type RunJournal interface {
	RecordRun(r storage.RunRecord) (int64, error)
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Journal RunJournal  // Nil disables journaling
	Logger  *log.Logger // Nil uses the default logger
	Session string      // Player name stored with each run
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	journal    RunJournal
	logger     *log.Logger
	session    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a model for game. A zero seed is replaced with the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-shortHelpRows, 0)),
		journal:    opts.Journal,
		logger:     logger,
		session:    opts.Session,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// fitScreen sizes the game canvas to the terminal minus the help block.
func (m *Model) fitScreen() {
	rows := shortHelpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 0))
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena has a fixed extent, so a resize only changes the canvas.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ended != nil {
		m.recordRun(*result.Ended)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// recordRun logs a terminated run and appends it to the journal.
// Journal failures are logged and never interrupt play.
func (m Model) recordRun(sum core.RunSummary) {
	m.logger.Info("run ended",
		"game", m.game.ID(),
		"session", m.session,
		"cause", sum.Cause,
		"length", sum.Length,
		"food", sum.FoodEaten,
		"ticks", sum.Ticks,
	)
	if m.journal == nil {
		return
	}

	_, err := m.journal.RecordRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Session:   m.session,
		Cause:     sum.Cause,
		Length:    sum.Length,
		FoodEaten: sum.FoodEaten,
		Ticks:     sum.Ticks,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// View renders the game followed by the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen on the latest frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
