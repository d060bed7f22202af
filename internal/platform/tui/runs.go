package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/storage"
)

// maxRuns is how many journal entries the viewer loads.
const maxRuns = 200

// RunsSource reads the run journal. *storage.Store implements it.
type RunsSource interface {
	RecentRuns(gameID string, limit int) ([]storage.RunRecord, error)
	Stats(gameID string) (*storage.RunStats, error)
}

// RunsKeyMap defines the key bindings for the journal viewer.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Top  key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Top, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "newest"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run journal.
type RunsModel struct {
	gameID   string
	runs     []storage.RunRecord
	stats    *storage.RunStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel loads the journal for gameID and builds the viewer.
func NewRunsModel(src RunsSource, gameID string, width, height int) RunsModel {
	m := RunsModel{
		gameID: gameID,
		keys:   DefaultRunsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	m.runs, m.loadErr = src.RecentRuns(gameID, maxRuns)
	if m.loadErr == nil {
		m.stats, m.loadErr = src.Stats(gameID)
	}

	m.table = NewRunsTable(m.runs, m.height-8)
	return m
}

// NewRunsTable builds a table of journal entries, newest first.
func NewRunsTable(runs []storage.RunRecord, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "When", Width: 14},
		{Title: "Player", Width: 12},
		{Title: "Cause", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Food", Width: 5},
		{Title: "Ticks", Width: 6},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		player := r.Session
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			player,
			r.Cause,
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.FoodEaten),
			fmt.Sprintf("%d", r.Ticks),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the viewer.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the viewer.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-8, 3))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the viewer.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUN JOURNAL - %s", m.gameID)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.summary()))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.body()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m RunsModel) summary() string {
	if m.loadErr != nil {
		return fmt.Sprintf("journal unavailable: %v", m.loadErr)
	}
	return FormatStats(m.stats)
}

func (m RunsModel) body() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.")
	}
	return m.table.View()
}

// FormatStats renders aggregate journal figures on one line.
func FormatStats(s *storage.RunStats) string {
	if s == nil || s.Runs == 0 {
		return "0 runs"
	}
	line := fmt.Sprintf("%d runs  wall %d  self %d  food %d  avg length %.1f  max length %d",
		s.Runs, s.WallDeaths, s.SelfDeaths, s.TotalFood, s.AvgLength, s.MaxLength)
	if !s.LastPlayed.IsZero() {
		line += "  last " + s.LastPlayed.Local().Format("Jan 02 15:04")
	}
	return line
}

// RunRunsViewer runs the interactive journal viewer.
func RunRunsViewer(src RunsSource, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(src, gameID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
