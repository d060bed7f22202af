// Package tui runs games in a Bubble Tea program, locally or per SSH
// session. It maps keys to actions, steps the game at a fixed frame rate,
// paints the screen buffer with lipgloss and journals terminated runs.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// TickMsg triggers one game frame.
type TickMsg time.Time

// tickCmd schedules the next frame.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.FrameDuration(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
