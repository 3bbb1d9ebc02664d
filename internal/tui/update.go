package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusClearMsg asks the model to drop an expired status message.
type statusClearMsg struct{}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := m.handleKeyMsg(msg)
		m.refreshCachesIfNeeded()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cellWidth = m.calculateCellWidth()
		m.styleCache = NewStyleCache(m.styles, m.cellWidth)
		m.refreshRenderCache()
		return m, nil

	case statusClearMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// calculateCellWidth sizes grid cells to the terminal, within reason.
func (m *Model) calculateCellWidth() int {
	if m.width <= 0 {
		return defaultCellWidth
	}
	frameW, _ := m.styles.AppStyle.GetFrameSize()
	w := (m.width - frameW) / 7
	if w < 3 {
		w = 3
	}
	if w > 6 {
		w = 6
	}
	return w
}

// setStatus shows a transient message for a few seconds.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(3 * time.Second)
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}
