package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/dateutil"
	"github.com/javiermolinar/fecha/internal/picker"
)

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		m.ctrl.Cancel()
		return tea.Quit
	}

	if m.mode == ModePrompt {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		m.ctrl.Cancel()
		return tea.Quit

	// Navigation
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-7)
	case "j", "down":
		m.moveCursor(7)
	case "[", "pgup":
		m.shiftMonth(-1)
	case "]", "pgdown":
		m.shiftMonth(1)
	case "{":
		m.shiftMonth(-12)
	case "}":
		m.shiftMonth(12)
	case "t":
		m.gotoDate(m.nowDate())

	// Selection
	case "enter", " ":
		if vm := m.ctrl.CellViewModel(m.gridPosition(m.cursor), m.cursor); vm.Disabled {
			return m.setStatus("Date is outside the selectable range")
		}
		m.ctrl.HandleDateTapped(m.cursor)
		m.afterSelectionChange("tap")
		if m.ctrl.Finished() {
			return tea.Quit
		}
	case "m":
		if !m.monthSelectEnabled() {
			break
		}
		m.ctrl.SelectMonth(m.month)
		m.afterSelectionChange("month-header")
		want := picker.DateRange(m.month, dateutil.EndOfMonth(m.month))
		if !m.ctrl.Value().SameAs(want) {
			return m.setStatus("Month is outside the selectable range")
		}
	case "c":
		m.ctrl.Clear()
		m.afterSelectionChange("clear")

	// Shortcuts
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx >= len(m.ctrl.Shortcuts()) {
			break
		}
		m.ctrl.ApplyShortcut(idx)
		m.afterSelectionChange("shortcut")
		if !m.ctrl.Value().SameAs(m.ctrl.ShortcutValue(idx)) {
			return m.setStatus(fmt.Sprintf("%q is outside the selectable range", m.ctrl.Shortcuts()[idx].Label))
		}
		if v := m.ctrl.Value(); v != nil {
			m.gotoDate(v.Date())
		}

	// Utilities
	case "g":
		m.mode = ModePrompt
		m.prompt.SetValue("")
		return m.prompt.Focus()
	case "y":
		if v := m.ctrl.Value(); v != nil {
			if err := clipboard.WriteAll(v.String()); err != nil {
				LogError("clipboard", err)
				return m.setStatus("Copy failed")
			}
			return m.setStatus("Copied " + v.String())
		}

	// Dismissal
	case "d":
		m.ctrl.Confirm()
		return tea.Quit
	}

	return nil
}

// handlePromptKeys handles keys while the jump-to-date prompt is focused.
func (m *Model) handlePromptKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return nil
	case "enter":
		input := m.prompt.Value()
		m.mode = ModeNormal
		m.prompt.Blur()

		d, err := dateutil.ParseDate(input)
		if err != nil || d.IsZero() {
			return m.setStatus("Enter a date as YYYY-MM-DD")
		}
		if clamped := m.clampToWindow(d); !dateutil.SameDay(clamped, d) {
			m.gotoDate(clamped)
			return m.setStatus("Date is outside the visible range")
		}
		m.gotoDate(d)
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// afterSelectionChange refreshes everything derived from the value.
func (m *Model) afterSelectionChange(reason string) {
	m.highlighted = m.ctrl.ShortcutHighlight()
	m.markCacheDirty()
	LogSelection(m.ctrl.Value().String(), reason)
}

func (m *Model) monthSelectEnabled() bool {
	return m.ctrl.Options().Mode == picker.ModeRange && m.config.Picker.SelectWholeMonth
}
