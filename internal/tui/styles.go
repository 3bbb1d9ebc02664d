// Package tui provides the terminal month-grid widget for fecha.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fecha/internal/tui/theme"
)

// Default cell width - recalculated from the terminal width.
const defaultCellWidth = 4

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorBgRange     lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Title and month header
	TitleStyle       lipgloss.Style
	MonthHeaderStyle lipgloss.Style

	// Weekday header row
	WeekdayStyle lipgloss.Style

	// Grid cells
	CellStyle         lipgloss.Style
	CellCursorStyle   lipgloss.Style
	CellSelectedStyle lipgloss.Style
	CellRangeStyle    lipgloss.Style
	CellTodayStyle    lipgloss.Style
	CellDisabledStyle lipgloss.Style

	// Shortcut bar
	ShortcutStyle       lipgloss.Style
	ShortcutActiveStyle lipgloss.Style

	// Value display and messages
	ValueStyle  lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Outer frame
	AppStyle lipgloss.Style
}

// NewStyles creates all styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorBgRange:     theme.Color(t.BgRange),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorToday:       theme.Color(t.Today),
		colorWarning:     theme.Color(t.Warning),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.MonthHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.WeekdayStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.CellCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorAccent).
		Bold(true)

	s.CellSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true)

	s.CellRangeStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgRange)

	s.CellTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorToday).
		Bold(true)

	s.CellDisabledStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Faint(true)

	s.ShortcutStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.ShortcutActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorAccent).
		Padding(0, 1)

	s.ValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Padding(1, 2)

	return s
}
