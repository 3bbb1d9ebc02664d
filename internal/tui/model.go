package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/fecha/internal/config"
	"github.com/javiermolinar/fecha/internal/dateutil"
	"github.com/javiermolinar/fecha/internal/picker"
	"github.com/javiermolinar/fecha/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt      // Jump-to-date prompt is focused
)

// Model is the month-grid widget driving a picker.Controller.
type Model struct {
	// Dependencies
	ctrl   *picker.Controller
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Grid state
	firstWeekday time.Weekday
	windowStart  time.Time // First visible day
	windowEnd    time.Time // Last visible instant
	month        time.Time // Start of the displayed month
	cursor       time.Time // Cell under the cursor
	mode         Mode

	// Shortcut bar highlight, -1 when nothing matches
	highlighted int

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width     int
	height    int
	cellWidth int

	// Cached render data
	styleCache       StyleCache
	renderCache      RenderCache
	cacheNeedsUpdate bool

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNowDate positions the cursor, mainly for tests.
func WithNowDate(d time.Time) ModelOption {
	return func(m *Model) {
		m.gotoDate(d)
	}
}

// New creates a new grid model around an already-configured controller.
func New(ctrl *picker.Controller, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	firstWeekday, err := dateutil.ParseWeekday(cfg.UI.FirstWeekday)
	if err != nil {
		firstWeekday = time.Monday
	}

	prompt := textinput.New()
	prompt.Placeholder = "YYYY-MM-DD"
	prompt.CharLimit = 10
	prompt.Width = 12

	windowStart, windowEnd := ctrl.VisibleWindow()

	m := &Model{
		ctrl:             ctrl,
		config:           cfg,
		theme:            t,
		styles:           styles,
		firstWeekday:     firstWeekday,
		windowStart:      windowStart,
		windowEnd:        windowEnd,
		highlighted:      ctrl.ShortcutHighlight(),
		prompt:           prompt,
		cellWidth:        defaultCellWidth,
		styleCache:       NewStyleCache(styles, defaultCellWidth),
		cacheNeedsUpdate: true,
	}
	m.gotoDate(time.Now())
	if v := ctrl.Value(); v != nil {
		m.gotoDate(v.Date())
	}

	for _, opt := range opts {
		opt(m)
	}

	m.refreshRenderCache()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) markCacheDirty() {
	m.cacheNeedsUpdate = true
}

func (m *Model) refreshCachesIfNeeded() {
	if m.cacheNeedsUpdate {
		m.refreshRenderCache()
		m.cacheNeedsUpdate = false
	}
}

// Run presents the picker and returns its result after dismissal.
func Run(pcfg picker.Config, cfg *config.Config, initial *picker.Value) (picker.Result, error) {
	return RunWithDebug(pcfg, cfg, initial, false)
}

// RunWithDebug presents the picker with optional debug logging.
func RunWithDebug(pcfg picker.Config, cfg *config.Config, initial *picker.Value, debug bool) (picker.Result, error) {
	if err := InitDebugLogger(debug); err != nil {
		return picker.Result{}, err
	}
	defer CloseDebugLogger()

	var result picker.Result
	ctrl := picker.NewController(pcfg, func(r picker.Result) {
		result = r
	}, picker.WithInitialValue(initial))

	model := New(ctrl, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return picker.Result{}, err
	}

	// The user closing the terminal widget without confirming counts as
	// a cancellation; the controller still fires its callback once.
	if !ctrl.Finished() {
		ctrl.Cancel()
	}
	return result, nil
}
