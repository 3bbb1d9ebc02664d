package picker

import (
	"strconv"
	"time"

	"github.com/javiermolinar/fecha/internal/dateutil"
)

// Config collects everything a Controller needs for one presentation.
type Config struct {
	Options   Options
	Bounds    Bounds
	Shortcuts []Shortcut

	// SelectWholeMonth enables the header tap that selects an entire
	// month. Range mode only.
	SelectWholeMonth bool

	// CloseOnSelect confirms and dismisses as soon as a selection is
	// complete, without waiting for an explicit confirm.
	CloseOnSelect bool
}

// Result is the outcome of a presentation: the final value, or a
// cancellation.
type Result struct {
	Value    *Value
	Canceled bool
}

// DoneFunc receives the presentation result. It is called exactly once.
type DoneFunc func(Result)

// Controller owns the current selection and the cell cache, and drives
// both from grid taps, shortcuts and header taps. It is single-use: once
// confirmed or canceled it ignores further events.
type Controller struct {
	cfg   Config
	value *Value
	cache *CellCache

	nowFunc func() time.Time

	onChange    func(*Value)
	onHighlight func(int)
	done        DoneFunc

	finished    bool
	dispatching bool
}

// Option configures optional controller behavior.
type Option func(*Controller)

// WithInitialValue injects a starting selection.
func WithInitialValue(v *Value) Option {
	return func(c *Controller) {
		c.value = v
	}
}

// WithNow overrides the clock, mainly for tests.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) {
		c.nowFunc = now
	}
}

// WithOnChange registers the value-display observer, called after every
// selection change with the new value.
func WithOnChange(fn func(*Value)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithOnHighlight registers the shortcut-highlight observer, called
// after every selection change with the matching shortcut index (-1
// when none matches).
func WithOnHighlight(fn func(int)) Option {
	return func(c *Controller) {
		c.onHighlight = fn
	}
}

// NewController creates a controller for a single presentation.
// done receives the result exactly once, on confirm or cancel.
func NewController(cfg Config, done DoneFunc, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		cache:   NewCellCache(),
		nowFunc: time.Now,
		done:    done,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the current selection, nil when nothing is selected.
func (c *Controller) Value() *Value {
	return c.value
}

// Finished reports whether the presentation has ended.
func (c *Controller) Finished() bool {
	return c.finished
}

// HandleDateTapped feeds a user-initiated grid tap through the selection
// policy. Programmatic selection echoes re-entering through an observer
// are dropped so the policy never runs against itself.
func (c *Controller) HandleDateTapped(d time.Time) {
	if c.finished || c.dispatching {
		return
	}
	c.dispatching = true
	defer func() { c.dispatching = false }()

	// Stale highlight state must never survive a tap, so the cache is
	// dropped before the new selection is computed.
	c.cache.InvalidateAll()

	next := NextValue(c.value, d, c.cfg.Options)
	c.setValue(next)

	if c.cfg.CloseOnSelect && c.selectionComplete() {
		c.finish(Result{Value: c.value})
	}
}

// ApplyShortcut applies the shortcut at index i. A result outside the
// configured bounds is rejected silently and the prior value kept.
func (c *Controller) ApplyShortcut(i int) {
	if c.finished || i < 0 || i >= len(c.cfg.Shortcuts) {
		return
	}
	v := c.cfg.Shortcuts[i].Make(c.nowFunc())
	if c.cfg.Bounds.OutOfRange(v) {
		return
	}
	c.cache.InvalidateAll()
	c.setValue(v)
}

// SelectMonth selects the whole month containing d in response to a
// header tap. Only active in range mode with the feature enabled, and
// vetoed silently when the month falls outside the bounds.
func (c *Controller) SelectMonth(d time.Time) {
	if c.finished || !c.cfg.SelectWholeMonth || c.cfg.Options.Mode != ModeRange {
		return
	}
	v := DateRange(dateutil.StartOfMonth(d), dateutil.EndOfMonth(d))
	if c.cfg.Bounds.OutOfRange(v) {
		return
	}
	c.cache.InvalidateAll()
	c.setValue(v)
}

// Clear drops the current selection.
func (c *Controller) Clear() {
	if c.finished {
		return
	}
	c.cache.InvalidateAll()
	c.setValue(nil)
}

// Confirm ends the presentation with the current value.
func (c *Controller) Confirm() {
	c.finish(Result{Value: c.value})
}

// Cancel ends the presentation without a value.
func (c *Controller) Cancel() {
	c.finish(Result{Canceled: true})
}

// CellViewModel returns the visual state for a grid cell, computing and
// caching it on first access after an invalidation.
func (c *Controller) CellViewModel(pos Position, d time.Time) CellViewModel {
	if vm, ok := c.cache.Get(pos); ok {
		return vm
	}
	vm := CellViewModel{
		Label:    strconv.Itoa(d.Day()),
		Selected: c.value.Contains(d),
		Today:    dateutil.SameDay(d, c.nowFunc()),
		Disabled: c.cfg.Bounds.DateOutOfRange(d),
	}
	c.cache.Put(pos, vm)
	return vm
}

// VisibleWindow returns the scrollable extent of the grid.
func (c *Controller) VisibleWindow() (start, end time.Time) {
	return c.cfg.Bounds.VisibleWindow(c.nowFunc())
}

// Shortcuts returns the configured shortcut presets.
func (c *Controller) Shortcuts() []Shortcut {
	return c.cfg.Shortcuts
}

// ShortcutValue returns the value the shortcut at index i would produce
// if applied now, without applying it.
func (c *Controller) ShortcutValue(i int) *Value {
	if i < 0 || i >= len(c.cfg.Shortcuts) {
		return nil
	}
	return c.cfg.Shortcuts[i].Make(c.nowFunc())
}

// ShortcutHighlight returns the index of the shortcut matching the
// current value, or -1.
func (c *Controller) ShortcutHighlight() int {
	now := c.nowFunc()
	for i, s := range c.cfg.Shortcuts {
		if s.Matches(c.value, now) {
			return i
		}
	}
	return -1
}

// Options returns the active selection options.
func (c *Controller) Options() Options {
	return c.cfg.Options
}

func (c *Controller) setValue(v *Value) {
	c.value = v
	if c.onChange != nil {
		c.onChange(v)
	}
	if c.onHighlight != nil {
		c.onHighlight(c.ShortcutHighlight())
	}
}

// selectionComplete reports whether the current value is final enough
// for close-on-select: any single date, or a range extended past its
// initial single-day state.
func (c *Controller) selectionComplete() bool {
	if c.value == nil {
		return false
	}
	if c.cfg.Options.Mode == ModeSingle {
		return true
	}
	return !c.value.SingleDay()
}

func (c *Controller) finish(r Result) {
	if c.finished {
		return
	}
	c.finished = true
	if c.done != nil {
		c.done(r)
	}
}
