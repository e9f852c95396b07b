// Package calendar implements a date picker component for bubbletea programs.
//
// The widget renders a fixed 20x8 grid (23x8 with ISO weeks) in one of three
// granularities: the days of a month, the months of a year or the years of a
// decade. Arrow and page keys move the focused date, enter selects it or zooms
// in, backspace zooms out. Selections are reported to the host as SubmitMsg and
// focus changes as SelectMsg.
package calendar

import (
	"fmt"
	"log/slog"
	"time"

	"cloudeng.io/datetime"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"calpick/internal/tui/locale"
	"calpick/internal/tui/state"
	"calpick/internal/tui/util"
)

// SelectMsg is sent when the focused date changes.
type SelectMsg struct {
	ID   string
	Date time.Time
}

// SubmitMsg is sent when a date is selected.
type SubmitMsg struct {
	ID   string
	Date time.Time
}

// TodayMsg refreshes the today marker. It is scheduled by Init for the next
// midnight and re-armed every time it is handled.
type TodayMsg struct {
	ID  string
	Now time.Time
}

// Model is the calendar component.
type Model struct {
	id      string
	state   state.CalendarState
	focused bool
	today   time.Time

	keys   KeyMap
	theme  util.Theme
	locale locale.Locale
	now    func() time.Time
	log    *slog.Logger

	originX, originY int
}

type options struct {
	rng         state.DateRange
	view        *state.Granularity
	lowest      *state.Granularity
	highest     *state.Granularity
	weekStart   time.Weekday
	isoWeeks    bool
	noSelection bool
	locale      locale.Locale
	theme       *util.Theme
	keys        *KeyMap
	exclusions  []datetime.Constraints
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures a Model at construction.
type Option func(*options)

// WithRange bounds the selectable dates. Either end may be nil.
func WithRange(r state.DateRange) Option { return func(o *options) { o.rng = r } }

// WithEarliest sets the first selectable date.
func WithEarliest(t time.Time) Option { return func(o *options) { o.rng.Earliest = &t } }

// WithLatest sets the last selectable date.
func WithLatest(t time.Time) Option { return func(o *options) { o.rng.Latest = &t } }

// WithView sets the initial granularity.
func WithView(g state.Granularity) Option { return func(o *options) { o.view = &g } }

// WithLowest sets the granularity at which enter selects.
func WithLowest(g state.Granularity) Option { return func(o *options) { o.lowest = &g } }

// WithHighest sets the coarsest granularity reachable by zooming out.
func WithHighest(g state.Granularity) Option { return func(o *options) { o.highest = &g } }

// WithWeekStart sets the first column of the day grid. Defaults to Monday.
func WithWeekStart(d time.Weekday) Option { return func(o *options) { o.weekStart = d } }

// WithISOWeeks shows ISO week numbers left of the day grid.
func WithISOWeeks(show bool) Option { return func(o *options) { o.isoWeeks = show } }

// WithoutSelection starts with no selected date.
func WithoutSelection() Option { return func(o *options) { o.noSelection = true } }

func WithLocale(l locale.Locale) Option { return func(o *options) { o.locale = l } }

func WithTheme(t util.Theme) Option { return func(o *options) { o.theme = &t } }

func WithKeyMap(k KeyMap) Option { return func(o *options) { o.keys = &k } }

// WithExclusions marks dates rejected by any constraint as unavailable.
func WithExclusions(c ...datetime.Constraints) Option {
	return func(o *options) { o.exclusions = append(o.exclusions, c...) }
}

// WithClock replaces time.Now for the today marker.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

func WithLogger(l *slog.Logger) Option { return func(o *options) { o.logger = l } }

// New creates a calendar focused on initial. It fails when the range or the
// granularity options are inconsistent.
func New(initial time.Time, opts ...Option) (Model, error) {
	o := options{
		weekStart: time.Monday,
		locale:    locale.English{},
		now:       time.Now,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(&o)
	}

	s, err := state.New(initial, o.rng)
	if err != nil {
		return Model{}, fmt.Errorf("calendar: %w", err)
	}
	lowest, highest := s.Lowest, s.Highest
	if o.lowest != nil {
		lowest = *o.lowest
	}
	if o.highest != nil {
		highest = *o.highest
	}
	if s, err = state.SetViewLimits(s, lowest, highest); err != nil {
		return Model{}, fmt.Errorf("calendar: %w", err)
	}
	if o.view != nil {
		if *o.view < lowest || *o.view > highest {
			return Model{}, fmt.Errorf("calendar: %w: view %s outside %s..%s",
				state.ErrInvalidViewLimits, *o.view, lowest, highest)
		}
		s = state.SetView(s, *o.view)
	}
	s = state.SetWeekStart(s, o.weekStart)
	s.ISOWeeks = o.isoWeeks
	s.Exclusions = o.exclusions
	if o.noSelection {
		s = state.ClearSelection(s)
	}

	m := Model{
		id:     uuid.NewString(),
		state:  s,
		locale: o.locale,
		now:    o.now,
		log:    o.logger,
	}
	if o.keys != nil {
		m.keys = *o.keys
	} else {
		m.keys = DefaultKeyMap()
	}
	if o.theme != nil {
		m.theme = *o.theme
	} else {
		m.theme = util.DefaultTheme(util.DefaultPalette(), util.NoColor(false))
	}
	m.today = state.Day(m.now().In(s.Location))
	return m, nil
}

// ID identifies this calendar in the messages it emits.
func (m Model) ID() string { return m.id }

// State returns a copy of the underlying calendar state.
func (m Model) State() state.CalendarState { return m.state }

// Date returns the selected date and whether one is set.
func (m Model) Date() (time.Time, bool) { return m.state.Selected, m.state.HasSelection() }

// FocusDate returns the date under the cursor.
func (m Model) FocusDate() time.Time { return m.state.Focus }

// Today returns the date currently marked as today.
func (m Model) Today() time.Time { return m.today }

func (m Model) Width() int  { return state.Width(m.state) }
func (m Model) Height() int { return state.GridHeight }

func (m Model) KeyMap() KeyMap { return m.keys }

// Focus gives keyboard focus to the calendar. Disabled calendars refuse it.
func (m *Model) Focus() bool {
	if !m.state.Enabled {
		return false
	}
	m.focused = true
	return true
}

func (m *Model) Blur() { m.focused = false }

func (m Model) Focused() bool { return m.focused }

func (m *Model) SetEnabled(enabled bool) { m.state = state.SetEnabled(m.state, enabled) }

func (m Model) Enabled() bool { return m.state.Enabled }

// SetOrigin records where the host draws the widget so mouse coordinates can
// be translated to grid positions.
func (m *Model) SetOrigin(x, y int) { m.originX, m.originY = x, y }

func (m *Model) SetSelectedDate(t time.Time) { m.state = state.SetSelected(m.state, t) }

func (m *Model) SetFocusDate(t time.Time) { m.state = state.SetFocus(m.state, t) }

func (m *Model) SetViewMode(g state.Granularity) { m.state = state.SetView(m.state, g) }

func (m *Model) SetLowest(g state.Granularity) { m.state = state.SetLowest(m.state, g) }

func (m *Model) SetHighest(g state.Granularity) { m.state = state.SetHighest(m.state, g) }

func (m *Model) SetWeekStart(d time.Weekday) { m.state = state.SetWeekStart(m.state, d) }

func (m *Model) SetISOWeeks(show bool) { m.state.ISOWeeks = show }

// SetRange replaces the bounds, clamping the focused and selected dates.
func (m *Model) SetRange(r state.DateRange) error {
	s, err := state.SetBounds(m.state, r)
	if err != nil {
		return err
	}
	m.state = s
	return nil
}

// Init arms the midnight refresh of the today marker.
func (m Model) Init() tea.Cmd {
	return m.tickToday()
}

func (m Model) tickToday() tea.Cmd {
	id := m.id
	now := m.now()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return TodayMsg{ID: id, Now: t}
	})
}

// Update implements the bubbletea component contract.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m, cmd, _ := m.Handle(msg)
	return m, cmd
}

// Handle is Update that also reports whether the calendar consumed msg, so
// hosts can fall through to their own bindings.
func (m Model) Handle(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case TodayMsg:
		if msg.ID != m.id {
			return m, nil, false
		}
		m.today = state.Day(msg.Now.In(m.state.Location))
		return m, m.tickToday(), true
	case tea.KeyMsg:
		if !m.state.Enabled || !m.focused {
			return m, nil, false
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if !m.state.Enabled {
			return m, nil, false
		}
		return m.handleMouse(msg)
	}
	return m, nil, false
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	k := m.keys
	moves := []struct {
		binding key.Binding
		dir     state.Direction
	}{
		{k.Up, state.Up}, {k.Down, state.Down}, {k.Left, state.Left}, {k.Right, state.Right},
		{k.PageUp, state.PageUp}, {k.PageDown, state.PageDown}, {k.Home, state.Home}, {k.End, state.End},
	}
	for _, mv := range moves {
		if key.Matches(msg, mv.binding) {
			prev := m.state.Focus
			m.state = state.Move(m.state, mv.dir)
			if state.SameDay(prev, m.state.Focus) {
				m.log.Debug("calendar navigation clamped", "id", m.id, "key", msg.String(), "date", prev.Format(time.DateOnly))
			}
			return m, m.selectCmd(prev), true
		}
	}
	switch {
	case key.Matches(msg, k.Today):
		prev := m.state.Focus
		m.state = state.JumpTo(m.state, m.today)
		return m, m.selectCmd(prev), true
	case key.Matches(msg, k.ZoomOut):
		m.state = state.ZoomOut(m.state)
		m.log.Debug("calendar zoom", "id", m.id, "view", m.state.View.String())
		return m, nil, true
	case key.Matches(msg, k.Submit):
		return m.submit()
	}
	return m, nil, false
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd, bool) {
	if msg.Action != tea.MouseActionPress {
		return m, nil, false
	}
	x, y := msg.X-m.originX, msg.Y-m.originY
	if x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
		return m, nil, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		prev := m.state.Focus
		dir := state.PageUp
		if msg.Button == tea.MouseButtonWheelDown {
			dir = state.PageDown
		}
		m.focused = true
		m.state = state.Move(m.state, dir)
		return m, m.selectCmd(prev), true
	}
	cell, ok := state.HitTest(m.state, x, y)
	if !ok {
		return m, nil, false
	}
	m.focused = true
	if cell.Focused {
		if msg.Button == tea.MouseButtonLeft {
			return m.submit()
		}
		return m, nil, true
	}
	prev := m.state.Focus
	m.state = state.JumpTo(m.state, cell.Date)
	return m, m.selectCmd(prev), true
}

func (m Model) submit() (Model, tea.Cmd, bool) {
	var ok bool
	m.state, ok = state.Submit(m.state)
	if !ok {
		m.log.Debug("calendar enter", "id", m.id, "view", m.state.View.String())
		return m, nil, true
	}
	id, d := m.id, m.state.Selected
	m.log.Debug("calendar submit", "id", id, "date", d.Format(time.DateOnly))
	return m, func() tea.Msg { return SubmitMsg{ID: id, Date: d} }, true
}

func (m Model) selectCmd(prev time.Time) tea.Cmd {
	if state.SameDay(prev, m.state.Focus) {
		return nil
	}
	id, d := m.id, m.state.Focus
	return func() tea.Msg { return SelectMsg{ID: id, Date: d} }
}
