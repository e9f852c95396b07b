package state

import (
	"fmt"
	"time"
)

// New builds the initial state for a calendar focused on initial. The focused
// and selected dates are clamped into r.
func New(initial time.Time, r DateRange) (CalendarState, error) {
	if err := r.Validate(); err != nil {
		return CalendarState{}, err
	}
	s := CalendarState{
		View:      DayView,
		Lowest:    DayView,
		Highest:   YearView,
		WeekStart: time.Monday,
		Enabled:   true,
		Location:  initial.Location(),
	}
	s = withBounds(s, r)
	s.Focus = Clamp(s, initial)
	s.Selected = s.Focus
	return s, nil
}

func withBounds(s CalendarState, r DateRange) CalendarState {
	s.Earliest, s.Latest = nil, nil
	if r.Earliest != nil {
		e := s.normalize(*r.Earliest)
		s.Earliest = &e
	}
	if r.Latest != nil {
		l := s.normalize(*r.Latest)
		s.Latest = &l
	}
	return s
}

// Clamp truncates t to a calendar day and pulls it into the configured bounds.
func Clamp(s CalendarState, t time.Time) time.Time {
	t = s.normalize(t)
	if s.Earliest != nil && t.Before(*s.Earliest) {
		return *s.Earliest
	}
	if s.Latest != nil && t.After(*s.Latest) {
		return *s.Latest
	}
	return t
}

// SetSelected sets the selected date, clamped into bounds.
func SetSelected(s CalendarState, t time.Time) CalendarState {
	s.Selected = Clamp(s, t)
	return s
}

// ClearSelection drops the selected date.
func ClearSelection(s CalendarState) CalendarState {
	s.Selected = time.Time{}
	return s
}

// SetFocus moves the focused date, clamped into bounds.
func SetFocus(s CalendarState, t time.Time) CalendarState {
	s.Focus = Clamp(s, t)
	return s
}

// JumpTo focuses t; it is SetFocus under the name used by key and pointer handlers.
func JumpTo(s CalendarState, t time.Time) CalendarState {
	return SetFocus(s, t)
}

// SetView switches granularity if g lies within [Lowest, Highest].
func SetView(s CalendarState, g Granularity) CalendarState {
	if g >= s.Lowest && g <= s.Highest {
		s.View = g
	}
	return s
}

// SetLowest lowers or raises the finest granularity. It is ignored unless g
// stays strictly below Highest.
func SetLowest(s CalendarState, g Granularity) CalendarState {
	if g < s.Highest {
		s.Lowest = g
		if s.View < s.Lowest {
			s.View = s.Lowest
		}
	}
	return s
}

// SetHighest is the counterpart of SetLowest.
func SetHighest(s CalendarState, g Granularity) CalendarState {
	if g > s.Lowest {
		s.Highest = g
		if s.View > s.Highest {
			s.View = s.Highest
		}
	}
	return s
}

// SetViewLimits sets both granularity limits at once and fails when they are
// not strictly ordered.
func SetViewLimits(s CalendarState, lowest, highest Granularity) (CalendarState, error) {
	if lowest >= highest || lowest < DayView || highest > YearView {
		return s, fmt.Errorf("%w: %s/%s", ErrInvalidViewLimits, lowest, highest)
	}
	s.Lowest, s.Highest = lowest, highest
	if s.View < lowest {
		s.View = lowest
	}
	if s.View > highest {
		s.View = highest
	}
	return s, nil
}

// SetBounds replaces the date range and clamps focus and selection into it.
func SetBounds(s CalendarState, r DateRange) (CalendarState, error) {
	if err := r.Validate(); err != nil {
		return s, err
	}
	s = withBounds(s, r)
	s.Focus = Clamp(s, s.Focus)
	if s.HasSelection() {
		s.Selected = Clamp(s, s.Selected)
	}
	return s, nil
}

// Offsets returns the (days, months, years) delta for a direction at the
// current granularity. Home and End are handled by Move.
func Offsets(g Granularity, d Direction) (days, months, years int) {
	type delta struct{ d, m, y int }
	table := map[Granularity]map[Direction]delta{
		DayView: {
			Up: {-7, 0, 0}, Down: {7, 0, 0}, Left: {-1, 0, 0}, Right: {1, 0, 0},
			PageUp: {0, -1, 0}, PageDown: {0, 1, 0},
		},
		MonthView: {
			Up: {0, -4, 0}, Down: {0, 4, 0}, Left: {0, -1, 0}, Right: {0, 1, 0},
			PageUp: {0, 0, -1}, PageDown: {0, 0, 1},
		},
		YearView: {
			Up: {0, 0, -4}, Down: {0, 0, 4}, Left: {0, 0, -1}, Right: {0, 0, 1},
			PageUp: {0, 0, -10}, PageDown: {0, 0, 10},
		},
	}
	o := table[g][d]
	return o.d, o.m, o.y
}

// Move navigates the focused date. Moves past a bound stop at the bound.
func Move(s CalendarState, d Direction) CalendarState {
	f := s.Focus
	switch d {
	case Home, End:
		return SetFocus(s, edge(s.View, f, d == End))
	}
	days, months, years := Offsets(s.View, d)
	return SetFocus(s, OffsetDate(f, days, months, years))
}

func edge(g Granularity, f time.Time, last bool) time.Time {
	switch g {
	case DayView:
		if last {
			return time.Date(f.Year(), f.Month(), DaysIn(f.Year(), f.Month()), 0, 0, 0, 0, f.Location())
		}
		return time.Date(f.Year(), f.Month(), 1, 0, 0, 0, 0, f.Location())
	case MonthView:
		if last {
			return OffsetDate(f, 0, int(time.December-f.Month()), 0)
		}
		return OffsetDate(f, 0, int(time.January-f.Month()), 0)
	default:
		start := DecadeStart(f.Year())
		if last {
			return OffsetDate(f, 0, 0, start+9-f.Year())
		}
		return OffsetDate(f, 0, 0, start-f.Year())
	}
}

// ZoomOut shows a coarser grid, stopping at Highest. Focus is unchanged.
func ZoomOut(s CalendarState) CalendarState {
	if s.View < s.Highest {
		s.View++
	}
	return s
}

// ZoomIn shows a finer grid, stopping at Lowest. Focus is unchanged.
func ZoomIn(s CalendarState) CalendarState {
	if s.View > s.Lowest {
		s.View--
	}
	return s
}

// Submit selects the focused date when the grid is at its finest granularity
// and reports true. Above that it zooms in one level instead. Unavailable
// dates are never selected.
func Submit(s CalendarState) (CalendarState, bool) {
	if s.View != s.Lowest {
		return ZoomIn(s), false
	}
	if !DateAvailable(s, s.Focus) {
		return s, false
	}
	s.Selected = s.Focus
	return s, true
}

// SetWeekStart changes the first column of the day grid.
func SetWeekStart(s CalendarState, d time.Weekday) CalendarState {
	s.WeekStart = d
	return s
}

// ToggleISOWeeks flips the ISO week column.
func ToggleISOWeeks(s CalendarState) CalendarState {
	s.ISOWeeks = !s.ISOWeeks
	return s
}

// SetEnabled enables or disables input handling.
func SetEnabled(s CalendarState, enabled bool) CalendarState {
	s.Enabled = enabled
	return s
}
