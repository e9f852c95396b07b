package util

import (
	"time"

	"calpick/internal/tui/state"
)

// ComputeTags describes the focused date of s relative to today.
//
// The returned slice preserves a stable order:
//
//	Today, Selected, Weekend, Unavailable, At Min, At Max, ISO Week, Day of Year
//
// Rules:
//   - Selected is only reported when a selection exists and equals the focus.
//   - Unavailable covers both out-of-range and excluded dates.
//   - At Min / At Max mark a focus sitting on a configured bound, which is
//     where further navigation in that direction is clamped.
//   - ISO Week is included only when the ISO column is enabled.
//   - Day of Year is always included.
func ComputeTags(s state.CalendarState, today time.Time) []state.Tag {
	f := s.Focus
	tags := make([]state.Tag, 0, 8)

	if !today.IsZero() && state.SameDay(f, today) {
		tags = append(tags, state.Tag{Kind: state.TODAY})
	}
	if s.HasSelection() && state.SameDay(f, s.Selected) {
		tags = append(tags, state.Tag{Kind: state.SELECTED})
	}
	if wd := f.Weekday(); wd == time.Saturday || wd == time.Sunday {
		tags = append(tags, state.Tag{Kind: state.WEEKEND})
	}
	if !state.DateAvailable(s, f) {
		tags = append(tags, state.Tag{Kind: state.UNAVAILABLE})
	}
	if s.Earliest != nil && state.SameDay(f, *s.Earliest) {
		tags = append(tags, state.Tag{Kind: state.AT_MIN})
	}
	if s.Latest != nil && state.SameDay(f, *s.Latest) {
		tags = append(tags, state.Tag{Kind: state.AT_MAX})
	}
	if s.ISOWeeks {
		_, w := f.ISOWeek()
		tags = append(tags, state.Tag{Kind: state.ISO_WEEK, Value: w})
	}
	tags = append(tags, state.Tag{Kind: state.DAY_OF_YEAR, Value: f.YearDay()})
	return tags
}
