package state

import (
	"time"

	"cloudeng.io/datetime"
)

// Day truncates t to midnight, keeping its location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay compares calendar fields only.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysIn returns the number of days of month m in year y.
func DaysIn(y int, m time.Month) int {
	return int(datetime.DaysInMonth(y, datetime.Month(m)))
}

// OffsetDate moves t by whole years and months first, clamping the day to the
// length of the target month, and then by days. Jan 31 plus one month is the
// last day of February.
func OffsetDate(t time.Time, days, months, years int) time.Time {
	y := t.Year() + years
	m := int(t.Month()) - 1 + months
	y += floorDiv(m, 12)
	m = m - floorDiv(m, 12)*12
	month := time.Month(m + 1)
	d := t.Day()
	if n := DaysIn(y, month); d > n {
		d = n
	}
	return time.Date(y, month, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, days)
}

// DecadeStart returns the first year of the decade containing y.
func DecadeStart(y int) int {
	return floorDiv(y, 10) * 10
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (s CalendarState) loc() *time.Location {
	if s.Location == nil {
		return time.Local
	}
	return s.Location
}

// normalize reinterprets the calendar fields of t in the state location.
func (s CalendarState) normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc())
}

// InRange reports whether t lies within the configured bounds.
func InRange(s CalendarState, t time.Time) bool {
	t = s.normalize(t)
	if s.Earliest != nil && t.Before(*s.Earliest) {
		return false
	}
	if s.Latest != nil && t.After(*s.Latest) {
		return false
	}
	return true
}

// Excluded reports whether any exclusion constraint rejects t.
func Excluded(s CalendarState, t time.Time) bool {
	for _, c := range s.Exclusions {
		if !c.Include(t) {
			return true
		}
	}
	return false
}

// DateAvailable reports whether t can be submitted.
func DateAvailable(s CalendarState, t time.Time) bool {
	return InRange(s, t) && !Excluded(s, t)
}

// YearAvailable reports whether any day of year y lies within bounds.
func YearAvailable(s CalendarState, y int) bool {
	if s.Earliest != nil && y < s.Earliest.Year() {
		return false
	}
	if s.Latest != nil && y > s.Latest.Year() {
		return false
	}
	return true
}

// MonthAvailable reports whether any day of month m in year y lies within bounds.
func MonthAvailable(s CalendarState, y int, m time.Month) bool {
	if !YearAvailable(s, y) {
		return false
	}
	if s.Earliest != nil && y == s.Earliest.Year() && m < s.Earliest.Month() {
		return false
	}
	if s.Latest != nil && y == s.Latest.Year() && m > s.Latest.Month() {
		return false
	}
	return true
}
