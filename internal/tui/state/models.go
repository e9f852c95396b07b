package state

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Granularity is the zoom level of the calendar grid.
type Granularity int

const (
	DayView   Granularity = iota // a month of days
	MonthView                    // a year of months
	YearView                     // a decade of years
)

func (g Granularity) String() string {
	switch g {
	case DayView:
		return "day"
	case MonthView:
		return "month"
	case YearView:
		return "year"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

// ParseGranularity accepts the names returned by Granularity.String.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "day", "days":
		return DayView, nil
	case "month", "months":
		return MonthView, nil
	case "year", "years", "decade":
		return YearView, nil
	}
	return 0, fmt.Errorf("unknown granularity %q", s)
}

// Direction is a navigation request delivered by the host.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
)

var (
	ErrInvalidRange      = errors.New("earliest date is after latest date")
	ErrInvalidViewLimits = errors.New("lowest granularity must be below highest")
)

// DateRange is an optional inclusive interval of calendar days.
type DateRange struct {
	Earliest *time.Time
	Latest   *time.Time
}

// Validate reports ErrInvalidRange when both bounds are set and out of order.
func (r DateRange) Validate() error {
	if r.Earliest != nil && r.Latest != nil && Day(*r.Earliest).After(Day(*r.Latest)) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidRange,
			r.Earliest.Format(time.DateOnly), r.Latest.Format(time.DateOnly))
	}
	return nil
}

// CalendarState holds everything the calendar widget renders and navigates.
// It is only ever replaced through the reducers in this package.
type CalendarState struct {
	// Zoom
	View    Granularity
	Lowest  Granularity
	Highest Granularity

	// Dates, all truncated to midnight in Location
	Focus    time.Time
	Selected time.Time // zero when nothing is selected
	Earliest *time.Time
	Latest   *time.Time

	// Presentation
	WeekStart time.Weekday
	ISOWeeks  bool
	Enabled   bool
	Location  *time.Location

	// A date failing any of these is shown but cannot be submitted.
	Exclusions []datetime.Constraints
}

// HasSelection reports whether a date has been selected.
func (s CalendarState) HasSelection() bool { return !s.Selected.IsZero() }

// Range returns the configured bounds.
func (s CalendarState) Range() DateRange {
	return DateRange{Earliest: s.Earliest, Latest: s.Latest}
}
