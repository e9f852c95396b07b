package state

import "time"

// Fixed widget geometry. The ISO week column adds three cells on the left.
const (
	GridHeight   = 8
	GridWidth    = 20
	GridWidthISO = 23
)

// Cell is one selectable slot of the current grid in widget coordinates.
type Cell struct {
	Index   int
	X, Y    int
	Width   int
	Date    time.Time // the date focus moves to when the cell is chosen
	Outside bool      // neighbouring month or decade
	Focused bool
}

// Width returns the rendered width of the widget.
func Width(s CalendarState) int {
	if s.ISOWeeks {
		return GridWidthISO
	}
	return GridWidth
}

// Indent returns the left margin of the grid for the current view.
func Indent(s CalendarState) int {
	if !s.ISOWeeks {
		return 0
	}
	if s.View == DayView {
		return 3
	}
	return 2
}

// WeekdayColumns lists the weekdays of the day grid from left to right.
func WeekdayColumns(s CalendarState) [7]time.Weekday {
	var out [7]time.Weekday
	for i := range out {
		out[i] = time.Weekday((int(s.WeekStart) + i) % 7)
	}
	return out
}

// LeadingDays is the number of cells before the first of the focused month.
func LeadingDays(s CalendarState) int {
	first := time.Date(s.Focus.Year(), s.Focus.Month(), 1, 0, 0, 0, 0, s.loc())
	return (int(first.Weekday()) - int(s.WeekStart) + 7) % 7
}

// Cells lays out the grid for the current granularity.
func Cells(s CalendarState) []Cell {
	switch s.View {
	case MonthView:
		return MonthCells(s)
	case YearView:
		return YearCells(s)
	default:
		return DayCells(s)
	}
}

// DayCells returns six weeks of days surrounding the focused month.
func DayCells(s CalendarState) []Cell {
	h := Indent(s)
	f := s.Focus
	start := time.Date(f.Year(), f.Month(), 1-LeadingDays(s), 0, 0, 0, 0, s.loc())
	cells := make([]Cell, 42)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		cells[i] = Cell{
			Index:   i,
			X:       h + (i%7)*3,
			Y:       2 + i/7,
			Width:   2,
			Date:    d,
			Outside: d.Month() != f.Month(),
			Focused: SameDay(d, f),
		}
	}
	return cells
}

// MonthCells returns the twelve months of the focused year, four per row.
func MonthCells(s CalendarState) []Cell {
	h := Indent(s)
	f := s.Focus
	cells := make([]Cell, 12)
	for i := range cells {
		cells[i] = Cell{
			Index:   i,
			X:       h + (i%4)*5,
			Y:       2 + (i/4)*2,
			Width:   4,
			Date:    OffsetDate(f, 0, i-int(f.Month()-time.January), 0),
			Focused: i == int(f.Month()-time.January),
		}
	}
	return cells
}

// YearCells returns the focused decade plus one year on either side.
func YearCells(s CalendarState) []Cell {
	h := Indent(s)
	f := s.Focus
	first := DecadeStart(f.Year()) - 1
	cells := make([]Cell, 12)
	for i := range cells {
		y := first + i
		cells[i] = Cell{
			Index:   i,
			X:       h + (i%4)*5,
			Y:       2 + (i/4)*2,
			Width:   4,
			Date:    OffsetDate(f, 0, 0, y-f.Year()),
			Outside: i == 0 || i == 11,
			Focused: y == f.Year(),
		}
	}
	return cells
}

// HitTest maps a widget-relative position onto a cell of the current grid.
// Gaps between cells, the title rows and the ISO week column are misses.
func HitTest(s CalendarState, x, y int) (Cell, bool) {
	if x < 0 || y < 2 || y >= GridHeight || x >= Width(s) {
		return Cell{}, false
	}
	for _, c := range Cells(s) {
		if c.Y == y && x >= c.X && x < c.X+c.Width {
			return c, true
		}
	}
	return Cell{}, false
}
