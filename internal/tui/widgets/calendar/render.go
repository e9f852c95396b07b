package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"calpick/internal/tui/state"
)

type span struct {
	x     int
	text  string
	style lipgloss.Style
}

// canvas collects styled spans per row and flattens them into fixed-width lines.
type canvas struct {
	width int
	rows  [state.GridHeight][]span
}

func (c *canvas) put(x, y int, text string, st lipgloss.Style) {
	if y < 0 || y >= len(c.rows) || x >= c.width {
		return
	}
	c.rows[y] = append(c.rows[y], span{x: x, text: ansi.Truncate(text, c.width-x, ""), style: st})
}

func (c *canvas) center(y int, text string, st lipgloss.Style) {
	text = ansi.Truncate(text, c.width, "…")
	c.put((c.width-ansi.StringWidth(text))/2, y, text, st)
}

func (c canvas) String() string {
	lines := make([]string, len(c.rows))
	for y, row := range c.rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].x < row[j].x })
		var b strings.Builder
		col := 0
		for _, sp := range row {
			if sp.x < col {
				continue
			}
			b.WriteString(strings.Repeat(" ", sp.x-col))
			b.WriteString(sp.style.Render(sp.text))
			col = sp.x + ansi.StringWidth(sp.text)
		}
		if col < c.width {
			b.WriteString(strings.Repeat(" ", c.width-col))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// View renders exactly Height lines of Width cells each.
func (m Model) View() string {
	c := canvas{width: m.Width()}
	switch m.state.View {
	case state.MonthView:
		m.drawMonths(&c)
	case state.YearView:
		m.drawYears(&c)
	default:
		m.drawDays(&c)
	}
	return c.String()
}

func (m Model) drawDays(c *canvas) {
	s := m.state
	c.center(0, m.Title(), m.theme.Title)
	h := state.Indent(s)
	for i, wd := range state.WeekdayColumns(s) {
		c.put(h+i*3, 1, fmt.Sprintf("%-2s", m.locale.WeekDay(wd, false)), m.theme.WeekDay)
	}
	for _, cell := range state.DayCells(s) {
		d := cell.Date
		if s.ISOWeeks && cell.Index%7 == 0 {
			_, w := d.ISOWeek()
			c.put(0, cell.Y, fmt.Sprintf("%2d", w), m.theme.ISOWeek)
		}
		selected := s.HasSelection() && state.SameDay(d, s.Selected)
		today := state.SameDay(d, m.today)
		st := m.cellStyle(cell, state.DateAvailable(s, d), selected, today)
		c.put(cell.X, cell.Y, fmt.Sprintf("%2d", d.Day()), st)
	}
}

func (m Model) drawMonths(c *canvas) {
	s := m.state
	c.center(0, m.Title(), m.theme.Title)
	for _, cell := range state.MonthCells(s) {
		y, mo := cell.Date.Year(), cell.Date.Month()
		selected := s.HasSelection() && s.Selected.Year() == y && s.Selected.Month() == mo
		today := m.today.Year() == y && m.today.Month() == mo
		st := m.cellStyle(cell, state.MonthAvailable(s, y, mo), selected, today)
		c.put(cell.X, cell.Y, fmt.Sprintf("%4s", m.locale.Month(mo, false)), st)
	}
}

func (m Model) drawYears(c *canvas) {
	s := m.state
	c.center(0, m.Title(), m.theme.Title)
	for _, cell := range state.YearCells(s) {
		y := cell.Date.Year()
		selected := s.HasSelection() && s.Selected.Year() == y
		st := m.cellStyle(cell, state.YearAvailable(s, y), selected, m.today.Year() == y)
		c.put(cell.X, cell.Y, fmt.Sprintf("%4d", y), st)
	}
}

// cellStyle picks the style of a grid cell. The focused cell keeps the
// cursor even when unavailable, unavailable wins over outside, outside over
// selection. Today is layered on top.
func (m Model) cellStyle(cell state.Cell, available, selected, today bool) lipgloss.Style {
	t := m.theme
	active := m.state.Enabled && m.focused
	var st lipgloss.Style
	switch {
	case cell.Focused && !cell.Outside:
		if active {
			st = t.Focus
		} else {
			st = t.FocusIdle
		}
		if !available {
			st = st.Inherit(t.Unavailable)
		}
	case !available:
		st = t.Unavailable
	case cell.Outside:
		if selected && active {
			st = t.FocusIdle
		} else {
			st = t.Outside
		}
	case selected && m.state.Enabled:
		st = t.Selected
	default:
		st = t.Normal
	}
	if today {
		st = st.Inherit(t.Today)
	}
	return st
}

// Title returns the heading of the current grid without styling.
func (m Model) Title() string {
	f := m.state.Focus
	switch m.state.View {
	case state.MonthView:
		return fmt.Sprintf("%d", f.Year())
	case state.YearView:
		start := state.DecadeStart(f.Year())
		return fmt.Sprintf("%d - %d", start, start+9)
	}
	return fmt.Sprintf("%s %d", m.locale.Month(f.Month(), true), f.Year())
}

// DateString formats t with the long month name of the calendar locale.
func (m Model) DateString(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", m.locale.WeekDay(t.Weekday(), true), t.Day(), m.locale.Month(t.Month(), true), t.Year())
}
