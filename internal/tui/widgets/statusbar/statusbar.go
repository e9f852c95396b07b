package statusbar

import (
	"strings"
	"time"

	"calpick/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting the calendar state.
func (StatusBar) View(s state.CalendarState, notice string) string {
	view := "[" + strings.ToUpper(s.View.String()) + "]"
	focus := "Focus: " + s.Focus.Format(time.DateOnly)
	selected := "Selected: -"
	if s.HasSelection() {
		selected = "Selected: " + s.Selected.Format(time.DateOnly)
	}
	parts := []string{view, focus, selected}
	if s.Earliest != nil || s.Latest != nil {
		parts = append(parts, "Range: "+bound(s.Earliest)+".."+bound(s.Latest))
	}
	if !s.Enabled {
		parts = append(parts, "Disabled")
	}
	if notice != "" {
		parts = append(parts, notice)
	}
	return strings.Join(parts, "  ")
}

func bound(t *time.Time) string {
	if t == nil {
		return "∞"
	}
	return t.Format(time.DateOnly)
}
