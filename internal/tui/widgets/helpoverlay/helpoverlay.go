package helpoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"calpick/internal/tui/state"
)

type HelpOverlay struct {
	help help.Model
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{help: help.New()} }

// View returns the grouped key help of km with the current granularity indicated.
func (h HelpOverlay) View(km help.KeyMap, s state.CalendarState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Help (View: %s, %s..%s)\n\n", s.View, s.Lowest, s.Highest)
	b.WriteString(h.help.FullHelpView(km.FullHelp()))
	return b.String()
}

// Short renders the one-line key hint shown under the calendar.
func (h HelpOverlay) Short(km help.KeyMap, width int) string {
	h.help.Width = width
	return h.help.ShortHelpView(km.ShortHelp())
}
