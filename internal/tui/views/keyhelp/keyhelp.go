package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"

	"calpick/internal/tui/state"
	overlay "calpick/internal/tui/widgets/helpoverlay"
)

// RenderHelp returns the grouped keys overlay content for a calendar.
func RenderHelp(km help.KeyMap, s state.CalendarState) string {
	return overlay.NewHelpOverlay().View(km, s)
}

// RenderHint returns the single line hint shown under a calendar.
func RenderHint(km help.KeyMap, width int) string {
	return overlay.NewHelpOverlay().Short(km, width)
}
