package legend

import (
	"time"

	"calpick/internal/tui/state"
	"calpick/internal/tui/util"
	chips "calpick/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget for the focused date.
func RenderTags(s state.CalendarState, today time.Time, noColor bool) string {
	return chips.View(util.ComputeTags(s, today), noColor)
}
