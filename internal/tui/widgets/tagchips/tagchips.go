package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"calpick/internal/tui/state"
	"calpick/internal/tui/util"
)

// View renders date tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
	if len(tags) == 0 {
		return ""
	}
	noColor = util.NoColor(noColor)

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.TODAY:
		return "Today"
	case state.SELECTED:
		return "Selected"
	case state.WEEKEND:
		return "Weekend"
	case state.UNAVAILABLE:
		return "Unavailable"
	case state.AT_MIN:
		return "Earliest"
	case state.AT_MAX:
		return "Latest"
	case state.ISO_WEEK:
		return fmt.Sprintf("W%02d", t.Value)
	case state.DAY_OF_YEAR:
		return fmt.Sprintf("Day %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.Text)
	switch t.Kind {
	case state.TODAY:
		return base.Background(p.Primary)
	case state.SELECTED:
		return base.Background(p.Success)
	case state.UNAVAILABLE:
		return base.Background(p.Danger)
	case state.AT_MIN, state.AT_MAX:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.WEEKEND, state.ISO_WEEK:
		return base.Background(p.Muted)
	default:
		return base.Background(p.MutedDark)
	}
}
