package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
	Primary   lipgloss.Color
	Success   lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Muted     lipgloss.Color
	MutedDark lipgloss.Color
	Text      lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   lipgloss.Color("#3D6DFF"),
		Success:   lipgloss.Color("#2AA876"),
		Danger:    lipgloss.Color("#D9534F"),
		Warning:   lipgloss.Color("#F0AD4E"),
		Muted:     lipgloss.Color("#6C757D"),
		MutedDark: lipgloss.Color("#5A5A5A"),
		Text:      lipgloss.Color("#FFFFFF"),
	}
}

// Theme holds one style per calendar cell role.
type Theme struct {
	Title       lipgloss.Style
	WeekDay     lipgloss.Style
	Normal      lipgloss.Style
	Outside     lipgloss.Style // neighbouring month or decade
	Unavailable lipgloss.Style
	Focus       lipgloss.Style // focused cell while the widget has focus
	FocusIdle   lipgloss.Style // focused cell while blurred, selected cell while focused
	Selected    lipgloss.Style
	Today       lipgloss.Style // applied on top of the role style
	ISOWeek     lipgloss.Style
}

// DefaultTheme builds the calendar theme from p. With noColor set only text
// attributes are used so the grid stays readable on monochrome terminals.
func DefaultTheme(p Palette, noColor bool) Theme {
	base := lipgloss.NewStyle()
	if noColor {
		return Theme{
			Title:       base.Bold(true),
			WeekDay:     base,
			Normal:      base,
			Outside:     base.Faint(true),
			Unavailable: base.Faint(true).Strikethrough(true),
			Focus:       base.Reverse(true),
			FocusIdle:   base.Bold(true),
			Selected:    base.Bold(true),
			Today:       base.Underline(true),
			ISOWeek:     base.Faint(true),
		}
	}
	return Theme{
		Title:       base.Bold(true),
		WeekDay:     base.Foreground(p.Muted),
		Normal:      base,
		Outside:     base.Foreground(p.Muted),
		Unavailable: base.Foreground(p.MutedDark).Strikethrough(true),
		Focus:       base.Background(p.Primary).Foreground(p.Text).Bold(true),
		FocusIdle:   base.Background(p.MutedDark).Foreground(p.Text),
		Selected:    base.Foreground(p.Success).Bold(true),
		Today:       base.Underline(true),
		ISOWeek:     base.Foreground(p.Warning),
	}
}
