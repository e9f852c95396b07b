package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloudeng.io/datetime"

	"calpick/internal/config"
	"calpick/internal/tui/locale"
	"calpick/internal/tui/state"
	"calpick/internal/tui/util"
	"calpick/internal/tui/widgets/calendar"
)

// Settings is a validated configuration translated into widget terms.
type Settings struct {
	Initial  time.Time
	Options  []calendar.Option
	Location *time.Location
	NoColor  bool
	Mouse    bool
}

// SettingsFromConfig validates c and builds the calendar options it describes.
// now anchors "today" and defaults the initial date.
func SettingsFromConfig(c config.Config, now time.Time, logger *slog.Logger) (Settings, error) {
	if err := c.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	loc, err := c.Location()
	if err != nil {
		return Settings{}, err
	}
	now = now.In(loc)
	cc := c.Calendar

	initial, _ := config.ParseDate(cc.Initial, now)
	if initial.IsZero() {
		initial = state.Day(now)
	}
	var rng state.DateRange
	if t, _ := config.ParseDate(cc.Earliest, now); !t.IsZero() {
		rng.Earliest = &t
	}
	if t, _ := config.ParseDate(cc.Latest, now); !t.IsZero() {
		rng.Latest = &t
	}
	view, _ := c.View()
	lowest, _ := state.ParseGranularity(cc.Lowest)
	highest, _ := state.ParseGranularity(cc.Highest)
	weekStart, _ := config.ParseWeekday(cc.WeekStart)
	lang, _ := locale.Lookup(c.UI.Locale)
	noColor := util.NoColor(c.UI.NoColor)

	opts := []calendar.Option{
		calendar.WithRange(rng),
		calendar.WithLowest(lowest),
		calendar.WithHighest(highest),
		calendar.WithWeekStart(weekStart),
		calendar.WithISOWeeks(cc.ISOWeeks),
		calendar.WithLocale(lang),
		calendar.WithTheme(util.DefaultTheme(util.DefaultPalette(), noColor)),
		calendar.WithClock(func() time.Time { return time.Now().In(loc) }),
	}
	if view != nil {
		opts = append(opts, calendar.WithView(*view))
	}
	if ex := exclusions(cc.Exclude); len(ex) > 0 {
		opts = append(opts, calendar.WithExclusions(ex...))
	}
	if logger != nil {
		opts = append(opts, calendar.WithLogger(logger))
	}
	return Settings{
		Initial:  initial,
		Options:  opts,
		Location: loc,
		NoColor:  noColor,
		Mouse:    c.UI.Mouse,
	}, nil
}

// exclusions maps "weekends"/"weekdays" onto constraints that reject them.
func exclusions(names []string) []datetime.Constraints {
	var out []datetime.Constraints
	for _, n := range names {
		switch strings.ToLower(n) {
		case "weekends":
			out = append(out, datetime.Constraints{Weekdays: true})
		case "weekdays":
			out = append(out, datetime.Constraints{Weekends: true})
		}
	}
	return out
}
