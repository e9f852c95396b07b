package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/spf13/viper"

	"calpick/internal/tui/locale"
	"calpick/internal/tui/state"
)

// Config holds application configuration.
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig holds the widget settings. Dates are strings so that
// "today" and the accepted layouts survive a round trip through the file.
type CalendarConfig struct {
	Initial   string   `mapstructure:"initial"`
	Earliest  string   `mapstructure:"earliest"`
	Latest    string   `mapstructure:"latest"`
	View      string   `mapstructure:"view"`
	Lowest    string   `mapstructure:"lowest"`
	Highest   string   `mapstructure:"highest"`
	WeekStart string   `mapstructure:"week_start"`
	ISOWeeks  bool     `mapstructure:"iso_weeks"`
	Exclude   []string `mapstructure:"exclude"` // "weekends" and/or "weekdays"
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale   string `mapstructure:"locale"`
	NoColor  bool   `mapstructure:"no_color"`
	Timezone string `mapstructure:"timezone"`
	Mouse    bool   `mapstructure:"mouse"`
}

// LogConfig mirrors cmdutil.LoggingConfig.
type LogConfig struct {
	Level  int    `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

// DateLayouts are tried in order by ParseDate.
var DateLayouts = []string{time.DateOnly, "2006/01/02", "01/02/2006", "Jan-02-2006", "02 Jan 2006"}

// DefaultPath returns $CALPICK_CONFIG or ~/.config/calpick/config.toml.
func DefaultPath() string {
	if p := os.Getenv("CALPICK_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "calpick", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.initial", "today")
	v.SetDefault("calendar.earliest", "")
	v.SetDefault("calendar.latest", "")
	v.SetDefault("calendar.view", "")
	v.SetDefault("calendar.lowest", "day")
	v.SetDefault("calendar.highest", "year")
	v.SetDefault("calendar.week_start", "monday")
	v.SetDefault("calendar.iso_weeks", false)
	v.SetDefault("calendar.exclude", []string{})
	v.SetDefault("ui.locale", "en")
	v.SetDefault("ui.no_color", false)
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.level", 0)
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "calpick.log"))
	v.SetDefault("log.format", "text")
}

// Default returns the configuration used when no file is present.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from path and the environment. Env var overrides
// use prefix CALPICK_, e.g. CALPICK_CALENDAR_WEEK_START. An empty path falls
// back to DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType(configType(path))

	v.SetEnvPrefix("CALPICK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed. The format is
// chosen from the file extension.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType(configType(path))
	v.Set("calendar.initial", c.Calendar.Initial)
	v.Set("calendar.earliest", c.Calendar.Earliest)
	v.Set("calendar.latest", c.Calendar.Latest)
	v.Set("calendar.view", c.Calendar.View)
	v.Set("calendar.lowest", c.Calendar.Lowest)
	v.Set("calendar.highest", c.Calendar.Highest)
	v.Set("calendar.week_start", c.Calendar.WeekStart)
	v.Set("calendar.iso_weeks", c.Calendar.ISOWeeks)
	v.Set("calendar.exclude", c.Calendar.Exclude)
	v.Set("ui.locale", c.UI.Locale)
	v.Set("ui.no_color", c.UI.NoColor)
	v.Set("ui.timezone", c.UI.Timezone)
	v.Set("ui.mouse", c.UI.Mouse)
	v.Set("log.level", c.Log.Level)
	v.Set("log.file", c.Log.File)
	v.Set("log.format", c.Log.Format)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return "toml"
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	switch c.UI.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.UI.Timezone, err)
	}
	return loc, nil
}

// ParseDate accepts "today", an empty string (zero time) or any of DateLayouts.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return time.Time{}, nil
	case "today":
		return state.Day(now), nil
	}
	for _, layout := range DateLayouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected today or one of %s", s, strings.Join(DateLayouts, ", "))
}

// View returns the configured initial granularity, or nil when unset so the
// calendar opens at its lowest granularity.
func (c Config) View() (*state.Granularity, error) {
	if strings.TrimSpace(c.Calendar.View) == "" {
		return nil, nil
	}
	g, err := state.ParseGranularity(strings.TrimSpace(c.Calendar.View))
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ParseWeekday accepts English weekday names and their three letter prefixes.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	errs := &errors.M{}
	loc, err := c.Location()
	errs.Append(err)
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)

	dates := map[string]string{
		"calendar.initial":  c.Calendar.Initial,
		"calendar.earliest": c.Calendar.Earliest,
		"calendar.latest":   c.Calendar.Latest,
	}
	parsed := map[string]time.Time{}
	for _, key := range []string{"calendar.initial", "calendar.earliest", "calendar.latest"} {
		t, err := ParseDate(dates[key], now)
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", key, err))
			continue
		}
		parsed[key] = t
	}
	lo, hi := parsed["calendar.earliest"], parsed["calendar.latest"]
	if !lo.IsZero() && !hi.IsZero() {
		errs.Append(state.DateRange{Earliest: &lo, Latest: &hi}.Validate())
	}

	lowest, lerr := state.ParseGranularity(c.Calendar.Lowest)
	if lerr != nil {
		errs.Append(fmt.Errorf("calendar.lowest: %w", lerr))
	}
	highest, herr := state.ParseGranularity(c.Calendar.Highest)
	if herr != nil {
		errs.Append(fmt.Errorf("calendar.highest: %w", herr))
	}
	view, verr := c.View()
	if verr != nil {
		errs.Append(fmt.Errorf("calendar.view: %w", verr))
	}
	if lerr == nil && herr == nil && verr == nil {
		switch {
		case lowest >= highest:
			errs.Append(fmt.Errorf("%w: lowest=%s highest=%s", state.ErrInvalidViewLimits,
				c.Calendar.Lowest, c.Calendar.Highest))
		case view != nil && (*view < lowest || *view > highest):
			errs.Append(fmt.Errorf("%w: view=%s lowest=%s highest=%s", state.ErrInvalidViewLimits,
				c.Calendar.View, c.Calendar.Lowest, c.Calendar.Highest))
		}
	}

	if _, err := ParseWeekday(c.Calendar.WeekStart); err != nil {
		errs.Append(fmt.Errorf("calendar.week_start: %w", err))
	}
	for _, ex := range c.Calendar.Exclude {
		switch strings.ToLower(ex) {
		case "weekends", "weekdays":
		default:
			errs.Append(fmt.Errorf("calendar.exclude: unknown value %q", ex))
		}
	}
	if _, err := locale.Lookup(c.UI.Locale); err != nil {
		errs.Append(fmt.Errorf("ui.locale: %w", err))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs.Append(fmt.Errorf("log.format: must be text or json, not %q", c.Log.Format))
	}
	return errs.Err()
}
