// Copyright
// SPDX-License-Identifier: MIT
// calpick: terminal date picker built on a navigable day/month/decade calendar
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"

	"calpick/internal/config"
	appTUI "calpick/internal/tui"
)

const Version = "0.1.0"

/* ---------- CLI ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "-v", "--version":
		fmt.Println("calpick", Version)
		return
	case "pick":
		cmdPick()
	case "double":
		cmdDouble()
	case "config":
		cmdConfig()
	default:
		usage()
	}
}

func usage() {
	fmt.Print(`calpick ` + Version + `
Pick dates from a keyboard and mouse driven calendar in the terminal.
USAGE
  calpick <command> [options]
COMMANDS
  pick         Open the date dialog and print the chosen date
  double       Two calendars side by side; prints both dates
  config       Print the effective configuration or write a default file
  help         Show help (try: calpick help pick)
  version      Print version
KEYS
  arrows/hjkl move   PgUp/PgDn page   Home/End edges   t today
  enter select or zoom in   backspace zoom out   ? help   q quit
NOTES
  • Settings come from ~/.config/calpick/config.toml (or $CALPICK_CONFIG) and CALPICK_* env vars.
  • Logs go to a file so they never draw over the calendar; see --log-file.

`)
}

func helpTopic(name string) {
	switch name {
	case "pick", "double":
		fmt.Println(`USAGE
  calpick ` + name + ` [--config PATH] [--date DATE] [--earliest DATE] [--latest DATE]
               [--view day|month|year] [--lowest G] [--highest G] [--week-start DAY]
               [--iso-weeks] [--locale en|de] [--no-color] [--no-mouse] [--format LAYOUT]
               [--log-level N] [--log-file PATH] [--log-format text|json]
DESCRIPTION
  pick shows a dialog with the current date and a "Choose date" button that opens the
  calendar. Enter on a day selects it, y copies it to the clipboard, Done prints it.
  double shows two calendars; tab moves focus between them.
  DATE is today, 2006-01-02, 2006/01/02, 01/02/2006, Jan-02-2006 or "02 Jan 2006".
OPTIONS
  --config PATH        Config file (toml, yaml or json). Default: ~/.config/calpick/config.toml
  --date DATE          Initial date (default: today)
  --earliest DATE      First selectable date
  --latest DATE        Last selectable date
  --view G             Initial granularity (default: the lowest one)
  --lowest G           Granularity at which enter selects (month gives a month picker)
  --highest G          Coarsest granularity reachable with backspace
  --week-start DAY     First column of the day grid (default: monday)
  --iso-weeks          Show ISO week numbers
  --exclude LIST       Comma separated: weekends, weekdays
  --locale TAG         Month and weekday names (en, de)
  --no-color           Disable colors (NO_COLOR is honoured too)
  --no-mouse           Disable mouse input
  --format LAYOUT      Go time layout used to print the result (default: 2006-01-02)
  --log-level N        0=error 1=warn 2=info 3=debug
  --log-file PATH      Log file (default: $TMPDIR/calpick.log)
  --log-format F       text or json
`)
	case "config":
		fmt.Print(`USAGE
  calpick config [--config PATH] [--write]
DESCRIPTION
  Prints the configuration after applying the file and CALPICK_* environment overrides,
  followed by any validation problems. With --write a default file is created at PATH
  unless one already exists.

`)
	default:
		usage()
	}
}

/* ---------- shared flags ---------- */

type commonFlags struct {
	configPath string
	format     string
	date       string
	earliest   string
	latest     string
	view       string
	lowest     string
	highest    string
	weekStart  string
	exclude    string
	locale     string
	isoWeeks   bool
	noColor    bool
	noMouse    bool
	logLevel   int
	logFile    string
	logFormat  string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Config file path")
	fs.StringVar(&f.format, "format", time.DateOnly, "Output layout")
	fs.StringVar(&f.date, "date", "", "Initial date")
	fs.StringVar(&f.earliest, "earliest", "", "First selectable date")
	fs.StringVar(&f.latest, "latest", "", "Last selectable date")
	fs.StringVar(&f.view, "view", "", "Initial granularity: day|month|year")
	fs.StringVar(&f.lowest, "lowest", "", "Lowest granularity")
	fs.StringVar(&f.highest, "highest", "", "Highest granularity")
	fs.StringVar(&f.weekStart, "week-start", "", "First day of the week")
	fs.StringVar(&f.exclude, "exclude", "", "Unavailable days: weekends,weekdays")
	fs.StringVar(&f.locale, "locale", "", "Locale tag")
	fs.BoolVar(&f.isoWeeks, "iso-weeks", false, "Show ISO week numbers")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fs.BoolVar(&f.noMouse, "no-mouse", false, "Disable mouse input")
	fs.IntVar(&f.logLevel, "log-level", 0, "Log level 0-3")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: text|json")
}

// apply copies the flags the user actually passed over the loaded config.
func (f *commonFlags) apply(fs *flag.FlagSet, c *config.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "date":
			c.Calendar.Initial = f.date
		case "earliest":
			c.Calendar.Earliest = f.earliest
		case "latest":
			c.Calendar.Latest = f.latest
		case "view":
			c.Calendar.View = f.view
		case "lowest":
			c.Calendar.Lowest = f.lowest
		case "highest":
			c.Calendar.Highest = f.highest
		case "week-start":
			c.Calendar.WeekStart = f.weekStart
		case "exclude":
			c.Calendar.Exclude = splitList(f.exclude)
		case "locale":
			c.UI.Locale = f.locale
		case "iso-weeks":
			c.Calendar.ISOWeeks = f.isoWeeks
		case "no-color":
			c.UI.NoColor = f.noColor
		case "no-mouse":
			c.UI.Mouse = !f.noMouse
		case "log-level":
			c.Log.Level = f.logLevel
		case "log-file":
			c.Log.File = f.logFile
		case "log-format":
			c.Log.Format = f.logFormat
		}
	})
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// prepare loads configuration, opens the log file and returns a context
// carrying the logger that is cancelled on SIGINT/SIGTERM.
func prepare(name string, args []string) (context.Context, func(), appTUI.Settings, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() { helpTopic(name) }
	f := &commonFlags{}
	f.register(fs)
	_ = fs.Parse(args)

	c, err := config.Load(f.configPath)
	if err != nil {
		cmdutil.Exit("calpick: %v", err)
	}
	f.apply(fs, &c)

	logger, err := cmdutil.LoggingConfig{Level: c.Log.Level, File: c.Log.File, Format: c.Log.Format}.NewLogger()
	if err != nil {
		cmdutil.Exit("calpick: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cleanup := func() {
		stop()
		_ = logger.Close()
	}

	settings, err := appTUI.SettingsFromConfig(c, time.Now(), logger.Logger)
	if err != nil {
		cleanup()
		cmdutil.Exit("calpick: %v", err)
	}
	logger.Info("starting", "command", name, "version", Version, "initial", settings.Initial.Format(time.DateOnly))
	return ctx, cleanup, settings, f
}

/* ---------- commands ---------- */

func cmdPick() {
	ctx, cleanup, settings, f := prepare("pick", os.Args[2:])
	res, err := appTUI.RunPicker(ctx, settings)
	cleanup()
	if err != nil {
		cmdutil.Exit("calpick: %v", err)
	}
	if res.Cancelled || !res.Picked {
		os.Exit(1)
	}
	fmt.Println(res.Date.Format(f.format))
}

func cmdDouble() {
	ctx, cleanup, settings, f := prepare("double", os.Args[2:])
	res, err := appTUI.RunDouble(ctx, settings)
	cleanup()
	if err != nil {
		cmdutil.Exit("calpick: %v", err)
	}
	if res.Cancelled {
		os.Exit(1)
	}
	fmt.Println(formatOptional(res.From, f.format), formatOptional(res.To, f.format))
}

func formatOptional(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(layout)
}

func cmdConfig() {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Usage = func() { helpTopic("config") }
	path := fs.String("config", "", "Config file path")
	write := fs.Bool("write", false, "Write a default config file")
	_ = fs.Parse(os.Args[2:])

	target := *path
	if target == "" {
		target = config.DefaultPath()
	}
	if *write {
		if _, err := os.Stat(target); err == nil {
			fmt.Println(target, "already exists; not overwriting")
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			cmdutil.Exit("calpick: %v", err)
		}
		if err := config.Save(target, config.Default()); err != nil {
			cmdutil.Exit("calpick: %v", err)
		}
		fmt.Println("Wrote", target)
		return
	}

	c, err := config.Load(*path)
	if err != nil {
		cmdutil.Exit("calpick: %v", err)
	}
	fmt.Println("# " + target)
	fmt.Printf("calendar.initial    = %q\n", c.Calendar.Initial)
	fmt.Printf("calendar.earliest   = %q\n", c.Calendar.Earliest)
	fmt.Printf("calendar.latest     = %q\n", c.Calendar.Latest)
	fmt.Printf("calendar.view       = %q\n", c.Calendar.View)
	fmt.Printf("calendar.lowest     = %q\n", c.Calendar.Lowest)
	fmt.Printf("calendar.highest    = %q\n", c.Calendar.Highest)
	fmt.Printf("calendar.week_start = %q\n", c.Calendar.WeekStart)
	fmt.Printf("calendar.iso_weeks  = %v\n", c.Calendar.ISOWeeks)
	fmt.Printf("calendar.exclude    = %q\n", c.Calendar.Exclude)
	fmt.Printf("ui.locale           = %q\n", c.UI.Locale)
	fmt.Printf("ui.no_color         = %v\n", c.UI.NoColor)
	fmt.Printf("ui.timezone         = %q\n", c.UI.Timezone)
	fmt.Printf("ui.mouse            = %v\n", c.UI.Mouse)
	fmt.Printf("log.level           = %d\n", c.Log.Level)
	fmt.Printf("log.file            = %q\n", c.Log.File)
	fmt.Printf("log.format          = %q\n", c.Log.Format)
	if err := c.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "\ninvalid configuration:\n%v\n", err)
		os.Exit(1)
	}
}
