// Package locale provides month and weekday names for the calendar widget.
package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownLocale = errors.New("unknown locale")

// Locale translates calendar names. Short names are used inside the grid:
// weekdays must fit two cells and months four.
type Locale interface {
	WeekDay(day time.Weekday, long bool) string
	Month(month time.Month, long bool) string
}

// English is the default locale.
type English struct{}

var (
	enWeekdays      = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	enWeekdaysShort = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	enMonths        = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	enMonthsShort   = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

func (English) WeekDay(day time.Weekday, long bool) string {
	if long {
		return enWeekdays[day]
	}
	return enWeekdaysShort[day]
}

func (English) Month(month time.Month, long bool) string {
	if long {
		return enMonths[month-1]
	}
	return enMonthsShort[month-1]
}

// German locale.
type German struct{}

var (
	deWeekdays      = [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"}
	deWeekdaysShort = [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}
	deMonths        = [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
	deMonthsShort   = [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
)

func (German) WeekDay(day time.Weekday, long bool) string {
	if long {
		return deWeekdays[day]
	}
	return deWeekdaysShort[day]
}

func (German) Month(month time.Month, long bool) string {
	if long {
		return deMonths[month-1]
	}
	return deMonthsShort[month-1]
}

// Lookup returns the locale for a language tag such as "en" or "de-DE".
func Lookup(tag string) (Locale, error) {
	lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
	lang, _, _ = strings.Cut(lang, "_")
	switch lang {
	case "", "en":
		return English{}, nil
	case "de":
		return German{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
}
