package locale

import (
	"errors"
	"testing"
	"time"
)

func TestEnglishNames(t *testing.T) {
	var l English
	if got := l.WeekDay(time.Thursday, false); got != "Th" {
		t.Fatalf("short weekday: got %q", got)
	}
	if got := l.Month(time.December, true); got != "December" {
		t.Fatalf("long month: got %q", got)
	}
	if got := l.Month(time.January, false); got != "Jan" {
		t.Fatalf("short month: got %q", got)
	}
}

func TestLookup(t *testing.T) {
	for _, tc := range []struct {
		tag  string
		want Locale
	}{
		{"", English{}},
		{"en", English{}},
		{"en-GB", English{}},
		{"de_DE", German{}},
		{"DE", German{}},
	} {
		got, err := Lookup(tc.tag)
		if err != nil {
			t.Fatalf("%q: %v", tc.tag, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %T, want %T", tc.tag, got, tc.want)
		}
	}
	if _, err := Lookup("fr"); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestShortNamesFitGrid(t *testing.T) {
	for _, l := range []Locale{English{}, German{}} {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if n := len([]rune(l.WeekDay(d, false))); n > 2 {
				t.Fatalf("%T weekday %v too wide: %d", l, d, n)
			}
		}
		for m := time.January; m <= time.December; m++ {
			if n := len([]rune(l.Month(m, false))); n > 4 {
				t.Fatalf("%T month %v too wide: %d", l, m, n)
			}
		}
	}
}
