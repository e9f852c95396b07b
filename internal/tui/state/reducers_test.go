package state

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustNew(t *testing.T, initial time.Time, r DateRange) CalendarState {
	t.Helper()
	s, err := New(initial, r)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewDefaults(t *testing.T) {
	s := mustNew(t, time.Date(2017, 9, 15, 13, 45, 0, 0, time.UTC), DateRange{})
	if s.View != DayView || s.Lowest != DayView || s.Highest != YearView {
		t.Fatalf("unexpected zoom defaults: %+v", s)
	}
	if !s.Focus.Equal(date(2017, 9, 15)) || !s.Selected.Equal(s.Focus) {
		t.Fatalf("focus/selection not truncated: %v %v", s.Focus, s.Selected)
	}
	if s.WeekStart != time.Monday || !s.Enabled {
		t.Fatalf("week start %v enabled %v", s.WeekStart, s.Enabled)
	}
}

func TestNewInvalidRange(t *testing.T) {
	lo, hi := date(2018, 1, 1), date(2017, 1, 1)
	if _, err := New(date(2017, 6, 1), DateRange{Earliest: &lo, Latest: &hi}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	same := date(2017, 1, 1)
	if _, err := New(same, DateRange{Earliest: &same, Latest: &same}); err != nil {
		t.Fatalf("single day range rejected: %v", err)
	}
}

func TestNewClampsInitial(t *testing.T) {
	lo, hi := date(2017, 1, 1), date(2017, 12, 31)
	s := mustNew(t, date(2020, 5, 5), DateRange{Earliest: &lo, Latest: &hi})
	if !s.Focus.Equal(hi) || !s.Selected.Equal(hi) {
		t.Fatalf("initial not clamped: %v", s.Focus)
	}
}

func TestOffsetDate(t *testing.T) {
	moon := date(1969, 7, 20)
	for _, tc := range []struct {
		days, months, years int
		want                time.Time
	}{
		{-4, 0, 0, date(1969, 7, 16)},
		{4, 0, 0, date(1969, 7, 24)},
		{21, 0, 0, date(1969, 8, 10)},
		{-10, 1, 0, date(1969, 8, 10)},
		{0, -7, 0, date(1968, 12, 20)},
		{0, 0, 31, date(2000, 7, 20)},
	} {
		if got := OffsetDate(moon, tc.days, tc.months, tc.years); !got.Equal(tc.want) {
			t.Fatalf("%+v: got %v", tc, got)
		}
	}
	if got := OffsetDate(date(2024, 1, 31), 0, 1, 0); !got.Equal(date(2024, 2, 29)) {
		t.Fatalf("Jan 31 + 1m in leap year: %v", got)
	}
	if got := OffsetDate(date(2023, 1, 31), 0, 1, 0); !got.Equal(date(2023, 2, 28)) {
		t.Fatalf("Jan 31 + 1m: %v", got)
	}
	if got := OffsetDate(date(2024, 2, 29), 0, 0, 1); !got.Equal(date(2025, 2, 28)) {
		t.Fatalf("Feb 29 + 1y: %v", got)
	}
}

func TestMoveTable(t *testing.T) {
	start := date(2017, 9, 15)
	for _, tc := range []struct {
		view Granularity
		dir  Direction
		want time.Time
	}{
		{DayView, Up, date(2017, 9, 8)},
		{DayView, Down, date(2017, 9, 22)},
		{DayView, Left, date(2017, 9, 14)},
		{DayView, Right, date(2017, 9, 16)},
		{DayView, PageUp, date(2017, 8, 15)},
		{DayView, PageDown, date(2017, 10, 15)},
		{DayView, Home, date(2017, 9, 1)},
		{DayView, End, date(2017, 9, 30)},
		{MonthView, Up, date(2017, 5, 15)},
		{MonthView, Down, date(2018, 1, 15)},
		{MonthView, Left, date(2017, 8, 15)},
		{MonthView, PageUp, date(2016, 9, 15)},
		{MonthView, Home, date(2017, 1, 15)},
		{MonthView, End, date(2017, 12, 15)},
		{YearView, Up, date(2013, 9, 15)},
		{YearView, Right, date(2018, 9, 15)},
		{YearView, PageDown, date(2027, 9, 15)},
		{YearView, Home, date(2010, 9, 15)},
		{YearView, End, date(2019, 9, 15)},
	} {
		s := mustNew(t, start, DateRange{})
		s = SetView(s, tc.view)
		if got := Move(s, tc.dir).Focus; !got.Equal(tc.want) {
			t.Fatalf("%s dir %d: got %v, want %v", tc.view, tc.dir, got, tc.want)
		}
	}
}

func TestNavigationStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1969))
	lo, hi := date(2015, 3, 10), date(2019, 11, 2)
	s := mustNew(t, date(2017, 6, 15), DateRange{Earliest: &lo, Latest: &hi})
	for i := 0; i < 5000; i++ {
		switch rng.Intn(10) {
		case 8:
			s = ZoomOut(s)
		case 9:
			s, _ = Submit(s)
		default:
			s = Move(s, Direction(rng.Intn(8)))
		}
		if s.Focus.Before(lo) || s.Focus.After(hi) {
			t.Fatalf("step %d: focus %v left range", i, s.Focus)
		}
		if s.HasSelection() && (s.Selected.Before(lo) || s.Selected.After(hi)) {
			t.Fatalf("step %d: selection %v left range", i, s.Selected)
		}
	}
}

func TestZoomPreservesFocus(t *testing.T) {
	s := mustNew(t, date(2017, 9, 15), DateRange{})
	f := s.Focus
	s = ZoomOut(ZoomOut(s))
	if s.View != YearView {
		t.Fatalf("view %s", s.View)
	}
	s = ZoomOut(s)
	if s.View != YearView {
		t.Fatalf("zoomed out past highest")
	}
	s = ZoomIn(ZoomIn(ZoomIn(s)))
	if s.View != DayView || !s.Focus.Equal(f) {
		t.Fatalf("round trip: view %s focus %v", s.View, s.Focus)
	}
}

func TestSubmit(t *testing.T) {
	s := mustNew(t, date(2017, 9, 15), DateRange{})
	s = ClearSelection(s)
	s = Move(s, Right)
	s, ok := Submit(s)
	if !ok || !s.Selected.Equal(s.Focus) || !s.Selected.Equal(date(2017, 9, 16)) {
		t.Fatalf("submit: ok=%v selected=%v", ok, s.Selected)
	}

	s = ZoomOut(s)
	s, ok = Submit(s)
	if ok || s.View != DayView {
		t.Fatalf("submit above lowest should zoom in: ok=%v view=%s", ok, s.View)
	}
}

func TestViewLimits(t *testing.T) {
	s := mustNew(t, date(2017, 9, 15), DateRange{})
	s = SetLowest(s, MonthView)
	if s.Lowest != MonthView || s.View != MonthView {
		t.Fatalf("lowest not applied: %+v", s)
	}
	s = SetLowest(s, YearView)
	if s.Lowest != MonthView {
		t.Fatalf("lowest equal to highest accepted")
	}
	s = SetHighest(s, MonthView)
	if s.Highest != YearView {
		t.Fatalf("highest equal to lowest accepted")
	}
	s = SetView(s, DayView)
	if s.View != MonthView {
		t.Fatalf("view below lowest accepted")
	}
	if _, err := SetViewLimits(s, YearView, DayView); !errors.Is(err, ErrInvalidViewLimits) {
		t.Fatalf("expected ErrInvalidViewLimits, got %v", err)
	}
	s, err := SetViewLimits(s, DayView, MonthView)
	if err != nil || s.View != MonthView {
		t.Fatalf("SetViewLimits: %v %s", err, s.View)
	}
}

func TestSetBounds(t *testing.T) {
	s := mustNew(t, date(2017, 9, 15), DateRange{})
	lo := date(2017, 10, 1)
	s, err := SetBounds(s, DateRange{Earliest: &lo})
	if err != nil {
		t.Fatalf("SetBounds: %v", err)
	}
	if !s.Focus.Equal(lo) || !s.Selected.Equal(lo) {
		t.Fatalf("not clamped: %v %v", s.Focus, s.Selected)
	}
	s = ClearSelection(s)
	hi := date(2017, 10, 5)
	s, _ = SetBounds(s, DateRange{Earliest: &lo, Latest: &hi})
	if s.HasSelection() {
		t.Fatalf("clamping created a selection")
	}
}

func TestParseGranularity(t *testing.T) {
	for _, g := range []Granularity{DayView, MonthView, YearView} {
		got, err := ParseGranularity(g.String())
		if err != nil || got != g {
			t.Fatalf("%s: %v %v", g, got, err)
		}
	}
	if _, err := ParseGranularity("week"); err == nil {
		t.Fatalf("expected error")
	}
}
