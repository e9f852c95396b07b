package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"calpick/internal/config"
	"calpick/internal/tui/state"
	"calpick/internal/tui/widgets/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSettings() Settings {
	return Settings{
		Initial: date(2017, 9, 15),
		Options: []calendar.Option{calendar.WithClock(func() time.Time { return date(2017, 9, 20) })},
		NoColor: true,
	}
}

// feed runs msg through the model and then every message its commands produce.
func feed(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		var cmd tea.Cmd
		m, cmd = m.Update(queue[0])
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch out := cmd().(type) {
		case calendar.SelectMsg, calendar.SubmitMsg:
			queue = append(queue, out)
		}
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestPickerChooseAndCopy(t *testing.T) {
	m, err := newPicker(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	var copied string
	m.copy = func(s string) error { copied = s; return nil }

	var tm tea.Model = m
	tm = feed(t, tm, runes("c"))
	if tm.(pickerModel).mode != modeCalendar || !tm.(pickerModel).cal.Focused() {
		t.Fatalf("calendar layer not opened")
	}
	out := ansi.Strip(tm.View())
	if !strings.Contains(out, "September 2017") || !strings.Contains(out, "[Selected]") {
		t.Fatalf("calendar view missing content:\n%s", out)
	}
	tm = feed(t, tm, tea.KeyMsg{Type: tea.KeyRight})
	tm = feed(t, tm, tea.KeyMsg{Type: tea.KeyEnter})
	pm := tm.(pickerModel)
	if pm.mode != modeDialog || !pm.picked || !pm.date.Equal(date(2017, 9, 16)) {
		t.Fatalf("submit not applied: mode=%s date=%v", pm.mode, pm.date)
	}
	if !strings.Contains(ansi.Strip(tm.View()), "Saturday, 16 September 2017") {
		t.Fatalf("dialog text:\n%s", ansi.Strip(tm.View()))
	}
	tm = feed(t, tm, runes("y"))
	if copied != "2017-09-16" || tm.(pickerModel).notice != "copied 2017-09-16" {
		t.Fatalf("copy: %q notice %q", copied, tm.(pickerModel).notice)
	}
}

func TestPickerCopyFailure(t *testing.T) {
	m, err := newPicker(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	m.copy = func(string) error { return errors.New("no clipboard") }
	tm := feed(t, m, runes("y"))
	if n := tm.(pickerModel).notice; n != "copy failed: no clipboard" {
		t.Fatalf("notice %q", n)
	}
}

func TestPickerEscapeAndCancel(t *testing.T) {
	m, err := newPicker(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	tm := feed(t, m, runes("c"))
	tm = feed(t, tm, tea.KeyMsg{Type: tea.KeyEsc})
	if tm.(pickerModel).mode != modeDialog || tm.(pickerModel).cal.Focused() {
		t.Fatalf("esc did not close the calendar")
	}
	tm, cmd := tm.Update(runes("q"))
	if !tm.(pickerModel).cancelled || cmd == nil {
		t.Fatalf("q did not cancel")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit")
	}
}

func TestPickerButtons(t *testing.T) {
	m, err := newPicker(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	tm := feed(t, m, tea.KeyMsg{Type: tea.KeyRight})
	tm = feed(t, tm, tea.KeyMsg{Type: tea.KeyRight})
	tm, cmd := tm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if tm.(pickerModel).cancelled || cmd == nil {
		t.Fatalf("Done should quit without cancelling")
	}
}

func TestPickerMouse(t *testing.T) {
	m, err := newPicker(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	tm := feed(t, m, runes("c"))
	// Sep 20 2017 is column 2, week 3 of the day grid.
	click := tea.MouseMsg{X: calOriginX + 6, Y: calOriginY + 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	tm = feed(t, tm, click)
	tm = feed(t, tm, click)
	pm := tm.(pickerModel)
	if !pm.picked || !pm.date.Equal(date(2017, 9, 20)) || pm.mode != modeDialog {
		t.Fatalf("double click did not pick: %v %s", pm.date, pm.mode)
	}
}

func TestDoubleSwitchesFocus(t *testing.T) {
	m, err := newDouble(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	if !m.cals[1].FocusDate().Equal(date(2017, 10, 15)) {
		t.Fatalf("second calendar starts at %v", m.cals[1].FocusDate())
	}
	tm := feed(t, m, tea.KeyMsg{Type: tea.KeyTab})
	dm := tm.(doubleModel)
	if dm.active != 1 || dm.cals[0].Focused() || !dm.cals[1].Focused() {
		t.Fatalf("tab did not move focus")
	}
	tm = feed(t, tm, tea.KeyMsg{Type: tea.KeyLeft})
	dm = tm.(doubleModel)
	if !dm.cals[1].FocusDate().Equal(date(2017, 10, 14)) || !dm.cals[0].FocusDate().Equal(date(2017, 9, 15)) {
		t.Fatalf("key routed to wrong calendar")
	}
	out := ansi.Strip(tm.View())
	if !strings.Contains(out, "September 2017") || !strings.Contains(out, "October 2017") {
		t.Fatalf("missing calendars:\n%s", out)
	}
}

func TestDoubleMouseFocus(t *testing.T) {
	m, err := newDouble(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	x := m.cals[0].Width() + 2 + doubleGap + 1
	// Oct 2 2017 is the first Monday cell of the second week row.
	tm := feed(t, m, tea.MouseMsg{X: x, Y: 2 + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	dm := tm.(doubleModel)
	if dm.active != 1 || !dm.cals[1].FocusDate().Equal(date(2017, 10, 2)) {
		t.Fatalf("click: active=%d focus=%v", dm.active, dm.cals[1].FocusDate())
	}
	if dm.cals[0].Focused() {
		t.Fatalf("first calendar kept focus")
	}
}

func TestDoubleWheelFocus(t *testing.T) {
	m, err := newDouble(context.Background(), testSettings())
	if err != nil {
		t.Fatal(err)
	}
	x := m.cals[0].Width() + 2 + doubleGap + 1
	tm := feed(t, m, tea.MouseMsg{X: x + 4, Y: 2 + 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	dm := tm.(doubleModel)
	if dm.active != 1 || !dm.cals[1].Focused() || dm.cals[0].Focused() {
		t.Fatalf("wheel: active=%d focused=%v,%v", dm.active, dm.cals[0].Focused(), dm.cals[1].Focused())
	}
	if !dm.cals[1].FocusDate().Equal(date(2017, 11, 15)) {
		t.Fatalf("wheel did not page: %v", dm.cals[1].FocusDate())
	}
	tm = feed(t, tm, tea.KeyMsg{Type: tea.KeyRight})
	dm = tm.(doubleModel)
	if !dm.cals[1].FocusDate().Equal(date(2017, 11, 16)) {
		t.Fatalf("key after wheel ignored: %v", dm.cals[1].FocusDate())
	}
}

func TestSettingsFromConfig(t *testing.T) {
	c := config.Default()
	c.Calendar.Initial = "2017-09-15"
	c.Calendar.Lowest = "month"
	c.Calendar.View = "month"
	c.Calendar.Exclude = []string{"weekends"}
	c.UI.Timezone = "UTC"
	s, err := SettingsFromConfig(c, time.Now(), nil)
	if err != nil {
		t.Fatalf("SettingsFromConfig: %v", err)
	}
	cal, err := calendar.New(s.Initial, s.Options...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := cal.State()
	if st.Lowest != state.MonthView || st.View != state.MonthView || len(st.Exclusions) != 1 {
		t.Fatalf("options not applied: %+v", st)
	}
	if !cal.FocusDate().Equal(date(2017, 9, 15)) {
		t.Fatalf("initial %v", cal.FocusDate())
	}

	c.Calendar.WeekStart = "someday"
	if _, err := SettingsFromConfig(c, time.Now(), nil); err == nil {
		t.Fatalf("invalid config accepted")
	}
}

func TestSettingsFromConfigMonthPicker(t *testing.T) {
	c := config.Default()
	c.Calendar.Initial = "2017-09-15"
	c.Calendar.Lowest = "month"
	c.UI.Timezone = "UTC"
	s, err := SettingsFromConfig(c, time.Now(), nil)
	if err != nil {
		t.Fatalf("SettingsFromConfig: %v", err)
	}
	cal, err := calendar.New(s.Initial, s.Options...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st := cal.State(); st.View != state.MonthView || st.Lowest != state.MonthView {
		t.Fatalf("month picker opened at %s (lowest %s)", st.View, st.Lowest)
	}
}
