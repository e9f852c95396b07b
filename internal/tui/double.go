package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calpick/internal/tui/state"
	"calpick/internal/tui/widgets/calendar"
	"calpick/internal/tui/widgets/statusbar"
)

// RangeResult holds the dates picked in the two calendar view.
type RangeResult struct {
	From, To  time.Time
	Cancelled bool
}

// RunDouble shows two independent calendars side by side. Tab moves keyboard
// focus between them; enter in either one selects its date.
func RunDouble(ctx context.Context, s Settings) (RangeResult, error) {
	m, err := newDouble(ctx, s)
	if err != nil {
		return RangeResult{}, err
	}
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if s.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return RangeResult{}, fmt.Errorf("run double: %w", err)
	}
	dm := final.(doubleModel)
	from, _ := dm.cals[0].Date()
	to, _ := dm.cals[1].Date()
	return RangeResult{From: from, To: to, Cancelled: dm.cancelled}, nil
}

type doubleModel struct {
	log       *slog.Logger
	cals      [2]calendar.Model
	active    int
	cancelled bool
	notice    string
	status    statusbar.StatusBar
}

const doubleGap = 2

func newDouble(ctx context.Context, s Settings) (doubleModel, error) {
	m := doubleModel{log: ctxlog.Logger(ctx), status: statusbar.NewStatusBar()}
	for i := range m.cals {
		initial := s.Initial
		if i == 1 {
			initial = state.OffsetDate(initial, 0, 1, 0)
		}
		cal, err := calendar.New(initial, s.Options...)
		if err != nil {
			return doubleModel{}, err
		}
		m.cals[i] = cal
	}
	// Boxes start below the title line, each inside a one cell border.
	m.cals[0].SetOrigin(1, 2)
	m.cals[1].SetOrigin(m.cals[0].Width()+2+doubleGap+1, 2)
	m.cals[0].Focus()
	return m, nil
}

func (m doubleModel) Init() tea.Cmd {
	return tea.Batch(m.cals[0].Init(), m.cals[1].Init())
}

func (m doubleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendar.SubmitMsg:
		for i, c := range m.cals {
			if c.ID() == msg.ID {
				m.notice = fmt.Sprintf("calendar %d: %s", i+1, msg.Date.Format(time.DateOnly))
				m.log.Info("date picked", "calendar", i+1, "date", msg.Date.Format(time.DateOnly))
			}
		}
		return m, nil

	case tea.KeyMsg:
		cal, cmd, ok := m.cals[m.active].Handle(msg)
		m.cals[m.active] = cal
		if ok {
			return m, cmd
		}
		switch strings.ToLower(msg.String()) {
		case "tab", "shift+tab":
			m.cals[m.active].Blur()
			m.active = 1 - m.active
			m.cals[m.active].Focus()
		case "q", "esc":
			return m, tea.Quit
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		for i := range m.cals {
			cal, cmd, ok := m.cals[i].Handle(msg)
			if !ok {
				continue
			}
			m.cals[i] = cal
			if i != m.active {
				m.cals[m.active].Blur()
				m.active = i
			}
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.cals {
		cal, cmd, _ := m.cals[i].Handle(msg)
		m.cals[i] = cal
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m doubleModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick two dates") + "\n")
	boxes := make([]string, 0, 3)
	for i, c := range m.cals {
		style := boxStyle
		if i == m.active {
			style = style.BorderForeground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"})
		}
		if i > 0 {
			boxes = append(boxes, strings.Repeat(" ", doubleGap))
		}
		boxes = append(boxes, style.Render(c.View()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...) + "\n")
	b.WriteString(m.status.View(m.cals[m.active].State(), m.notice) + "\n")
	b.WriteString(faintStyle.Render("tab: switch calendar   enter on a date: select   q: done") + "\n")
	return b.String()
}
