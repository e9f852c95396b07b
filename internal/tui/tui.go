package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calpick/internal/tui/views/dialog"
	"calpick/internal/tui/views/keyhelp"
	"calpick/internal/tui/views/legend"
	"calpick/internal/tui/widgets/calendar"
	"calpick/internal/tui/widgets/statusbar"
)

// Result is what the picker dialog returns.
type Result struct {
	Date      time.Time
	Picked    bool
	Cancelled bool
}

// RunPicker shows a dialog holding one date and a "choose date" action that
// opens a calendar layer. It returns once the user is done or cancels.
func RunPicker(ctx context.Context, s Settings) (Result, error) {
	m, err := newPicker(ctx, s)
	if err != nil {
		return Result{}, err
	}
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if s.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run picker: %w", err)
	}
	pm := final.(pickerModel)
	return Result{Date: pm.date, Picked: pm.picked, Cancelled: pm.cancelled}, nil
}

// ===== Model =====

type mode string

const (
	modeDialog   mode = "dialog"   // date text and buttons
	modeCalendar mode = "calendar" // calendar layer on top
	modeHelp     mode = "help"     // key overlay
)

type pickerModel struct {
	log *slog.Logger
	cal calendar.Model

	mode   mode
	prev   mode
	cursor dialog.Option

	date      time.Time
	picked    bool
	cancelled bool
	notice    string
	noColor   bool

	copy   func(string) error
	status statusbar.StatusBar
}

// calendar content sits below the title line and inside a one cell border.
const calOriginX, calOriginY = 1, 2

func newPicker(ctx context.Context, s Settings) (pickerModel, error) {
	cal, err := calendar.New(s.Initial, s.Options...)
	if err != nil {
		return pickerModel{}, err
	}
	cal.SetOrigin(calOriginX, calOriginY)
	date, picked := cal.Date()
	return pickerModel{
		log:     ctxlog.Logger(ctx),
		cal:     cal,
		mode:    modeDialog,
		date:    date,
		picked:  picked,
		noColor: s.NoColor,
		copy:    clipboard.WriteAll,
		status:  statusbar.NewStatusBar(),
	}, nil
}

func (m pickerModel) Init() tea.Cmd { return m.cal.Init() }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case calendar.SubmitMsg:
		if msg.ID != m.cal.ID() {
			return m, nil
		}
		m.date, m.picked = msg.Date, true
		m.notice = "picked " + msg.Date.Format(time.DateOnly)
		m.log.Info("date picked", "date", msg.Date.Format(time.DateOnly))
		m.closeCalendar()
		return m, nil

	case calendar.SelectMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			m.mode = m.prev
			return m, nil
		case modeCalendar:
			cal, cmd, ok := m.cal.Handle(msg)
			m.cal = cal
			if ok {
				return m, cmd
			}
			switch msg.String() {
			case "esc", "q":
				m.closeCalendar()
			case "?":
				m.prev, m.mode = m.mode, modeHelp
			}
			return m, nil
		default:
			return m.updateDialog(msg)
		}

	case tea.MouseMsg:
		if m.mode != modeCalendar {
			return m, nil
		}
		cal, cmd, _ := m.cal.Handle(msg)
		m.cal = cal
		return m, cmd
	}

	cal, cmd, _ := m.cal.Handle(msg)
	m.cal = cal
	return m, cmd
}

func (m pickerModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "q", "esc":
		return m.act(dialog.Cancel)
	case "left", "h", "shift+tab":
		m.cursor = dialog.Next(m.cursor, -1)
	case "right", "l", "tab":
		m.cursor = dialog.Next(m.cursor, 1)
	case "c":
		return m.act(dialog.Choose)
	case "y":
		return m.act(dialog.Copy)
	case "?":
		m.prev, m.mode = m.mode, modeHelp
	case "enter":
		return m.act(m.cursor)
	}
	return m, nil
}

func (m pickerModel) act(o dialog.Option) (tea.Model, tea.Cmd) {
	switch o {
	case dialog.Choose:
		m.openCalendar()
	case dialog.Copy:
		m.copyDate()
	case dialog.Done:
		return m, tea.Quit
	case dialog.Cancel:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *pickerModel) openCalendar() {
	if m.picked {
		m.cal.SetSelectedDate(m.date)
		m.cal.SetFocusDate(m.date)
	}
	m.cal.SetViewMode(m.cal.State().Lowest)
	m.cal.Focus()
	m.mode = modeCalendar
	m.notice = ""
}

func (m *pickerModel) closeCalendar() {
	m.cal.Blur()
	m.mode = modeDialog
}

func (m *pickerModel) copyDate() {
	if !m.picked {
		m.notice = "nothing to copy"
		return
	}
	text := m.date.Format(time.DateOnly)
	if err := m.copy(text); err != nil {
		m.log.Warn("clipboard write failed", "error", err)
		m.notice = "copy failed: " + err.Error()
		return
	}
	m.notice = "copied " + text
}

// ===== Views =====

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	selStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	buttonStyle = lipgloss.NewStyle()
	faintStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
)

func (m pickerModel) View() string {
	switch m.mode {
	case modeCalendar:
		return m.viewCalendar()
	case modeHelp:
		return keyhelp.RenderHelp(m.cal.KeyMap(), m.cal.State()) + "\n" + faintStyle.Render("any key: back") + "\n"
	default:
		return m.viewDialog()
	}
}

func (m pickerModel) viewDialog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick a date") + "\n\n")
	text := "(none)"
	if m.picked {
		text = m.cal.DateString(m.date)
	}
	b.WriteString("Date: " + text + "\n\n")
	buttons := make([]string, 0, 4)
	for i, label := range dialog.RenderOptions() {
		if dialog.Option(i) == m.cursor {
			buttons = append(buttons, selStyle.Render("[ "+label+" ]"))
		} else {
			buttons = append(buttons, buttonStyle.Render("  "+label+"  "))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...) + "\n\n")
	if m.notice != "" {
		b.WriteString(faintStyle.Render(m.notice) + "\n")
	}
	b.WriteString("←/→: move   enter: press   c: choose   y: copy   ?: help   q: quit\n")
	return b.String()
}

func (m pickerModel) viewCalendar() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Choose date") + "\n")
	b.WriteString(boxStyle.Render(m.cal.View()) + "\n")
	b.WriteString(legend.RenderTags(m.cal.State(), m.cal.Today(), m.noColor) + "\n")
	b.WriteString(m.status.View(m.cal.State(), m.notice) + "\n")
	b.WriteString(keyhelp.RenderHint(m.cal.KeyMap(), 60) + faintStyle.Render("  esc: back  ?: help") + "\n")
	return b.String()
}
