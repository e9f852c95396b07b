package calendar

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the calendar reacts to. It satisfies help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Today    key.Binding
	ZoomOut  key.Binding
	Submit   key.Binding
}

// DefaultKeyMap returns arrow/page navigation with vim-style aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("PgUp", "previous page")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("PgDn", "next page")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("Home", "first")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("End", "last")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		ZoomOut:  key.NewBinding(key.WithKeys("backspace", "-"), key.WithHelp("⌫", "zoom out")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select / zoom in")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ZoomOut, k.Today}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Submit, k.ZoomOut, k.Today},
	}
}
