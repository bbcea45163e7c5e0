package gridview

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the grid's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Activate    key.Binding
	RangeSelect key.Binding
	SelectAll   key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev control")),
		Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next control")),
		ScrollLeft:  key.NewBinding(key.WithKeys("shift+left", "h"), key.WithHelp("⇧←/h", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("shift+right", "l"), key.WithHelp("⇧→/l", "scroll right")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		Activate:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		RangeSelect: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "select range")),
		SelectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ScrollLeft, k.ScrollRight, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Activate, k.RangeSelect, k.SelectAll},
		{k.Filter, k.ClearFilter, k.Help, k.Quit},
	}
}
