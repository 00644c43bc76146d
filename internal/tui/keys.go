package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the browser key bindings.
type KeyMap struct {
	Quit      key.Binding
	Search    key.Binding
	Accept    key.Binding
	Cancel    key.Binding
	Previous  key.Binding
	Next      key.Binding
	FirstPage key.Binding
	LastPage  key.Binding
	Up        key.Binding
	Down      key.Binding
	Delete    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Previous:  key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		Next:      key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		FirstPage: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		LastPage:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete", "x"), key.WithHelp("d", "delete")),
	}
}

// listHelp returns the bindings shown in the footer while browsing.
func (k KeyMap) listHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Up, k.Down, k.Delete, k.Search, k.Quit}
}

// searchHelp returns the bindings shown in the footer while searching.
func (k KeyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Cancel}
}
