package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds prompt actions to keys. Two layouts exist: when search is
// enabled plain letters feed the query, so the bulk selection shortcuts move
// to modifier chords.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Home         key.Binding
	End          key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Toggle       key.Binding
	Submit       key.Binding
	NextGroup    key.Binding
	PrevGroup    key.Binding
	GroupToggle  key.Binding
	GroupInvert  key.Binding
	GlobalToggle key.Binding
	GlobalInvert key.Binding
	ClearQuery   key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the standard bindings for the given search mode.
func DefaultKeyMap(searchable bool) KeyMap {
	km := KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		NextGroup:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next group")),
		PrevGroup:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev group")),
		ClearQuery: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear filter")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
	if searchable {
		km.GlobalToggle = key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle all"))
		km.GlobalInvert = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "invert all"))
		km.GroupToggle = key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "toggle group"))
		km.GroupInvert = key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "invert group"))
	} else {
		km.GlobalToggle = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all"))
		km.GlobalInvert = key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert all"))
		km.GroupToggle = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "toggle group"))
		km.GroupInvert = key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "invert group"))
	}
	return km
}

// helpOrder lists the bindings shown in the footer hint row.
func (km KeyMap) helpOrder() []key.Binding {
	return []key.Binding{
		km.Up, km.Down, km.Toggle, km.NextGroup,
		km.GroupToggle, km.GroupInvert, km.GlobalToggle, km.GlobalInvert,
		km.Submit, km.Quit,
	}
}
