package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	save       key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	edit       key.Binding
	delete     key.Binding
	toggle     key.Binding
	copy       key.Binding
	search     key.Binding
	view       key.Binding
	prevCat    key.Binding
	nextCat    key.Binding
	prevMonth  key.Binding
	nextMonth  key.Binding
	today      key.Binding
	prevEvent  key.Binding
	nextEvent  key.Binding
	exportICS  key.Binding
	importICS  key.Binding
	yes        key.Binding
	no         key.Binding
	buildInfo  key.Binding
	screenKeys []key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	toggle:    key.NewBinding(key.WithKeys(" ", "t")),
	copy:      key.NewBinding(key.WithKeys("c")),
	search:    key.NewBinding(key.WithKeys("/")),
	view:      key.NewBinding(key.WithKeys("v")),
	prevCat:   key.NewBinding(key.WithKeys("[")),
	nextCat:   key.NewBinding(key.WithKeys("]")),
	prevMonth: key.NewBinding(key.WithKeys("<", ",")),
	nextMonth: key.NewBinding(key.WithKeys(">", ".")),
	today:     key.NewBinding(key.WithKeys("g")),
	prevEvent: key.NewBinding(key.WithKeys("K")),
	nextEvent: key.NewBinding(key.WithKeys("J")),
	exportICS: key.NewBinding(key.WithKeys("x")),
	importICS: key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
	screenKeys: []key.Binding{
		key.NewBinding(key.WithKeys("1")),
		key.NewBinding(key.WithKeys("2")),
		key.NewBinding(key.WithKeys("3")),
		key.NewBinding(key.WithKeys("4")),
	},
}
