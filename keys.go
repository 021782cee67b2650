package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/siftly-bikeshare/dialogs"
)

type Keymap struct {
	Quit        key.Binding
	Restart     key.Binding
	RawView     key.Binding
	NextPage    key.Binding
	Back        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	SaveToFile  key.Binding
	ExportTrips key.Binding
	CopyPage    key.Binding
	OpenHelp    key.Binding

	// selection drawer
	NextField key.Binding
	PrevField key.Binding
	Apply     key.Binding
	Cancel    key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Restart: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "new selection (restart)"),
	),
	RawView: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "view raw trips"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", " "),
		key.WithHelp("n/space", "next 5 trips"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc/b", "back to statistics"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save report as JSON"),
	),
	ExportTrips: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export filtered trips as CSV"),
	),
	CopyPage: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy current page to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply selection"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel (keeps last result)"),
	),
}

func (k Keymap) Legend() []dialogs.HelpSection {
	return []dialogs.HelpSection{
		{Title: "Selection", Bindings: []key.Binding{k.NextField, k.PrevField, k.Apply, k.Cancel}},
		{Title: "Statistics", Bindings: []key.Binding{k.ScrollDown, k.ScrollUp, k.RawView, k.Restart, k.SaveToFile, k.ExportTrips}},
		{Title: "Raw trips", Bindings: []key.Binding{k.NextPage, k.CopyPage, k.Back}},
		{Title: "General", Bindings: []key.Binding{k.OpenHelp, k.Quit}},
	}
}
