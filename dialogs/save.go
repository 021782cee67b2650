package dialogs

import tea "github.com/charmbracelet/bubbletea"

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// NewSaveDialog prompts for the JSON file the statistics report is saved to.
func NewSaveDialog(defaultName, lastDir string) Dialog {
	d := newPathPrompt("save", "Save report as: ", "enter to save JSON • esc to cancel", defaultName, lastDir)
	d.confirm = func(path string) tea.Msg { return SaveConfirmedMsg{Path: path} }
	d.cancel = func() tea.Msg { return SaveCanceledMsg{} }
	return d
}
