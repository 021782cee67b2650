package dialogs

import tea "github.com/charmbracelet/bubbletea"

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// NewExportDialog prompts for the CSV file the filtered trips are written to.
func NewExportDialog(defaultName, lastDir string) Dialog {
	d := newPathPrompt("export", "Export trips as: ", "enter to export CSV • esc to cancel", defaultName, lastDir)
	d.confirm = func(path string) tea.Msg { return ExportConfirmedMsg{Path: path} }
	d.cancel = func() tea.Msg { return ExportCanceledMsg{} }
	return d
}
