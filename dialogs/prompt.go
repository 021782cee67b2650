package dialogs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-bikeshare/logging"
)

// pathPrompt asks for an output file path. Export and Save are both one of these.
type pathPrompt struct {
	name    string
	input   textinput.Model
	visible bool
	lastDir string
	hint    string

	confirm func(path string) tea.Msg
	cancel  func() tea.Msg
}

func newPathPrompt(name, prompt, hint, defaultName, lastDir string) *pathPrompt {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &pathPrompt{name: name, input: ti, visible: true, lastDir: lastDir, hint: hint}
}

func (d *pathPrompt) Init() tea.Cmd { return d.input.Focus() }

func (d *pathPrompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolve()
			if path == "" {
				return d, nil
			}
			logging.Debugf("%s dialog: confirmed %s", d.name, path)
			return d, func() tea.Msg { return d.confirm(path) }
		case "esc":
			logging.Debugf("%s dialog: canceled", d.name)
			return d, func() tea.Msg { return d.cancel() }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolve falls back to the placeholder and places bare file names in lastDir.
func (d *pathPrompt) resolve() string {
	val := strings.TrimSpace(d.input.Value())
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d *pathPrompt) View() string {
	if !d.visible {
		return ""
	}
	help := lipgloss.NewStyle().Faint(true).Render(d.hint)
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), help))
}

func (d *pathPrompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *pathPrompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *pathPrompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *pathPrompt) Blur()           { d.input.Blur() }
func (d *pathPrompt) IsVisible() bool { return d.visible }
