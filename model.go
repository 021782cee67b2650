package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-bikeshare/clipboard"
	"github.com/andareed/siftly-bikeshare/config"
	"github.com/andareed/siftly-bikeshare/dialogs"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/trips"
)

// Rows taken by everything but the viewport: app margins, header, viewport
// border and the two footer lines.
const (
	chromeHeight        = 2 + 1 + 2 + 2
	selectionDrawerRows = 6 + 2
)

type model struct {
	data         dataState
	ui           uiState
	viewport     viewport.Model
	rawTable     table.Model
	activeDialog dialogs.Dialog

	ready          bool
	terminalWidth  int
	terminalHeight int
}

func newModel(cfg config.Config) (*model, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	store := trips.NewStore(catalog, cfg.DataDir, trips.WithSQLiteTable(cfg.SQLiteTable))

	m := &model{
		data:     dataState{store: store},
		rawTable: newRawTable(),
		ui: uiState{
			mode:      modeSelect,
			selection: newSelectionUI(cfg.Cities, cfg.Months, cfg.Days, catalog),
			lastDir:   cfg.DataDir,
		},
	}
	m.openSelectionDrawer()
	return m, nil
}

func (m *model) Init() tea.Cmd {
	logging.Debug("siftly-bikeshare: Initialised")
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.resize()
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		if err := ExportTable(m.data.table, msg.Path); err != nil {
			logging.Errorf("Export: %v", err)
			return m, m.startNotice("Export failed: "+err.Error(), noticeError)
		}
		return m, m.startNotice(fmt.Sprintf("Exported %d trips to %s", m.data.table.Len(), msg.Path), noticeSuccess)
	case dialogs.SaveConfirmedMsg:
		m.closeDialog()
		if err := SaveReport(m.data, msg.Path); err != nil {
			logging.Errorf("Save: %v", err)
			return m, m.startNotice("Save failed: "+err.Error(), noticeError)
		}
		return m, m.startNotice("Saved report to "+msg.Path, noticeSuccess)
	case dialogs.ExportCanceledMsg, dialogs.SaveCanceledMsg, dialogs.HelpClosedMsg:
		m.closeDialog()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.ui.mode == modeSelect {
		var cmd tea.Cmd
		s := &m.ui.selection
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) resize() {
	w := max(0, m.terminalWidth-6)
	h := m.terminalHeight - chromeHeight
	if m.ui.selection.open {
		h -= selectionDrawerRows
	}
	m.viewport = viewport.New(w, max(1, h))
	m.refreshView("resize")
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}

	switch m.ui.mode {
	case modeSelect:
		next, cmd := m.handleSelectionKey(msg)
		if !m.ui.selection.open {
			m.resize()
		}
		return next, cmd
	case modeRaw:
		return m.handleRawKey(msg)
	default:
		return m.handleStatsKey(msg)
	}
}

// handleCommonKey covers the bindings shared by the statistics and raw views.
func (m *model) handleCommonKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, Keys.Restart):
		m.openSelectionDrawer()
		m.resize()
		return textinput.Blink, true
	case key.Matches(msg, Keys.OpenHelp):
		m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
		return nil, true
	case key.Matches(msg, Keys.ExportTrips):
		m.openDialog(dialogs.NewExportDialog(defaultFileName(m.data.selection, ".csv"), m.ui.lastDir))
		return textinput.Blink, true
	case key.Matches(msg, Keys.SaveToFile):
		m.openDialog(dialogs.NewSaveDialog(defaultFileName(m.data.selection, ".json"), m.ui.lastDir))
		return textinput.Blink, true
	case key.Matches(msg, Keys.CopyPage):
		return m.copyPage(), true
	}
	return nil, false
}

func (m *model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleCommonKey(msg); ok {
		return m, cmd
	}
	if key.Matches(msg, Keys.RawView) {
		m.ui.mode = modeRaw
		var cmd tea.Cmd
		if m.data.page == nil {
			cmd = m.showNextPage()
		}
		m.refreshView("raw-open")
		m.viewport.GotoTop()
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleRawKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.handleCommonKey(msg); ok {
		return m, cmd
	}
	switch {
	case key.Matches(msg, Keys.Back):
		m.ui.mode = modeStats
		m.refreshView("raw-close")
		return m, nil
	case key.Matches(msg, Keys.NextPage):
		cmd := m.showNextPage()
		m.refreshView("raw-next")
		return m, cmd
	}
	return m, nil
}

// showNextPage moves the raw pager forward and reports when nothing is left.
func (m *model) showNextPage() tea.Cmd {
	more, err := m.data.nextPage()
	if err != nil {
		return m.startNotice("Paging failed: "+err.Error(), noticeError)
	}
	if !more {
		return m.startNotice("No more trips to show", noticeInfo)
	}
	return nil
}

func (m *model) copyPage() tea.Cmd {
	if len(m.data.page) == 0 {
		return m.startNotice("Nothing to copy, open the raw view with r first", noticeWarn)
	}
	method, err := clipboard.Copy(pageText(m.data.page))
	if err != nil {
		return m.startNotice("Copy failed: "+err.Error(), noticeError)
	}
	return m.startNotice(fmt.Sprintf("Copied %d trips (%s)", len(m.data.page), method), noticeSuccess)
}

func (m *model) openDialog(d dialogs.Dialog) {
	m.activeDialog = d
	m.activeDialog.Show()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}
