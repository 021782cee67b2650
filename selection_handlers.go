package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/trips"
)

func (m *model) openSelectionDrawer() {
	s := &m.ui.selection
	s.open = true
	s.errorMsg = ""
	m.setSelectionFocus(selectionFocusCities)
	m.ui.mode = modeSelect
	m.refreshView("selection-open")
}

func (m *model) closeSelectionDrawer() {
	m.ui.selection.open = false
	m.ui.selection.errorMsg = ""
	for i := range m.ui.selection.inputs {
		m.ui.selection.inputs[i].Blur()
	}
	m.ui.mode = modeStats
	m.refreshView("selection-close")
}

func (m *model) handleSelectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.ui.selection

	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, Keys.Cancel):
		if !m.data.hasReport {
			// nothing to go back to yet
			return m, nil
		}
		m.closeSelectionDrawer()
		return m, nil
	case key.Matches(msg, Keys.Apply):
		return m, m.applySelection()
	case key.Matches(msg, Keys.NextField):
		m.setSelectionFocus((s.focus + 1) % selectionFieldCount)
		return m, nil
	case key.Matches(msg, Keys.PrevField):
		m.setSelectionFocus((s.focus + selectionFieldCount - 1) % selectionFieldCount)
		return m, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return m, cmd
}

func (m *model) setSelectionFocus(focus int) {
	s := &m.ui.selection
	s.focus = focus
	for i := range s.inputs {
		if i == focus {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

// applySelection validates the drawer, runs the query and switches to the
// statistics view. Validation errors keep the drawer open.
func (m *model) applySelection() tea.Cmd {
	s := &m.ui.selection
	s.errorMsg = ""

	cities, months, days := s.values()
	sel, err := parseSelection(m.data.store.Catalog(), cities, months, days)
	if err != nil {
		logging.Debugf("Selection: rejected: %v", err)
		s.errorMsg = selectionErrorText(err)
		var se *selectionError
		if errors.As(err, &se) {
			m.setSelectionFocus(fieldIndex(se.Field))
		}
		return nil
	}

	if err := m.data.runQuery(sel); err != nil {
		logging.Errorf("Selection: query failed: %v", err)
		s.errorMsg = err.Error()
		return nil
	}

	m.closeSelectionDrawer()
	m.viewport.GotoTop()
	note := fmt.Sprintf("%d trips matched in %s", m.data.table.Len(), formatElapsed(m.data.elapsed))
	if n := len(m.data.loaded.Rejected()); n > 0 {
		return m.startNotice(fmt.Sprintf("%s (%d rows skipped: bad start time)", note, n), noticeWarn)
	}
	return m.startNotice(note, noticeSuccess)
}

func fieldIndex(field string) int {
	switch field {
	case "months":
		return selectionFocusMonths
	case "days":
		return selectionFocusDays
	default:
		return selectionFocusCities
	}
}

func selectionErrorText(err error) string {
	var se *selectionError
	if !errors.As(err, &se) {
		return err.Error()
	}
	switch {
	case errors.Is(err, trips.ErrUnknownCity):
		var uc *trips.UnknownCityError
		errors.As(err, &uc)
		return fmt.Sprintf("unknown city %q, choose from %s", uc.City, strings.Join(trips.DefaultCatalog().Cities(), ", "))
	case errors.Is(err, trips.ErrUnknownMonth):
		return "unknown month, choose from " + strings.Join(trips.MonthNames(), ", ")
	case errors.Is(err, trips.ErrUnknownDay):
		return "unknown day, choose from " + strings.Join(trips.DayNames(), ", ")
	default:
		return se.Error()
	}
}

func (m *model) selectionDrawerView(width int) string {
	s := &m.ui.selection
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	lines := []string{drawerTitleStyle.Render("Explore US bikeshare data")}
	for i, in := range s.inputs {
		label := selectionLabels[i]
		if i == s.focus {
			label = focusedLabelStyle.Render(label)
		}
		lines = append(lines, lineStyle.Render(label+in.View()))
	}
	lines = append(lines,
		lineStyle.Render("tab: next  shift+tab: prev  enter: apply  esc: cancel"),
	)
	errorLine := ""
	if s.errorMsg != "" {
		errorLine = errorStyle.Render("Error: " + s.errorMsg)
	}
	lines = append(lines, lineStyle.Render(errorLine))

	return drawerArea.Width(width).Render(strings.Join(lines, "\n"))
}
