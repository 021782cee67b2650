package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-bikeshare/dialogs"
)

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
)

func newTestModel(t *testing.T, cities, months, days string) *model {
	t.Helper()
	m, err := newModel(testConfig(writeFixtures(t), cities, months, days))
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 50})
	return m
}

func TestModelStartsInSelectionDrawer(t *testing.T) {
	m := newTestModel(t, "chicago", "all", "all")
	if m.ui.mode != modeSelect || !m.ui.selection.open {
		t.Fatalf("mode = %s open=%v", m.ui.mode, m.ui.selection.open)
	}
	if !strings.Contains(m.View(), "Explore US bikeshare data") {
		t.Fatal("drawer not rendered")
	}
	// esc does nothing before the first query
	m.Update(keyEsc)
	if m.ui.mode != modeSelect {
		t.Fatal("esc should not leave the drawer without a result")
	}
}

func TestModelSelectionFocusCycles(t *testing.T) {
	m := newTestModel(t, "chicago", "all", "all")
	m.Update(keyTab)
	m.Update(keyTab)
	if m.ui.selection.focus != selectionFocusDays {
		t.Fatalf("focus = %d", m.ui.selection.focus)
	}
	m.Update(keyTab)
	if m.ui.selection.focus != selectionFocusCities {
		t.Fatalf("focus should wrap, got %d", m.ui.selection.focus)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.ui.selection.focus != selectionFocusDays {
		t.Fatalf("shift+tab focus = %d", m.ui.selection.focus)
	}
}

func TestModelQueryAndRawPaging(t *testing.T) {
	stubClock(t, 1500*time.Millisecond)
	m := newTestModel(t, "chicago", "all", "all")

	m.Update(keyEnter)
	if m.ui.mode != modeStats || !m.data.hasReport {
		t.Fatalf("expected stats mode after apply, got %s", m.ui.mode)
	}
	if n := m.data.table.Len(); n != 7 {
		t.Fatalf("rows = %d, want 7", n)
	}
	if !strings.Contains(m.ui.noticeMsg, "7 trips matched in 1.500 seconds") {
		t.Fatalf("notice = %q", m.ui.noticeMsg)
	}

	m.Update(keyRunes("r"))
	if m.ui.mode != modeRaw || len(m.data.page) != 5 || m.data.pageCursor != 5 {
		t.Fatalf("first page: mode=%s rows=%d cursor=%d", m.ui.mode, len(m.data.page), m.data.pageCursor)
	}

	m.Update(keyRunes("n"))
	if len(m.data.page) != 2 || m.data.pageStart != 5 {
		t.Fatalf("second page rows=%d start=%d", len(m.data.page), m.data.pageStart)
	}
	if got := m.data.page[0].SourceRow(); got != 6 {
		t.Fatalf("second page starts at source row %d, want 6", got)
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.ui.noticeMsg != "No more trips to show" {
		t.Fatalf("notice = %q", m.ui.noticeMsg)
	}
	if m.data.pageCursor != 15 {
		t.Fatalf("cursor should keep advancing, got %d", m.data.pageCursor)
	}
	if !strings.Contains(m.View(), "Raw trips") {
		t.Fatal("raw header missing")
	}

	m.Update(keyEsc)
	if m.ui.mode != modeStats {
		t.Fatalf("esc should return to stats, got %s", m.ui.mode)
	}
}

func TestModelRestartValidatesAndResetsCursor(t *testing.T) {
	m := newTestModel(t, "chicago", "all", "all")
	m.Update(keyEnter)
	m.Update(keyRunes("r"))

	m.Update(keyRunes("f"))
	if m.ui.mode != modeSelect {
		t.Fatalf("f should reopen the drawer, got %s", m.ui.mode)
	}

	m.ui.selection.inputs[selectionFocusCities].SetValue("boston")
	m.Update(keyEnter)
	if !strings.Contains(m.ui.selection.errorMsg, `unknown city "boston"`) {
		t.Fatalf("error = %q", m.ui.selection.errorMsg)
	}
	if m.ui.mode != modeSelect || m.data.table.Len() != 7 {
		t.Fatal("a rejected selection must keep the previous result")
	}

	m.ui.selection.inputs[selectionFocusCities].SetValue("chicago")
	m.ui.selection.inputs[selectionFocusMonths].SetValue("june")
	m.ui.selection.inputs[selectionFocusDays].SetValue("monday")
	m.Update(keyEnter)
	if m.ui.mode != modeStats {
		t.Fatalf("mode = %s, drawer error %q", m.ui.mode, m.ui.selection.errorMsg)
	}
	if n := m.data.table.Len(); n != 3 {
		t.Fatalf("june mondays = %d, want 3", n)
	}
	if m.data.pageCursor != 0 || m.data.page != nil {
		t.Fatal("pager must restart for a new query")
	}
}

func TestModelCopyWithoutPage(t *testing.T) {
	m := newTestModel(t, "chicago", "all", "all")
	m.Update(keyEnter)
	m.Update(keyRunes("y"))
	if m.ui.noticeType != noticeWarn {
		t.Fatalf("notice %q (%s)", m.ui.noticeMsg, m.ui.noticeType)
	}
}

func TestModelExportAndSaveDialogs(t *testing.T) {
	m := newTestModel(t, "chicago", "june", "all")
	m.Update(keyEnter)

	m.Update(keyRunes("e"))
	if m.activeDialog == nil || !m.activeDialog.IsVisible() {
		t.Fatal("export dialog not open")
	}
	out := filepath.Join(t.TempDir(), "trips.csv")
	m.Update(dialogs.ExportConfirmedMsg{Path: out})
	if m.activeDialog != nil {
		t.Fatal("dialog should close after export")
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("export missing: %v", err)
	}
	if !strings.Contains(m.ui.noticeMsg, "Exported 5 trips") {
		t.Fatalf("notice = %q", m.ui.noticeMsg)
	}

	m.Update(keyRunes("s"))
	report := filepath.Join(t.TempDir(), "report.json")
	m.Update(dialogs.SaveConfirmedMsg{Path: report})
	if _, err := os.Stat(report); err != nil {
		t.Fatalf("report missing: %v", err)
	}
}

func TestModelHelpDialog(t *testing.T) {
	m := newTestModel(t, "chicago", "all", "all")
	m.Update(keyEnter)
	m.Update(keyRunes("?"))
	if _, ok := m.activeDialog.(*dialogs.Help); !ok {
		t.Fatalf("active dialog = %T", m.activeDialog)
	}
	if !strings.Contains(m.View(), "Raw trips") {
		t.Fatal("help should list the raw trips section")
	}
	_, cmd := m.Update(keyEsc)
	if cmd == nil {
		t.Fatal("help should emit a close message")
	}
	m.Update(cmd())
	if m.activeDialog != nil {
		t.Fatal("help still open")
	}
}
