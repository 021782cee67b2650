package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/andareed/siftly-bikeshare/trips"
)

const (
	selectionFocusCities = iota
	selectionFocusMonths
	selectionFocusDays
	selectionFieldCount
)

type selectionUI struct {
	open     bool
	focus    int
	inputs   [selectionFieldCount]textinput.Model
	errorMsg string
}

var selectionLabels = [selectionFieldCount]string{"City:  ", "Month: ", "Day:   "}

func newSelectionUI(cities, months, days string, catalog trips.Catalog) selectionUI {
	placeholders := [selectionFieldCount]string{
		strings.Join(catalog.Cities(), ", ") + " or all",
		strings.Join(trips.MonthNames(), ", ") + " or all",
		"monday, tuesday, ... or all",
	}
	values := [selectionFieldCount]string{cities, months, days}

	var s selectionUI
	for i := range s.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Width = 60
		ti.SetValue(values[i])
		s.inputs[i] = ti
	}
	return s
}

func (s *selectionUI) values() (cities, months, days string) {
	return s.inputs[selectionFocusCities].Value(),
		s.inputs[selectionFocusMonths].Value(),
		s.inputs[selectionFocusDays].Value()
}
