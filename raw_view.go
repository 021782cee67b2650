package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/andareed/siftly-bikeshare/trips"
)

const tripTimeLayout = "2006-01-02 15:04:05"

type rawColumn struct {
	title    string
	minWidth int
	weight   int // share of any width left after minimums
	value    func(trips.Record) string
}

var rawColumns = []rawColumn{
	{"#", 5, 0, func(r trips.Record) string { return strconv.Itoa(r.SourceRow()) }},
	{"City", 10, 0, func(r trips.Record) string { return r.City }},
	{"Start Time", 19, 0, func(r trips.Record) string { return r.StartTime.Format(tripTimeLayout) }},
	{"End Time", 19, 0, func(r trips.Record) string {
		return fieldText(r.EndTime, func(t time.Time) string { return t.Format(tripTimeLayout) })
	}},
	{"Duration", 8, 0, func(r trips.Record) string {
		return fieldText(r.Duration, func(d float64) string { return strconv.FormatFloat(d, 'f', -1, 64) })
	}},
	{"Start Station", 12, 1, func(r trips.Record) string { return r.StartStation }},
	{"End Station", 12, 1, func(r trips.Record) string { return r.EndStation }},
	{"User Type", 10, 0, func(r trips.Record) string { return r.UserType }},
	{"Gender", 6, 0, func(r trips.Record) string { return fieldText(r.Gender, func(s string) string { return s }) }},
	{"Birth", 5, 0, func(r trips.Record) string { return fieldText(r.BirthYear, strconv.Itoa) }},
}

func newRawTable() table.Model {
	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Cell

	t := table.New(
		table.WithColumns(tableColumns(0)),
		table.WithHeight(trips.PageSize+2),
		table.WithFocused(false),
	)
	t.SetStyles(s)
	return t
}

// tableColumns shares width between the weighted columns. Each cell carries
// two padding characters.
func tableColumns(width int) []table.Column {
	used, weights := 0, 0
	for _, c := range rawColumns {
		used += c.minWidth + 2
		weights += c.weight
	}
	extra := max(0, width-used)

	cols := make([]table.Column, len(rawColumns))
	for i, c := range rawColumns {
		w := c.minWidth
		if c.weight > 0 && weights > 0 {
			w += extra * c.weight / weights
		}
		cols[i] = table.Column{Title: c.title, Width: w}
	}
	return cols
}

func tableRows(records []trips.Record, cols []table.Column) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		row := make(table.Row, len(rawColumns))
		for i, c := range rawColumns {
			row[i] = truncate.StringWithTail(c.value(r), uint(cols[i].Width), "…")
		}
		rows = append(rows, row)
	}
	return rows
}

func (m *model) renderRawPage(width int) string {
	if len(m.data.page) == 0 {
		return dimStyle.Render("No trips to show for this selection.")
	}
	cols := tableColumns(width)
	m.rawTable.SetColumns(cols)
	m.rawTable.SetRows(tableRows(m.data.page, cols))
	m.rawTable.SetWidth(width)

	hint := dimStyle.Render(fmt.Sprintf("Showing %s. n/space for the next %d, esc to go back.", m.data.pageLabel(), trips.PageSize))
	return m.rawTable.View() + "\n\n" + hint
}

// pageText is the tab separated form of the current page put on the clipboard.
func pageText(records []trips.Record) string {
	var b strings.Builder
	titles := make([]string, len(rawColumns))
	for i, c := range rawColumns {
		titles[i] = c.title
	}
	b.WriteString(strings.Join(titles, "\t") + "\n")
	for _, r := range records {
		cells := make([]string, len(rawColumns))
		for i, c := range rawColumns {
			cells[i] = c.value(r)
		}
		b.WriteString(strings.Join(cells, "\t") + "\n")
	}
	return b.String()
}
