package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-bikeshare/dialogs"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/stats"
	"github.com/andareed/siftly-bikeshare/trips"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.activeDialog, m.terminalWidth, m.terminalHeight)
	}

	bordered := tableStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.ui.selection.open {
		parts = append(parts, m.selectionDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) headerView() string {
	title := "Bikeshare statistics"
	if m.ui.mode == modeRaw {
		title = "Raw trips"
	}
	if m.data.hasReport {
		title += " · " + m.data.selection.label()
	}
	return headerStyle.Render(title)
}

// refreshView re-renders the viewport content for the current mode.
func (m *model) refreshView(reason string) {
	logging.Debugf("refreshView reason=%s mode=%s", reason, m.ui.mode)
	if !m.ready {
		return
	}
	switch m.ui.mode {
	case modeRaw:
		m.viewport.SetContent(m.renderRawPage(m.viewport.Width))
	default:
		if !m.data.hasReport {
			m.viewport.SetContent(dimStyle.Render("Choose cities, months and days below, then press enter."))
			return
		}
		m.viewport.SetContent(renderReport(m.data, m.viewport.Width))
	}
}

// renderReport lays out the four statistic groups followed by the query time.
func renderReport(d dataState, width int) string {
	r := d.report
	var b strings.Builder

	section := func(title string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(title) + "\n")
	}
	line := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-20s", label)) + value + "\n")
	}

	section("Most frequent times of travel")
	line("Month", modeText(r.Temporal.Month, "months", func(v time.Month) string { return v.String() }))
	line("Day of week", modeText(r.Temporal.Weekday, "days", func(v time.Weekday) string { return v.String() }))
	line("Start hour", modeText(r.Temporal.Hour, "start hours", func(v int) string { return fmt.Sprintf("%02d:00", v) }))

	section("Most popular stations and trip")
	line("Start station", modeText(r.Stations.Start, "start stations", func(v string) string { return v }))
	line("End station", modeText(r.Stations.End, "end stations", func(v string) string { return v }))
	line("Trip", modeText(r.Stations.Trip, "complete trips", func(v stats.StationPair) string {
		return v.Start + " → " + v.End
	}))

	section("Trip duration")
	if r.Durations.Status.Available() {
		line("Total travel time", stats.FormatTotal(r.Durations.Total))
		line("Mean travel time", stats.FormatMean(r.Durations.Mean))
	} else {
		line("Travel time", statusText(r.Durations.Status, "durations"))
	}
	if r.Durations.Skipped > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s trips without a valid duration were left out", humanize.Comma(int64(r.Durations.Skipped)))) + "\n")
	}

	section("User info")
	writeDistribution(&b, "User types", r.Users.UserTypes, "user types")
	writeDistribution(&b, "Gender", r.Users.Gender, "gender")
	by := r.Users.BirthYears
	if by.Status.Available() {
		line("Earliest birth year", fmt.Sprintf("%d", by.Earliest))
		line("Latest birth year", fmt.Sprintf("%d", by.MostRecent))
		line("Common birth year", modeText(by.MostCommon, "birth years", func(v int) string { return fmt.Sprintf("%d", v) }))
	} else {
		line("Birth year", statusText(by.Status, "birth year"))
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%s of %s loaded trips matched.", humanize.Comma(int64(r.Rows)), humanize.Comma(int64(d.loaded.Len())))
	if n := len(d.loaded.Rejected()); n > 0 {
		summary += fmt.Sprintf(" %s rows were skipped for an unreadable start time.", humanize.Comma(int64(n)))
	}
	b.WriteString(dimStyle.Render(summary) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("This took %s.", formatElapsed(d.elapsed))))

	if width <= 0 {
		return b.String()
	}
	return wordwrap.String(b.String(), width)
}

func writeDistribution(b *strings.Builder, label string, d stats.Distribution, what string) {
	if !d.Status.Available() {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-20s", label)) + statusText(d.Status, what) + "\n")
		return
	}
	b.WriteString(labelStyle.Render("  "+label) + "\n")
	for _, c := range d.Counts {
		b.WriteString(fmt.Sprintf("    %-18s %s\n", c.Value, humanize.Comma(int64(c.Count))))
	}
}

func modeText[T comparable](md stats.Mode[T], what string, format func(T) string) string {
	if !md.Status.Available() {
		return statusText(md.Status, what)
	}
	return fmt.Sprintf("%s (%s trips)", format(md.Value), humanize.Comma(int64(md.Count)))
}

func statusText(s stats.Status, what string) string {
	switch s {
	case stats.NoData:
		return dimStyle.Render("no trips match this selection")
	case stats.NotCollected:
		return dimStyle.Render(what + " not collected for the selected cities")
	case stats.NoValues:
		return dimStyle.Render("no " + what + " recorded")
	default:
		return ""
	}
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.3f seconds", d.Seconds())
}

// pageLabel reads "trips 6-10 of 123".
func (d dataState) pageLabel() string {
	if len(d.page) == 0 {
		return fmt.Sprintf("%s trips", humanize.Comma(int64(d.table.Len())))
	}
	return fmt.Sprintf("trips %d-%d of %s", d.pageStart+1, d.pageStart+len(d.page), humanize.Comma(int64(d.table.Len())))
}

func fieldText[T any](f trips.Field[T], format func(T) string) string {
	switch f.State {
	case trips.Present:
		return format(f.Value)
	case trips.NotCollected:
		return "n/a"
	default:
		return ""
	}
}
