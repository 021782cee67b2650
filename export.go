package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-bikeshare/stats"
	"github.com/andareed/siftly-bikeshare/trips"
)

// --- Wire format ---

const reportVersion = 1

type selectionDTO struct {
	Cities []string `json:"cities"`
	Months []string `json:"months"`
	Days   []string `json:"days"`
}

type reportDTO struct {
	Version        int          `json:"version"`
	Selection      selectionDTO `json:"selection"`
	LoadedTrips    int          `json:"loadedTrips"`
	RejectedRows   int          `json:"rejectedRows"`
	ElapsedSeconds float64      `json:"elapsedSeconds"`
	Report         stats.Report `json:"report"`
}

var exportHeader = []string{
	"City", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station",
	"User Type", "Gender", "Birth Year", "Month", "Day of Week", "Hour",
}

func toSelectionDTO(sel selection) selectionDTO {
	dto := selectionDTO{
		Cities: append([]string(nil), sel.Cities...),
		Months: []string{allKeyword},
		Days:   []string{allKeyword},
	}
	if !sel.Months.IsAll() {
		dto.Months = orEmpty(sel.Months.Names())
	}
	if !sel.Days.IsAll() {
		dto.Days = orEmpty(sel.Days.Names())
	}
	return dto
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func exportRow(r trips.Record) []string {
	return []string{
		r.City,
		r.StartTime.Format(tripTimeLayout),
		fieldCSV(r.EndTime, func(t time.Time) string { return t.Format(tripTimeLayout) }),
		fieldCSV(r.Duration, func(d float64) string { return strconv.FormatFloat(d, 'f', -1, 64) }),
		r.StartStation,
		r.EndStation,
		r.UserType,
		fieldCSV(r.Gender, func(s string) string { return s }),
		fieldCSV(r.BirthYear, strconv.Itoa),
		trips.MonthName(r.Month),
		r.WeekdayName(),
		strconv.Itoa(r.StartHour),
	}
}

// fieldCSV writes absent and uncollected values as empty cells.
func fieldCSV[T any](f trips.Field[T], format func(T) string) string {
	if v, ok := f.Get(); ok {
		return format(v)
	}
	return ""
}

// --- Public API ---

// ExportTable writes every row of t, in table order, to a CSV file.
func ExportTable(t *trips.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < t.Len(); i++ {
		if err := w.Write(exportRow(t.At(i))); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// SaveReport writes the statistics of the last query as JSON.
func SaveReport(d dataState, path string) error {
	if !d.hasReport {
		return fmt.Errorf("no report to save yet")
	}
	dto := reportDTO{
		Version:        reportVersion,
		Selection:      toSelectionDTO(d.selection),
		LoadedTrips:    d.loaded.Len(),
		RejectedRows:   len(d.loaded.Rejected()),
		ElapsedSeconds: d.elapsed.Seconds(),
		Report:         d.report,
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// defaultFileName builds e.g. "bikeshare_chicago_june_all-days.csv".
func defaultFileName(sel selection, ext string) string {
	parts := []string{"bikeshare"}
	if len(sel.Cities) > 0 {
		parts = append(parts, strings.Join(sel.Cities, "+"))
	}
	if sel.Months.IsAll() {
		parts = append(parts, "all-months")
	} else {
		parts = append(parts, strings.Join(sel.Months.Names(), "+"))
	}
	if sel.Days.IsAll() {
		parts = append(parts, "all-days")
	} else {
		parts = append(parts, strings.Join(sel.Days.Names(), "+"))
	}
	name := strings.ReplaceAll(strings.Join(parts, "_"), " ", "-")
	return name + ext
}
