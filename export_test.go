package main

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/andareed/siftly-bikeshare/trips"
)

func queryFixtures(t *testing.T, cities, months, days string) dataState {
	t.Helper()
	dir := writeFixtures(t)
	catalog := trips.DefaultCatalog()
	d := dataState{store: trips.NewStore(catalog, dir)}
	sel, err := parseSelection(catalog, cities, months, days)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.runQuery(sel); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestExportTableWritesFilteredRows(t *testing.T) {
	d := queryFixtures(t, "washington,chicago", "june", "monday")
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := ExportTable(d.table, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(exportHeader, rows[0]); diff != "" {
		t.Fatalf("header (-want +got):\n%s", diff)
	}
	// one washington monday, then chicago's three june mondays in source order
	if len(rows) != 1+1+3 {
		t.Fatalf("got %d data rows", len(rows)-1)
	}
	want := []string{
		"washington", "2017-06-05 07:00:00", "2017-06-05 07:12:00", "720",
		"14th & V St NW", "Lincoln Memorial", "Registered", "", "", "june", "monday", "7",
	}
	if diff := cmp.Diff(want, rows[1]); diff != "" {
		t.Fatalf("first row (-want +got):\n%s", diff)
	}
	if rows[2][8] != "1985" {
		t.Fatalf("birth year = %q", rows[2][8])
	}
}

func TestSaveReportJSON(t *testing.T) {
	stubClock(t, 250*time.Millisecond)
	d := queryFixtures(t, "washington", "june", "all")
	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveReport(d, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Version        int          `json:"version"`
		Selection      selectionDTO `json:"selection"`
		LoadedTrips    int          `json:"loadedTrips"`
		ElapsedSeconds float64      `json:"elapsedSeconds"`
		Report         struct {
			Rows  int `json:"rows"`
			Users struct {
				Gender struct {
					Status string `json:"status"`
				} `json:"gender"`
			} `json:"users"`
		} `json:"report"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := selectionDTO{Cities: []string{"washington"}, Months: []string{"june"}, Days: []string{"all"}}
	if diff := cmp.Diff(want, got.Selection); diff != "" {
		t.Fatalf("selection (-want +got):\n%s", diff)
	}
	if got.Version != reportVersion || got.LoadedTrips != 2 || got.Report.Rows != 2 {
		t.Fatalf("unexpected report header %+v", got)
	}
	if got.ElapsedSeconds != 0.25 {
		t.Fatalf("elapsed = %v", got.ElapsedSeconds)
	}
	if got.Report.Users.Gender.Status != "not collected" {
		t.Fatalf("gender status = %q", got.Report.Users.Gender.Status)
	}
}

func TestSaveReportNeedsQuery(t *testing.T) {
	if err := SaveReport(dataState{}, filepath.Join(t.TempDir(), "r.json")); err == nil {
		t.Fatal("expected error without a report")
	}
}

func TestDefaultFileName(t *testing.T) {
	sel, err := parseSelection(trips.DefaultCatalog(), "new york city,chicago", "june", "all")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := defaultFileName(sel, ".csv"), "bikeshare_new-york-city+chicago_june_all-days.csv"; got != want {
		t.Fatalf("name = %q, want %q", got, want)
	}
}
