package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andareed/siftly-bikeshare/trips"
)

const allKeyword = "all"

var errEmptyField = errors.New("enter a comma separated list or all")

// selection is one validated request: which cities to load and which
// months and days to keep.
type selection struct {
	Cities []string
	Months trips.MonthSet
	Days   trips.DaySet
}

// selectionError names the drawer field that failed validation.
type selectionError struct {
	Field string
	Err   error
}

func (e *selectionError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *selectionError) Unwrap() error { return e.Err }

// parseSelection validates the three drawer inputs against the catalog and
// the recognised month and day names.
func parseSelection(catalog trips.Catalog, cities, months, days string) (selection, error) {
	var sel selection

	names, all, err := splitList(cities)
	if err != nil {
		return sel, &selectionError{Field: "cities", Err: err}
	}
	if all {
		sel.Cities = catalog.Cities()
	} else {
		for _, name := range names {
			if !catalog.Has(name) {
				return sel, &selectionError{Field: "cities", Err: &trips.UnknownCityError{City: name}}
			}
			sel.Cities = append(sel.Cities, trips.NormalizeCity(name))
		}
	}

	names, all, err = splitList(months)
	if err != nil {
		return sel, &selectionError{Field: "months", Err: err}
	}
	if all {
		sel.Months = trips.AllMonths()
	} else if sel.Months, err = trips.ParseMonths(names...); err != nil {
		return sel, &selectionError{Field: "months", Err: err}
	}

	names, all, err = splitList(days)
	if err != nil {
		return sel, &selectionError{Field: "days", Err: err}
	}
	if all {
		sel.Days = trips.AllDays()
	} else if sel.Days, err = trips.ParseDays(names...); err != nil {
		return sel, &selectionError{Field: "days", Err: err}
	}

	return sel, nil
}

// splitList splits "a, b ,c" and reports whether the list is just "all".
// "all" mixed with other names is rejected.
func splitList(raw string) ([]string, bool, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil, false, errEmptyField
	}
	for _, part := range out {
		if strings.EqualFold(part, allKeyword) {
			if len(out) > 1 {
				return nil, false, fmt.Errorf("%q cannot be combined with other values", allKeyword)
			}
			return nil, true, nil
		}
	}
	return out, false, nil
}

// label is the short form shown in the footer, e.g. "chicago · june · all days".
func (s selection) label() string {
	if len(s.Cities) == 0 {
		return "no selection"
	}
	cities := strings.Join(s.Cities, ",")
	months := "all months"
	if !s.Months.IsAll() {
		months = strings.Join(s.Months.Names(), ",")
	}
	days := "all days"
	if !s.Days.IsAll() {
		days = strings.Join(s.Days.Names(), ",")
	}
	return cities + " · " + months + " · " + days
}
