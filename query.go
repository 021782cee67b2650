package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/stats"
	"github.com/andareed/siftly-bikeshare/trips"
)

// now is replaced in tests for stable elapsed times.
var now = time.Now

// runQuery loads the selected cities, narrows by month and day and computes
// the report. The pager cursor starts over for every query.
func (d *dataState) runQuery(sel selection) error {
	start := now()

	loaded, err := d.store.Load(sel.Cities)
	if err != nil {
		return fmt.Errorf("load %v: %w", sel.Cities, err)
	}
	table := trips.Filter(loaded, sel.Months, sel.Days)
	report := stats.Compute(table)

	d.selection = sel
	d.loaded = loaded
	d.table = table
	d.report = report
	d.hasReport = true
	d.elapsed = now().Sub(start)
	d.resetPager()

	logging.Infof("Query: %s matched %d of %d rows in %s", sel.label(), table.Len(), loaded.Len(), d.elapsed)
	return nil
}

func (d *dataState) resetPager() {
	d.pageCursor = 0
	d.page = nil
	d.pageStart = 0
}

// nextPage advances the session cursor. It returns false once the table is
// exhausted; the cursor keeps moving regardless.
func (d *dataState) nextPage() (bool, error) {
	start := d.pageCursor
	rows, next, err := trips.Page(d.table, start)
	if err != nil {
		if errors.Is(err, trips.ErrInvalidCursor) {
			logging.Errorf("Pager: %v", err)
		}
		return false, err
	}
	d.pageCursor = next
	if len(rows) == 0 {
		return false, nil
	}
	d.page = rows
	d.pageStart = start
	return true, nil
}
