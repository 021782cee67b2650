package main

import (
	"time"

	"github.com/andareed/siftly-bikeshare/stats"
	"github.com/andareed/siftly-bikeshare/trips"
)

type dataState struct {
	store     *trips.Store
	selection selection
	loaded    *trips.Table // every row of the selected cities
	table     *trips.Table // loaded, narrowed by month and day
	report    stats.Report
	hasReport bool
	elapsed   time.Duration

	// raw pager session, reset by every query
	pageCursor int
	page       []trips.Record
	pageStart  int
}
