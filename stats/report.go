package stats

import "github.com/andareed/siftly-bikeshare/trips"

// Report bundles the four statistic groups for one filtered table.
type Report struct {
	Rows      int           `json:"rows"`
	Temporal  TemporalStats `json:"temporal"`
	Stations  StationStats  `json:"stations"`
	Durations DurationStats `json:"durations"`
	Users     UserStats     `json:"users"`
}

// Compute runs every aggregator over t.
func Compute(t *trips.Table) Report {
	return Report{
		Rows:      t.Len(),
		Temporal:  Temporal(t),
		Stations:  Stations(t),
		Durations: Durations(t),
		Users:     Users(t),
	}
}
