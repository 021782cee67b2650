package stats

import (
	"time"

	"github.com/andareed/siftly-bikeshare/trips"
)

// TemporalStats holds the most frequent times of travel.
type TemporalStats struct {
	Month   Mode[time.Month]   `json:"month"`
	Weekday Mode[time.Weekday] `json:"weekday"`
	Hour    Mode[int]          `json:"hour"`
}

// Temporal finds the most common start month, day of week and hour.
func Temporal(t *trips.Table) TemporalStats {
	if t.Len() == 0 {
		return TemporalStats{}
	}
	months := newCounter[time.Month]()
	days := newCounter[time.Weekday]()
	hours := newCounter[int]()
	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		months.add(r.Month)
		days.add(r.Weekday)
		hours.add(r.StartHour)
	}
	return TemporalStats{
		Month:   months.mode(),
		Weekday: days.mode(),
		Hour:    hours.mode(),
	}
}
