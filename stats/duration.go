package stats

import (
	"fmt"
	"math"

	"github.com/andareed/siftly-bikeshare/trips"
)

// DurationStats holds total and mean trip duration in seconds. Rows whose
// duration is missing or invalid are counted in Skipped and left out of both.
type DurationStats struct {
	Status  Status  `json:"status"`
	Total   float64 `json:"totalSeconds"`
	Mean    float64 `json:"meanSeconds"`
	Trips   int     `json:"trips"`
	Skipped int     `json:"skipped"`
}

// Durations sums and averages trip durations.
func Durations(t *trips.Table) DurationStats {
	if t.Len() == 0 {
		return DurationStats{Status: NoData}
	}
	var out DurationStats
	for i := 0; i < t.Len(); i++ {
		d, ok := t.At(i).Duration.Get()
		if !ok {
			out.Skipped++
			continue
		}
		out.Total += d
		out.Trips++
	}
	if out.Trips == 0 {
		out.Status = NoValues
		return out
	}
	out.Status = OK
	out.Mean = out.Total / float64(out.Trips)
	return out
}

// Breakdown is a duration split by truncating integer division.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// SplitTotal breaks seconds into days, hours, minutes and seconds.
func SplitTotal(seconds float64) Breakdown {
	rem := math.Mod(seconds, 86400)
	return Breakdown{
		Days:    int64(math.Floor(seconds / 86400)),
		Hours:   int64(math.Floor(rem / 3600)),
		Minutes: int64(math.Floor(math.Mod(rem, 3600) / 60)),
		Seconds: int64(math.Mod(math.Mod(rem, 3600), 60)),
	}
}

// FormatTotal renders seconds as "1d 2h 3m 4s".
func FormatTotal(seconds float64) string {
	b := SplitTotal(seconds)
	return fmt.Sprintf("%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// FormatMean renders seconds as "3m 4s"; minutes are not folded into hours.
func FormatMean(seconds float64) string {
	return fmt.Sprintf("%dm %ds", int64(math.Floor(seconds/60)), int64(math.Mod(seconds, 60)))
}
