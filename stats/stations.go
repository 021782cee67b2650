package stats

import "github.com/andareed/siftly-bikeshare/trips"

// StationPair is a start/end combination. It is compared field by field, so
// names containing separators can never collide.
type StationPair struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	Start Mode[string]      `json:"start"`
	End   Mode[string]      `json:"end"`
	Trip  Mode[StationPair] `json:"trip"`
}

// Stations finds the most common start station, end station and start/end
// pair. Blank station names are ignored; a pair needs both ends.
func Stations(t *trips.Table) StationStats {
	if t.Len() == 0 {
		return StationStats{}
	}
	starts := newCounter[string]()
	ends := newCounter[string]()
	pairs := newCounter[StationPair]()
	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		if r.StartStation != "" {
			starts.add(r.StartStation)
		}
		if r.EndStation != "" {
			ends.add(r.EndStation)
		}
		if r.StartStation != "" && r.EndStation != "" {
			pairs.add(StationPair{Start: r.StartStation, End: r.EndStation})
		}
	}
	return StationStats{
		Start: starts.mode(),
		End:   ends.mode(),
		Trip:  pairs.mode(),
	}
}
