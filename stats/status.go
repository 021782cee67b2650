// Package stats computes descriptive statistics over a trips.Table. Every
// function is a pure read of the table and never fails: missing data is
// reported through Status.
package stats

// Status explains whether a statistic could be computed.
type Status int

const (
	NoData       Status = iota // the table has no rows
	OK                         // computed
	NotCollected               // no contributing row ever had the column
	NoValues                   // the column was collected but every value is empty or invalid
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case NoData:
		return "no data"
	case NotCollected:
		return "not collected"
	case NoValues:
		return "no values"
	default:
		return "unknown"
	}
}

// Available reports whether the statistic carries a value.
func (s Status) Available() bool { return s == OK }

// MarshalText lets reports encode the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
