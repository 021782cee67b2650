package trips

import "time"

// FieldState says whether an optional column was collected by the source and,
// if so, whether the cell held a usable value.
type FieldState int

const (
	NotCollected FieldState = iota // column absent from the source
	Empty                          // column present, cell empty or invalid
	Present
)

func (s FieldState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Present:
		return "present"
	default:
		return "not collected"
	}
}

// Field is an optional value that remembers why it may be missing.
type Field[T any] struct {
	Value T
	State FieldState
}

func present[T any](v T) Field[T] {
	return Field[T]{Value: v, State: Present}
}

func emptyField[T any]() Field[T] {
	return Field[T]{State: Empty}
}

// Get returns the value and true only when the field is Present.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.State == Present
}

// Record is one normalized trip. Records are never modified after Load.
type Record struct {
	City         string
	StartTime    time.Time
	EndTime      Field[time.Time]
	Duration     Field[float64] // seconds
	StartStation string
	EndStation   string
	UserType     string
	Gender       Field[string]
	BirthYear    Field[int]

	Month     time.Month
	Weekday   time.Weekday
	StartHour int

	sourceRow int // 1-based data row within its source
}

// SourceRow is the 1-based data row number within the originating source.
func (r Record) SourceRow() int { return r.sourceRow }

// WeekdayName is the lower-case English day name used by day filters.
func (r Record) WeekdayName() string {
	return dayNames[r.Weekday]
}
