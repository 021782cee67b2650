package trips

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCity        = errors.New("unknown city")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrInvalidCursor      = errors.New("invalid cursor")
	ErrMissingColumn      = errors.New("missing required column")
	ErrUnknownMonth       = errors.New("unknown month")
	ErrUnknownDay         = errors.New("unknown day")
)

// UnknownCityError is returned by Load when a requested city is not a catalog key.
type UnknownCityError struct {
	City string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("unknown city %q", e.City)
}

func (e *UnknownCityError) Is(target error) bool { return target == ErrUnknownCity }

// TimestampError describes a single row excluded because its start time did
// not parse. It never aborts a load.
type TimestampError struct {
	City string
	Row  int // 1-based data row within the source
	Raw  string
	Err  error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("%s row %d: malformed start time %q: %v", e.City, e.Row, e.Raw, e.Err)
}

func (e *TimestampError) Unwrap() error { return e.Err }

func (e *TimestampError) Is(target error) bool { return target == ErrMalformedTimestamp }
