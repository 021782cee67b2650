package trips

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-bikeshare/logging"
)

// Accepted start/end time layouts, tried in order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

type column int

const (
	colStartTime column = iota
	colEndTime
	colDuration
	colStartStation
	colEndStation
	colUserType
	colGender
	colBirthYear
	numColumns
)

var columnKeys = map[string]column{
	"start_time":            colStartTime,
	"end_time":              colEndTime,
	"trip_duration":         colDuration,
	"trip_duration_seconds": colDuration,
	"start_station":         colStartStation,
	"end_station":           colEndStation,
	"user_type":             colUserType,
	"gender":                colGender,
	"birth_year":            colBirthYear,
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithSQLiteTable sets the table read from SQLite sources.
func WithSQLiteTable(name string) StoreOption {
	return func(s *Store) { s.sqliteTable = name }
}

// WithSourceOpener replaces how a source identifier becomes a Source.
func WithSourceOpener(open func(id string) Source) StoreOption {
	return func(s *Store) { s.open = open }
}

// Store loads and normalizes the catalog's sources. It keeps no state between
// loads: every Load reads its sources again.
type Store struct {
	catalog     Catalog
	dataDir     string
	sqliteTable string
	open        func(id string) Source
}

func NewStore(catalog Catalog, dataDir string, opts ...StoreOption) *Store {
	s := &Store{catalog: catalog, dataDir: dataDir, sqliteTable: DefaultSQLiteTable}
	for _, opt := range opts {
		opt(s)
	}
	if s.open == nil {
		s.open = func(id string) Source { return OpenSource(s.dataDir, id, s.sqliteTable) }
	}
	return s
}

func (s *Store) Catalog() Catalog { return s.catalog }

// Load reads every requested city's source and unions the rows in request
// order. All cities are resolved before any source is read, so an unknown
// city fails the request without side effects. Rows with an unparseable start
// time are left out and listed in Table.Rejected.
func (s *Store) Load(cities []string) (*Table, error) {
	keys, err := s.resolve(cities)
	if err != nil {
		return nil, err
	}

	var records []Record
	var rejected []*TimestampError
	counts := make(map[string]int, len(keys))

	for _, city := range keys {
		id, _ := s.catalog.Lookup(city)
		src := s.open(id)
		raw, err := src.Read()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", city, err)
		}
		recs, rej, err := normalize(city, raw)
		if err != nil {
			return nil, fmt.Errorf("load %s (%s): %w", city, src.Name(), err)
		}
		for _, r := range rej {
			logging.Warnf("Load: %v", r)
		}
		logging.Infof("Load: %s read %d rows from %s (%d rejected)", city, len(recs), src.Name(), len(rej))
		counts[city] = len(recs)
		records = append(records, recs...)
		rejected = append(rejected, rej...)
	}

	return newTable(records, counts, rejected), nil
}

func (s *Store) resolve(cities []string) ([]string, error) {
	if len(cities) == 0 {
		return nil, errors.New("no cities requested")
	}
	seen := make(map[string]bool, len(cities))
	keys := make([]string, 0, len(cities))
	for _, c := range cities {
		if !s.catalog.Has(c) {
			return nil, &UnknownCityError{City: c}
		}
		key := NormalizeCity(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys, nil
}

// headerKey converts " Start Time" → "start_time".
func headerKey(name string) string {
	n := strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
	n = strings.ToLower(strings.TrimSpace(n))
	n = strings.ReplaceAll(n, " ", "_")
	return strings.ReplaceAll(n, "-", "_")
}

func mapColumns(header []string) [numColumns]int {
	var idx [numColumns]int
	for i := range idx {
		idx[i] = -1
	}
	for i, name := range header {
		if c, ok := columnKeys[headerKey(name)]; ok && idx[c] < 0 {
			idx[c] = i
		}
	}
	return idx
}

func normalize(city string, raw RawTable) ([]Record, []*TimestampError, error) {
	cols := mapColumns(raw.Header)
	if cols[colStartTime] < 0 {
		return nil, nil, fmt.Errorf("%w: start_time", ErrMissingColumn)
	}

	records := make([]Record, 0, len(raw.Rows))
	var rejected []*TimestampError
	for i, row := range raw.Rows {
		rec, terr := normalizeRow(city, i+1, cols, row)
		if terr != nil {
			rejected = append(rejected, terr)
			continue
		}
		records = append(records, rec)
	}
	return records, rejected, nil
}

func normalizeRow(city string, n int, cols [numColumns]int, row []string) (Record, *TimestampError) {
	// cell reports false when the source never had the column.
	cell := func(c column) (string, bool) {
		idx := cols[c]
		if idx < 0 {
			return "", false
		}
		if idx >= len(row) {
			return "", true
		}
		return strings.TrimSpace(row[idx]), true
	}

	rawStart, _ := cell(colStartTime)
	start, err := parseTimestamp(rawStart)
	if err != nil {
		return Record{}, &TimestampError{City: city, Row: n, Raw: rawStart, Err: err}
	}

	rec := Record{
		City:      city,
		StartTime: start,
		Month:     start.Month(),
		Weekday:   start.Weekday(),
		StartHour: start.Hour(),
		sourceRow: n,
	}
	rec.StartStation, _ = cell(colStartStation)
	rec.EndStation, _ = cell(colEndStation)
	rec.UserType, _ = cell(colUserType)

	if v, ok := cell(colEndTime); ok {
		rec.EndTime = emptyField[time.Time]()
		if end, err := parseTimestamp(v); err == nil {
			rec.EndTime = present(end)
		}
	}

	rec.Duration = emptyField[float64]()
	if v, ok := cell(colDuration); ok && v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil && validDuration(d) {
			rec.Duration = present(d)
		}
	} else if end, ok := rec.EndTime.Get(); ok {
		if d := end.Sub(start).Seconds(); validDuration(d) {
			rec.Duration = present(d)
		}
	}

	if v, ok := cell(colGender); ok {
		rec.Gender = emptyField[string]()
		if v != "" {
			rec.Gender = present(v)
		}
	}

	if v, ok := cell(colBirthYear); ok {
		rec.BirthYear = emptyField[int]()
		if y, ok := parseYear(v); ok {
			rec.BirthYear = present(y)
		}
	}

	return rec, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty value")
	}
	var lastErr error
	for _, layout := range timeLayouts {
		ts, err := time.Parse(layout, raw)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func validDuration(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

// parseYear accepts "1992" and the float form "1992.0".
func parseYear(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
