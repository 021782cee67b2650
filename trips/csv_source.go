package trips

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSource reads a whole trip CSV file. The first row is the header.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Name() string { return s.path }

func (s *CSVSource) Read() (RawTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return RawTable{}, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return RawTable{}, fmt.Errorf("error reading CSV %q: %w", s.path, err)
	}
	if len(records) == 0 {
		return RawTable{}, fmt.Errorf("CSV %q has no header", s.path)
	}
	return RawTable{Header: records[0], Rows: records[1:]}, nil
}
