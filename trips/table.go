package trips

// Table is a read-only view over a shared, immutable record slice. Filtering
// produces a new index list into the same records; nothing is copied.
type Table struct {
	records  []Record
	indices  []int
	counts   map[string]int
	rejected []*TimestampError
}

func newTable(records []Record, counts map[string]int, rejected []*TimestampError) *Table {
	indices := make([]int, len(records))
	for i := range records {
		indices[i] = i
	}
	return &Table{records: records, indices: indices, counts: counts, rejected: rejected}
}

// NewTable wraps already-normalized records, mainly for callers that build
// tables by hand.
func NewTable(records []Record) *Table {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.City]++
	}
	return newTable(records, counts, nil)
}

func (t *Table) subset(indices []int) *Table {
	return &Table{records: t.records, indices: indices, counts: t.counts, rejected: t.rejected}
}

// Len is the number of rows visible through this view.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.indices)
}

// At returns the i-th visible record.
func (t *Table) At(i int) Record {
	return t.records[t.indices[i]]
}

// Records copies the visible records in table order.
func (t *Table) Records() []Record {
	out := make([]Record, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		out = append(out, t.At(i))
	}
	return out
}

// LoadedCount returns how many rows Load accepted from a city's source. It
// does not change under filtering.
func (t *Table) LoadedCount(city string) int {
	if t == nil {
		return 0
	}
	return t.counts[NormalizeCity(city)]
}

// Rejected lists rows excluded at load because their start time did not parse.
func (t *Table) Rejected() []*TimestampError {
	if t == nil {
		return nil
	}
	return t.rejected
}
