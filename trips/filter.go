package trips

import (
	"fmt"
	"strings"
	"time"
)

// The months a month filter can name, in calendar order (january = 1).
var monthNames = []string{"january", "february", "march", "april", "may", "june"}

// Day names indexed by time.Weekday (sunday = 0).
var dayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// MonthNames returns the recognized month names in order.
func MonthNames() []string { return append([]string(nil), monthNames...) }

// DayNames returns the recognized day names, sunday first.
func DayNames() []string { return append([]string(nil), dayNames...) }

// MonthName is the lower-case name of m as used by filters.
func MonthName(m time.Month) string {
	if m < 1 || int(m) > len(monthNames) {
		return strings.ToLower(m.String())
	}
	return monthNames[m-1]
}

// MonthSet selects months. The zero value selects nothing; AllMonths selects
// every row regardless of month.
type MonthSet struct {
	all    bool
	months map[time.Month]bool
}

func AllMonths() MonthSet { return MonthSet{all: true} }

// ParseMonths builds a set from names such as "January" or " march".
func ParseMonths(names ...string) (MonthSet, error) {
	set := MonthSet{months: make(map[time.Month]bool, len(names))}
	for _, name := range names {
		m, ok := monthIndex(name)
		if !ok {
			return MonthSet{}, fmt.Errorf("%w: %q", ErrUnknownMonth, name)
		}
		set.months[m] = true
	}
	return set, nil
}

func monthIndex(name string) (time.Month, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range monthNames {
		if candidate == n {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

func (s MonthSet) IsAll() bool { return s.all }

func (s MonthSet) Contains(m time.Month) bool {
	return s.all || s.months[m]
}

// Names lists the selected months in calendar order, or nil for AllMonths.
func (s MonthSet) Names() []string {
	if s.all {
		return nil
	}
	var out []string
	for i, name := range monthNames {
		if s.months[time.Month(i+1)] {
			out = append(out, name)
		}
	}
	return out
}

// DaySet selects days of the week. The zero value selects nothing.
type DaySet struct {
	all  bool
	days map[time.Weekday]bool
}

func AllDays() DaySet { return DaySet{all: true} }

// ParseDays builds a set from names such as "Monday" or "sunday".
func ParseDays(names ...string) (DaySet, error) {
	set := DaySet{days: make(map[time.Weekday]bool, len(names))}
	for _, name := range names {
		d, ok := dayIndex(name)
		if !ok {
			return DaySet{}, fmt.Errorf("%w: %q", ErrUnknownDay, name)
		}
		set.days[d] = true
	}
	return set, nil
}

func dayIndex(name string) (time.Weekday, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range dayNames {
		if candidate == n {
			return time.Weekday(i), true
		}
	}
	return 0, false
}

func (s DaySet) IsAll() bool { return s.all }

func (s DaySet) Contains(d time.Weekday) bool {
	return s.all || s.days[d]
}

// Names lists the selected days sunday first, or nil for AllDays.
func (s DaySet) Names() []string {
	if s.all {
		return nil
	}
	var out []string
	for i, name := range dayNames {
		if s.days[time.Weekday(i)] {
			out = append(out, name)
		}
	}
	return out
}

// Filter returns the rows of t whose month is in months and whose weekday is
// in days. Sets are OR-combined internally and AND-combined with each other.
// t is not modified; the result shares t's records.
func Filter(t *Table, months MonthSet, days DaySet) *Table {
	if t == nil {
		return NewTable(nil)
	}
	if months.all && days.all {
		return t.subset(append([]int(nil), t.indices...))
	}

	indices := make([]int, 0, len(t.indices))
	for _, idx := range t.indices {
		r := &t.records[idx]
		if months.Contains(r.Month) && days.Contains(r.Weekday) {
			indices = append(indices, idx)
		}
	}
	return t.subset(indices)
}
