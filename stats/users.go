package stats

import "github.com/andareed/siftly-bikeshare/trips"

// Distribution is a value_counts style frequency table, most frequent first.
type Distribution struct {
	Status Status          `json:"status"`
	Counts []Count[string] `json:"counts,omitempty"`
}

// BirthYearStats holds the earliest, most recent and most common birth year.
type BirthYearStats struct {
	Status     Status    `json:"status"`
	Earliest   int       `json:"earliest,omitempty"`
	MostRecent int       `json:"mostRecent,omitempty"`
	MostCommon Mode[int] `json:"mostCommon"`
}

// UserStats holds rider demographics. The three parts are independent: a
// missing gender column says nothing about user types or birth years.
type UserStats struct {
	UserTypes  Distribution   `json:"userTypes"`
	Gender     Distribution   `json:"gender"`
	BirthYears BirthYearStats `json:"birthYears"`
}

// Users computes user type and gender counts and birth year statistics.
func Users(t *trips.Table) UserStats {
	if t.Len() == 0 {
		return UserStats{}
	}
	return UserStats{
		UserTypes:  userTypes(t),
		Gender:     genders(t),
		BirthYears: birthYears(t),
	}
}

func userTypes(t *trips.Table) Distribution {
	c := newCounter[string]()
	for i := 0; i < t.Len(); i++ {
		if ut := t.At(i).UserType; ut != "" {
			c.add(ut)
		}
	}
	if c.empty() {
		return Distribution{Status: NoValues}
	}
	return Distribution{Status: OK, Counts: c.distribution()}
}

func genders(t *trips.Table) Distribution {
	c := newCounter[string]()
	collected := false
	for i := 0; i < t.Len(); i++ {
		g := t.At(i).Gender
		if g.State == trips.NotCollected {
			continue
		}
		collected = true
		if v, ok := g.Get(); ok {
			c.add(v)
		}
	}
	switch {
	case !collected:
		return Distribution{Status: NotCollected}
	case c.empty():
		return Distribution{Status: NoValues}
	}
	return Distribution{Status: OK, Counts: c.distribution()}
}

func birthYears(t *trips.Table) BirthYearStats {
	c := newCounter[int]()
	collected := false
	out := BirthYearStats{}
	for i := 0; i < t.Len(); i++ {
		by := t.At(i).BirthYear
		if by.State == trips.NotCollected {
			continue
		}
		collected = true
		y, ok := by.Get()
		if !ok {
			continue
		}
		if c.empty() || y < out.Earliest {
			out.Earliest = y
		}
		if c.empty() || y > out.MostRecent {
			out.MostRecent = y
		}
		c.add(y)
	}
	switch {
	case !collected:
		return BirthYearStats{Status: NotCollected, MostCommon: Mode[int]{Status: NotCollected}}
	case c.empty():
		return BirthYearStats{Status: NoValues, MostCommon: Mode[int]{Status: NoValues}}
	}
	out.Status = OK
	out.MostCommon = c.mode()
	return out
}
