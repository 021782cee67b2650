package trips

import (
	"fmt"
	"strings"
)

// Canonical city names. These are the only keys a Catalog ever has.
const (
	Chicago     = "chicago"
	NewYorkCity = "new york city"
	Washington  = "washington"
)

var cityOrder = []string{Chicago, NewYorkCity, Washington}

var defaultSources = map[string]string{
	Chicago:     "chicago.csv",
	NewYorkCity: "new_york_city.csv",
	Washington:  "washington.csv",
}

// Catalog maps a city name to its source identifier. It is fixed at
// construction and read-only afterwards.
type Catalog struct {
	sources map[string]string
}

// DefaultCatalog returns the catalog of the three bundled CSV files.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog(nil)
	return c
}

// NewCatalog builds a catalog from the defaults with the given identifiers
// replaced. Overrides may only name the three known cities.
func NewCatalog(overrides map[string]string) (Catalog, error) {
	sources := make(map[string]string, len(defaultSources))
	for city, id := range defaultSources {
		sources[city] = id
	}
	for city, id := range overrides {
		key := NormalizeCity(city)
		if _, ok := sources[key]; !ok {
			return Catalog{}, &UnknownCityError{City: city}
		}
		id = strings.TrimSpace(id)
		if id == "" {
			return Catalog{}, fmt.Errorf("empty source for city %q", key)
		}
		sources[key] = id
	}
	return Catalog{sources: sources}, nil
}

// NormalizeCity folds case and surrounding space so "New York City " matches.
func NormalizeCity(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Lookup resolves a city name to its source identifier.
func (c Catalog) Lookup(city string) (string, error) {
	id, ok := c.sources[NormalizeCity(city)]
	if !ok {
		return "", &UnknownCityError{City: city}
	}
	return id, nil
}

// Cities returns the catalog keys in their canonical order.
func (c Catalog) Cities() []string {
	return append([]string(nil), cityOrder...)
}

// Has reports whether city is a catalog key.
func (c Catalog) Has(city string) bool {
	_, ok := c.sources[NormalizeCity(city)]
	return ok
}
