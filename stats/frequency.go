package stats

import "sort"

// counter tallies values while remembering the order of first appearance,
// which is what breaks ties.
type counter[T comparable] struct {
	counts map[T]int
	order  []T
}

func newCounter[T comparable]() *counter[T] {
	return &counter[T]{counts: make(map[T]int)}
}

func (c *counter[T]) add(v T) {
	if _, seen := c.counts[v]; !seen {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter[T]) empty() bool { return len(c.order) == 0 }

// Mode is the most frequent value and how often it occurred.
type Mode[T comparable] struct {
	Value  T      `json:"value"`
	Count  int    `json:"count"`
	Status Status `json:"status"`
}

// mode picks the highest count; among equal counts the value seen first wins.
// An empty counter yields NoValues.
func (c *counter[T]) mode() Mode[T] {
	best := Mode[T]{Status: NoValues}
	for _, v := range c.order {
		if n := c.counts[v]; n > best.Count {
			best = Mode[T]{Value: v, Count: n, Status: OK}
		}
	}
	return best
}

// Count is one entry of a frequency distribution.
type Count[T comparable] struct {
	Value T   `json:"value"`
	Count int `json:"count"`
}

// distribution lists values by count descending, ties by first appearance.
func (c *counter[T]) distribution() []Count[T] {
	out := make([]Count[T], 0, len(c.order))
	for _, v := range c.order {
		out = append(out, Count[T]{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
