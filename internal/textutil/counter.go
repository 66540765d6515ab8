package textutil

import "slices"

// Count is one Counter entry.
type Count struct {
	Key string
	N   int
}

// Counter tallies string keys and remembers the order in which keys were
// first added. The zero value is ready to use.
type Counter struct {
	index map[string]int
	items []Count
}

// NewCounter returns a Counter pre-filled with keys.
func NewCounter(keys ...string) *Counter {
	c := &Counter{}
	c.AddAll(keys)
	return c
}

// Add increments key by one.
func (c *Counter) Add(key string) {
	c.AddN(key, 1)
}

// AddN increments key by n.
func (c *Counter) AddN(key string, n int) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.items[i].N += n
		return
	}
	c.index[key] = len(c.items)
	c.items = append(c.items, Count{Key: key, N: n})
}

// AddAll increments every key in keys.
func (c *Counter) AddAll(keys []string) {
	for _, k := range keys {
		c.Add(k)
	}
}

// Merge adds the counts of other, in other's order.
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	for _, it := range other.items {
		c.AddN(it.Key, it.N)
	}
}

// Get returns the count for key.
func (c *Counter) Get(key string) int {
	if c == nil {
		return 0
	}
	if i, ok := c.index[key]; ok {
		return c.items[i].N
	}
	return 0
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, it := range c.items {
		total += it.N
	}
	return total
}

// Items returns the entries in first-seen order.
func (c *Counter) Items() []Count {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// MostCommon returns the n entries with the highest counts. Equal counts
// keep first-seen order. n <= 0 returns every entry.
func (c *Counter) MostCommon(n int) []Count {
	out := c.Items()
	slices.SortStableFunc(out, func(a, b Count) int {
		return b.N - a.N
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
