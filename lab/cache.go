// SPDX-License-Identifier: MIT

package lab

// cacheKey holds both colours' components; arrays of floats are comparable.
type cacheKey [6]float64

// Cache memoizes a Metric keyed by the six Lab components. Each computed
// distance is stored under both argument orders.
//
// The classification passes compare many squares against a handful of
// reference colours, so hit rates are high. A Cache belongs to one resolution
// session; it is not safe for concurrent use.
type Cache struct {
	metric Metric
	memo   map[cacheKey]float64
	hits   int
	misses int
}

// NewCache returns an empty cache over metric. Panics on nil metric.
func NewCache(metric Metric) *Cache {
	if metric == nil {
		panic("lab: NewCache(nil)")
	}

	return &Cache{metric: metric, memo: make(map[cacheKey]float64)}
}

// Distance returns metric(a, b), computing it at most once per unordered pair.
func (c *Cache) Distance(a, b Lab) float64 {
	k := cacheKey{a.L, a.A, a.B, b.L, b.A, b.B}
	if d, ok := c.memo[k]; ok {
		c.hits++
		return d
	}

	c.misses++
	d := c.metric(a, b)
	c.memo[k] = d
	c.memo[cacheKey{b.L, b.A, b.B, a.L, a.A, a.B}] = d

	return d
}

// Len returns the number of stored keys (two per computed pair, one for a==b).
func (c *Cache) Len() int { return len(c.memo) }

// Stats returns hit and miss counters.
func (c *Cache) Stats() (hits, misses int) { return c.hits, c.misses }
