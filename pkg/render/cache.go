package render

import "github.com/matzehuels/inkwell/pkg/geom"

// FlourishKey identifies the inputs flourish geometry depends on.
type FlourishKey struct {
	Text     string
	Width    int
	Height   int
	FontSize int
	Font     string
}

// CacheStats counts flourish cache lookups.
type CacheStats struct {
	Hits   int
	Misses int
}

// Cache holds the flourish paths of the most recent elegant render.
// The zero value is an empty cache. It is not safe for concurrent use.
type Cache struct {
	key   FlourishKey
	paths geom.Flourishes
	ok    bool
	stats CacheStats
}

// Flourishes returns the paths stored for key, calling gen and storing its
// result when the cache is empty or holds a different key.
func (c *Cache) Flourishes(key FlourishKey, gen func() geom.Flourishes) geom.Flourishes {
	if c.ok && c.key == key {
		c.stats.Hits++
		return c.paths
	}
	c.stats.Misses++
	c.key, c.paths, c.ok = key, gen(), true
	return c.paths
}

// Cached returns the stored paths, if any.
func (c *Cache) Cached() (geom.Flourishes, bool) {
	if !c.ok {
		return geom.Flourishes{}, false
	}
	return c.paths, true
}

// Key returns the key of the stored paths.
func (c *Cache) Key() (FlourishKey, bool) {
	return c.key, c.ok
}

// Invalidate drops the stored paths.
func (c *Cache) Invalidate() {
	c.key, c.paths, c.ok = FlourishKey{}, geom.Flourishes{}, false
}

// Stats returns lookup counters since the cache was created.
func (c *Cache) Stats() CacheStats {
	return c.stats
}
