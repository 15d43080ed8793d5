package inventory

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Cache memoizes the current inventory snapshot. It rebuilds when the
// discovered source set or file fingerprints change and on explicit
// invalidation. A new snapshot is swapped in whole; readers that already
// captured the previous one keep using it.
type Cache struct {
	builder *Builder

	dir           string
	masterPattern string
	vacantPattern string

	mu      sync.RWMutex
	current *Snapshot
	version uint64
}

// NewCache creates a cache over the given data directory and patterns.
func NewCache(builder *Builder, dir, masterPattern, vacantPattern string) *Cache {
	return &Cache{
		builder:       builder,
		dir:           dir,
		masterPattern: masterPattern,
		vacantPattern: vacantPattern,
	}
}

// Snapshot returns the current snapshot, rebuilding it first if the
// source files changed since the last build.
func (c *Cache) Snapshot() *Snapshot {
	sources := Discover(c.dir, c.masterPattern, c.vacantPattern)
	identity := sourceIdentity(sources)

	c.mu.RLock()
	current := c.current
	c.mu.RUnlock()

	if current != nil && current.identity == identity {
		return current
	}

	return c.rebuild()
}

// Invalidate discards the memoized snapshot and builds a fresh one.
// Called from the administrative path after a status write.
func (c *Cache) Invalidate() *Snapshot {
	return c.rebuild()
}

// Version reports the monotonic snapshot version, 0 before the first build.
func (c *Cache) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Cache) rebuild() *Snapshot {
	sources := Discover(c.dir, c.masterPattern, c.vacantPattern)
	snapshot := c.builder.Build(sources)

	c.mu.Lock()
	c.version++
	snapshot.Version = c.version
	c.current = snapshot
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"version": snapshot.Version,
		"units":   len(snapshot.Units),
		"sources": len(sources),
	}).Info("inventory snapshot rebuilt")

	return snapshot
}
