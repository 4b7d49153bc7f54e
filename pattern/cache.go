package pattern

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key partitions the cache. Profile is the settings registry key, Locale the
// locale name, and Variant names the table flavor (empty for the raw table,
// otherwise the normalization form), so a raw and a normalized dictionary for
// the same locale never share patterns.
type Key struct {
	Profile string
	Locale  string
	Variant string
}

func (k Key) String() string {
	if k.Variant == "" {
		return k.Profile + "/" + k.Locale
	}
	return k.Profile + "/" + k.Locale + "/" + k.Variant
}

// flightKey is unambiguous even when fields contain '/'.
func (k Key) flightKey() string {
	return k.Profile + "\x00" + k.Locale + "\x00" + k.Variant
}

// Cache stores Compiled patterns for the lifetime of the process. Entries are
// never evicted. Concurrent first requests for a key share a single build;
// once stored, an entry is read without locking.
type Cache struct {
	entries sync.Map // Key -> *Compiled
	group   singleflight.Group
	logger  *slog.Logger
	metrics *Metrics
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records hits, builds and build latency.
func WithMetrics(m *Metrics) CacheOption {
	return func(c *Cache) {
		c.metrics = m
	}
}

// NewCache returns an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var shared = NewCache()

// Shared returns the process-wide cache used when a dictionary is not given
// its own.
func Shared() *Cache {
	return shared
}

// Get returns the patterns for key, compiling them from source() on a miss.
// source is called at most once per successful build. A failed build is not
// cached; the next Get retries.
func (c *Cache) Get(key Key, source func() Source) (*Compiled, error) {
	if compiled, ok := c.Peek(key); ok {
		c.metrics.hit()
		return compiled, nil
	}

	v, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
		// A flight that finished between Peek and Do has already stored it.
		if compiled, ok := c.Peek(key); ok {
			return compiled, nil
		}

		src := source()
		start := time.Now()
		compiled, err := Compile(src)
		elapsed := time.Since(start)
		c.metrics.build(elapsed, err)
		if err != nil {
			c.logger.Warn("pattern compilation failed", "key", key.String(), "error", err)
			return nil, fmt.Errorf("compiling patterns for %s: %w", key, err)
		}

		c.entries.Store(key, compiled)
		c.logger.Debug("compiled patterns",
			"key", key.String(),
			"words", len(compiled.words),
			"relative", len(compiled.relative),
			"duration", elapsed,
		)
		return compiled, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Compiled), nil
}

// Peek returns the resident entry for key without building it.
func (c *Cache) Peek(key Key) (*Compiled, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*Compiled), true
}

// Len returns the number of resident entries.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
