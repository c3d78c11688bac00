// Package memory implements the repository ports against process-local
// maps. This is the service's storage backend: rows live only for the
// lifetime of the process and are owned exclusively by these collections.
package memory

import (
	"sync"

	"github.com/prootly/admin-api/internal/api/metrics"
)

// collection is a mutex-guarded keyed set of rows. Rows are stored by
// value, so callers always work on copies and never alias store memory.
type collection[T any] struct {
	mu     sync.RWMutex
	rows   map[string]T
	entity string
}

func newCollection[T any](entity string) *collection[T] {
	return &collection[T]{rows: make(map[string]T), entity: entity}
}

// snapshot returns a copy of every row. Order is unspecified.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.rows))
	for _, row := range c.rows {
		out = append(out, row)
	}
	return out
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	row, ok := c.rows[id]
	return row, ok
}

func (c *collection[T]) put(id string, row T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rows[id] = row
	metrics.StoreRows.WithLabelValues(c.entity).Set(float64(len(c.rows)))
}

// delete removes the row and reports whether one was actually present.
func (c *collection[T]) delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.rows[id]
	if ok {
		delete(c.rows, id)
		metrics.StoreRows.WithLabelValues(c.entity).Set(float64(len(c.rows)))
	}
	return ok
}
