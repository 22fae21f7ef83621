package query

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Source tells whether a query targets a database or the in-memory tables.
type Source string

const (
	SourceDatabase Source = "database"
	SourceTable    Source = "table"
)

type (
	// LookupObserver is notified on every cache lookup.
	LookupObserver func(source Source, hit bool)

	// Cache keeps the first column of query results per resolved query
	// string. Database and table results are kept apart. Concurrent lookups
	// of the same query execute it once.
	Cache struct {
		mu       sync.RWMutex
		entries  map[Source]map[string][]any
		group    singleflight.Group
		observer LookupObserver
	}

	CacheOption func(*Cache)
)

// WithLookupObserver registers a function called on every lookup.
func WithLookupObserver(o LookupObserver) CacheOption {
	return func(c *Cache) {
		c.observer = o
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: map[Source]map[string][]any{
			SourceDatabase: {},
			SourceTable:    {},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FirstColumn returns the first column of the rows the query produces,
// executing it against q only when it is not cached yet.
func (c *Cache) FirstColumn(ctx context.Context, source Source, q Queryable, query string) ([]any, error) {
	if values, ok := c.get(source, query); ok {
		c.notify(source, true)
		return values, nil
	}
	c.notify(source, false)

	v, err, _ := c.group.Do(string(source)+"\x00"+query, func() (any, error) {
		if values, ok := c.get(source, query); ok {
			return values, nil
		}
		rows, err := q.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("could not execute query %q: %w", query, err)
		}
		values := FirstColumn(rows)
		c.mu.Lock()
		c.entries[source][query] = values
		c.mu.Unlock()
		return values, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]any), nil
}

// Len returns the number of cached queries of a source.
func (c *Cache) Len(source Source) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries[source])
}

func (c *Cache) get(source Source, query string) ([]any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	values, ok := c.entries[source][query]
	return values, ok
}

func (c *Cache) notify(source Source, hit bool) {
	if c.observer != nil {
		c.observer(source, hit)
	}
}

// FirstColumn extracts the first cell of every non-empty row.
func FirstColumn(rows [][]any) []any {
	values := make([]any, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			values = append(values, row[0])
		}
	}
	return values
}
