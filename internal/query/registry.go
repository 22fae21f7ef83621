package query

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
)

// Registry holds the connections a specification declares: one per
// database and a single one for every in-memory table.
type Registry struct {
	databases map[string]Queryable
	tables    Queryable
	closers   []func() error
}

// NewRegistry creates a registry from already open connections. It is the
// entry point for tests; OpenRegistry is used for real specifications.
func NewRegistry(databases map[string]Queryable, tables Queryable) *Registry {
	r := &Registry{databases: map[string]Queryable{}, tables: tables}
	for name, q := range databases {
		r.databases[strings.ToLower(name)] = q
	}
	return r
}

// OpenRegistry opens every database declared by the specification and
// loads its tables into memory.
func OpenRegistry(ctx context.Context, spec *models.Spec) (*Registry, error) {
	r := NewRegistry(nil, nil)

	var tables []*models.Table
	for _, doc := range spec.Docs {
		tables = append(tables, doc.Tables...)
		for _, db := range doc.Databases {
			dsn := db.Path
			if dsn != "" && dsn != ":memory:" && !filepath.IsAbs(dsn) && doc.Path != "" {
				dsn = filepath.Join(filepath.Dir(doc.Path), dsn)
			}
			conn, err := Open(ctx, db.Driver, dsn)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("database %q: %w", db.Name, err), r.Close())
			}
			r.databases[strings.ToLower(db.Name)] = conn
			r.closers = append(r.closers, conn.Close)
		}
	}

	if len(tables) > 0 {
		conn, err := OpenTables(ctx, tables)
		if err != nil {
			return nil, errors.Join(err, r.Close())
		}
		r.tables = conn
		r.closers = append(r.closers, conn.Close)
	}
	return r, nil
}

// Database returns the connection of a declared database.
func (r *Registry) Database(name string) (Queryable, bool) {
	q, ok := r.databases[strings.ToLower(name)]
	return q, ok
}

// Tables returns the connection holding the in-memory tables.
func (r *Registry) Tables() (Queryable, bool) {
	return r.tables, r.tables != nil
}

// Close closes every connection opened by OpenRegistry.
func (r *Registry) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c())
	}
	r.closers = nil
	return errors.Join(errs...)
}
