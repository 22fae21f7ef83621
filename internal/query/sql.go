package query

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/denizgursoy/senaryo/internal/models"
)

// DefaultDriver is used when a database declares no driver.
const DefaultDriver = "sqlite"

// SQLConnection is a Queryable backed by database/sql.
type SQLConnection struct {
	db *sql.DB
}

// Open connects to a database.
func Open(ctx context.Context, driver, dsn string) (*SQLConnection, error) {
	if driver == "" {
		driver = DefaultDriver
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open %s database %q: %w", driver, dsn, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to %s database %q: %w", driver, dsn, err)
	}
	return &SQLConnection{db: db}, nil
}

// OpenTables creates an in-memory database holding one table per given
// table. Every column is stored as text.
func OpenTables(ctx context.Context, tables []*models.Table) (*SQLConnection, error) {
	conn, err := Open(ctx, DefaultDriver, ":memory:")
	if err != nil {
		return nil, err
	}
	// each connection to :memory: is a different database
	conn.db.SetMaxOpenConns(1)

	for _, t := range tables {
		if err := conn.load(ctx, t); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

func (c *SQLConnection) load(ctx context.Context, t *models.Table) error {
	columns := t.Columns()
	if len(columns) == 0 {
		return fmt.Errorf("table %q has no columns", t.Name)
	}
	quoted := make([]string, 0, len(columns))
	for _, col := range columns {
		quoted = append(quoted, `"`+strings.ReplaceAll(col, `"`, `""`)+`"`)
	}
	name := TableName(t.Name)
	create := fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(quoted, ", "))
	if _, err := c.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("could not create table %q: %w", t.Name, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", name, placeholders)
	for _, row := range t.Rows() {
		args := make([]any, 0, len(columns))
		for i := range columns {
			args = append(args, row.Cell(i))
		}
		if _, err := c.db.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("could not fill table %q: %w", t.Name, err)
		}
	}
	return nil
}

// Query executes a query and returns every row.
func (c *SQLConnection) Query(ctx context.Context, query string) ([][]any, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := make([][]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result = append(result, values)
	}
	return result, rows.Err()
}

// Close releases the connection.
func (c *SQLConnection) Close() error {
	return c.db.Close()
}
