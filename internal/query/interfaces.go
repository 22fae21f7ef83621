//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=query
package query

import "context"

type (
	// Queryable executes read-only queries. Databases and in-memory tables
	// expose the same contract.
	Queryable interface {
		Query(ctx context.Context, query string) ([][]any, error)
	}
)
