//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=uiegen
package uiegen

import (
	"context"

	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/query"
)

type (
	DataGenerator interface {
		Generate(ctx context.Context, d dtc.DataTestCase, cfg datagen.Config) (any, error)
	}

	// Connections gives access to the databases and in-memory tables that
	// queries reference.
	Connections interface {
		Database(name string) (query.Queryable, bool)
		Tables() (query.Queryable, bool)
	}
)
