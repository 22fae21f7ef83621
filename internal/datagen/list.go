package datagen

import (
	"context"
	"fmt"
	"time"

	"github.com/denizgursoy/senaryo/internal/query"
	"github.com/denizgursoy/senaryo/internal/random"
)

type (
	// SetGenerator selects values from, or outside of, an ordered set.
	SetGenerator interface {
		First() any
		Second() any
		Random() any
		Penultimate() any
		Last() any
		NotInSet() any
	}

	// ListBasedDataGenerator selects from an explicit list of values.
	ListBasedDataGenerator struct {
		values []any
		random *random.Random
		raw    func() any
		tries  int
	}

	// InvertedLogicListBasedDataGenerator is used for "not in" declarations:
	// every selection picks a value outside the set and NotInSet picks one
	// inside it.
	InvertedLogicListBasedDataGenerator struct {
		inner *ListBasedDataGenerator
	}
)

// NewListBasedDataGenerator creates a generator over values. raw produces
// the candidates NotInSet draws from.
func NewListBasedDataGenerator(values []any, r *random.Random, raw func() any, tries int) *ListBasedDataGenerator {
	if tries <= 0 {
		tries = DefaultRandomTries
	}
	return &ListBasedDataGenerator{values: values, random: r, raw: raw, tries: tries}
}

// NewQueryBasedDataGenerator creates a list generator over the first column
// of a query result, read through the cache.
func NewQueryBasedDataGenerator(
	ctx context.Context,
	cache *query.Cache,
	source query.Source,
	q query.Queryable,
	statement string,
	r *random.Random,
	raw func() any,
	tries int,
) (*ListBasedDataGenerator, error) {
	values, err := cache.FirstColumn(ctx, source, q, statement)
	if err != nil {
		return nil, err
	}
	return NewListBasedDataGenerator(values, r, raw, tries), nil
}

// NewInvertedLogic wraps a list generator.
func NewInvertedLogic(inner *ListBasedDataGenerator) *InvertedLogicListBasedDataGenerator {
	return &InvertedLogicListBasedDataGenerator{inner: inner}
}

func (g *ListBasedDataGenerator) at(i int) any {
	if len(g.values) == 0 {
		return nil
	}
	return g.values[min(max(i, 0), len(g.values)-1)]
}

func (g *ListBasedDataGenerator) First() any { return g.at(0) }

func (g *ListBasedDataGenerator) Second() any { return g.at(1) }

func (g *ListBasedDataGenerator) Random() any {
	v, _ := random.Pick(g.random, g.values)
	return v
}

func (g *ListBasedDataGenerator) Penultimate() any { return g.at(len(g.values) - 2) }

func (g *ListBasedDataGenerator) Last() any { return g.at(len(g.values) - 1) }

// NotInSet returns a raw value absent from the set, or nil when none was
// found within the retry budget.
func (g *ListBasedDataGenerator) NotInSet() any {
	for range g.tries {
		v := g.raw()
		if !g.Contains(v) {
			return v
		}
	}
	return nil
}

// Contains compares values by their text so that 10 and "10" are equal.
func (g *ListBasedDataGenerator) Contains(v any) bool {
	key := textOf(v)
	for _, candidate := range g.values {
		if textOf(candidate) == key {
			return true
		}
	}
	return false
}

func (g *InvertedLogicListBasedDataGenerator) First() any { return g.inner.NotInSet() }

func (g *InvertedLogicListBasedDataGenerator) Second() any { return g.inner.NotInSet() }

func (g *InvertedLogicListBasedDataGenerator) Random() any { return g.inner.NotInSet() }

func (g *InvertedLogicListBasedDataGenerator) Penultimate() any { return g.inner.NotInSet() }

func (g *InvertedLogicListBasedDataGenerator) Last() any { return g.inner.NotInSet() }

func (g *InvertedLogicListBasedDataGenerator) NotInSet() any { return g.inner.Random() }

func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.Format(time.RFC3339)
	case float64:
		return fmt.Sprint(x)
	}
	return fmt.Sprint(v)
}
