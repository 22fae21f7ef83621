// Package datagen produces concrete values for data test cases.
package datagen

import (
	"context"
	"time"

	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/query"
	"github.com/denizgursoy/senaryo/internal/random"
)

// DefaultFilledLength caps random strings used where no length is declared.
const DefaultFilledLength = 10

type (
	// Config is what value resolution hands to the DataGenerator.
	Config struct {
		// ValueType is inferred from the bounds and values when empty.
		ValueType models.ValueType

		// Min and Max are values for the VALUE group and lengths for LENGTH.
		Min any
		Max any

		Format string

		Value  any
		Values []any

		Query       string
		QuerySource query.Source
		Queryable   query.Queryable

		// InvertedLogic is set for negated set declarations.
		InvertedLogic bool
		Required      bool
	}

	// DataGenerator is the single dispatch from data test cases to value
	// generators.
	DataGenerator struct {
		random          *random.Random
		cache           *query.Cache
		tries           int
		repetitionLimit int
		maxStringLength int
	}

	Option func(*DataGenerator)
)

func WithQueryCache(cache *query.Cache) Option {
	return func(g *DataGenerator) {
		g.cache = cache
	}
}

func WithRandomTries(tries int) Option {
	return func(g *DataGenerator) {
		g.tries = tries
	}
}

func WithRepetitionLimit(limit int) Option {
	return func(g *DataGenerator) {
		g.repetitionLimit = limit
	}
}

func WithMaxStringLength(length int) Option {
	return func(g *DataGenerator) {
		g.maxStringLength = length
	}
}

func NewDataGenerator(r *random.Random, opts ...Option) *DataGenerator {
	g := &DataGenerator{
		random:          r,
		tries:           DefaultRandomTries,
		repetitionLimit: DefaultRepetitionLimit,
		maxStringLength: DefaultMaxStringLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = query.NewCache()
	}
	return g
}

// MaxStringLength returns the longest string the generator produces.
func (g *DataGenerator) MaxStringLength() int {
	return g.maxStringLength
}

// ResolvedValueType returns the declared value type or the one inferred
// from the first bound or value present.
func (c Config) ResolvedValueType() models.ValueType {
	if c.ValueType != "" {
		return c.ValueType
	}
	samples := []any{c.Min, c.Max, c.Value}
	if len(c.Values) > 0 {
		samples = append(samples, c.Values[0])
	}
	for _, s := range samples {
		switch x := s.(type) {
		case int64, int:
			return models.ValueTypeInteger
		case float64:
			return models.ValueTypeDouble
		case time.Time:
			return models.ValueTypeDateTime
		case string:
			if vt, ok := models.InferValueTypeOf(x, false); ok {
				return vt
			}
		}
	}
	return models.ValueTypeString
}

// Generate returns the value of a data test case. A nil value with a nil
// error means the data test case produces nothing for the config; errors
// only come from bounds that cannot be read and failing queries.
func (g *DataGenerator) Generate(ctx context.Context, d dtc.DataTestCase, cfg Config) (any, error) {
	vt := cfg.ResolvedValueType()

	switch dtc.GroupOf(d) {
	case dtc.GroupValue:
		if vt == models.ValueTypeString {
			return nil, nil
		}
		raw, err := NewRawGenerator(vt, g.random, cfg.Min, cfg.Max, g.maxStringLength)
		if err != nil {
			return nil, err
		}
		return raw.Generate(boundaryOf(d)), nil

	case dtc.GroupLength:
		raw, err := NewRawGenerator(models.ValueTypeString, g.random, cfg.Min, cfg.Max, g.maxStringLength)
		if err != nil {
			return nil, err
		}
		return raw.Generate(boundaryOf(d)), nil

	case dtc.GroupFormat:
		if cfg.Format == "" {
			return nil, nil
		}
		re, err := NewRegexBasedDataGenerator(cfg.Format, g.random, g.tries, g.repetitionLimit, g.maxStringLength)
		if err != nil {
			return nil, err
		}
		if d == dtc.FormatValid {
			return re.Valid()
		}
		return re.Invalid()

	case dtc.GroupSet:
		set, err := g.setGenerator(ctx, vt, cfg)
		if err != nil || set == nil {
			return nil, err
		}
		var v any
		switch d {
		case dtc.SetFirstElement:
			v = set.First()
		case dtc.SetSecondElement:
			v = set.Second()
		case dtc.SetRandomElement:
			v = set.Random()
		case dtc.SetPenultimateElement:
			v = set.Penultimate()
		case dtc.SetLastElement:
			v = set.Last()
		case dtc.SetNotInSet:
			v = set.NotInSet()
		}
		if v == nil {
			return nil, nil
		}
		return Coerce(vt, v), nil

	case dtc.GroupRequired:
		if d == dtc.RequiredNotFilled {
			return "", nil
		}
		return g.filled(ctx, vt, cfg)
	}

	// COMPUTATION has no generator.
	return nil, nil
}

func (g *DataGenerator) filled(ctx context.Context, vt models.ValueType, cfg Config) (any, error) {
	if cfg.Value != nil || len(cfg.Values) > 0 || cfg.Query != "" {
		set, err := g.setGenerator(ctx, vt, Config{
			ValueType:   vt,
			Value:       cfg.Value,
			Values:      cfg.Values,
			Query:       cfg.Query,
			QuerySource: cfg.QuerySource,
			Queryable:   cfg.Queryable,
		})
		if err != nil {
			return nil, err
		}
		if v := set.Random(); v != nil {
			return Coerce(vt, v), nil
		}
	}
	if vt == models.ValueTypeString && cfg.Format != "" {
		re, err := NewRegexBasedDataGenerator(cfg.Format, g.random, g.tries, g.repetitionLimit, g.maxStringLength)
		if err != nil {
			return nil, err
		}
		return re.Valid()
	}
	return g.randomValue(vt, cfg.Min, cfg.Max)
}

func (g *DataGenerator) setGenerator(ctx context.Context, vt models.ValueType, cfg Config) (SetGenerator, error) {
	raw := func() any {
		v, _ := g.randomValue(vt, nil, nil)
		return v
	}

	var list *ListBasedDataGenerator
	switch {
	case cfg.Query != "" && cfg.Queryable != nil:
		var err error
		list, err = NewQueryBasedDataGenerator(ctx, g.cache, cfg.QuerySource, cfg.Queryable, cfg.Query, g.random, raw, g.tries)
		if err != nil {
			return nil, err
		}
	case len(cfg.Values) > 0:
		list = NewListBasedDataGenerator(cfg.Values, g.random, raw, g.tries)
	case cfg.Value != nil:
		list = NewListBasedDataGenerator([]any{cfg.Value}, g.random, raw, g.tries)
	default:
		return nil, nil
	}

	if cfg.InvertedLogic {
		return NewInvertedLogic(list), nil
	}
	return list, nil
}

// randomValue draws a value between the bounds. Strings without a maximum
// length stay short.
func (g *DataGenerator) randomValue(vt models.ValueType, min, max any) (any, error) {
	if vt == models.ValueTypeString {
		if min == nil {
			min = int64(1)
		}
		if max == nil {
			max = int64(DefaultFilledLength)
		}
	}
	raw, err := NewRawGenerator(vt, g.random, min, max, g.maxStringLength)
	if err != nil {
		return nil, err
	}
	return raw.Generate(BoundaryRandomBetweenMinAndMax), nil
}

func boundaryOf(d dtc.DataTestCase) Boundary {
	switch d {
	case dtc.ValueLowest, dtc.LengthLowest:
		return BoundaryLowest
	case dtc.ValueRandomBelowMin, dtc.LengthRandomBelowMin:
		return BoundaryRandomBelowMin
	case dtc.ValueJustBelowMin, dtc.LengthJustBelowMin:
		return BoundaryJustBelowMin
	case dtc.ValueMin, dtc.LengthMin:
		return BoundaryMin
	case dtc.ValueJustAboveMin, dtc.LengthJustAboveMin:
		return BoundaryJustAboveMin
	case dtc.ValueZero:
		return BoundaryZero
	case dtc.ValueMedian, dtc.LengthMedian:
		return BoundaryMedian
	case dtc.ValueRandomBetweenMinMax, dtc.LengthRandomBetweenMinMax:
		return BoundaryRandomBetweenMinAndMax
	case dtc.ValueJustBelowMax, dtc.LengthJustBelowMax:
		return BoundaryJustBelowMax
	case dtc.ValueMax, dtc.LengthMax:
		return BoundaryMax
	case dtc.ValueJustAboveMax, dtc.LengthJustAboveMax:
		return BoundaryJustAboveMax
	case dtc.ValueRandomAboveMax, dtc.LengthRandomAboveMax:
		return BoundaryRandomAboveMax
	case dtc.ValueGreatest, dtc.LengthGreatest:
		return BoundaryGreatest
	}
	return -1
}

// BoundaryOf returns the boundary operation of a VALUE or LENGTH data test
// case.
func BoundaryOf(d dtc.DataTestCase) (Boundary, bool) {
	b := boundaryOf(d)
	return b, b >= 0
}
