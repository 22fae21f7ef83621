// Package uiegen generates the value of every UI Element of a test plan,
// resolving bounds, sets and formats that point at constants, queries and
// other UI Elements.
package uiegen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/plan"
	"github.com/denizgursoy/senaryo/internal/query"
)

var (
	ErrUIElementNotFound = errors.New("UI Element not found")
	ErrTestPlanNotFound  = errors.New("test plan not found")
	ErrConstantNotFound  = errors.New("constant not found")
	ErrCircularReference = errors.New("circular reference")
)

type (
	// ValueGenerator generates UI Element values. Its query cache lives as
	// long as the generator; values live as long as a test plan.
	ValueGenerator struct {
		data        DataGenerator
		connections Connections
		cache       *query.Cache
		logger      *slog.Logger
	}

	Option func(*ValueGenerator)

	// Values maps fully-qualified variables to generated values. A nil value
	// means the value could not be generated.
	Values map[string]any

	// run is a single resolution over one test plan.
	run struct {
		*ValueGenerator
		ctx       context.Context
		plan      plan.TestPlan
		values    Values
		resolving map[string]bool
		gc        *models.GenContext
	}
)

func WithConnections(c Connections) Option {
	return func(g *ValueGenerator) {
		g.connections = c
	}
}

// WithQueryCache shares a cache, usually the one the DataGenerator uses.
func WithQueryCache(cache *query.Cache) Option {
	return func(g *ValueGenerator) {
		g.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *ValueGenerator) {
		g.logger = logger
	}
}

func NewValueGenerator(data DataGenerator, opts ...Option) *ValueGenerator {
	g := &ValueGenerator{data: data, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = query.NewCache()
	}
	return g
}

// Generate returns the value of a variable under the test plan, reusing and
// filling values. Failures are recorded in gc and produce nil.
func (g *ValueGenerator) Generate(ctx context.Context, variable string, tp plan.TestPlan, values Values, gc *models.GenContext) any {
	r := &run{
		ValueGenerator: g,
		ctx:            ctx,
		plan:           tp,
		values:         values,
		resolving:      map[string]bool{},
		gc:             gc,
	}
	v, err := r.generate(variable)
	if err != nil {
		gc.AddError(err)
		g.logger.Warn("could not generate value",
			slog.String("variable", variable),
			slog.String("error", err.Error()))
	}
	return v
}

func (r *run) generate(variable string) (any, error) {
	uie := r.gc.Spec.UIElementByVariable(variable, r.gc.Doc)
	if uie != nil {
		variable = uie.Variable()
	} else if !strings.Contains(variable, ":") {
		variable = models.VariableName(r.gc.FeatureName(), variable)
	}

	if v, ok := r.values[variable]; ok {
		return v, nil
	}
	if uie == nil {
		r.values[variable] = nil
		return nil, fmt.Errorf("%w: %s", ErrUIElementNotFound, variable)
	}
	if r.resolving[variable] {
		return nil, fmt.Errorf("%w: %s depends on itself", ErrCircularReference, variable)
	}
	tp, ok := r.plan[variable]
	if !ok {
		r.values[variable] = nil
		return nil, fmt.Errorf("%w: %s", ErrTestPlanNotFound, variable)
	}

	r.resolving[variable] = true
	defer delete(r.resolving, variable)

	cfg, err := r.configOf(uie, tp.DataTestCase)
	if err != nil {
		r.values[variable] = nil
		return nil, fmt.Errorf("UI Element %s: %w", variable, err)
	}
	v, err := r.data.Generate(r.ctx, tp.DataTestCase, cfg)
	if err != nil {
		r.values[variable] = nil
		return nil, fmt.Errorf("UI Element %s, %s: %w", variable, tp.DataTestCase, err)
	}
	r.values[variable] = v
	return v, nil
}

func (r *run) configOf(uie *models.UIElement, d dtc.DataTestCase) (datagen.Config, error) {
	cfg := datagen.Config{ValueType: uie.DataType()}

	switch dtc.GroupOf(d) {
	case dtc.GroupValue:
		return cfg, r.bounds(uie, models.PropertyMinValue, models.PropertyMaxValue, &cfg)
	case dtc.GroupLength:
		return cfg, r.bounds(uie, models.PropertyMinLength, models.PropertyMaxLength, &cfg)
	case dtc.GroupFormat:
		return cfg, r.format(uie, &cfg)
	case dtc.GroupSet:
		return cfg, r.set(uie, &cfg)
	case dtc.GroupRequired:
		// a filled value should respect every other declared constraint
		cfg.Required = uie.IsRequired()
		minID, maxID := models.PropertyMinValue, models.PropertyMaxValue
		if cfg.ValueType == models.ValueTypeString {
			minID, maxID = models.PropertyMinLength, models.PropertyMaxLength
		}
		var err error
		if p := uie.Property(models.PropertyValue); p == nil || !p.Negated {
			err = r.set(uie, &cfg)
		}
		return cfg, errors.Join(err, r.format(uie, &cfg), r.bounds(uie, minID, maxID, &cfg))
	case dtc.GroupComputation:
		return cfg, nil
	}
	return cfg, nil
}

func (r *run) bounds(uie *models.UIElement, minID, maxID models.UIPropertyID, cfg *datagen.Config) error {
	if p := uie.Property(minID); p != nil {
		v, err := r.single(p.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", minID, err)
		}
		cfg.Min = v
	}
	if p := uie.Property(maxID); p != nil {
		v, err := r.single(p.Value)
		if err != nil {
			return fmt.Errorf("%s: %w", maxID, err)
		}
		cfg.Max = v
	}
	return nil
}

func (r *run) format(uie *models.UIElement, cfg *datagen.Config) error {
	p := uie.Property(models.PropertyFormat)
	if p == nil {
		return nil
	}
	v, err := r.single(p.Value)
	if err != nil {
		return fmt.Errorf("%s: %w", models.PropertyFormat, err)
	}
	if v != nil {
		cfg.Format = fmt.Sprint(v)
	}
	return nil
}

// set fills the candidates of a value declaration. Queries are handed to
// the DataGenerator so the whole first column becomes the set.
func (r *run) set(uie *models.UIElement, cfg *datagen.Config) error {
	p := uie.Property(models.PropertyValue)
	if p == nil || p.Value == nil {
		return nil
	}
	cfg.InvertedLogic = p.Negated

	if p.Value.Kind == models.KindQuery {
		statement, source, conn, err := r.resolveQuery(p.Value.Text())
		if err != nil {
			return fmt.Errorf("%s: %w", models.PropertyValue, err)
		}
		cfg.Query, cfg.QuerySource, cfg.Queryable = statement, source, conn
		return nil
	}

	v, err := r.resolve(p.Value)
	if err != nil {
		return fmt.Errorf("%s: %w", models.PropertyValue, err)
	}
	if list, ok := v.([]any); ok {
		cfg.Values = list
		return nil
	}
	cfg.Value = v
	return nil
}

// single resolves a value and keeps the first element of lists.
func (r *run) single(ev *models.EntityValue) (any, error) {
	v, err := r.resolve(ev)
	if err != nil {
		return nil, err
	}
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return nil, nil
		}
		return list[0], nil
	}
	return v, nil
}

// resolve returns a literal, a constant's value, another UI Element's
// generated value or the first column of a query. Lists are []any.
func (r *run) resolve(ev *models.EntityValue) (any, error) {
	if ev == nil {
		return nil, nil
	}
	switch ev.Kind {
	case models.KindValue, models.KindNumber, models.KindBoolean:
		return ev.Value, nil
	case models.KindValueList:
		return ev.List(), nil
	case models.KindConstant:
		c := r.gc.Spec.ConstantByName(ev.Text())
		if c == nil {
			return nil, fmt.Errorf("%w: %s", ErrConstantNotFound, ev.Text())
		}
		if c.Value.Kind == models.KindConstant {
			return nil, fmt.Errorf("constant %s cannot refer to another constant", c.Name)
		}
		return r.resolve(&c.Value)
	case models.KindUIElement:
		return r.generate(ev.Text())
	case models.KindQuery:
		statement, source, conn, err := r.resolveQuery(ev.Text())
		if err != nil {
			return nil, err
		}
		return r.cache.FirstColumn(r.ctx, source, conn, statement)
	}
	return nil, fmt.Errorf("unsupported value kind %q", ev.Kind)
}

// resolveQuery checks that a query names exactly one database or one
// table, substitutes constants and UI Elements with SQL literals and
// returns the connection to run it on.
func (r *run) resolveQuery(q string) (string, query.Source, query.Queryable, error) {
	refs := query.References(q)

	var database, table string
	for _, ref := range refs {
		if ref.Kind != query.ReferenceName {
			continue
		}
		switch {
		case r.gc.Spec.DatabaseByName(ref.Name) != nil:
			if database != "" && !strings.EqualFold(database, ref.Name) {
				return "", "", nil, fmt.Errorf("%w: %q references more than one database", query.ErrReference, q)
			}
			database = ref.Name
		case r.gc.Spec.TableByName(ref.Name) != nil:
			if table != "" && !strings.EqualFold(table, ref.Name) {
				return "", "", nil, fmt.Errorf("%w: %q references more than one table", query.ErrReference, q)
			}
			table = ref.Name
		}
	}

	var (
		source query.Source
		conn   query.Queryable
		ok     bool
	)
	switch {
	case database != "" && table != "":
		return "", "", nil, fmt.Errorf("%w: %q references both a database and a table", query.ErrReference, q)
	case database != "":
		source = query.SourceDatabase
		if r.connections != nil {
			conn, ok = r.connections.Database(database)
		}
		if !ok {
			return "", "", nil, fmt.Errorf("%w: database %q is not connected", query.ErrReference, database)
		}
	case table != "":
		source = query.SourceTable
		if r.connections != nil {
			conn, ok = r.connections.Tables()
		}
		if !ok {
			return "", "", nil, fmt.Errorf("%w: table %q is not loaded", query.ErrReference, table)
		}
	default:
		return "", "", nil, fmt.Errorf("%w: %q references no database or table", query.ErrReference, q)
	}

	statement, err := query.Replace(q, refs, func(ref query.Reference) (string, error) {
		if ref.Kind == query.ReferenceUIElement {
			v, err := r.generate(ref.Name)
			if err != nil {
				return "", err
			}
			return query.Literal(v), nil
		}
		switch {
		case strings.EqualFold(ref.Name, database):
			return "", nil
		case strings.EqualFold(ref.Name, table):
			return query.TableName(ref.Name), nil
		}
		c := r.gc.Spec.ConstantByName(ref.Name)
		if c == nil {
			return "", fmt.Errorf("%w: unknown name [%s]", query.ErrReference, ref.Name)
		}
		if c.Value.Kind == models.KindNumber {
			return c.Value.Text(), nil
		}
		return query.Literal(c.Value.Value), nil
	})
	if err != nil {
		return "", "", nil, err
	}
	return statement, source, conn, nil
}
