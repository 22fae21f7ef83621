package uiegen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/plan"
	"github.com/denizgursoy/senaryo/internal/query"
	"github.com/denizgursoy/senaryo/internal/random"
)

func property(id models.UIPropertyID, kind models.ValueKind, value any) *models.UIProperty {
	return &models.UIProperty{ID: id, Value: &models.EntityValue{Kind: kind, Value: value}}
}

func integer() *models.UIProperty {
	return property(models.PropertyDataType, models.KindValue, "integer")
}

func element(name string, properties ...*models.UIProperty) *models.UIElement {
	return &models.UIElement{Name: name, Feature: "F", Properties: properties}
}

func contextOf(elements ...*models.UIElement) *models.GenContext {
	doc := &models.Document{
		Path:      "f.yaml",
		Feature:   &models.Feature{Name: "F", UIElements: elements},
		Constants: []*models.Constant{{Name: "Age", Value: models.EntityValue{Kind: models.KindNumber, Value: "18"}}},
		Databases: []*models.Database{{Name: "DB", Driver: "sqlite", Path: ":memory:"}},
		Tables:    []*models.Table{models.NewTable("Users", [][]string{{"name"}, {"alice"}, {"bob"}})},
	}
	return models.NewGenContext(models.NewSpec(doc), doc)
}

func planOf(cases map[string]dtc.DataTestCase) plan.TestPlan {
	tp := plan.TestPlan{}
	for v, d := range cases {
		tp[v] = plan.UIETestPlan{DataTestCase: d, Result: dtc.Valid}
	}
	return tp
}

func realGenerator(opts ...Option) *ValueGenerator {
	return NewValueGenerator(datagen.NewDataGenerator(random.New("uiegen")), opts...)
}

func TestValueGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("should generate a boundary value", func(t *testing.T) {
		gc := contextOf(element("A", property(models.PropertyMinValue, models.KindNumber, "5")))
		values := Values{}

		v := realGenerator().Generate(ctx, "A", planOf(map[string]dtc.DataTestCase{"F:A": dtc.ValueMin}), values, gc)
		require.Equal(t, int64(5), v)
		require.Equal(t, Values{"F:A": int64(5)}, values)
		require.Empty(t, gc.Errors)
	})

	t.Run("should resolve bounds from other UI Elements", func(t *testing.T) {
		gc := contextOf(
			element("A", property(models.PropertyMinValue, models.KindNumber, "5")),
			element("B", integer(), property(models.PropertyMinValue, models.KindUIElement, "A")),
		)
		values := Values{}
		tp := planOf(map[string]dtc.DataTestCase{"F:A": dtc.ValueJustAboveMin, "F:B": dtc.ValueMin})

		v := realGenerator().Generate(ctx, "F:B", tp, values, gc)
		require.Equal(t, int64(6), v)
		require.Equal(t, int64(6), values["F:A"])
		require.Empty(t, gc.Errors)
	})

	t.Run("should resolve bounds from constants", func(t *testing.T) {
		gc := contextOf(element("A", integer(), property(models.PropertyMaxValue, models.KindConstant, "Age")))
		v := realGenerator().Generate(ctx, "A", planOf(map[string]dtc.DataTestCase{"F:A": dtc.ValueJustAboveMax}), Values{}, gc)
		require.Equal(t, int64(19), v)
	})

	t.Run("should reuse generated values", func(t *testing.T) {
		controller := gomock.NewController(t)
		data := NewMockDataGenerator(controller)

		gc := contextOf(element("A"))
		v := NewValueGenerator(data).Generate(ctx, "A", plan.TestPlan{}, Values{"F:A": "cached"}, gc)
		require.Equal(t, "cached", v)
	})

	t.Run("should report unknown UI Elements", func(t *testing.T) {
		gc := contextOf()
		values := Values{}
		require.Nil(t, realGenerator().Generate(ctx, "Z", plan.TestPlan{}, values, gc))
		require.Len(t, gc.Errors, 1)
		require.ErrorIs(t, gc.Errors[0], ErrUIElementNotFound)
		require.Contains(t, values, "F:Z")
	})

	t.Run("should report missing test plans", func(t *testing.T) {
		gc := contextOf(element("A"))
		require.Nil(t, realGenerator().Generate(ctx, "A", plan.TestPlan{}, Values{}, gc))
		require.Len(t, gc.Errors, 1)
		require.ErrorIs(t, gc.Errors[0], ErrTestPlanNotFound)
	})

	t.Run("should detect circular references", func(t *testing.T) {
		gc := contextOf(
			element("A", integer(), property(models.PropertyMinValue, models.KindUIElement, "B")),
			element("B", integer(), property(models.PropertyMinValue, models.KindUIElement, "A")),
		)
		values := Values{}
		tp := planOf(map[string]dtc.DataTestCase{"F:A": dtc.ValueMin, "F:B": dtc.ValueMin})

		require.Nil(t, realGenerator().Generate(ctx, "A", tp, values, gc))
		require.Len(t, gc.Errors, 1)
		require.ErrorIs(t, gc.Errors[0], ErrCircularReference)

		// B failed as part of A and is not reported twice
		require.Nil(t, realGenerator().Generate(ctx, "B", tp, values, gc))
		require.Len(t, gc.Errors, 1)
	})

	t.Run("should pass negated value lists as inverted sets", func(t *testing.T) {
		controller := gomock.NewController(t)
		data := NewMockDataGenerator(controller)
		data.EXPECT().
			Generate(gomock.Any(), dtc.SetFirstElement, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ dtc.DataTestCase, cfg datagen.Config) (any, error) {
				require.True(t, cfg.InvertedLogic)
				require.Equal(t, []any{"x", "y"}, cfg.Values)
				return "z", nil
			})

		values := property(models.PropertyValue, models.KindValueList, []any{"x", "y"})
		values.Negated = true
		gc := contextOf(element("A", values))

		v := NewValueGenerator(data).Generate(ctx, "A", planOf(map[string]dtc.DataTestCase{"F:A": dtc.SetFirstElement}), Values{}, gc)
		require.Equal(t, "z", v)
	})

	t.Run("should record data generation failures", func(t *testing.T) {
		controller := gomock.NewController(t)
		data := NewMockDataGenerator(controller)
		data.EXPECT().Generate(gomock.Any(), dtc.FormatValid, gomock.Any()).Return(nil, errors.New("bad regex"))

		gc := contextOf(element("A", property(models.PropertyFormat, models.KindValue, "[")))
		v := NewValueGenerator(data).Generate(ctx, "A", planOf(map[string]dtc.DataTestCase{"F:A": dtc.FormatValid}), Values{}, gc)
		require.Nil(t, v)
		require.Len(t, gc.Errors, 1)
	})
}

func TestValueGenerator_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("should select from a table", func(t *testing.T) {
		controller := gomock.NewController(t)
		tables := query.NewMockQueryable(controller)
		tables.EXPECT().
			Query(gomock.Any(), `SELECT name FROM "users"`).
			Return([][]any{{"alice"}, {"bob"}}, nil)
		connections := NewMockConnections(controller)
		connections.EXPECT().Tables().Return(tables, true)

		gc := contextOf(element("A", property(models.PropertyValue, models.KindQuery, "SELECT name FROM [Users]")))
		v := realGenerator(WithConnections(connections)).
			Generate(ctx, "A", planOf(map[string]dtc.DataTestCase{"F:A": dtc.SetLastElement}), Values{}, gc)
		require.Equal(t, "bob", v)
		require.Empty(t, gc.Errors)
	})

	t.Run("should substitute constants and UI Elements", func(t *testing.T) {
		controller := gomock.NewController(t)
		db := query.NewMockQueryable(controller)
		db.EXPECT().
			Query(gomock.Any(), "SELECT name FROM users WHERE age > 18 AND city = 'Paris'").
			Return([][]any{{"carol"}}, nil)

		gc := contextOf(
			element("City", property(models.PropertyValue, models.KindValue, "Paris")),
			element("Name", property(models.PropertyValue, models.KindQuery,
				"SELECT name FROM [DB].users WHERE age > [Age] AND city = {City}")),
		)
		tp := planOf(map[string]dtc.DataTestCase{"F:City": dtc.SetFirstElement, "F:Name": dtc.SetFirstElement})
		values := Values{}

		g := realGenerator(WithConnections(query.NewRegistry(map[string]query.Queryable{"DB": db}, nil)))
		require.Equal(t, "carol", g.Generate(ctx, "Name", tp, values, gc))
		require.Equal(t, "Paris", values["F:City"])
		require.Empty(t, gc.Errors)
	})

	t.Run("should read bounds from a query once", func(t *testing.T) {
		controller := gomock.NewController(t)
		tables := query.NewMockQueryable(controller)
		tables.EXPECT().
			Query(gomock.Any(), `SELECT min FROM "users"`).
			Return([][]any{{"3"}, {"7"}}, nil).
			Times(1)

		gc := contextOf(element("A", integer(),
			property(models.PropertyMinValue, models.KindQuery, "SELECT min FROM [Users]")))
		g := realGenerator(WithConnections(query.NewRegistry(nil, tables)))
		tp := planOf(map[string]dtc.DataTestCase{"F:A": dtc.ValueMin})

		require.Equal(t, int64(3), g.Generate(ctx, "A", tp, Values{}, gc))
		require.Equal(t, int64(3), g.Generate(ctx, "A", tp, Values{}, gc))
	})

	t.Run("should reject invalid references", func(t *testing.T) {
		for _, q := range []string{
			"SELECT 1",
			"SELECT * FROM [DB].users, [Users]",
			"SELECT * FROM [Nope].users, [Users]",
		} {
			gc := contextOf(element("A", property(models.PropertyValue, models.KindQuery, q)))
			g := realGenerator(WithConnections(query.NewRegistry(nil, nil)))
			require.Nil(t, g.Generate(ctx, "A", planOf(map[string]dtc.DataTestCase{"F:A": dtc.SetFirstElement}), Values{}, gc))
			require.Len(t, gc.Errors, 1, q)
			require.ErrorIs(t, gc.Errors[0], query.ErrReference, q)
		}
	})
}
