package testcase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/denizgursoy/senaryo/internal/analysis"
	"github.com/denizgursoy/senaryo/internal/combination"
	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/nlp"
	"github.com/denizgursoy/senaryo/internal/plan"
	"github.com/denizgursoy/senaryo/internal/random"
	"github.com/denizgursoy/senaryo/internal/uiegen"
)

type fixture struct {
	generator *TestCaseGenerator
	random    *random.Random
}

func newFixture(seed string) fixture {
	r := random.New(seed)
	pre := NewPreTestCaseGenerator(
		nlp.NewRecognizer(),
		analysis.NewDataTestCaseAnalyzer(r),
		uiegen.NewValueGenerator(datagen.NewDataGenerator(r)),
		r,
	)
	return fixture{generator: NewTestCaseGenerator(pre, nil), random: r}
}

func (f fixture) planner(mix plan.DataTestCaseMix, strategy combination.Strategy[plan.UIETestPlan]) []Planner {
	return []Planner{plan.NewTestPlanner(mix, strategy, f.random, nil)}
}

func step(nodeType models.NodeType, content string) *models.Step {
	return &models.Step{NodeType: nodeType, Content: content}
}

func minimumFive(name string, otherwise ...string) *models.UIElement {
	lower := &models.UIProperty{
		ID:    models.PropertyMinValue,
		Value: &models.EntityValue{Kind: models.KindNumber, Value: "5"},
	}
	for _, o := range otherwise {
		lower.Otherwise = append(lower.Otherwise, step(models.NodeOtherwise, "Otherwise I see the message "+o))
	}
	return &models.UIElement{Name: name, Feature: "Login", Properties: []*models.UIProperty{lower}}
}

func contextOf(elements ...*models.UIElement) *models.GenContext {
	doc := &models.Document{
		Path:      "login.yaml",
		Feature:   &models.Feature{Name: "Login", UIElements: elements},
		Constants: []*models.Constant{{Name: "Max", Value: models.EntityValue{Kind: models.KindNumber, Value: "7"}}},
	}
	return models.NewGenContext(models.NewSpec(doc), doc)
}

func sourceOf(steps ...*models.Step) Source {
	return Source{
		Scenario:      &models.Scenario{Name: "Sign in"},
		Variant:       &models.Variant{Name: "Successful sign in", Steps: steps},
		ScenarioIndex: 1,
		VariantIndex:  1,
	}
}

func sentences(tc *models.TestCase) []string {
	var out []string
	for _, s := range tc.Sentences {
		out = append(out, s.String())
	}
	return out
}

func TestTestCaseGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	index := combination.IndexOfEach[plan.UIETestPlan]{Index: 0}

	t.Run("should replace the expected result with the oracle", func(t *testing.T) {
		f := newFixture("e2e")
		gc := contextOf(minimumFive("A", `"bar"`))
		src := sourceOf(
			step(models.NodeWhen, "When I fill {A}"),
			step(models.NodeAnd, `And I fill <b> with "foo"`),
			step(models.NodeThen, `Then I see "x"`),
		)

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.JustOneInvalidMix{}, index))
		require.Len(t, testCases, 1)
		require.Equal(t, []string{
			`When I fill <a> with -9223372036854775808 # {A}, invalid: lowest applicable value`,
			`And I fill <b> with "foo"`,
			`Then I see the message "bar" # from <a>`,
		}, sentences(testCases[0]))
		require.False(t, testCases[0].ShouldFail)
		require.False(t, models.HasTag(testCases[0].Tags, models.TagFail))
		require.True(t, models.HasTag(testCases[0].Tags, models.TagGenerated))
		require.Empty(t, gc.Errors)
	})

	t.Run("should fail without an oracle", func(t *testing.T) {
		f := newFixture("e2e")
		gc := contextOf(minimumFive("A"))
		src := sourceOf(
			step(models.NodeWhen, "When I fill {A}"),
			step(models.NodeAnd, `And I fill <b> with "foo"`),
			step(models.NodeThen, `Then I see "x"`),
		)

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.JustOneInvalidMix{}, index))
		require.Len(t, testCases, 1)
		require.Equal(t, `Then I see "x"`, testCases[0].Sentences[2].String())
		require.True(t, testCases[0].ShouldFail)
		require.True(t, models.HasTag(testCases[0].Tags, models.TagFail))
	})

	t.Run("should fail when an invalid element has no oracle", func(t *testing.T) {
		f := newFixture("e2e")
		gc := contextOf(minimumFive("A", `"bar"`), minimumFive("B", `"zoo"`), minimumFive("C"))
		src := sourceOf(
			step(models.NodeWhen, "When I fill {A}"),
			step(models.NodeAnd, "And I fill {B}"),
			step(models.NodeAnd, "And I fill {C}"),
			step(models.NodeThen, `Then I see "x"`),
		)

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.UnfilteredMix{}, index))
		require.Len(t, testCases, 3)
		for _, tc := range testCases {
			got := sentences(tc)
			require.Len(t, got, 5)
			require.Equal(t, []string{
				`Then I see the message "bar" # from <a>`,
				`And I see the message "zoo" # from <b>`,
			}, got[3:])
			require.True(t, strings.HasSuffix(got[2], "# {C}, invalid: lowest applicable value"))
			require.True(t, tc.ShouldFail)
		}
	})

	t.Run("should fail when an invalid element keeps its explicit value", func(t *testing.T) {
		f := newFixture("e2e")
		gc := contextOf(minimumFive("A"))
		src := sourceOf(
			step(models.NodeWhen, `When I fill {A} with "foo"`),
			step(models.NodeThen, `Then I see "x"`),
		)

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.JustOneInvalidMix{}, index))
		require.Len(t, testCases, 1)
		require.Equal(t, []string{`When I fill <a> with "foo"`, `Then I see "x"`}, sentences(testCases[0]))
		require.True(t, testCases[0].ShouldFail)
		require.True(t, models.HasTag(testCases[0].Tags, models.TagFail))
	})

	t.Run("should fail when an invalid element is only checked", func(t *testing.T) {
		f := newFixture("e2e")
		gc := contextOf(minimumFive("A", `"bar"`))
		src := sourceOf(
			step(models.NodeWhen, "When I see {A}"),
			step(models.NodeThen, `Then I see "x"`),
		)

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.JustOneInvalidMix{}, index))
		require.Len(t, testCases, 1)
		require.Equal(t, []string{"When I see <a>", `Then I see "x"`}, sentences(testCases[0]))
		require.True(t, testCases[0].ShouldFail)
	})

	t.Run("should leave elements in a dependency cycle without values", func(t *testing.T) {
		f := newFixture("cycle")
		cyclic := func(name, other string) *models.UIElement {
			return &models.UIElement{Name: name, Feature: "Login", Properties: []*models.UIProperty{
				{ID: models.PropertyDataType, Value: &models.EntityValue{Kind: models.KindValue, Value: "integer"}},
				{ID: models.PropertyMinValue, Value: &models.EntityValue{Kind: models.KindUIElement, Value: other}},
			}}
		}
		gc := contextOf(cyclic("A", "B"), cyclic("B", "A"))
		src := sourceOf(
			step(models.NodeWhen, "When I fill {A}"),
			step(models.NodeThen, `Then I see "x"`),
		)

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.OnlyValidMix{}, index))
		require.Len(t, testCases, 1)
		got := sentences(testCases[0])
		require.True(t, strings.HasPrefix(got[0], `When I fill <a> with "" # {A}, valid: `), got[0])
		require.Equal(t, `Then I see "x"`, got[1])
		require.False(t, testCases[0].ShouldFail)

		require.Len(t, gc.Errors, 1)
		require.ErrorIs(t, gc.Errors[0], uiegen.ErrCircularReference)
		require.ErrorContains(t, gc.Errors[0], "Login:A, Login:B")
		require.Len(t, gc.Warnings, 1)
		require.ErrorContains(t, gc.Warnings[0], "no value generated for Login:A")
	})

	t.Run("should split steps with many targets", func(t *testing.T) {
		f := newFixture("split")
		gc := contextOf(minimumFive("A"))
		src := sourceOf(step(models.NodeWhen, "When I fill {A} and <c>"))

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.OnlyValidMix{}, index))
		require.Len(t, testCases, 1)
		got := sentences(testCases[0])
		require.Len(t, got, 2)
		require.Equal(t, "When I fill <a> with 5 # {A}, valid: minimum value", got[0])
		require.True(t, strings.HasPrefix(got[1], `And I fill <c> with "`), got[1])
		require.True(t, strings.HasSuffix(got[1], "# valid: random value"), got[1])
		require.Equal(t, models.NodeAnd, testCases[0].Sentences[1].NodeType)
	})

	t.Run("should resolve constants and keep explicit values", func(t *testing.T) {
		f := newFixture("constants")
		gc := contextOf(minimumFive("A"))
		src := sourceOf(step(models.NodeWhen, "When I fill {A} with [Max]"))

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.OnlyValidMix{}, index))
		require.Len(t, testCases, 1)
		require.Equal(t, []string{"When I fill <a> with 7 # [Max]"}, sentences(testCases[0]))
	})

	t.Run("should make a single test case without UI Elements", func(t *testing.T) {
		f := newFixture("plain")
		gc := contextOf()
		src := sourceOf(step(models.NodeGiven, "Given I am on <home>"), step(models.NodeThen, `Then I see "Welcome"`))

		testCases := f.generator.Generate(ctx, src, gc, f.planner(plan.JustOneInvalidMix{}, index))
		require.Len(t, testCases, 1)
		require.Equal(t, []string{"Given I am on <home>", `Then I see "Welcome"`}, sentences(testCases[0]))
		require.False(t, testCases[0].ShouldFail)
		require.Equal(t, []models.Tag{
			{Name: models.TagGenerated},
			{Name: models.TagScenario, Content: []string{"1"}},
			{Name: models.TagVariant, Content: []string{"1"}},
		}, testCases[0].Tags)
	})

	t.Run("should skip ignored variants", func(t *testing.T) {
		f := newFixture("ignored")
		src := sourceOf(step(models.NodeWhen, "When I fill {A}"))
		src.Variant.Tags = []models.Tag{{Name: models.TagIgnore}}

		require.Empty(t, f.generator.Generate(ctx, src, contextOf(minimumFive("A")), f.planner(plan.OnlyValidMix{}, index)))
	})

	t.Run("should not modify the variant", func(t *testing.T) {
		f := newFixture("clone")
		first := step(models.NodeWhen, "When I fill {A}")
		src := sourceOf(first, step(models.NodeThen, `Then I see "x"`))

		f.generator.Generate(ctx, src, contextOf(minimumFive("A")), f.planner(plan.UnfilteredMix{}, combination.CartesianProduct[plan.UIETestPlan]{}))
		require.Equal(t, "When I fill {A}", first.Content)
		require.Empty(t, first.Comment)
	})
}

func TestTestCaseGenerator_Determinism(t *testing.T) {
	run := func() [][]string {
		f := newFixture("determinism")
		upper := &models.UIProperty{ID: models.PropertyMaxValue, Value: &models.EntityValue{Kind: models.KindNumber, Value: "50"}}
		a := minimumFive("A", `"bar"`)
		a.Properties = append(a.Properties, upper)
		name := &models.UIElement{Name: "Name", Feature: "Login", Properties: []*models.UIProperty{
			{ID: models.PropertyMaxLength, Value: &models.EntityValue{Kind: models.KindNumber, Value: "20"}},
		}}
		src := sourceOf(
			step(models.NodeWhen, "When I fill {A} and {Name}"),
			step(models.NodeThen, `Then I see "x"`),
		)
		planners := f.planner(plan.JustOneInvalidMix{}, combination.ShuffledOneWise[plan.UIETestPlan]{Random: f.random})

		var out [][]string
		for _, tc := range f.generator.Generate(context.Background(), src, contextOf(a, name), planners) {
			out = append(out, append([]string{tc.ID}, sentences(tc)...))
		}
		return out
	}

	first := run()
	require.NotEmpty(t, first)
	if diff := cmp.Diff(first, run()); diff != "" {
		t.Errorf("Generate() is not reproducible (-first +second):\n%s", diff)
	}
}

func TestPreTestCaseGenerator_Generate(t *testing.T) {
	t.Run("should use an empty value when none was generated", func(t *testing.T) {
		controller := gomock.NewController(t)
		analyzer := NewMockUIElementAnalyzer(controller)
		values := NewMockValueGenerator(controller)
		planner := NewMockPlanner(controller)

		a := minimumFive("A")
		gc := contextOf(a)
		tp := plan.TestPlan{"Login:A": {DataTestCase: dtc.ValueMin, Result: dtc.Valid}}

		analyzer.EXPECT().AnalyzeUIElement(a, gc).Return(dtc.Analysis{})
		planner.EXPECT().Make(map[string]dtc.Analysis{"Login:A": {}}, gomock.Nil()).Return([]plan.TestPlan{tp})
		values.EXPECT().Generate(gomock.Any(), "Login:A", tp, gomock.Any(), gc).Return(nil)

		pre := NewPreTestCaseGenerator(nlp.NewRecognizer(), analyzer, values, random.New("mock"))
		pres := pre.Generate(context.Background(), []*models.Step{step(models.NodeWhen, "When I fill {A}")}, gc, []Planner{planner})

		require.Len(t, pres, 1)
		require.Equal(t, `When I fill <a> with "" # {A}, valid: minimum value`, pres[0].Steps[0].String())
		require.Len(t, gc.Warnings, 1)
		require.False(t, pres[0].ShouldFail())
	})

	t.Run("should report unknown UI Elements", func(t *testing.T) {
		controller := gomock.NewController(t)
		gc := contextOf()
		pre := NewPreTestCaseGenerator(nlp.NewRecognizer(), NewMockUIElementAnalyzer(controller), NewMockValueGenerator(controller), random.New("mock"))

		pres := pre.Generate(context.Background(), []*models.Step{step(models.NodeWhen, "When I fill {Z}")}, gc, nil)
		require.Len(t, pres, 1)
		require.Equal(t, "When I fill {Z}", pres[0].Steps[0].Content)
		require.ErrorIs(t, gc.Err(), uiegen.ErrUIElementNotFound)
	})
}

func TestPreTestCase_ShouldFail(t *testing.T) {
	then := []*models.Step{step(models.NodeThen, "Then I see")}
	when := []*models.Step{step(models.NodeWhen, "When I fill")}

	require.True(t, (&PreTestCase{Steps: then, Unguarded: []string{"A"}}).ShouldFail())
	require.False(t, (&PreTestCase{Steps: then}).ShouldFail())
	require.False(t, (&PreTestCase{Steps: when, Unguarded: []string{"A"}}).ShouldFail())
}
