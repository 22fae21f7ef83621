package plan

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/denizgursoy/senaryo/internal/combination"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/random"
)

func analysisOf(valid, invalid []dtc.DataTestCase) dtc.Analysis {
	a := dtc.Analysis{}
	for _, d := range dtc.All() {
		a[d] = dtc.Pair{Result: dtc.Incompatible}
	}
	for _, d := range valid {
		a[d] = dtc.Pair{Result: dtc.Valid}
	}
	for _, d := range invalid {
		a[d] = dtc.Pair{Result: dtc.Invalid}
	}
	return a
}

func threeElements() map[string]dtc.Analysis {
	a := analysisOf(
		[]dtc.DataTestCase{dtc.ValueMin, dtc.ValueMedian},
		[]dtc.DataTestCase{dtc.ValueLowest, dtc.ValueJustBelowMin},
	)
	return map[string]dtc.Analysis{"A": a, "B": a, "C": a}
}

func resultsOf(pool []UIETestPlan) map[dtc.Result]bool {
	seen := map[dtc.Result]bool{}
	for _, p := range pool {
		seen[p.Result] = true
	}
	return seen
}

func TestJustOneInvalidMix_Select(t *testing.T) {
	t.Run("should isolate one invalid element per candidate map", func(t *testing.T) {
		maps := JustOneInvalidMix{}.Select(threeElements(), nil)
		require.Len(t, maps, 3)

		for i, target := range []string{"A", "B", "C"} {
			for v, pool := range maps[i] {
				require.NotEmpty(t, pool)
				if v == target {
					require.Equal(t, map[dtc.Result]bool{dtc.Invalid: true}, resultsOf(pool))
					continue
				}
				require.Equal(t, map[dtc.Result]bool{dtc.Valid: true}, resultsOf(pool))
			}
		}
	})

	t.Run("should skip always valid variables", func(t *testing.T) {
		maps := JustOneInvalidMix{}.Select(threeElements(), []string{"B"})
		require.Len(t, maps, 2)
	})

	t.Run("should skip variables without invalid plans", func(t *testing.T) {
		analyses := threeElements()
		analyses["D"] = analysisOf([]dtc.DataTestCase{dtc.RequiredFilled}, nil)
		require.Len(t, JustOneInvalidMix{}.Select(analyses, nil), 3)
	})
}

func TestOnlyValidMix_Select(t *testing.T) {
	maps := OnlyValidMix{}.Select(threeElements(), nil)
	require.Len(t, maps, 1)
	for _, pool := range maps[0] {
		require.Equal(t, map[dtc.Result]bool{dtc.Valid: true}, resultsOf(pool))
	}
}

func TestOnlyInvalidMix_Select(t *testing.T) {
	analyses := threeElements()
	analyses["D"] = analysisOf([]dtc.DataTestCase{dtc.RequiredFilled}, nil)

	maps := OnlyInvalidMix{}.Select(analyses, []string{"C"})
	require.Len(t, maps, 1)
	require.Equal(t, map[dtc.Result]bool{dtc.Invalid: true}, resultsOf(maps[0]["A"]))
	require.Equal(t, map[dtc.Result]bool{dtc.Invalid: true}, resultsOf(maps[0]["B"]))
	require.Equal(t, map[dtc.Result]bool{dtc.Valid: true}, resultsOf(maps[0]["C"]))
	require.Equal(t, map[dtc.Result]bool{dtc.Valid: true}, resultsOf(maps[0]["D"]))
}

func TestUnfilteredMix_Select(t *testing.T) {
	t.Run("should make one unfiltered candidate map per variable", func(t *testing.T) {
		maps := UnfilteredMix{}.Select(threeElements(), nil)
		require.Len(t, maps, 3)
		for _, c := range maps {
			for _, v := range []string{"A", "B", "C"} {
				pool := c[v]
				require.Len(t, pool, 4)
				// data test case order puts VALUE_LOWEST first
				require.Equal(t, dtc.ValueLowest, pool[0].DataTestCase)
				require.Equal(t, map[dtc.Result]bool{dtc.Valid: true, dtc.Invalid: true}, resultsOf(pool))
			}
		}
	})

	t.Run("should keep always valid variables valid and not vary them", func(t *testing.T) {
		maps := UnfilteredMix{}.Select(threeElements(), []string{"B"})
		require.Len(t, maps, 2)
		for _, c := range maps {
			require.Equal(t, map[dtc.Result]bool{dtc.Valid: true}, resultsOf(c["B"]))
			require.Len(t, c["A"], 4)
		}
	})

	t.Run("should keep a single map when nothing may vary", func(t *testing.T) {
		maps := UnfilteredMix{}.Select(threeElements(), []string{"A", "B", "C"})
		require.Len(t, maps, 1)
		require.Len(t, maps[0], 3)
	})
}

func TestTestPlanner_Make(t *testing.T) {
	t.Run("should combine every candidate map", func(t *testing.T) {
		planner := NewTestPlanner(JustOneInvalidMix{}, combination.IndexOfEach[UIETestPlan]{Index: 0}, random.New("p"), nil)
		plans := planner.Make(threeElements(), nil)
		require.Len(t, plans, 3)
		for i, target := range []string{"A", "B", "C"} {
			require.Equal(t, dtc.ValueLowest, plans[i][target].DataTestCase)
			require.True(t, plans[i].HasAnyInvalidResult())
			for _, v := range plans[i].Variables() {
				if v != target {
					require.Equal(t, dtc.ValueMin, plans[i][v].DataTestCase)
				}
			}
		}
	})

	t.Run("should keep a single valid plan for always valid variables", func(t *testing.T) {
		controller := gomock.NewController(t)
		mix := NewMockDataTestCaseMix(controller)
		mix.EXPECT().
			Select(gomock.Any(), []string{"B"}).
			DoAndReturn(func(analyses map[string]dtc.Analysis, _ []string) []combination.Candidates[UIETestPlan] {
				require.Len(t, analyses["B"], 1)
				for _, pair := range analyses["B"] {
					require.Equal(t, dtc.Valid, pair.Result)
				}
				require.Len(t, analyses["A"], len(dtc.All()))
				return nil
			})

		planner := NewTestPlanner(mix, combination.CartesianProduct[UIETestPlan]{}, random.New("p"), nil)
		require.Empty(t, planner.Make(threeElements(), []string{"B"}))
	})

	t.Run("should be reproducible for a seed", func(t *testing.T) {
		build := func() []TestPlan {
			planner := NewTestPlanner(UnfilteredMix{}, combination.ShuffledOneWise[UIETestPlan]{Random: random.New("s")}, random.New("s"), nil)
			return planner.Make(threeElements(), []string{"C"})
		}
		require.Equal(t, build(), build())
	})

	t.Run("should make one empty plan without variables", func(t *testing.T) {
		planner := NewTestPlanner(OnlyValidMix{}, combination.CartesianProduct[UIETestPlan]{}, random.New("p"), nil)
		plans := planner.Make(map[string]dtc.Analysis{}, nil)
		require.Equal(t, []TestPlan{{}}, plans)
	})
}

func TestNewMixAndStrategy(t *testing.T) {
	for _, name := range []string{MixOnlyValid, MixJustOneInvalid, MixOnlyInvalid, MixUnfiltered} {
		_, err := NewMix(name)
		require.NoError(t, err)
	}
	_, err := NewMix("some")
	require.Error(t, err)

	for _, name := range []string{CombinationCartesian, CombinationOneWise, CombinationShuffledOneWise, CombinationSingleRandom, CombinationIndex} {
		_, err := NewStrategy(name, 0, random.New(""))
		require.NoError(t, err)
	}
	_, err = NewStrategy("pairwise", 0, random.New(""))
	require.Error(t, err)
}
