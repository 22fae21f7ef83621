package combination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/senaryo/internal/random"
)

func candidates() Candidates[int] {
	return Candidates[int]{
		"a": {1, 2},
		"b": {10, 20, 30},
		"c": {},
	}
}

func TestCartesianProduct_Combine(t *testing.T) {
	t.Run("should combine every candidate with every other", func(t *testing.T) {
		got := CartesianProduct[int]{}.Combine(candidates())
		want := []Combination[int]{
			{"a": 1, "b": 10}, {"a": 1, "b": 20}, {"a": 1, "b": 30},
			{"a": 2, "b": 10}, {"a": 2, "b": 20}, {"a": 2, "b": 30},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should return one empty combination without variables", func(t *testing.T) {
		got := CartesianProduct[int]{}.Combine(Candidates[int]{})
		require.Equal(t, []Combination[int]{{}}, got)
	})
}

func TestOneWise_Combine(t *testing.T) {
	strategies := map[string]Strategy[int]{
		"one-wise":          OneWise[int]{Random: random.New("1")},
		"shuffled one-wise": ShuffledOneWise[int]{Random: random.New("1")},
	}
	for name, s := range strategies {
		t.Run("should cover every candidate with "+name, func(t *testing.T) {
			got := s.Combine(candidates())
			require.Len(t, got, 3)

			seen := map[string]map[int]bool{"a": {}, "b": {}}
			for _, c := range got {
				require.Len(t, c, 2)
				for v, value := range c {
					seen[v][value] = true
				}
			}
			require.Len(t, seen["a"], 2)
			require.Len(t, seen["b"], 3)
		})
	}

	t.Run("should keep the declared order without shuffling", func(t *testing.T) {
		got := OneWise[int]{Random: random.New("1")}.Combine(candidates())
		require.Equal(t, 1, got[0]["a"])
		require.Equal(t, 2, got[1]["a"])
		require.Equal(t, []int{10, 20, 30}, []int{got[0]["b"], got[1]["b"], got[2]["b"]})
	})

	t.Run("should be reproducible for a seed", func(t *testing.T) {
		first := ShuffledOneWise[int]{Random: random.New("seed")}.Combine(candidates())
		second := ShuffledOneWise[int]{Random: random.New("seed")}.Combine(candidates())
		require.Equal(t, first, second)
	})
}

func TestSingleRandomOfEach_Combine(t *testing.T) {
	got := SingleRandomOfEach[int]{Random: random.New("x")}.Combine(candidates())
	require.Len(t, got, 1)
	require.Contains(t, []int{1, 2}, got[0]["a"])
	require.Contains(t, []int{10, 20, 30}, got[0]["b"])
	require.NotContains(t, got[0], "c")
}

func TestIndexOfEach_Combine(t *testing.T) {
	t.Run("should pick the candidate at the index", func(t *testing.T) {
		got := IndexOfEach[int]{Index: 1}.Combine(candidates())
		require.Equal(t, []Combination[int]{{"a": 2, "b": 20}}, got)
	})

	t.Run("should clamp to the last candidate", func(t *testing.T) {
		got := IndexOfEach[int]{Index: 5}.Combine(candidates())
		require.Equal(t, []Combination[int]{{"a": 2, "b": 30}}, got)
	})
}
