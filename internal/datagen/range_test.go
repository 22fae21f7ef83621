package datagen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/random"
)

func TestRangeAnalyzer(t *testing.T) {
	t.Run("should find no values below the lowest one", func(t *testing.T) {
		a, err := NewRangeAnalyzer(models.ValueTypeString, int64(0), int64(10), 100)
		require.NoError(t, err)
		require.False(t, a.HasValuesBelowMin())
		require.True(t, a.HasValuesAboveMax())
	})

	t.Run("should find no values above the greatest one", func(t *testing.T) {
		a, err := NewRangeAnalyzer(models.ValueTypeString, int64(10), int64(100), 100)
		require.NoError(t, err)
		require.False(t, a.HasValuesAboveMax())
	})

	t.Run("should detect collapsed ranges", func(t *testing.T) {
		a, err := NewRangeAnalyzer(models.ValueTypeInteger, int64(5), int64(5), 0)
		require.NoError(t, err)
		require.True(t, a.HasValuesBetweenMinAndMax())
		require.True(t, a.JustAboveMinExceedsMax())
		require.True(t, a.JustBelowMaxPrecedesMin())
	})

	t.Run("should tell whether zero is in range", func(t *testing.T) {
		in, err := NewRangeAnalyzer(models.ValueTypeInteger, int64(-5), int64(5), 0)
		require.NoError(t, err)
		require.True(t, in.IsZeroBetweenMinAndMax())

		out, err := NewRangeAnalyzer(models.ValueTypeDouble, 1.5, 9.0, 0)
		require.NoError(t, err)
		require.False(t, out.IsZeroBetweenMinAndMax())
	})

	t.Run("should reject unsupported types", func(t *testing.T) {
		_, err := NewRangeAnalyzer(models.ValueType("color"), nil, nil, 0)
		require.Error(t, err)
	})
}

func TestListBasedDataGenerator(t *testing.T) {
	r := random.New("list")
	raw := func() any { return "other" }

	t.Run("should clamp selections on short lists", func(t *testing.T) {
		g := NewListBasedDataGenerator([]any{"only"}, r, raw, 0)
		require.Equal(t, "only", g.Second())
		require.Equal(t, "only", g.Penultimate())
	})

	t.Run("should give up when every candidate is in the set", func(t *testing.T) {
		g := NewListBasedDataGenerator([]any{"other"}, r, raw, 5)
		require.Nil(t, g.NotInSet())
	})

	t.Run("should compare values by text", func(t *testing.T) {
		g := NewListBasedDataGenerator([]any{"10"}, r, raw, 0)
		require.True(t, g.Contains(int64(10)))
	})

	t.Run("should select nothing from an empty list", func(t *testing.T) {
		g := NewListBasedDataGenerator(nil, r, raw, 0)
		require.Nil(t, g.First())
		require.Nil(t, g.Random())
		require.Equal(t, "other", g.NotInSet())
	})
}

func TestNegate(t *testing.T) {
	require.Equal(t, "[^abc]", negate("[abc]"))
	require.Equal(t, "[abc]", negate("[^abc]"))
	require.Equal(t, `[^\d{3}]`, negate(`^\d{3}$`))
}
