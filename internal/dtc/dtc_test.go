package dtc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/senaryo/internal/models"
)

func TestGroupOf(t *testing.T) {
	t.Run("should map every data test case to a group", func(t *testing.T) {
		counts := map[Group]int{}
		for _, d := range All() {
			counts[GroupOf(d)]++
		}
		require.Equal(t, 13, counts[GroupValue])
		require.Equal(t, 12, counts[GroupLength])
		require.Equal(t, 2, counts[GroupFormat])
		require.Equal(t, 6, counts[GroupSet])
		require.Equal(t, 2, counts[GroupRequired])
		require.Equal(t, 2, counts[GroupComputation])
	})

	t.Run("should place boundary cases in their group", func(t *testing.T) {
		require.Equal(t, GroupValue, GroupOf(ValueGreatest))
		require.Equal(t, GroupLength, GroupOf(LengthLowest))
		require.Equal(t, GroupSet, GroupOf(SetNotInSet))
		require.Equal(t, GroupRequired, GroupOf(RequiredFilled))
		require.Equal(t, GroupComputation, GroupOf(ComputationInvalid))
	})
}

func TestParse(t *testing.T) {
	for _, d := range All() {
		parsed, ok := Parse(d.String())
		require.True(t, ok)
		require.Equal(t, d, parsed)
	}
	_, ok := Parse("VALUE_UNKNOWN")
	require.False(t, ok)
}

func TestCompatibleWith(t *testing.T) {
	t.Run("should not offer value cases to strings", func(t *testing.T) {
		cases := CompatibleWith(models.ValueTypeString)
		require.NotContains(t, cases, ValueMin)
		require.Contains(t, cases, LengthMin)
		require.Contains(t, cases, FormatInvalid)
	})

	t.Run("should offer zero only to numbers", func(t *testing.T) {
		require.Contains(t, CompatibleWith(models.ValueTypeInteger), ValueZero)
		require.Contains(t, CompatibleWith(models.ValueTypeDouble), ValueZero)
		require.NotContains(t, CompatibleWith(models.ValueTypeDate), ValueZero)
		require.Contains(t, CompatibleWith(models.ValueTypeDate), ValueMin)
	})

	t.Run("should return nothing for an unknown type", func(t *testing.T) {
		require.Empty(t, CompatibleWith(models.ValueType("color")))
	})
}

func TestAnalysis_Cases(t *testing.T) {
	a := Analysis{SetNotInSet: {Result: Invalid}, ValueMin: {Result: Valid}}
	require.Equal(t, []DataTestCase{ValueMin, SetNotInSet}, a.Cases())
}
