package datagen

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/random"
)

func TestBoundaryLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	g := NewDataGenerator(random.New("laws"))
	value := func(d dtc.DataTestCase, lo, hi int64) int64 {
		v, err := g.Generate(context.Background(), d, Config{ValueType: models.ValueTypeInteger, Min: lo, Max: hi})
		if err != nil {
			return 0
		}
		return v.(int64)
	}

	bounds := gopter.CombineGens(gen.Int64Range(-1_000_000, 1_000_000), gen.Int64Range(0, 1_000_000)).
		Map(func(v []any) [2]int64 {
			lo := v[0].(int64)
			return [2]int64{lo, lo + v[1].(int64)}
		})

	properties.Property("min and max are returned as declared", prop.ForAll(
		func(b [2]int64) bool {
			return value(dtc.ValueMin, b[0], b[1]) == b[0] && value(dtc.ValueMax, b[0], b[1]) == b[1]
		},
		bounds,
	))

	properties.Property("values below min and above max leave the range", prop.ForAll(
		func(b [2]int64) bool {
			return value(dtc.ValueJustBelowMin, b[0], b[1]) < b[0] &&
				value(dtc.ValueRandomBelowMin, b[0], b[1]) < b[0] &&
				value(dtc.ValueJustAboveMax, b[0], b[1]) > b[1] &&
				value(dtc.ValueRandomAboveMax, b[0], b[1]) > b[1]
		},
		bounds,
	))

	properties.Property("median and random values stay in the range", prop.ForAll(
		func(b [2]int64) bool {
			median := value(dtc.ValueMedian, b[0], b[1])
			between := value(dtc.ValueRandomBetweenMinMax, b[0], b[1])
			return median >= b[0] && median <= b[1] && between >= b[0] && between <= b[1]
		},
		bounds,
	))

	properties.Property("lengths follow the same laws", prop.ForAll(
		func(lo, span int64) bool {
			cfg := Config{ValueType: models.ValueTypeString, Min: lo, Max: lo + span}
			minimum, _ := g.Generate(context.Background(), dtc.LengthMin, cfg)
			above, _ := g.Generate(context.Background(), dtc.LengthJustAboveMax, cfg)
			between, _ := g.Generate(context.Background(), dtc.LengthRandomBetweenMinMax, cfg)
			n := int64(len(between.(string)))
			return int64(len(minimum.(string))) == lo &&
				int64(len(above.(string))) == lo+span+1 &&
				n >= lo && n <= lo+span
		},
		gen.Int64Range(1, 100),
		gen.Int64Range(0, 100),
	))

	properties.TestingRun(t)
}

func TestRegexRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	expressions := gen.OneConstOf(
		`[a-z]{3}`,
		`\d{2,4}`,
		`(abc|def)-[0-9]+`,
		`[A-Z][a-z]*`,
		`[a-f]{2}[0-9]{2}`,
		`\d{3}\.\d{3}\.\d{3}-\d{2}`,
	)

	properties.Property("valid values match and invalid ones do not", prop.ForAll(
		func(expression string, seed string) bool {
			re, err := NewRegexBasedDataGenerator(expression, random.New(seed), 0, 0, 0)
			if err != nil {
				return false
			}
			valid, err := re.Valid()
			if err != nil || !re.Matches(valid) {
				return false
			}
			invalid, err := re.Invalid()
			return err == nil && !re.Matches(invalid)
		},
		expressions,
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
