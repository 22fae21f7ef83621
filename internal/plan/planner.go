package plan

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/denizgursoy/senaryo/internal/combination"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/random"
)

// Mix and combination names accepted by NewMix and NewStrategy.
const (
	MixOnlyValid      = "only-valid"
	MixJustOneInvalid = "just-one-invalid"
	MixOnlyInvalid    = "only-invalid"
	MixUnfiltered     = "unfiltered"

	CombinationCartesian       = "cartesian"
	CombinationOneWise         = "one-wise"
	CombinationShuffledOneWise = "shuffled-one-wise"
	CombinationSingleRandom    = "single-random"
	CombinationIndex           = "index"
)

// TestPlanner makes test plans with a mix and a combination strategy.
type TestPlanner struct {
	mix      DataTestCaseMix
	strategy combination.Strategy[UIETestPlan]
	random   *random.Random
	logger   *slog.Logger
}

func NewTestPlanner(mix DataTestCaseMix, strategy combination.Strategy[UIETestPlan], r *random.Random, logger *slog.Logger) *TestPlanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestPlanner{mix: mix, strategy: strategy, random: r, logger: logger}
}

// Make returns the test plans of the analyses. Variables in alwaysValid
// get a single valid plan chosen at random.
func (p *TestPlanner) Make(analyses map[string]dtc.Analysis, alwaysValid []string) []TestPlan {
	prepared := make(map[string]dtc.Analysis, len(analyses))
	for _, v := range slices.Sorted(maps.Keys(analyses)) {
		a := analyses[v]
		if slices.Contains(alwaysValid, v) {
			a = p.keepOneValid(a)
		}
		prepared[v] = a
	}

	var plans []TestPlan
	for _, candidates := range p.mix.Select(prepared, alwaysValid) {
		for _, c := range p.strategy.Combine(candidates) {
			plans = append(plans, TestPlan(c))
		}
	}

	p.logger.Debug("made test plans",
		slog.Int("variables", len(analyses)),
		slog.Int("plans", len(plans)))
	return plans
}

func (p *TestPlanner) keepOneValid(a dtc.Analysis) dtc.Analysis {
	var valid []dtc.DataTestCase
	for _, d := range a.Cases() {
		if a[d].Result == dtc.Valid {
			valid = append(valid, d)
		}
	}
	kept := dtc.Analysis{}
	if len(valid) == 0 {
		return kept
	}
	d := valid[0]
	if len(valid) > 1 {
		d = valid[p.random.IntN(len(valid))]
	}
	kept[d] = a[d]
	return kept
}

// NewMix creates a mix by name.
func NewMix(name string) (DataTestCaseMix, error) {
	switch strings.ToLower(name) {
	case MixOnlyValid:
		return OnlyValidMix{}, nil
	case MixJustOneInvalid:
		return JustOneInvalidMix{}, nil
	case MixOnlyInvalid:
		return OnlyInvalidMix{}, nil
	case MixUnfiltered:
		return UnfilteredMix{}, nil
	}
	return nil, fmt.Errorf("unknown mix %q", name)
}

// NewStrategy creates a combination strategy by name. index is only used
// by the index strategy.
func NewStrategy(name string, index int, r *random.Random) (combination.Strategy[UIETestPlan], error) {
	switch strings.ToLower(name) {
	case CombinationCartesian:
		return combination.CartesianProduct[UIETestPlan]{}, nil
	case CombinationOneWise:
		return combination.OneWise[UIETestPlan]{Random: r}, nil
	case CombinationShuffledOneWise:
		return combination.ShuffledOneWise[UIETestPlan]{Random: r}, nil
	case CombinationSingleRandom:
		return combination.SingleRandomOfEach[UIETestPlan]{Random: r}, nil
	case CombinationIndex:
		return combination.IndexOfEach[UIETestPlan]{Index: index}, nil
	}
	return nil, fmt.Errorf("unknown combination %q", name)
}
