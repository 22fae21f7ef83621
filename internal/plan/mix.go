package plan

import (
	"maps"
	"slices"

	"github.com/denizgursoy/senaryo/internal/combination"
	"github.com/denizgursoy/senaryo/internal/dtc"
)

type (
	// OnlyValidMix gives every variable valid data only.
	OnlyValidMix struct{}

	// JustOneInvalidMix isolates invalid inputs: one candidate map per
	// variable that can be invalid, where only that variable is invalid.
	JustOneInvalidMix struct{}

	// OnlyInvalidMix makes every variable invalid at once. Variables that
	// cannot be invalid, and those forced to stay valid, keep valid plans.
	OnlyInvalidMix struct{}

	// UnfilteredMix has the shape of JustOneInvalidMix without filtering:
	// one candidate map per variable that may vary, each keeping valid and
	// invalid plans of every variable for the combination strategy to choose.
	UnfilteredMix struct{}
)

func (OnlyValidMix) Select(analyses map[string]dtc.Analysis, _ []string) []combination.Candidates[UIETestPlan] {
	c := combination.Candidates[UIETestPlan]{}
	for v, a := range analyses {
		c[v] = plansOf(a, dtc.Valid)
	}
	return []combination.Candidates[UIETestPlan]{c}
}

func (JustOneInvalidMix) Select(analyses map[string]dtc.Analysis, alwaysValid []string) []combination.Candidates[UIETestPlan] {
	var out []combination.Candidates[UIETestPlan]
	for _, target := range slices.Sorted(maps.Keys(analyses)) {
		if slices.Contains(alwaysValid, target) {
			continue
		}
		invalid := plansOf(analyses[target], dtc.Invalid)
		if len(invalid) == 0 {
			continue
		}
		c := combination.Candidates[UIETestPlan]{target: invalid}
		for v, a := range analyses {
			if v != target {
				c[v] = plansOf(a, dtc.Valid)
			}
		}
		out = append(out, c)
	}
	return out
}

func (OnlyInvalidMix) Select(analyses map[string]dtc.Analysis, alwaysValid []string) []combination.Candidates[UIETestPlan] {
	c := combination.Candidates[UIETestPlan]{}
	for v, a := range analyses {
		if !slices.Contains(alwaysValid, v) {
			if invalid := plansOf(a, dtc.Invalid); len(invalid) > 0 {
				c[v] = invalid
				continue
			}
		}
		c[v] = plansOf(a, dtc.Valid)
	}
	return []combination.Candidates[UIETestPlan]{c}
}

func (UnfilteredMix) Select(analyses map[string]dtc.Analysis, alwaysValid []string) []combination.Candidates[UIETestPlan] {
	c := combination.Candidates[UIETestPlan]{}
	for v, a := range analyses {
		if slices.Contains(alwaysValid, v) {
			c[v] = plansOf(a, dtc.Valid)
			continue
		}
		c[v] = plansOf(a, dtc.Valid, dtc.Invalid)
	}

	var out []combination.Candidates[UIETestPlan]
	for _, target := range slices.Sorted(maps.Keys(analyses)) {
		if slices.Contains(alwaysValid, target) || len(c[target]) == 0 {
			continue
		}
		out = append(out, maps.Clone(c))
	}
	if len(out) == 0 {
		return []combination.Candidates[UIETestPlan]{c}
	}
	return out
}
