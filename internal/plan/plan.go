// Package plan turns per-element analyses into test plans: joint
// assignments of data test cases to UI Elements.
package plan

import (
	"maps"
	"slices"

	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
)

type (
	// UIETestPlan is the data test case chosen for one UI Element.
	UIETestPlan struct {
		DataTestCase dtc.DataTestCase
		Result       dtc.Result
		Otherwise    []*models.Step
	}

	// TestPlan maps UI Element variables to their plans.
	TestPlan map[string]UIETestPlan
)

func (p UIETestPlan) IsInvalid() bool {
	return p.Result == dtc.Invalid
}

// Variables returns the planned variables, sorted.
func (tp TestPlan) Variables() []string {
	return slices.Sorted(maps.Keys(tp))
}

// HasAnyInvalidResult reports whether any variable receives invalid data.
func (tp TestPlan) HasAnyInvalidResult() bool {
	for _, p := range tp {
		if p.IsInvalid() {
			return true
		}
	}
	return false
}

// plansOf returns the plans of an analysis with one of the results, in
// data test case order.
func plansOf(a dtc.Analysis, results ...dtc.Result) []UIETestPlan {
	var out []UIETestPlan
	for _, d := range a.Cases() {
		pair := a[d]
		if pair.Result == dtc.Incompatible || !slices.Contains(results, pair.Result) {
			continue
		}
		out = append(out, UIETestPlan{DataTestCase: d, Result: pair.Result, Otherwise: pair.Otherwise})
	}
	return out
}
