//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=testcase
package testcase

import (
	"context"

	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/plan"
	"github.com/denizgursoy/senaryo/internal/uiegen"
)

type (
	// StepAnnotator recognizes the entities of steps again after their
	// content changed.
	StepAnnotator interface {
		Annotate(language string, steps []*models.Step, problems *models.Problems)
	}

	UIElementAnalyzer interface {
		AnalyzeUIElement(uie *models.UIElement, gc *models.GenContext) dtc.Analysis
	}

	Planner interface {
		Make(analyses map[string]dtc.Analysis, alwaysValid []string) []plan.TestPlan
	}

	ValueGenerator interface {
		Generate(ctx context.Context, variable string, tp plan.TestPlan, values uiegen.Values, gc *models.GenContext) any
	}
)
