//go:generate mockgen -source=interfaces.go -destination=interface_mock.go -package=plan
package plan

import (
	"github.com/denizgursoy/senaryo/internal/combination"
	"github.com/denizgursoy/senaryo/internal/dtc"
)

type (
	// DataTestCaseMix decides which variables receive invalid data together.
	// Each returned map is the candidate pool of every variable for one
	// round of combination.
	DataTestCaseMix interface {
		Select(analyses map[string]dtc.Analysis, alwaysValid []string) []combination.Candidates[UIETestPlan]
	}
)
