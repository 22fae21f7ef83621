package testcase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/denizgursoy/senaryo/internal/models"
)

// namespace of the name-based test case ids.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/denizgursoy/senaryo/testcase"))

type (
	// Source is the variant test cases are generated from, with its 1-based
	// position in the feature.
	Source struct {
		Scenario      *models.Scenario
		Variant       *models.Variant
		ScenarioIndex int
		VariantIndex  int
	}

	TestCaseGenerator struct {
		pre    *PreTestCaseGenerator
		logger *slog.Logger
	}
)

func NewTestCaseGenerator(pre *PreTestCaseGenerator, logger *slog.Logger) *TestCaseGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &TestCaseGenerator{pre: pre, logger: logger}
}

// Ignored reports whether the scenario or the variant is tagged to be left
// out of generation.
func (s Source) Ignored() bool {
	return (s.Scenario != nil && models.HasTag(s.Scenario.Tags, models.TagIgnore)) ||
		(s.Variant != nil && models.HasTag(s.Variant.Tags, models.TagIgnore))
}

// Generate returns the test cases of a variant, one per test plan.
func (g *TestCaseGenerator) Generate(ctx context.Context, src Source, gc *models.GenContext, planners []Planner) []*models.TestCase {
	if src.Variant == nil || src.Ignored() {
		return nil
	}

	pres := g.pre.Generate(ctx, src.Variant.Steps, gc, planners)
	out := make([]*models.TestCase, 0, len(pres))
	for i, pre := range pres {
		tc := &models.TestCase{
			ID:         testCaseID(gc.FeatureName(), src, i+1),
			Name:       fmt.Sprintf("%s - %d", src.Variant.Name, i+1),
			Language:   gc.Language(),
			ShouldFail: pre.ShouldFail(),
			Sentences:  sentencesOf(pre),
			Location:   src.Variant.Location,
		}
		tc.AddTag(models.Tag{Name: models.TagGenerated})
		if tc.ShouldFail {
			tc.AddTag(models.Tag{Name: models.TagFail})
		}
		tc.AddReferenceTags(src.ScenarioIndex, src.VariantIndex)
		out = append(out, tc)
	}

	g.logger.Debug("generated test cases",
		slog.String("variant", src.Variant.Name),
		slog.Int("testCases", len(out)))
	return out
}

// sentencesOf replaces everything from the last Then step on with the
// oracles, when there are oracles.
func sentencesOf(pre *PreTestCase) []*models.Step {
	if len(pre.Oracles) == 0 {
		return pre.Steps
	}
	end := len(pre.Steps)
	for i := len(pre.Steps) - 1; i >= 0; i-- {
		if pre.Steps[i].NodeType == models.NodeThen {
			end = i
			break
		}
	}
	sentences := make([]*models.Step, 0, end+len(pre.Oracles))
	sentences = append(sentences, pre.Steps[:end]...)
	return append(sentences, pre.Oracles...)
}

func testCaseID(feature string, src Source, n int) string {
	name := fmt.Sprintf("%s/%d/%d/%d", feature, src.ScenarioIndex, src.VariantIndex, n)
	return uuid.NewSHA1(namespace, []byte(name)).String()
}
