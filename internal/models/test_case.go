package models

import "strconv"

// TestCase is a generated, concrete test case.
type TestCase struct {
	ID         string
	Name       string
	Language   string
	Tags       []Tag
	Sentences  []*Step
	ShouldFail bool
	Location   Location

	// 1-based indexes of the scenario and variant it was generated from.
	DeclaredScenarioIndex int
	DeclaredVariantIndex  int
}

// AddTag appends a tag unless one with the same name already exists.
func (tc *TestCase) AddTag(tag Tag) {
	if !HasTag(tc.Tags, tag.Name) {
		tc.Tags = append(tc.Tags, tag)
	}
}

// AddReferenceTags records the scenario and variant a test case refers to.
// It is idempotent.
func (tc *TestCase) AddReferenceTags(scenarioIndex, variantIndex int) {
	tc.DeclaredScenarioIndex = scenarioIndex
	tc.DeclaredVariantIndex = variantIndex
	tc.AddTag(Tag{Name: TagScenario, Content: []string{strconv.Itoa(scenarioIndex)}})
	tc.AddTag(Tag{Name: TagVariant, Content: []string{strconv.Itoa(variantIndex)}})
}
