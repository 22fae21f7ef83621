package gherkin_parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	tagexpressions "github.com/cucumber/tag-expressions/go/v6"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/nlp"
)

const (
	FeatureExtension = ".feature"
)

// SearchFeatureFilesIn returns the feature files of every directory,
// recursively, and of every glob pattern such as "specs/**/login*.feature".
// Results are sorted and free of duplicates.
func SearchFeatureFilesIn(locations []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, location := range locations {
		pattern := location
		if info, err := os.Stat(location); err == nil && info.IsDir() {
			pattern = filepath.Join(location, "**", "*"+FeatureExtension)
		} else if !strings.ContainsAny(location, "*?[{") {
			if err != nil {
				return nil, err
			}
			featureFiles = append(featureFiles, location)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", location, err)
		}
		for _, m := range matches {
			if strings.HasSuffix(m, FeatureExtension) {
				featureFiles = append(featureFiles, m)
			}
		}
	}

	slices.Sort(featureFiles)
	return slices.Compact(featureFiles), nil
}

func ParseGherkinFile(reader io.Reader) (*messages.GherkinDocument, error) {
	id := (&messages.Incrementing{}).NewId
	document, err := gherkin.ParseGherkinDocument(reader, id)
	if err != nil {
		return nil, err
	}
	return document, nil
}

// ReadFeature parses a feature file into a feature whose scenarios hold one
// variant per pickle: a plain scenario gives a single variant and an
// outline one per example row.
func ReadFeature(path string) (*models.Feature, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	document, err := ParseGherkinFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return FeatureOf(document, path), nil
}

// FeatureOf converts a parsed document. Background steps are part of every
// variant.
func FeatureOf(document *messages.GherkinDocument, path string) *models.Feature {
	if document == nil || document.Feature == nil {
		return nil
	}
	f := document.Feature
	feature := &models.Feature{
		Name:     f.Name,
		Language: f.Language,
		Location: locationOf(f.Location, path),
	}

	id := (&messages.Incrementing{}).NewId
	pickles := gherkin.Pickles(*document, path, id)
	steps := astStepsOf(f)
	dict := nlp.DictionaryOf(f.Language)

	for _, scenario := range scenariosOf(f) {
		s := &models.Scenario{
			Name:     scenario.Name,
			Tags:     tagsOf(scenario.Tags),
			Location: locationOf(scenario.Location, path),
		}
		for _, pickle := range pickles {
			if len(pickle.AstNodeIds) == 0 || pickle.AstNodeIds[0] != scenario.Id {
				continue
			}
			s.Variants = append(s.Variants, variantOf(pickle, scenario, steps, dict, path))
		}
		feature.Scenarios = append(feature.Scenarios, s)
	}
	return feature
}

// FilterByTags keeps the variants whose tags, inherited ones included,
// match the expression. Scenarios left without variants are dropped. An
// empty expression keeps everything.
func FilterByTags(scenarios []*models.Scenario, expression string) ([]*models.Scenario, error) {
	if strings.TrimSpace(expression) == "" {
		return scenarios, nil
	}
	evaluator, err := tagexpressions.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid tag expression %q: %w", expression, err)
	}

	filtered := make([]*models.Scenario, 0, len(scenarios))
	for _, s := range scenarios {
		kept := *s
		kept.Variants = nil
		for _, v := range s.Variants {
			if evaluator.Evaluate(tagNames(v.Tags)) {
				kept.Variants = append(kept.Variants, v)
			}
		}
		if len(kept.Variants) > 0 {
			filtered = append(filtered, &kept)
		}
	}
	return filtered, nil
}

func variantOf(pickle *messages.Pickle, scenario *messages.Scenario, steps map[string]*messages.Step, dict *nlp.Dictionary, path string) *models.Variant {
	v := &models.Variant{
		Name:     pickle.Name,
		Location: locationOf(scenario.Location, path),
	}
	if len(pickle.AstNodeIds) > 1 {
		if row := exampleRow(scenario, pickle.AstNodeIds[len(pickle.AstNodeIds)-1]); row != nil {
			v.Location = locationOf(row.Location, path)
		}
	}
	for _, t := range pickle.Tags {
		v.Tags = append(v.Tags, ParseTag(t.Name))
	}

	previous := models.NodeGiven
	for _, ps := range pickle.Steps {
		step := &models.Step{Content: ps.Text}
		if len(ps.AstNodeIds) > 0 {
			if ast, ok := steps[ps.AstNodeIds[0]]; ok {
				step.Location = locationOf(ast.Location, path)
				if keyword := strings.TrimSpace(ast.Keyword); keyword != "*" {
					step.NodeType = nodeTypeOf(ast, dict, previous)
					step.Content = keyword + " " + ps.Text
				} else {
					// a bullet continues the previous step
					step.NodeType = models.NodeAnd
					if len(v.Steps) == 0 {
						step.NodeType = models.NodeGiven
					}
					step.Content = dict.WithKeyword(ps.Text, step.NodeType)
				}
			}
		}
		if step.NodeType == "" {
			step.NodeType = nodeTypeOfPickle(ps.Type)
			step.Content = dict.WithKeyword(ps.Text, step.NodeType)
		}
		if step.NodeType != models.NodeAnd && step.NodeType != models.NodeBut {
			previous = step.NodeType
		}
		v.Steps = append(v.Steps, step)
	}
	return v
}

func nodeTypeOf(step *messages.Step, dict *nlp.Dictionary, previous models.NodeType) models.NodeType {
	if nodeType, _, ok := dict.SplitKeyword(step.Keyword); ok {
		return nodeType
	}
	switch step.KeywordType {
	case messages.StepKeywordType_CONTEXT:
		return models.NodeGiven
	case messages.StepKeywordType_ACTION:
		return models.NodeWhen
	case messages.StepKeywordType_OUTCOME:
		return models.NodeThen
	case messages.StepKeywordType_CONJUNCTION:
		return models.NodeAnd
	}
	return previous
}

func nodeTypeOfPickle(t messages.PickleStepType) models.NodeType {
	switch t {
	case messages.PickleStepType_ACTION:
		return models.NodeWhen
	case messages.PickleStepType_OUTCOME:
		return models.NodeThen
	}
	return models.NodeGiven
}

// scenariosOf lists the scenarios of the feature and of its rules in
// document order.
func scenariosOf(f *messages.Feature) []*messages.Scenario {
	var out []*messages.Scenario
	for _, child := range f.Children {
		if child.Scenario != nil {
			out = append(out, child.Scenario)
		}
		if child.Rule != nil {
			for _, rc := range child.Rule.Children {
				if rc.Scenario != nil {
					out = append(out, rc.Scenario)
				}
			}
		}
	}
	return out
}

func astStepsOf(f *messages.Feature) map[string]*messages.Step {
	steps := make(map[string]*messages.Step)
	add := func(list []*messages.Step) {
		for _, s := range list {
			steps[s.Id] = s
		}
	}
	for _, child := range f.Children {
		if child.Background != nil {
			add(child.Background.Steps)
		}
		if child.Scenario != nil {
			add(child.Scenario.Steps)
		}
		if child.Rule != nil {
			for _, rc := range child.Rule.Children {
				if rc.Background != nil {
					add(rc.Background.Steps)
				}
				if rc.Scenario != nil {
					add(rc.Scenario.Steps)
				}
			}
		}
	}
	return steps
}

func exampleRow(scenario *messages.Scenario, id string) *messages.TableRow {
	for _, examples := range scenario.Examples {
		for _, row := range examples.TableBody {
			if row.Id == id {
				return row
			}
		}
	}
	return nil
}

// ParseTag splits "@scenario(1, 2)" into its name and content.
func ParseTag(raw string) models.Tag {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "@")
	open := strings.Index(raw, "(")
	if open < 0 || !strings.HasSuffix(raw, ")") {
		return models.Tag{Name: raw}
	}
	tag := models.Tag{Name: raw[:open]}
	for _, c := range strings.Split(raw[open+1:len(raw)-1], ",") {
		if c = strings.TrimSpace(c); c != "" {
			tag.Content = append(tag.Content, c)
		}
	}
	return tag
}

func tagsOf(tags []*messages.Tag) []models.Tag {
	out := make([]models.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, ParseTag(t.Name))
	}
	return out
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.String())
	}
	return names
}

func locationOf(l *messages.Location, path string) models.Location {
	loc := models.Location{Filepath: path}
	if l == nil {
		return loc
	}
	loc.Line = int(l.Line)
	loc.Column = int(l.Column)
	return loc
}
