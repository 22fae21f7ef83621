// Package testcase turns the steps of a variant into concrete test cases:
// steps get values injected according to test plans, and oracles replace
// the expected results when invalid data is entered.
package testcase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/nlp"
	"github.com/denizgursoy/senaryo/internal/plan"
	"github.com/denizgursoy/senaryo/internal/random"
	"github.com/denizgursoy/senaryo/internal/uiegen"
)

type (
	// PreTestCase is a test plan applied to the steps of a variant.
	PreTestCase struct {
		Plan    plan.TestPlan
		Steps   []*models.Step
		Oracles []*models.Step

		// Unguarded holds the variables that receive invalid data and have
		// no oracle for it.
		Unguarded []string
	}

	PreTestCaseGenerator struct {
		annotator StepAnnotator
		analyzer  UIElementAnalyzer
		values    ValueGenerator
		random    *random.Random
		logger    *slog.Logger
	}

	Option func(*PreTestCaseGenerator)

	// injection carries what rewriting steps under a test plan needs and
	// collects the oracles it finds.
	injection struct {
		plan      plan.TestPlan
		values    uiegen.Values
		oracles   []*models.Step
		unguarded []string
		seen      map[string]bool
	}
)

// HasThen reports whether any step states an expected result.
func (p *PreTestCase) HasThen() bool {
	return slices.ContainsFunc(p.Steps, func(s *models.Step) bool {
		return s.NodeType == models.NodeThen
	})
}

// ShouldFail reports whether the test case is expected to fail: it checks
// results and enters invalid data nothing tells the outcome of.
func (p *PreTestCase) ShouldFail() bool {
	return p.HasThen() && len(p.Unguarded) > 0
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *PreTestCaseGenerator) {
		g.logger = logger
	}
}

func NewPreTestCaseGenerator(
	annotator StepAnnotator,
	analyzer UIElementAnalyzer,
	values ValueGenerator,
	r *random.Random,
	opts ...Option,
) *PreTestCaseGenerator {
	g := &PreTestCaseGenerator{
		annotator: annotator,
		analyzer:  analyzer,
		values:    values,
		random:    r,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate applies every plan the planners make to the steps. The steps are
// not modified.
func (g *PreTestCaseGenerator) Generate(ctx context.Context, steps []*models.Step, gc *models.GenContext, planners []Planner) []*PreTestCase {
	dict := nlp.DictionaryOf(gc.Language())
	prepared := g.prepare(steps, gc, dict)

	referenced := g.referencedUIElements(prepared, gc)
	if len(referenced) == 0 {
		return []*PreTestCase{{
			Plan:  plan.TestPlan{},
			Steps: g.replaceUIElements(prepared, gc, dict, nil),
		}}
	}

	reachable := gc.Spec.ExtractUIElementsFromDocumentAndImports(gc.Doc)
	for _, uie := range referenced {
		if !slices.Contains(reachable, uie) {
			reachable = append(reachable, uie)
		}
	}
	var alwaysValid []string
	for _, uie := range reachable {
		if !slices.Contains(referenced, uie) {
			alwaysValid = append(alwaysValid, uie.Variable())
		}
	}

	analyses := make(map[string]dtc.Analysis, len(reachable))
	for _, uie := range reachable {
		analyses[uie.Variable()] = g.analyzer.AnalyzeUIElement(uie, gc)
	}

	var plans []plan.TestPlan
	for _, p := range planners {
		plans = append(plans, p.Make(analyses, alwaysValid)...)
	}

	order, err := uiegen.SortByDependencies(reachable, gc.Spec, gc.Doc)
	if err != nil {
		gc.AddError(err)
	}

	out := make([]*PreTestCase, 0, len(plans))
	for _, tp := range plans {
		inj := &injection{plan: tp, values: uiegen.Values{}, seen: map[string]bool{}}
		for _, variable := range order {
			if _, ok := tp[variable]; ok {
				g.values.Generate(ctx, variable, tp, inj.values, gc)
			}
		}

		rewritten := g.replaceUIElements(prepared, gc, dict, inj)
		inj.markUnguarded()
		g.normalizeOracles(inj.oracles, gc, dict)
		out = append(out, &PreTestCase{
			Plan:      tp,
			Steps:     rewritten,
			Oracles:   inj.oracles,
			Unguarded: inj.unguarded,
		})
	}

	g.logger.Debug("generated pre test cases",
		slog.String("feature", gc.FeatureName()),
		slog.Int("uiElements", len(reachable)),
		slog.Int("plans", len(plans)))
	return out
}

// rewrite runs steps through constant resolution, UI Literal filling and
// UI Element replacement. Values are injected only when inj is not nil.
func (g *PreTestCaseGenerator) rewrite(steps []*models.Step, gc *models.GenContext, dict *nlp.Dictionary, inj *injection) []*models.Step {
	return g.replaceUIElements(g.prepare(steps, gc, dict), gc, dict, inj)
}

// prepare clones the steps, resolves constants and fills UI Literals.
func (g *PreTestCaseGenerator) prepare(steps []*models.Step, gc *models.GenContext, dict *nlp.Dictionary) []*models.Step {
	cloned := models.CloneSteps(steps)

	var unannotated []*models.Step
	for _, s := range cloned {
		if s.NLPResult == nil {
			unannotated = append(unannotated, s)
		}
	}
	if len(unannotated) > 0 {
		g.annotator.Annotate(gc.Language(), unannotated, gc.Problems)
	}

	g.resolveConstants(cloned, gc)
	return g.fillUILiterals(cloned, gc, dict)
}

func (g *PreTestCaseGenerator) resolveConstants(steps []*models.Step, gc *models.GenContext) {
	var changed []*models.Step
	for _, s := range steps {
		constants := s.EntitiesOf(models.EntityConstant)
		if len(constants) == 0 {
			continue
		}

		var (
			b     strings.Builder
			names []string
			last  int
		)
		for _, e := range constants {
			c := gc.Spec.ConstantByName(e.Value)
			if c == nil {
				gc.AddError(fmt.Errorf("%s:%d: %w: %s", s.Location.Filepath, s.Location.Line, uiegen.ErrConstantNotFound, e.Value))
				continue
			}
			b.WriteString(s.Content[last:e.Position])
			b.WriteString(constantText(c))
			last = e.Position + e.Length
			names = append(names, "["+c.Name+"]")
		}
		b.WriteString(s.Content[last:])

		if b.String() != s.Content {
			s.Content = b.String()
			s.AddComment(strings.Join(names, ", "))
			changed = append(changed, s)
		}
	}
	if len(changed) > 0 {
		g.annotator.Annotate(gc.Language(), changed, gc.Problems)
	}
}

// fillUILiterals splits data input steps with many targets into one step
// per target and gives bare UI Literals a random value. UI Elements keep
// their references until a plan is applied.
func (g *PreTestCaseGenerator) fillUILiterals(steps []*models.Step, gc *models.GenContext, dict *nlp.Dictionary) []*models.Step {
	out := make([]*models.Step, 0, len(steps))
	for _, s := range steps {
		if !nlp.IsDataInputAction(s.Action()) || s.HasEntity(models.EntityKindValue, models.EntityNumber) {
			out = append(out, s)
			continue
		}

		split := []*models.Step{s}
		if targets := targetsOf(s); len(targets) > 1 {
			split = splitStep(s, targets, dict)
			g.annotator.Annotate(gc.Language(), split, gc.Problems)
		}

		var filled []*models.Step
		for _, part := range split {
			literals := part.EntitiesOf(models.EntityUILiteral)
			if len(literals) != 1 || part.HasEntity(models.EntityUIElement) {
				continue
			}
			value := datagen.FormatValue(g.random.String(1, datagen.DefaultFilledLength), models.ValueTypeString)
			part.Content = insertAfter(part.Content, literals[0], " "+dict.Connector+" "+value)
			part.AddComment(dict.Valid + ": " + dict.RandomValue)
			filled = append(filled, part)
		}
		if len(filled) > 0 {
			g.annotator.Annotate(gc.Language(), filled, gc.Problems)
		}
		out = append(out, split...)
	}
	return out
}

// referencedUIElements returns the UI Elements the steps refer to, in order
// of first reference.
func (g *PreTestCaseGenerator) referencedUIElements(steps []*models.Step, gc *models.GenContext) []*models.UIElement {
	var out []*models.UIElement
	for _, s := range steps {
		for _, e := range s.EntitiesOf(models.EntityUIElement) {
			uie := gc.Spec.UIElementByVariable(e.Value, gc.Doc)
			if uie == nil {
				gc.AddError(fmt.Errorf("%s:%d: %w: %s", s.Location.Filepath, s.Location.Line, uiegen.ErrUIElementNotFound, e.Value))
				continue
			}
			if !slices.Contains(out, uie) {
				out = append(out, uie)
			}
		}
	}
	return out
}

// replaceUIElements writes UI Literals in place of UI Element references.
// With an injection, data input steps without a value also receive the
// generated values and the oracles of invalid ones are collected.
func (g *PreTestCaseGenerator) replaceUIElements(steps []*models.Step, gc *models.GenContext, dict *nlp.Dictionary, inj *injection) []*models.Step {
	out := make([]*models.Step, 0, len(steps))
	for _, original := range steps {
		s := original.Clone()
		elements := s.EntitiesOf(models.EntityUIElement)
		if len(elements) == 0 {
			out = append(out, s)
			continue
		}

		inject := inj != nil &&
			nlp.IsDataInputAction(s.Action()) &&
			!s.HasEntity(models.EntityKindValue, models.EntityNumber)

		var (
			b        strings.Builder
			comments []string
			last     int
		)
		for _, e := range elements {
			b.WriteString(s.Content[last:e.Position])
			last = e.Position + e.Length

			uie := gc.Spec.UIElementByVariable(e.Value, gc.Doc)
			if uie == nil {
				b.WriteString(s.Content[e.Position:last])
				continue
			}
			b.WriteString(uie.Literal())
			if !inject {
				continue
			}

			b.WriteString(" " + dict.Connector + " " + g.valueOf(uie, inj, gc))
			if tp, ok := inj.plan[uie.Variable()]; ok {
				comments = append(comments, fmt.Sprintf("{%s}, %s: %s",
					e.Value, dict.ExpectedResult(tp.IsInvalid()), dict.DisplayName(tp.DataTestCase)))
				if tp.IsInvalid() {
					g.collectOracles(uie, tp, inj, gc, dict)
				}
			}
		}
		b.WriteString(s.Content[last:])

		s.Content = b.String()
		for _, c := range comments {
			s.AddComment(c)
		}
		out = append(out, s)
	}
	return out
}

func (g *PreTestCaseGenerator) valueOf(uie *models.UIElement, inj *injection, gc *models.GenContext) string {
	v, ok := inj.values[uie.Variable()]
	if !ok || v == nil {
		gc.AddWarning(fmt.Errorf("no value generated for %s, using an empty one", uie.Variable()))
		return datagen.FormatValue("", models.ValueTypeString)
	}
	return datagen.FormatValue(v, uie.DataType())
}

func (g *PreTestCaseGenerator) collectOracles(uie *models.UIElement, tp plan.UIETestPlan, inj *injection, gc *models.GenContext, dict *nlp.Dictionary) {
	variable := uie.Variable()
	if inj.seen[variable] {
		return
	}
	inj.seen[variable] = true

	if len(tp.Otherwise) == 0 {
		inj.unguarded = append(inj.unguarded, variable)
		return
	}
	oracles := g.rewrite(tp.Otherwise, gc, dict, nil)
	for _, o := range oracles {
		o.AddComment("from " + uie.Literal())
	}
	inj.oracles = append(inj.oracles, oracles...)
}

// markUnguarded records the invalid variables whose values never reached a
// step. No oracle covers them.
func (inj *injection) markUnguarded() {
	for _, variable := range inj.plan.Variables() {
		if inj.plan[variable].IsInvalid() && !inj.seen[variable] {
			inj.seen[variable] = true
			inj.unguarded = append(inj.unguarded, variable)
		}
	}
}

// normalizeOracles makes the first oracle a Then and the others And.
func (g *PreTestCaseGenerator) normalizeOracles(oracles []*models.Step, gc *models.GenContext, dict *nlp.Dictionary) {
	if len(oracles) == 0 {
		return
	}
	for i, o := range oracles {
		nodeType := models.NodeAnd
		if i == 0 {
			nodeType = models.NodeThen
		}
		o.NodeType = nodeType
		o.Content = dict.WithKeyword(o.Content, nodeType)
	}
	g.annotator.Annotate(gc.Language(), oracles, gc.Problems)
}

// targetsOf returns the UI Literals and UI Elements of a step in order.
func targetsOf(s *models.Step) []models.Entity {
	targets := append(s.EntitiesOf(models.EntityUILiteral), s.EntitiesOf(models.EntityUIElement)...)
	slices.SortFunc(targets, func(a, b models.Entity) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return targets
}

// splitStep makes one step per target, repeating the text that precedes
// the first target. Steps after the first become And steps.
func splitStep(s *models.Step, targets []models.Entity, dict *nlp.Dictionary) []*models.Step {
	prefix := s.Content[:targets[0].Position]
	out := make([]*models.Step, 0, len(targets))
	for i, t := range targets {
		part := s.Clone()
		part.Content = prefix + s.Content[t.Position:t.Position+t.Length]
		part.NLPResult = nil
		if i > 0 {
			part.NodeType = models.NodeAnd
			part.Content = dict.WithKeyword(part.Content, models.NodeAnd)
		}
		out = append(out, part)
	}
	return out
}

func insertAfter(content string, e models.Entity, text string) string {
	end := e.Position + e.Length
	return content[:end] + text + content[end:]
}

func constantText(c *models.Constant) string {
	switch c.Value.Kind {
	case models.KindNumber, models.KindBoolean:
		return c.Value.Text()
	case models.KindValueList:
		items := make([]string, 0, len(c.Value.List()))
		for _, v := range c.Value.List() {
			items = append(items, datagen.FormatValue(v, models.ValueTypeString))
		}
		return "[" + strings.Join(items, ", ") + "]"
	}
	return datagen.FormatValue(c.Value.Text(), models.ValueTypeString)
}
