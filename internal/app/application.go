// Package app wires the generation pipeline: it loads specifications,
// generates test cases for every selected variant and writes them out.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/denizgursoy/senaryo/internal/analysis"
	"github.com/denizgursoy/senaryo/internal/config"
	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/metrics"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/plan"
	"github.com/denizgursoy/senaryo/internal/query"
	"github.com/denizgursoy/senaryo/internal/random"
	"github.com/denizgursoy/senaryo/internal/render"
	"github.com/denizgursoy/senaryo/internal/testcase"
	"github.com/denizgursoy/senaryo/internal/uiegen"
	"github.com/denizgursoy/senaryo/pkg/gherkin_parser"
)

type (
	Application struct {
		config    *config.Config
		specs     SpecLoader
		annotator testcase.StepAnnotator
		renderer  Renderer
		metrics   *metrics.Metrics
		logger    *slog.Logger
	}

	Option func(*Application)

	// Result is what a generation run produced.
	Result struct {
		Files     []string
		TestCases int
		Problems  *models.Problems
	}
)

func WithRenderer(renderer Renderer) Option {
	return func(a *Application) {
		a.renderer = renderer
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Application) {
		a.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

// New creates an application. The annotator re-recognizes steps after
// values are injected; it is usually the one the spec loader uses.
func New(cfg *config.Config, specs SpecLoader, annotator testcase.StepAnnotator, opts ...Option) *Application {
	a := &Application{
		config:    cfg,
		specs:     specs,
		annotator: annotator,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.renderer == nil {
		a.renderer = RendererFor(cfg)
	}
	if a.metrics == nil {
		a.metrics = metrics.New()
	}
	return a
}

// RendererFor returns the renderer of the configured output format.
func RendererFor(cfg *config.Config) Renderer {
	switch cfg.Output.Format {
	case config.FormatGo:
		return render.NewGoRenderer()
	case config.FormatHTML:
		return render.NewHTMLRenderer()
	}
	return render.NewTextRenderer(cfg.Output.Extension)
}

// Generate writes the test cases of the specifications found in paths.
// Paths may be feature files, YAML documents, directories or glob
// patterns. Generation is best-effort: problems are logged and returned in
// the result, and only failures to read or write files are errors.
func (a *Application) Generate(ctx context.Context, paths []string) (*Result, error) {
	a.metrics.RunStarted()

	files, err := inputsOf(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no specification found in %s", strings.Join(paths, ", "))
	}

	problems := &models.Problems{}
	spec, targets, err := a.specs.Load(files, problems)
	if err != nil {
		return nil, fmt.Errorf("failed to load specification: %w", err)
	}

	registry, err := query.OpenRegistry(ctx, spec)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := registry.Close(); err != nil {
			a.logger.Warn("failed to close connections", slog.String("error", err.Error()))
		}
	}()

	generator, planners, err := a.pipeline(registry)
	if err != nil {
		return nil, err
	}

	result := &Result{Problems: problems}
	for _, doc := range targets {
		if doc.Feature == nil {
			a.logger.Debug("document has no feature", slog.String("path", doc.Path))
			continue
		}
		testCases, err := a.generateFeature(ctx, generator, planners, spec, doc, problems)
		if err != nil {
			return nil, err
		}
		path, err := a.write(doc, testCases)
		if err != nil {
			return nil, err
		}
		a.metrics.FeatureGenerated()
		result.Files = append(result.Files, path)
		result.TestCases += len(testCases)
	}

	a.report(problems)
	if file := a.config.Output.MetricsFile; file != "" {
		if err := a.metrics.WriteToTextfile(file); err != nil {
			return nil, fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return result, nil
}

// pipeline builds the generators of one run. They share a single random
// source and query cache.
func (a *Application) pipeline(registry *query.Registry) (*testcase.TestCaseGenerator, []testcase.Planner, error) {
	cfg := a.config
	r := random.New(cfg.Seed)
	cache := query.NewCache(query.WithLookupObserver(a.metrics.ObserveQueryLookup))

	data := datagen.NewDataGenerator(r,
		datagen.WithQueryCache(cache),
		datagen.WithRandomTries(cfg.Generation.RandomTries),
		datagen.WithRepetitionLimit(cfg.Generation.RepetitionLimit),
		datagen.WithMaxStringLength(cfg.Generation.MaxStringLength),
	)
	values := uiegen.NewValueGenerator(data,
		uiegen.WithConnections(registry),
		uiegen.WithQueryCache(cache),
		uiegen.WithLogger(a.logger),
	)
	analyzer := analysis.NewDataTestCaseAnalyzer(r,
		analysis.WithMaxStringLength(cfg.Generation.MaxStringLength),
		analysis.WithLogger(a.logger),
	)
	pre := testcase.NewPreTestCaseGenerator(a.annotator, analyzer, values, r, testcase.WithLogger(a.logger))

	planners := make([]testcase.Planner, 0, len(cfg.Planners))
	for i, p := range cfg.Planners {
		mix, err := plan.NewMix(p.Mix)
		if err != nil {
			return nil, nil, fmt.Errorf("planners[%d]: %w", i, err)
		}
		strategy, err := plan.NewStrategy(p.Combination, p.Index, r)
		if err != nil {
			return nil, nil, fmt.Errorf("planners[%d]: %w", i, err)
		}
		planners = append(planners, plan.NewTestPlanner(mix, strategy, r, a.logger))
	}

	return testcase.NewTestCaseGenerator(pre, a.logger), planners, nil
}

// generateFeature generates the test cases of every variant selected by the
// tag expression. Indexes refer to the declared scenarios and variants so
// that filtering does not renumber them.
func (a *Application) generateFeature(
	ctx context.Context,
	generator *testcase.TestCaseGenerator,
	planners []testcase.Planner,
	spec *models.Spec,
	doc *models.Document,
	problems *models.Problems,
) ([]*models.TestCase, error) {
	feature := doc.Feature
	filtered, err := gherkin_parser.FilterByTags(feature.Scenarios, a.config.Tags)
	if err != nil {
		return nil, err
	}
	selected := make(map[*models.Variant]bool)
	for _, s := range filtered {
		for _, v := range s.Variants {
			selected[v] = true
		}
	}

	gc := &models.GenContext{Spec: spec, Doc: doc, Problems: problems}
	var testCases []*models.TestCase
	for i, scenario := range feature.Scenarios {
		for j, variant := range scenario.Variants {
			src := testcase.Source{Scenario: scenario, Variant: variant, ScenarioIndex: i + 1, VariantIndex: j + 1}
			if !selected[variant] || src.Ignored() {
				a.metrics.VariantSkipped()
				continue
			}
			generated := generator.Generate(ctx, src, gc, planners)
			for _, tc := range generated {
				a.metrics.TestCaseGenerated(tc.ShouldFail)
			}
			a.metrics.VariantGenerated()
			testCases = append(testCases, generated...)
		}
	}

	a.logger.Info("generated test cases",
		slog.String("feature", feature.Name),
		slog.Int("testCases", len(testCases)))
	return testCases, nil
}

func (a *Application) write(doc *models.Document, testCases []*models.TestCase) (string, error) {
	source := doc.Feature.Location.Filepath
	if source == "" {
		source = doc.Path
	}
	path := render.OutputPath(source, a.config.Output.Dir, a.renderer.Extension())

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	out := render.Document{
		Path:      path,
		Feature:   doc.Feature.Name,
		Language:  doc.LanguageOrDefault(),
		Imports:   []string{source},
		TestCases: testCases,
	}
	if err := a.renderer.Render(file, out); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", path, err)
	}
	a.logger.Debug("wrote test cases", slog.String("path", path))
	return path, nil
}

func (a *Application) report(problems *models.Problems) {
	for _, err := range problems.Errors {
		a.logger.Error("generation error", slog.String("error", err.Error()))
	}
	for _, err := range problems.Warnings {
		a.logger.Warn("generation warning", slog.String("error", err.Error()))
	}
	a.metrics.ProblemsReported(len(problems.Errors), len(problems.Warnings))
}

// inputsOf expands directories and glob patterns into feature files. YAML
// documents are kept as given.
func inputsOf(paths []string) ([]string, error) {
	var inputs, locations []string
	for _, p := range paths {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".yaml", ".yml":
			inputs = append(inputs, p)
		default:
			locations = append(locations, p)
		}
	}
	if len(locations) == 0 {
		return inputs, nil
	}
	features, err := gherkin_parser.SearchFeatureFilesIn(locations)
	if err != nil {
		return nil, err
	}
	return append(inputs, features...), nil
}
