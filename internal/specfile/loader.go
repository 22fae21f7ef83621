package specfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/nlp"
	"github.com/denizgursoy/senaryo/pkg/gherkin_parser"
)

var yamlExtensions = []string{".yaml", ".yml"}

type (
	StepAnnotator interface {
		Annotate(language string, steps []*models.Step, problems *models.Problems)
	}

	Loader struct {
		annotator StepAnnotator
		language  string
		logger    *slog.Logger
	}

	Option func(*Loader)

	// load is the state of one Load call.
	load struct {
		*Loader
		problems *models.Problems
		docs     map[string]*models.Document
		order    []*models.Document
	}
)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithDefaultLanguage sets the language of documents that neither declare
// one nor have a feature file.
func WithDefaultLanguage(language string) Option {
	return func(l *Loader) {
		l.language = language
	}
}

func NewLoader(annotator StepAnnotator, opts ...Option) *Loader {
	l := &Loader{annotator: annotator, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the documents of the given feature or YAML files and every
// document they import. It returns the whole specification and the
// documents of paths, in order. Warnings found while annotating steps are
// added to problems.
func (l *Loader) Load(paths []string, problems *models.Problems) (*models.Spec, []*models.Document, error) {
	ld := &load{Loader: l, problems: problems, docs: map[string]*models.Document{}}

	var targets []*models.Document
	for _, p := range paths {
		doc, err := ld.document(p)
		if err != nil {
			return nil, nil, err
		}
		if !slices.Contains(targets, doc) {
			targets = append(targets, doc)
		}
	}

	l.logger.Debug("loaded specification",
		slog.Int("documents", len(ld.order)),
		slog.Int("targets", len(targets)))
	return models.NewSpec(ld.order...), targets, nil
}

// document loads the document a file belongs to once, keyed by the path
// without extension.
func (ld *load) document(path string) (*models.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	key := strings.TrimSuffix(abs, filepath.Ext(abs))
	if doc, ok := ld.docs[key]; ok {
		return doc, nil
	}

	yamlPath, featurePath := pairOf(abs)
	if yamlPath == "" && featurePath == "" {
		return nil, fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}

	file := &File{}
	if yamlPath != "" {
		if file, err = ReadFile(yamlPath); err != nil {
			return nil, err
		}
		if file.Scenarios != "" {
			featurePath = filepath.Join(filepath.Dir(yamlPath), file.Scenarios)
		}
	}

	doc := &models.Document{Path: yamlPath, Language: file.Language}
	if doc.Path == "" {
		doc.Path = featurePath
	}
	ld.docs[key] = doc

	if featurePath != "" {
		feature, err := gherkin_parser.ReadFeature(featurePath)
		if err != nil {
			return nil, err
		}
		doc.Feature = feature
	} else if file.Feature != "" {
		doc.Feature = &models.Feature{Name: file.Feature, Location: models.Location{Filepath: yamlPath}}
	}
	if doc.Feature != nil && doc.Language != "" {
		doc.Feature.Language = doc.Language
	}
	if doc.Language == "" && featurePath == "" {
		doc.Language = ld.language
	}

	if err := ld.declarations(doc, file, yamlPath); err != nil {
		return nil, fmt.Errorf("%s: %w", yamlPath, err)
	}

	for _, imp := range file.Import {
		if !filepath.IsAbs(imp) {
			imp = filepath.Join(filepath.Dir(abs), imp)
		}
		imported, err := ld.document(imp)
		if err != nil {
			return nil, fmt.Errorf("%s: import: %w", doc.Path, err)
		}
		doc.Imports = append(doc.Imports, imported.Path)
	}

	ld.annotate(doc)
	ld.order = append(ld.order, doc)
	return doc, nil
}

func (ld *load) declarations(doc *models.Document, file *File, path string) error {
	location := models.Location{Filepath: path}

	for _, c := range file.Constants {
		value, err := c.Entity()
		if err != nil {
			return fmt.Errorf("constant %q: %w", c.Name, err)
		}
		if value == nil {
			return fmt.Errorf("constant %q has no value", c.Name)
		}
		doc.Constants = append(doc.Constants, &models.Constant{Name: c.Name, Value: *value, Location: location})
	}

	for _, t := range file.Tables {
		table := models.NewTable(t.Name, t.Rows)
		table.Location = location
		doc.Tables = append(doc.Tables, table)
	}

	for _, db := range file.Databases {
		doc.Databases = append(doc.Databases, &models.Database{
			Name: db.Name, Driver: db.Driver, Path: db.Path, Location: location,
		})
	}

	dict := nlp.DictionaryOf(doc.LanguageOrDefault())
	featureName := ""
	if doc.Feature != nil {
		featureName = doc.Feature.Name
	}
	for _, spec := range file.UIElements {
		uie := &models.UIElement{Name: spec.Name, Feature: featureName, Location: location}
		for _, p := range spec.Properties {
			property, err := p.property(path)
			if err != nil {
				return fmt.Errorf("UI Element %q: %w", spec.Name, err)
			}
			for _, o := range p.Otherwise {
				property.Otherwise = append(property.Otherwise, &models.Step{
					NodeType: models.NodeOtherwise,
					Content:  dict.WithKeyword(o, models.NodeOtherwise),
					Location: location,
				})
			}
			uie.Properties = append(uie.Properties, property)
		}
		if doc.Feature != nil {
			doc.Feature.UIElements = append(doc.Feature.UIElements, uie)
		} else {
			doc.UIElements = append(doc.UIElements, uie)
		}
	}
	return nil
}

// annotate recognizes the entities of every scenario and otherwise step.
func (ld *load) annotate(doc *models.Document) {
	var steps []*models.Step
	elements := slices.Clone(doc.UIElements)
	if doc.Feature != nil {
		for _, s := range doc.Feature.Scenarios {
			for _, v := range s.Variants {
				steps = append(steps, v.Steps...)
			}
		}
		elements = append(elements, doc.Feature.UIElements...)
	}
	for _, uie := range elements {
		for _, p := range uie.Properties {
			steps = append(steps, p.Otherwise...)
		}
	}
	if len(steps) > 0 {
		ld.annotator.Annotate(doc.LanguageOrDefault(), steps, ld.problems)
	}
}

// ReadFile parses a YAML document.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification: %w", err)
	}
	file := &File{}
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, nil
}

// pairOf finds the YAML and feature files sharing the base name of path.
// A YAML file naming its feature file elsewhere overrides the feature
// found here.
func pairOf(path string) (yamlPath, featurePath string) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, ext := range yamlExtensions {
		if exists(base + ext) {
			yamlPath = base + ext
			break
		}
	}
	if exists(base + gherkin_parser.FeatureExtension) {
		featurePath = base + gherkin_parser.FeatureExtension
	}
	return yamlPath, featurePath
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

