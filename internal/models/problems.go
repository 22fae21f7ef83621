package models

import "errors"

// Problems collects the errors and warnings of a best-effort generation.
type Problems struct {
	Errors   []error
	Warnings []error
}

// AddError records an error. Nil errors are ignored.
func (p *Problems) AddError(err error) {
	if err != nil {
		p.Errors = append(p.Errors, err)
	}
}

// AddWarning records a warning. Nil errors are ignored.
func (p *Problems) AddWarning(err error) {
	if err != nil {
		p.Warnings = append(p.Warnings, err)
	}
}

// Err joins every recorded error, or returns nil.
func (p *Problems) Err() error {
	return errors.Join(p.Errors...)
}

// GenContext is what a generation pass reads and reports into.
type GenContext struct {
	Spec *Spec
	Doc  *Document
	*Problems
}

// NewGenContext creates a context with an empty problem collector.
func NewGenContext(spec *Spec, doc *Document) *GenContext {
	return &GenContext{Spec: spec, Doc: doc, Problems: &Problems{}}
}

// FeatureName returns the name of the document's feature, or "".
func (c *GenContext) FeatureName() string {
	if c.Doc == nil || c.Doc.Feature == nil {
		return ""
	}
	return c.Doc.Feature.Name
}

// Language returns the document language.
func (c *GenContext) Language() string {
	if c.Doc == nil {
		return "en"
	}
	return c.Doc.LanguageOrDefault()
}
