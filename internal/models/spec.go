package models

import (
	"path/filepath"
	"strings"
)

// Spec is the whole specification: every loaded document and its imports.
type Spec struct {
	Docs []*Document
}

// NewSpec creates a specification from documents.
func NewSpec(docs ...*Document) *Spec {
	return &Spec{Docs: docs}
}

// DocumentByPath finds a document by its path.
func (s *Spec) DocumentByPath(path string) *Document {
	clean := filepath.Clean(path)
	for _, d := range s.Docs {
		if filepath.Clean(d.Path) == clean {
			return d
		}
	}
	return nil
}

// FeatureByName finds a feature by name, case-insensitively.
func (s *Spec) FeatureByName(name string) *Feature {
	for _, d := range s.Docs {
		if d.Feature != nil && strings.EqualFold(d.Feature.Name, name) {
			return d.Feature
		}
	}
	return nil
}

// ImportedDocuments returns the documents imported by doc, transitively,
// without doc itself.
func (s *Spec) ImportedDocuments(doc *Document) []*Document {
	seen := map[*Document]bool{doc: true}
	var out []*Document
	var visit func(d *Document)
	visit = func(d *Document) {
		for _, imp := range d.Imports {
			path := imp
			if !filepath.IsAbs(path) && d.Path != "" {
				path = filepath.Join(filepath.Dir(d.Path), imp)
			}
			other := s.DocumentByPath(path)
			if other == nil || seen[other] {
				continue
			}
			seen[other] = true
			out = append(out, other)
			visit(other)
		}
	}
	if doc != nil {
		visit(doc)
	}
	return out
}

// UIElementByVariable finds a UI Element by variable. Unqualified names are
// looked up in the document's feature first and then among global
// elements.
func (s *Spec) UIElementByVariable(variable string, doc *Document) *UIElement {
	featureName, name := SplitVariable(variable)
	if featureName != "" {
		if f := s.FeatureByName(featureName); f != nil {
			return findUIElement(f.UIElements, name)
		}
		return nil
	}
	if doc != nil && doc.Feature != nil {
		if u := findUIElement(doc.Feature.UIElements, name); u != nil {
			return u
		}
	}
	for _, d := range s.Docs {
		if u := findUIElement(d.UIElements, name); u != nil {
			return u
		}
	}
	return nil
}

// ExtractUIElementsFromDocumentAndImports returns the UI Elements of the
// document's feature, of the features it imports and every global one.
func (s *Spec) ExtractUIElementsFromDocumentAndImports(doc *Document) []*UIElement {
	var out []*UIElement
	seen := make(map[string]bool)
	add := func(elements []*UIElement) {
		for _, u := range elements {
			if v := u.Variable(); !seen[v] {
				seen[v] = true
				out = append(out, u)
			}
		}
	}
	docs := append([]*Document{doc}, s.ImportedDocuments(doc)...)
	for _, d := range docs {
		if d == nil {
			continue
		}
		if d.Feature != nil {
			add(d.Feature.UIElements)
		}
		add(d.UIElements)
	}
	for _, d := range s.Docs {
		add(d.UIElements)
	}
	return out
}

// ConstantByName finds a constant declared in any document.
func (s *Spec) ConstantByName(name string) *Constant {
	for _, d := range s.Docs {
		for _, c := range d.Constants {
			if strings.EqualFold(c.Name, name) {
				return c
			}
		}
	}
	return nil
}

// TableByName finds a table declared in any document.
func (s *Spec) TableByName(name string) *Table {
	for _, d := range s.Docs {
		for _, t := range d.Tables {
			if strings.EqualFold(t.Name, name) {
				return t
			}
		}
	}
	return nil
}

// DatabaseByName finds a database declared in any document.
func (s *Spec) DatabaseByName(name string) *Database {
	for _, d := range s.Docs {
		for _, db := range d.Databases {
			if strings.EqualFold(db.Name, name) {
				return db
			}
		}
	}
	return nil
}

func findUIElement(elements []*UIElement, name string) *UIElement {
	for _, u := range elements {
		if strings.EqualFold(u.Name, name) {
			return u
		}
	}
	return nil
}
