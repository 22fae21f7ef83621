// Package specfile reads specification documents. A document is a YAML
// file declaring UI Elements, constants, tables and databases, paired with
// the feature file holding its scenarios. Either file may be missing.
package specfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
)

type (
	// File is the YAML layout of a document.
	File struct {
		Language string `yaml:"language"`
		// Feature names the feature when there is no feature file.
		Feature string `yaml:"feature"`
		// Scenarios is the feature file, relative to the document. It
		// defaults to the file with the same base name.
		Scenarios  string          `yaml:"scenarios"`
		Import     []string        `yaml:"import"`
		Constants  []ConstantSpec  `yaml:"constants"`
		Tables     []TableSpec     `yaml:"tables"`
		Databases  []DatabaseSpec  `yaml:"databases"`
		UIElements []UIElementSpec `yaml:"uiElements"`
	}

	// ValueSpec holds at most one of the value kinds a property or constant
	// may take.
	ValueSpec struct {
		Value     *string `yaml:"value"`
		Number    *string `yaml:"number"`
		Boolean   *bool   `yaml:"boolean"`
		Constant  string  `yaml:"constant"`
		UIElement string  `yaml:"uiElement"`
		Query     string  `yaml:"query"`
		Values    []any   `yaml:"values"`
	}

	ConstantSpec struct {
		Name      string `yaml:"name"`
		ValueSpec `yaml:",inline"`
	}

	TableSpec struct {
		Name string `yaml:"name"`
		// Rows starts with the header row.
		Rows [][]string `yaml:"rows"`
	}

	DatabaseSpec struct {
		Name   string `yaml:"name"`
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	}

	UIElementSpec struct {
		Name       string         `yaml:"name"`
		Properties []PropertySpec `yaml:"properties"`
	}

	PropertySpec struct {
		Property  string `yaml:"property"`
		Not       bool   `yaml:"not"`
		ValueSpec `yaml:",inline"`
		Otherwise []string `yaml:"otherwise"`
	}
)

var knownProperties = map[models.UIPropertyID]bool{
	models.PropertyID:        true,
	models.PropertyType:      true,
	models.PropertyEditable:  true,
	models.PropertyDataType:  true,
	models.PropertyValue:     true,
	models.PropertyMinLength: true,
	models.PropertyMaxLength: true,
	models.PropertyMinValue:  true,
	models.PropertyMaxValue:  true,
	models.PropertyFormat:    true,
	models.PropertyRequired:  true,
}

// Entity converts the value, returning nil when none is given.
func (v ValueSpec) Entity() (*models.EntityValue, error) {
	var found []*models.EntityValue
	if v.Value != nil {
		found = append(found, &models.EntityValue{Kind: models.KindValue, Value: *v.Value})
	}
	if v.Number != nil {
		n := strings.TrimSpace(*v.Number)
		if _, err := strconv.ParseFloat(n, 64); err != nil {
			return nil, fmt.Errorf("%q is not a number", *v.Number)
		}
		found = append(found, &models.EntityValue{Kind: models.KindNumber, Value: n})
	}
	if v.Boolean != nil {
		found = append(found, &models.EntityValue{Kind: models.KindBoolean, Value: *v.Boolean})
	}
	if v.Constant != "" {
		found = append(found, &models.EntityValue{Kind: models.KindConstant, Value: v.Constant})
	}
	if v.UIElement != "" {
		found = append(found, &models.EntityValue{Kind: models.KindUIElement, Value: v.UIElement})
	}
	if v.Query != "" {
		found = append(found, &models.EntityValue{Kind: models.KindQuery, Value: v.Query})
	}
	if v.Values != nil {
		items := make([]any, 0, len(v.Values))
		for _, item := range v.Values {
			items = append(items, listItem(item))
		}
		found = append(found, &models.EntityValue{Kind: models.KindValueList, Value: items})
	}

	switch len(found) {
	case 0:
		return nil, nil
	case 1:
		return found[0], nil
	}
	return nil, fmt.Errorf("only one of value, number, boolean, constant, uiElement, query or values may be given")
}

// listItem keeps list values in the representations generators compare
// against: int64, float64, bool or string.
func listItem(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int64, float64, bool, string:
		return x
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func (p PropertySpec) property(path string) (*models.UIProperty, error) {
	id := models.UIPropertyID(strings.ToLower(strings.TrimSpace(p.Property)))
	if !knownProperties[id] {
		return nil, fmt.Errorf("unknown property %q", p.Property)
	}
	value, err := p.Entity()
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", p.Property, err)
	}
	return &models.UIProperty{
		ID:       id,
		Value:    value,
		Negated:  p.Not,
		Location: models.Location{Filepath: path},
	}, nil
}
