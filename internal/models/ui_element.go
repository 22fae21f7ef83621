package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ValueType is the data type of a UI Element value.
type ValueType string

const (
	ValueTypeString   ValueType = "string"
	ValueTypeInteger  ValueType = "integer"
	ValueTypeDouble   ValueType = "double"
	ValueTypeDate     ValueType = "date"
	ValueTypeTime     ValueType = "time"
	ValueTypeDateTime ValueType = "datetime"
)

// Date and time layouts used both to read declared values and to render
// generated ones.
const (
	DateLayout     = "02/01/2006"
	TimeLayout     = "15:04"
	DateTimeLayout = "02/01/2006 15:04"
)

// ParseValueType maps a declared data type (including a few aliases) to a
// ValueType.
func ParseValueType(s string) (ValueType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "text":
		return ValueTypeString, true
	case "integer", "int", "long":
		return ValueTypeInteger, true
	case "double", "float", "decimal", "number":
		return ValueTypeDouble, true
	case "date":
		return ValueTypeDate, true
	case "time":
		return ValueTypeTime, true
	case "datetime", "date and time":
		return ValueTypeDateTime, true
	}
	return "", false
}

// UIPropertyID names a UI Element property.
type UIPropertyID string

const (
	PropertyID        UIPropertyID = "id"
	PropertyType      UIPropertyID = "type"
	PropertyEditable  UIPropertyID = "editable"
	PropertyDataType  UIPropertyID = "data type"
	PropertyValue     UIPropertyID = "value"
	PropertyMinLength UIPropertyID = "min length"
	PropertyMaxLength UIPropertyID = "max length"
	PropertyMinValue  UIPropertyID = "min value"
	PropertyMaxValue  UIPropertyID = "max value"
	PropertyFormat    UIPropertyID = "format"
	PropertyRequired  UIPropertyID = "required"
)

// ValueKind is the recognized representation of a property value.
type ValueKind string

const (
	KindValue     ValueKind = "value"
	KindNumber    ValueKind = "number"
	KindBoolean   ValueKind = "boolean"
	KindConstant  ValueKind = "constant"
	KindUIElement ValueKind = "ui_element"
	KindQuery     ValueKind = "query"
	KindValueList ValueKind = "value_list"
)

type (
	// EntityValue is a property value as recognized by the parser. Value is a
	// string for value, constant, ui_element and query kinds, a string with the
	// number text for numbers, a bool for booleans and a []any for lists.
	EntityValue struct {
		Kind  ValueKind
		Value any
	}

	// UIProperty is a declared property of a UI Element. Otherwise holds the
	// oracle steps to expect when the property's constraint is violated.
	UIProperty struct {
		ID        UIPropertyID
		Value     *EntityValue
		Negated   bool
		Otherwise []*Step
		Location  Location
	}

	// UIElement is a named, constrained input or output target. Feature is
	// empty for global UI Elements.
	UIElement struct {
		Name       string
		Feature    string
		Location   Location
		Properties []*UIProperty
	}
)

// Text returns the value as text, or "" for lists.
func (v *EntityValue) Text() string {
	if v == nil {
		return ""
	}
	switch x := v.Value.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

// List returns the values of a value list, or the single value as a list.
func (v *EntityValue) List() []any {
	if v == nil {
		return nil
	}
	if l, ok := v.Value.([]any); ok {
		return l
	}
	return []any{v.Value}
}

// VariableName builds the fully-qualified variable name of a UI Element.
func VariableName(feature, name string) string {
	if feature == "" {
		return name
	}
	return feature + ":" + name
}

// SplitVariable splits a variable into its feature and element names.
func SplitVariable(variable string) (feature, name string) {
	if i := strings.Index(variable, ":"); i >= 0 {
		return strings.TrimSpace(variable[:i]), strings.TrimSpace(variable[i+1:])
	}
	return "", strings.TrimSpace(variable)
}

// Variable returns the fully-qualified variable name.
func (u *UIElement) Variable() string {
	return VariableName(u.Feature, u.Name)
}

// Property returns the first property with the given id, or nil.
func (u *UIElement) Property(id UIPropertyID) *UIProperty {
	for _, p := range u.Properties {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ID returns the declared id, or the camel-cased name.
func (u *UIElement) ID() string {
	if p := u.Property(PropertyID); p != nil && p.Value.Text() != "" {
		return p.Value.Text()
	}
	return camelCase(u.Name)
}

// Literal returns the UI Literal that replaces references to the element.
func (u *UIElement) Literal() string {
	return "<" + u.ID() + ">"
}

var nonEditableTypes = map[string]bool{
	"button": true, "label": true, "link": true, "div": true, "span": true,
	"image": true, "window": true, "url": true, "title": true, "table": true,
}

// IsEditable reports whether data can be entered into the element. An
// explicit editable property wins; otherwise the widget type decides, and
// the default widget is a textbox.
func (u *UIElement) IsEditable() bool {
	if p := u.Property(PropertyEditable); p != nil {
		if p.Value == nil {
			return !p.Negated
		}
		b, err := strconv.ParseBool(p.Value.Text())
		if err != nil {
			return !p.Negated
		}
		return b != p.Negated
	}
	if p := u.Property(PropertyType); p != nil {
		return !nonEditableTypes[strings.ToLower(p.Value.Text())]
	}
	return true
}

// IsRequired reports whether the element must be filled.
func (u *UIElement) IsRequired() bool {
	p := u.Property(PropertyRequired)
	if p == nil {
		return false
	}
	if p.Value == nil {
		return !p.Negated
	}
	b, err := strconv.ParseBool(p.Value.Text())
	if err != nil {
		return !p.Negated
	}
	return b != p.Negated
}

// DataType returns the declared data type or, when absent, the type
// inferred from literal bounds and values. STRING is the fallback.
func (u *UIElement) DataType() ValueType {
	if p := u.Property(PropertyDataType); p != nil {
		if vt, ok := ParseValueType(p.Value.Text()); ok {
			return vt
		}
	}
	for _, id := range []UIPropertyID{PropertyMinValue, PropertyMaxValue, PropertyValue} {
		p := u.Property(id)
		if p == nil || p.Value == nil {
			continue
		}
		if vt, ok := inferValueType(p.Value); ok {
			return vt
		}
	}
	return ValueTypeString
}

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	doublePattern  = regexp.MustCompile(`^-?\d*\.\d+$`)
)

func inferValueType(v *EntityValue) (ValueType, bool) {
	var sample any
	switch v.Kind {
	case KindNumber, KindValue:
		sample = v.Value
	case KindValueList:
		l := v.List()
		if len(l) == 0 {
			return "", false
		}
		sample = l[0]
	default:
		return "", false
	}
	switch x := sample.(type) {
	case int64:
		return ValueTypeInteger, true
	case float64:
		return ValueTypeDouble, true
	case string:
		return InferValueTypeOf(x, v.Kind == KindNumber)
	}
	return "", false
}

// InferValueTypeOf guesses the type of a literal. Numbers are only inferred
// from number entities unless numeric is false and the text parses as a
// date or time.
func InferValueTypeOf(s string, numeric bool) (ValueType, bool) {
	s = strings.TrimSpace(s)
	if numeric || integerPattern.MatchString(s) || doublePattern.MatchString(s) {
		switch {
		case integerPattern.MatchString(s):
			return ValueTypeInteger, true
		case doublePattern.MatchString(s):
			return ValueTypeDouble, true
		}
	}
	if _, err := time.Parse(DateTimeLayout, s); err == nil {
		return ValueTypeDateTime, true
	}
	if _, err := time.Parse(DateLayout, s); err == nil {
		return ValueTypeDate, true
	}
	if _, err := time.Parse(TimeLayout, s); err == nil {
		return ValueTypeTime, true
	}
	return "", false
}

func camelCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if i > 0 && len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		b.WriteString(string(runes))
	}
	return b.String()
}
