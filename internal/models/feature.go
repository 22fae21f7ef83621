package models

type (
	// Tag annotates a scenario, variant or test case, e.g. @scenario(1).
	Tag struct {
		Name    string
		Content []string
	}

	// Variant is a concrete path through a scenario. Test cases are
	// generated per variant.
	Variant struct {
		Name     string
		Tags     []Tag
		Steps    []*Step
		Location Location
	}

	// Scenario groups the variants of a behavior.
	Scenario struct {
		Name     string
		Tags     []Tag
		Variants []*Variant
		Location Location
	}

	// Feature holds the scenarios and UI Elements of a document.
	Feature struct {
		Name       string
		Language   string
		UIElements []*UIElement
		Scenarios  []*Scenario
		Location   Location
	}

	// Constant is a named value declared in a specification.
	Constant struct {
		Name     string
		Value    EntityValue
		Location Location
	}

	// Database declares a database connection that queries may reference.
	Database struct {
		Name     string
		Driver   string
		Path     string
		Location Location
	}

	// Document is one specification file with its declarations.
	Document struct {
		Path       string
		Language   string
		Imports    []string
		Feature    *Feature
		Constants  []*Constant
		Tables     []*Table
		Databases  []*Database
		UIElements []*UIElement
	}
)

const (
	TagGenerated = "generated"
	TagFail      = "fail"
	TagIgnore    = "ignore"
	TagScenario  = "scenario"
	TagVariant   = "variant"
)

// HasTag reports whether a tag with the given name (without @) exists.
func HasTag(tags []Tag, name string) bool {
	for _, t := range tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// String renders the tag as written in a document.
func (t Tag) String() string {
	if len(t.Content) == 0 {
		return "@" + t.Name
	}
	s := "@" + t.Name + "("
	for i, c := range t.Content {
		if i > 0 {
			s += ", "
		}
		s += c
	}
	return s + ")"
}

// LanguageOrDefault returns the document language, defaulting to English.
func (d *Document) LanguageOrDefault() string {
	if d.Language != "" {
		return d.Language
	}
	if d.Feature != nil && d.Feature.Language != "" {
		return d.Feature.Language
	}
	return "en"
}
