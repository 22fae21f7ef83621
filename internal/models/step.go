package models

import (
	"sort"
	"strings"
)

// NodeType is the kind of a sentence inside a variant, test case or otherwise block.
type NodeType string

const (
	NodeGiven     NodeType = "Given"
	NodeWhen      NodeType = "When"
	NodeThen      NodeType = "Then"
	NodeAnd       NodeType = "And"
	NodeBut       NodeType = "But"
	NodeOtherwise NodeType = "Otherwise"
)

// EntityKind identifies what a recognized piece of a sentence is.
type EntityKind string

const (
	EntityUIAction            EntityKind = "ui_action"
	EntityUIElement           EntityKind = "ui_element"
	EntityUILiteral           EntityKind = "ui_literal"
	EntityKindValue           EntityKind = "value"
	EntityNumber              EntityKind = "number"
	EntityConstant            EntityKind = "constant"
	EntityQuery               EntityKind = "query"
	EntityValueList           EntityKind = "value_list"
	EntityUIConnector         EntityKind = "ui_connector"
	EntityUIConnectorModifier EntityKind = "ui_connector_modifier"
	EntityState               EntityKind = "state"
)

type (
	// Location points at the source of a node.
	Location struct {
		Line     int
		Column   int
		Filepath string
	}

	// Entity is a recognized piece of a sentence. Value holds the resolved
	// value, e.g. the UI Element name without braces or the action name.
	// Position and Length delimit the matched text inside the content.
	Entity struct {
		Kind     EntityKind
		Value    string
		Position int
		Length   int
	}

	// NLPResult is the ordered list of entities recognized in a sentence.
	NLPResult struct {
		Entities []Entity
	}

	// Step is a sentence of a variant, a test case or an otherwise block.
	Step struct {
		NodeType  NodeType
		Content   string
		Comment   string
		Location  Location
		NLPResult *NLPResult
	}
)

// Clone returns a deep copy of the step.
func (s *Step) Clone() *Step {
	if s == nil {
		return nil
	}
	c := *s
	if s.NLPResult != nil {
		c.NLPResult = &NLPResult{Entities: append([]Entity(nil), s.NLPResult.Entities...)}
	}
	return &c
}

// CloneSteps deep copies every step.
func CloneSteps(steps []*Step) []*Step {
	cloned := make([]*Step, 0, len(steps))
	for _, s := range steps {
		cloned = append(cloned, s.Clone())
	}
	return cloned
}

// EntitiesOf returns the entities of the given kind in position order.
func (s *Step) EntitiesOf(kind EntityKind) []Entity {
	if s == nil || s.NLPResult == nil {
		return nil
	}
	found := make([]Entity, 0)
	for _, e := range s.NLPResult.Entities {
		if e.Kind == kind {
			found = append(found, e)
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Position < found[j].Position })
	return found
}

// HasEntity reports whether any entity of the given kinds was recognized.
func (s *Step) HasEntity(kinds ...EntityKind) bool {
	for _, k := range kinds {
		if len(s.EntitiesOf(k)) > 0 {
			return true
		}
	}
	return false
}

// Action returns the first recognized UI action, or "".
func (s *Step) Action() string {
	actions := s.EntitiesOf(EntityUIAction)
	if len(actions) == 0 {
		return ""
	}
	return actions[0].Value
}

// AddComment appends a comment, separating it from an existing one with ", ".
func (s *Step) AddComment(comment string) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return
	}
	if s.Comment == "" {
		s.Comment = comment
		return
	}
	s.Comment = s.Comment + ", " + comment
}

// String renders the step the way it appears in a test case.
func (s *Step) String() string {
	if s.Comment == "" {
		return s.Content
	}
	return s.Content + " # " + s.Comment
}
