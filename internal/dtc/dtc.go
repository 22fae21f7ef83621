// Package dtc defines the closed set of data test cases, their groups and
// the outcome of applying one to a UI Element.
package dtc

import (
	"fmt"
	"slices"

	"github.com/denizgursoy/senaryo/internal/models"
)

// DataTestCase is a boundary-value generation strategy.
type DataTestCase int

const (
	ValueLowest DataTestCase = iota
	ValueRandomBelowMin
	ValueJustBelowMin
	ValueMin
	ValueJustAboveMin
	ValueZero
	ValueMedian
	ValueRandomBetweenMinMax
	ValueJustBelowMax
	ValueMax
	ValueJustAboveMax
	ValueRandomAboveMax
	ValueGreatest

	LengthLowest
	LengthRandomBelowMin
	LengthJustBelowMin
	LengthMin
	LengthJustAboveMin
	LengthMedian
	LengthRandomBetweenMinMax
	LengthJustBelowMax
	LengthMax
	LengthJustAboveMax
	LengthRandomAboveMax
	LengthGreatest

	FormatValid
	FormatInvalid

	SetFirstElement
	SetSecondElement
	SetRandomElement
	SetPenultimateElement
	SetLastElement
	SetNotInSet

	RequiredFilled
	RequiredNotFilled

	ComputationValid
	ComputationInvalid

	numDataTestCases
)

var names = [numDataTestCases]string{
	ValueLowest:               "VALUE_LOWEST",
	ValueRandomBelowMin:       "VALUE_RANDOM_BELOW_MIN",
	ValueJustBelowMin:         "VALUE_JUST_BELOW_MIN",
	ValueMin:                  "VALUE_MIN",
	ValueJustAboveMin:         "VALUE_JUST_ABOVE_MIN",
	ValueZero:                 "VALUE_ZERO",
	ValueMedian:               "VALUE_MEDIAN",
	ValueRandomBetweenMinMax:  "VALUE_RANDOM_BETWEEN_MIN_MAX",
	ValueJustBelowMax:         "VALUE_JUST_BELOW_MAX",
	ValueMax:                  "VALUE_MAX",
	ValueJustAboveMax:         "VALUE_JUST_ABOVE_MAX",
	ValueRandomAboveMax:       "VALUE_RANDOM_ABOVE_MAX",
	ValueGreatest:             "VALUE_GREATEST",
	LengthLowest:              "LENGTH_LOWEST",
	LengthRandomBelowMin:      "LENGTH_RANDOM_BELOW_MIN",
	LengthJustBelowMin:        "LENGTH_JUST_BELOW_MIN",
	LengthMin:                 "LENGTH_MIN",
	LengthJustAboveMin:        "LENGTH_JUST_ABOVE_MIN",
	LengthMedian:              "LENGTH_MEDIAN",
	LengthRandomBetweenMinMax: "LENGTH_RANDOM_BETWEEN_MIN_MAX",
	LengthJustBelowMax:        "LENGTH_JUST_BELOW_MAX",
	LengthMax:                 "LENGTH_MAX",
	LengthJustAboveMax:        "LENGTH_JUST_ABOVE_MAX",
	LengthRandomAboveMax:      "LENGTH_RANDOM_ABOVE_MAX",
	LengthGreatest:            "LENGTH_GREATEST",
	FormatValid:               "FORMAT_VALID",
	FormatInvalid:             "FORMAT_INVALID",
	SetFirstElement:           "SET_FIRST_ELEMENT",
	SetSecondElement:          "SET_SECOND_ELEMENT",
	SetRandomElement:          "SET_RANDOM_ELEMENT",
	SetPenultimateElement:     "SET_PENULTIMATE_ELEMENT",
	SetLastElement:            "SET_LAST_ELEMENT",
	SetNotInSet:               "SET_NOT_IN_SET",
	RequiredFilled:            "REQUIRED_FILLED",
	RequiredNotFilled:         "REQUIRED_NOT_FILLED",
	ComputationValid:          "COMPUTATION_VALID",
	ComputationInvalid:        "COMPUTATION_INVALID",
}

// All returns every data test case in declaration order.
func All() []DataTestCase {
	all := make([]DataTestCase, 0, numDataTestCases)
	for d := DataTestCase(0); d < numDataTestCases; d++ {
		all = append(all, d)
	}
	return all
}

func (d DataTestCase) String() string {
	if d < 0 || d >= numDataTestCases {
		return fmt.Sprintf("DataTestCase(%d)", int(d))
	}
	return names[d]
}

// Parse finds a data test case by its upper-case name.
func Parse(name string) (DataTestCase, bool) {
	for d, n := range names {
		if n == name {
			return DataTestCase(d), true
		}
	}
	return 0, false
}

// Group is the family a data test case belongs to.
type Group int

const (
	GroupValue Group = iota
	GroupLength
	GroupFormat
	GroupSet
	GroupRequired
	GroupComputation
)

func (g Group) String() string {
	switch g {
	case GroupValue:
		return "VALUE"
	case GroupLength:
		return "LENGTH"
	case GroupFormat:
		return "FORMAT"
	case GroupSet:
		return "SET"
	case GroupRequired:
		return "REQUIRED"
	case GroupComputation:
		return "COMPUTATION"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// GroupOf returns the group of a data test case.
func GroupOf(d DataTestCase) Group {
	switch {
	case d <= ValueGreatest:
		return GroupValue
	case d <= LengthGreatest:
		return GroupLength
	case d <= FormatInvalid:
		return GroupFormat
	case d <= SetNotInSet:
		return GroupSet
	case d <= RequiredNotFilled:
		return GroupRequired
	}
	return GroupComputation
}

// OfGroup returns the data test cases of a group in declaration order.
func OfGroup(g Group) []DataTestCase {
	var out []DataTestCase
	for _, d := range All() {
		if GroupOf(d) == g {
			out = append(out, d)
		}
	}
	return out
}

var compatibleGroups = map[models.ValueType][]Group{
	models.ValueTypeString:   {GroupLength, GroupFormat, GroupSet, GroupRequired, GroupComputation},
	models.ValueTypeInteger:  {GroupValue, GroupSet, GroupRequired, GroupComputation},
	models.ValueTypeDouble:   {GroupValue, GroupSet, GroupRequired, GroupComputation},
	models.ValueTypeDate:     {GroupValue, GroupSet, GroupRequired, GroupComputation},
	models.ValueTypeTime:     {GroupValue, GroupSet, GroupRequired, GroupComputation},
	models.ValueTypeDateTime: {GroupValue, GroupSet, GroupRequired, GroupComputation},
}

// CompatibleWith returns the data test cases that apply to a value type, in
// declaration order. Zero only exists for numbers.
func CompatibleWith(vt models.ValueType) []DataTestCase {
	groups := compatibleGroups[vt]
	var out []DataTestCase
	for _, d := range All() {
		if !slices.Contains(groups, GroupOf(d)) {
			continue
		}
		if d == ValueZero && vt != models.ValueTypeInteger && vt != models.ValueTypeDouble {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Result is the outcome of applying a data test case to a UI Element.
type Result int

const (
	Incompatible Result = iota
	Invalid
	Valid
)

func (r Result) String() string {
	switch r {
	case Incompatible:
		return "INCOMPATIBLE"
	case Invalid:
		return "INVALID"
	case Valid:
		return "VALID"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Pair is an analysis result with the oracle steps to expect when the
// result is invalid.
type Pair struct {
	Result    Result
	Otherwise []*models.Step
}

// Analysis maps every data test case to its result for one UI Element.
type Analysis map[DataTestCase]Pair

// Cases returns the analyzed data test cases in declaration order.
func (a Analysis) Cases() []DataTestCase {
	out := make([]DataTestCase, 0, len(a))
	for _, d := range All() {
		if _, ok := a[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
