// Package analysis decides, for every data test case, whether applying it
// to a UI Element produces valid data, invalid data or nothing meaningful.
package analysis

import (
	"log/slog"

	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/dtc"
	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/random"
)

type (
	// DataTestCaseAnalyzer analyzes UI Elements. Bounds that come from a
	// query or another UI Element are not resolved here: a random
	// counterpart stands in for them.
	DataTestCaseAnalyzer struct {
		random          *random.Random
		maxStringLength int
		logger          *slog.Logger
	}

	Option func(*DataTestCaseAnalyzer)

	// bound is a resolved min or max.
	bound struct {
		value     any
		faked     bool
		otherwise []*models.Step
	}
)

func WithMaxStringLength(length int) Option {
	return func(a *DataTestCaseAnalyzer) {
		a.maxStringLength = length
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *DataTestCaseAnalyzer) {
		a.logger = logger
	}
}

func NewDataTestCaseAnalyzer(r *random.Random, opts ...Option) *DataTestCaseAnalyzer {
	a := &DataTestCaseAnalyzer{
		random:          r,
		maxStringLength: datagen.DefaultMaxStringLength,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeUIElement returns the result of every data test case for the
// element. Non-editable elements get an empty analysis.
func (a *DataTestCaseAnalyzer) AnalyzeUIElement(uie *models.UIElement, gc *models.GenContext) dtc.Analysis {
	analysis := dtc.Analysis{}
	if !uie.IsEditable() {
		return analysis
	}

	vt := uie.DataType()
	compatible := dtc.CompatibleWith(vt)
	if len(compatible) == 0 {
		compatible = []dtc.DataTestCase{dtc.RequiredFilled}
	}

	for _, d := range dtc.All() {
		analysis[d] = dtc.Pair{Result: dtc.Incompatible}
	}
	for _, d := range compatible {
		analysis[d] = a.analyzeProperties(uie, vt, d, gc)
	}

	a.logger.Debug("analyzed UI Element",
		slog.String("variable", uie.Variable()),
		slog.String("type", string(vt)))
	return analysis
}

func (a *DataTestCaseAnalyzer) analyzeProperties(uie *models.UIElement, vt models.ValueType, d dtc.DataTestCase, gc *models.GenContext) dtc.Pair {
	switch dtc.GroupOf(d) {
	case dtc.GroupFormat:
		return analyzeFormat(uie, d)
	case dtc.GroupRequired:
		return analyzeRequired(uie, d)
	case dtc.GroupSet:
		return analyzeSet(uie, d, gc)
	case dtc.GroupValue:
		return a.analyzeRange(uie, vt, d, models.PropertyMinValue, models.PropertyMaxValue, gc)
	case dtc.GroupLength:
		return a.analyzeRange(uie, models.ValueTypeString, d, models.PropertyMinLength, models.PropertyMaxLength, gc)
	}
	return incompatible()
}

func analyzeFormat(uie *models.UIElement, d dtc.DataTestCase) dtc.Pair {
	p := uie.Property(models.PropertyFormat)
	if p == nil || p.Value == nil {
		return incompatible()
	}
	if d == dtc.FormatValid {
		return valid()
	}
	return invalid(p.Otherwise)
}

func analyzeRequired(uie *models.UIElement, d dtc.DataTestCase) dtc.Pair {
	if d == dtc.RequiredFilled || !uie.IsRequired() {
		return valid()
	}
	return invalid(uie.Property(models.PropertyRequired).Otherwise)
}

// analyzeSet keeps selections valid and values outside the set invalid.
// For a negated declaration the generator inverts which side of the set
// each case draws from, so the labels stay the same.
func analyzeSet(uie *models.UIElement, d dtc.DataTestCase, gc *models.GenContext) dtc.Pair {
	p := uie.Property(models.PropertyValue)
	if p == nil || p.Value == nil {
		return incompatible()
	}

	single := true
	size := -1
	switch p.Value.Kind {
	case models.KindValue, models.KindNumber, models.KindUIElement:
	case models.KindConstant:
		if c := constantOf(gc, p.Value.Text()); c != nil && c.Value.Kind == models.KindValueList {
			single = false
			size = len(c.Value.List())
		}
	case models.KindValueList:
		single = false
		size = len(p.Value.List())
	case models.KindQuery:
		single = false
	default:
		return incompatible()
	}

	switch d {
	case dtc.SetNotInSet:
		return invalid(p.Otherwise)
	case dtc.SetFirstElement:
		return valid()
	case dtc.SetSecondElement, dtc.SetPenultimateElement:
		if single || (size >= 0 && size < 2) {
			return incompatible()
		}
		return valid()
	}
	if single {
		return incompatible()
	}
	return valid()
}

func (a *DataTestCaseAnalyzer) analyzeRange(
	uie *models.UIElement,
	vt models.ValueType,
	d dtc.DataTestCase,
	minID, maxID models.UIPropertyID,
	gc *models.GenContext,
) dtc.Pair {
	minProp, maxProp := uie.Property(minID), uie.Property(maxID)
	if minProp == nil && maxProp == nil {
		return incompatible()
	}

	var lo, hi *bound
	if minProp != nil {
		b, ok := resolveBound(minProp, gc)
		if !ok {
			return incompatible()
		}
		lo = b
	}
	if maxProp != nil {
		b, ok := resolveBound(maxProp, gc)
		if !ok {
			return incompatible()
		}
		hi = b
	}

	length := dtc.GroupOf(d) == dtc.GroupLength
	if err := a.fake(vt, length, lo, hi); err != nil {
		return incompatible()
	}

	analyzer, err := datagen.NewRangeAnalyzer(vt, valueOf(lo), valueOf(hi), a.maxStringLength)
	if err != nil {
		return incompatible()
	}

	b, ok := datagen.BoundaryOf(d)
	if !ok {
		return incompatible()
	}
	return evaluate(b, analyzer, lo, hi)
}

func evaluate(b datagen.Boundary, analyzer datagen.RangeAnalyzer, lo, hi *bound) dtc.Pair {
	switch b {
	case datagen.BoundaryLowest:
		if lo != nil && analyzer.HasValuesBelowMin() {
			return invalid(lo.otherwise)
		}
		return valid()

	case datagen.BoundaryRandomBelowMin, datagen.BoundaryJustBelowMin:
		if lo == nil || !analyzer.HasValuesBelowMin() {
			return incompatible()
		}
		return invalid(lo.otherwise)

	case datagen.BoundaryMin:
		if lo == nil {
			return incompatible()
		}
		return valid()

	case datagen.BoundaryJustAboveMin:
		if lo == nil {
			return incompatible()
		}
		if hi != nil && analyzer.JustAboveMinExceedsMax() {
			return invalid(hi.otherwise)
		}
		return valid()

	case datagen.BoundaryZero:
		if (lo != nil && lo.faked) || (hi != nil && hi.faked) {
			return incompatible()
		}
		if analyzer.IsZeroBetweenMinAndMax() {
			return valid()
		}
		return invalid(otherwiseOf(lo, hi))

	case datagen.BoundaryMedian, datagen.BoundaryRandomBetweenMinAndMax:
		return valid()

	case datagen.BoundaryJustBelowMax:
		if hi == nil {
			return incompatible()
		}
		if lo != nil && analyzer.JustBelowMaxPrecedesMin() {
			return invalid(lo.otherwise)
		}
		return valid()

	case datagen.BoundaryMax:
		if hi == nil {
			return incompatible()
		}
		return valid()

	case datagen.BoundaryJustAboveMax, datagen.BoundaryRandomAboveMax:
		if hi == nil || !analyzer.HasValuesAboveMax() {
			return incompatible()
		}
		return invalid(hi.otherwise)

	case datagen.BoundaryGreatest:
		if hi != nil && analyzer.HasValuesAboveMax() {
			return invalid(hi.otherwise)
		}
		return valid()
	}
	return incompatible()
}

// resolveBound reads a literal or a constant. Queries and UI Elements are
// marked to be faked.
func resolveBound(p *models.UIProperty, gc *models.GenContext) (*bound, bool) {
	if p.Value == nil {
		return nil, false
	}
	b := &bound{otherwise: p.Otherwise}
	switch p.Value.Kind {
	case models.KindNumber, models.KindValue:
		b.value = p.Value.Value
	case models.KindConstant:
		c := constantOf(gc, p.Value.Text())
		if c == nil {
			return nil, false
		}
		b.value = c.Value.Value
	case models.KindQuery, models.KindUIElement:
		b.faked = true
	default:
		return nil, false
	}
	return b, true
}

// fake replaces faked bounds with random values on the right side of the
// other bound.
func (a *DataTestCaseAnalyzer) fake(vt models.ValueType, length bool, lo, hi *bound) error {
	if length {
		return a.fakeLength(lo, hi)
	}

	if lo != nil && lo.faked {
		var upper any
		if hi != nil && !hi.faked {
			g, err := datagen.NewRawGenerator(vt, a.random, nil, hi.value, a.maxStringLength)
			if err != nil {
				return err
			}
			upper = g.Generate(datagen.BoundaryJustBelowMax)
		}
		g, err := datagen.NewRawGenerator(vt, a.random, nil, upper, a.maxStringLength)
		if err != nil {
			return err
		}
		lo.value = g.Generate(datagen.BoundaryRandomBetweenMinAndMax)
	}

	if hi != nil && hi.faked {
		var lower any
		if lo != nil {
			g, err := datagen.NewRawGenerator(vt, a.random, lo.value, nil, a.maxStringLength)
			if err != nil {
				return err
			}
			lower = g.Generate(datagen.BoundaryJustAboveMin)
		}
		g, err := datagen.NewRawGenerator(vt, a.random, lower, nil, a.maxStringLength)
		if err != nil {
			return err
		}
		hi.value = g.Generate(datagen.BoundaryRandomBetweenMinAndMax)
	}
	return nil
}

func (a *DataTestCaseAnalyzer) fakeLength(lo, hi *bound) error {
	limit := int64(a.maxStringLength)
	if lo != nil && lo.faked {
		upper := limit - 1
		if hi != nil && !hi.faked {
			n, err := datagen.ToInt64(hi.value)
			if err != nil {
				return err
			}
			upper = max(n-1, 0)
		}
		lo.value = a.random.Int64Between(0, upper)
	}
	if hi != nil && hi.faked {
		lower := int64(1)
		if lo != nil {
			n, err := datagen.ToInt64(lo.value)
			if err != nil {
				return err
			}
			lower = min(n+1, limit)
		}
		hi.value = a.random.Int64Between(lower, limit)
	}
	return nil
}

func valueOf(b *bound) any {
	if b == nil {
		return nil
	}
	return b.value
}

func otherwiseOf(lo, hi *bound) []*models.Step {
	if lo != nil && len(lo.otherwise) > 0 {
		return lo.otherwise
	}
	if hi != nil {
		return hi.otherwise
	}
	return nil
}

func constantOf(gc *models.GenContext, name string) *models.Constant {
	if gc == nil || gc.Spec == nil {
		return nil
	}
	return gc.Spec.ConstantByName(name)
}

func valid() dtc.Pair { return dtc.Pair{Result: dtc.Valid} }

func invalid(otherwise []*models.Step) dtc.Pair {
	return dtc.Pair{Result: dtc.Invalid, Otherwise: otherwise}
}

func incompatible() dtc.Pair { return dtc.Pair{Result: dtc.Incompatible} }
