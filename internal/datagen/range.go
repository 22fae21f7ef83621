package datagen

import "github.com/denizgursoy/senaryo/internal/random"

type (
	// RangeGenerator produces values at the boundaries of a [min, max] range
	// inside a domain. A missing min is the successor of the lowest value
	// and a missing max is the predecessor of the greatest one, so there is
	// always room below min and above max.
	RangeGenerator[T any] struct {
		d        domain[T]
		r        *random.Random
		min, max T
	}

	// RangeAnalyzer tells which boundary regions of a range hold values.
	RangeAnalyzer interface {
		HasValuesBelowMin() bool
		HasValuesAboveMax() bool
		HasValuesBetweenMinAndMax() bool
		IsZeroBetweenMinAndMax() bool
		JustAboveMinExceedsMax() bool
		JustBelowMaxPrecedesMin() bool
	}
)

func newRangeGenerator[T any](d domain[T], r *random.Random, min, max *T) *RangeGenerator[T] {
	g := &RangeGenerator[T]{d: d, r: r}
	if min != nil {
		g.min = *min
	} else {
		g.min = d.succ(d.lowest())
	}
	if max != nil {
		g.max = *max
	} else {
		g.max = d.pred(d.greatest())
	}
	return g
}

func (g *RangeGenerator[T]) Lowest() T { return g.d.lowest() }

func (g *RangeGenerator[T]) RandomBelowMin() T {
	if !g.HasValuesBelowMin() {
		return g.d.lowest()
	}
	return g.d.between(g.r, g.d.lowest(), g.d.pred(g.min))
}

func (g *RangeGenerator[T]) JustBelowMin() T { return g.d.pred(g.min) }

func (g *RangeGenerator[T]) Min() T { return g.min }

func (g *RangeGenerator[T]) JustAboveMin() T { return g.d.succ(g.min) }

func (g *RangeGenerator[T]) Zero() T { return g.d.zero() }

func (g *RangeGenerator[T]) Median() T { return g.d.median(g.min, g.max) }

func (g *RangeGenerator[T]) RandomBetweenMinAndMax() T {
	return g.d.between(g.r, g.min, g.max)
}

func (g *RangeGenerator[T]) JustBelowMax() T { return g.d.pred(g.max) }

func (g *RangeGenerator[T]) Max() T { return g.max }

func (g *RangeGenerator[T]) JustAboveMax() T { return g.d.succ(g.max) }

func (g *RangeGenerator[T]) RandomAboveMax() T {
	if !g.HasValuesAboveMax() {
		return g.d.greatest()
	}
	return g.d.between(g.r, g.d.succ(g.max), g.d.greatest())
}

func (g *RangeGenerator[T]) Greatest() T { return g.d.greatest() }

func (g *RangeGenerator[T]) HasValuesBelowMin() bool {
	return g.d.compare(g.d.lowest(), g.min) < 0
}

func (g *RangeGenerator[T]) HasValuesAboveMax() bool {
	return g.d.compare(g.max, g.d.greatest()) < 0
}

func (g *RangeGenerator[T]) HasValuesBetweenMinAndMax() bool {
	return g.d.compare(g.min, g.max) <= 0
}

func (g *RangeGenerator[T]) IsZeroBetweenMinAndMax() bool {
	z := g.d.zero()
	return g.d.compare(g.min, z) <= 0 && g.d.compare(z, g.max) <= 0
}

func (g *RangeGenerator[T]) JustAboveMinExceedsMax() bool {
	return g.d.compare(g.d.succ(g.min), g.max) > 0
}

func (g *RangeGenerator[T]) JustBelowMaxPrecedesMin() bool {
	return g.d.compare(g.d.pred(g.max), g.min) < 0
}
