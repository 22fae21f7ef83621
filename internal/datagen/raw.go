package datagen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/random"
)

// ErrInvalidBound is returned when a bound cannot be read as the value type.
var ErrInvalidBound = errors.New("invalid bound")

const DefaultMaxStringLength = 500

// Boundary is an operation shared by the VALUE and LENGTH data test cases.
type Boundary int

const (
	BoundaryLowest Boundary = iota
	BoundaryRandomBelowMin
	BoundaryJustBelowMin
	BoundaryMin
	BoundaryJustAboveMin
	BoundaryZero
	BoundaryMedian
	BoundaryRandomBetweenMinAndMax
	BoundaryJustBelowMax
	BoundaryMax
	BoundaryJustAboveMax
	BoundaryRandomAboveMax
	BoundaryGreatest
)

type (
	// RawGenerator produces values of one type at the boundaries of a
	// range. STRING generators work on lengths and return strings.
	RawGenerator interface {
		RangeAnalyzer
		Generate(b Boundary) any
	}

	rawGenerator[T any] struct {
		*RangeGenerator[T]
		out func(T) any
	}
)

func (g rawGenerator[T]) Generate(b Boundary) any {
	var v T
	switch b {
	case BoundaryLowest:
		v = g.Lowest()
	case BoundaryRandomBelowMin:
		v = g.RandomBelowMin()
	case BoundaryJustBelowMin:
		v = g.JustBelowMin()
	case BoundaryMin:
		v = g.Min()
	case BoundaryJustAboveMin:
		v = g.JustAboveMin()
	case BoundaryZero:
		v = g.Zero()
	case BoundaryMedian:
		v = g.Median()
	case BoundaryRandomBetweenMinAndMax:
		v = g.RandomBetweenMinAndMax()
	case BoundaryJustBelowMax:
		v = g.JustBelowMax()
	case BoundaryMax:
		v = g.Max()
	case BoundaryJustAboveMax:
		v = g.JustAboveMax()
	case BoundaryRandomAboveMax:
		v = g.RandomAboveMax()
	case BoundaryGreatest:
		v = g.Greatest()
	default:
		return nil
	}
	return g.out(v)
}

// NewRawGenerator creates the generator of a value type. Nil bounds are
// absent. For STRING the bounds are lengths and maxStringLength caps them.
func NewRawGenerator(vt models.ValueType, r *random.Random, min, max any, maxStringLength int) (RawGenerator, error) {
	switch vt {
	case models.ValueTypeString:
		if maxStringLength <= 0 {
			maxStringLength = DefaultMaxStringLength
		}
		d := intDomain{lo: 0, hi: int64(maxStringLength), z: 0}
		return newIntRaw(d, r, min, max, ToInt64, func(n int64) any {
			return r.String(int(n), int(n))
		})
	case models.ValueTypeInteger:
		return newIntRaw(integerDomain, r, min, max, ToInt64, func(n int64) any { return n })
	case models.ValueTypeDouble:
		lo, err := optional(min, toFloat64)
		if err != nil {
			return nil, err
		}
		hi, err := optional(max, toFloat64)
		if err != nil {
			return nil, err
		}
		return rawGenerator[float64]{
			RangeGenerator: newRangeGenerator[float64](floatDomain{}, r, lo, hi),
			out:            func(f float64) any { return f },
		}, nil
	case models.ValueTypeDate:
		return newIntRaw(dateDomain, r, min, max, timeUnits(vt, daysOf), func(n int64) any { return fromDays(n) })
	case models.ValueTypeTime:
		return newIntRaw(timeDomain, r, min, max, timeUnits(vt, minuteOfDay), func(n int64) any { return fromMinuteOfDay(n) })
	case models.ValueTypeDateTime:
		return newIntRaw(dateTimeDomain, r, min, max, timeUnits(vt, minutesOf), func(n int64) any { return fromMinutes(n) })
	}
	return nil, fmt.Errorf("unsupported value type %q", vt)
}

// NewRangeAnalyzer creates the analyzer of a value type and range. It is
// the raw generator itself, used without drawing random values.
func NewRangeAnalyzer(vt models.ValueType, min, max any, maxStringLength int) (RangeAnalyzer, error) {
	return NewRawGenerator(vt, random.New(""), min, max, maxStringLength)
}

func newIntRaw(d intDomain, r *random.Random, min, max any, in func(any) (int64, error), out func(int64) any) (RawGenerator, error) {
	lo, err := optional(min, in)
	if err != nil {
		return nil, err
	}
	hi, err := optional(max, in)
	if err != nil {
		return nil, err
	}
	clamp := func(p *int64) *int64 {
		if p == nil {
			return nil
		}
		v := min64(max64(*p, d.lo), d.hi)
		return &v
	}
	return rawGenerator[int64]{
		RangeGenerator: newRangeGenerator[int64](d, r, clamp(lo), clamp(hi)),
		out:            out,
	}, nil
}

func optional[T any](v any, convert func(any) (T, error)) (*T, error) {
	if v == nil {
		return nil, nil
	}
	c, err := convert(v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// ToInt64 reads an integer, truncating decimals and saturating at the
// int64 limits.
func ToInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if x >= math.MaxInt64 {
			return math.MaxInt64, nil
		}
		if x <= math.MinInt64 {
			return math.MinInt64, nil
		}
		return int64(x), nil
	case string:
		s := strings.TrimSpace(x)
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ToInt64(f)
		}
	}
	return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidBound, v)
}

func toFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %v is not a number", ErrInvalidBound, v)
}

// ToTime reads a date, time or date and time. Strings are parsed with the
// layout of the value type first.
func ToTime(vt models.ValueType, v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range layoutsOf(vt) {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("%w: %v is not a %s", ErrInvalidBound, v, vt)
}

func layoutsOf(vt models.ValueType) []string {
	switch vt {
	case models.ValueTypeTime:
		return []string{models.TimeLayout, time.TimeOnly}
	case models.ValueTypeDateTime:
		return []string{models.DateTimeLayout, time.DateTime, time.RFC3339, models.DateLayout, time.DateOnly}
	}
	return []string{models.DateLayout, time.DateOnly, models.DateTimeLayout, time.DateTime, time.RFC3339}
}

func timeUnits(vt models.ValueType, units func(time.Time) int64) func(any) (int64, error) {
	return func(v any) (int64, error) {
		t, err := ToTime(vt, v)
		if err != nil {
			return 0, err
		}
		return units(t), nil
	}
}

// Coerce converts a value to the value type when possible and returns it
// unchanged otherwise.
func Coerce(vt models.ValueType, v any) any {
	switch vt {
	case models.ValueTypeInteger:
		if s, ok := v.(string); ok {
			if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
				return n
			}
		}
		if n, ok := v.(int); ok {
			return int64(n)
		}
	case models.ValueTypeDouble:
		switch x := v.(type) {
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
				return f
			}
		case int64:
			return float64(x)
		}
	case models.ValueTypeDate, models.ValueTypeTime, models.ValueTypeDateTime:
		if s, ok := v.(string); ok {
			if t, err := ToTime(vt, s); err == nil {
				return t
			}
		}
	case models.ValueTypeString:
		switch v.(type) {
		case int64, float64, bool:
			return fmt.Sprint(v)
		}
	}
	return v
}
