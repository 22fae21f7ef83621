package datagen

import (
	"cmp"
	"math"
	"time"

	"github.com/denizgursoy/senaryo/internal/random"
)

// domain is an ordered set of values with saturating neighbours.
type domain[T any] interface {
	lowest() T
	greatest() T
	zero() T
	succ(T) T
	pred(T) T
	median(a, b T) T
	between(r *random.Random, a, b T) T
	compare(a, b T) int
}

// intDomain is a closed range of integers. Dates and times are mapped onto
// it in days or minutes.
type intDomain struct {
	lo, hi, z int64
}

func (d intDomain) lowest() int64   { return d.lo }
func (d intDomain) greatest() int64 { return d.hi }
func (d intDomain) zero() int64     { return d.z }

func (d intDomain) succ(x int64) int64 {
	if x >= d.hi {
		return d.hi
	}
	return x + 1
}

func (d intDomain) pred(x int64) int64 {
	if x <= d.lo {
		return d.lo
	}
	return x - 1
}

// median rounds half up without overflowing.
func (d intDomain) median(a, b int64) int64 {
	if a > b {
		a, b = b, a
	}
	diff := uint64(b) - uint64(a)
	return a + int64(diff/2+diff%2)
}

func (d intDomain) between(r *random.Random, a, b int64) int64 {
	return r.Int64Between(a, b)
}

func (d intDomain) compare(a, b int64) int {
	return cmp.Compare(a, b)
}

const doubleDelta = 0.01

// floatDomain covers every finite float64 with a step of doubleDelta.
type floatDomain struct{}

func (floatDomain) lowest() float64   { return -math.MaxFloat64 }
func (floatDomain) greatest() float64 { return math.MaxFloat64 }
func (floatDomain) zero() float64     { return 0 }

func (floatDomain) succ(x float64) float64 {
	if x >= math.MaxFloat64 {
		return math.MaxFloat64
	}
	y := round2(x + doubleDelta)
	if y <= x {
		y = math.Nextafter(x, math.Inf(1))
	}
	return math.Min(y, math.MaxFloat64)
}

func (floatDomain) pred(x float64) float64 {
	if x <= -math.MaxFloat64 {
		return -math.MaxFloat64
	}
	y := round2(x - doubleDelta)
	if y >= x {
		y = math.Nextafter(x, math.Inf(-1))
	}
	return math.Max(y, -math.MaxFloat64)
}

func (floatDomain) median(a, b float64) float64 {
	return round2(a/2 + b/2)
}

func (floatDomain) between(r *random.Random, a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	v := round2(r.Float64Between(a, b))
	return math.Min(math.Max(v, a), b)
}

func (floatDomain) compare(a, b float64) int {
	return cmp.Compare(a, b)
}

// round2 rounds to two decimals when the value is small enough to be
// scaled without losing it.
func round2(v float64) float64 {
	if math.Abs(v) >= 1e15 {
		return v
	}
	return math.Round(v*100) / 100
}

const (
	secondsPerDay  = 24 * 60 * 60
	minutesPerDay  = 24 * 60
	secondsPerUnit = 60
)

var (
	firstDay = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	lastDay  = time.Date(9999, time.December, 31, 23, 59, 0, 0, time.UTC)

	dateDomain     = intDomain{lo: daysOf(firstDay), hi: daysOf(lastDay), z: 0}
	timeDomain     = intDomain{lo: 0, hi: minutesPerDay - 1, z: 0}
	dateTimeDomain = intDomain{lo: minutesOf(firstDay), hi: minutesOf(lastDay), z: 0}
	integerDomain  = intDomain{lo: math.MinInt64, hi: math.MaxInt64, z: 0}
)

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// daysOf returns the days since the Unix epoch.
func daysOf(t time.Time) int64 {
	return floorDiv(t.Unix(), secondsPerDay)
}

func fromDays(days int64) time.Time {
	return time.Unix(days*secondsPerDay, 0).UTC()
}

// minutesOf returns the minutes since the Unix epoch.
func minutesOf(t time.Time) int64 {
	return floorDiv(t.Unix(), secondsPerUnit)
}

func fromMinutes(minutes int64) time.Time {
	return time.Unix(minutes*secondsPerUnit, 0).UTC()
}

// minuteOfDay ignores the date part.
func minuteOfDay(t time.Time) int64 {
	return int64(t.Hour()*60 + t.Minute())
}

// fromMinuteOfDay uses the same zero date as time.Parse with a time-only
// layout.
func fromMinuteOfDay(m int64) time.Time {
	return time.Date(0, time.January, 1, int(m/60), int(m%60), 0, 0, time.UTC)
}
