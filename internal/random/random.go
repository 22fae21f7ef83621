// Package random provides the seeded random helpers every generator uses.
// Nothing in the module reads an ambient random source: given the same seed
// the whole pipeline produces the same output.
package random

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// Source is the narrow random source the helpers are built on.
type Source = rand.Source

// DefaultCharset is used by String when no charset is given.
const DefaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Random wraps a seeded source with the helpers the generators need.
type Random struct {
	r *rand.Rand
}

// New creates a Random seeded from a string.
func New(seed string) *Random {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	s1 := h.Sum64()
	_, _ = h.Write([]byte{0x5e, 0xed})
	return FromSource(rand.NewPCG(s1, h.Sum64()))
}

// FromSource creates a Random from any source.
func FromSource(src Source) *Random {
	return &Random{r: rand.New(src)}
}

// Uint64 returns a random uint64.
func (r *Random) Uint64() uint64 {
	return r.r.Uint64()
}

// Float64 returns a value in [0, 1).
func (r *Random) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Bool returns a random boolean.
func (r *Random) Bool() bool {
	return r.r.Uint64()&1 == 1
}

// Int64Between returns a value in [min, max]. Bounds are swapped when
// reversed; the whole int64 range is supported.
func (r *Random) Int64Between(min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(r.r.Uint64())
	}
	return min + int64(r.r.Uint64N(span+1))
}

// Float64Between returns a value in [min, max] without overflowing for
// bounds near the float64 limits.
func (r *Random) Float64Between(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	f := r.r.Float64()
	v := min*(1-f) + max*f
	return math.Min(math.Max(v, min), max)
}

// TimeBetween returns a time in [min, max] truncated to the given step.
func (r *Random) TimeBetween(min, max time.Time, step time.Duration) time.Time {
	if max.Before(min) {
		min, max = max, min
	}
	steps := int64(max.Sub(min) / step)
	return min.Add(time.Duration(r.Int64Between(0, steps)) * step)
}

// String returns a random string with a length in [minLength, maxLength].
func (r *Random) String(minLength, maxLength int) string {
	return r.StringFrom(DefaultCharset, minLength, maxLength)
}

// StringFrom returns a random string of characters from charset with a
// length in [minLength, maxLength].
func (r *Random) StringFrom(charset string, minLength, maxLength int) string {
	if minLength < 0 {
		minLength = 0
	}
	if maxLength < minLength {
		maxLength = minLength
	}
	chars := []rune(charset)
	if len(chars) == 0 {
		chars = []rune(DefaultCharset)
	}
	n := int(r.Int64Between(int64(minLength), int64(maxLength)))
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteRune(chars[r.r.IntN(len(chars))])
	}
	return b.String()
}

// Shuffle randomizes the order of n elements.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// Pick returns a random element of values.
func Pick[T any](r *Random, values []T) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}
	return values[r.IntN(len(values))], true
}
