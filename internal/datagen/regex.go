package datagen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasjones/reggen"

	"github.com/denizgursoy/senaryo/internal/random"
)

const (
	DefaultRandomTries     = 100
	DefaultRepetitionLimit = 10
)

// RegexBasedDataGenerator produces strings that match, or do not match, a
// regular expression.
//
// Negating an expression is an approximation: a wildcard such as `.` cannot
// be negated, so Invalid may return a matching string for expressions made
// only of wildcards.
type RegexBasedDataGenerator struct {
	expression      string
	matcher         *regexp.Regexp
	random          *random.Random
	tries           int
	repetitionLimit int
	maxLength       int
}

// NewRegexBasedDataGenerator compiles the expression. A leading ^ and a
// trailing $ are implied.
func NewRegexBasedDataGenerator(expression string, r *random.Random, tries, repetitionLimit, maxLength int) (*RegexBasedDataGenerator, error) {
	matcher, err := regexp.Compile(`^(?:` + expression + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid format %q: %w", expression, err)
	}
	if tries <= 0 {
		tries = DefaultRandomTries
	}
	if repetitionLimit <= 0 {
		repetitionLimit = DefaultRepetitionLimit
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxStringLength
	}
	return &RegexBasedDataGenerator{
		expression:      expression,
		matcher:         matcher,
		random:          r,
		tries:           tries,
		repetitionLimit: repetitionLimit,
		maxLength:       maxLength,
	}, nil
}

// Valid returns a string matching the expression.
func (g *RegexBasedDataGenerator) Valid() (string, error) {
	return g.generate(unanchored(g.expression))
}

// Invalid returns a string that does not match the expression. Random
// strings are tried first; the negated expression is the fallback.
func (g *RegexBasedDataGenerator) Invalid() (string, error) {
	for range g.tries {
		s := g.random.String(1, g.repetitionLimit)
		if !g.matcher.MatchString(s) {
			return s, nil
		}
	}
	s, err := g.generate(negate(g.expression))
	if err != nil {
		return "", err
	}
	if len(s) > g.maxLength {
		s = s[:g.maxLength]
	}
	return s, nil
}

// Matches reports whether s fully matches the expression.
func (g *RegexBasedDataGenerator) Matches(s string) bool {
	return g.matcher.MatchString(s)
}

func (g *RegexBasedDataGenerator) generate(expression string) (string, error) {
	gen, err := reggen.NewGenerator(expression)
	if err != nil {
		return "", fmt.Errorf("could not generate from %q: %w", expression, err)
	}
	gen.SetSeed(int64(g.random.Uint64()))
	return gen.Generate(g.repetitionLimit), nil
}

// negate flips a leading character class or wraps the expression in a
// negated class.
func negate(expression string) string {
	e := unanchored(expression)
	if strings.HasPrefix(e, "[^") {
		return "[" + e[2:]
	}
	if strings.HasPrefix(e, "[") {
		return "[^" + e[1:]
	}
	return "[^" + strings.NewReplacer("[", `\[`, "]", `\]`).Replace(e) + "]"
}

func unanchored(expression string) string {
	return strings.TrimSuffix(strings.TrimPrefix(expression, "^"), "$")
}
