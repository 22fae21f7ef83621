package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrReference is returned when the references of a query cannot be used,
// e.g. a query naming two databases or a database and a table.
var ErrReference = errors.New("invalid query reference")

// ReferenceKind distinguishes names between brackets from UI Element
// references between braces.
type ReferenceKind int

const (
	// ReferenceName is written as [Name] and names a database, a table or a
	// constant.
	ReferenceName ReferenceKind = iota
	// ReferenceUIElement is written as {Name} or {Feature:Name}.
	ReferenceUIElement
)

// Reference is a name found inside a query.
type Reference struct {
	Kind  ReferenceKind
	Name  string
	Start int
	End   int
	// Qualifier is set when the reference is immediately followed by a dot,
	// as in [My DB].users.
	Qualifier bool
}

var referencePattern = regexp.MustCompile(`\[([^\[\]]+)\]|\{([^{}]+)\}`)

// References returns the references of a query in order of appearance.
// Text inside single-quoted literals is skipped.
func References(query string) []Reference {
	var refs []Reference
	for _, m := range referencePattern.FindAllStringSubmatchIndex(query, -1) {
		if insideQuotes(query, m[0]) {
			continue
		}
		ref := Reference{Start: m[0], End: m[1]}
		if m[2] >= 0 {
			ref.Kind = ReferenceName
			ref.Name = strings.TrimSpace(query[m[2]:m[3]])
		} else {
			ref.Kind = ReferenceUIElement
			ref.Name = strings.TrimSpace(query[m[4]:m[5]])
		}
		ref.Qualifier = m[1] < len(query) && query[m[1]] == '.'
		refs = append(refs, ref)
	}
	return refs
}

// Replace rewrites every reference with what replace returns. A qualifier
// replaced by an empty string loses its trailing dot too.
func Replace(query string, refs []Reference, replace func(Reference) (string, error)) (string, error) {
	var b strings.Builder
	last := 0
	for _, ref := range refs {
		text, err := replace(ref)
		if err != nil {
			return "", err
		}
		b.WriteString(query[last:ref.Start])
		b.WriteString(text)
		last = ref.End
		if text == "" && ref.Qualifier {
			last++
		}
	}
	b.WriteString(query[last:])
	return b.String(), nil
}

// Literal renders a value as a SQL literal.
func Literal(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case time.Time:
		return quote(x.Format(time.DateTime))
	case string:
		return quote(x)
	}
	return quote(fmt.Sprint(v))
}

// TableName returns the identifier an in-memory table is created with.
func TableName(name string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune('_')
	}
	return `"` + b.String() + `"`
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func insideQuotes(s string, pos int) bool {
	return strings.Count(s[:pos], "'")%2 == 1
}
