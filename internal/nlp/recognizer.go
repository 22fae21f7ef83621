package nlp

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
)

var (
	tokenPattern = regexp.MustCompile(
		`"((?:\\.|[^"\\])*)"` +
			`|\{([^{}]+)\}` +
			`|<([^<>]+)>` +
			`|\[([^\[\]]*)\]` +
			`|(-?\d+(?:\.\d+)?)` +
			`|(\p{L}+)`)

	listItem    = `\s*(?:"(?:\\.|[^"\\])*"|-?\d+(?:\.\d+)?)\s*`
	listPattern = regexp.MustCompile(`^` + listItem + `(?:,` + listItem + `)*$`)
)

type (
	// Recognizer annotates sentences with the entities it finds by pattern
	// and dictionary lookup: values between quotes, {UI Elements},
	// <UI Literals>, [constants], [value, lists], numbers, actions and
	// connectors.
	Recognizer struct {
		logger *slog.Logger
	}

	Option func(*Recognizer)
)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recognizer) {
		r.logger = logger
	}
}

func NewRecognizer(opts ...Option) *Recognizer {
	r := &Recognizer{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Annotate recognizes the entities of every step again. Malformed steps are
// reported as warnings.
func (r *Recognizer) Annotate(language string, steps []*models.Step, problems *models.Problems) {
	for _, step := range steps {
		step.NLPResult = r.Recognize(language, step.Content)
		if strings.Count(step.Content, "{") != strings.Count(step.Content, "}") && problems != nil {
			problems.AddWarning(fmt.Errorf("%s:%d: unbalanced braces in %q",
				step.Location.Filepath, step.Location.Line, step.Content))
		}
	}
	r.logger.Debug("annotated steps", slog.String("language", language), slog.Int("steps", len(steps)))
}

// Recognize returns the entities of a sentence in position order. The
// leading keyword is skipped.
func (r *Recognizer) Recognize(language, content string) *models.NLPResult {
	d := DictionaryOf(language)
	start := 0
	if _, kw, ok := d.SplitKeyword(content); ok {
		start = len(content) - len(strings.TrimLeft(content, " \t")) + len(kw)
	}

	result := &models.NLPResult{}
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(content[start:], -1) {
		pos, length := start+m[0], m[1]-m[0]
		group := func(i int) (string, bool) {
			if m[2*i] < 0 {
				return "", false
			}
			return content[start+m[2*i] : start+m[2*i+1]], true
		}
		add := func(kind models.EntityKind, value string) {
			result.Entities = append(result.Entities, models.Entity{Kind: kind, Value: value, Position: pos, Length: length})
		}

		if v, ok := group(1); ok {
			v = strings.ReplaceAll(v, `\"`, `"`)
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(v)), "select ") {
				add(models.EntityQuery, v)
				continue
			}
			add(models.EntityKindValue, v)
			continue
		}
		if v, ok := group(2); ok {
			add(models.EntityUIElement, strings.TrimSpace(v))
			continue
		}
		if v, ok := group(3); ok {
			add(models.EntityUILiteral, strings.TrimSpace(v))
			continue
		}
		if v, ok := group(4); ok {
			if listPattern.MatchString(v) {
				add(models.EntityValueList, v)
				continue
			}
			add(models.EntityConstant, strings.TrimSpace(v))
			continue
		}
		if v, ok := group(5); ok {
			add(models.EntityNumber, v)
			continue
		}
		if v, ok := group(6); ok {
			if action, found := d.Action(v); found {
				add(models.EntityUIAction, action)
			} else if d.IsConnector(v) {
				add(models.EntityUIConnector, strings.ToLower(v))
			}
		}
	}
	return result
}
