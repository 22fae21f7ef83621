package render

import (
	"fmt"
	"html/template"
	"io"
	"slices"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
	"github.com/denizgursoy/senaryo/internal/nlp"
)

const HTMLExtension = ".html"

// referenceTags are added to every generated test case and say nothing
// about what it covers.
var referenceTags = []string{models.TagGenerated, models.TagFail, models.TagScenario, models.TagVariant}

type (
	// HTMLRenderer writes a self-contained page listing the test cases of a
	// document, grouped by expected outcome and tag set.
	HTMLRenderer struct {
		tmpl *template.Template
	}

	// tagGroup holds test cases sharing the same tag combination.
	tagGroup struct {
		TagLabel  string
		TestCases []testCaseView
	}

	// outcomeSection holds the test cases expected to fail or to pass.
	outcomeSection struct {
		Label     string
		CSSClass  string
		Count     int
		TagGroups []tagGroup
	}

	testCaseView struct {
		Name      string
		Tags      []string
		Sentences []sentenceView
		Location  string
	}

	sentenceView struct {
		Keyword string
		Text    string
		Comment string
	}

	htmlSummary struct {
		TestCases  int
		ShouldPass int
		ShouldFail int
		Sentences  int
	}

	// htmlData is the view model passed to the template.
	htmlData struct {
		Feature  string
		Language string
		Sources  []string
		Summary  htmlSummary
		Sections []outcomeSection
	}
)

func NewHTMLRenderer() *HTMLRenderer {
	tmpl := template.Must(template.New("testcases").Funcs(template.FuncMap{
		"summaryClass": func(failing int) string {
			if failing > 0 {
				return "has-failures"
			}
			return "all-passing"
		},
	}).Parse(htmlTemplate))
	return &HTMLRenderer{tmpl: tmpl}
}

func (r *HTMLRenderer) Extension() string {
	return HTMLExtension
}

func (r *HTMLRenderer) Render(w io.Writer, doc Document) error {
	if err := r.tmpl.Execute(w, buildHTMLData(doc)); err != nil {
		return fmt.Errorf("could not render HTML document: %w", err)
	}
	return nil
}

// buildHTMLData puts the test cases expected to fail first. Within a
// section the order of generation is kept.
func buildHTMLData(doc Document) htmlData {
	var failing, passing []*models.TestCase
	data := htmlData{Feature: doc.Feature, Language: doc.Language}
	for _, imp := range doc.Imports {
		data.Sources = append(data.Sources, relativeTo(doc.Path, imp))
	}

	split := keywordSplitter(doc.Language)
	for _, tc := range doc.TestCases {
		data.Summary.TestCases++
		data.Summary.Sentences += len(tc.Sentences)
		if tc.ShouldFail {
			failing = append(failing, tc)
		} else {
			passing = append(passing, tc)
		}
	}
	data.Summary.ShouldFail = len(failing)
	data.Summary.ShouldPass = len(passing)

	if len(failing) > 0 {
		data.Sections = append(data.Sections, outcomeSection{
			Label:     "Expected to fail",
			CSSClass:  "failing",
			Count:     len(failing),
			TagGroups: groupByTags(failing, split),
		})
	}
	if len(passing) > 0 {
		data.Sections = append(data.Sections, outcomeSection{
			Label:     "Expected to pass",
			CSSClass:  "passing",
			Count:     len(passing),
			TagGroups: groupByTags(passing, split),
		})
	}
	return data
}

// groupByTags groups test cases by their sorted tag set, reference tags
// left out. Test cases without tags go into an "Untagged" group shown last.
func groupByTags(testCases []*models.TestCase, split func(*models.Step) sentenceView) []tagGroup {
	groups := make(map[string][]testCaseView)
	for _, tc := range testCases {
		key := tagKey(tc.Tags)
		groups[key] = append(groups[key], viewOf(tc, split))
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		if k != untagged {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	if _, ok := groups[untagged]; ok {
		keys = append(keys, untagged)
	}

	result := make([]tagGroup, 0, len(keys))
	for _, k := range keys {
		result = append(result, tagGroup{TagLabel: k, TestCases: groups[k]})
	}
	return result
}

const untagged = "Untagged"

func tagKey(tags []models.Tag) string {
	var names []string
	for _, t := range tags {
		if !slices.Contains(referenceTags, t.Name) {
			names = append(names, t.String())
		}
	}
	if len(names) == 0 {
		return untagged
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func viewOf(tc *models.TestCase, split func(*models.Step) sentenceView) testCaseView {
	v := testCaseView{Name: tc.Name}
	for _, t := range tc.Tags {
		v.Tags = append(v.Tags, t.String())
	}
	for _, s := range tc.Sentences {
		v.Sentences = append(v.Sentences, split(s))
	}
	if tc.Location.Filepath != "" {
		v.Location = fmt.Sprintf("%s:%d", tc.Location.Filepath, tc.Location.Line)
	}
	return v
}

// keywordSplitter separates the leading keyword of sentences so that it
// can be highlighted.
func keywordSplitter(language string) func(*models.Step) sentenceView {
	dict := nlp.DictionaryOf(language)
	return func(s *models.Step) sentenceView {
		content := strings.TrimSpace(s.Content)
		v := sentenceView{Text: content, Comment: s.Comment}
		if _, kw, ok := dict.SplitKeyword(content); ok {
			v.Keyword = kw
			v.Text = strings.TrimSpace(content[len(kw):])
		}
		return v
	}
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Feature}} test cases</title>
<style>
  *, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #f8f9fa; color: #212529; line-height: 1.6; padding: 2rem;
  }
  h1 { font-size: 1.5rem; margin-bottom: 0.25rem; font-weight: 700; }
  .sources { font-size: 0.8rem; color: #868e96; margin-bottom: 1.5rem; }
  .summary {
    display: flex; gap: 1rem; flex-wrap: wrap; margin-bottom: 2rem;
    padding: 1rem 1.25rem; background: #fff; border-radius: 10px;
  }
  .summary.all-passing { border: 2px solid #2b8a3e; }
  .summary.has-failures { border: 2px solid #c92a2a; }
  .summary-item { text-align: center; min-width: 90px; }
  .summary-item .number { font-size: 1.8rem; font-weight: 700; }
  .summary-item .label { font-size: 0.7rem; text-transform: uppercase; color: #868e96; }
  .number.green { color: #2b8a3e; }
  .number.red   { color: #c92a2a; }
  .number.blue  { color: #1864ab; }
  .section { margin-bottom: 2rem; }
  .section-header {
    font-size: 1.1rem; font-weight: 700; margin-bottom: 0.75rem;
    padding-bottom: 0.4rem; border-bottom: 2px solid #dee2e6;
  }
  .section.failing .section-header { color: #c92a2a; }
  .section.passing .section-header { color: #2b8a3e; }
  .tag-group { margin-bottom: 1.25rem; }
  .tag-group-label { font-size: 0.8rem; font-weight: 600; color: #495057; margin-bottom: 0.4rem; }
  .test-case {
    margin-bottom: 0.5rem; background: #fff; border-radius: 8px;
    border: 1px solid #e9ecef; overflow: hidden;
  }
  .section.failing .test-case { border-left: 4px solid #ff6b6b; }
  .section.passing .test-case { border-left: 4px solid #69db7c; }
  .test-case-header { padding: 0.6rem 1rem; cursor: pointer; user-select: none; }
  .test-case-name { font-weight: 600; font-size: 0.9rem; }
  .location { font-size: 0.75rem; color: #868e96; margin-left: 0.5rem; }
  .tag {
    background: #e9ecef; border-radius: 4px; padding: 0.1rem 0.45rem;
    font-size: 0.68rem; color: #495057;
  }
  .sentences { padding: 0.5rem 1rem; display: none; background: #1e1f22; }
  .test-case.open .sentences { display: block; }
  .sentence { font-family: "JetBrains Mono", "Fira Code", monospace; font-size: 0.82rem; color: #BCBEC4; }
  .keyword { color: #CF8E6D; font-weight: 600; }
  .comment { color: #6F737A; }
  .empty-msg { color: #868e96; font-style: italic; padding: 1rem 0; text-align: center; }
</style>
</head>
<body>
<h1>{{.Feature}}</h1>
{{if .Sources}}<div class="sources">Generated from {{range $i, $s := .Sources}}{{if $i}}, {{end}}{{$s}}{{end}}</div>{{end}}

<div class="summary {{summaryClass .Summary.ShouldFail}}">
  <div class="summary-item"><div class="number blue">{{.Summary.TestCases}}</div><div class="label">Test cases</div></div>
  <div class="summary-item"><div class="number green">{{.Summary.ShouldPass}}</div><div class="label">Expected to pass</div></div>
  <div class="summary-item"><div class="number red">{{.Summary.ShouldFail}}</div><div class="label">Expected to fail</div></div>
  <div class="summary-item"><div class="number blue">{{.Summary.Sentences}}</div><div class="label">Sentences</div></div>
</div>

{{if not .Sections}}<div class="empty-msg">No test cases were generated.</div>{{end}}

{{range .Sections}}
<div class="section {{.CSSClass}}">
  <div class="section-header">{{.Label}} ({{.Count}})</div>
  {{range .TagGroups}}
  <div class="tag-group">
    <div class="tag-group-label"># {{.TagLabel}}</div>
    {{range .TestCases}}
    <div class="test-case">
      <div class="test-case-header" onclick="this.parentElement.classList.toggle('open')">
        <span class="test-case-name">{{.Name}}</span>{{if .Location}}<span class="location">{{.Location}}</span>{{end}}
        <br>{{range .Tags}}<span class="tag">{{.}}</span> {{end}}
      </div>
      <div class="sentences">
        {{range .Sentences}}
        <div class="sentence"><span class="keyword">{{.Keyword}}</span> {{.Text}}{{if .Comment}} <span class="comment"># {{.Comment}}</span>{{end}}</div>
        {{end}}
      </div>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}

<script>
document.querySelectorAll('.section.failing .test-case').forEach(function(el) { el.classList.add('open'); });
</script>
</body>
</html>
`
