package render

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
)

const indent = "  "

// TextRenderer writes the Gherkin-like test case document:
//
//	import "login.feature"
//
//	@generated @scenario(1) @variant(1)
//	Test case: Successful sign in - 1
//	  When I fill <username> with "bob" # {Username}, valid: random value
type TextRenderer struct {
	extension string
}

func NewTextRenderer(extension string) *TextRenderer {
	return &TextRenderer{extension: extension}
}

func (r *TextRenderer) Extension() string {
	return r.extension
}

func (r *TextRenderer) Render(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)

	header := false
	if doc.Language != "" && !strings.EqualFold(doc.Language, "en") {
		fmt.Fprintf(bw, "# language: %s\n", doc.Language)
		header = true
	}
	for _, imp := range doc.Imports {
		fmt.Fprintf(bw, "import %q\n", relativeTo(doc.Path, imp))
		header = true
	}

	keyword := testCaseKeyword(doc.Language)
	for i, tc := range doc.TestCases {
		if i > 0 || header {
			bw.WriteString("\n")
		}
		if len(tc.Tags) > 0 {
			bw.WriteString(tagLine(tc.Tags) + "\n")
		}
		fmt.Fprintf(bw, "%s: %s\n", keyword, tc.Name)
		for _, s := range tc.Sentences {
			bw.WriteString(indent + s.String() + "\n")
		}
	}

	return bw.Flush()
}

func tagLine(tags []models.Tag) string {
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// relativeTo makes an import path relative to the directory of the output
// document, keeping it unchanged when that is not possible.
func relativeTo(output, imp string) string {
	if output == "" {
		return filepath.ToSlash(imp)
	}
	rel, err := filepath.Rel(filepath.Dir(output), imp)
	if err != nil {
		return filepath.ToSlash(imp)
	}
	return filepath.ToSlash(rel)
}
