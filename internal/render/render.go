// Package render writes generated test cases to documents.
package render

import (
	"path/filepath"
	"strings"

	"github.com/denizgursoy/senaryo/internal/models"
)

// Document is what one specification file produced, ready to be written to
// Path.
type Document struct {
	Path      string
	Feature   string
	Language  string
	Imports   []string
	TestCases []*models.TestCase
}

var testCaseKeywords = map[string]string{
	"en": "Test case",
	"pt": "Caso de teste",
}

func testCaseKeyword(language string) string {
	if k, ok := testCaseKeywords[strings.ToLower(language)]; ok {
		return k
	}
	return testCaseKeywords["en"]
}

// OutputPath returns where the document generated from source is written:
// next to it, or inside dir when dir is not empty, with the extension
// replacing the source's.
func OutputPath(source, dir, extension string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + extension
	if dir == "" {
		return filepath.Join(filepath.Dir(source), base)
	}
	return filepath.Join(dir, base)
}
