package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/denizgursoy/senaryo/internal/models"
)

const GoExtension = "_testcases.go"

// GoRenderer writes the test cases as a Go fixture: a slice variable named
// after the feature, in the package of the directory it is written to.
type GoRenderer struct{}

func NewGoRenderer() *GoRenderer {
	return &GoRenderer{}
}

func (r *GoRenderer) Extension() string {
	return GoExtension
}

func (r *GoRenderer) Render(w io.Writer, doc Document) error {
	dir := filepath.Dir(doc.Path)
	pkgName, err := detectPackageName(dir, filepath.Base(doc.Path))
	if err != nil {
		return fmt.Errorf("could not detect the package of %s: %w", doc.Path, err)
	}

	// the import path is optional, fixtures outside a module still render
	var file *jen.File
	if pkgPath, err := detectImportPath(dir); err == nil {
		file = jen.NewFilePathName(pkgPath, pkgName)
	} else {
		file = jen.NewFile(pkgName)
	}
	file.HeaderComment("Code generated by senaryo. DO NOT EDIT.")

	name := identifier(doc.Feature) + "TestCases"
	if len(doc.Imports) > 0 {
		sources := make([]string, 0, len(doc.Imports))
		for _, imp := range doc.Imports {
			sources = append(sources, filepath.Base(imp))
		}
		file.Commentf("%s were generated from %s.", name, strings.Join(sources, ", "))
	}

	file.Var().Id(name).Op("=").Index().Struct(
		jen.Id("ID").String(),
		jen.Id("Name").String(),
		jen.Id("Tags").Index().String(),
		jen.Id("ShouldFail").Bool(),
		jen.Id("Sentences").Index().String(),
	).ValuesFunc(func(g *jen.Group) {
		for _, tc := range doc.TestCases {
			g.Values(testCaseDict(tc))
		}
	})

	return file.Render(w)
}

func testCaseDict(tc *models.TestCase) jen.Dict {
	tags := make([]jen.Code, 0, len(tc.Tags))
	for _, t := range tc.Tags {
		tags = append(tags, jen.Lit(t.String()))
	}
	sentences := make([]jen.Code, 0, len(tc.Sentences))
	for _, s := range tc.Sentences {
		sentences = append(sentences, jen.Lit(s.String()))
	}

	return jen.Dict{
		jen.Id("ID"):         jen.Lit(tc.ID),
		jen.Id("Name"):       jen.Lit(tc.Name),
		jen.Id("Tags"):       jen.Index().String().Values(tags...),
		jen.Id("ShouldFail"): jen.Lit(tc.ShouldFail),
		jen.Id("Sentences"):  jen.Index().String().Values(sentences...),
	}
}

// identifier turns a feature name into an exported Go identifier.
func identifier(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upper {
				r = unicode.ToUpper(r)
				upper = false
			}
			b.WriteRune(r)
		default:
			upper = true
		}
	}

	id := b.String()
	if id == "" {
		return "Generated"
	}
	if unicode.IsDigit([]rune(id)[0]) {
		return "Feature" + id
	}
	return id
}
