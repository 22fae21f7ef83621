package gherkin_parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	messages "github.com/cucumber/messages/go/v21"
	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/senaryo/internal/models"
)

const loginFeature = `@web
Feature: Login

  Background:
    Given I am on <login page>

  @smoke
  Scenario: Successful sign in
    When I fill {Username}
    * I fill {Password}
    Then I see "Welcome"

  Scenario Outline: Sign in as <role>
    When I fill {Username} with "<name>"
    Then I see "<greeting>"

    @admin
    Examples:
      | role  | name  | greeting    |
      | admin | alice | Hello admin |

    Examples:
      | role  | name | greeting   |
      | guest | bob  | Hello guest |
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func contents(steps []*models.Step) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Content)
	}
	return out
}

func TestParse(t *testing.T) {
	t.Run("should return feature", func(t *testing.T) {
		document, err := ParseGherkinFile(strings.NewReader(loginFeature))

		require.NoError(t, err)
		require.Equal(t, "Login", document.Feature.Name)
	})

	t.Run("should return error for invalid documents", func(t *testing.T) {
		_, err := ParseGherkinFile(strings.NewReader("Scenario without a feature\n  When x\n  Feature:"))

		require.Error(t, err)
	})
}

func TestReadFeature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login.feature")
	writeFile(t, path, loginFeature)

	feature, err := ReadFeature(path)
	require.NoError(t, err)

	t.Run("should read scenarios in order", func(t *testing.T) {
		require.Equal(t, "Login", feature.Name)
		require.Equal(t, "en", feature.Language)
		require.Len(t, feature.Scenarios, 2)
		require.Equal(t, "Successful sign in", feature.Scenarios[0].Name)
		require.Equal(t, []models.Tag{{Name: "smoke"}}, feature.Scenarios[0].Tags)
	})

	t.Run("should prepend background steps and keep keywords", func(t *testing.T) {
		variants := feature.Scenarios[0].Variants
		require.Len(t, variants, 1)
		require.Equal(t, []string{
			"Given I am on <login page>",
			"When I fill {Username}",
			"And I fill {Password}",
			`Then I see "Welcome"`,
		}, contents(variants[0].Steps))

		nodeTypes := make([]models.NodeType, 0, len(variants[0].Steps))
		for _, s := range variants[0].Steps {
			nodeTypes = append(nodeTypes, s.NodeType)
		}
		require.Equal(t, []models.NodeType{models.NodeGiven, models.NodeWhen, models.NodeAnd, models.NodeThen}, nodeTypes)
		require.Equal(t, path, variants[0].Steps[1].Location.Filepath)
		require.Equal(t, 9, variants[0].Steps[1].Location.Line)
		require.Equal(t, 5, variants[0].Steps[1].Location.Column)
	})

	t.Run("should make one variant per example row", func(t *testing.T) {
		variants := feature.Scenarios[1].Variants
		require.Len(t, variants, 2)
		require.Equal(t, "Sign in as admin", variants[0].Name)
		require.Equal(t, []string{
			"Given I am on <login page>",
			`When I fill {Username} with "alice"`,
			`Then I see "Hello admin"`,
		}, contents(variants[0].Steps))
		require.True(t, models.HasTag(variants[0].Tags, "admin"))
		require.True(t, models.HasTag(variants[0].Tags, "web"))
		require.False(t, models.HasTag(variants[1].Tags, "admin"))
		require.Equal(t, 20, variants[0].Location.Line)
	})
}

func TestLocationOf(t *testing.T) {
	t.Run("should copy line and column", func(t *testing.T) {
		loc := locationOf(&messages.Location{Line: 3, Column: 7}, "login.feature")

		require.Equal(t, models.Location{Line: 3, Column: 7, Filepath: "login.feature"}, loc)
	})

	t.Run("should keep the path without a location", func(t *testing.T) {
		require.Equal(t, models.Location{Filepath: "login.feature"}, locationOf(nil, "login.feature"))
	})
}

func TestFilterByTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login.feature")
	writeFile(t, path, loginFeature)
	feature, err := ReadFeature(path)
	require.NoError(t, err)

	t.Run("should keep everything without an expression", func(t *testing.T) {
		filtered, err := FilterByTags(feature.Scenarios, " ")
		require.NoError(t, err)
		require.Equal(t, feature.Scenarios, filtered)
	})

	t.Run("should keep matching variants", func(t *testing.T) {
		filtered, err := FilterByTags(feature.Scenarios, "@admin or @smoke")
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		require.Len(t, filtered[1].Variants, 1)
		require.Equal(t, "Sign in as admin", filtered[1].Variants[0].Name)
		require.Len(t, feature.Scenarios[1].Variants, 2)
	})

	t.Run("should inherit feature tags", func(t *testing.T) {
		filtered, err := FilterByTags(feature.Scenarios, "@web and not @smoke")
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		require.Len(t, filtered[0].Variants, 2)
	})

	t.Run("should reject invalid expressions", func(t *testing.T) {
		_, err := FilterByTags(feature.Scenarios, "@a and (")
		require.Error(t, err)
	})
}

func TestSearchFeatureFilesIn(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{
		"feat.feature",
		"feature-source-1/source-one.feature",
		"feature-source-2/nested/source-two.feature",
		"notes.txt",
	} {
		writeFile(t, filepath.Join(root, f), "Feature: x\n")
	}

	t.Run("should return all feature files in a directory", func(t *testing.T) {
		actualFiles, err := SearchFeatureFilesIn([]string{root})

		require.NoError(t, err)
		require.Equal(t, []string{
			filepath.Join(root, "feat.feature"),
			filepath.Join(root, "feature-source-1", "source-one.feature"),
			filepath.Join(root, "feature-source-2", "nested", "source-two.feature"),
		}, actualFiles)
	})

	t.Run("should expand glob patterns and remove duplicates", func(t *testing.T) {
		actualFiles, err := SearchFeatureFilesIn([]string{
			filepath.Join(root, "**", "source-*.feature"),
			filepath.Join(root, "feature-source-1", "source-one.feature"),
		})

		require.NoError(t, err)
		require.Equal(t, []string{
			filepath.Join(root, "feature-source-1", "source-one.feature"),
			filepath.Join(root, "feature-source-2", "nested", "source-two.feature"),
		}, actualFiles)
	})

	t.Run("should fail for missing files", func(t *testing.T) {
		_, err := SearchFeatureFilesIn([]string{filepath.Join(root, "missing.feature")})
		require.Error(t, err)
	})
}

func TestParseTag(t *testing.T) {
	require.Equal(t, models.Tag{Name: "ignore"}, ParseTag("@ignore"))
	require.Equal(t, models.Tag{Name: "scenario", Content: []string{"1", "2"}}, ParseTag("@scenario(1, 2)"))
	require.Equal(t, models.Tag{Name: "odd(", Content: nil}, ParseTag("@odd("))
}
