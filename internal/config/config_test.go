package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/denizgursoy/senaryo/internal/plan"
)

func TestDefaultConfig(t *testing.T) {
	t.Run("should be valid", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
		require.Equal(t, FormatText, cfg.Output.Format)
		require.Equal(t, DefaultExtension, cfg.Output.Extension)
		require.Len(t, cfg.Planners, 2)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "missing seed", modify: func(c *Config) { c.Seed = " " }},
		{name: "no planners", modify: func(c *Config) { c.Planners = nil }},
		{name: "unknown mix", modify: func(c *Config) { c.Planners[0].Mix = "some-invalid" }},
		{name: "unknown combination", modify: func(c *Config) { c.Planners[0].Combination = "pairwise" }},
		{name: "negative index", modify: func(c *Config) {
			c.Planners[0] = PlannerConfig{Mix: plan.MixUnfiltered, Combination: plan.CombinationIndex, Index: -1}
		}},
		{name: "zero string length", modify: func(c *Config) { c.Generation.MaxStringLength = 0 }},
		{name: "zero tries", modify: func(c *Config) { c.Generation.RandomTries = 0 }},
		{name: "zero repetition limit", modify: func(c *Config) { c.Generation.RepetitionLimit = 0 }},
		{name: "unknown format", modify: func(c *Config) { c.Output.Format = "pdf" }},
		{name: "extension without dot", modify: func(c *Config) { c.Output.Extension = "testcase" }},
		{name: "unknown log level", modify: func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_LogLevel(t *testing.T) {
	t.Run("should parse the level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Log.Level = "debug"

		level, err := cfg.LogLevel()
		require.NoError(t, err)
		require.Equal(t, slog.LevelDebug, level)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("should read every section", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "senaryo.yaml")
		content := `
seed: "42"
language: pt
tags: "@smoke"
planners:
  - mix: unfiltered
    combination: index
    index: 2
generation:
  maxStringLength: 20
output:
  format: go
  dir: out
log:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		require.Equal(t, "42", cfg.Seed)
		require.Equal(t, "pt", cfg.Language)
		require.Equal(t, "@smoke", cfg.Tags)
		require.Equal(t, []PlannerConfig{{Mix: plan.MixUnfiltered, Combination: plan.CombinationIndex, Index: 2}}, cfg.Planners)
		require.Equal(t, 20, cfg.Generation.MaxStringLength)
		require.Equal(t, FormatGo, cfg.Output.Format)
		require.Equal(t, "out", cfg.Output.Dir)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("should fail for invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "senaryo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("planners: [unclosed"), 0o644))

		_, err := LoadFromFile(path)
		require.Error(t, err)
	})
}

func TestConfig_SaveToFile(t *testing.T) {
	t.Run("should write a config that loads back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "senaryo.yaml")
		cfg := DefaultConfig()
		cfg.Seed = "saved"

		require.NoError(t, cfg.SaveToFile(path))
		loaded, err := LoadFromFile(path)
		require.NoError(t, err)
		require.Equal(t, cfg, loaded)
	})
}

func TestMergeConfigs(t *testing.T) {
	t.Run("should let later configs win for non-zero values", func(t *testing.T) {
		first := &Config{Seed: "a", Tags: "@a", Output: OutputConfig{Format: FormatGo}}
		second := &Config{Seed: "b", Generation: GenerationConfig{RandomTries: 7}}

		merged := MergeConfigs(first, nil, second)
		require.Equal(t, "b", merged.Seed)
		require.Equal(t, "@a", merged.Tags)
		require.Equal(t, FormatGo, merged.Output.Format)
		require.Equal(t, 7, merged.Generation.RandomTries)
		require.Equal(t, DefaultExtension, merged.Output.Extension)
		require.Equal(t, DefaultConfig().Planners, merged.Planners)
	})
}

func TestLoader_Load(t *testing.T) {
	t.Run("should find the project config in a parent directory", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "features", "login")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte("seed: project\n"), 0o644))

		cfg, err := NewLoader(nested, nil).Load("")
		require.NoError(t, err)
		require.Equal(t, "project", cfg.Seed)
	})

	t.Run("should apply overrides last", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigFile), []byte("seed: project\n"), 0o644))

		cfg, err := NewLoader(root, nil).Load("", &Config{Seed: "flag"})
		require.NoError(t, err)
		require.Equal(t, "flag", cfg.Seed)
	})

	t.Run("should fail for a missing explicit file", func(t *testing.T) {
		_, err := NewLoader(t.TempDir(), nil).Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("should reject an invalid result", func(t *testing.T) {
		_, err := NewLoader(t.TempDir(), nil).Load("", &Config{Output: OutputConfig{Format: "pdf"}})
		require.Error(t, err)
	})
}
