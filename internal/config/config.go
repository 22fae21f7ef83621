// Package config provides configuration loading and management for senaryo.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/denizgursoy/senaryo/internal/datagen"
	"github.com/denizgursoy/senaryo/internal/plan"
)

const (
	FormatText = "text"
	FormatGo   = "go"
	FormatHTML = "html"

	DefaultExtension = ".testcase"
	DefaultSeed      = "senaryo"
)

type (
	// Config represents the complete senaryo configuration
	Config struct {
		// Seed feeds every random choice; equal seeds give equal output.
		Seed     string          `yaml:"seed"`
		Language string          `yaml:"language"`
		Planners []PlannerConfig `yaml:"planners"`
		// Tags is a tag expression selecting the variants to generate from,
		// e.g. "@smoke and not @slow".
		Tags       string           `yaml:"tags"`
		Generation GenerationConfig `yaml:"generation"`
		Output     OutputConfig     `yaml:"output"`
		Log        LogConfig        `yaml:"log"`
	}

	// PlannerConfig pairs a data test case mix with a combination strategy.
	PlannerConfig struct {
		Mix         string `yaml:"mix"`
		Combination string `yaml:"combination"`
		// Index is only read by the index combination.
		Index int `yaml:"index"`
	}

	GenerationConfig struct {
		MaxStringLength int `yaml:"maxStringLength"`
		RandomTries     int `yaml:"randomTries"`
		RepetitionLimit int `yaml:"repetitionLimit"`
	}

	OutputConfig struct {
		// Format is text, go or html.
		Format    string `yaml:"format"`
		Extension string `yaml:"extension"`
		// Dir is where output files are written; empty writes next to the
		// specification.
		Dir         string `yaml:"dir"`
		MetricsFile string `yaml:"metricsFile"`
	}

	LogConfig struct {
		Level string `yaml:"level"`
	}
)

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Seed: DefaultSeed,
		Planners: []PlannerConfig{
			{Mix: plan.MixOnlyValid, Combination: plan.CombinationSingleRandom},
			{Mix: plan.MixJustOneInvalid, Combination: plan.CombinationShuffledOneWise},
		},
		Generation: GenerationConfig{
			MaxStringLength: datagen.DefaultMaxStringLength,
			RandomTries:     datagen.DefaultRandomTries,
			RepetitionLimit: datagen.DefaultRepetitionLimit,
		},
		Output: OutputConfig{
			Format:    FormatText,
			Extension: DefaultExtension,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Seed) == "" {
		return fmt.Errorf("seed is required")
	}
	if len(c.Planners) == 0 {
		return fmt.Errorf("at least one planner is required")
	}
	for i, p := range c.Planners {
		if _, err := plan.NewMix(p.Mix); err != nil {
			return fmt.Errorf("planners[%d]: %w", i, err)
		}
		if _, err := plan.NewStrategy(p.Combination, p.Index, nil); err != nil {
			return fmt.Errorf("planners[%d]: %w", i, err)
		}
		if p.Index < 0 {
			return fmt.Errorf("planners[%d]: index must not be negative", i)
		}
	}
	if c.Generation.MaxStringLength <= 0 {
		return fmt.Errorf("generation.maxStringLength must be positive")
	}
	if c.Generation.RandomTries <= 0 {
		return fmt.Errorf("generation.randomTries must be positive")
	}
	if c.Generation.RepetitionLimit <= 0 {
		return fmt.Errorf("generation.repetitionLimit must be positive")
	}
	switch c.Output.Format {
	case FormatText, FormatGo, FormatHTML:
	default:
		return fmt.Errorf("output.format must be %q, %q or %q, got %q", FormatText, FormatGo, FormatHTML, c.Output.Format)
	}
	if !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output.extension must start with a dot")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Seed != "" {
		c.Seed = other.Seed
	}
	if other.Language != "" {
		c.Language = other.Language
	}
	if len(other.Planners) > 0 {
		c.Planners = other.Planners
	}
	if other.Tags != "" {
		c.Tags = other.Tags
	}

	if other.Generation.MaxStringLength != 0 {
		c.Generation.MaxStringLength = other.Generation.MaxStringLength
	}
	if other.Generation.RandomTries != 0 {
		c.Generation.RandomTries = other.Generation.RandomTries
	}
	if other.Generation.RepetitionLimit != 0 {
		c.Generation.RepetitionLimit = other.Generation.RepetitionLimit
	}

	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.Extension != "" {
		c.Output.Extension = other.Output.Extension
	}
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.MetricsFile != "" {
		c.Output.MetricsFile = other.Output.MetricsFile
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// MergeConfigs combines the defaults with multiple configs into one.
// Later configs override earlier ones (last wins).
func MergeConfigs(configs ...*Config) *Config {
	result := DefaultConfig()
	for _, cfg := range configs {
		result.Merge(cfg)
	}
	return result
}
