// Package main provides the senaryo binary entry point. Senaryo generates
// test cases from specifications: feature files whose steps reference
// constrained UI Elements declared in YAML documents.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/denizgursoy/senaryo/internal/app"
	"github.com/denizgursoy/senaryo/internal/config"
	"github.com/denizgursoy/senaryo/internal/nlp"
	"github.com/denizgursoy/senaryo/internal/specfile"
)

const (
	Version = "0.1.0"
	appName = "senaryo"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Test case generator",
		Long:          "Senaryo generates test cases with valid and invalid data from feature files and UI Element declarations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		configPath string
		overrides  config.Config
	)

	cmd := &cobra.Command{
		Use:   "generate <path>...",
		Short: "Generate test cases",
		Long: `Generate test cases for feature files, YAML documents, directories or
glob patterns such as "specs/**/*.feature". Without arguments the working
directory is searched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return run(cmd.Context(), configPath, &overrides, args)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML), defaults to "+config.ProjectConfigFile+" in the working directory or its parents")
	cmd.Flags().StringVar(&overrides.Seed, "seed", "", "Seed of every random choice")
	cmd.Flags().StringVar(&overrides.Tags, "tags", "", `Tag expression selecting variants, e.g. "@smoke and not @slow"`)
	cmd.Flags().StringVar(&overrides.Output.Format, "format", "", "Output format (text, go, html)")
	cmd.Flags().StringVarP(&overrides.Output.Dir, "out", "o", "", "Output directory, defaults to next to each feature")
	cmd.Flags().StringVar(&overrides.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&overrides.Output.MetricsFile, "metrics-file", "", "Write generation metrics to this Prometheus textfile")
	return cmd
}

func run(ctx context.Context, configPath string, overrides *config.Config, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewLoader("", slog.Default()).Load(configPath, overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	recognizer := nlp.NewRecognizer(nlp.WithLogger(logger))
	loader := specfile.NewLoader(recognizer,
		specfile.WithDefaultLanguage(cfg.Language),
		specfile.WithLogger(logger),
	)
	application := app.New(cfg, loader, recognizer, app.WithLogger(logger))

	result, err := application.Generate(ctx, paths)
	if err != nil {
		return err
	}

	logger.Info("Generation finished",
		slog.Int("files", len(result.Files)),
		slog.Int("testCases", result.TestCases),
		slog.Int("errors", len(result.Problems.Errors)),
		slog.Int("warnings", len(result.Problems.Warnings)))
	if n := len(result.Problems.Errors); n > 0 {
		return fmt.Errorf("generation finished with %d errors", n)
	}
	return nil
}
