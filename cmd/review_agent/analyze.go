package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/manuscript-reviewer/internal/config"
	"github.com/jonathan/manuscript-reviewer/internal/llm"
	"github.com/jonathan/manuscript-reviewer/internal/observability"
	"github.com/jonathan/manuscript-reviewer/internal/review"
	"github.com/jonathan/manuscript-reviewer/internal/scoring"
	"github.com/jonathan/manuscript-reviewer/internal/types"
)

var (
	analyzeEngine  string
	analyzeVerbose bool
	analyzeConfig  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a manuscript from a file or stdin",
	Long:  `Read manuscript text from the given file (or stdin when omitted) and print the analysis as JSON, or as a boxed summary with --verbose.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeEngine, "engine", "", "Scoring engine: heuristic or llm")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print a boxed summary instead of JSON")
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadAnalyzeConfig()
	if err != nil {
		return err
	}

	if analyzeEngine != "" {
		cfg.Engine = analyzeEngine
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	switch cfg.Engine {
	case types.EngineLLM:
		return analyzeWithLLM(cmd, cfg, text)
	default:
		result := scoring.Score(text)
		if cfg.Verbose {
			observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(&result)
			return nil
		}
		return printJSON(cmd.OutOrStdout(), result)
	}
}

func analyzeWithLLM(cmd *cobra.Command, cfg config.Config, text string) error {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return &review.ErrMissingAPIKey{}
	}

	client, err := llm.NewClient(cmd.Context(), nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	rev, err := review.NewReviewer(client).Review(cmd.Context(), text)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintReview(rev)
		return nil
	}
	return printJSON(cmd.OutOrStdout(), rev)
}

func loadAnalyzeConfig() (config.Config, error) {
	merged := config.Config{}
	if analyzeConfig != "" {
		loaded, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return config.Config{}, err
		}
		merged = *loaded
	}
	return merged.MergeWithDefaults(config.Config{Engine: types.EngineHeuristic}), nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
