package cli

import (
	"context"
	"fmt"
	"strings"

	"resumelens/internal/analysis"
	"resumelens/internal/common"
	"resumelens/internal/errors"
	"resumelens/internal/extract"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume file and print a quality report",
	Long: `Analyze a resume document (PDF, DOCX, or plain text) and produce a
quality report with a 0-100 score and actionable suggestions.

The analysis includes:
- Section detection (contact, summary, skills, experience, education, ...)
- Action verb usage in achievement descriptions
- Technical skill matching against a keyword taxonomy
- Flesch reading ease scoring
- ATS formatting warnings (tables, images, embedded objects)`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return cfg.App.SupportedFormats, cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())
	engine := analysis.NewEngine(logger)

	createInput := func(filename string, data []byte) (extract.Result, error) {
		extracted := extract.FromFile(filename, data)
		if !extracted.OK {
			return extract.Result{}, errors.NewExtractionError(errors.ErrCodeExtractionFailed,
				fmt.Sprintf("could not extract text from %s", filename), nil)
		}
		if strings.TrimSpace(extracted.Text) == "" {
			return extract.Result{}, errors.NewExtractionError(errors.ErrCodeEmptyDocument,
				fmt.Sprintf("%s contains no text content", filename), nil)
		}
		return extracted, nil
	}

	logDetails := func(input extract.Result, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"text_chars", len(input.Text),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input extract.Result) (types.AnalysisResult, error) {
		return engine.Analyze(input.Text, input.Raw), nil
	}

	err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args[0],
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
