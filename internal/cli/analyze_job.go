package cli

import (
	"context"
	"fmt"

	"resumatch/internal/analyzer"
	"resumatch/internal/common"
	"resumatch/internal/sections"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job [job-description-file]",
	Short: "Extract structured data from a job description",
	Long: `Parse a job description into its structured form without scoring a
resume against it. The output contains the detected title, company,
industry, required and preferred skills, experience requirements and
education requirements.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if analyzeJobConfig.OutputFormat == "" {
			analyzeJobConfig.OutputFormat = cfg.App.DefaultFormat
		}
		analyzeJobConfig.MaxFileSize = cfg.App.MaxFileSize
		return common.ValidateOutputFormat(analyzeJobConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyzeJob,
}

var analyzeJobConfig common.CommandConfig

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runAnalyzeJob(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	jobs := analyzer.NewJobAnalyzer(taggerFromConfig(cfg), sections.NewPositional())

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting job description analysis",
			"job_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input string) (types.StructuredJobDescription, error) {
		return jobs.Analyze(input), nil
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeJobConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}
	logger.Info("Job description analysis completed successfully")
	return nil
}
