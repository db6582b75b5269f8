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

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume [resume-file]",
	Short: "Extract structured data from a resume",
	Long: `Parse a resume into its structured form without scoring it. The
output contains the extracted contact details, summary, skills, experience
entries, education entries and the detected section layout.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if parseResumeConfig.OutputFormat == "" {
			parseResumeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		parseResumeConfig.MaxFileSize = cfg.App.MaxFileSize
		return common.ValidateOutputFormat(parseResumeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParseResume,
}

var parseResumeConfig common.CommandConfig

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseResumeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
}

func runParseResume(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	resumes := analyzer.NewResumeAnalyzer(taggerFromConfig(cfg), sections.NewPositional())

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(input string, cfg common.CommandConfig) {
		logger.Info("Starting resume parsing",
			"resume_chars", len(input),
			"output_format", cfg.OutputFormat)
	}

	parseOperation := func(ctx context.Context, input string) (types.StructuredResume, error) {
		return resumes.Process(input), nil
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		parseResumeConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	logger.Info("Resume parsing completed successfully")
	return nil
}
