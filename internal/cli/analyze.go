package cli

import (
	"context"
	"fmt"

	"resumatch/internal/common"
	"resumatch/internal/store"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file] [job-description-file]",
	Short: "Score a resume against a job description",
	Long: `Analyze a resume against a job description and produce an ATS
compatibility report. Both documents are structured with heuristic
extraction, scored across skills, experience, education and format using
industry benchmark weights, and the result includes prioritized
recommendations for improving the match.

When the result store is enabled the report is saved and its id is logged,
so it can be retrieved later with the history command.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		analyzeConfig.MaxFileSize = cfg.App.MaxFileSize
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig  common.CommandConfig
	analyzeSession string
	analyzeNoSave  bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVar(&analyzeSession, "session", "", "Session label stored with the result")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Skip saving the result to the store")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

// analyzeInput pairs the two documents read from disk.
type analyzeInput struct {
	Resume         string
	JobDescription string
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	service, stopBench, err := newAnalysisService(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build analysis service: %w", err)
	}
	defer stopBench()

	var resultStore store.Store
	if !analyzeNoSave {
		resultStore, err = openStore(cfg)
		if err != nil {
			logger.LogError(err, "Result store unavailable, continuing without saving")
			resultStore = nil
		}
		if resultStore != nil {
			defer func() {
				if err := resultStore.Close(); err != nil {
					logger.Warn("Failed to close result store", "error", err)
				}
			}()
		}
	}

	createInput := func(contents []string) (analyzeInput, error) {
		if len(contents) != 2 {
			return analyzeInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return analyzeInput{
			Resume:         contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input analyzeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.Resume),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input analyzeInput) (types.AnalysisResult, error) {
		result := service.Analyze(input.Resume, input.JobDescription)
		if resultStore != nil {
			id, saveErr := resultStore.Save(ctx, result, analyzeSession)
			if saveErr != nil {
				logger.LogError(saveErr, "Failed to save analysis result")
			} else {
				logger.Info("Analysis result saved", "id", id, "session", analyzeSession)
			}
		}
		return result, nil
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
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
