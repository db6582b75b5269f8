package cli

import (
	"fmt"
	"strings"

	"resumatch/internal/common"
	"resumatch/internal/store"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and retrieve stored analysis results",
	Long: `List previously stored analysis results, newest first. With --id a
single stored result is printed in full using the configured output format.
With --session the listing is restricted to results saved under that
session label.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if historyConfig.OutputFormat == "" {
			historyConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(historyConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runHistory,
}

var (
	historyConfig  common.CommandConfig
	historyLimit   int
	historySession string
	historyID      int64
)

func init() {
	historyCmd.Flags().StringVarP(&historyConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	historyCmd.Flags().StringVar(&historyConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum number of results to list")
	historyCmd.Flags().StringVar(&historySession, "session", "", "Only list results saved under this session label")
	historyCmd.Flags().Int64Var(&historyID, "id", 0, "Print the stored result with this id in full")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	resultStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}
	if resultStore == nil {
		return fmt.Errorf("result store is disabled in configuration")
	}
	defer func() {
		if err := resultStore.Close(); err != nil {
			logger.Warn("Failed to close result store", "error", err)
		}
	}()

	outputHandler := common.NewOutputHandler(logger)

	if historyID > 0 {
		record, err := resultStore.Get(cmd.Context(), historyID)
		if err != nil {
			return err
		}
		return outputHandler.HandleOutput(record.Result, historyConfig)
	}

	summaries, err := resultStore.History(cmd.Context(), historySession, historyLimit)
	if err != nil {
		return err
	}

	// The tabular listing only exists in text form; every other format
	// falls back to JSON.
	if historyConfig.OutputFormat == "text" {
		fmt.Print(renderSummaries(summaries))
		return nil
	}

	listingConfig := historyConfig
	listingConfig.OutputFormat = "json"
	return outputHandler.HandleOutput(summaries, listingConfig)
}

func renderSummaries(summaries []store.Summary) string {
	if len(summaries) == 0 {
		return "No stored results.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-6s %-20s %-12s %-8s %s\n", "ID", "TIMESTAMP", "SESSION", "SCORE", "JOB TITLE")
	for _, s := range summaries {
		session := s.UserSession
		if session == "" {
			session = "-"
		}
		fmt.Fprintf(&b, "%-6d %-20s %-12s %-8.1f %s\n",
			s.ID,
			s.Timestamp.Local().Format("2006-01-02 15:04:05"),
			session,
			s.OverallScore,
			s.JobTitle)
	}
	return b.String()
}
