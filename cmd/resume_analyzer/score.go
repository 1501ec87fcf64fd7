package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkowalski/resume-analyzer/internal/analytics"
	"github.com/dkowalski/resume-analyzer/internal/observability"
	"github.com/dkowalski/resume-analyzer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Run analytics over a structured resume",
	Long:  "Load a structured resume from a JSON file and compute its ATS, readability, and formatting scores together with keywords, issues, and suggestions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var scoreVerbose bool

func init() {
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted report box in addition to JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	report := analytics.Analyze(&resume)

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintAnalyticsReport(&report)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}
