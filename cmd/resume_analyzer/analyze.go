package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dkowalski/resume-analyzer/internal/extraction"
	"github.com/dkowalski/resume-analyzer/internal/ingestion"
	"github.com/dkowalski/resume-analyzer/internal/observability"
	"github.com/dkowalski/resume-analyzer/internal/scoring"
	"github.com/dkowalski/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file> [more files...]",
	Short: "Score resume files against the ATS heuristics",
	Long:  "Extract plain text from one or more resume files (PDF, DOCX, or TXT) and compute the weighted ATS score, breakdown, and improvement suggestions for each.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeJobFile string
	analyzeVerbose bool
)

// analyzeConcurrency bounds how many files are decoded at once
const analyzeConcurrency = 4

// analyzeResult pairs one input file with its report for JSON output
type analyzeResult struct {
	File     string                `json:"file"`
	Metadata *ingestion.Metadata   `json:"metadata"`
	Fields   types.ExtractedFields `json:"fields"`
	Report   types.ATSReport       `json:"report"`
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to a job description text file to match against")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted report boxes in addition to JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	jobDescription := ""
	if analyzeJobFile != "" {
		data, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(data)
	}

	dict := extraction.DefaultDictionary()
	scorer := scoring.NewTextScorer(dict)

	results := make([]analyzeResult, len(args))

	g := new(errgroup.Group)
	g.SetLimit(analyzeConcurrency)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			text, err := ingestion.ExtractResumeText(path)
			if err != nil {
				return fmt.Errorf("failed to extract %s: %w", path, err)
			}

			results[i] = analyzeResult{
				File:     path,
				Metadata: ingestion.NewMetadata(path, text),
				Fields: types.ExtractedFields{
					Email:             extraction.ExtractEmail(text),
					Phone:             extraction.ExtractPhoneNumber(text),
					YearsOfExperience: extraction.EstimateYearsOfExperience(text),
					Education:         extraction.ExtractEducation(text),
					Skills:            extraction.ExtractSkills(text, dict),
				},
				Report: scorer.Score(text, jobDescription),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		for i := range results {
			printer.PrintUpload(results[i].Metadata)
			printer.PrintATSReport(&results[i].Report)
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	return nil
}
