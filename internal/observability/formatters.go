// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/dkowalski/resume-analyzer/internal/ingestion"
	"github.com/dkowalski/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxListItems is the number of entries shown per list
	maxListItems = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintUpload outputs the metadata of a decoded résumé file
func (p *Printer) PrintUpload(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:       %s\n", meta.Filename))
	sb.WriteString(fmt.Sprintf("Format:     %s\n", meta.Format))
	sb.WriteString(fmt.Sprintf("Characters: %d\n", meta.Characters))
	sb.WriteString(fmt.Sprintf("Hash:       %.16s…", meta.Hash))

	p.printBox("Resume Upload", sb.String())
}

// PrintATSReport outputs a human-readable summary of a text-based ATS report
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:   %d / 100\n", report.OverallScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills match:    %d\n", report.Breakdown.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Keyword density: %d\n", report.Breakdown.KeywordDensity))
	sb.WriteString(fmt.Sprintf("Formatting:      %d\n", report.Breakdown.Formatting))
	sb.WriteString(fmt.Sprintf("Experience:      %d\n", report.Breakdown.Experience))
	sb.WriteString(fmt.Sprintf("Education:       %d\n", report.Breakdown.Education))

	if report.JobMatchPercentage > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Job match:       %d%%\n", report.JobMatchPercentage))
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(report.Suggestions), maxListItems)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Suggestions[i].Title))
		}
		if len(report.Suggestions) > maxListItems {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Suggestions)-maxListItems))
		}
	}

	p.printBox("ATS Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalyticsReport outputs a human-readable summary of a structured-résumé
// analytics report
func (p *Printer) PrintAnalyticsReport(report *types.AnalyticsReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS score:         %d / 100\n", report.ATSScore))
	sb.WriteString(fmt.Sprintf("Readability score: %d / 100\n", report.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Formatting score:  %d / 100\n", report.FormattingScore))

	if len(report.Keywords) > 0 {
		sb.WriteString("\nTop keywords:\n")
		count := min(len(report.Keywords), maxListItems)
		for i := 0; i < count; i++ {
			kw := report.Keywords[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", kw.Keyword, kw.Count))
		}
	}

	if len(report.Issues) > 0 {
		sb.WriteString("\nIssues:\n")
		count := min(len(report.Issues), maxListItems)
		for i := 0; i < count; i++ {
			issue := report.Issues[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", issue.Severity, issue.Title))
		}
	}

	p.printBox("Resume Analytics", strings.TrimRight(sb.String(), "\n"))
}
