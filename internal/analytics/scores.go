// Package analytics computes scores, keyword tables, issues, and suggestions
// for structured résumé objects. Its formulas are a separate strategy from the
// raw-text scorer in the scoring package: different inputs, different weights,
// different caps. Keep them independent.
package analytics

import "github.com/dkowalski/resume-analyzer/internal/types"

const scoreCap = 100

// ATSScore allocates points for each populated résumé section, plus a
// 15-point bonus when summary, experience, and skills are all present at once.
// The bonus is conjunctive; partially complete résumés get nothing from it.
func ATSScore(resume *types.Resume) int {
	score := 0

	if resume != nil && resume.Name != "" {
		score += 5
	}
	if resume.GetEmail() != "" {
		score += 3
	}
	if resume.GetPhone() != "" {
		score += 3
	}
	if resume.GetLocation() != "" {
		score += 4
	}
	if len(resume.GetSummary()) > 100 {
		score += 10
	}

	score += capInt(len(resume.GetExperience())*8, 25)
	score += capInt(len(resume.GetEducation())*7, 15)
	score += capInt(len(resume.GetSkills()), 15)
	score += capInt(len(resume.GetCertifications())*3, 10)

	if resume.GetSummary() != "" && len(resume.GetExperience()) > 0 && len(resume.GetSkills()) > 0 {
		score += 15
	}

	return capInt(score, scoreCap)
}

// ReadabilityScore starts from a base of 50 and stacks bonuses for summary
// length, experience-description depth, and skill count. The two summary
// bonuses (and the two skill bonuses) can both apply to the same résumé.
func ReadabilityScore(resume *types.Resume) int {
	score := 50

	summaryLen := len(resume.GetSummary())
	if summaryLen > 50 && summaryLen < 300 {
		score += 15
	}
	if summaryLen >= 100 {
		score += 10
	}

	if averageDescriptionLength(resume.GetExperience()) > 50 {
		score += 15
	}

	skillCount := len(resume.GetSkills())
	if skillCount >= 5 {
		score += 10
	}
	if skillCount >= 10 {
		score += 5
	}

	return capInt(score, scoreCap)
}

// FormattingScore starts from a base of 60 and rewards each populated section
func FormattingScore(resume *types.Resume) int {
	score := 60

	if resume.GetEmail() != "" && resume.GetPhone() != "" {
		score += 10
	}
	if resume.GetSummary() != "" {
		score += 10
	}
	if len(resume.GetExperience()) > 0 {
		score += 10
	}
	if len(resume.GetEducation()) > 0 {
		score += 5
	}
	if len(resume.GetSkills()) > 0 {
		score += 5
	}

	return capInt(score, scoreCap)
}

// Analyze runs every analytics computation and bundles the results
func Analyze(resume *types.Resume) types.AnalyticsReport {
	return types.AnalyticsReport{
		ATSScore:         ATSScore(resume),
		ReadabilityScore: ReadabilityScore(resume),
		FormattingScore:  FormattingScore(resume),
		Keywords:         ExtractKeywords(resume),
		Issues:           IdentifyIssues(resume),
		Suggestions:      GenerateSuggestions(resume),
	}
}

func averageDescriptionLength(entries []types.Experience) int {
	if len(entries) == 0 {
		return 0
	}
	total := 0
	for _, entry := range entries {
		total += len(entry.Description)
	}
	return total / len(entries)
}

func capInt(value, cap int) int {
	if value > cap {
		return cap
	}
	return value
}
