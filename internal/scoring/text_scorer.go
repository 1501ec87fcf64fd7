// Package scoring provides the text-based ATS scorer: a weighted, fully
// deterministic point formula over raw résumé text. The structured-résumé
// formulas live in the analytics package; the two evolved separately and use
// different weight tables, so they must not be unified.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dkowalski/resume-analyzer/internal/extraction"
	"github.com/dkowalski/resume-analyzer/internal/types"
)

// Per-component score caps
const (
	skillsMatchCap    = 30
	keywordDensityCap = 20
	formattingCap     = 15
	experienceCap     = 20
	overallCap        = 100
)

// actionVerbs is the fixed keyword set behind the density score
var actionVerbs = []string{
	"experience", "achievement", "managed", "developed", "led", "improved", "designed",
}

// sectionHeaders are the section keywords behind the formatting score
var sectionHeaders = []string{"experience", "education", "skills", "summary"}

// TextScorer scores raw résumé text against the weighted ATS formula. The
// skill dictionary is injected so tests can substitute their own vocabulary.
type TextScorer struct {
	dict         extraction.Dictionary
	verbPatterns []*regexp.Regexp
}

// NewTextScorer creates a TextScorer backed by the given skill dictionary
func NewTextScorer(dict extraction.Dictionary) *TextScorer {
	patterns := make([]*regexp.Regexp, len(actionVerbs))
	for i, verb := range actionVerbs {
		patterns[i] = regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, verb))
	}
	return &TextScorer{dict: dict, verbPatterns: patterns}
}

// Score computes the overall ATS score, its breakdown, the job-match
// percentage (0 when jobDescription is empty), and the triggered improvement
// suggestions for the given résumé text.
func (s *TextScorer) Score(text, jobDescription string) types.ATSReport {
	skills := extraction.ExtractSkills(text, s.dict)

	breakdown := types.ATSBreakdown{
		SkillsMatch:    capInt(extraction.CountSkills(skills)*3, skillsMatchCap),
		KeywordDensity: s.keywordDensityScore(text),
		Formatting:     formattingScore(text),
		Experience:     capInt(extraction.EstimateYearsOfExperience(text)*2, experienceCap),
		Education:      educationScore(extraction.ExtractEducation(text)),
	}

	return types.ATSReport{
		OverallScore:       capInt(breakdown.Sum(), overallCap),
		Breakdown:          breakdown,
		JobMatchPercentage: s.jobMatchPercentage(text, jobDescription),
		Suggestions:        suggestionsFor(breakdown),
	}
}

// keywordDensityScore counts occurrences (not distinct verbs) of the action
// verb set and awards 5 points per 5 occurrences, capped at 20. The step
// function is intentional; do not smooth it.
func (s *TextScorer) keywordDensityScore(text string) int {
	count := 0
	for _, pattern := range s.verbPatterns {
		count += len(pattern.FindAllString(text, -1))
	}
	return capInt((count/5)*5, keywordDensityCap)
}

// formattingScore is a binary two-tier score: full credit needs more than five
// line breaks plus at least two recognizable section headers.
func formattingScore(text string) int {
	lowered := strings.ToLower(text)
	sections := 0
	for _, header := range sectionHeaders {
		if strings.Contains(lowered, header) {
			sections++
		}
	}
	if strings.Count(text, "\n") > 5 && sections >= 2 {
		return formattingCap
	}
	return 10
}

// educationScore awards 10 for a bachelor's and 5 for a master's. PhD
// detection exists upstream but does not score here; kept as-is pending
// product-owner clarification.
func educationScore(signals types.EducationSignals) int {
	score := 0
	if signals.Bachelors {
		score += 10
	}
	if signals.Masters {
		score += 5
	}
	return score
}

// jobMatchPercentage extracts the job description's skill keywords and
// reports the rounded percentage of them that appear anywhere in the résumé
// text (case-insensitive substring match).
func (s *TextScorer) jobMatchPercentage(text, jobDescription string) int {
	if jobDescription == "" {
		return 0
	}

	jobSkills := extraction.ExtractSkills(jobDescription, s.dict)
	total := extraction.CountSkills(jobSkills)
	if total == 0 {
		return 0
	}

	lowered := strings.ToLower(text)
	matched := 0
	for _, keywords := range jobSkills {
		for _, keyword := range keywords {
			// Dictionary entries are regex-escaped; strip the escaping to get
			// the literal substring to look for.
			literal := strings.ReplaceAll(keyword, `\`, "")
			if strings.Contains(lowered, literal) {
				matched++
			}
		}
	}

	return int(math.Round(float64(matched) / float64(total) * 100))
}

func capInt(value, cap int) int {
	if value > cap {
		return cap
	}
	return value
}
