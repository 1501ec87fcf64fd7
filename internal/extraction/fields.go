package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dkowalski/resume-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)

	bachelorsPattern     = regexp.MustCompile(`(?i)\b(bachelor'?s?|b\.?sc?\.?|b\.?a\.?|b\.?tech|undergraduate degree)\b`)
	mastersPattern       = regexp.MustCompile(`(?i)\b(master'?s?|m\.?sc?\.?|m\.?b\.?a\.?|m\.?tech|graduate degree)\b`)
	phdPattern           = regexp.MustCompile(`(?i)\b(ph\.?d\.?|doctorate|doctoral)\b`)
	certificationPattern = regexp.MustCompile(`(?i)\b(certified|certification|certificate)\b`)
)

// ExtractEmail returns the first email-shaped substring of text, or "" when
// none is found. First match wins; later addresses are ignored.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhoneNumber returns the first phone-shaped substring of text,
// trimmed, or "" when none is found. The pattern is deliberately loose
// (optional country code, parens, dashes, dots) and can false-positive on
// other numeric runs such as ID numbers.
func ExtractPhoneNumber(text string) string {
	return strings.TrimSpace(phonePattern.FindString(text))
}

// EstimateYearsOfExperience scans for every "<n> years" / "<n>+ years"
// mention and returns the maximum value found, or 0 when there is none.
// Résumés restate their total in several places, so the max avoids double
// counting; the cost is that a smaller unrelated duration is discarded.
func EstimateYearsOfExperience(text string) int {
	maxYears := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > maxYears {
			maxYears = years
		}
	}
	return maxYears
}

// ExtractEducation reports which degree keyword families appear in text and
// counts certification-related keyword occurrences. The certification count is
// raw occurrences, not distinct credentials.
func ExtractEducation(text string) types.EducationSignals {
	return types.EducationSignals{
		Bachelors:      bachelorsPattern.MatchString(text),
		Masters:        mastersPattern.MatchString(text),
		PhD:            phdPattern.MatchString(text),
		Certifications: len(certificationPattern.FindAllString(text, -1)),
	}
}
