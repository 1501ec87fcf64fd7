package analytics

import (
	"strings"

	"github.com/dkowalski/resume-analyzer/internal/types"
)

// GenerateSuggestions returns one data-driven suggestion (quantifiable
// achievements, gated on whether any experience description contains a '%' or
// '$') followed by three static suggestions that always apply. The list is
// never shorter than three entries.
func GenerateSuggestions(resume *types.Resume) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if !hasQuantifiableAchievements(resume) {
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Quantify your achievements",
			Description: "Add numbers to your experience descriptions, e.g. 'reduced costs by 20%' or 'managed a $1M budget'.",
			Priority:    "high",
		})
	}

	suggestions = append(suggestions,
		types.Suggestion{
			Title:       "Start bullets with action verbs",
			Description: "Begin each experience bullet with a strong action verb such as 'built', 'led', or 'delivered'.",
			Priority:    "medium",
		},
		types.Suggestion{
			Title:       "Mirror industry keywords",
			Description: "Use the terminology from job postings in your field so automated filters recognize your experience.",
			Priority:    "medium",
		},
		types.Suggestion{
			Title:       "Keep formatting consistent",
			Description: "Use the same tense, date format, and punctuation across all sections.",
			Priority:    "low",
		},
	)

	return suggestions
}

func hasQuantifiableAchievements(resume *types.Resume) bool {
	for _, entry := range resume.GetExperience() {
		if strings.ContainsAny(entry.Description, "%$") {
			return true
		}
	}
	return false
}
