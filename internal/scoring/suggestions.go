package scoring

import "github.com/dkowalski/resume-analyzer/internal/types"

// Education component threshold below which the education suggestion fires
const educationSuggestionThreshold = 10

// suggestionsFor returns the triggered advisory records in fixed priority
// order. Each entry is gated by a threshold on a single breakdown component;
// untriggered entries are omitted.
func suggestionsFor(b types.ATSBreakdown) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if b.SkillsMatch < 20 {
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Add more technical skills",
			Description: "List additional relevant technical skills such as programming languages, frameworks, and tools.",
			Priority:    "high",
		})
	}
	if b.KeywordDensity < 15 {
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Use more action verbs",
			Description: "Include action verbs like 'managed', 'developed', and 'led' to describe your accomplishments.",
			Priority:    "medium",
		})
	}
	if b.Formatting < 15 {
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Improve structure",
			Description: "Organize your resume into clear sections such as Experience, Education, Skills, and Summary.",
			Priority:    "medium",
		})
	}
	if b.Experience < 15 {
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Highlight experience",
			Description: "State your years of experience explicitly, e.g. '5+ years of software development'.",
			Priority:    "medium",
		})
	}
	if b.Education < educationSuggestionThreshold {
		suggestions = append(suggestions, types.Suggestion{
			Title:       "Add education details",
			Description: "Mention your degrees and relevant certifications.",
			Priority:    "low",
		})
	}

	return suggestions
}
