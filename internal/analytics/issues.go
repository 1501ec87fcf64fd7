package analytics

import "github.com/dkowalski/resume-analyzer/internal/types"

const (
	minSummaryLength = 50
	minSkillCount    = 3
)

// IdentifyIssues runs five independent threshold checks against a structured
// résumé. Checks never short-circuit; a sparse résumé can trigger all five.
func IdentifyIssues(resume *types.Resume) []types.Issue {
	issues := []types.Issue{}

	if len(resume.GetSummary()) < minSummaryLength {
		issues = append(issues, types.Issue{
			Title:       "Summary too short",
			Description: "Your professional summary is missing or very brief. Aim for 2-3 sentences that highlight your strengths.",
			Severity:    "high",
		})
	}
	if len(resume.GetExperience()) == 0 {
		issues = append(issues, types.Issue{
			Title:       "No work experience",
			Description: "Add at least one work experience entry, including internships or volunteer roles.",
			Severity:    "high",
		})
	}
	if len(resume.GetSkills()) < minSkillCount {
		issues = append(issues, types.Issue{
			Title:       "Too few skills",
			Description: "List at least three skills relevant to the roles you are targeting.",
			Severity:    "medium",
		})
	}
	if len(resume.GetEducation()) == 0 {
		issues = append(issues, types.Issue{
			Title:       "No education listed",
			Description: "Add your education history, including degrees and certifications.",
			Severity:    "medium",
		})
	}
	if resume.GetEmail() == "" || resume.GetPhone() == "" {
		issues = append(issues, types.Issue{
			Title:       "Incomplete contact information",
			Description: "Recruiters need both an email address and a phone number to reach you.",
			Severity:    "high",
		})
	}

	return issues
}
