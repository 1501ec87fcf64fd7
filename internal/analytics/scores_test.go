package analytics

import (
	"strings"
	"testing"

	"github.com/dkowalski/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func fullResume() *types.Resume {
	return &types.Resume{
		Name: "Jane Doe",
		Contact: &types.Contact{
			Email:    "jane@example.com",
			Phone:    "555-123-4567",
			Location: "Portland, OR",
		},
		Summary: strings.Repeat("Experienced engineer who ships reliable systems. ", 3),
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", Description: "Built billing services that cut processing costs by 30% across the platform."},
			{Title: "Developer", Company: "Initech", Description: "Maintained internal tooling and automated weekly reporting pipelines for the team."},
		},
		Education:      []types.Education{{Degree: "BSc", Institution: "State University"}},
		Skills:         []string{"go", "python", "docker", "kubernetes", "sql"},
		Certifications: []string{"AWS Solutions Architect"},
	}
}

func TestATSScore_FullResume(t *testing.T) {
	// name 5 + email 3 + phone 3 + location 4 + summary 10 + experience 16 +
	// education 7 + skills 5 + certifications 3 + format bonus 15 = 71
	assert.Equal(t, 71, ATSScore(fullResume()))
}

func TestATSScore_EmptyResume(t *testing.T) {
	assert.Equal(t, 0, ATSScore(&types.Resume{}))
}

func TestATSScore_NilResume(t *testing.T) {
	assert.Equal(t, 0, ATSScore(nil))
}

func TestATSScore_FormatBonusIsConjunctive(t *testing.T) {
	// Summary and skills but no experience: no bonus
	resume := &types.Resume{
		Summary: "A short summary",
		Skills:  []string{"go"},
	}
	// summary is under 100 chars, so only skills (1) count
	assert.Equal(t, 1, ATSScore(resume))

	resume.Experience = []types.Experience{{Title: "Engineer"}}
	// adding one experience entry: +8 and +15 bonus
	assert.Equal(t, 24, ATSScore(resume))
}

func TestATSScore_SectionCaps(t *testing.T) {
	resume := &types.Resume{
		Experience:     make([]types.Experience, 10), // 80 uncapped, 25 capped
		Education:      make([]types.Education, 5),   // 35 uncapped, 15 capped
		Skills:         make([]string, 40),           // capped at 15
		Certifications: make([]string, 8),            // 24 uncapped, 10 capped
	}
	assert.Equal(t, 25+15+15+10, ATSScore(resume))
}

func TestReadabilityScore_SummaryBonusesStack(t *testing.T) {
	// base 50 + 15 (length in (50,300)) + 10 (length >= 100) = 75
	resume := &types.Resume{Summary: strings.Repeat("x", 150)}
	assert.Equal(t, 75, ReadabilityScore(resume))
}

func TestReadabilityScore_ShortSummaryNoBonus(t *testing.T) {
	resume := &types.Resume{Summary: "tiny"}
	assert.Equal(t, 50, ReadabilityScore(resume))
}

func TestReadabilityScore_LongSummaryOnlySecondBonus(t *testing.T) {
	// 400 chars: outside (50,300) but >= 100
	resume := &types.Resume{Summary: strings.Repeat("x", 400)}
	assert.Equal(t, 60, ReadabilityScore(resume))
}

func TestReadabilityScore_SkillBonusesStack(t *testing.T) {
	resume := &types.Resume{Skills: make([]string, 10)}
	assert.Equal(t, 65, ReadabilityScore(resume))

	resume.Skills = make([]string, 5)
	assert.Equal(t, 60, ReadabilityScore(resume))
}

func TestReadabilityScore_ExperienceDescriptionBonus(t *testing.T) {
	resume := &types.Resume{
		Experience: []types.Experience{
			{Description: strings.Repeat("detailed work history ", 5)},
		},
	}
	assert.Equal(t, 65, ReadabilityScore(resume))
}

func TestReadabilityScore_CappedAt100(t *testing.T) {
	assert.LessOrEqual(t, ReadabilityScore(fullResume()), 100)
}

func TestFormattingScore_EmptyResumeGetsBase(t *testing.T) {
	assert.Equal(t, 60, FormattingScore(&types.Resume{}))
}

func TestFormattingScore_FullResume(t *testing.T) {
	// 60 + 10 contact + 10 summary + 10 experience + 5 education + 5 skills
	assert.Equal(t, 100, FormattingScore(fullResume()))
}

func TestFormattingScore_ContactNeedsBothEmailAndPhone(t *testing.T) {
	resume := &types.Resume{Contact: &types.Contact{Email: "a@b.co"}}
	assert.Equal(t, 60, FormattingScore(resume))
}

func TestAnalyze_BundlesEverything(t *testing.T) {
	report := Analyze(fullResume())

	assert.Equal(t, 71, report.ATSScore)
	assert.NotEmpty(t, report.Keywords)
	assert.NotEmpty(t, report.Suggestions)
}
