package scoring

import (
	"strings"
	"testing"

	"github.com/dkowalski/resume-analyzer/internal/extraction"
	"github.com/dkowalski/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScorer() *TextScorer {
	return NewTextScorer(extraction.DefaultDictionary())
}

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Summary
Software engineer with 6 years of experience building web services.

Skills
Python, Go, Docker, Kubernetes, PostgreSQL

Experience
Developed and managed a payment platform. Led a team of four.
Improved API latency by 40%. Designed the deployment pipeline.

Education
Bachelor of Science in Computer Science. AWS Certified.`

func TestScore_OverallWithinRangeAndCapsRespected(t *testing.T) {
	scorer := newTestScorer()

	for _, text := range []string{"", "short", sampleResume, strings.Repeat(sampleResume, 5)} {
		report := scorer.Score(text, "")

		assert.GreaterOrEqual(t, report.OverallScore, 0)
		assert.LessOrEqual(t, report.OverallScore, 100)
		assert.LessOrEqual(t, report.Breakdown.SkillsMatch, 30)
		assert.LessOrEqual(t, report.Breakdown.KeywordDensity, 20)
		assert.LessOrEqual(t, report.Breakdown.Formatting, 15)
		assert.LessOrEqual(t, report.Breakdown.Experience, 20)
		assert.LessOrEqual(t, report.Breakdown.Education, 15)
	}
}

func TestScore_SkillsMatchIsThreePointsPerSkill(t *testing.T) {
	scorer := newTestScorer()

	// python, go, docker, kubernetes, postgresql = 5 skills
	report := scorer.Score("python go docker kubernetes postgresql", "")
	assert.Equal(t, 15, report.Breakdown.SkillsMatch)
}

func TestScore_KeywordDensityStepFunction(t *testing.T) {
	scorer := newTestScorer()

	cases := []struct {
		occurrences int
		want        int
	}{
		{0, 0},
		{4, 0},
		{5, 5},
		{9, 5},
		{12, 10},
		{25, 20}, // capped
	}
	for _, tc := range cases {
		text := strings.TrimSpace(strings.Repeat("managed ", tc.occurrences))
		report := scorer.Score(text, "")
		assert.Equal(t, tc.want, report.Breakdown.KeywordDensity, "%d occurrences", tc.occurrences)
	}
}

func TestScore_FormattingIsTwoTier(t *testing.T) {
	scorer := newTestScorer()

	structured := "summary\n\n\n\n\n\nskills listed here"
	assert.Equal(t, 15, scorer.Score(structured, "").Breakdown.Formatting)

	// Plenty of line breaks but no recognizable sections
	unstructured := strings.Repeat("line\n", 10)
	assert.Equal(t, 10, scorer.Score(unstructured, "").Breakdown.Formatting)

	// Sections but a single block of text
	flat := "summary skills education"
	assert.Equal(t, 10, scorer.Score(flat, "").Breakdown.Formatting)
}

func TestScore_ExperienceIsTwoPointsPerYear(t *testing.T) {
	scorer := newTestScorer()

	assert.Equal(t, 6, scorer.Score("3 years of work", "").Breakdown.Experience)
	assert.Equal(t, 20, scorer.Score("15 years of work", "").Breakdown.Experience) // capped
}

func TestScore_EducationIgnoresPhD(t *testing.T) {
	scorer := newTestScorer()

	assert.Equal(t, 0, scorer.Score("PhD in Physics", "").Breakdown.Education)
	assert.Equal(t, 10, scorer.Score("Bachelor of Arts", "").Breakdown.Education)
	assert.Equal(t, 15, scorer.Score("Bachelor of Science and Master of Science", "").Breakdown.Education)
}

func TestScore_JobMatchPercentage(t *testing.T) {
	scorer := newTestScorer()

	resume := "Experienced with python and docker deployments"
	job := "Looking for python, docker, rust and react experience"

	report := scorer.Score(resume, job)
	// Job mentions 4 dictionary skills; the resume contains 2 of them
	assert.Equal(t, 50, report.JobMatchPercentage)
}

func TestScore_JobMatchZeroWithoutJobDescription(t *testing.T) {
	scorer := newTestScorer()
	assert.Equal(t, 0, scorer.Score(sampleResume, "").JobMatchPercentage)
}

func TestScore_JobMatchZeroWhenJobHasNoDictionarySkills(t *testing.T) {
	scorer := newTestScorer()
	report := scorer.Score(sampleResume, "we need a friendly generalist")
	assert.Equal(t, 0, report.JobMatchPercentage)
}

func TestScore_Idempotent(t *testing.T) {
	scorer := newTestScorer()

	first := scorer.Score(sampleResume, "python and go role")
	second := scorer.Score(sampleResume, "python and go role")
	assert.Equal(t, first, second)
}

func TestSuggestionsFor_AllFireOnEmptyText(t *testing.T) {
	scorer := newTestScorer()

	report := scorer.Score("", "")
	require.Len(t, report.Suggestions, 5)

	// Fixed priority order: skills, density, formatting, experience, education
	assert.Equal(t, "Add more technical skills", report.Suggestions[0].Title)
	assert.Equal(t, "Use more action verbs", report.Suggestions[1].Title)
	assert.Equal(t, "Improve structure", report.Suggestions[2].Title)
	assert.Equal(t, "Highlight experience", report.Suggestions[3].Title)
	assert.Equal(t, "Add education details", report.Suggestions[4].Title)
}

func TestSuggestionsFor_OnlyTriggeredIncluded(t *testing.T) {
	b := types.ATSBreakdown{
		SkillsMatch:    24, // above threshold
		KeywordDensity: 20, // above threshold
		Formatting:     10,
		Experience:     20,
		Education:      0,
	}
	suggestions := suggestionsFor(b)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "Improve structure", suggestions[0].Title)
	assert.Equal(t, "Add education details", suggestions[1].Title)
}
