package types

// EducationSignals captures the degree and certification signals detected in
// raw résumé text
type EducationSignals struct {
	Bachelors      bool `json:"bachelors"`
	Masters        bool `json:"masters"`
	PhD            bool `json:"phd"`
	Certifications int  `json:"certifications"` // raw keyword occurrence count, not deduplicated
}

// ExtractedFields is the transient record produced by one extraction pass over
// raw résumé text. It is never persisted; callers decide what to keep.
type ExtractedFields struct {
	Email             string              `json:"email,omitempty"`
	Phone             string              `json:"phone,omitempty"`
	YearsOfExperience int                 `json:"years_of_experience"`
	Education         EducationSignals    `json:"education"`
	Skills            map[string][]string `json:"skills"`
}

// ATSBreakdown holds the named sub-scores that sum to an overall ATS score.
// Component caps: skills_match 30, keyword_density 20, formatting 15,
// experience 20, education 15.
type ATSBreakdown struct {
	SkillsMatch    int `json:"skills_match"`
	KeywordDensity int `json:"keyword_density"`
	Formatting     int `json:"formatting"`
	Experience     int `json:"experience"`
	Education      int `json:"education"`
}

// Sum returns the total of all breakdown components
func (b ATSBreakdown) Sum() int {
	return b.SkillsMatch + b.KeywordDensity + b.Formatting + b.Experience + b.Education
}

// ATSReport is the result of scoring raw résumé text
type ATSReport struct {
	OverallScore       int          `json:"overall_score"`
	Breakdown          ATSBreakdown `json:"breakdown"`
	JobMatchPercentage int          `json:"job_match_percentage"`
	Suggestions        []Suggestion `json:"suggestions"`
}

// Suggestion is a free-form advisory record. The severity vocabulary is
// deliberately loose; different producers use different levels.
type Suggestion struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// Issue is a problem detected in a structured résumé
type Issue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// KeywordFrequency is one entry of the keyword frequency table built from a
// structured résumé
type KeywordFrequency struct {
	Keyword   string `json:"keyword"`
	Count     int    `json:"count"`
	Relevance int    `json:"relevance"` // 0-100, derived from count
}

// AnalyticsReport bundles every score and list the structured-résumé analytics
// path produces
type AnalyticsReport struct {
	ATSScore         int                `json:"ats_score"`
	ReadabilityScore int                `json:"readability_score"`
	FormattingScore  int                `json:"formatting_score"`
	Keywords         []KeywordFrequency `json:"keywords"`
	Issues           []Issue            `json:"issues"`
	Suggestions      []Suggestion       `json:"suggestions"`
}
