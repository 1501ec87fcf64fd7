// Package extraction provides deterministic, regex-based extractors that pull
// structured signals (contact info, experience, education, skills) out of raw
// résumé text.
package extraction

// Fixed category names of the skill dictionary. Every extraction result
// contains exactly these keys.
const (
	CategoryProgrammingLanguages = "programming_languages"
	CategoryFrameworks           = "frameworks"
	CategoryDatabases            = "databases"
	CategoryDevOpsTools          = "devops_tools"
	CategorySoftSkills           = "soft_skills"
)

// Categories lists the skill dictionary categories in their canonical order
var Categories = []string{
	CategoryProgrammingLanguages,
	CategoryFrameworks,
	CategoryDatabases,
	CategoryDevOpsTools,
	CategorySoftSkills,
}

// Dictionary maps a skill category to an ordered list of lower-cased keyword
// literals. Keywords are compiled into word-boundary patterns as-is, so any
// keyword containing regex metacharacters must be pre-escaped by the
// maintainer (see `c\+\+` below). The extractor never re-escapes entries.
type Dictionary map[string][]string

// DefaultDictionary returns the standard skill dictionary. Treat the result as
// read-only; tests that need a different vocabulary should build their own.
func DefaultDictionary() Dictionary {
	return Dictionary{
		CategoryProgrammingLanguages: {
			"javascript", "typescript", "python", "java", `c\+\+`, "c#", "go",
			"rust", "ruby", "php", "swift", "kotlin", "scala", "r",
		},
		CategoryFrameworks: {
			"react", "angular", "vue", "node", "express", "django", "flask",
			"spring", "rails", "laravel", "next", "nest",
		},
		CategoryDatabases: {
			"mongodb", "mysql", "postgresql", "redis", "sqlite", "oracle",
			"cassandra", "elasticsearch", "dynamodb",
		},
		CategoryDevOpsTools: {
			"docker", "kubernetes", "jenkins", "git", "aws", "azure", "gcp",
			"terraform", "ansible", "ci/cd", "linux",
		},
		CategorySoftSkills: {
			"leadership", "communication", "teamwork", "problem solving",
			"agile", "scrum", "mentoring", "collaboration",
		},
	}
}
