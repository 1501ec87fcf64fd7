package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dkowalski/resume-analyzer/internal/types"
)

const (
	minKeywordLength = 4
	maxKeywords      = 10
)

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// ExtractKeywords builds a frequency table over the summary and every
// experience description: words of at least four letters, lower-cased, ranked
// by count. Relevance scales with count (20 points per occurrence, capped at
// 100). Ties keep first-seen order, so the result is deterministic.
func ExtractKeywords(resume *types.Resume) []types.KeywordFrequency {
	var sources []string
	sources = append(sources, resume.GetSummary())
	for _, entry := range resume.GetExperience() {
		sources = append(sources, entry.Description)
	}

	counts := make(map[string]int)
	var order []string
	for _, source := range sources {
		for _, word := range wordPattern.FindAllString(source, -1) {
			if len(word) < minKeywordLength {
				continue
			}
			word = strings.ToLower(word)
			if counts[word] == 0 {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	keywords := make([]types.KeywordFrequency, 0, len(order))
	for _, word := range order {
		keywords = append(keywords, types.KeywordFrequency{
			Keyword:   word,
			Count:     counts[word],
			Relevance: capInt(counts[word]*20, 100),
		})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}
