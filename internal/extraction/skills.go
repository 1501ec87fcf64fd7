package extraction

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// patternCache holds compiled word-boundary patterns keyed by dictionary
// keyword. The default dictionary is static, so compilation happens once per
// keyword across all calls.
var patternCache sync.Map // string -> *regexp.Regexp

func keywordPattern(keyword string) *regexp.Regexp {
	if cached, ok := patternCache.Load(keyword); ok {
		return cached.(*regexp.Regexp)
	}
	// Keywords are stored pre-escaped, so they are spliced in verbatim.
	re := regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, keyword))
	patternCache.Store(keyword, re)
	return re
}

// ExtractSkills tests every dictionary keyword against text and returns the
// matches grouped by category. All dictionary categories are always present in
// the result, possibly as empty lists. Matches report the dictionary keyword,
// never the surface text, so callers get a stable vocabulary.
func ExtractSkills(text string, dict Dictionary) map[string][]string {
	lowered := strings.ToLower(text)
	found := make(map[string][]string, len(dict))
	for category, keywords := range dict {
		matches := []string{}
		for _, keyword := range keywords {
			if keywordPattern(keyword).MatchString(lowered) {
				matches = append(matches, keyword)
			}
		}
		found[category] = matches
	}
	return found
}

// CountSkills returns the total number of matched keywords across all
// categories. A keyword present in two categories counts twice.
func CountSkills(skills map[string][]string) int {
	total := 0
	for _, matches := range skills {
		total += len(matches)
	}
	return total
}
