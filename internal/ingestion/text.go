package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	multiBlankLines = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes decoded résumé text while preserving line structure.
// Line breaks matter downstream: the formatting score counts them, so cleanup
// must never join or split lines beyond collapsing runs of blank ones.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF / CR → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimSpace(line))
	}

	result := strings.Join(cleaned, "\n")
	// Collapse runs of blank lines (max 2 consecutive newlines)
	result = multiBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
