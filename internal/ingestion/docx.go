package ingestion

import (
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphClose = regexp.MustCompile(`</w:p>`)
	xmlTag         = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX pulls the plain text out of a DOCX file. The library exposes the
// underlying word/document.xml, so paragraph closes become line breaks and the
// remaining markup is stripped.
func extractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &DecodeError{Path: path, Format: "docx", Cause: err}
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	content = paragraphClose.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")

	return CleanText(content), nil
}
