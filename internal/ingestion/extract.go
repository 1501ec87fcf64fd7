// Package ingestion converts uploaded résumé files (PDF, DOCX, TXT) into
// cleaned plain text ready for analysis.
package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// ExtractResumeText decodes the file at path into plain text, dispatching on
// the file extension. The result is cleaned (normalized line endings,
// collapsed whitespace) but otherwise unstructured. An unrecognized extension
// yields an *UnsupportedFormatError naming the extension.
func ExtractResumeText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	case ".txt":
		return extractTXT(path)
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

func extractTXT(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &DecodeError{Path: path, Format: "text", Cause: err}
	}
	return CleanText(string(content)), nil
}
