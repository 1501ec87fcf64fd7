package ingestion

import (
	"bytes"

	"github.com/dslipak/pdf"
)

// extractPDF pulls the plain text out of a PDF file. Layout information is
// discarded; the analysis heuristics only need the words and line structure.
func extractPDF(path string) (string, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return "", &DecodeError{Path: path, Format: "pdf", Cause: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &DecodeError{Path: path, Format: "pdf", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", &DecodeError{Path: path, Format: "pdf", Cause: err}
	}

	return CleanText(buf.String()), nil
}
