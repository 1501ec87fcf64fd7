package ingestion

import "fmt"

// UnsupportedFormatError is returned when a file's extension has no registered
// decoder
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format: %q (supported: .pdf, .docx, .txt)", e.Extension)
}

// DecodeError wraps a failure inside one of the format decoders
type DecodeError struct {
	Path   string
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s file %s: %v", e.Format, e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
