package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractResumeText_TxtFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\r\n\r\n\r\n\r\nEngineer   at  Acme\n"), 0644))

	text, err := ExtractResumeText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nEngineer at Acme", text)
}

func TestExtractResumeText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractResumeText("resume.odt")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Extension)
	assert.Contains(t, err.Error(), ".odt")
}

func TestExtractResumeText_NoExtension(t *testing.T) {
	_, err := ExtractResumeText("resume")

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "", unsupported.Extension)
}

func TestExtractResumeText_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.TXT")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	text, err := ExtractResumeText(path)
	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestExtractResumeText_MissingFile(t *testing.T) {
	_, err := ExtractResumeText(filepath.Join(t.TempDir(), "absent.txt"))

	var decode *DecodeError
	require.ErrorAs(t, err, &decode)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCleanText_NormalizesLineEndingsAndWhitespace(t *testing.T) {
	input := "line one\r\nline\ttwo\rline   three"
	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanText_CollapsesBlankLineRuns(t *testing.T) {
	input := "a\n\n\n\n\nb"
	assert.Equal(t, "a\n\nb", CleanText(input))
}

func TestCleanText_PreservesSingleLineBreaks(t *testing.T) {
	input := "Experience\nEducation\nSkills"
	assert.Equal(t, input, CleanText(input))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
}

func TestNewMetadata_Fields(t *testing.T) {
	meta := NewMetadata("/uploads/resume.PDF", "some text")

	assert.Equal(t, "resume.PDF", meta.Filename)
	assert.Equal(t, "pdf", meta.Format)
	assert.Equal(t, 9, meta.Characters)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.ExtractedAt)
}

func TestNewMetadata_HashIsDeterministic(t *testing.T) {
	first := NewMetadata("a.txt", "same content")
	second := NewMetadata("b.txt", "same content")
	assert.Equal(t, first.Hash, second.Hash)
}
