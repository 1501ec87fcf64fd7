package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownFeatureKeys(t *testing.T) {
	for _, key := range []string{
		"generate_summary", "rewrite_bullets", "ats_analysis",
		"chat", "cover_letter", "skill_gap",
	} {
		template, err := Get("assistant.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, template)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("assistant.json", "does_not_exist")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "chat")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	out := Format("Hello {{.Name}}, you have {{.Years}} years", map[string]string{
		"Name":  "Jane",
		"Years": "5",
	})
	assert.Equal(t, "Hello Jane, you have 5 years", out)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	out := Format("{{.Known}} and {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", out)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("assistant.json", "nope") })
}
