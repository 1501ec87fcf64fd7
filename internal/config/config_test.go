package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `{"api_key": "secret", "mock_mode": true, "request_timeout_seconds": 10}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.True(t, cfg.MockMode)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout())
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `not json`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvMockMode, "true")
	t.Setenv(EnvRequestTimeout, "15")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.True(t, cfg.MockMode)
	assert.Equal(t, 15, cfg.RequestTimeoutSeconds)
}

func TestMerge_FillsUnsetFields(t *testing.T) {
	cfg := &Config{APIKey: "mine"}
	merged := cfg.Merge(&Config{APIKey: "theirs", MockMode: true, RequestTimeoutSeconds: 5})

	assert.Equal(t, "mine", merged.APIKey)
	assert.True(t, merged.MockMode)
	assert.Equal(t, 5, merged.RequestTimeoutSeconds)
}

func TestValidate_RequiresAPIKeyOutsideMockMode(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())

	cfg.MockMode = true
	assert.NoError(t, cfg.Validate())

	cfg = &Config{APIKey: "key"}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNegativeTimeout(t *testing.T) {
	cfg := &Config{MockMode: true, RequestTimeoutSeconds: -1}
	assert.Error(t, cfg.Validate())
}
