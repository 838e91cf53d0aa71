// ABOUTME: Tests for configuration loading, env expansion, and validation
// ABOUTME: Covers defaults, duration parsing, and missing-field errors

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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://push.example.com/api/v1
  timeout: 10s
state:
  path: /tmp/push-admin/state.db
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://push.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/push-admin/state.db", cfg.State.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_DefaultsApply(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://localhost:9000/api/v1
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.State.Path)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("PUSH_API_URL", "http://env.example.com/api/v1")
	path := writeConfig(t, `
api:
  base_url: ${PUSH_API_URL}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com/api/v1", cfg.API.BaseURL)
}

func TestLoad_UnsetEnvBecomesEmpty(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: ${DEFINITELY_NOT_SET_push_admin}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://localhost/api/v1
  timeout: soon
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timeout")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
