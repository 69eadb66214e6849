package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("JOURNAL_BASE_URL", "http://example.test/journal")
	t.Setenv("JOURNAL_HTTP_TIMEOUT_SEC", "15")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "http://example.test/journal", cfg.Journal.BaseURL)
	assert.Equal(t, 15, cfg.Journal.TimeoutSec)
}

func TestLoad_Defaults(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("JOURNAL_BASE_URL", "")
	t.Setenv("PREFERENCES_BACKEND", "")
	t.Setenv("MINIO_ENDPOINT", "")

	cfg := Load()

	assert.Equal(t, DefaultJournalBaseURL, cfg.Journal.BaseURL)
	assert.Equal(t, PreferencesBackendFile, cfg.Preferences.Backend)
	assert.Equal(t, filepath.Join(dataDir, "documents"), cfg.Cache.DocumentsDir)
	assert.Equal(t, filepath.Join(dataDir, "preferences.json"), cfg.Preferences.FilePath)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
