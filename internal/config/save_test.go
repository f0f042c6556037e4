package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLocale_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveLocale(path, "my"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "locale: my\n", string(data))
}

func TestSaveLocale_ReplacesAndPreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SaveLocale(path, "my"))

	cfg := loadConfigFromYAML(t, mustRead(t, path))
	assert.Equal(t, "my", cfg.Locale)
	assert.Equal(t, "simulated", cfg.Account.Backend)

	data := mustRead(t, path)
	assert.Contains(t, data, "# signup configuration")
	assert.Contains(t, data, "# Account creation backend")
	assert.Contains(t, data, "catppuccin-mocha")
	assert.NotContains(t, data, "locale: en")
}

func TestSaveLocale_AppendsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  backend: sqlite\n"), 0o600))

	require.NoError(t, SaveLocale(path, "en"))

	data := mustRead(t, path)
	assert.Contains(t, data, "backend: sqlite")
	assert.Contains(t, data, "locale: en")
}

func TestSaveLocale_RejectsNonMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	require.ErrorContains(t, SaveLocale(path, "en"), "not a mapping")
}

func TestSaveLocale_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: [unclosed\n"), 0o600))

	require.ErrorContains(t, SaveLocale(path, "en"), "parsing config")
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
