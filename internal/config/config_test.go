package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg := Load(t.TempDir())
	assert.Equal(t, DefaultBackend, cfg.Backend)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Contains(t, cfg.TextExtensions, ".textfsm")
}

func TestLoad_FileOverridesSetKeysOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "backend: ttp\ntext_extensions:\n  - .out\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tpt.yaml"), []byte(content), 0o644))

	cfg := Load(dir)
	assert.Equal(t, "ttp", cfg.Backend)
	assert.Equal(t, DefaultTheme, cfg.Theme, "unset key keeps default")
	assert.Equal(t, []string{".out"}, cfg.TextExtensions)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tpt.yaml"), []byte("{not yaml: ["), 0o644))

	cfg := Load(dir)
	assert.Equal(t, DefaultBackend, cfg.Backend)
}

func TestShowsFile(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.True(t, cfg.ShowsFile("router.log"))
	assert.True(t, cfg.ShowsFile("tpl.textfsm"))
	assert.True(t, cfg.ShowsFile("REPORT.TXT"))
	assert.False(t, cfg.ShowsFile("binary.bin"))
	assert.False(t, cfg.ShowsFile("noext"))
}
