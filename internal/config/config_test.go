package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceHTTP, cfg.Source)
	assert.Equal(t, DefaultSheetURL, cfg.SheetURL)
	assert.Equal(t, 15, cfg.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 500*time.Millisecond, cfg.ScrollDebounce)
	assert.Equal(t, 36*time.Hour, cfg.TrendingWindow)
	assert.Equal(t, "@every 1h", cfg.RefreshSchedule)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "config.yaml", `
source: file
csv_path: /data/videos.csv
page_size: 20
search_debounce: 150ms
trending_window: 48h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, "/data/videos.csv", cfg.CSVPath)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 48*time.Hour, cfg.TrendingWindow)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout, "unset fields keep defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("COURTSIDE_SOURCE", "sqlite")
	t.Setenv("COURTSIDE_DB", "/tmp/c.db")
	t.Setenv("COURTSIDE_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceSQLite, cfg.Source)
	assert.Equal(t, "/tmp/c.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, ".env", "COURTSIDE_SOURCE=file\nCOURTSIDE_CSV=/from/dotenv.csv\n")
	t.Cleanup(func() {
		os.Unsetenv("COURTSIDE_SOURCE")
		os.Unsetenv("COURTSIDE_CSV")
	})

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceFile, cfg.Source)
	assert.Equal(t, "/from/dotenv.csv", cfg.CSVPath)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "config.yaml", "page_size: [oops")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown source", func(c *Config) { c.Source = "ftp" }},
		{"file without path", func(c *Config) { c.Source = SourceFile; c.CSVPath = "" }},
		{"http without url", func(c *Config) { c.SheetURL = "" }},
		{"sqlite without db", func(c *Config) { c.Source = SourceSQLite; c.DBPath = "" }},
		{"zero page size", func(c *Config) { c.PageSize = 0 }},
		{"zero debounce", func(c *Config) { c.SearchDebounce = 0 }},
		{"negative window", func(c *Config) { c.TrendingWindow = -time.Hour }},
		{"negative gap", func(c *Config) { c.MinRefreshGap = -time.Second }},
		{"empty schedule", func(c *Config) { c.RefreshSchedule = "" }},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		assert.Error(t, cfg.Validate(), tt.name)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.PageSize = 25
	cfg.ScrollDebounce = time.Second
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, loaded.PageSize)
	assert.Equal(t, time.Second, loaded.ScrollDebounce)
}
