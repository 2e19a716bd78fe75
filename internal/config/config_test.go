package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Point the optional config file somewhere that does not exist so the
	// test is independent of the machine it runs on.
	t.Setenv("EDV_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, []string{"ES", "S", "DAL", "SPLIT", "WHOLE"}, cfg.Matching.Stopwords)
	assert.Equal(t, 20, cfg.Matching.HeaderScanRows)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EDV_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("EDV_LOGGING_LEVEL", "debug")
	t.Setenv("EDV_LOGGING_OUTPUT", "file")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "file", cfg.Logging.Output)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := []byte("logging:\n  level: warn\nmatching:\n  header_scan_rows: 35\n")
	require.NoError(t, os.WriteFile(configFile, content, 0644))

	cfg, err := loadFromFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 35, cfg.Matching.HeaderScanRows)
}

func TestMergeConfigs_EnvWins(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Logging.Level = "warn"
	fileCfg.Matching.HeaderScanRows = 35

	envCfg := Config{}
	envCfg.Logging.Level = "debug"

	merged := mergeConfigs(fileCfg, envCfg)
	assert.Equal(t, "debug", merged.Logging.Level, "env value beats file value")
	assert.Equal(t, 35, merged.Matching.HeaderScanRows, "file fills env gaps")
}

func TestLoad_InvalidOutput(t *testing.T) {
	t.Setenv("EDV_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("EDV_LOGGING_OUTPUT", "syslog")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging output")
}

func TestPathsIn(t *testing.T) {
	base := t.TempDir()
	paths := PathsIn(base)

	assert.Equal(t, filepath.Join(base, "data", "documents"), paths.DocumentsDir)
	assert.Equal(t, filepath.Join(base, "data", "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(base, "data", "cache"), paths.CacheDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)

	require.NoError(t, paths.EnsureDirectories())
	for _, dir := range []string{paths.DocumentsDir, paths.ReportsDir, paths.CacheDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	assert.Equal(t, filepath.Join(base, "data", "reports", "r.csv"), paths.GetReportPath("r.csv"))
	assert.Equal(t, filepath.Join(base, "data", "cache", "s.pdf"), paths.GetCachePath("s.pdf"))
	assert.Equal(t, filepath.Join(base, "logs", "v.log"), paths.GetLogPath("v.log"))
	assert.Equal(t, filepath.Join(base, "data", "documents", "d.pdf"), paths.GetDocumentPath("d.pdf"))
}
