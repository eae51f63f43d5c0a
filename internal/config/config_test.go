package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.General.ExportDir)
	assert.Equal(t, 9000.0, cfg.FixedCommission())
	assert.True(t, cfg.ClipboardEnabled())
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
	assert.Equal(t, time.Second, cfg.SaveDelay())
	assert.Equal(t, 3*time.Second, cfg.AlertDuration())
}

func TestLoadKeepsExplicitZeroes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[share]
clipboard = false

[summary]
fixed_commission = 0

[appearance]
theme = "tokyo-night"
`), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, cfg.ClipboardEnabled())
	assert.Equal(t, 0.0, cfg.FixedCommission())
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	assert.Equal(t, "127.0.0.1:8799", cfg.Share.ServeAddr, "unset keys fall back to defaults")
}

func TestLoadKeepsZeroTimings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[tui]
save_delay_ms = 0
alert_secs = 0
`), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.SaveDelay())
	assert.Equal(t, time.Duration(0), cfg.AlertDuration())
}

func TestZeroValueTimingsUseDefaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, time.Second, cfg.SaveDelay())
	assert.Equal(t, 3*time.Second, cfg.AlertDuration())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRESUPUESTO_EXPORT_DIR", "/tmp/exports")
	t.Setenv("PRESUPUESTO_FIXED_COMMISSION", "12500")
	t.Setenv("PRESUPUESTO_CLIPBOARD", "false")
	t.Setenv("PRESUPUESTO_THEME", "terminal")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", cfg.General.ExportDir)
	assert.Equal(t, 12500.0, cfg.FixedCommission())
	assert.False(t, cfg.ClipboardEnabled())
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))

	cfg, err := LoadFrom(path)
	assert.ErrorContains(t, err, "parsing config")
	assert.Equal(t, DefaultConfig().Appearance, cfg.Appearance)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.General.ExportDir = "salidas"
	commission := 4500.0
	cfg.Summary.FixedCommission = &commission

	require.NoError(t, SaveTo(path, cfg))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "salidas", got.General.ExportDir)
	assert.Equal(t, 4500.0, got.FixedCommission())
}

func TestConfigDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "presupuesto", "config.toml"), ConfigPath())
}
