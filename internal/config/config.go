// Package config loads and saves presupuesto's TOML settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
)

// Config holds all presupuesto configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Share      ShareConfig      `toml:"share"`
	Summary    SummaryConfig    `toml:"summary"`
	Appearance AppearanceConfig `toml:"appearance"`
	TUI        TUIConfig        `toml:"tui"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	ExportDir string `toml:"export_dir,omitempty" env:"PRESUPUESTO_EXPORT_DIR"`
	// Draft is a YAML draft loaded when --draft is not given.
	Draft string `toml:"draft,omitempty" env:"PRESUPUESTO_DRAFT"`
}

// ShareConfig holds share settings.
type ShareConfig struct {
	Clipboard *bool  `toml:"clipboard,omitempty" env:"PRESUPUESTO_CLIPBOARD"`
	ServeAddr string `toml:"serve_addr,omitempty" env:"PRESUPUESTO_SHARE_ADDR"`
}

// SummaryConfig holds project summary settings.
type SummaryConfig struct {
	FixedCommission *float64 `toml:"fixed_commission,omitempty" env:"PRESUPUESTO_FIXED_COMMISSION"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"PRESUPUESTO_THEME"`
}

// TUIConfig holds interactive form timings. Zero is a valid timing.
type TUIConfig struct {
	SaveDelayMS *int `toml:"save_delay_ms,omitempty"`
	AlertSecs   *int `toml:"alert_secs,omitempty"`
}

const (
	defaultSaveDelayMS = 1000
	defaultAlertSecs   = 3
)

// DefaultFixedCommission matches pipeline.DefaultFixedCommission.
const DefaultFixedCommission = 9000.0

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	clipboard := true
	commission := DefaultFixedCommission
	saveDelay, alertSecs := defaultSaveDelayMS, defaultAlertSecs
	return Config{
		General: GeneralConfig{
			ExportDir: ".",
		},
		Share: ShareConfig{
			Clipboard: &clipboard,
			ServeAddr: "127.0.0.1:8799",
		},
		Summary: SummaryConfig{
			FixedCommission: &commission,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		TUI: TUIConfig{
			SaveDelayMS: &saveDelay,
			AlertSecs:   &alertSecs,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "presupuesto")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "presupuesto")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, filling unset values from defaults and then
// applying PRESUPUESTO_* environment overrides.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom is Load for an explicit path.
func LoadFrom(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return DefaultConfig(), fmt.Errorf("reading config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := mergo.Merge(&cfg, DefaultConfig(), mergo.WithoutDereference); err != nil {
		return DefaultConfig(), fmt.Errorf("merging config defaults: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo is Save for an explicit path.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// FixedCommission is the commissions line of the project summary.
func (c Config) FixedCommission() float64 {
	if c.Summary.FixedCommission == nil {
		return DefaultFixedCommission
	}
	return *c.Summary.FixedCommission
}

// ClipboardEnabled reports whether share writes to the system clipboard.
func (c Config) ClipboardEnabled() bool {
	return c.Share.Clipboard == nil || *c.Share.Clipboard
}

// SaveDelay is how long the simulated save runs.
func (c Config) SaveDelay() time.Duration {
	ms := defaultSaveDelayMS
	if c.TUI.SaveDelayMS != nil {
		ms = *c.TUI.SaveDelayMS
	}
	return time.Duration(ms) * time.Millisecond
}

// AlertDuration is how long the "Continuar" confirmation stays visible.
func (c Config) AlertDuration() time.Duration {
	secs := defaultAlertSecs
	if c.TUI.AlertSecs != nil {
		secs = *c.TUI.AlertSecs
	}
	return time.Duration(secs) * time.Second
}
