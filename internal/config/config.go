package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is trayflow's runtime configuration, read from
// ~/.trayflow/config.yaml with TRAYFLOW_* environment overrides
// (TRAYFLOW_DB_PATH, TRAYFLOW_SYNC_DAYS, ...).
type Config struct {
	DBPath   string `mapstructure:"db_path"`
	SyncDays int    `mapstructure:"sync_days"`
	NoColor  bool   `mapstructure:"no_color"`
}

// Load reads configuration, falling back to defaults when no config file
// exists. A missing file is normal on first run; a malformed one is an
// error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".trayflow")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetDefault("db_path", filepath.Join(configDir, "trayflow.db"))
	v.SetDefault("sync_days", 14)
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("TRAYFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.SyncDays <= 0 {
		cfg.SyncDays = 14
	}
	return &cfg, nil
}
