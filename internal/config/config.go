// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	LogLevel string         `mapstructure:"log_level"`
	Rclone   RcloneConfig   `mapstructure:"rclone"`
	Transfer TransferConfig `mapstructure:"transfer"`
}

// RcloneConfig controls how the rclone binary is invoked
type RcloneConfig struct {
	// Binary is the rclone executable name or path; resolved via PATH when bare.
	Binary string `mapstructure:"binary"`
	// RemoteType is the rclone backend used when creating a new remote.
	RemoteType string `mapstructure:"remote_type"`
	// ExtraArgs are appended to every transfer invocation.
	ExtraArgs []string `mapstructure:"extra_args"`
}

// TransferConfig represents transfer defaults
type TransferConfig struct {
	DefaultMode string `mapstructure:"default_mode"`
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel: "info",
		Rclone: RcloneConfig{
			Binary:     "rclone",
			RemoteType: "onedrive",
		},
		Transfer: TransferConfig{
			DefaultMode: "copy",
		},
	}
}

// Load reads the YAML config file at path, or ~/.cloudshift.yaml when path is
// empty. A missing default file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := New()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("rclone.binary", cfg.Rclone.Binary)
	v.SetDefault("rclone.remote_type", cfg.Rclone.RemoteType)
	v.SetDefault("transfer.default_mode", cfg.Transfer.DefaultMode)

	explicit := path != ""
	if !explicit {
		home, err := homedir.Dir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".cloudshift.yaml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
