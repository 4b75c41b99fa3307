// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads tiptime settings from defaults, tiptime.yaml,
// TIPTIME_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the effective application configuration.
type Config struct {
	// Language selects the UI strings ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
	// Locale controls separators and the currency symbol. Empty means the
	// process locale (LC_ALL, LC_MONETARY, LANG).
	Locale string `mapstructure:"locale" yaml:"locale"`
	// Currency is an ISO 4217 code. Empty means the locale's currency.
	Currency string `mapstructure:"currency" yaml:"currency"`
	// RoundUp is the initial position of the round-up switch.
	RoundUp bool `mapstructure:"round_up" yaml:"round_up"`
}

// Defaults returns the built-in configuration values keyed by viper key.
func Defaults() map[string]any {
	return map[string]any{
		"language": "en",
		"locale":   "",
		"currency": "",
		"round_up": false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Tiptime")
		default:
			configDir = "/etc/tiptime"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "tiptime")
	}

	return filepath.Join(configDir, "tiptime.yaml"), nil
}

// LoadConfig resolves a T from defaults, the first tiptime.yaml found (or
// the explicit file), TIPTIME_* environment variables and the flags of cmd.
// It returns viper.ConfigFileNotFoundError alongside the resolved value when
// no file exists, so callers can treat a first run specially.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("tiptime")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	readErr := v.ReadInConfig()
	if readErr != nil {
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
			return c, fmt.Errorf("reading config: %w", readErr)
		}
	}

	v.SetEnvPrefix("tiptime")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}

	return c, readErr
}

// Marshal renders c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile writes c to the user (or system) config path, creating
// the directory if needed, and returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
