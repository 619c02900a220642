// SPDX-License-Identifier: MPL-2.0

// Package config loads wineceptor's own optional configuration file. It
// supplies the startup defaults (wine binary name, search depth) that the
// launcher injects into the discovery and resolution pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "wineceptor"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// DefaultWinePath is the runtime binary used when neither the tool
	// config nor a prefix-scope WINE.path override names one.
	DefaultWinePath = "wine"
	// DefaultSearchDepth bounds the upward prefix search.
	DefaultSearchDepth = 15
)

var (
	// ErrInvalidWinePath is the sentinel error wrapped by InvalidWinePathError.
	ErrInvalidWinePath = errors.New("invalid wine path")
	// ErrInvalidSearchDepth is the sentinel error wrapped by InvalidSearchDepthError.
	ErrInvalidSearchDepth = errors.New("invalid search depth")
)

type (
	// Config holds the tool-level settings read at startup.
	Config struct {
		// WinePath is the default wine binary; a prefix-scope WINE.path
		// still overrides it per launch.
		WinePath string `mapstructure:"wine_path"`
		// SearchDepth is the maximum number of parent directories
		// examined while locating a prefix.
		SearchDepth int `mapstructure:"search_depth"`
	}

	// InvalidWinePathError is returned when wine_path is whitespace-only.
	InvalidWinePathError struct {
		Value string
	}

	// InvalidSearchDepthError is returned when search_depth is below 1.
	InvalidSearchDepthError struct {
		Value int
	}
)

// Error implements the error interface for InvalidWinePathError.
func (e *InvalidWinePathError) Error() string {
	return fmt.Sprintf("invalid wine_path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidWinePath for errors.Is() compatibility.
func (e *InvalidWinePathError) Unwrap() error { return ErrInvalidWinePath }

// Error implements the error interface for InvalidSearchDepthError.
func (e *InvalidSearchDepthError) Error() string {
	return fmt.Sprintf("invalid search_depth %d: must be at least 1", e.Value)
}

// Unwrap returns ErrInvalidSearchDepth for errors.Is() compatibility.
func (e *InvalidSearchDepthError) Unwrap() error { return ErrInvalidSearchDepth }

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		WinePath:    DefaultWinePath,
		SearchDepth: DefaultSearchDepth,
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WinePath) == "" {
		return &InvalidWinePathError{Value: c.WinePath}
	}
	if c.SearchDepth < 1 {
		return &InvalidSearchDepthError{Value: c.SearchDepth}
	}
	return nil
}

// ConfigDir returns the wineceptor configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	// Allow tests to override the config directory
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the tool config, returning defaults when no file exists.
// A missing file is not an error; an unreadable or invalid one is.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("wine_path", defaults.WinePath)
	v.SetDefault("search_depth", defaults.SearchDepth)

	if configFilePathOverride != "" {
		v.SetConfigFile(configFilePathOverride)
	} else {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
