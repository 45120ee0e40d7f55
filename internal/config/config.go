// Package config loads tasktree settings from TOML files and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/pablasso/tasktree/internal/workspace"
)

// Default values.
const (
	DefaultSavesDir = "saves"
	DefaultSort     = workspace.SortByStatusThenPriority
	DefaultLogLevel = "info"
)

// EnvSavesDir overrides saves_dir when set.
const EnvSavesDir = "TASKTREE_SAVES_DIR"

// Config holds the full configuration for tasktree.
type Config struct {
	SavesDir    string `toml:"saves_dir"`
	DefaultSort string `toml:"default_sort"`
	LogLevel    string `toml:"log_level"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SavesDir:    DefaultSavesDir,
		DefaultSort: string(DefaultSort),
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads configuration in priority order: defaults, then the first
// config file found (explicit path, tasktree.toml, .tasktree.toml, the user
// config dir), then the environment. An explicit path that does not exist
// is an error; the implicit locations are optional.
func Load(explicitPath string) (*Config, error) {
	userDir, err := os.UserConfigDir()
	if err != nil {
		userDir = ""
	}
	return load(explicitPath, ".", userDir)
}

func load(explicitPath, workDir, userDir string) (*Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = findConfigFile(workDir, userDir)
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.Source = path
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first candidate that exists, or "".
func findConfigFile(workDir, userDir string) string {
	candidates := []string{
		filepath.Join(workDir, "tasktree.toml"),
		filepath.Join(workDir, ".tasktree.toml"),
	}
	if userDir != "" {
		candidates = append(candidates, filepath.Join(userDir, "tasktree", "config.toml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvSavesDir); v != "" {
		cfg.SavesDir = v
	}
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	var errs []error
	if c.SavesDir == "" {
		errs = append(errs, errors.New("saves_dir cannot be empty"))
	}
	if _, err := workspace.ParseSortMode(c.DefaultSort); err != nil {
		errs = append(errs, fmt.Errorf("default_sort: %w", err))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SortMode returns the parsed default sort mode. Call Validate first.
func (c *Config) SortMode() workspace.SortMode {
	mode, err := workspace.ParseSortMode(c.DefaultSort)
	if err != nil {
		return DefaultSort
	}
	return mode
}

// Level returns the parsed log level, Info if unparseable.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
