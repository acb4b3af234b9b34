// Package config holds the application settings and the profile document codec.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ProfilesConfig locates the profile document.
type ProfilesConfig struct {
	// Path is the default path for save/load of the profile document.
	Path string `toml:"path"`
}

// SchedulerConfig tunes the background scheduler.
type SchedulerConfig struct {
	// PollSeconds is the sleep between wall-clock polls.
	PollSeconds int `toml:"poll-seconds"`

	// DebounceSeconds is the sleep after a fired entry.
	DebounceSeconds int `toml:"debounce-seconds"`
}

// LogConfig tunes logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the application settings, loaded from TOML.
type Config struct {
	Profiles  ProfilesConfig  `toml:"profiles"`
	Scheduler SchedulerConfig `toml:"scheduler"`
	Log       LogConfig       `toml:"log"`

	configPath string
}

// DefaultConfigDir returns the settings directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "multiwall")
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Profiles: ProfilesConfig{
			Path: filepath.Join(DefaultConfigDir(), "profiles.txt"),
		},
		Scheduler: SchedulerConfig{
			PollSeconds:     30,
			DebounceSeconds: 60,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads settings from path, falling back to defaults when the file does
// not exist. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	cfg := DefaultConfig()
	cfg.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Profiles.Path = expandPath(cfg.Profiles.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings for sanity.
func (c *Config) Validate() error {
	if c.Scheduler.PollSeconds <= 0 {
		return fmt.Errorf("scheduler poll-seconds must be positive, got %d", c.Scheduler.PollSeconds)
	}
	if c.Scheduler.DebounceSeconds <= 0 {
		return fmt.Errorf("scheduler debounce-seconds must be positive, got %d", c.Scheduler.DebounceSeconds)
	}
	if c.Profiles.Path == "" {
		return fmt.Errorf("profiles path must not be empty")
	}
	return nil
}

// PollInterval returns the scheduler poll sleep.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Scheduler.PollSeconds) * time.Second
}

// Debounce returns the scheduler post-fire sleep.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Scheduler.DebounceSeconds) * time.Second
}

// ConfigPath returns the path the settings were loaded from.
func (c *Config) ConfigPath() string {
	return c.configPath
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
