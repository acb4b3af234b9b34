package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()

	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, "multiwall")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Contains(t, cfg.Profiles.Path, "profiles.txt")
	assert.Equal(t, 30, cfg.Scheduler.PollSeconds)
	assert.Equal(t, 60, cfg.Scheduler.DebounceSeconds)
	assert.Equal(t, 30*time.Second, cfg.PollInterval())
	assert.Equal(t, time.Minute, cfg.Debounce())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid config",
			file: "testdata/valid.toml",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/profiles.txt", cfg.Profiles.Path)
				assert.Equal(t, 10, cfg.Scheduler.PollSeconds)
				assert.Equal(t, 120, cfg.Scheduler.DebounceSeconds)
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name:        "invalid toml",
			file:        "testdata/invalid.toml",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name:        "invalid poll interval",
			file:        "testdata/bad_poll.toml",
			wantErr:     true,
			errContains: "poll-seconds",
		},
		{
			name: "non-existent file returns defaults",
			file: "testdata/does_not_exist.toml",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30, cfg.Scheduler.PollSeconds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.file)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}
