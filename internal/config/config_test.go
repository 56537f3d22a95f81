// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load reads the process environment, so these tests use t.Setenv and must
// not run in parallel.

func TestLoadDefaults(t *testing.T) {
	// The mongo default driver requires connection settings.
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "demoboard")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 10, cfg.API.DefaultLeaderboardLimit)
	assert.Equal(t, 100, cfg.API.MaxLeaderboardLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "badger")
	t.Setenv("BADGER_PATH", t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://demo.example.com, https://arcade.example.com")
	t.Setenv("LEADERBOARD_DEFAULT_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "badger", cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 25, cfg.API.DefaultLeaderboardLimit)
	assert.Equal(t,
		[]string{"https://demo.example.com", "https://arcade.example.com"},
		cfg.Server.CORSOrigins)
}

func TestLoadRejectsMongoWithoutURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Store.MongoURL = "mongodb://localhost:27017"
		cfg.Store.DBName = "demoboard"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid mongo config",
			mutate: func(c *Config) {},
		},
		{
			name: "valid badger config",
			mutate: func(c *Config) {
				c.Store = StoreConfig{Driver: "badger", BadgerPath: "/tmp/demoboard"}
			},
		},
		{
			name:    "mongo without db name",
			mutate:  func(c *Config) { c.Store.DBName = "" },
			wantErr: "DB_NAME",
		},
		{
			name:    "badger without path",
			mutate:  func(c *Config) { c.Store = StoreConfig{Driver: "badger"} },
			wantErr: "BADGER_PATH",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Store.Driver = "sqlite" },
			wantErr: "unknown store driver",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "port",
		},
		{
			name:    "non-positive timeout",
			mutate:  func(c *Config) { c.Server.Timeout = 0 },
			wantErr: "timeout",
		},
		{
			name:    "zero default leaderboard limit",
			mutate:  func(c *Config) { c.API.DefaultLeaderboardLimit = 0 },
			wantErr: "default leaderboard limit",
		},
		{
			name: "max limit below default",
			mutate: func(c *Config) {
				c.API.DefaultLeaderboardLimit = 50
				c.API.MaxLeaderboardLimit = 10
			},
			wantErr: "max leaderboard limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"MONGO_URL", "store.mongo_url"},
		{"DB_NAME", "store.db_name"},
		{"STORE_DRIVER", "store.driver"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"LEADERBOARD_MAX_LIMIT", "api.max_leaderboard_limit"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, envTransformFunc(tt.env))
		})
	}
}
