// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and an optional YAML config file.
//
// Loading order (Koanf v2, highest priority wins):
//  1. Built-in defaults
//  2. Optional config file (config.yaml)
//  3. Environment variables
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Store   StoreConfig   `koanf:"store"`
	Server  ServerConfig  `koanf:"server"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// StoreConfig selects and configures the document store driver.
//
// Environment variables:
//   - STORE_DRIVER: "mongo" (default) or "badger"
//   - MONGO_URL: connection string, required for the mongo driver
//   - DB_NAME: database name, required for the mongo driver
//   - BADGER_PATH: data directory for the badger driver
type StoreConfig struct {
	Driver     string `koanf:"driver"`
	MongoURL   string `koanf:"mongo_url"`
	DBName     string `koanf:"db_name"`
	BadgerPath string `koanf:"badger_path"`
}

// ServerConfig holds HTTP server settings.
//
// Environment variables:
//   - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT
//   - STATIC_DIR: directory served under /static/
//   - CORS_ORIGINS: comma-separated allowed origins (default "*")
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	StaticDir   string        `koanf:"static_dir"`
	CORSOrigins []string      `koanf:"cors_origins"`
}

// APIConfig bounds the leaderboard query surface.
type APIConfig struct {
	DefaultLeaderboardLimit int `koanf:"default_leaderboard_limit"`
	MaxLeaderboardLimit     int `koanf:"max_leaderboard_limit"`
}

// LoggingConfig holds log output settings (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the loaded configuration. The process must not start with
// an unusable store configuration: the mongo driver requires both the
// connection string and the database name from the environment.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "mongo":
		if c.Store.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required when store driver is mongo")
		}
		if c.Store.DBName == "" {
			return fmt.Errorf("DB_NAME is required when store driver is mongo")
		}
	case "badger":
		if c.Store.BadgerPath == "" {
			return fmt.Errorf("BADGER_PATH is required when store driver is badger")
		}
	default:
		return fmt.Errorf("unknown store driver %q (expected mongo or badger)", c.Store.Driver)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %s", c.Server.Timeout)
	}

	if c.API.DefaultLeaderboardLimit < 1 {
		return fmt.Errorf("default leaderboard limit must be at least 1")
	}
	if c.API.MaxLeaderboardLimit < c.API.DefaultLeaderboardLimit {
		return fmt.Errorf("max leaderboard limit %d is below the default %d",
			c.API.MaxLeaderboardLimit, c.API.DefaultLeaderboardLimit)
	}

	return nil
}
