// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

// Package config loads application configuration with Koanf v2 from
// layered sources: built-in defaults, an optional YAML file, and
// environment variables (highest priority).
//
// The store connection settings are the only hard requirements: with the
// default mongo driver, MONGO_URL and DB_NAME must be present or the
// process refuses to start.
package config
