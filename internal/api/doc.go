// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

// Package api provides the HTTP surface of Demoboard: demo catalog CRUD,
// score submission, the leaderboard and stats views, and the liveness and
// health endpoints, all routed with Chi under the /api prefix.
//
// Handlers are stateless; every request is a single store round trip
// followed by a JSON response. Error bodies use the structured
// models.APIError shape; success bodies are the plain domain shapes.
package api
