// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

// Package models defines the record shapes stored in the document store
// (Demo, Score), the derived read-only views (LeaderboardEntry, GameStats),
// the request bodies accepted by the API, and the structured error body
// shared by every endpoint.
//
// Validation tags on the request shapes are enforced by the validation
// package before any handler logic runs; stored shapes carry both json and
// bson tags so the same struct round-trips through either store driver.
package models
