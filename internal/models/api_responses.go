// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package models

// APIError is the structured error body returned by every failing endpoint:
//
//	{
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Demo not found"
//	  }
//	}
//
// Common error codes:
//   - VALIDATION_ERROR: malformed or out-of-range request input
//   - NOT_FOUND: requested demo id does not exist
//   - STORE_ERROR: the document store failed to serve the operation
//
// Successful responses carry the plain domain shapes (Demo, Score,
// []LeaderboardEntry, GameStats) with no envelope.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for the wire.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// MessageResponse is the body for operations whose only payload is a
// human-readable confirmation, e.g. DELETE /api/demos/{id}.
type MessageResponse struct {
	Message string `json:"message"`
}

// RootResponse is the liveness/version body for GET /api/.
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
