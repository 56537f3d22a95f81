// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkoster/demoboard/internal/logging"
	"github.com/pkoster/demoboard/internal/models"
)

// SaveScore records one completed game.
//
// Method: POST
// Path: /api/scores
//
// The id and timestamp are assigned here; any client-supplied values are
// dropped by the request shape.
//
// Response:
//   - 200: the stored score
//   - 400: malformed body or failed validation
func (h *Handler) SaveScore(w http.ResponseWriter, r *http.Request) {
	var body models.ScoreCreate
	if !decodeAndValidate(w, r, &body) {
		return
	}

	score := body.Record(uuid.NewString(), time.Now().UTC())
	if err := h.store.CreateScore(r.Context(), score); err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to save score", err)
		return
	}

	logging.Info().
		Str("score_id", score.ID).
		Str("player", sanitizeLogValue(score.PlayerName)).
		Int("score", score.Score).
		Msg("Score saved")
	respondJSON(w, http.StatusOK, score)
}

// Leaderboard returns the top scores as ranked entries.
//
// Method: GET
// Path: /api/scores/leaderboard
//
// Query parameters:
//   - limit: optional; 1..max configured limit
//
// Ranks are 1-based positions within the returned page. Ties keep a stable
// order (earliest timestamp, then id), so equal scores never swap between
// requests.
//
// Response:
//   - 200: array of leaderboard entries
//   - 400: non-integer or out-of-range limit
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := getIntParam(r, "limit", h.cfg.API.DefaultLeaderboardLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if limit < 1 || limit > h.cfg.API.MaxLeaderboardLimit {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("limit must be between 1 and %d", h.cfg.API.MaxLeaderboardLimit), nil)
		return
	}

	scores, err := h.store.TopScores(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load leaderboard", err)
		return
	}

	entries := make([]models.LeaderboardEntry, len(scores))
	for i, s := range scores {
		entries[i] = models.LeaderboardEntry{
			Rank:       i + 1,
			PlayerName: s.PlayerName,
			Score:      s.Score,
			Level:      s.Level,
			Timestamp:  s.Timestamp,
		}
	}
	respondJSON(w, http.StatusOK, entries)
}

// Stats returns aggregate statistics over all recorded games.
//
// Method: GET
// Path: /api/stats
//
// Response:
//   - 200: totals, average (2 decimal places), highest score, most played level
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.ScoreStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to compute stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
