// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package api

import (
	"net/http"
	"time"

	"github.com/pkoster/demoboard/internal/config"
	"github.com/pkoster/demoboard/internal/models"
	"github.com/pkoster/demoboard/internal/store"
)

// Version is reported by the liveness endpoint.
const Version = "1.0.0"

// Handler holds the shared dependencies of all route handlers. It carries
// no mutable cross-request state; the store is the only collaborator.
type Handler struct {
	store     store.Store
	cfg       *config.Config
	startTime time.Time
}

// NewHandler creates the handler set backed by the given store.
func NewHandler(st store.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     st,
		cfg:       cfg,
		startTime: time.Now(),
	}
}

// Root is the liveness/version endpoint.
//
// Method: GET
// Path: /api/
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.RootResponse{
		Message: "Demoboard API is running!",
		Version: Version,
	})
}

// HealthLive reports process liveness. It never touches the store.
//
// Method: GET
// Path: /api/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "alive",
		"uptime": time.Since(h.startTime).Truncate(time.Second).String(),
	})
}

// HealthReady reports readiness by pinging the document store.
//
// Method: GET
// Path: /api/health/ready
//
// Response:
//   - 200: store reachable
//   - 503: store ping failed
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "STORE_ERROR", "Document store not reachable", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
