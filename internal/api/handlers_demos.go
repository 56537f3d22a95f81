// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkoster/demoboard/internal/logging"
	"github.com/pkoster/demoboard/internal/models"
	"github.com/pkoster/demoboard/internal/store"
)

// ensureSeeded populates the demo catalog on first read. Both store drivers
// make the seed idempotent, so a race between two first-reads settles on a
// single catalog copy.
func (h *Handler) ensureSeeded(ctx context.Context) error {
	n, err := h.store.CountDemos(ctx)
	if err != nil {
		return fmt.Errorf("count demos: %w", err)
	}
	if n > 0 {
		return nil
	}

	catalog := store.SeedCatalog()
	for i := range catalog {
		catalog[i].ID = uuid.NewString()
	}
	if err := h.store.SeedDemos(ctx, catalog); err != nil {
		return fmt.Errorf("seed demos: %w", err)
	}

	logging.Info().Int("count", len(catalog)).Msg("Seeded demo catalog")
	return nil
}

// ListDemos returns the demo catalog, optionally filtered by level.
//
// Method: GET
// Path: /api/demos
//
// Query parameters:
//   - level: optional; one of basic, intermediate, advanced
//
// Response:
//   - 200: array of demos
//   - 400: unrecognized level value
func (h *Handler) ListDemos(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")
	if level != "" && !models.ValidLevel(level) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"level must be one of: basic, intermediate, advanced", nil)
		return
	}

	if err := h.ensureSeeded(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load demos", err)
		return
	}

	demos, err := h.store.ListDemos(r.Context(), level)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load demos", err)
		return
	}
	respondJSON(w, http.StatusOK, demos)
}

// GetDemo fetches a single demo by id.
//
// Method: GET
// Path: /api/demos/{id}
//
// Response:
//   - 200: the demo
//   - 404: no demo with that id
func (h *Handler) GetDemo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	demo, err := h.store.GetDemo(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Demo not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to load demo", err)
		return
	}
	respondJSON(w, http.StatusOK, demo)
}

// CreateDemo adds a new demo to the catalog.
//
// Method: POST
// Path: /api/demos
//
// Response:
//   - 200: the stored demo with its server-assigned id
//   - 400: malformed body or failed validation
func (h *Handler) CreateDemo(w http.ResponseWriter, r *http.Request) {
	var body models.DemoCreate
	if !decodeAndValidate(w, r, &body) {
		return
	}

	demo := body.Demo(uuid.NewString())
	if err := h.store.CreateDemo(r.Context(), demo); err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to create demo", err)
		return
	}

	logging.Info().
		Str("demo_id", demo.ID).
		Str("title", sanitizeLogValue(demo.Title)).
		Msg("Demo created")
	respondJSON(w, http.StatusOK, demo)
}

// DeleteDemo removes a demo from the catalog.
//
// Method: DELETE
// Path: /api/demos/{id}
//
// Response:
//   - 200: confirmation message
//   - 404: no demo with that id
func (h *Handler) DeleteDemo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.store.DeleteDemo(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Demo not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete demo", err)
		return
	}

	logging.Info().Str("demo_id", sanitizeLogValue(id)).Msg("Demo deleted")
	respondJSON(w, http.StatusOK, &models.MessageResponse{Message: "Demo deleted successfully"})
}
