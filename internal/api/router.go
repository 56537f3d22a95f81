// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkoster/demoboard/internal/config"
	"github.com/pkoster/demoboard/internal/middleware"
)

// NewRouter builds the Chi route tree. All API routes live under /api; the
// Prometheus endpoint and the static game assets sit outside that prefix so
// they stay out of the API request metrics.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.Get("/", h.Root)

		r.Route("/health", func(r chi.Router) {
			r.Get("/live", h.HealthLive)
			r.Get("/ready", h.HealthReady)
		})

		r.Route("/demos", func(r chi.Router) {
			r.Get("/", h.ListDemos)
			r.Post("/", h.CreateDemo)
			r.Get("/{id}", h.GetDemo)
			r.Delete("/{id}", h.DeleteDemo)
		})

		r.Route("/scores", func(r chi.Router) {
			r.Post("/", h.SaveScore)
			r.Get("/leaderboard", h.Leaderboard)
		})

		r.Get("/stats", h.Stats)
	})

	r.Handle("/metrics", promhttp.Handler())

	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Server.StaticDir)))
	r.Get("/static/*", fileServer.ServeHTTP)

	return r
}
