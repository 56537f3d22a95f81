// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

// Command server runs the Demoboard HTTP API.
//
// Configuration is read from environment variables and an optional
// config.yaml; see internal/config. The process exits non-zero when the
// configuration is invalid or the document store cannot be opened.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkoster/demoboard/internal/api"
	"github.com/pkoster/demoboard/internal/config"
	"github.com/pkoster/demoboard/internal/logging"
	"github.com/pkoster/demoboard/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("store_driver", cfg.Store.Driver).
		Msg("Starting Demoboard API")

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.New(startupCtx, &cfg.Store)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open document store")
	}

	handler := api.NewHandler(st, cfg)
	router := api.NewRouter(handler, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := st.Close(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Store close failed")
	}

	logging.Info().Msg("Demoboard API stopped")
}
