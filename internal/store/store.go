// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

// Package store provides the document store behind the demo catalog and the
// score leaderboard. Two drivers implement the same contract:
//
//   - mongo: an external MongoDB instance (production default), configured
//     with MONGO_URL and DB_NAME
//   - badger: an embedded BadgerDB document store for single-binary installs
//     and tests
//
// All durable state lives here; handlers hold no cross-request state. The
// store is the sole point of concurrency control (per-document write
// atomicity of the underlying engine).
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pkoster/demoboard/internal/config"
	"github.com/pkoster/demoboard/internal/metrics"
	"github.com/pkoster/demoboard/internal/models"
)

// ErrNotFound signals that a requested record does not exist. Handlers
// translate it to 404; every other store error surfaces as 500.
var ErrNotFound = errors.New("record not found")

// Store is the document store contract shared by both drivers.
//
// Deterministic ordering guarantees (the underlying engines differ, so the
// drivers enforce these explicitly):
//   - TopScores: score descending, then earliest timestamp, then id
//   - ScoreStats most-played level: lowest level number wins a count tie
type Store interface {
	// Demo catalog
	ListDemos(ctx context.Context, level string) ([]models.Demo, error)
	GetDemo(ctx context.Context, id string) (*models.Demo, error)
	CreateDemo(ctx context.Context, demo *models.Demo) error
	DeleteDemo(ctx context.Context, id string) error
	CountDemos(ctx context.Context) (int64, error)

	// SeedDemos inserts the seed catalog idempotently: records are upserted
	// keyed by title (mongo) or guarded by a seeded marker (badger), so
	// concurrent first-reads can both call it without duplicating entries.
	SeedDemos(ctx context.Context, demos []models.Demo) error

	// Scores (append-only)
	CreateScore(ctx context.Context, score *models.Score) error
	TopScores(ctx context.Context, limit int) ([]models.Score, error)
	ScoreStats(ctx context.Context) (*models.GameStats, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New opens the store selected by the configuration.
func New(ctx context.Context, cfg *config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "mongo":
		return NewMongo(ctx, cfg.MongoURL, cfg.DBName)
	case "badger":
		return NewBadger(cfg.BadgerPath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// track starts a Prometheus timer for one store operation. The returned
// function records duration and failure; call it with trackErr(err) so
// expected NotFound misses are not counted as store failures.
func track(operation, collection string) func(error) {
	start := time.Now()
	return func(err error) {
		metrics.RecordStoreOperation(operation, collection, time.Since(start), err)
	}
}

// trackErr filters the NotFound sentinel out of error metrics.
func trackErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// levelAggregate is the per-level grouping both drivers reduce scores into
// before the final stats are computed.
type levelAggregate struct {
	Level    int
	Count    int
	SumScore int64
	MaxScore int
}

// statsFromAggregates combines per-level groups into GameStats. The empty
// collection yields the canonical empty state: 0 games, 0.0 average,
// 0 highest, most-played level 1.
func statsFromAggregates(groups []levelAggregate) *models.GameStats {
	stats := &models.GameStats{MostPlayedLevel: 1}

	var sum int64
	bestCount := 0
	for _, g := range groups {
		stats.TotalGames += g.Count
		sum += g.SumScore
		if g.MaxScore > stats.HighestScore {
			stats.HighestScore = g.MaxScore
		}
		// Lowest level wins a tie, independent of group order.
		if g.Count > bestCount || (g.Count == bestCount && g.Level < stats.MostPlayedLevel) {
			bestCount = g.Count
			stats.MostPlayedLevel = g.Level
		}
	}

	if stats.TotalGames > 0 {
		avg := float64(sum) / float64(stats.TotalGames)
		stats.AverageScore = math.Round(avg*100) / 100
	}

	return stats
}

// scoreLess is the deterministic leaderboard ordering: score descending,
// then earliest timestamp first, then id ascending.
func scoreLess(a, b *models.Score) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.ID < b.ID
}
