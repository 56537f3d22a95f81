// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoster/demoboard/internal/config"
	"github.com/pkoster/demoboard/internal/models"
)

func newTestBadger(t *testing.T) *Badger {
	t.Helper()

	s, err := NewBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close(context.Background())
	})
	return s
}

func seededCatalog() []models.Demo {
	catalog := SeedCatalog()
	for i := range catalog {
		catalog[i].ID = uuid.NewString()
	}
	return catalog
}

func TestBadgerDemoCRUD(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)
	ctx := context.Background()

	demo := &models.Demo{
		ID:           uuid.NewString(),
		Title:        "Camera Follow",
		Description:  "Make the camera track the player sprite",
		Level:        models.LevelIntermediate,
		CodeExample:  "this.cameras.main.startFollow(this.player);",
		Technologies: []string{"Camera"},
		Difficulty:   "Medium",
		Preview:      "Scrolling view",
		SceneName:    "CameraScene",
	}

	require.NoError(t, s.CreateDemo(ctx, demo))

	got, err := s.GetDemo(ctx, demo.ID)
	require.NoError(t, err)
	assert.Equal(t, demo, got)

	n, err := s.CountDemos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.DeleteDemo(ctx, demo.ID))

	_, err = s.GetDemo(ctx, demo.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again reports the same miss.
	assert.ErrorIs(t, s.DeleteDemo(ctx, demo.ID), ErrNotFound)
}

func TestBadgerGetDemoNotFound(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)

	_, err := s.GetDemo(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBadgerListDemosLevelFilter(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)
	ctx := context.Background()

	require.NoError(t, s.SeedDemos(ctx, seededCatalog()))

	all, err := s.ListDemos(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 9)

	basic, err := s.ListDemos(ctx, models.LevelBasic)
	require.NoError(t, err)
	require.Len(t, basic, 3)
	for _, d := range basic {
		assert.Equal(t, models.LevelBasic, d.Level)
	}

	advanced, err := s.ListDemos(ctx, models.LevelAdvanced)
	require.NoError(t, err)
	assert.Len(t, advanced, 3)
}

func TestBadgerListDemosEmpty(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)

	demos, err := s.ListDemos(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, demos)
	assert.Empty(t, demos)
}

func TestBadgerSeedDemosIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)
	ctx := context.Background()

	require.NoError(t, s.SeedDemos(ctx, seededCatalog()))
	// A second seed (fresh ids, same titles) observes the marker and is a no-op.
	require.NoError(t, s.SeedDemos(ctx, seededCatalog()))

	n, err := s.CountDemos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
}

func TestBadgerSeedDemosConcurrent(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)
	ctx := context.Background()

	// Racing first-reads all call SeedDemos; exactly one transaction commits
	// the catalog, the rest lose on the marker or the txn conflict.
	const seeders = 8
	errs := make(chan error, seeders)
	var wg sync.WaitGroup
	for i := 0; i < seeders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.SeedDemos(ctx, seededCatalog())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	n, err := s.CountDemos(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
}

func TestBadgerTopScoresOrdering(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []models.Score{
		{ID: "s1", PlayerName: "Ace", Score: 900, Level: 3, Timestamp: base.Add(3 * time.Minute)},
		{ID: "s2", PlayerName: "Bolt", Score: 1200, Level: 2, Timestamp: base},
		{ID: "s3", PlayerName: "Crash", Score: 900, Level: 1, Timestamp: base.Add(time.Minute)},
		{ID: "s4", PlayerName: "Dart", Score: 500, Level: 1, Timestamp: base},
	}
	for i := range records {
		require.NoError(t, s.CreateScore(ctx, &records[i]))
	}

	top, err := s.TopScores(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 4)

	// Score descending; the 900 tie resolves to the earlier timestamp.
	assert.Equal(t, "Bolt", top[0].PlayerName)
	assert.Equal(t, "Crash", top[1].PlayerName)
	assert.Equal(t, "Ace", top[2].PlayerName)
	assert.Equal(t, "Dart", top[3].PlayerName)

	limited, err := s.TopScores(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "Bolt", limited[0].PlayerName)
}

func TestBadgerTopScoresEmpty(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)

	top, err := s.TopScores(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, top)
	assert.Empty(t, top)
}

func TestBadgerScoreStats(t *testing.T) {
	t.Parallel()

	s := newTestBadger(t)
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		stats, err := s.ScoreStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &models.GameStats{
			TotalGames:      0,
			AverageScore:    0.0,
			HighestScore:    0,
			MostPlayedLevel: 1,
		}, stats)
	})

	t.Run("populated collection", func(t *testing.T) {
		now := time.Now().UTC()
		records := []models.Score{
			{PlayerName: "Ace", Score: 1000, Level: 2, Timestamp: now},
			{PlayerName: "Bolt", Score: 500, Level: 2, Timestamp: now},
			{PlayerName: "Crash", Score: 2000, Level: 3, Timestamp: now},
		}
		for i := range records {
			records[i].ID = fmt.Sprintf("score-%d", i)
			require.NoError(t, s.CreateScore(ctx, &records[i]))
		}

		stats, err := s.ScoreStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalGames)
		assert.InDelta(t, 1166.67, stats.AverageScore, 0.001)
		assert.Equal(t, 2000, stats.HighestScore)
		assert.Equal(t, 2, stats.MostPlayedLevel)
	})
}

func TestBadgerPingAndClose(t *testing.T) {
	t.Parallel()

	s, err := NewBadger(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Close(ctx))
	assert.Error(t, s.Ping(ctx))
}

func TestStoreNewDispatch(t *testing.T) {
	t.Parallel()

	t.Run("badger driver", func(t *testing.T) {
		t.Parallel()
		st, err := New(context.Background(), &config.StoreConfig{
			Driver:     "badger",
			BadgerPath: t.TempDir(),
		})
		require.NoError(t, err)
		require.NoError(t, st.Close(context.Background()))
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		_, err := New(context.Background(), &config.StoreConfig{Driver: "redis"})
		assert.Error(t, err)
	})
}
