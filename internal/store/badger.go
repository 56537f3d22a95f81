// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/pkoster/demoboard/internal/models"
)

// Key prefixes for BadgerDB storage. Each record is one JSON document.
const (
	demoKeyPrefix  = "demo:"
	scoreKeyPrefix = "score:"

	// seededMarkerKey guards the one-time catalog seed. It is written in the
	// same transaction as the seed records, so a partial seed cannot leave
	// the marker behind.
	seededMarkerKey = "meta:demos_seeded"
)

// Badger is the embedded document store for single-binary installs and
// tests. Collection scans are linear, which is fine at catalog/leaderboard
// scale.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (or creates) the BadgerDB data directory at path.
func NewBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logger is noisy; zerolog covers the rest

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &Badger{db: db}, nil
}

// ListDemos returns all demos, or only those matching level when non-empty,
// in key order.
func (s *Badger) ListDemos(ctx context.Context, level string) (demos []models.Demo, err error) {
	done := track("list", demosCollection)
	defer func() { done(trackErr(err)) }()

	demos = []models.Demo{}
	err = s.db.View(func(txn *badger.Txn) error {
		return iterate(txn, demoKeyPrefix, func(d models.Demo) {
			if level == "" || d.Level == level {
				demos = append(demos, d)
			}
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list demos: %w", err)
	}
	return demos, nil
}

// GetDemo fetches one demo by id. Returns ErrNotFound when absent.
func (s *Badger) GetDemo(ctx context.Context, id string) (demo *models.Demo, err error) {
	done := track("get", demosCollection)
	defer func() { done(trackErr(err)) }()

	var d models.Demo
	err = s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, demoKeyPrefix+id, &d)
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDemo inserts a new demo record.
func (s *Badger) CreateDemo(ctx context.Context, demo *models.Demo) (err error) {
	done := track("create", demosCollection)
	defer func() { done(err) }()

	return s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, demoKeyPrefix+demo.ID, demo)
	})
}

// DeleteDemo removes at most one demo. Returns ErrNotFound when the id
// does not exist.
func (s *Badger) DeleteDemo(ctx context.Context, id string) (err error) {
	done := track("delete", demosCollection)
	defer func() { done(trackErr(err)) }()

	key := []byte(demoKeyPrefix + id)
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		} else if err != nil {
			return fmt.Errorf("get demo %s: %w", id, err)
		}
		return txn.Delete(key)
	})
}

// CountDemos returns the demo collection size via a keys-only scan.
func (s *Badger) CountDemos(ctx context.Context) (n int64, err error) {
	done := track("count", demosCollection)
	defer func() { done(err) }()

	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(demoKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count demos: %w", err)
	}
	return n, nil
}

// SeedDemos writes the seed catalog and the seeded marker in one
// transaction. A second call, concurrent or later, observes the marker and
// does nothing; a transaction conflict means another seeder already
// committed, which is the same outcome.
func (s *Badger) SeedDemos(ctx context.Context, demos []models.Demo) (err error) {
	done := track("seed", demosCollection)
	defer func() { done(err) }()

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(seededMarkerKey)); err == nil {
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check seed marker: %w", err)
		}

		for i := range demos {
			if err := setJSON(txn, demoKeyPrefix+demos[i].ID, &demos[i]); err != nil {
				return err
			}
		}
		return txn.Set([]byte(seededMarkerKey), []byte("1"))
	})
	if errors.Is(err, badger.ErrConflict) {
		return nil
	}
	return err
}

// CreateScore appends one score record.
func (s *Badger) CreateScore(ctx context.Context, score *models.Score) (err error) {
	done := track("create", scoresCollection)
	defer func() { done(err) }()

	return s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, scoreKeyPrefix+score.ID, score)
	})
}

// TopScores scans all scores and sorts them with the deterministic
// leaderboard ordering before truncating to limit.
func (s *Badger) TopScores(ctx context.Context, limit int) (scores []models.Score, err error) {
	done := track("top", scoresCollection)
	defer func() { done(err) }()

	scores = []models.Score{}
	err = s.db.View(func(txn *badger.Txn) error {
		return iterate(txn, scoreKeyPrefix, func(sc models.Score) {
			scores = append(scores, sc)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("scan scores: %w", err)
	}

	sort.Slice(scores, func(i, j int) bool {
		return scoreLess(&scores[i], &scores[j])
	})
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores, nil
}

// ScoreStats reduces a full scan into per-level aggregates.
func (s *Badger) ScoreStats(ctx context.Context) (stats *models.GameStats, err error) {
	done := track("stats", scoresCollection)
	defer func() { done(err) }()

	byLevel := map[int]*levelAggregate{}
	err = s.db.View(func(txn *badger.Txn) error {
		return iterate(txn, scoreKeyPrefix, func(sc models.Score) {
			agg, ok := byLevel[sc.Level]
			if !ok {
				agg = &levelAggregate{Level: sc.Level}
				byLevel[sc.Level] = agg
			}
			agg.Count++
			agg.SumScore += int64(sc.Score)
			if sc.Score > agg.MaxScore {
				agg.MaxScore = sc.Score
			}
		})
	})
	if err != nil {
		return nil, fmt.Errorf("scan scores: %w", err)
	}

	groups := make([]levelAggregate, 0, len(byLevel))
	for _, agg := range byLevel {
		groups = append(groups, *agg)
	}
	return statsFromAggregates(groups), nil
}

// Ping always succeeds for the embedded store.
func (s *Badger) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger store is closed")
	}
	return nil
}

// Close closes the underlying database.
func (s *Badger) Close(ctx context.Context) error {
	return s.db.Close()
}

// getJSON reads one JSON document into out, mapping a missing key to
// ErrNotFound.
func getJSON(txn *badger.Txn, key string, out interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

// setJSON writes one record as a JSON document.
func setJSON(txn *badger.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

// iterate decodes every document under prefix and hands it to fn.
func iterate[T any](txn *badger.Txn, prefix string, fn func(T)) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		err := it.Item().Value(func(val []byte) error {
			var v T
			if err := json.Unmarshal(val, &v); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			fn(v)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
