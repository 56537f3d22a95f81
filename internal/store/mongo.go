// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pkoster/demoboard/internal/models"
)

const (
	demosCollection  = "demos"
	scoresCollection = "scores"
)

// Mongo is the MongoDB-backed store. Records keep their own "id" field;
// the native _id stays driver-managed so both store drivers expose the
// same lookup contract.
type Mongo struct {
	client *mongo.Client
	demos  *mongo.Collection
	scores *mongo.Collection
}

// NewMongo connects to the MongoDB instance at uri and binds the demos and
// scores collections of the named database. Pool sizing and socket timeouts
// stay with the driver defaults; the connection handle is shared read-only
// across all requests.
//
// A unique index on demos.title is created at startup. Titles are the seed
// idempotency key, and without the index two racing seed upserts for the
// same title could both take the insert path.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	db := client.Database(dbName)
	demos := db.Collection(demosCollection)

	_, err = demos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("create title index: %w", err)
	}

	return &Mongo{
		client: client,
		demos:  demos,
		scores: db.Collection(scoresCollection),
	}, nil
}

// ListDemos returns all demos, or only those matching level when non-empty,
// in store-native order.
func (s *Mongo) ListDemos(ctx context.Context, level string) (demos []models.Demo, err error) {
	done := track("list", demosCollection)
	defer func() { done(trackErr(err)) }()

	filter := bson.M{}
	if level != "" {
		filter["level"] = level
	}

	cur, err := s.demos.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find demos: %w", err)
	}
	if err = cur.All(ctx, &demos); err != nil {
		return nil, fmt.Errorf("decode demos: %w", err)
	}
	if demos == nil {
		demos = []models.Demo{}
	}
	return demos, nil
}

// GetDemo fetches one demo by id. Returns ErrNotFound when absent.
func (s *Mongo) GetDemo(ctx context.Context, id string) (demo *models.Demo, err error) {
	done := track("get", demosCollection)
	defer func() { done(trackErr(err)) }()

	var d models.Demo
	err = s.demos.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find demo %s: %w", id, err)
	}
	return &d, nil
}

// CreateDemo inserts a new demo record.
func (s *Mongo) CreateDemo(ctx context.Context, demo *models.Demo) (err error) {
	done := track("create", demosCollection)
	defer func() { done(err) }()

	if _, err = s.demos.InsertOne(ctx, demo); err != nil {
		return fmt.Errorf("insert demo: %w", err)
	}
	return nil
}

// DeleteDemo removes at most one demo. Returns ErrNotFound when nothing
// was deleted.
func (s *Mongo) DeleteDemo(ctx context.Context, id string) (err error) {
	done := track("delete", demosCollection)
	defer func() { done(trackErr(err)) }()

	res, err := s.demos.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete demo %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountDemos returns the demo collection size.
func (s *Mongo) CountDemos(ctx context.Context) (n int64, err error) {
	done := track("count", demosCollection)
	defer func() { done(err) }()

	n, err = s.demos.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count demos: %w", err)
	}
	return n, nil
}

// SeedDemos upserts each seed record keyed by title. $setOnInsert leaves
// already-seeded titles untouched, and the unique title index closes the
// upsert race: when two seeders both take the insert path for one title,
// the loser gets a duplicate-key error, which means the record exists and
// is treated as success.
func (s *Mongo) SeedDemos(ctx context.Context, demos []models.Demo) (err error) {
	done := track("seed", demosCollection)
	defer func() { done(err) }()

	for i := range demos {
		_, err = s.demos.UpdateOne(ctx,
			bson.M{"title": demos[i].Title},
			bson.M{"$setOnInsert": demos[i]},
			options.Update().SetUpsert(true),
		)
		if mongo.IsDuplicateKeyError(err) {
			err = nil
			continue
		}
		if err != nil {
			return fmt.Errorf("seed demo %q: %w", demos[i].Title, err)
		}
	}
	return nil
}

// CreateScore appends one score record.
func (s *Mongo) CreateScore(ctx context.Context, score *models.Score) (err error) {
	done := track("create", scoresCollection)
	defer func() { done(err) }()

	if _, err = s.scores.InsertOne(ctx, score); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// TopScores returns up to limit scores in leaderboard order. The sort is
// pushed server-side and matches scoreLess: score desc, timestamp asc,
// id asc.
func (s *Mongo) TopScores(ctx context.Context, limit int) (scores []models.Score, err error) {
	done := track("top", scoresCollection)
	defer func() { done(err) }()

	opts := options.Find().
		SetSort(bson.D{
			{Key: "score", Value: -1},
			{Key: "timestamp", Value: 1},
			{Key: "id", Value: 1},
		}).
		SetLimit(int64(limit))

	cur, err := s.scores.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find top scores: %w", err)
	}
	if err = cur.All(ctx, &scores); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if scores == nil {
		scores = []models.Score{}
	}
	return scores, nil
}

// mongoLevelGroup is the $group output shape for ScoreStats.
type mongoLevelGroup struct {
	Level    int   `bson:"_id"`
	Count    int   `bson:"count"`
	SumScore int64 `bson:"sum_score"`
	MaxScore int   `bson:"max_score"`
}

// ScoreStats aggregates the whole score collection with a single per-level
// $group; totals and tie-breaks are combined in statsFromAggregates.
func (s *Mongo) ScoreStats(ctx context.Context) (stats *models.GameStats, err error) {
	done := track("stats", scoresCollection)
	defer func() { done(err) }()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$level"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "sum_score", Value: bson.D{{Key: "$sum", Value: "$score"}}},
			{Key: "max_score", Value: bson.D{{Key: "$max", Value: "$score"}}},
		}}},
	}

	cur, err := s.scores.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate scores: %w", err)
	}

	var raw []mongoLevelGroup
	if err = cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decode score aggregates: %w", err)
	}

	groups := make([]levelAggregate, len(raw))
	for i, g := range raw {
		groups[i] = levelAggregate{
			Level:    g.Level,
			Count:    g.Count,
			SumScore: g.SumScore,
			MaxScore: g.MaxScore,
		}
	}
	return statsFromAggregates(groups), nil
}

// Ping verifies the connection against the primary.
func (s *Mongo) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
