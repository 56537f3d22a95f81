// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package models

import "time"

// Score is one completed-game record submitted by a player. Scores are
// append-only: the public contract never updates or deletes them.
//
// The id and timestamp are assigned server-side at write time; client
// supplied values for either are ignored.
type Score struct {
	ID             string    `json:"id" bson:"id"`
	PlayerName     string    `json:"player_name" bson:"player_name"`
	Score          int       `json:"score" bson:"score"`
	Level          int       `json:"level" bson:"level"`
	LivesRemaining int       `json:"lives_remaining" bson:"lives_remaining"`
	TimePlayed     int       `json:"time_played" bson:"time_played"` // seconds
	Timestamp      time.Time `json:"timestamp" bson:"timestamp"`
}

// ScoreCreate is the request body for POST /api/scores.
type ScoreCreate struct {
	PlayerName     string `json:"player_name" validate:"required"`
	Score          int    `json:"score" validate:"min=0"`
	Level          int    `json:"level" validate:"min=1"`
	LivesRemaining int    `json:"lives_remaining" validate:"min=0"`
	TimePlayed     int    `json:"time_played" validate:"min=0"`
}

// Record converts the request body into a storable record with the given id
// and server-assigned timestamp.
func (c *ScoreCreate) Record(id string, now time.Time) *Score {
	return &Score{
		ID:             id,
		PlayerName:     c.PlayerName,
		Score:          c.Score,
		Level:          c.Level,
		LivesRemaining: c.LivesRemaining,
		TimePlayed:     c.TimePlayed,
		Timestamp:      now,
	}
}

// LeaderboardEntry is a derived view over the top-N scores. Rank is the
// 1-based position within the truncated result, not within the full store.
type LeaderboardEntry struct {
	Rank       int       `json:"rank"`
	PlayerName string    `json:"player_name"`
	Score      int       `json:"score"`
	Level      int       `json:"level"`
	Timestamp  time.Time `json:"timestamp"`
}

// GameStats is a derived aggregate over the entire score collection.
// AverageScore is rounded to two decimal places. MostPlayedLevel defaults
// to 1 when no scores exist; on equal occurrence counts the lowest level
// number wins, which keeps the value deterministic across store drivers.
type GameStats struct {
	TotalGames      int     `json:"total_games"`
	AverageScore    float64 `json:"average_score"`
	HighestScore    int     `json:"highest_score"`
	MostPlayedLevel int     `json:"most_played_level"`
}
