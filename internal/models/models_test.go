// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  bool
	}{
		{"basic", LevelBasic, true},
		{"intermediate", LevelIntermediate, true},
		{"advanced", LevelAdvanced, true},
		{"empty string is not a level", "", false},
		{"unknown value", "expert", false},
		{"case sensitive", "Basic", false},
		{"whitespace", " basic", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidLevel(tt.level))
		})
	}
}

func TestDemoCreateDemo(t *testing.T) {
	t.Parallel()

	create := DemoCreate{
		Title:        "Tilemap Basics",
		Description:  "Render a tile-based level",
		Level:        LevelIntermediate,
		CodeExample:  "this.make.tilemap({ key: 'level1' });",
		Technologies: []string{"Tilemap", "Loader"},
		Difficulty:   "Medium",
		Preview:      "Tile grid",
		SceneName:    "TilemapScene",
	}

	demo := create.Demo("demo-123")

	assert.Equal(t, "demo-123", demo.ID)
	assert.Equal(t, create.Title, demo.Title)
	assert.Equal(t, create.Description, demo.Description)
	assert.Equal(t, create.Level, demo.Level)
	assert.Equal(t, create.CodeExample, demo.CodeExample)
	assert.Equal(t, create.Technologies, demo.Technologies)
	assert.Equal(t, create.Difficulty, demo.Difficulty)
	assert.Equal(t, create.Preview, demo.Preview)
	assert.Equal(t, create.SceneName, demo.SceneName)
}

func TestScoreCreateRecord(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	create := ScoreCreate{
		PlayerName:     "Ace",
		Score:          2500,
		Level:          3,
		LivesRemaining: 2,
		TimePlayed:     180,
	}

	score := create.Record("score-456", now)

	assert.Equal(t, "score-456", score.ID)
	assert.Equal(t, "Ace", score.PlayerName)
	assert.Equal(t, 2500, score.Score)
	assert.Equal(t, 3, score.Level)
	assert.Equal(t, 2, score.LivesRemaining)
	assert.Equal(t, 180, score.TimePlayed)
	assert.True(t, score.Timestamp.Equal(now))
}
