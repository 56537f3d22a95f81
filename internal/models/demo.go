// Demoboard - Phaser.js Demo Catalog and Arcade Leaderboard
// Copyright 2026 P. Koster (pkoster)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/pkoster/demoboard

package models

// Demo levels form a closed set. Unrecognized values are rejected at the
// API boundary with a VALIDATION_ERROR instead of being persisted.
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// ValidLevel reports whether s is one of the three catalog levels.
// The empty string is not a valid level; callers that treat "" as
// "no filter" must check for it before calling.
func ValidLevel(s string) bool {
	switch s {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Demo is one catalog entry describing a code-sample/game-mechanic showcase.
// Records are immutable once created; the only mutation is a full delete.
//
// The id is an opaque UUID string generated server-side. It is stored in its
// own field rather than the store's native document id so both store drivers
// expose identical lookup semantics.
type Demo struct {
	ID           string   `json:"id" bson:"id"`
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Level        string   `json:"level" bson:"level"`
	CodeExample  string   `json:"code_example" bson:"code_example"`
	Technologies []string `json:"technologies" bson:"technologies"`
	Difficulty   string   `json:"difficulty" bson:"difficulty"`
	Preview      string   `json:"preview" bson:"preview"`
	SceneName    string   `json:"scene_name" bson:"scene_name"`
}

// DemoCreate is the request body for POST /api/demos. It carries every Demo
// field except the server-generated id.
type DemoCreate struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Level        string   `json:"level" validate:"required,oneof=basic intermediate advanced"`
	CodeExample  string   `json:"code_example" validate:"required"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,required"`
	Difficulty   string   `json:"difficulty" validate:"required"`
	Preview      string   `json:"preview" validate:"required"`
	SceneName    string   `json:"scene_name" validate:"required"`
}

// Demo converts the request body into a storable record with the given id.
func (c *DemoCreate) Demo(id string) *Demo {
	return &Demo{
		ID:           id,
		Title:        c.Title,
		Description:  c.Description,
		Level:        c.Level,
		CodeExample:  c.CodeExample,
		Technologies: c.Technologies,
		Difficulty:   c.Difficulty,
		Preview:      c.Preview,
		SceneName:    c.SceneName,
	}
}
