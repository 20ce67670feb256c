package models

import (
	"github.com/dmitrijs2005/vocabbuilder/internal/common"
)

// Difficulty classifies how hard a term is considered to be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Term is a full vocabulary entry.
type Term struct {
	ID         int64      `json:"id"`
	Term       string     `json:"term"`
	Definition string     `json:"definition"`
	Example    string     `json:"example"`
	RealWorld  string     `json:"real_world"`
	Difficulty Difficulty `json:"difficulty"`
}

// TermDraft carries the editable fields of a term for create/update calls.
type TermDraft struct {
	Term       string     `json:"term"`
	Definition string     `json:"definition"`
	Example    string     `json:"example"`
	RealWorld  string     `json:"real_world"`
	Difficulty Difficulty `json:"difficulty"`
}

// Validate checks the draft locally before any request is sent.
func (d TermDraft) Validate() error {
	if !d.Difficulty.Valid() {
		return common.ErrorInvalidDifficulty
	}
	return nil
}
