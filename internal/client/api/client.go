// Package api implements the HTTP/JSON client for the vocabulary service.
// All scoring, grading and persistence logic lives server-side; this
// package only shapes requests and decodes responses.
package api

import (
	"context"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
)

// Client is the full remote surface the views depend on. Every method but
// Login and Register carries the bearer token from the header source.
type Client interface {
	// Auth.
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Register(ctx context.Context, username, email, password string) (string, *models.User, error)

	// Glossary and statistics.
	Terms(ctx context.Context) ([]models.Term, error)
	Term(ctx context.Context, id int64) (*models.Term, error)
	Stats(ctx context.Context) (*models.Stats, error)

	// Quiz session.
	QuizRandom(ctx context.Context, count int) ([]models.QuizQuestion, error)
	CheckAnswer(ctx context.Context, termID int64, answer string) (*models.AnswerFeedback, error)
	SaveScore(ctx context.Context, tally models.ScoreTally) error
	MyScores(ctx context.Context) ([]models.Score, error)

	// Admin.
	AdminUsers(ctx context.Context) ([]models.User, error)
	AdminScores(ctx context.Context) ([]models.Score, error)
	CreateTerm(ctx context.Context, draft models.TermDraft) (*models.Term, error)
	UpdateTerm(ctx context.Context, id int64, draft models.TermDraft) (*models.Term, error)
	DeleteTerm(ctx context.Context, id int64) error
}

// HeaderSource supplies the Authorization header for authenticated calls.
// The session store implements it; empty values mean "not logged in".
type HeaderSource interface {
	AuthHeader(ctx context.Context) (key string, value string, err error)
}
