// Package quiz holds the client-side quiz session state machine: fetch a
// randomized question batch, grade answers one at a time, keep the running
// tally, and persist the final score. Grading itself is server-side.
package quiz

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
)

// State enumerates the phases of a quiz session.
type State int

const (
	// StateLoading: before the question batch has arrived (or after a
	// failed fetch; no automatic retry is attempted).
	StateLoading State = iota
	// StateInProgress: questions are being answered.
	StateInProgress
	// StateFinished: the tally has been persisted and results can be shown.
	StateFinished
)

// Service is the remote surface the engine needs.
type Service interface {
	QuizRandom(ctx context.Context, count int) ([]models.QuizQuestion, error)
	CheckAnswer(ctx context.Context, termID int64, answer string) (*models.AnswerFeedback, error)
	SaveScore(ctx context.Context, tally models.ScoreTally) error
}

// Engine drives one quiz session.
//
// Invariants:
//   - tally.Total >= tally.Correct >= 0, and Total grows by exactly one
//     per graded answer;
//   - the question index strictly advances 0..N-1 with no repetition;
//   - at most one submission is outstanding for the current question.
type Engine struct {
	mu sync.Mutex

	svc   Service
	count int
	delay time.Duration

	state     State
	questions []models.QuizQuestion
	index     int
	tally     models.ScoreTally
	feedback  *models.AnswerFeedback
	submitted bool

	timer  *time.Timer
	closed bool

	// onAdvance, when set, is invoked after an automatic (timer-driven)
	// advance so the view can redraw. Called without the engine lock held.
	onAdvance func()
}

// Option configures an Engine.
type Option func(*Engine)

// WithAdvanceHook registers a callback fired after each auto-advance.
func WithAdvanceHook(fn func()) Option {
	return func(e *Engine) { e.onAdvance = fn }
}

// NewEngine creates an engine fetching count questions and showing feedback
// for delay before advancing automatically.
func NewEngine(svc Service, count int, delay time.Duration, opts ...Option) *Engine {
	e := &Engine{svc: svc, count: count, delay: delay, state: StateLoading}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start fetches the question batch and moves the engine to InProgress.
// On failure the engine stays in Loading and the error is returned; the
// caller decides whether to start over.
func (e *Engine) Start(ctx context.Context) error {
	questions, err := e.svc.QuizRandom(ctx, e.count)
	if err != nil {
		return fmt.Errorf("failed to fetch quiz: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("quiz endpoint returned no questions")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.questions = questions
	e.index = 0
	e.tally = models.ScoreTally{}
	e.feedback = nil
	e.submitted = false
	e.state = StateInProgress
	return nil
}

// State returns the current phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Current returns the active question together with its 1-based number and
// the batch size. ok is false outside InProgress.
func (e *Engine) Current() (q models.QuizQuestion, number, total int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateInProgress {
		return models.QuizQuestion{}, 0, 0, false
	}
	return e.questions[e.index], e.index + 1, len(e.questions), true
}

// Tally returns a copy of the running score.
func (e *Engine) Tally() models.ScoreTally {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tally
}

// Feedback returns the grading result for the current question, or nil when
// no answer has been graded yet.
func (e *Engine) Feedback() *models.AnswerFeedback {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.feedback
}

// Submit grades the answer for the current question. Blank or
// whitespace-only answers are a no-op, as is a submit while a previous
// submission for this question is still pending or already graded; in both
// cases (nil, nil) is returned and the state is unchanged.
//
// On success the feedback is recorded, the tally is incremented once, and
// the auto-advance timer is armed. A grading failure clears the pending
// flag so the question can be submitted again.
func (e *Engine) Submit(ctx context.Context, answer string) (*models.AnswerFeedback, error) {
	answer = strings.TrimSpace(answer)

	e.mu.Lock()
	if e.state != StateInProgress || e.submitted || answer == "" {
		e.mu.Unlock()
		return nil, nil
	}
	e.submitted = true
	question := e.questions[e.index]
	e.mu.Unlock()

	feedback, err := e.svc.CheckAnswer(ctx, question.ID, answer)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, nil
	}
	if err != nil {
		e.submitted = false
		return nil, fmt.Errorf("failed to check answer: %w", err)
	}

	e.feedback = feedback
	if feedback.Correct {
		e.tally.Correct++
	}
	e.tally.Total++

	e.timer = time.AfterFunc(e.delay, e.autoAdvance)
	return feedback, nil
}

func (e *Engine) autoAdvance() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	e.Advance(context.Background())

	if e.onAdvance != nil {
		e.onAdvance()
	}
}

// Advance moves to the next question, or finishes the session after the
// last one. A manual call cancels the pending auto-advance timer. Calling
// Advance before the current question has been graded is a no-op, so a
// manual advance racing the timer is harmless.
func (e *Engine) Advance(ctx context.Context) {
	e.mu.Lock()

	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}

	if e.state != StateInProgress || !e.submitted {
		e.mu.Unlock()
		return
	}

	if e.index < len(e.questions)-1 {
		e.index++
		e.feedback = nil
		e.submitted = false
		e.mu.Unlock()
		return
	}

	// Last question answered: persist the tally once, then finish. The
	// tally already includes the final answer, so it is sent as-is.
	e.state = StateFinished
	tally := e.tally
	e.mu.Unlock()

	if err := e.svc.SaveScore(ctx, tally); err != nil {
		// Finishing is not blocked by a failed save.
		log.Printf("failed to save score: %v", err)
	}
}

// Percentage returns the final score as round(correct/total*100).
func (e *Engine) Percentage() int {
	return e.Tally().Percentage()
}

// Message maps the final percentage to a qualitative verdict.
func (e *Engine) Message() string {
	p := e.Percentage()
	switch {
	case p >= 80:
		return "Excellent! You're a tech vocabulary master!"
	case p >= 60:
		return "Good job! Keep learning!"
	case p >= 40:
		return "Not bad! There's room for improvement!"
	default:
		return "Keep practicing! You'll get better!"
	}
}

// Reset returns the engine to Loading so the session can be replayed with a
// fresh batch via Start.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.questions = nil
	e.index = 0
	e.tally = models.ScoreTally{}
	e.feedback = nil
	e.submitted = false
	e.state = StateLoading
}

// Close stops the auto-advance timer and marks the engine dead: a late
// timer fire or an in-flight submission resolving afterwards no longer
// mutates state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.closed = true
}
