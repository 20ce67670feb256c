package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
)

// Home renders the landing view. The admin entry appears only for admin
// accounts.
func (a *App) Home(ctx context.Context) error {
	fmt.Fprintln(a.out, "=== Tech Vocabulary Builder ===")
	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.User.Username)
	if a.isAdmin() {
		fmt.Fprintln(a.out, "You have admin privileges")
	} else {
		fmt.Fprintln(a.out, "Ready to test your knowledge?")
	}

	fmt.Fprintln(a.out, "  quiz    - start a quiz")
	fmt.Fprintln(a.out, "  terms   - browse all terms")
	fmt.Fprintln(a.out, "  stats   - view statistics")
	fmt.Fprintln(a.out, "  history - view your score history")
	if a.isAdmin() {
		fmt.Fprintln(a.out, "  admin   - admin panel")
	}
	fmt.Fprintln(a.out, "  logout  - log out")
	return nil
}

func renderTerm(w io.Writer, t models.Term) {
	fmt.Fprintf(w, "[%d] %s (%s)\n", t.ID, t.Term, strings.ToUpper(string(t.Difficulty)))
	fmt.Fprintf(w, "    %s\n", t.Definition)
	if t.Example != "" {
		fmt.Fprintf(w, "    Example: %s\n", t.Example)
	}
	if t.RealWorld != "" {
		fmt.Fprintf(w, "    Real-world usage: %s\n", t.RealWorld)
	}
}

// Terms fetches and renders the full glossary.
func (a *App) Terms(ctx context.Context) error {
	terms, err := a.api.Terms(ctx)
	if err != nil {
		log.Printf("error fetching terms: %v", err)
		return err
	}

	fmt.Fprintf(a.out, "All Tech Terms (%d)\n", len(terms))
	for _, t := range terms {
		renderTerm(a.out, t)
	}
	return nil
}

// Stats fetches and renders the aggregate statistics snapshot.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.api.Stats(ctx)
	if err != nil {
		log.Printf("error fetching stats: %v", err)
		return err
	}

	fmt.Fprintln(a.out, "Platform Statistics")
	fmt.Fprintf(a.out, "  Total users:        %d\n", stats.TotalUsers)
	fmt.Fprintf(a.out, "  Quizzes completed:  %d\n", stats.TotalQuizzes)
	fmt.Fprintf(a.out, "  Average score:      %.2f%%\n", stats.AverageScore)
	fmt.Fprintf(a.out, "  Questions answered: %d\n", stats.TotalQuestionsAnswered)
	return nil
}

// History fetches and renders the current user's score history.
func (a *App) History(ctx context.Context) error {
	scores, err := a.api.MyScores(ctx)
	if err != nil {
		log.Printf("error fetching score history: %v", err)
		return err
	}

	if len(scores) == 0 {
		fmt.Fprintln(a.out, "No quizzes taken yet")
		return nil
	}

	fmt.Fprintln(a.out, "Your score history:")
	for _, s := range scores {
		fmt.Fprintf(a.out, "  %s  %d/%d (%.0f%%)\n", s.CreatedAt, s.Correct, s.Total, s.Percentage)
	}
	return nil
}
