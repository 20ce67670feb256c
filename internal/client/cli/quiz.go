package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/quiz"
)

// Quiz runs quiz sessions until the user declines a replay. Each session
// gets a fresh engine and a fresh randomized batch.
func (a *App) Quiz(ctx context.Context) error {
	for {
		eng := quiz.NewEngine(a.api, a.config.QuizQuestionCount, a.config.AnswerDisplayDelay)

		fmt.Fprintln(a.out, "Loading quiz...")
		if err := eng.Start(ctx); err != nil {
			log.Printf("error: %v", err)
			return err
		}

		if err := a.playQuiz(ctx, eng); err != nil {
			eng.Close()
			return err
		}

		a.printResults(eng)

		again, err := GetSimpleText(a.reader, "Play again? (y/N)", a.out)
		eng.Close()
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

// playQuiz loops over the questions of one session until the engine
// reaches Finished. Grading failures keep the current question so the
// answer can be retried.
func (a *App) playQuiz(ctx context.Context, eng *quiz.Engine) error {
	for {
		q, number, total, ok := eng.Current()
		if !ok {
			return nil
		}

		tally := eng.Tally()
		fmt.Fprintf(a.out, "\nScore: %d / %d (%d%%)\n", tally.Correct, tally.Total, tally.Percentage())
		fmt.Fprintf(a.out, "Question %d of %d [%s]\n", number, total, strings.ToUpper(string(q.Difficulty)))
		fmt.Fprintf(a.out, "Definition: %s\n", q.Definition)
		if q.Example != "" {
			fmt.Fprintf(a.out, "Example: %s\n", q.Example)
		}

		answer, err := GetSimpleText(a.reader, "Type the term", a.out)
		if err != nil {
			return err
		}

		feedback, err := eng.Submit(ctx, answer)
		if err != nil {
			log.Printf("error: %v", err)
			continue
		}
		if feedback == nil {
			fmt.Fprintln(a.out, "Answer must not be blank")
			continue
		}

		if feedback.Correct {
			fmt.Fprintf(a.out, "Correct! The answer is %s\n", feedback.CorrectAnswer)
		} else {
			fmt.Fprintf(a.out, "Incorrect. The correct answer is %s\n", feedback.CorrectAnswer)
		}
		if feedback.RealWorld != "" {
			fmt.Fprintf(a.out, "Real-world usage: %s\n", feedback.RealWorld)
		}

		// The engine advances by itself after the display delay; pressing
		// Enter moves on early and cancels the pending timer.
		if _, err := GetSimpleText(a.reader, "(press Enter to continue)", a.out); err != nil {
			return err
		}
		eng.Advance(ctx)
	}
}

func (a *App) printResults(eng *quiz.Engine) {
	tally := eng.Tally()

	fmt.Fprintln(a.out, "\nQuiz Complete!")
	fmt.Fprintf(a.out, "%d%%\n", eng.Percentage())
	fmt.Fprintln(a.out, eng.Message())
	fmt.Fprintf(a.out, "  Correct answers:   %d\n", tally.Correct)
	fmt.Fprintf(a.out, "  Incorrect answers: %d\n", tally.Total-tally.Correct)
	fmt.Fprintf(a.out, "  Total questions:   %d\n", tally.Total)
}
