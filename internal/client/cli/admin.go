package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
)

// Admin runs the admin sub-shell: term CRUD plus read-only user and score
// lists. Every mutation refetches the term list on success; on failure the
// server message is printed and nothing changes locally.
func (a *App) Admin(ctx context.Context) error {
	a.adminList(ctx)

	for {
		line, err := GetSimpleText(a.reader, "admin (list/add/edit <id>/delete <id>/users/scores/back)", a.out)
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "list":
			a.adminList(ctx)
		case "add":
			a.adminAdd(ctx)
		case "edit":
			id, ok := parseID(a, args, "edit")
			if !ok {
				continue
			}
			a.adminEdit(ctx, id)
		case "delete":
			id, ok := parseID(a, args, "delete")
			if !ok {
				continue
			}
			a.adminDelete(ctx, id)
		case "users":
			a.adminUsers(ctx)
		case "scores":
			a.adminScores(ctx)
		case "help":
			fmt.Fprintln(a.out, "Available commands: list, add, edit <id>, delete <id>, users, scores, back")
		case "back", "exit":
			return nil
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func parseID(a *App, args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id: %s\n", args[0])
		return 0, false
	}
	return id, true
}

func (a *App) adminList(ctx context.Context) {
	terms, err := a.api.Terms(ctx)
	if err != nil {
		log.Printf("error fetching terms: %v", err)
		return
	}
	fmt.Fprintf(a.out, "Terms (%d):\n", len(terms))
	for _, t := range terms {
		fmt.Fprintf(a.out, "  [%d] %s (%s)\n", t.ID, t.Term, t.Difficulty)
	}
}

// promptTermDraft collects the editable fields of a term. Empty input
// keeps the corresponding default, which makes edits incremental.
func (a *App) promptTermDraft(defaults models.TermDraft) (models.TermDraft, error) {
	draft := defaults

	term, err := GetSimpleText(a.reader, fmt.Sprintf("Term [%s]", defaults.Term), a.out)
	if err != nil {
		return draft, err
	}
	if term != "" {
		draft.Term = term
	}

	definition, err := GetMultiline(a.reader, "Definition", a.out)
	if err != nil {
		return draft, err
	}
	if definition != "" {
		draft.Definition = definition
	}

	example, err := GetMultiline(a.reader, "Example", a.out)
	if err != nil {
		return draft, err
	}
	if example != "" {
		draft.Example = example
	}

	realWorld, err := GetMultiline(a.reader, "Real-world usage", a.out)
	if err != nil {
		return draft, err
	}
	if realWorld != "" {
		draft.RealWorld = realWorld
	}

	difficulty, err := GetSimpleText(a.reader, fmt.Sprintf("Difficulty (easy/medium/hard) [%s]", defaults.Difficulty), a.out)
	if err != nil {
		return draft, err
	}
	if difficulty != "" {
		draft.Difficulty = models.Difficulty(strings.ToLower(difficulty))
	}

	return draft, draft.Validate()
}

func (a *App) adminAdd(ctx context.Context) {
	draft, err := a.promptTermDraft(models.TermDraft{Difficulty: models.DifficultyEasy})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	created, err := a.api.CreateTerm(ctx, draft)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Fprintf(a.out, "Term added successfully! (id %d)\n", created.ID)
	a.adminList(ctx)
}

func (a *App) adminEdit(ctx context.Context, id int64) {
	current, err := a.api.Term(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	defaults := models.TermDraft{
		Term:       current.Term,
		Definition: current.Definition,
		Example:    current.Example,
		RealWorld:  current.RealWorld,
		Difficulty: current.Difficulty,
	}

	draft, err := a.promptTermDraft(defaults)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if _, err := a.api.UpdateTerm(ctx, id, draft); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Term updated successfully!")
	a.adminList(ctx)
}

// adminDelete asks for confirmation first; nothing is sent unless the
// user answers affirmatively.
func (a *App) adminDelete(ctx context.Context, id int64) {
	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Are you sure you want to delete term %d? (y/N)", id), a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	if err := a.api.DeleteTerm(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Term deleted successfully!")
	a.adminList(ctx)
}

func (a *App) adminUsers(ctx context.Context) {
	users, err := a.api.AdminUsers(ctx)
	if err != nil {
		log.Printf("error fetching users: %v", err)
		return
	}

	fmt.Fprintf(a.out, "Users (%d):\n", len(users))
	for _, u := range users {
		role := "user"
		if u.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "  [%d] %s <%s> %s\n", u.ID, u.Username, u.Email, role)
	}
}

func (a *App) adminScores(ctx context.Context) {
	scores, err := a.api.AdminScores(ctx)
	if err != nil {
		log.Printf("error fetching scores: %v", err)
		return
	}

	fmt.Fprintf(a.out, "Scores (%d):\n", len(scores))
	for _, s := range scores {
		fmt.Fprintf(a.out, "  %s  %d/%d (%.0f%%)\n", s.CreatedAt, s.Correct, s.Total, s.Percentage)
	}
}
