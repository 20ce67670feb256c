package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Home(ctx context.Context) error
	Quiz(ctx context.Context) error
	Terms(ctx context.Context) error
	Stats(ctx context.Context) error
	History(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the vocabulary CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - home           — show the home view
//	  - quiz           — start a quiz session
//	  - terms          — browse the glossary
//	  - stats          — show aggregate statistics
//	  - history        — show your score history
//	  - admin          — manage terms and view users (admins only; not
//	                     offered to other accounts)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vocab %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				if a.isAdmin() {
					printlnFn("Available commands: home, quiz, terms, stats, history, admin, logout, exit")
				} else {
					printlnFn("Available commands: home, quiz, terms, stats, history, logout, exit")
				}
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Register(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				continue
			}
			_ = a.Login(ctx)

		case "home":
			if !requireLogin(a) {
				continue
			}
			_ = a.Home(ctx)

		case "quiz", "game":
			if !requireLogin(a) {
				continue
			}
			_ = a.Quiz(ctx)

		case "terms":
			if !requireLogin(a) {
				continue
			}
			_ = a.Terms(ctx)

		case "stats":
			if !requireLogin(a) {
				continue
			}
			_ = a.Stats(ctx)

		case "history":
			if !requireLogin(a) {
				continue
			}
			_ = a.History(ctx)

		case "admin":
			// Not offered to non-admin accounts at all.
			if !a.isLoggedIn() || !a.isAdmin() {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Admin(ctx)

		case "logout":
			if !requireLogin(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}
