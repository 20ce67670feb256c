// Package cli implements the interactive shell of the vocabulary client:
// view routing, credential prompts, the quiz loop, and the admin panel.
package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/api"
	"github.com/dmitrijs2005/vocabbuilder/internal/client/config"
	"github.com/dmitrijs2005/vocabbuilder/internal/client/services"
	"github.com/dmitrijs2005/vocabbuilder/internal/client/session"
)

// App owns the single session value and the dependencies every view needs.
// Views never read the session store directly; the copy held here is the
// one source for display decisions, and all writes go through the auth
// service.
type App struct {
	config  *config.Config
	api     api.Client
	auth    services.AuthService
	session *session.Session
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Printf("error initializing session database: %s", err.Error())
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.ServerAddr, store)
	authService := services.NewAuthService(apiClient, store)

	return newApp(c, apiClient, authService, bufio.NewReader(os.Stdin), os.Stdout), nil
}

func newApp(c *config.Config, client api.Client, auth services.AuthService, reader *bufio.Reader, out io.Writer) *App {
	return &App{config: c, api: client, auth: auth, reader: reader, out: out}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isAdmin() bool {
	return a.session != nil && a.session.User.IsAdmin
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	s := a.session.User.Username
	if a.session.User.IsAdmin {
		s += " admin"
	}
	return "(" + s + ")"
}

// Run restores a stored session (if any, and not expired) and enters the
// command loop.
func (a *App) Run(ctx context.Context) {
	log.Println("Welcome to Tech Vocabulary Builder (type 'help' for commands)")

	sess, err := a.auth.Restore(ctx)
	if err != nil {
		log.Printf("error restoring session: %v", err)
	} else if sess != nil {
		a.session = sess
		log.Printf("Restored session for %s", sess.User.Username)
		_ = a.Home(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
