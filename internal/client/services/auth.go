// Package services contains the application services sitting between the
// CLI views and the HTTP client. The auth service owns the session
// lifecycle: login/register populate the session store, logout clears it.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/api"
	"github.com/dmitrijs2005/vocabbuilder/internal/client/session"
)

// AuthService defines the session-lifecycle operations for the CLI.
type AuthService interface {
	// Login authenticates and persists the resulting session.
	Login(ctx context.Context, username, password string) (*session.Session, error)
	// Register creates an account; the server logs the new user straight in.
	Register(ctx context.Context, username, email, password string) (*session.Session, error)
	// Restore loads a previously stored session. Expired or absent
	// sessions yield (nil, nil); an expired one is cleared on the way.
	Restore(ctx context.Context) (*session.Session, error)
	// Logout removes the stored session.
	Logout(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  session.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, store session.Store) AuthService {
	return &authService{client: client, store: store}
}

func (a *authService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	token, user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{Token: token, User: *user}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess, nil
}

func (a *authService) Register(ctx context.Context, username, email, password string) (*session.Session, error) {
	token, user, err := a.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{Token: token, User: *user}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess, nil
}

func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired() {
		if err := a.store.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
