// Package session persists the authenticated session (bearer token plus the
// cached user record) in a local sqlite database, so a login survives client
// restarts. All operations touch only local storage, never the network.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/vocabbuilder/internal/client/models"
)

// Session couples the bearer token with the user record the server returned
// at login time. The server stays the source of truth for the user; this is
// a display cache.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Expired reports whether the token's exp claim has passed. The token is
// parsed without signature verification: the client holds no key, and a
// tampered token would be rejected server-side anyway. Unparseable tokens
// are treated as expired so the caller falls back to the login view.
func (s *Session) Expired() bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Now().After(claims.ExpiresAt.Time)
}
