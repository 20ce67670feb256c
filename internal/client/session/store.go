package session

import "context"

// Store defines the persistence contract for the session.
//
// Contract:
//   - Load: return the stored session, or nil when none is stored.
//   - Save: persist the session atomically.
//   - Clear: remove any stored session (logout).
//   - AuthHeader: produce the bearer-token request header; empty values
//     when no session is stored.
type Store interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
	AuthHeader(ctx context.Context) (key string, value string, err error)
}
