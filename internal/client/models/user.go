// Package models defines the wire-level data types exchanged with the
// vocabulary API. The server owns all of them; the client only caches
// copies for display and for the active quiz session.
package models

// User is an account record as returned by the auth and admin endpoints.
// Read-only from the client's perspective.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}
