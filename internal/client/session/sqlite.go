package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/vocabbuilder/internal/dbx"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// InitDatabase opens (creating if needed) the local session database and
// makes sure the key/value table exists.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value BLOB
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init session db: %w", err)
	}

	return db, nil
}

// SQLiteStore is the sqlite-backed Store implementation.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load returns the stored session, or nil when no token is stored.
func (s *SQLiteStore) Load(ctx context.Context) (*Session, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	userData, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}

	sess := &Session{Token: string(token)}
	if userData != nil {
		if err := json.Unmarshal(userData, &sess.User); err != nil {
			return nil, fmt.Errorf("failed to decode stored user: %w", err)
		}
	}
	return sess, nil
}

// Save persists the token and the user record in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, sess *Session) error {
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, []byte(sess.Token)); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUser, userData)
	})
}

// Clear removes any stored session data.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// AuthHeader returns the Authorization header for authenticated requests.
// Both values are empty when no session is stored.
func (s *SQLiteStore) AuthHeader(ctx context.Context) (string, string, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", "", err
	}
	if token == nil {
		return "", "", nil
	}
	return "Authorization", "Bearer " + string(token), nil
}
