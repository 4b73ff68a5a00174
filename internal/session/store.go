package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Session is the only client-owned state in the system: who is logged in and
// as what. The token itself never touches the database; it lives in the OS
// keyring (see tokens.go).
type Session struct {
	UserID int64
	Role   string
	Name   string
}

var ErrNoSession = errors.New("no active session")

// Store persists the session across gateway restarts. Reads are served from
// an in-memory copy so the role gate on every request stays cheap.
type Store struct {
	db     *sql.DB
	tokens tokenStore

	mu  sync.RWMutex
	cur *Session
	tok string
}

func Open(path string) (*Store, error) {
	return open(path, keyringTokens{})
}

// OpenEphemeral keeps the token in process memory instead of the OS keyring,
// for headless machines without a keychain. The session survives only until
// the gateway exits.
func OpenEphemeral(path string) (*Store, error) {
	return open(path, &memTokens{})
}

func open(path string, tokens tokenStore) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite wants a single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, tokens: tokens}
	if err := s.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS session (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  user_id INTEGER NOT NULL,
  role TEXT NOT NULL,
  name TEXT NOT NULL,
  signed_in_at TEXT NOT NULL
);
`)
	return err
}

func (s *Store) load(ctx context.Context) error {
	row := s.db.QueryRowContext(ctx, `SELECT user_id, role, name FROM session WHERE id = 1;`)

	var sess Session
	switch err := row.Scan(&sess.UserID, &sess.Role, &sess.Name); {
	case errors.Is(err, sql.ErrNoRows):
		return nil
	case err != nil:
		return err
	}

	tok, err := s.tokens.get()
	if err != nil || tok == "" {
		// Row without a token is a half-cleared session; drop it.
		_, _ = s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1;`)
		return nil
	}

	s.mu.Lock()
	s.cur = &sess
	s.tok = tok
	s.mu.Unlock()
	return nil
}

// Set records a fresh login: token to the keyring, identity to sqlite.
func (s *Store) Set(ctx context.Context, token string, sess Session) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	if err := s.tokens.set(token); err != nil {
		return fmt.Errorf("session: store token: %w", err)
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO session(id, user_id, role, name, signed_in_at)
VALUES(1, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id = excluded.user_id,
  role = excluded.role,
  name = excluded.name,
  signed_in_at = excluded.signed_in_at;`,
		sess.UserID, sess.Role, sess.Name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = &sess
	s.tok = token
	s.mu.Unlock()
	return nil
}

// Current returns the active session, or ErrNoSession.
func (s *Store) Current() (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return Session{}, ErrNoSession
	}
	return *s.cur, nil
}

// Token is handed to the API client as its TokenFunc.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

// Clear is the single invalidation point: logout and remote 401 both land here.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cur = nil
	s.tok = ""
	s.mu.Unlock()

	_ = s.tokens.delete()
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1;`)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
