package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Chat is local-only: there is no messaging API on the backend yet, so
// threads and messages live in the gateway's own sqlite file and never leave
// the machine. The HTTP contract is stable so the UI won't change when a
// real messaging backend lands.

type Thread struct {
	ID       int64  `json:"id"`
	PeerName string `json:"peer_name"`
	PeerRole string `json:"peer_role"`
	Created  string `json:"created_at"`
}

type Message struct {
	ID       int64  `json:"id"`
	ThreadID int64  `json:"thread_id"`
	Sender   string `json:"sender"` // "me" or "peer"
	Body     string `json:"body"`
	SentAt   string `json:"sent_at"`
}

var ErrThreadNotFound = errors.New("chat thread not found")

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS threads (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  peer_name TEXT NOT NULL,
  peer_role TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS messages (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  thread_id INTEGER NOT NULL REFERENCES threads(id) ON DELETE CASCADE,
  sender TEXT NOT NULL,
  body TEXT NOT NULL,
  sent_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_thread ON messages(thread_id, id);
`)
	return err
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) CreateThread(ctx context.Context, peerName, peerRole string) (Thread, error) {
	t := Thread{
		PeerName: peerName,
		PeerRole: peerRole,
		Created:  time.Now().UTC().Format(time.RFC3339),
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO threads(peer_name, peer_role, created_at) VALUES(?,?,?);`,
		t.PeerName, t.PeerRole, t.Created)
	if err != nil {
		return Thread{}, err
	}
	t.ID, err = res.LastInsertId()
	return t, err
}

func (s *Store) Threads(ctx context.Context) ([]Thread, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, peer_name, peer_role, created_at FROM threads ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Thread
	for rows.Next() {
		var t Thread
		if err := rows.Scan(&t.ID, &t.PeerName, &t.PeerRole, &t.Created); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Messages(ctx context.Context, threadID int64) ([]Message, error) {
	if err := s.threadExists(ctx, threadID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, thread_id, sender, body, sent_at FROM messages
WHERE thread_id = ? ORDER BY id;`, threadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.Sender, &m.Body, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) Append(ctx context.Context, threadID int64, sender, body string) (Message, error) {
	if err := s.threadExists(ctx, threadID); err != nil {
		return Message{}, err
	}
	m := Message{
		ThreadID: threadID,
		Sender:   sender,
		Body:     body,
		SentAt:   time.Now().UTC().Format(time.RFC3339),
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO messages(thread_id, sender, body, sent_at) VALUES(?,?,?,?);`,
		m.ThreadID, m.Sender, m.Body, m.SentAt)
	if err != nil {
		return Message{}, err
	}
	m.ID, err = res.LastInsertId()
	return m, err
}

func (s *Store) threadExists(ctx context.Context, id int64) error {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM threads WHERE id = ?;`, id).Scan(&n)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrThreadNotFound
	}
	return nil
}
