package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCurrentClear(t *testing.T) {
	s, err := OpenEphemeral(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Current()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, s.Token())

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "tok-123", Session{UserID: 7, Role: "student", Name: "Asha"}))

	cur, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 7, Role: "student", Name: "Asha"}, cur)
	assert.Equal(t, "tok-123", s.Token())

	require.NoError(t, s.Clear(ctx))
	_, err = s.Current()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, s.Token())
}

func TestSetRejectsEmptyToken(t *testing.T) {
	s, err := OpenEphemeral(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer s.Close()

	assert.Error(t, s.Set(context.Background(), "", Session{UserID: 1, Role: "admin"}))
}

func TestReopenRestoresSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	tokens := &memTokens{}

	s, err := open(path, tokens)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "tok-abc", Session{UserID: 3, Role: "company", Name: "TechHub"}))
	require.NoError(t, s.Close())

	// Same token store survives, as the OS keyring would.
	s2, err := open(path, tokens)
	require.NoError(t, err)
	defer s2.Close()

	cur, err := s2.Current()
	require.NoError(t, err)
	assert.Equal(t, int64(3), cur.UserID)
	assert.Equal(t, "company", cur.Role)
	assert.Equal(t, "tok-abc", s2.Token())
}

func TestReopenDropsHalfClearedSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := open(path, &memTokens{})
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "tok-abc", Session{UserID: 3, Role: "college"}))
	require.NoError(t, s.Close())

	// Fresh token store simulates a keyring wiped out from under the row.
	s2, err := open(path, &memTokens{})
	require.NoError(t, err)
	defer s2.Close()

	_, err = s2.Current()
	assert.ErrorIs(t, err, ErrNoSession)
}
