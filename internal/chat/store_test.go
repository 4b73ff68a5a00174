package chat

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestThreadLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	th, err := s.CreateThread(ctx, "TechHub Recruiter", "company")
	require.NoError(t, err)
	assert.NotZero(t, th.ID)

	threads, err := s.Threads(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "TechHub Recruiter", threads[0].PeerName)

	m1, err := s.Append(ctx, th.ID, "me", "Hello, is the internship still open?")
	require.NoError(t, err)
	m2, err := s.Append(ctx, th.ID, "peer", "Yes, applications close Friday.")
	require.NoError(t, err)
	assert.Greater(t, m2.ID, m1.ID)

	msgs, err := s.Messages(ctx, th.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "me", msgs[0].Sender)
	assert.Equal(t, "peer", msgs[1].Sender)
	assert.Equal(t, "Yes, applications close Friday.", msgs[1].Body)
}

func TestUnknownThread(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Messages(ctx, 999)
	assert.ErrorIs(t, err, ErrThreadNotFound)

	_, err = s.Append(ctx, 999, "me", "hello?")
	assert.ErrorIs(t, err, ErrThreadNotFound)
}

func TestEmptyThreadHasNoMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	th, err := s.CreateThread(ctx, "Admissions", "college")
	require.NoError(t, err)

	msgs, err := s.Messages(ctx, th.ID)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
