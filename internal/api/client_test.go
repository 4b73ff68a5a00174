package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		BaseURL:    srv.URL,
		RatePerSec: 1000,
		RateBurst:  1000,
		Token:      func() string { return "test-token" },
	})
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotAccept string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"data":[]}`))
	}))

	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
}

func TestNoAuthHeaderWhenLoggedOut(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, RatePerSec: 1000, RateBurst: 1000})
	_, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestStatusErrorMessageExtraction(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The given data was invalid.","errors":{"email":["The email has already been taken."]}}`))
	}))

	_, err := c.Login(context.Background(), "a@b.edu.np", "pw")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 422, se.Status)
	assert.Equal(t, "The given data was invalid.", se.Message)
	assert.Equal(t, []string{"The email has already been taken."}, se.Fields["email"])
}

func TestStatusErrorFallbackMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	}))

	_, err := c.Categories(context.Background())
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusText(502), se.Message)
}

func TestUnauthorizedFiresCallbackAndUnwraps(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated."}`))
	}))

	fired := false
	c.OnUnauthorized = func() { fired = true }

	_, err := c.GetJobseekerProfile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, fired)
}

func TestForbiddenAndNotFoundSentinels(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/jobseeker/profile":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusForbidden)
		}
	}))

	_, err := c.GetJobseekerProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.MyListings(context.Background())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestVerifyEmailPreservesSignatureParams(t *testing.T) {
	var gotPath, gotExpires, gotSignature string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotExpires = r.URL.Query().Get("expires")
		gotSignature = r.URL.Query().Get("signature")
		w.Write([]byte(`{"message":"Email verified"}`))
	}))

	msg, err := c.VerifyEmail(context.Background(), "42", "abc123", "1735689600", "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "Email verified", msg)
	assert.Equal(t, "/api/v1/email/verify/42/abc123", gotPath)
	assert.Equal(t, "1735689600", gotExpires)
	assert.Equal(t, "deadbeef", gotSignature)
}
