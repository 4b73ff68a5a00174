package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internlink-gateway/internal/domain"
)

func TestSaveEducationPicksMethodByID(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	var (
		mu    sync.Mutex
		calls []call
	)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, call{r.Method, r.URL.Path})
		mu.Unlock()
		w.Write([]byte(`{"data":{"id":7}}`))
	}))

	require.NoError(t, c.SaveEducation(context.Background(), domain.Education{ID: 12, Institution: "Kathmandu College"}))
	require.NoError(t, c.SaveEducation(context.Background(), domain.Education{Institution: "Pokhara Institute"}))

	require.Len(t, calls, 2)
	assert.Equal(t, call{http.MethodPut, "/api/v1/jobseeker/education/12"}, calls[0])
	assert.Equal(t, call{http.MethodPost, "/api/v1/jobseeker/education"}, calls[1])
}

func TestSaveExperienceClearsEndDateWhenCurrent(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Write([]byte(`{"data":{"id":3}}`))
	}))

	err := c.SaveExperience(context.Background(), domain.WorkExperience{
		CompanyName:      "TechHub",
		EndDate:          "2025-06-30",
		CurrentlyWorking: true,
	})
	require.NoError(t, err)
	assert.Empty(t, body["end_date"])
	assert.Equal(t, true, body["currently_working"])
}

func TestSaveAllContinuesAfterFailure(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var row struct {
			Institution string `json:"institution"`
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &row)

		mu.Lock()
		seen = append(seen, row.Institution)
		mu.Unlock()

		if row.Institution == "bad" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message":"The given data was invalid."}`))
			return
		}
		w.Write([]byte(`{"data":{"id":1}}`))
	}))

	rows := []domain.Education{
		{Institution: "good one"},
		{Institution: "bad"},
		{Institution: "good two"},
	}
	err := c.SaveAllEducation(context.Background(), rows)
	assert.Error(t, err)

	// One bad row must not stop its siblings from being sent.
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 3)
}

func TestDeleteEducationPath(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"message":"deleted"}`))
	}))

	require.NoError(t, c.DeleteEducation(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/jobseeker/education/9", gotPath)
}

func TestListingsQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, RatePerSec: 1000, RateBurst: 1000})
	_, err := c.Listings(context.Background(), "intern", "Software")
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "search=intern")
	assert.Contains(t, gotQuery, "category=Software")
}

func TestUpdateApplicantStatusRejectsUnknown(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Write([]byte(`{"message":"ok"}`))
	}))

	err := c.UpdateApplicantStatus(context.Background(), 1, 2, "hired")
	assert.Error(t, err)
	assert.False(t, called)

	require.NoError(t, c.UpdateApplicantStatus(context.Background(), 1, 2, domain.ApplicantShortlisted))
	assert.True(t, called)
}
