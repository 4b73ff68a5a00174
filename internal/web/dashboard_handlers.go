package web

import (
	"net/http"
	"sync"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/domain"
)

type DashboardHandler struct {
	API *api.Client
}

// StudentDashboard aggregates the student landing page: applications and
// saved listings, fetched in parallel and failing independently.
func (h DashboardHandler) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	var (
		apps    []domain.Applicant
		saved   []domain.Listing
		mu      sync.Mutex
		wg      sync.WaitGroup
		errsArr []string
	)
	fail := func(section string) {
		mu.Lock()
		errsArr = append(errsArr, "failed to load "+section)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		a, err := h.API.MyApplications(r.Context())
		if err != nil {
			fail("applications")
			return
		}
		mu.Lock()
		apps = a
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		s, err := h.API.SavedListings(r.Context())
		if err != nil {
			fail("saved projects")
			return
		}
		mu.Lock()
		saved = s
		mu.Unlock()
	}()
	wg.Wait()

	writeJSON(w, map[string]any{
		"applications":   apps,
		"saved_listings": saved,
		"errors":         errsArr,
	})
}

// CompanyDashboard shows the company's own postings.
func (h DashboardHandler) CompanyDashboard(w http.ResponseWriter, r *http.Request) {
	listings, err := h.API.MyListings(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"listings": listings})
}

// AdminDashboard summarizes what needs admin attention.
func (h DashboardHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	pending, err := h.API.PendingUsers(r.Context(), 1)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	cats, err := h.API.Categories(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"pending_users": pending.Total,
		"categories":    len(cats),
	})
}
