package web

import (
	"net/http"
	"sync"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/domain"
	"internlink-gateway/internal/search"
)

type HomeHandler struct {
	API *api.Client
}

// ListingCard is the trimmed view of a listing for home/list pages.
type ListingCard struct {
	domain.Listing
	Snippet string `json:"snippet"`
}

type homeView struct {
	Listings      []ListingCard       `json:"listings"`
	Companies     []domain.OrgProfile `json:"companies"`
	Colleges      []domain.OrgProfile `json:"colleges"`
	Categories    []domain.Category   `json:"categories"`
	TotalListings int                 `json:"total_listings"`
	// Sections that failed to load, each reported once (the page still
	// renders whatever did arrive).
	Errors []string `json:"errors,omitempty"`
}

// Home fetches the five home-page collections in parallel. Each section
// fails independently, exactly like the original page's fire-and-forget
// fetches: a dead section gets an error line, the rest render.
func (h HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, category := q.Get("q"), q.Get("category")

	var (
		view homeView
		mu   sync.Mutex
		wg   sync.WaitGroup
	)
	fail := func(section string) {
		mu.Lock()
		view.Errors = append(view.Errors, "failed to load "+section)
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		listings, err := h.API.Listings(r.Context(), "", "")
		if err != nil {
			fail("listings")
			return
		}
		filtered := search.FilterListings(listings, query, category)
		cards := make([]ListingCard, 0, len(filtered))
		for _, l := range filtered {
			cards = append(cards, ListingCard{Listing: l, Snippet: Excerpt(l.Description, 160)})
		}
		mu.Lock()
		view.Listings = cards
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		companies, err := h.API.Companies(r.Context())
		if err != nil {
			fail("companies")
			return
		}
		mu.Lock()
		view.Companies = search.FilterOrgs(companies, query)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		colleges, err := h.API.Colleges(r.Context())
		if err != nil {
			fail("colleges")
			return
		}
		mu.Lock()
		view.Colleges = search.FilterOrgs(colleges, query)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		cats, err := h.API.Categories(r.Context())
		if err != nil {
			fail("categories")
			return
		}
		mu.Lock()
		view.Categories = cats
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		n, err := h.API.ListingCount(r.Context())
		if err != nil {
			fail("listing count")
			return
		}
		mu.Lock()
		view.TotalListings = n
		mu.Unlock()
	}()
	wg.Wait()

	writeJSON(w, view)
}
