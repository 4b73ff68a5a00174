package web

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/domain"
	"internlink-gateway/internal/search"
	"internlink-gateway/internal/session"
)

// memberCache tracks which listing ids the signed-in student has applied
// to / saved, so the Apply button can flip to "Applied" without re-fetching
// and a second apply is refused locally. Seeded lazily from the backend,
// kept in sync by put() after each mutation, and rebuilt whenever the
// session user changes. A failed seed leaves the cache unseeded so the next
// request retries.
type memberCache struct {
	mu     sync.Mutex
	userID int64
	ids    map[int64]bool
	seeded bool
}

func (c *memberCache) ensure(userID int64, seed func() (map[int64]bool, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seeded && c.userID == userID {
		return nil
	}
	ids, err := seed()
	if err != nil {
		return err
	}
	c.userID = userID
	c.ids = ids
	c.seeded = true
	return nil
}

func (c *memberCache) has(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ids[id]
}

func (c *memberCache) put(id int64, member bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ids == nil {
		c.ids = make(map[int64]bool)
	}
	c.ids[id] = member
}

type ListingsHandler struct {
	API      *api.Client
	Sessions *session.Store

	applied memberCache
	saved   memberCache
}

type listingView struct {
	ListingCard
	Applied bool `json:"applied"`
	Saved   bool `json:"saved"`
}

// studentSets seeds the applied/saved id sets for the signed-in student. A
// failed seed is returned, never treated as "member of nothing": stale or
// missing membership must not pose as fresh state.
func (h *ListingsHandler) studentSets(r *http.Request) (sess session.Session, isStudent bool, err error) {
	sess, serr := h.Sessions.Current()
	if serr != nil || sess.Role != domain.RoleStudent {
		return session.Session{}, false, nil
	}

	err = h.applied.ensure(sess.UserID, func() (map[int64]bool, error) {
		apps, err := h.API.MyApplications(r.Context())
		if err != nil {
			return nil, err
		}
		ids := make(map[int64]bool, len(apps))
		for _, a := range apps {
			ids[a.ProjectID] = true
		}
		return ids, nil
	})
	if err != nil {
		return sess, true, fmt.Errorf("load applications: %w", err)
	}
	err = h.saved.ensure(sess.UserID, func() (map[int64]bool, error) {
		listings, err := h.API.SavedListings(r.Context())
		if err != nil {
			return nil, err
		}
		ids := make(map[int64]bool, len(listings))
		for _, l := range listings {
			ids[l.ID] = true
		}
		return ids, nil
	})
	if err != nil {
		return sess, true, fmt.Errorf("load saved projects: %w", err)
	}
	return sess, true, nil
}

func (h *ListingsHandler) view(l domain.Listing, student bool) listingView {
	v := listingView{ListingCard: ListingCard{Listing: l, Snippet: Excerpt(l.Description, 160)}}
	if student {
		v.Applied = h.applied.has(l.ID)
		v.Saved = h.saved.has(l.ID)
	}
	return v
}

func (h *ListingsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	listings, err := h.API.Listings(r.Context(), "", "")
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	listings = search.FilterListings(listings, q.Get("q"), q.Get("category"))

	_, student, err := h.studentSets(r)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	out := make([]listingView, 0, len(listings))
	for _, l := range listings {
		out = append(out, h.view(l, student))
	}
	writeJSON(w, map[string]any{"listings": out})
}

func (h *ListingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	l, err := h.API.Listing(r.Context(), id)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	_, student, err := h.studentSets(r)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, h.view(l, student))
}

// createListingRequest is the form as typed: requirements arrive as one
// newline-delimited block, skills as a comma list; both are split before the
// backend sees them.
type createListingRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	TypeOfProject  string `json:"type_of_project"`
	Status         string `json:"status"`
	Requirements   string `json:"requirements"`
	SkillsRequired string `json:"skills_required"`
	Deadline       string `json:"deadline"`
	Location       string `json:"location"`
	Salary         string `json:"salary"`
	CategoryID     int64  `json:"category_id"`
}

func (in createListingRequest) toInput() api.ListingInput {
	return api.ListingInput{
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		TypeOfProject:  in.TypeOfProject,
		Status:         in.Status,
		Requirements:   splitLines(in.Requirements),
		SkillsRequired: splitComma(in.SkillsRequired),
		Deadline:       in.Deadline,
		Location:       in.Location,
		Salary:         in.Salary,
		CategoryID:     in.CategoryID,
	}
}

func (h *ListingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in createListingRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Title) == "" {
		WriteError(w, r, http.StatusBadRequest, "title_required", "Title is required")
		return
	}
	l, err := h.API.CreateListing(r.Context(), in.toInput())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Project created successfully", "listing": l})
}

func (h *ListingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	var in createListingRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	l, err := h.API.UpdateListing(r.Context(), id, in.toInput())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Project updated successfully", "listing": l})
}

// Delete honors the UI's confirmation prompt contract: the request must say
// confirm=true or nothing is sent upstream.
func (h *ListingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		WriteError(w, r, http.StatusBadRequest, "confirm_required", "Deletion requires confirmation")
		return
	}
	if err := h.API.DeleteListing(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Project deleted successfully", "id": id})
}

func (h *ListingsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	_, student, err := h.studentSets(r)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	if !student {
		WriteError(w, r, http.StatusForbidden, "forbidden", "Only students can apply")
		return
	}
	if h.applied.has(id) {
		WriteError(w, r, http.StatusConflict, "already_applied", "You have already applied to this project")
		return
	}
	if err := h.API.Apply(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	h.applied.put(id, true)
	writeJSON(w, map[string]any{"message": "Applied successfully", "id": id, "applied": true})
}

// ToggleSave flips save/unsave based on current membership, matching the
// bookmark button.
func (h *ListingsHandler) ToggleSave(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	_, student, err := h.studentSets(r)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	if !student {
		WriteError(w, r, http.StatusForbidden, "forbidden", "Only students can save projects")
		return
	}

	if h.saved.has(id) {
		if err := h.API.UnsaveListing(r.Context(), id); err != nil {
			WriteRemoteError(w, r, err)
			return
		}
		h.saved.put(id, false)
		writeJSON(w, map[string]any{"id": id, "saved": false})
		return
	}
	if err := h.API.SaveListing(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	h.saved.put(id, true)
	writeJSON(w, map[string]any{"id": id, "saved": true})
}

func (h *ListingsHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.API.MyListings(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"listings": listings})
}

func (h *ListingsHandler) SavedListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.API.SavedListings(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"listings": listings})
}

func (h *ListingsHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.API.MyApplications(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"applications": apps})
}

func (h *ListingsHandler) Applicants(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	apps, err := h.API.Applicants(r.Context(), id)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"applicants": apps})
}

type statusRequest struct {
	Status string `json:"status"`
}

// ApplicantStatus handles PUT /projects/{id}/applicants/{aid}/status; the UI
// only flips the row after this succeeds.
func (h *ListingsHandler) ApplicantStatus(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(r.URL.Path, "/projects/", 0)
	applicantID, ok2 := pathID(r.URL.Path, "/projects/", 2)
	if !ok || !ok2 {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project or applicant id")
		return
	}
	var in statusRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if !domain.ValidApplicantStatus(in.Status) {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "invalid applicant status")
		return
	}
	if err := h.API.UpdateApplicantStatus(r.Context(), projectID, applicantID, in.Status); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Applicant status updated successfully", "status": in.Status})
}
