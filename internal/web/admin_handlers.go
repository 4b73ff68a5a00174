package web

import (
	"net/http"
	"strconv"
	"strings"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/domain"
)

type AdminHandler struct {
	API *api.Client
}

type pendingUsersView struct {
	Users       []domain.User `json:"users"`
	Total       int           `json:"total"`
	PerPage     int           `json:"per_page"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

func (h AdminHandler) pendingPage(r *http.Request, page int) (pendingUsersView, error) {
	p, err := h.API.PendingUsers(r.Context(), page)
	if err != nil {
		return pendingUsersView{}, err
	}
	return pendingUsersView{
		Users:       p.Data,
		Total:       p.Total,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
	}, nil
}

func (h AdminHandler) PendingUsers(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	view, err := h.pendingPage(r, page)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, view)
}

// Approve POSTs upstream, then re-fetches the current page so the table
// reflects the change in one round trip.
func (h AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/admin/users/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid user id")
		return
	}
	if err := h.API.ApproveUser(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	view, err := h.pendingPage(r, page)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "User approved successfully", "page": view})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// Reject requires the modal's free-text reason before anything goes upstream.
func (h AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/admin/users/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid user id")
		return
	}
	var in rejectRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Reason) == "" {
		WriteError(w, r, http.StatusBadRequest, "reason_required", "A rejection reason is required")
		return
	}
	if err := h.API.RejectUser(r.Context(), id, in.Reason); err != nil {
		WriteRemoteError(w, r, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	view, err := h.pendingPage(r, page)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "User rejected", "page": view})
}

func (h AdminHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.API.Categories(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"categories": cats})
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (h AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in categoryRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		WriteError(w, r, http.StatusBadRequest, "name_required", "Category name is required")
		return
	}
	cat, err := h.API.CreateCategory(r.Context(), strings.TrimSpace(in.Name))
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Category created", "category": cat})
}

func (h AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/admin/categories/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid category id")
		return
	}
	var in categoryRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		WriteError(w, r, http.StatusBadRequest, "name_required", "Category name is required")
		return
	}
	cat, err := h.API.UpdateCategory(r.Context(), id, strings.TrimSpace(in.Name))
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Category updated", "category": cat})
}

func (h AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/admin/categories/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid category id")
		return
	}
	if err := h.API.DeleteCategory(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Category deleted", "id": id})
}
