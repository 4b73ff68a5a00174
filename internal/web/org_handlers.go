package web

import (
	"net/http"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/session"
)

// OrgHandler serves the company/college profile form and the public
// profile pages.
type OrgHandler struct {
	API      *api.Client
	Sessions *session.Store
}

// OwnProfile fetches the signed-in company/college's profile, the way the
// profile form loads itself by the stored user id.
func (h OrgHandler) OwnProfile(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Current()
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	p, err := h.API.PublicProfile(r.Context(), sess.UserID)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, p)
}

func (h OrgHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var in api.OrgProfileInput
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	p, err := h.API.SaveOrgProfile(r.Context(), in)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Profile saved successfully", "profile": p})
}

// PublicProfile serves /users/{id}/profile for anyone.
func (h OrgHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/users/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid user id")
		return
	}
	p, err := h.API.PublicProfile(r.Context(), id)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, p)
}
