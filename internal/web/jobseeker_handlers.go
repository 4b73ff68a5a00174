package web

import (
	"net/http"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/domain"
)

type JobseekerHandler struct {
	API *api.Client
}

func (h JobseekerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.API.GetJobseekerProfile(r.Context())
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, p)
}

func (h JobseekerHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var in domain.JobseekerProfile
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	p, err := h.API.SaveJobseekerProfile(r.Context(), in)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Profile updated successfully", "profile": p})
}

// The four sub-forms share one shape: Save All posts the whole in-memory
// list and each row is synced independently (PUT with id, POST without);
// one failed row means one generic error, not per-row attribution.

func (h JobseekerHandler) SaveEducation(w http.ResponseWriter, r *http.Request) {
	var rows []domain.Education
	if err := decodeBody(r, &rows); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.API.SaveAllEducation(r.Context(), rows); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Education updated successfully"})
}

func (h JobseekerHandler) DeleteEducation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/user/profile/education/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid education id")
		return
	}
	if err := h.API.DeleteEducation(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"id": id})
}

func (h JobseekerHandler) SaveExperience(w http.ResponseWriter, r *http.Request) {
	var rows []domain.WorkExperience
	if err := decodeBody(r, &rows); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.API.SaveAllExperience(r.Context(), rows); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Work experience updated successfully"})
}

func (h JobseekerHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/user/profile/experience/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid experience id")
		return
	}
	if err := h.API.DeleteExperience(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"id": id})
}

func (h JobseekerHandler) SaveCertifications(w http.ResponseWriter, r *http.Request) {
	var rows []domain.Certification
	if err := decodeBody(r, &rows); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.API.SaveAllCertifications(r.Context(), rows); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Certifications updated successfully"})
}

func (h JobseekerHandler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/user/profile/certifications/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid certification id")
		return
	}
	if err := h.API.DeleteCertification(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"id": id})
}

func (h JobseekerHandler) SavePortfolioProjects(w http.ResponseWriter, r *http.Request) {
	var rows []domain.PortfolioProject
	if err := decodeBody(r, &rows); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.API.SaveAllPortfolioProjects(r.Context(), rows); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"message": "Projects updated successfully"})
}

func (h JobseekerHandler) DeletePortfolioProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/user/profile/projects/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid project id")
		return
	}
	if err := h.API.DeletePortfolioProject(r.Context(), id); err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"id": id})
}
