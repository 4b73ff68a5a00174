package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/config"
	"internlink-gateway/internal/domain"
	"internlink-gateway/internal/events"
	"internlink-gateway/internal/session"
)

type AuthHandler struct {
	API      *api.Client
	Sessions *session.Store
	Hub      *events.Hub
	CfgVal   *atomic.Value // stores config.Config
}

func (h AuthHandler) cfg() config.Config {
	return h.CfgVal.Load().(config.Config)
}

// LoginPage mirrors the login form's mount effect: an existing session skips
// the form entirely.
func (h AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess, err := h.Sessions.Current(); err == nil {
		writeJSON(w, map[string]any{"authenticated": true, "redirect": Landing(sess.Role)})
		return
	}
	writeJSON(w, map[string]any{"authenticated": false})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "Email and password are required")
		return
	}

	res, err := h.API.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}

	sess := session.Session{UserID: res.User.ID, Role: res.User.Role, Name: res.User.Name}
	if err := h.Sessions.Set(r.Context(), res.Token, sess); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSessionChange, 1,
		map[string]any{"role": sess.Role, "name": sess.Name}))

	// Students without a jobseeker profile go to profile creation first.
	redirect := Landing(res.User.Role)
	if res.User.Role == domain.RoleStudent {
		if _, err := h.API.GetJobseekerProfile(r.Context()); errors.Is(err, api.ErrNotFound) {
			redirect = "/user/profile/edit"
		}
	}

	writeJSON(w, map[string]any{
		"message":  res.Message,
		"user":     res.User,
		"redirect": redirect,
	})
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Best effort remotely; the local session is cleared regardless.
	_ = h.API.Logout(r.Context())
	if err := h.Sessions.Clear(r.Context()); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "session_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSessionChange, 1, nil))
	writeJSON(w, map[string]any{"redirect": "/login"})
}

// Signup accepts the registration form as multipart (the verification
// document rides along for company/college). Everything the original form
// checked client-side is rejected here before any remote call goes out.
func (h AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	cfg := h.cfg()

	if err := r.ParseMultipartForm(cfg.Signup.MaxDocumentBytes + 1<<20); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_form", "invalid form data: "+err.Error())
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")
	role := r.FormValue("role")
	agree := r.FormValue("agree_to_terms") == "true"

	if password != confirm {
		WriteError(w, r, http.StatusBadRequest, "password_mismatch", "Passwords do not match")
		return
	}
	if !agree {
		WriteError(w, r, http.StatusBadRequest, "terms_required", "You must agree to the terms and conditions.")
		return
	}
	if role == "" {
		WriteError(w, r, http.StatusBadRequest, "role_required", "Please select your role.")
		return
	}
	if role == domain.RoleStudent && cfg.Signup.StudentEmailSuffix != "" &&
		!strings.HasSuffix(strings.ToLower(email), cfg.Signup.StudentEmailSuffix) {
		WriteError(w, r, http.StatusBadRequest, "invalid_student_email",
			fmt.Sprintf("Student email must end with %s", cfg.Signup.StudentEmailSuffix))
		return
	}

	in := api.RegisterInput{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirm,
		Role:                 role,
	}

	if role == domain.RoleCompany || role == domain.RoleCollege {
		file, hdr, err := r.FormFile("verification_document")
		if err != nil {
			WriteError(w, r, http.StatusBadRequest, "document_required",
				fmt.Sprintf("Please upload a document to verify your %s status", role))
			return
		}
		defer file.Close()
		if hdr.Size > cfg.Signup.MaxDocumentBytes {
			WriteError(w, r, http.StatusBadRequest, "document_too_large",
				fmt.Sprintf("Verification document must be at most %d MB", cfg.Signup.MaxDocumentBytes>>20))
			return
		}
		in.Document = file
		in.DocumentName = hdr.Filename
	}

	user, err := h.API.Register(r.Context(), in)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}

	message := "Account created. Please check your email to verify your account."
	if role == domain.RoleCompany || role == domain.RoleCollege {
		message = "Account created. An administrator will review your verification document."
	}
	writeJSON(w, map[string]any{"message": message, "user": user, "redirect": "/login"})
}

// VerifyEmail handles the signed link from the verification mail; all four
// parameters must survive the round trip untouched.
func (h AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, hash := q.Get("id"), q.Get("hash")
	expires, signature := q.Get("expires"), q.Get("signature")
	if id == "" || hash == "" || expires == "" || signature == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_link", "Invalid verification link")
		return
	}

	msg, err := h.API.VerifyEmail(r.Context(), id, hash, expires, signature)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeEmailVerified, 1,
		map[string]any{"id": id}))
	writeJSON(w, map[string]any{"status": "success", "message": msg, "redirect": "/login"})
}
