package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/chat"
	"internlink-gateway/internal/session"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
		// Redirect tells the UI where to send the user (401 -> /login).
		Redirect string `json:"redirect,omitempty"`
		// Fields carries 422 validation errors through to the form.
		Fields map[string][]string `json:"fields,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	if status == http.StatusUnauthorized {
		e.Error.Redirect = "/login"
	}
	WriteJSON(w, status, e)
}

// WriteRemoteError maps an API-client failure onto the flat taxonomy the
// pages use: surface the message once, redirect on auth failures, otherwise
// leave the page where it is.
func WriteRemoteError(w http.ResponseWriter, r *http.Request, err error) {
	var se *api.StatusError
	switch {
	case errors.Is(err, session.ErrNoSession), errors.Is(err, api.ErrUnauthorized):
		WriteError(w, r, http.StatusUnauthorized, "unauthenticated", "Please log in to continue")
	case errors.Is(err, api.ErrForbidden):
		WriteError(w, r, http.StatusForbidden, "forbidden", "You do not have access to this page")
	case errors.Is(err, chat.ErrThreadNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", "Chat thread not found")
	case errors.As(err, &se):
		var e APIError
		e.Error.Code = "remote_error"
		e.Error.Message = se.Message
		e.Error.RequestID = RequestIDFrom(r.Context())
		e.Error.Fields = se.Fields
		WriteJSON(w, se.Status, e)
	default:
		WriteError(w, r, http.StatusBadGateway, "remote_unreachable", err.Error())
	}
}
