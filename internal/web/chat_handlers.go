package web

import (
	"net/http"
	"strings"

	"internlink-gateway/internal/chat"
	"internlink-gateway/internal/events"
)

// ChatHandler is local-only: messages never reach the backend (there is no
// messaging API yet), they are stored in the gateway's sqlite and pushed to
// the UI over SSE.
type ChatHandler struct {
	Chat *chat.Store
	Hub  *events.Hub
}

func (h ChatHandler) Threads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.Chat.Threads(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "chat_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"threads": threads})
}

type createThreadRequest struct {
	PeerName string `json:"peer_name"`
	PeerRole string `json:"peer_role"`
}

func (h ChatHandler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var in createThreadRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.PeerName) == "" {
		WriteError(w, r, http.StatusBadRequest, "peer_required", "Peer name is required")
		return
	}
	t, err := h.Chat.CreateThread(r.Context(), strings.TrimSpace(in.PeerName), in.PeerRole)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "chat_error", err.Error())
		return
	}
	writeJSON(w, t)
}

func (h ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/chat/threads/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid thread id")
		return
	}
	msgs, err := h.Chat.Messages(r.Context(), id)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"messages": msgs})
}

type sendMessageRequest struct {
	Body string `json:"body"`
}

func (h ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/chat/threads/", 0)
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid thread id")
		return
	}
	var in sendMessageRequest
	if err := decodeBody(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(in.Body) == "" {
		WriteError(w, r, http.StatusBadRequest, "body_required", "Message body is required")
		return
	}

	m, err := h.Chat.Append(r.Context(), id, "me", in.Body)
	if err != nil {
		WriteRemoteError(w, r, err)
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeChatMessage, 1, m))
	writeJSON(w, m)
}
