package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/service"
	"github.com/msomdec/swasth-ai/internal/view"
)

const (
	recentPageSize  = 15
	maxHistoryLimit = 100
)

// ChatHandler serves the chat page and the chat JSON endpoints.
type ChatHandler struct {
	chat    *service.ChatService
	limiter *service.TokenBucket
}

// NewChatHandler creates a new ChatHandler. A nil limiter disables per-user
// rate limiting.
func NewChatHandler(chat *service.ChatService, limiter *service.TokenBucket) *ChatHandler {
	return &ChatHandler{chat: chat, limiter: limiter}
}

// HandleHome renders the chat page with the user's most recent exchanges.
// GET /
func (h *ChatHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		renderError(w, r, http.StatusNotFound, "Page not found.")
		return
	}
	user := UserFromContext(r.Context())

	recent, err := h.chat.ListHistory(r.Context(), user.ID, recentPageSize, 0)
	if err != nil {
		slog.Error("list recent chats", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Could not load your conversations.")
		return
	}

	renderPage(w, r, http.StatusOK, view.HomePage(view.HomeData{
		Username: user.Username,
		Recent:   recent,
	}))
}

// HandleChat answers one message.
// POST /chat
// Request:  {"message":"...","language":"hi"}
// Response: {"response":"..."}
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if h.limiter != nil && !h.limiter.Allow("user:"+strconv.FormatInt(user.ID, 10)) {
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"response": "You're sending messages too quickly. Please wait a moment.",
		})
		return
	}

	var req struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	response, err := h.chat.HandleMessage(r.Context(), user.ID, req.Message, req.Language)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"response": "Please enter a message."})
			return
		}
		slog.Error("handle chat message", "user_id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

// HandleDeleteChat removes one of the user's history entries.
// DELETE /delete_chat/{id}
// Response: {"success":"Chat deleted"}
func (h *ChatHandler) HandleDeleteChat(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid chat id.")
		return
	}

	if err := h.chat.DeleteEntry(r.Context(), id, user.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Chat not found")
		case errors.Is(err, domain.ErrUnauthorized):
			slog.Warn("delete chat denied", "chat_id", id, "user_id", user.ID)
			writeError(w, http.StatusForbidden, "Unauthorized")
		default:
			slog.Error("delete chat", "chat_id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Could not delete chat.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "Chat deleted"})
}

// HandleHistory returns the user's recent entries as JSON.
// GET /history?limit=N
// Response: {"history":[...],"total":N}
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	limit := recentPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer.")
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	entries, err := h.chat.ListHistory(r.Context(), user.ID, limit, 0)
	if err != nil {
		slog.Error("list history", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not load history.")
		return
	}
	total, err := h.chat.CountHistory(r.Context(), user.ID)
	if err != nil {
		slog.Error("count history", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not load history.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"history": toChatEntryDTOs(entries),
		"total":   total,
	})
}
