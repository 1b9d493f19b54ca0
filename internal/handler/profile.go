package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/service"
	"github.com/msomdec/swasth-ai/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

const profilePageSize = 50

// ProfileHandler serves the profile page, its history paging, and the
// account forms.
type ProfileHandler struct {
	auth    *service.AuthService
	chat    *service.ChatService
	cookies cookies
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(auth *service.AuthService, chat *service.ChatService, cookieSecure bool) *ProfileHandler {
	return &ProfileHandler{auth: auth, chat: chat, cookies: cookies{secure: cookieSecure}}
}

// HandleProfile renders the profile page.
// GET /profile
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	entries, err := h.chat.ListHistory(r.Context(), user.ID, profilePageSize, 0)
	if err != nil {
		slog.Error("list profile history", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Could not load your history.")
		return
	}
	total, err := h.chat.CountHistory(r.Context(), user.ID)
	if err != nil {
		slog.Error("count profile history", "error", err)
		renderError(w, r, http.StatusInternalServerError, "Could not load your history.")
		return
	}

	renderPage(w, r, http.StatusOK, view.ProfilePage(view.ProfileData{
		Username: user.Username,
		Email:    user.Email,
		Flash:    h.cookies.popFlash(w, r),
		Entries:  entries,
		LoadMore: view.LoadMore{Total: total, NextOffset: profilePageSize},
	}))
}

// HandleLoadMoreHistory streams the next page of profile history via SSE.
// GET /profile/history?offset=N
func (h *ProfileHandler) HandleLoadMoreHistory(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	entries, err := h.chat.ListHistory(r.Context(), user.ID, profilePageSize, offset)
	if err != nil {
		slog.Error("load more history", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	total, err := h.chat.CountHistory(r.Context(), user.ID)
	if err != nil {
		slog.Error("count history", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)

	if err := sse.PatchElementTempl(
		view.HistoryItemsFragment(entries),
		datastar.WithSelectorID("profile-history"),
		datastar.WithModeAppend(),
	); err != nil {
		slog.Error("patch history items", "error", err)
		return
	}

	// Replaces #load-more by id, removing the button once exhausted.
	if err := sse.PatchElementTempl(view.LoadMoreFragment(total, offset+profilePageSize)); err != nil {
		slog.Error("patch load more", "error", err)
	}
}

// HandleUpdateProfile saves the username and email form.
// POST /update_profile
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	_, err := h.auth.UpdateProfile(r.Context(), user.ID, r.FormValue("username"), r.FormValue("email"))
	switch {
	case err == nil:
		h.cookies.setFlash(w, "Profile updated successfully.")
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.cookies.setFlash(w, "Email already exists.")
	case errors.Is(err, domain.ErrInvalidInput):
		h.cookies.setFlash(w, "Username and Email are required.")
	default:
		slog.Error("update profile", "user_id", user.ID, "error", err)
		h.cookies.setFlash(w, "Could not update your profile. Please try again.")
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// HandleChangePassword processes the change-password form.
// POST /change_password
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	err := h.auth.ChangePassword(r.Context(), user.ID,
		r.FormValue("current_password"),
		r.FormValue("new_password"),
		r.FormValue("confirm_password"),
	)
	switch {
	case err == nil:
		h.cookies.setFlash(w, "Password changed successfully.")
	case errors.Is(err, domain.ErrUnauthorized):
		h.cookies.setFlash(w, "Incorrect current password.")
	case errors.Is(err, domain.ErrInvalidInput):
		h.cookies.setFlash(w, inputMessage(err))
	default:
		slog.Error("change password", "user_id", user.ID, "error", err)
		h.cookies.setFlash(w, "Could not change your password. Please try again.")
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
