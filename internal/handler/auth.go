package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/service"
	"github.com/msomdec/swasth-ai/internal/view"
)

// AuthHandler serves the sign-in, registration, and sign-out flows.
type AuthHandler struct {
	auth    *service.AuthService
	cookies cookies
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies{secure: cookieSecure}}
}

// HandleLoginPage renders the sign-in page, or sends signed-in users home.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	if UserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderPage(w, r, http.StatusOK, view.LoginPage(view.LoginData{
		Flash: h.cookies.popFlash(w, r),
	}))
}

// HandleLogin processes the sign-in form.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	token, err := h.auth.Login(r.Context(), email, r.FormValue("password"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			renderPage(w, r, http.StatusUnauthorized, view.LoginPage(view.LoginData{
				Flash: "Invalid email or password.",
				Email: email,
			}))
			return
		}
		slog.Error("login user", "error", err)
		renderError(w, r, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	h.cookies.setAuth(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleRegister processes the registration form and signs the new user in.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Register(r.Context(), r.FormValue("username"), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			h.cookies.setFlash(w, "Email already exists.")
		case errors.Is(err, domain.ErrInvalidInput):
			h.cookies.setFlash(w, inputMessage(err))
		default:
			slog.Error("register user", "error", err)
			renderError(w, r, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		slog.Error("issue token after register", "error", err)
		h.cookies.setFlash(w, "Account created. Please sign in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	slog.Info("user registered", "user_id", user.ID)
	h.cookies.setAuth(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleLogout clears the auth cookie.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clearAuth(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
