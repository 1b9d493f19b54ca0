package handler

import (
	"net/http"

	"github.com/msomdec/swasth-ai/internal/service"
	"github.com/msomdec/swasth-ai/internal/view"
)

// Options carries the HTTP-layer settings that are not services.
type Options struct {
	CookieSecure bool
	// AuthLimiter throttles POST /login and /register per client IP.
	AuthLimiter *service.TokenBucket
	// ChatLimiter throttles POST /chat per user.
	ChatLimiter *service.TokenBucket
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, chat *service.ChatService, opts Options) {
	authH := NewAuthHandler(auth, opts.CookieSecure)
	chatH := NewChatHandler(chat, opts.ChatLimiter)
	profileH := NewProfileHandler(auth, chat, opts.CookieSecure)

	page := func(h http.HandlerFunc) http.Handler { return RequireLogin(auth, h) }
	api := func(h http.HandlerFunc) http.Handler { return RequireAuth(auth, h) }

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(view.Static())))

	mux.Handle("GET /login", OptionalAuth(auth, http.HandlerFunc(authH.HandleLoginPage)))
	mux.Handle("POST /login", LimitByIP(opts.AuthLimiter, http.HandlerFunc(authH.HandleLogin)))
	mux.Handle("POST /register", LimitByIP(opts.AuthLimiter, http.HandlerFunc(authH.HandleRegister)))
	mux.Handle("GET /logout", page(authH.HandleLogout))

	mux.Handle("GET /", page(chatH.HandleHome))
	mux.Handle("POST /chat", api(chatH.HandleChat))
	mux.Handle("DELETE /delete_chat/{id}", api(chatH.HandleDeleteChat))
	mux.Handle("GET /history", api(chatH.HandleHistory))

	mux.Handle("GET /profile", page(profileH.HandleProfile))
	mux.Handle("GET /profile/history", page(profileH.HandleLoadMoreHistory))
	mux.Handle("POST /update_profile", page(profileH.HandleUpdateProfile))
	mux.Handle("POST /change_password", page(profileH.HandleChangePassword))
}
