package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/view"
)

func renderPage(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("render page", "path", r.URL.Path, "error", err)
	}
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	renderPage(w, r, status, view.ErrorPage(status, msg))
}

// inputMessage turns a wrapped ErrInvalidInput into a sentence for a flash.
func inputMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
	if msg == "" {
		return "Invalid input."
	}
	runes := []rune(msg)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + "."
}
