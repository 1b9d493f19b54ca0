package handler_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/handler"
	"github.com/msomdec/swasth-ai/internal/repository/sqlite"
	"github.com/msomdec/swasth-ai/internal/service"
	"github.com/msomdec/swasth-ai/internal/translate"
)

const testJWTSecret = "test-secret-for-handler-tests-0123456789"

var testIntents = []domain.Intent{
	{Patterns: []string{"fever", "flu"}, Responses: []string{"Rest and hydrate."}},
	{Patterns: []string{"headache"}, Responses: []string{"**Drink water** and rest."}},
}

func newTestServices(t *testing.T) (*service.AuthService, *service.ChatService) {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewAuthService(db.Users(), testJWTSecret, 4),
		service.NewChatService(db.ChatHistory(), testIntents, translate.Identity{}, time.Second)
}

func newTestServer(t *testing.T, opts handler.Options) (*httptest.Server, *service.AuthService, *service.ChatService) {
	t.Helper()
	auth, chat := newTestServices(t)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, chat, opts)
	srv := httptest.NewServer(handler.Stack(mux, false))
	t.Cleanup(srv.Close)
	return srv, auth, chat
}

// newClient returns a cookie-keeping client that does not follow redirects.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// signUp registers through the form and leaves the client signed in.
func signUp(t *testing.T, client *http.Client, srv *httptest.Server, username, email string) {
	t.Helper()
	resp, err := client.PostForm(srv.URL+"/register", url.Values{
		"username": {username},
		"email":    {email},
		"password": {"password123"},
	})
	if err != nil {
		t.Fatalf("POST /register: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("register: expected 303 to /, got %d to %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func cookieValue(jar http.CookieJar, rawURL, name string) string {
	u, _ := url.Parse(rawURL)
	for _, c := range jar.Cookies(u) {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
