package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/swasth-ai/internal/config"
	"github.com/msomdec/swasth-ai/internal/handler"
	"github.com/msomdec/swasth-ai/internal/intent"
	"github.com/msomdec/swasth-ai/internal/repository/sqlite"
	"github.com/msomdec/swasth-ai/internal/service"
	"github.com/msomdec/swasth-ai/internal/translate"
)

// Per-IP budget for the sign-in and registration forms.
const authAttemptsPerMinute = 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	intents := intent.Load(cfg.IntentsPath)
	slog.Info("chat intents ready", "count", len(intents))

	translator, err := translate.New(cfg.Translate)
	if err != nil {
		slog.Error("failed to configure translator", "error", err)
		os.Exit(1)
	}
	slog.Info("translator configured", "provider", cfg.Translate.Provider, "timeout", cfg.Translate.Timeout)

	authService := service.NewAuthService(db.Users(), cfg.JWTSecret, cfg.BcryptCost)
	chatService := service.NewChatService(db.ChatHistory(), intents, translator, cfg.Translate.Timeout)

	authLimiter := service.PerMinute(authAttemptsPerMinute)
	defer authLimiter.Stop()
	chatLimiter := service.PerMinute(cfg.ChatRatePerMinute)
	defer chatLimiter.Stop()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, chatService, handler.Options{
		CookieSecure: cfg.CookieSecure,
		AuthLimiter:  authLimiter,
		ChatLimiter:  chatLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Stack(mux, cfg.TrustProxyHeaders),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
