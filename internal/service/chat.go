package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/intent"
)

// ChatService answers health questions from the loaded intents, translating
// in and out of the user's language, and records every exchange.
type ChatService struct {
	chats      domain.ChatRepository
	intents    []domain.Intent
	translator domain.Translator
	timeout    time.Duration
}

// NewChatService creates a new ChatService. The intents slice is shared
// read-only across requests. A zero timeout disables the per-call deadline.
func NewChatService(chats domain.ChatRepository, intents []domain.Intent, translator domain.Translator, timeout time.Duration) *ChatService {
	return &ChatService{
		chats:      chats,
		intents:    intents,
		translator: translator,
		timeout:    timeout,
	}
}

// HandleMessage produces the response for one user message and records the
// exchange. Translation failures degrade to the untranslated text.
func (s *ChatService) HandleMessage(ctx context.Context, userID int64, rawMessage, targetLang string) (string, error) {
	if strings.TrimSpace(rawMessage) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	lang := NormalizeLanguage(targetLang)
	english := IsEnglish(lang)

	normalized := strings.ToLower(rawMessage)
	if !english {
		if translated, ok := s.translate(ctx, rawMessage, "auto", "en"); ok {
			normalized = strings.ToLower(translated)
		}
	}

	response := intent.Match(normalized, s.intents)

	if !english {
		if translated, ok := s.translate(ctx, response, "en", lang); ok {
			response = translated
		}
	}

	entry := &domain.ChatEntry{
		UserID:   userID,
		Message:  rawMessage,
		Response: response,
		Language: lang,
	}
	if err := s.chats.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("record chat: %w", err)
	}
	return response, nil
}

func (s *ChatService) translate(ctx context.Context, text, source, dest string) (string, bool) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out, err := s.translator.Translate(ctx, text, source, dest)
	if err != nil {
		slog.Warn("translation failed, using untranslated text", "source", source, "dest", dest, "error", err)
		return "", false
	}
	return out, true
}

// ListHistory returns a page of the user's entries, newest first.
func (s *ChatService) ListHistory(ctx context.Context, userID int64, limit, offset int) ([]domain.ChatEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := s.chats.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

// CountHistory returns how many entries the user has.
func (s *ChatService) CountHistory(ctx context.Context, userID int64) (int, error) {
	n, err := s.chats.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return n, nil
}

// DeleteEntry removes an entry owned by requestingUserID.
func (s *ChatService) DeleteEntry(ctx context.Context, entryID, requestingUserID int64) error {
	entry, err := s.chats.GetByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.UserID != requestingUserID {
		return domain.ErrUnauthorized
	}
	return s.chats.Delete(ctx, entryID)
}
