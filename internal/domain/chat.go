package domain

import (
	"context"
	"time"
)

// ChatEntry is one recorded exchange: the message a user sent and the
// response they received.
type ChatEntry struct {
	ID        int64
	UserID    int64
	Message   string // as typed by the user, never the translated form
	Response  string
	Language  string
	Timestamp time.Time
}

type ChatRepository interface {
	Create(ctx context.Context, entry *ChatEntry) error
	GetByID(ctx context.Context, id int64) (*ChatEntry, error)
	// ListByUser returns the user's entries newest first.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]ChatEntry, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	Delete(ctx context.Context, id int64) error
}
