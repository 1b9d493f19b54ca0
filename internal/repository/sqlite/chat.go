package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/swasth-ai/internal/domain"
)

// ChatRepository implements domain.ChatRepository using SQLite.
type ChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new SQLite-backed ChatRepository.
func NewChatRepository(db *DB) *ChatRepository {
	return &ChatRepository{db: db.SqlDB}
}

// Create records entry with the current time. Timestamps are stored at
// second precision so they sort as text; id breaks ties.
func (r *ChatRepository) Create(ctx context.Context, entry *domain.ChatEntry) error {
	now := time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_history (user_id, message, response, language, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.UserID, entry.Message, entry.Response, entry.Language, now,
	)
	if err != nil {
		return fmt.Errorf("insert chat entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get chat entry id: %w", err)
	}

	entry.ID = id
	entry.Timestamp = now
	return nil
}

func (r *ChatRepository) GetByID(ctx context.Context, id int64) (*domain.ChatEntry, error) {
	e := &domain.ChatEntry{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, message, response, language, timestamp
		 FROM chat_history WHERE id = ?`, id,
	).Scan(&e.ID, &e.UserID, &e.Message, &e.Response, &e.Language, &e.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get chat entry: %w", err)
	}
	return e, nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.ChatEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, message, response, language, timestamp
		 FROM chat_history
		 WHERE user_id = ?
		 ORDER BY timestamp DESC, id DESC
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list chat entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ChatEntry
	for rows.Next() {
		var e domain.ChatEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Message, &e.Response, &e.Language, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan chat entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *ChatRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM chat_history WHERE user_id = ?", userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count chat entries: %w", err)
	}
	return count, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM chat_history WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete chat entry: %w", err)
	}
	return expectOneRow(result)
}
