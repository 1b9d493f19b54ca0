package domain

import "context"

// Database is the storage backend. An implementation owns its schema and
// hands out the repositories built on top of it.
type Database interface {
	Migrate(ctx context.Context) error
	Users() UserRepository
	ChatHistory() ChatRepository
	Close() error
}
