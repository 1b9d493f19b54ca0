package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/msomdec/swasth-ai/internal/domain"
	"github.com/msomdec/swasth-ai/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB is the SQLite implementation of domain.Database.
type DB struct {
	SqlDB *sql.DB

	users *UserRepository
	chats *ChatRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys. Missing parent directories are created.
func New(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection serializes writers; SQLite allows only one at a time anyway.
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.users = NewUserRepository(db)
	db.chats = NewChatRepository(db)
	return db, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.SqlDB)
}

func (db *DB) Users() domain.UserRepository {
	return db.users
}

func (db *DB) ChatHistory() domain.ChatRepository {
	return db.chats
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}
