package repository

import (
	"context"
	"database/sql"

	"kitaplik/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	ListUsernames() ([]string, error)
}

// Library persists per-user saved entries. Every query is scoped to the
// owning user id.
type Library interface {
	Insert(ctx context.Context, e models.LibraryEntry) (int, error)
	ListByUser(ctx context.Context, userID int) ([]models.LibraryEntry, error)
	Delete(ctx context.Context, entryID, userID int) (int64, error)
}

type Repository struct {
	Auth    Authorization
	Library Library
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(db),
		Library: NewLibrarySQLite(db),
	}
}
