package repository

import (
	"context"
	"database/sql"
	"fmt"

	"kitaplik/internal/models"
)

type LibrarySQLite struct {
	db *sql.DB
}

func NewLibrarySQLite(db *sql.DB) *LibrarySQLite { return &LibrarySQLite{db: db} }

var _ Library = (*LibrarySQLite)(nil)

const (
	insertEntrySQL = `INSERT INTO library (user_id, title, content, link) VALUES (?, ?, ?, ?)`
	// Insertion order here; title ordering is applied in the service so the
	// collation is pinned by Go code, not by the SQLite build.
	selectEntriesByUserSQL = `SELECT id, user_id, title, content, link FROM library WHERE user_id = ? ORDER BY id ASC`
	deleteEntrySQL         = `DELETE FROM library WHERE id = ? AND user_id = ?`
)

// Insert stores a new entry owned by e.UserID and returns the entry ID.
func (r *LibrarySQLite) Insert(ctx context.Context, e models.LibraryEntry) (int, error) {
	res, err := r.db.ExecContext(ctx, insertEntrySQL, e.UserID, e.Title, e.Content, e.Link)
	if err != nil {
		return 0, fmt.Errorf("insert library entry for user %d: %w", e.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for library entry: %w", err)
	}
	return int(lastID), nil
}

// ListByUser returns the user's entries in insertion order.
func (r *LibrarySQLite) ListByUser(ctx context.Context, userID int) ([]models.LibraryEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectEntriesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select library entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.LibraryEntry, 0, 16)
	for rows.Next() {
		var e models.LibraryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.Link); err != nil {
			return nil, fmt.Errorf("scan library entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library entries: %w", err)
	}
	return out, nil
}

// Delete removes the entry only when it is owned by userID and returns the
// number of rows removed (0 when nothing matched).
func (r *LibrarySQLite) Delete(ctx context.Context, entryID, userID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteEntrySQL, entryID, userID)
	if err != nil {
		return 0, fmt.Errorf("delete library entry %d for user %d: %w", entryID, userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for library entry %d: %w", entryID, err)
	}
	return n, nil
}
