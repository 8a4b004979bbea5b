package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"kitaplik/internal/logger"
	"kitaplik/internal/models"
	"kitaplik/internal/repository"
)

// ErrUserNotFound means the session's username no longer resolves to a user
// row. It should not happen under a valid session, but it is handled, not
// assumed away.
var ErrUserNotFound = errors.New("user not found")

// defaultLink is stored when a saved entry carries no origin link.
const defaultLink = "#"

// LibraryService owns the per-user saved-entries logic.
type LibraryService struct {
	authRepo    repository.Authorization
	libraryRepo repository.Library
	log         *logger.Logger
}

func NewLibraryService(authRepo repository.Authorization, libraryRepo repository.Library, log *logger.Logger) *LibraryService {
	return &LibraryService{authRepo: authRepo, libraryRepo: libraryRepo, log: log}
}

// Save stores a new entry owned by the session user and returns the entry ID.
func (s *LibraryService) Save(ctx context.Context, username, title, content, link string) (int, error) {
	userID, err := s.resolveUser(username)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(link) == "" {
		link = defaultLink
	}
	return s.libraryRepo.Insert(ctx, models.LibraryEntry{
		UserID:  userID,
		Title:   title,
		Content: content,
		Link:    link,
	})
}

// List returns the user's entries ordered by title ascending (byte-order,
// case-sensitive), ties broken by insertion order. An unresolvable user
// yields an empty list, not an error.
func (s *LibraryService) List(ctx context.Context, username string) ([]models.LibraryEntry, error) {
	userID, err := s.resolveUser(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return []models.LibraryEntry{}, nil
		}
		return nil, err
	}

	entries, err := s.libraryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Repository returns insertion order; a stable sort on top keeps it as
	// the tie-breaker.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Title < entries[j].Title
	})
	return entries, nil
}

// Delete removes the entry only when it exists and is owned by the session
// user. Anything else is a silent no-op: the caller cannot distinguish
// "deleted" from "nothing matched".
func (s *LibraryService) Delete(ctx context.Context, username string, entryID int) error {
	userID, err := s.resolveUser(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return err
	}

	n, err := s.libraryRepo.Delete(ctx, entryID, userID)
	if err != nil {
		return err
	}
	if n == 0 && s.log != nil {
		s.log.Debugw("library_delete_no_match", "entry_id", entryID, "user_id", userID)
	}
	return nil
}

// resolveUser maps the session username to its user id.
func (s *LibraryService) resolveUser(username string) (int, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrUserNotFound
	}
	return u.ID, nil
}
