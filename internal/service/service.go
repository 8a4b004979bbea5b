package service

import (
	"context"

	"kitaplik/internal/logger"
	"kitaplik/internal/models"
	"kitaplik/internal/repository"
	"kitaplik/internal/serpapi"
)

// Authorization covers registration, login and session token handling.
type Authorization interface {
	SignUp(username, password string) (string, error)
	SignIn(username, password string) (string, error)
	ParseSession(token string) (SessionUser, error)
	ListUsernames() ([]string, error)
}

// Library exposes the per-user saved-entries operations. All of them are
// scoped to the owning user; no entry is ever visible across users.
type Library interface {
	Save(ctx context.Context, username, title, content, link string) (int, error)
	List(ctx context.Context, username string) ([]models.LibraryEntry, error)
	Delete(ctx context.Context, username string, entryID int) error
}

// Answers proxies free-text questions to the external search API. The call
// never fails past this boundary; failures degrade into a single answer.
type Answers interface {
	Ask(ctx context.Context, question string) []models.Result
}

// Search returns the mocked search results for the /search page.
type Search interface {
	Query(query string) []models.Result
}

// SearchProvider is the outbound dependency of the answers service,
// implemented by serpapi.Client.
type SearchProvider interface {
	Search(ctx context.Context, query string) (*serpapi.Response, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Library
	Answers
	Search
}

// NewService wires the repository layer and the outbound search provider into
// concrete services.
func NewService(repos *repository.Repository, signingKey []byte, provider SearchProvider, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, signingKey),
		Library:       NewLibraryService(repos.Auth, repos.Library, log),
		Answers:       NewAnswerService(provider),
		Search:        NewSearchService(),
	}
}
