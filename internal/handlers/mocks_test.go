package handlers

import (
	"context"

	"kitaplik/internal/models"
	"kitaplik/internal/service"

	"github.com/gin-gonic/gin"
)

// Hand-written mocks for the service interfaces, used by the handler tests.

type mockAuth struct {
	signUpToken string
	signUpErr   error
	signInToken string
	signInErr   error
	session     service.SessionUser
	parseErr    error
	usernames   []string
	listErr     error

	signUpCalls []struct{ username, password string }
	signInCalls []struct{ username, password string }
}

func (m *mockAuth) SignUp(username, password string) (string, error) {
	m.signUpCalls = append(m.signUpCalls, struct{ username, password string }{username, password})
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(username, password string) (string, error) {
	m.signInCalls = append(m.signInCalls, struct{ username, password string }{username, password})
	return m.signInToken, m.signInErr
}

func (m *mockAuth) ParseSession(token string) (service.SessionUser, error) {
	return m.session, m.parseErr
}

func (m *mockAuth) ListUsernames() ([]string, error) {
	return m.usernames, m.listErr
}

type savedEntry struct {
	username, title, content, link string
}

type mockLibrary struct {
	saveID    int
	saveErr   error
	entries   []models.LibraryEntry
	listErr   error
	deleteErr error

	saved       []savedEntry
	deleteCalls []struct {
		username string
		entryID  int
	}
}

func (m *mockLibrary) Save(ctx context.Context, username, title, content, link string) (int, error) {
	m.saved = append(m.saved, savedEntry{username, title, content, link})
	return m.saveID, m.saveErr
}

func (m *mockLibrary) List(ctx context.Context, username string) ([]models.LibraryEntry, error) {
	return m.entries, m.listErr
}

func (m *mockLibrary) Delete(ctx context.Context, username string, entryID int) error {
	m.deleteCalls = append(m.deleteCalls, struct {
		username string
		entryID  int
	}{username, entryID})
	return m.deleteErr
}

type mockAnswers struct {
	answers   []models.Result
	questions []string
}

func (m *mockAnswers) Ask(ctx context.Context, question string) []models.Result {
	m.questions = append(m.questions, question)
	return m.answers
}

// newTestRouter builds the full route table around the given service set.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// authedService returns a service set whose session gate accepts any cookie
// as the given user.
func authedService(username string, userID int, lib *mockLibrary) *service.Service {
	return &service.Service{
		Authorization: &mockAuth{session: service.SessionUser{ID: userID, Username: username}},
		Library:       lib,
		Answers:       &mockAnswers{},
		Search:        service.NewSearchService(),
	}
}
