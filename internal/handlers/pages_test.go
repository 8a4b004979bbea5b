package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"kitaplik/internal/models"
	"kitaplik/internal/service"
)

func TestHome_GreetsSessionUser(t *testing.T) {
	r := newTestRouter(authedService("alice", 7, &mockLibrary{}))

	w := authedGet(r, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "alice") {
		t.Fatalf("expected username in page, got: %s", w.Body.String())
	}
}

func TestSearch_RendersMockResults(t *testing.T) {
	r := newTestRouter(authedService("alice", 7, &mockLibrary{}))

	w := authedPostForm(r, "/search", url.Values{"query": {"Go"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		"Go hakkında bilgi 1",
		"Go hakkında bilgi 2",
		"Go hakkında bilgi 3",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page, got: %s", want, body)
		}
	}
}

func TestSearch_EmptyQueryYieldsNoResults(t *testing.T) {
	r := newTestRouter(authedService("alice", 7, &mockLibrary{}))

	w := authedPostForm(r, "/search", url.Values{"query": {"   "}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "hakkında bilgi") {
		t.Fatalf("expected no results for empty query, got: %s", w.Body.String())
	}
}

func TestAsk_PassesQuestionAndRendersAnswers(t *testing.T) {
	answers := &mockAnswers{answers: []models.Result{
		{Title: "Paris", Snippet: "Fransa'nın başkenti", Link: "https://example.com/paris"},
	}}
	s := authedService("alice", 7, &mockLibrary{})
	s.Answers = answers
	r := newTestRouter(s)

	w := authedPostForm(r, "/ask", url.Values{"question": {"fransa başkenti"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(answers.questions) != 1 || answers.questions[0] != "fransa başkenti" {
		t.Fatalf("unexpected Ask calls: %+v", answers.questions)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Paris") || !strings.Contains(body, "Fransa'nın başkenti") {
		t.Fatalf("expected answer in page, got: %s", body)
	}
}

func TestAsk_EmptyQuestionSkipsService(t *testing.T) {
	answers := &mockAnswers{}
	s := authedService("alice", 7, &mockLibrary{})
	s.Answers = answers
	r := newTestRouter(s)

	w := authedPostForm(r, "/ask", url.Values{"question": {"  "}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(answers.questions) != 0 {
		t.Fatalf("expected no Ask calls, got %+v", answers.questions)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{
		Authorization: &mockAuth{},
		Library:       &mockLibrary{},
		Answers:       &mockAnswers{},
		Search:        service.NewSearchService(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Fatalf("expected health body, got: %s", w.Body.String())
	}
}
