package service

import (
	"context"

	"kitaplik/internal/models"
)

// User-facing placeholder texts.
const (
	msgNoAnswer        = "Cevap bulunamadı."
	msgAnswerErrPrefix = "Cevap alınamadı. Hata: "

	placeholderLink = "#"
	maxAnswers      = 3
)

// AnswerService proxies questions to the external search API and absorbs
// every failure into a degraded single answer.
type AnswerService struct {
	provider SearchProvider
}

func NewAnswerService(provider SearchProvider) *AnswerService {
	return &AnswerService{provider: provider}
}

// Ask returns at most maxAnswers answers for a non-empty question. It never
// returns an error: transport or decode failures become one answer carrying
// the error text, and an empty result set becomes one placeholder answer.
func (s *AnswerService) Ask(ctx context.Context, question string) []models.Result {
	resp, err := s.provider.Search(ctx, question)
	if err != nil {
		return []models.Result{{
			Title:   question,
			Snippet: msgAnswerErrPrefix + err.Error(),
			Link:    placeholderLink,
		}}
	}

	if len(resp.OrganicResults) == 0 {
		return []models.Result{{
			Title:   question,
			Snippet: msgNoAnswer,
			Link:    placeholderLink,
		}}
	}

	results := resp.OrganicResults
	if len(results) > maxAnswers {
		results = results[:maxAnswers]
	}

	answers := make([]models.Result, 0, len(results))
	for _, r := range results {
		a := models.Result{Title: r.Title, Snippet: r.Snippet, Link: r.Link}
		if a.Title == "" {
			a.Title = question
		}
		if a.Snippet == "" {
			a.Snippet = msgNoAnswer
		}
		if a.Link == "" {
			a.Link = placeholderLink
		}
		answers = append(answers, a)
	}
	return answers
}
