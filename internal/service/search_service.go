package service

import (
	"fmt"

	"kitaplik/internal/models"
)

const mockResultCount = 3

// SearchService synthesizes the fixed-shape mock results for the /search
// page. There is no real search behind it.
type SearchService struct{}

func NewSearchService() *SearchService { return &SearchService{} }

// Query returns mockResultCount synthesized results embedding the query text.
func (s *SearchService) Query(query string) []models.Result {
	results := make([]models.Result, 0, mockResultCount)
	for i := 1; i <= mockResultCount; i++ {
		results = append(results, models.Result{
			Title:   fmt.Sprintf("%s hakkında bilgi %d", query, i),
			Snippet: fmt.Sprintf("Burada özet bilgi %d yer alacak.", i),
			Link:    placeholderLink,
		})
	}
	return results
}
