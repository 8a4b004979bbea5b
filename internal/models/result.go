package models

// Result is a single search/answer item shown on the search and ask pages.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
