package models

// LibraryEntry is a note saved by a user. The owner is set at creation and
// never changes; every read/delete must be scoped to it.
type LibraryEntry struct {
	ID      int    `json:"id"`
	UserID  int    `json:"-"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Link    string `json:"link"`
}
