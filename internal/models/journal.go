package models

// JournalEntry is a dated free-form note, optionally tagged with a mood.
type JournalEntry struct {
	ID      string   `json:"id"`
	Date    int64    `json:"date"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}
