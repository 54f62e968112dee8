package data

import "time"

// Topic represents a single discussion topic in the catalog.
type Topic struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Summary   string    `db:"summary" json:"summary"`
	Category  string    `db:"category" json:"category"`
	Language  string    `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CategoryCount is the number of topics stored for one category.
type CategoryCount struct {
	Name       string `db:"category" json:"name"`
	TopicCount int    `db:"topic_count" json:"topicCount"`
}

// Preference keys stored in the preferences table.
const (
	PrefLanguage    = "selected_language"
	PrefTheme       = "selected_theme"
	PrefSeedVersion = "topic_seed_version"
)
