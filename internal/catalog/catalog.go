// Package catalog expands the authored seed tables into discussion topics.
//
// Every category yields PhrasesPerCategory normalized phrases, and each phrase is
// rendered through all TemplateCount title/summary template pairs, so a category
// always produces exactly 100 topics per language.
package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"vivo-app/internal/data"
)

// SeedVersion is the version of the authored tables. Bump it whenever the tables
// or templates change so existing installations rebuild their catalog.
const SeedVersion = 3

const (
	// PhrasesPerCategory is the normalized phrase count for every category.
	PhrasesPerCategory = 20
	// TemplateCount is the number of title/summary template pairs per language.
	TemplateCount = 5
)

// CategorySeed is one category's authored base phrases.
type CategorySeed struct {
	Name    string
	Phrases []string
}

// Table is the authored seed data for a single language.
type Table struct {
	Language         Language
	TitleTemplates   [TemplateCount]string
	SummaryTemplates [TemplateCount]string
	Categories       []CategorySeed
}

// Tables returns the built-in seed tables in generation order (tr, en, es).
func Tables() []Table {
	return []Table{turkishTable, englishTable, spanishTable}
}

// Normalize returns exactly target phrases. Longer inputs are truncated in order,
// shorter ones are repeated cyclically. An empty input yields an empty result.
func Normalize(phrases []string, target int) []string {
	if len(phrases) == 0 || target <= 0 {
		return []string{}
	}
	out := make([]string, target)
	if len(phrases) >= target {
		copy(out, phrases[:target])
		return out
	}
	for i := range out {
		out[i] = phrases[i%len(phrases)]
	}
	return out
}

// ExpandCategory renders one category of a table into unsaved topics, phrase-major
// and template-minor.
func ExpandCategory(t Table, seed CategorySeed, now time.Time) []data.Topic {
	phrases := Normalize(seed.Phrases, PhrasesPerCategory)
	topics := make([]data.Topic, 0, len(phrases)*TemplateCount)
	for _, phrase := range phrases {
		for i := 0; i < TemplateCount; i++ {
			topics = append(topics, data.Topic{
				ID:        uuid.NewString(),
				Title:     fmt.Sprintf(t.TitleTemplates[i], phrase),
				Summary:   fmt.Sprintf(t.SummaryTemplates[i], phrase),
				Category:  seed.Name,
				Language:  string(t.Language),
				CreatedAt: now,
			})
		}
	}
	return topics
}

// Expand renders every category of a table in authored order.
func Expand(t Table, now time.Time) []data.Topic {
	topics := make([]data.Topic, 0, len(t.Categories)*PhrasesPerCategory*TemplateCount)
	for _, seed := range t.Categories {
		topics = append(topics, ExpandCategory(t, seed, now)...)
	}
	return topics
}

// Generate expands all tables and concatenates the results into one generation run.
func Generate(tables []Table, now time.Time) []data.Topic {
	var total int
	for _, t := range tables {
		total += len(t.Categories) * PhrasesPerCategory * TemplateCount
	}
	topics := make([]data.Topic, 0, total)
	for _, t := range tables {
		topics = append(topics, Expand(t, now)...)
	}
	return topics
}
