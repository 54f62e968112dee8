package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// AuthoringError reports inconsistencies in the seed tables. It is a programming
// error in the authored data and cannot be recovered from at runtime.
type AuthoringError struct {
	Problems []string
}

func (e *AuthoringError) Error() string {
	return "seed tables are inconsistent: " + strings.Join(e.Problems, "; ")
}

// Validate checks that there is exactly one table per supported language, that all
// tables share the same category keys, and that every template has exactly one
// substitution slot.
func Validate(tables []Table) error {
	var problems []string
	if len(tables) == 0 {
		return &AuthoringError{Problems: []string{"no seed tables"}}
	}

	seen := make(map[Language]bool, len(tables))
	for _, t := range tables {
		if !t.Language.Valid() {
			problems = append(problems, fmt.Sprintf("unsupported language %q", t.Language))
		}
		if seen[t.Language] {
			problems = append(problems, fmt.Sprintf("duplicate table for %q", t.Language))
		}
		seen[t.Language] = true

		for i := 0; i < TemplateCount; i++ {
			if n := strings.Count(t.TitleTemplates[i], "%s"); n != 1 {
				problems = append(problems, fmt.Sprintf("%s: title template %d has %d slots", t.Language, i, n))
			}
			if n := strings.Count(t.SummaryTemplates[i], "%s"); n != 1 {
				problems = append(problems, fmt.Sprintf("%s: summary template %d has %d slots", t.Language, i, n))
			}
		}

		names := make(map[string]bool, len(t.Categories))
		for _, c := range t.Categories {
			if names[c.Name] {
				problems = append(problems, fmt.Sprintf("%s: duplicate category %q", t.Language, c.Name))
			}
			names[c.Name] = true
		}
	}

	for _, lang := range Languages() {
		if !seen[lang] {
			problems = append(problems, fmt.Sprintf("missing table for %q", lang))
		}
	}

	ref := categoryKeys(tables[0])
	for _, t := range tables[1:] {
		keys := categoryKeys(t)
		if strings.Join(keys, "\x00") != strings.Join(ref, "\x00") {
			problems = append(problems, fmt.Sprintf("%s: category keys %v differ from %s keys %v",
				t.Language, keys, tables[0].Language, ref))
		}
	}

	if len(problems) > 0 {
		return &AuthoringError{Problems: problems}
	}
	return nil
}

func categoryKeys(t Table) []string {
	keys := make([]string, 0, len(t.Categories))
	for _, c := range t.Categories {
		keys = append(keys, c.Name)
	}
	sort.Strings(keys)
	return keys
}
