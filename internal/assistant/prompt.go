package assistant

import (
	"fmt"
	"strings"
	"vivo-app/internal/catalog"
)

const systemPrompt = "You are a helpful assistant. Output JSON only."

// BuildUserPrompt renders the topic request for people in the language named by languageCode.
// Unknown codes fall back to English.
func BuildUserPrompt(people []Person, languageCode string) string {
	lang, _ := catalog.ParseLanguage(languageCode)

	lines := make([]string, len(people))
	for i, p := range people {
		lines[i] = fmt.Sprintf("Person %d: gender=%s, age=%d, zodiac=%s", i+1, p.Gender, p.Age, p.ZodiacSign)
	}

	var b strings.Builder
	b.WriteString("Generate 10 conversation topics based on the people info below.\n")
	fmt.Fprintf(&b, "Language: %s.\n", lang.Name())
	fmt.Fprintf(&b, "Use zodiac sign keys from this list only: %s.\n", strings.Join(ZodiacSigns, ", "))
	b.WriteString("Difficulty must be one of: easy, medium, hard.\n")
	b.WriteString("If there are multiple people, prioritize deeper relationship and life topics (communication, values, long-term goals), especially for female+female or female+male pairs.\n")
	b.WriteString("Return JSON with this exact shape:\n")
	b.WriteString(`{"topics":[{"title":"...","description":"...","difficulty":"easy|medium|hard","zodiacSigns":["aries"],"isTrending":true}]}`)
	b.WriteString("\n\nPeople:\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

// ExtractJSON returns the substring of content from the first '{' to the last
// '}' inclusive. Content without such a pair is returned unchanged.
func ExtractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return content
	}
	return content[start : end+1]
}
