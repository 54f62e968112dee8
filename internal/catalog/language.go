package catalog

import "strings"

// Language is a supported content locale code.
type Language string

const (
	Turkish Language = "tr"
	English Language = "en"
	Spanish Language = "es"
)

// DefaultLanguage is used when no preference or usable system locale is available.
const DefaultLanguage = English

// Languages lists the supported locales in generation order.
func Languages() []Language {
	return []Language{Turkish, English, Spanish}
}

// Valid reports whether l is one of the supported locale codes.
func (l Language) Valid() bool {
	switch l {
	case Turkish, English, Spanish:
		return true
	}
	return false
}

// Name returns the English name of the language, as used in assistant prompts.
func (l Language) Name() string {
	switch l {
	case Turkish:
		return "Turkish"
	case Spanish:
		return "Spanish"
	default:
		return "English"
	}
}

// ParseLanguage maps a locale tag such as "es-MX" or "TR" to a supported Language.
// The second return value is false when the tag does not name a supported locale.
func ParseLanguage(tag string) (Language, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	l := Language(tag)
	return l, l.Valid()
}
