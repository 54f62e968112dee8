package middleware

import (
	"context"
	"net/http"
	"vivo-app/internal/catalog"

	"golang.org/x/text/language"
)

type settingsKey string

// LanguageKey is the key for the resolved content language in the request context.
const LanguageKey settingsKey = "language"

// LanguageSource provides the stored language preference.
type LanguageSource interface {
	Language(ctx context.Context) catalog.Language
}

var supported = []language.Tag{language.English, language.Turkish, language.Spanish}

var matcher = language.NewMatcher(supported)

// Language resolves the content language of a request and stores it in the
// request context: a supported "lang" query parameter wins, then the
// Accept-Language header, then the stored preference.
func Language(prefs LanguageSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := catalog.ParseLanguage(r.URL.Query().Get("lang"))
			if !ok {
				lang, ok = matchAcceptLanguage(r.Header.Get("Accept-Language"))
			}
			if !ok {
				lang = prefs.Language(r.Context())
			}
			ctx := context.WithValue(r.Context(), LanguageKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LanguageFrom returns the language stored by the Language middleware, or the
// default language when none is set.
func LanguageFrom(ctx context.Context) catalog.Language {
	if lang, ok := ctx.Value(LanguageKey).(catalog.Language); ok {
		return lang
	}
	return catalog.DefaultLanguage
}

func matchAcceptLanguage(header string) (catalog.Language, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := supported[index].Base()
	return catalog.ParseLanguage(base.String())
}
