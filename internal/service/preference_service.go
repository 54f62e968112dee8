package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"vivo-app/internal/catalog"
	"vivo-app/internal/data"
	"vivo-app/internal/logger"
	"vivo-app/internal/metrics"
)

// ErrInvalidPreference is returned when a preference value is not one of the allowed values.
var ErrInvalidPreference = errors.New("invalid preference value")

// Theme is the appearance preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// PreferenceChange is delivered to subscribers after a preference is stored.
type PreferenceChange struct {
	Key   string
	Value string
}

// PreferenceServicer defines the interface for reading and changing preferences.
type PreferenceServicer interface {
	Language(ctx context.Context) catalog.Language
	SetLanguage(ctx context.Context, value string) (catalog.Language, error)
	Theme(ctx context.Context) Theme
	SetTheme(ctx context.Context, value string) (Theme, error)
}

// PreferenceService reads and writes the language and theme preferences and
// notifies subscribers of every successful change.
type PreferenceService struct {
	repo            PreferenceRepository
	log             logger.Logger
	defaultLanguage catalog.Language

	mu          sync.RWMutex
	subscribers []func(PreferenceChange)
}

// NewPreferenceService creates a PreferenceService. An invalid defaultLanguage
// falls back to English.
func NewPreferenceService(repo PreferenceRepository, log logger.Logger, defaultLanguage string) *PreferenceService {
	lang, ok := catalog.ParseLanguage(defaultLanguage)
	if !ok {
		lang = catalog.DefaultLanguage
	}
	return &PreferenceService{
		repo:            repo,
		log:             log.With(map[string]interface{}{"component": "preferences"}),
		defaultLanguage: lang,
	}
}

// Subscribe registers fn to be called synchronously after each change.
func (s *PreferenceService) Subscribe(fn func(PreferenceChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Language returns the selected language, or the default when unset or unreadable.
func (s *PreferenceService) Language(ctx context.Context) catalog.Language {
	raw, found, err := s.repo.Get(ctx, data.PrefLanguage)
	if err != nil {
		s.log.Error(err, "Failed to read language preference")
		return s.defaultLanguage
	}
	if !found {
		return s.defaultLanguage
	}
	lang, ok := catalog.ParseLanguage(raw)
	if !ok {
		s.log.Warn(fmt.Sprintf("Stored language %q is not supported; using default", raw))
		return s.defaultLanguage
	}
	return lang
}

// SetLanguage stores the selected language.
func (s *PreferenceService) SetLanguage(ctx context.Context, value string) (catalog.Language, error) {
	lang, ok := catalog.ParseLanguage(value)
	if !ok {
		return "", fmt.Errorf("%w: language %q", ErrInvalidPreference, value)
	}
	if err := s.set(ctx, data.PrefLanguage, string(lang)); err != nil {
		return "", err
	}
	return lang, nil
}

// Theme returns the selected theme, or ThemeSystem when unset or unreadable.
func (s *PreferenceService) Theme(ctx context.Context) Theme {
	raw, found, err := s.repo.Get(ctx, data.PrefTheme)
	if err != nil {
		s.log.Error(err, "Failed to read theme preference")
		return ThemeSystem
	}
	if !found || !Theme(raw).Valid() {
		return ThemeSystem
	}
	return Theme(raw)
}

// SetTheme stores the selected theme.
func (s *PreferenceService) SetTheme(ctx context.Context, value string) (Theme, error) {
	theme := Theme(value)
	if !theme.Valid() {
		return "", fmt.Errorf("%w: theme %q", ErrInvalidPreference, value)
	}
	if err := s.set(ctx, data.PrefTheme, string(theme)); err != nil {
		return "", err
	}
	return theme, nil
}

func (s *PreferenceService) set(ctx context.Context, key, value string) error {
	if err := s.repo.Set(ctx, key, value); err != nil {
		return err
	}
	metrics.PreferenceChangesTotal.WithLabelValues(key).Inc()

	s.mu.RLock()
	subs := make([]func(PreferenceChange), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	change := PreferenceChange{Key: key, Value: value}
	for _, fn := range subs {
		fn(change)
	}
	return nil
}
