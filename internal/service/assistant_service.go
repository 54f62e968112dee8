package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"
	"vivo-app/internal/assistant"
	"vivo-app/internal/credential"
	"vivo-app/internal/logger"
	"vivo-app/internal/metrics"
)

// AssistantCredentialName is the credential store key of the chat-completion API key.
const AssistantCredentialName = "openai_api_key"

// TopicSuggester asks a provider for topics tailored to people.
type TopicSuggester interface {
	SuggestTopics(ctx context.Context, apiKey string, people []assistant.Person, languageCode string) ([]assistant.ZodiacTopic, error)
}

// ResponseCache stores serialized assistant results.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// AssistantServicer defines the interface for assistant topic suggestions.
type AssistantServicer interface {
	SuggestTopics(ctx context.Context, people []assistant.Person, languageCode string) ([]assistant.ZodiacTopic, error)
	SetAPIKey(ctx context.Context, key string) error
}

// AssistantService resolves the API key, consults the response cache and
// records metrics around the assistant client.
type AssistantService struct {
	client      TopicSuggester
	credentials credential.Store
	cache       ResponseCache
	cacheTTL    time.Duration
	log         logger.Logger
}

// NewAssistantService creates an AssistantService. A nil cache or a zero
// cacheTTL disables caching.
func NewAssistantService(client TopicSuggester, credentials credential.Store, cache ResponseCache, cacheTTL time.Duration, log logger.Logger) *AssistantService {
	return &AssistantService{
		client:      client,
		credentials: credentials,
		cache:       cache,
		cacheTTL:    cacheTTL,
		log:         log.With(map[string]interface{}{"component": "assistant"}),
	}
}

// SetAPIKey stores the API key. An empty key deletes it.
func (s *AssistantService) SetAPIKey(ctx context.Context, key string) error {
	return s.credentials.Set(ctx, AssistantCredentialName, key)
}

// SuggestTopics returns topics for people in languageCode.
func (s *AssistantService) SuggestTopics(ctx context.Context, people []assistant.Person, languageCode string) ([]assistant.ZodiacTopic, error) {
	if err := assistant.ValidatePeople(people); err != nil {
		metrics.AssistantRequestsTotal.WithLabelValues("invalid_input").Inc()
		return nil, err
	}

	apiKey, err := s.credentials.Get(ctx, AssistantCredentialName)
	if err != nil && !errors.Is(err, credential.ErrNotFound) {
		metrics.AssistantRequestsTotal.WithLabelValues("credential_error").Inc()
		return nil, err
	}
	if apiKey == "" {
		metrics.AssistantRequestsTotal.WithLabelValues("missing_credential").Inc()
		return nil, assistant.ErrMissingCredential
	}

	key := s.cacheKey(people, languageCode)
	if topics, ok := s.cached(ctx, key); ok {
		metrics.AssistantRequestsTotal.WithLabelValues("cache_hit").Inc()
		return topics, nil
	}

	start := time.Now()
	topics, err := s.client.SuggestTopics(ctx, apiKey, people, languageCode)
	metrics.AssistantRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AssistantRequestsTotal.WithLabelValues(outcome(err)).Inc()
		s.log.Error(err, "Assistant request failed")
		return nil, err
	}
	metrics.AssistantRequestsTotal.WithLabelValues("success").Inc()

	s.store(ctx, key, topics)
	return topics, nil
}

func (s *AssistantService) cacheKey(people []assistant.Person, languageCode string) string {
	b, _ := json.Marshal(struct {
		People   []assistant.Person `json:"people"`
		Language string             `json:"language"`
	}{people, languageCode})
	sum := sha256.Sum256(b)
	return "assistant:topics:" + hex.EncodeToString(sum[:])
}

func (s *AssistantService) cached(ctx context.Context, key string) ([]assistant.ZodiacTopic, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Error(err, "Failed to read assistant cache")
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	var topics []assistant.ZodiacTopic
	if err := json.Unmarshal(raw, &topics); err != nil {
		s.log.Error(err, "Discarding unreadable assistant cache entry")
		return nil, false
	}
	return topics, true
}

func (s *AssistantService) store(ctx context.Context, key string, topics []assistant.ZodiacTopic) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Error(err, "Failed to write assistant cache")
	}
}

func outcome(err error) string {
	var apiErr *assistant.APIError
	switch {
	case errors.As(err, &apiErr):
		return "api_error"
	case errors.Is(err, assistant.ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, assistant.ErrDecodingFailed):
		return "decoding_failed"
	case errors.Is(err, assistant.ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, assistant.ErrMissingCredential):
		return "missing_credential"
	default:
		return "error"
	}
}
