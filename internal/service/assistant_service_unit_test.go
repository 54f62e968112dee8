//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"vivo-app/internal/assistant"
	"vivo-app/internal/credential"
	"vivo-app/internal/logger"
)

// mockSuggester is a mock implementation of the TopicSuggester interface.
type mockSuggester struct {
	topicsToReturn []assistant.ZodiacTopic
	errToReturn    error
	called         int
	lastAPIKey     string
	lastLanguage   string
}

var _ TopicSuggester = (*mockSuggester)(nil)

func (m *mockSuggester) SuggestTopics(ctx context.Context, apiKey string, people []assistant.Person, languageCode string) ([]assistant.ZodiacTopic, error) {
	m.called++
	m.lastAPIKey = apiKey
	m.lastLanguage = languageCode
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.topicsToReturn, nil
}

var people = []assistant.Person{{Gender: "other", Age: 40, ZodiacSign: "virgo"}}

func TestAssistantService_SuggestTopics(t *testing.T) {
	t.Run("missing credential", func(t *testing.T) {
		client := &mockSuggester{}
		svc := NewAssistantService(client, credential.NewStaticStore(nil), nil, 0, logger.Nop())

		_, err := svc.SuggestTopics(context.Background(), people, "en")
		if !errors.Is(err, assistant.ErrMissingCredential) {
			t.Errorf("expected ErrMissingCredential, got %v", err)
		}
		if client.called != 0 {
			t.Error("expected the client not to be called")
		}
	})

	t.Run("invalid people", func(t *testing.T) {
		client := &mockSuggester{}
		store := credential.NewStaticStore(map[string]string{AssistantCredentialName: "sk"})
		svc := NewAssistantService(client, store, nil, 0, logger.Nop())

		_, err := svc.SuggestTopics(context.Background(), nil, "en")
		if !errors.Is(err, assistant.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("uses stored key and caches", func(t *testing.T) {
		client := &mockSuggester{topicsToReturn: []assistant.ZodiacTopic{{ID: 1, Title: "Values"}}}
		store := credential.NewStaticStore(nil)
		cache := &mockCache{items: map[string][]byte{}}
		svc := NewAssistantService(client, store, cache, time.Hour, logger.Nop())
		ctx := context.Background()

		if err := svc.SetAPIKey(ctx, "sk-live"); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 2; i++ {
			topics, err := svc.SuggestTopics(ctx, people, "tr")
			if err != nil {
				t.Fatalf("SuggestTopics failed: %v", err)
			}
			if len(topics) != 1 || topics[0].Title != "Values" {
				t.Errorf("unexpected topics %#v", topics)
			}
		}
		if client.called != 1 {
			t.Errorf("expected one provider call, got %d", client.called)
		}
		if client.lastAPIKey != "sk-live" || client.lastLanguage != "tr" {
			t.Errorf("unexpected client arguments %q %q", client.lastAPIKey, client.lastLanguage)
		}

		if _, err := svc.SuggestTopics(ctx, people, "es"); err != nil {
			t.Fatal(err)
		}
		if client.called != 2 {
			t.Errorf("expected a different language to miss the cache, got %d calls", client.called)
		}
	})

	t.Run("provider errors propagate", func(t *testing.T) {
		apiErr := &assistant.APIError{StatusCode: 500, Body: "boom"}
		client := &mockSuggester{errToReturn: apiErr}
		store := credential.NewStaticStore(map[string]string{AssistantCredentialName: "sk"})
		cache := &mockCache{items: map[string][]byte{}}
		svc := NewAssistantService(client, store, cache, time.Hour, logger.Nop())

		_, err := svc.SuggestTopics(context.Background(), people, "en")
		var got *assistant.APIError
		if !errors.As(err, &got) || got.StatusCode != 500 {
			t.Errorf("expected *assistant.APIError, got %v", err)
		}
		if cache.setCalled != 0 {
			t.Error("expected failures not to be cached")
		}
	})
}

func TestOutcome(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{&assistant.APIError{StatusCode: 429}, "api_error"},
		{assistant.ErrEmptyResponse, "empty_response"},
		{assistant.ErrDecodingFailed, "decoding_failed"},
		{assistant.ErrInvalidResponse, "invalid_response"},
		{errors.New("other"), "error"},
	}
	for _, tc := range testCases {
		if got := outcome(tc.err); got != tc.want {
			t.Errorf("outcome(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}
