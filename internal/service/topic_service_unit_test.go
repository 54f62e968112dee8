//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"vivo-app/internal/catalog"
	"vivo-app/internal/data"
	"vivo-app/internal/logger"
)

func TestTopicService_Sample(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockTopicRepository{sampleToReturn: []*data.Topic{{ID: "a", Language: "tr"}, {ID: "b", Language: "tr"}}}
		svc := NewTopicService(repo, logger.Nop())

		got := svc.Sample(context.Background(), catalog.Turkish, 10)
		if len(got) != 2 {
			t.Errorf("expected 2 topics, got %d", len(got))
		}
		if repo.lastLanguage != "tr" || repo.lastCategory != "" || repo.lastLimit != 10 {
			t.Errorf("unexpected repository arguments: %q %q %d", repo.lastLanguage, repo.lastCategory, repo.lastLimit)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		repo := &mockTopicRepository{}
		svc := NewTopicService(repo, logger.Nop())

		got := svc.SampleCategory(context.Background(), catalog.Spanish, "Spor", 3)
		if got == nil || len(got) != 0 {
			t.Errorf("expected a non-nil empty slice, got %#v", got)
		}
		if repo.lastCategory != "Spor" || repo.lastLanguage != "es" {
			t.Errorf("unexpected repository arguments: %q %q", repo.lastLanguage, repo.lastCategory)
		}
	})

	t.Run("query failure yields empty result", func(t *testing.T) {
		repo := &mockTopicRepository{sampleErr: errors.New("database is locked")}
		svc := NewTopicService(repo, logger.Nop())

		got := svc.Sample(context.Background(), catalog.English, 5)
		if got == nil || len(got) != 0 {
			t.Errorf("expected a non-nil empty slice, got %#v", got)
		}
	})

	t.Run("invalid arguments skip the query", func(t *testing.T) {
		repo := &mockTopicRepository{}
		svc := NewTopicService(repo, logger.Nop())
		ctx := context.Background()

		svc.Sample(ctx, catalog.Language("de"), 5)
		svc.Sample(ctx, catalog.English, 0)
		svc.SampleCategory(ctx, catalog.English, "", 5)
		if repo.sampleCalled != 0 {
			t.Errorf("expected no queries, got %d", repo.sampleCalled)
		}
	})
}

func TestTopicService_Categories(t *testing.T) {
	repo := &mockTopicRepository{categoriesToReturn: []*data.CategoryCount{{Name: "Bilim", TopicCount: 100}}}
	svc := NewTopicService(repo, logger.Nop())

	got := svc.Categories(context.Background(), catalog.Turkish)
	if len(got) != 1 || got[0].TopicCount != 100 {
		t.Errorf("unexpected categories %#v", got)
	}

	repo.categoriesErr = errors.New("boom")
	got = svc.Categories(context.Background(), catalog.Turkish)
	if got == nil || len(got) != 0 {
		t.Errorf("expected a non-nil empty slice, got %#v", got)
	}
}
