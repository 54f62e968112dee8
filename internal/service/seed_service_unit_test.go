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

func newTestSeedService() (*SeedService, *mockTopicRepository, *mockPreferenceRepository) {
	prefs := newMockPreferenceRepository()
	topics := &mockTopicRepository{prefs: prefs}
	return NewSeedService(topics, prefs, logger.Nop()), topics, prefs
}

func TestSeedService_EnsureSeeded(t *testing.T) {
	t.Run("empty catalog is seeded", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		ctx := context.Background()

		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatalf("EnsureSeeded failed: %v", err)
		}
		if topics.replaceAllCalled != 1 {
			t.Errorf("expected ReplaceAll to be called once, got %d", topics.replaceAllCalled)
		}
		if len(topics.topics) != 4500 {
			t.Errorf("expected 4500 topics, got %d", len(topics.topics))
		}
		if prefs.values[data.PrefSeedVersion] != "3" {
			t.Errorf("expected seed version 3, got %q", prefs.values[data.PrefSeedVersion])
		}
	})

	t.Run("second run performs no writes", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		ctx := context.Background()

		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatal(err)
		}
		firstID := topics.topics[0].ID
		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatal(err)
		}
		if topics.replaceAllCalled != 1 {
			t.Errorf("expected no second ReplaceAll, got %d calls", topics.replaceAllCalled)
		}
		if prefs.setCalled != 0 {
			t.Errorf("expected no preference writes, got %d", prefs.setCalled)
		}
		if topics.topics[0].ID != firstID {
			t.Error("expected the catalog to be left untouched")
		}
	})

	t.Run("version bump replaces the catalog", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		ctx := context.Background()

		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatal(err)
		}
		oldIDs := make(map[string]bool, len(topics.topics))
		for _, topic := range topics.topics {
			oldIDs[topic.ID] = true
		}

		svc.version = catalog.SeedVersion + 1
		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatal(err)
		}
		if topics.replaceAllCalled != 2 {
			t.Errorf("expected a second ReplaceAll, got %d calls", topics.replaceAllCalled)
		}
		if len(topics.topics) != 4500 {
			t.Errorf("expected 4500 topics, got %d", len(topics.topics))
		}
		for _, topic := range topics.topics {
			if oldIDs[topic.ID] {
				t.Fatalf("old topic id %s still present", topic.ID)
			}
		}
		if prefs.values[data.PrefSeedVersion] != "4" {
			t.Errorf("expected seed version 4, got %q", prefs.values[data.PrefSeedVersion])
		}
	})

	t.Run("matching version with empty catalog is stale", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		prefs.values[data.PrefSeedVersion] = "3"

		if err := svc.EnsureSeeded(context.Background()); err != nil {
			t.Fatal(err)
		}
		if topics.replaceAllCalled != 1 {
			t.Errorf("expected a reseed, got %d calls", topics.replaceAllCalled)
		}
	})

	t.Run("non-integer version is stale", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		prefs.values[data.PrefSeedVersion] = "v2"
		topics.topics = make([]data.Topic, 10)
		ctx := context.Background()

		st, err := svc.Status(ctx)
		if err != nil {
			t.Fatalf("Status failed: %v", err)
		}
		if st.State != SeedStale || st.StoredVersion != 0 {
			t.Errorf("expected stale status with version 0, got %+v", st)
		}

		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatalf("EnsureSeeded failed: %v", err)
		}
		if topics.replaceAllCalled != 1 || len(topics.topics) != 4500 {
			t.Errorf("expected a rebuild, got %d calls and %d topics", topics.replaceAllCalled, len(topics.topics))
		}
		if prefs.values[data.PrefSeedVersion] != "3" {
			t.Errorf("expected seed version 3, got %q", prefs.values[data.PrefSeedVersion])
		}
	})

	t.Run("preference read failure", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		prefs.getErr = errors.New("locked")
		if err := svc.EnsureSeeded(context.Background()); err == nil {
			t.Error("expected an error")
		}
		if topics.replaceAllCalled != 0 {
			t.Error("expected nothing to be written")
		}
	})

	t.Run("persistence failure leaves version and retries", func(t *testing.T) {
		svc, topics, prefs := newTestSeedService()
		prefs.values[data.PrefSeedVersion] = "2"
		topics.replaceErr = errors.New("disk full")
		ctx := context.Background()

		err := svc.EnsureSeeded(ctx)
		if err == nil || !errors.Is(err, topics.replaceErr) {
			t.Fatalf("expected wrapped persistence error, got %v", err)
		}
		if prefs.values[data.PrefSeedVersion] != "2" {
			t.Errorf("expected version to stay at 2, got %q", prefs.values[data.PrefSeedVersion])
		}

		topics.replaceErr = nil
		if err := svc.EnsureSeeded(ctx); err != nil {
			t.Fatalf("retry failed: %v", err)
		}
		if topics.replaceAllCalled != 2 {
			t.Errorf("expected the retry to reseed, got %d calls", topics.replaceAllCalled)
		}
		if prefs.values[data.PrefSeedVersion] != "3" {
			t.Errorf("expected version 3 after retry, got %q", prefs.values[data.PrefSeedVersion])
		}
	})

	t.Run("inconsistent tables are rejected", func(t *testing.T) {
		svc, topics, _ := newTestSeedService()
		svc.tables = []catalog.Table{
			{Language: catalog.Turkish, Categories: []catalog.CategorySeed{{Name: "A"}}},
			{Language: catalog.English, Categories: []catalog.CategorySeed{{Name: "B"}}},
		}

		err := svc.EnsureSeeded(context.Background())
		var authoringErr *catalog.AuthoringError
		if !errors.As(err, &authoringErr) {
			t.Fatalf("expected *catalog.AuthoringError, got %v", err)
		}
		if topics.replaceAllCalled != 0 {
			t.Error("expected nothing to be written")
		}
	})

	t.Run("state read failure", func(t *testing.T) {
		svc, topics, _ := newTestSeedService()
		topics.countErr = errors.New("locked")
		if err := svc.EnsureSeeded(context.Background()); err == nil {
			t.Error("expected an error")
		}
		if topics.replaceAllCalled != 0 {
			t.Error("expected nothing to be written")
		}
	})
}

func TestSeedService_ReseedAndStatus(t *testing.T) {
	svc, topics, _ := newTestSeedService()
	ctx := context.Background()

	st, err := svc.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.State != SeedStale || st.StoredVersion != 0 || st.CurrentVersion != catalog.SeedVersion {
		t.Errorf("unexpected initial status %+v", st)
	}

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reseed(ctx); err != nil {
		t.Fatal(err)
	}
	if topics.replaceAllCalled != 2 {
		t.Errorf("expected Reseed to rebuild a current catalog, got %d calls", topics.replaceAllCalled)
	}

	st, err = svc.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.State != SeedCurrent || st.TopicCount != 4500 || st.StoredVersion != catalog.SeedVersion {
		t.Errorf("unexpected final status %+v", st)
	}
}
