//go:build unit

package cache

import (
	"context"
	"testing"
	"time"
	"vivo-app/internal/config"
)

// newTestCache creates a new in-memory cache for testing.
func newTestCache(t *testing.T) (*Cache, func()) {
	t.Helper()
	c, err := New(config.CacheConfig{FilePath: "file::memory:"})
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	teardown := func() {
		c.Close()
	}
	return c, teardown
}

func TestCache(t *testing.T) {
	c, teardown := newTestCache(t)
	defer teardown()
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		got, err := c.Get(ctx, "absent")
		if err != nil || got != nil {
			t.Errorf("expected a nil miss, got %q (err=%v)", got, err)
		}
	})

	t.Run("hit", func(t *testing.T) {
		if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatal(err)
		}
		got, err := c.Get(ctx, "k")
		if err != nil || string(got) != "v" {
			t.Errorf("expected 'v', got %q (err=%v)", got, err)
		}
	})

	t.Run("expiry", func(t *testing.T) {
		base := time.Now()
		c.now = func() time.Time { return base }
		defer func() { c.now = time.Now }()

		if err := c.Set(ctx, "short", []byte("x"), 10*time.Second); err != nil {
			t.Fatal(err)
		}
		c.now = func() time.Time { return base.Add(11 * time.Second) }
		got, err := c.Get(ctx, "short")
		if err != nil || got != nil {
			t.Errorf("expected expired item to miss, got %q (err=%v)", got, err)
		}
	})

	t.Run("purge", func(t *testing.T) {
		base := time.Now()
		c.now = func() time.Time { return base }
		defer func() { c.now = time.Now }()

		_ = c.Set(ctx, "old", []byte("1"), time.Second)
		_ = c.Set(ctx, "fresh", []byte("2"), time.Hour)
		c.now = func() time.Time { return base.Add(time.Minute) }

		n, err := c.Purge(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if n < 1 {
			t.Errorf("expected at least one purged item, got %d", n)
		}
		if got, _ := c.Get(ctx, "fresh"); string(got) != "2" {
			t.Errorf("expected fresh item to survive, got %q", got)
		}
	})
}
