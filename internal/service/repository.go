package service

import (
	"context"
	"vivo-app/internal/data"
)

// TopicRepository defines the interface for database operations on the topic catalog.
type TopicRepository interface {
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, topics []data.Topic, seedVersion int) error
	Sample(ctx context.Context, language, category string, limit int) ([]*data.Topic, error)
	Categories(ctx context.Context, language string) ([]*data.CategoryCount, error)
}

// PreferenceRepository defines the interface for the key/value preference store.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	GetInt(ctx context.Context, key string) (int, bool, error)
	Set(ctx context.Context, key, value string) error
}
