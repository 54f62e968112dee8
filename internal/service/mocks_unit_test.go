//go:build unit

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"vivo-app/internal/data"
)

// mockTopicRepository is an in-memory implementation of the TopicRepository interface.
// ReplaceAll records the seed version in prefs, like the SQL repository does in
// its transaction.
type mockTopicRepository struct {
	topics []data.Topic
	prefs  *mockPreferenceRepository

	countErr      error
	replaceErr    error
	sampleErr     error
	categoriesErr error

	sampleToReturn     []*data.Topic
	categoriesToReturn []*data.CategoryCount

	replaceAllCalled int
	sampleCalled     int
	lastLanguage     string
	lastCategory     string
	lastLimit        int
}

var _ TopicRepository = (*mockTopicRepository)(nil)

func (m *mockTopicRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.topics), nil
}

func (m *mockTopicRepository) ReplaceAll(ctx context.Context, topics []data.Topic, seedVersion int) error {
	m.replaceAllCalled++
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.topics = append([]data.Topic(nil), topics...)
	if m.prefs != nil {
		m.prefs.values[data.PrefSeedVersion] = strconv.Itoa(seedVersion)
	}
	return nil
}

func (m *mockTopicRepository) Sample(ctx context.Context, language, category string, limit int) ([]*data.Topic, error) {
	m.sampleCalled++
	m.lastLanguage = language
	m.lastCategory = category
	m.lastLimit = limit
	if m.sampleErr != nil {
		return nil, m.sampleErr
	}
	return m.sampleToReturn, nil
}

func (m *mockTopicRepository) Categories(ctx context.Context, language string) ([]*data.CategoryCount, error) {
	m.lastLanguage = language
	if m.categoriesErr != nil {
		return nil, m.categoriesErr
	}
	return m.categoriesToReturn, nil
}

// mockPreferenceRepository is a map-backed implementation of the PreferenceRepository interface.
type mockPreferenceRepository struct {
	values    map[string]string
	getErr    error
	setErr    error
	setCalled int
}

var _ PreferenceRepository = (*mockPreferenceRepository)(nil)

func newMockPreferenceRepository() *mockPreferenceRepository {
	return &mockPreferenceRepository{values: map[string]string{}}
}

func (m *mockPreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockPreferenceRepository) GetInt(ctx context.Context, key string) (int, bool, error) {
	v, ok, err := m.Get(ctx, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("%w: %v", data.ErrNotInteger, err)
	}
	return n, true, nil
}

func (m *mockPreferenceRepository) Set(ctx context.Context, key, value string) error {
	m.setCalled++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// mockCache is a map-backed ResponseCache that ignores expiry.
type mockCache struct {
	items     map[string][]byte
	setCalled int
}

var _ ResponseCache = (*mockCache)(nil)

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.setCalled++
	m.items[key] = value
	return nil
}
