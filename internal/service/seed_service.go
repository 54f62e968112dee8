package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"vivo-app/internal/catalog"
	"vivo-app/internal/data"
	"vivo-app/internal/logger"
	"vivo-app/internal/metrics"
)

// SeedState reports whether the persisted catalog matches the built-in tables.
type SeedState string

const (
	SeedCurrent SeedState = "current"
	SeedStale   SeedState = "stale"
)

// SeedStatus describes the persisted catalog relative to the build.
type SeedStatus struct {
	StoredVersion  int       `json:"storedVersion"`
	CurrentVersion int       `json:"currentVersion"`
	TopicCount     int       `json:"topicCount"`
	State          SeedState `json:"state"`
}

// SeedServicer defines the interface for inspecting and rebuilding the catalog.
type SeedServicer interface {
	Status(ctx context.Context) (*SeedStatus, error)
	EnsureSeeded(ctx context.Context) error
	Reseed(ctx context.Context) error
}

// SeedService rebuilds the topic catalog whenever the persisted seed version
// differs from the built-in one or the catalog is empty.
type SeedService struct {
	topics  TopicRepository
	prefs   PreferenceRepository
	log     logger.Logger
	tables  []catalog.Table
	version int
	now     func() time.Time

	mu sync.Mutex
}

// NewSeedService creates a SeedService over the built-in seed tables.
func NewSeedService(topics TopicRepository, prefs PreferenceRepository, log logger.Logger) *SeedService {
	return &SeedService{
		topics:  topics,
		prefs:   prefs,
		log:     log.With(map[string]interface{}{"component": "seed"}),
		tables:  catalog.Tables(),
		version: catalog.SeedVersion,
		now:     time.Now,
	}
}

// Status reads the persisted seed version and catalog size.
func (s *SeedService) Status(ctx context.Context) (*SeedStatus, error) {
	stored, _, err := s.prefs.GetInt(ctx, data.PrefSeedVersion)
	if errors.Is(err, data.ErrNotInteger) {
		// An unreadable counter counts as version 0, which forces a rebuild.
		s.log.Warn(fmt.Sprintf("Ignoring stored seed version: %v", err))
		stored, err = 0, nil
	}
	if err != nil {
		return nil, err
	}
	count, err := s.topics.Count(ctx)
	if err != nil {
		return nil, err
	}

	st := &SeedStatus{
		StoredVersion:  stored,
		CurrentVersion: s.version,
		TopicCount:     count,
		State:          SeedStale,
	}
	if stored == s.version && count > 0 {
		st.State = SeedCurrent
	}
	return st, nil
}

// EnsureSeeded rebuilds the catalog when it is stale and does nothing when it
// is current. On failure the stored version is left as it was, so the next
// call retries the full rebuild.
func (s *SeedService) EnsureSeeded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.Status(ctx)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
		s.log.Error(err, "Failed to read seed state")
		return fmt.Errorf("failed to read seed state: %w", err)
	}
	if st.State == SeedCurrent {
		metrics.SeedRunsTotal.WithLabelValues("current").Inc()
		metrics.CatalogTopics.Set(float64(st.TopicCount))
		s.log.Debug(fmt.Sprintf("Topic catalog is current (version %d, %d topics)", st.StoredVersion, st.TopicCount))
		return nil
	}

	s.log.Info(fmt.Sprintf("Topic catalog is stale (stored version %d, current %d, %d topics); reseeding",
		st.StoredVersion, st.CurrentVersion, st.TopicCount))
	return s.seed(ctx)
}

// Reseed rebuilds the catalog regardless of its state.
func (s *SeedService) Reseed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Info("Forced reseed of topic catalog")
	return s.seed(ctx)
}

func (s *SeedService) seed(ctx context.Context) error {
	if err := catalog.Validate(s.tables); err != nil {
		metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
		s.log.Error(err, "Seed tables failed validation")
		return err
	}

	topics := catalog.Generate(s.tables, s.now().UTC())
	if err := s.topics.ReplaceAll(ctx, topics, s.version); err != nil {
		metrics.SeedRunsTotal.WithLabelValues("failed").Inc()
		s.log.Error(err, "Failed to persist topic catalog")
		return fmt.Errorf("failed to persist topic catalog: %w", err)
	}

	metrics.SeedRunsTotal.WithLabelValues("seeded").Inc()
	metrics.CatalogTopics.Set(float64(len(topics)))
	s.log.Info(fmt.Sprintf("Seeded %d topics at version %d", len(topics), s.version))
	return nil
}
