package service

import (
	"context"
	"vivo-app/internal/catalog"
	"vivo-app/internal/data"
	"vivo-app/internal/logger"
	"vivo-app/internal/metrics"
)

// TopicServicer defines the read side of the topic catalog.
type TopicServicer interface {
	Sample(ctx context.Context, language catalog.Language, count int) []*data.Topic
	SampleCategory(ctx context.Context, language catalog.Language, category string, count int) []*data.Topic
	Categories(ctx context.Context, language catalog.Language) []*data.CategoryCount
}

// TopicService samples topics from the catalog. Its reads never fail: a query
// error is logged and reported as an empty result.
type TopicService struct {
	repo TopicRepository
	log  logger.Logger
}

// NewTopicService creates a new TopicService with the given repository.
func NewTopicService(repo TopicRepository, log logger.Logger) *TopicService {
	return &TopicService{
		repo: repo,
		log:  log.With(map[string]interface{}{"component": "topics"}),
	}
}

// Sample returns up to count distinct topics in language, in random order.
func (s *TopicService) Sample(ctx context.Context, language catalog.Language, count int) []*data.Topic {
	return s.sample(ctx, language, "", count)
}

// SampleCategory is Sample restricted to one category.
func (s *TopicService) SampleCategory(ctx context.Context, language catalog.Language, category string, count int) []*data.Topic {
	if category == "" {
		return []*data.Topic{}
	}
	return s.sample(ctx, language, category, count)
}

func (s *TopicService) sample(ctx context.Context, language catalog.Language, category string, count int) []*data.Topic {
	if count <= 0 || !language.Valid() {
		return []*data.Topic{}
	}
	metrics.TopicSamplesTotal.WithLabelValues(string(language)).Inc()

	topics, err := s.repo.Sample(ctx, string(language), category, count)
	if err != nil {
		s.log.Error(err, "Failed to sample topics")
		return []*data.Topic{}
	}
	if topics == nil {
		return []*data.Topic{}
	}
	return topics
}

// Categories returns the categories available in language with their topic counts.
func (s *TopicService) Categories(ctx context.Context, language catalog.Language) []*data.CategoryCount {
	if !language.Valid() {
		return []*data.CategoryCount{}
	}
	counts, err := s.repo.Categories(ctx, string(language))
	if err != nil {
		s.log.Error(err, "Failed to list categories")
		return []*data.CategoryCount{}
	}
	if counts == nil {
		return []*data.CategoryCount{}
	}
	return counts
}
