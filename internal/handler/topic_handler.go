package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"vivo-app/internal/data"
	"vivo-app/internal/logger"
	"vivo-app/internal/middleware"
	"vivo-app/internal/service"
	"vivo-app/internal/view"
)

const (
	defaultSampleCount = 10
	maxSampleCount     = 100
)

// TopicHandler serves the read side of the topic catalog.
type TopicHandler struct {
	topicService service.TopicServicer
	log          logger.Logger
}

// NewTopicHandler creates a new TopicHandler with the given dependencies.
func NewTopicHandler(ts service.TopicServicer, log logger.Logger) *TopicHandler {
	return &TopicHandler{
		topicService: ts,
		log:          log,
	}
}

// sampleHandler returns a random sample of topics in the request language,
// optionally restricted to one category.
func (h *TopicHandler) sampleHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	count := defaultSampleCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return &middleware.AppError{Error: fmt.Errorf("count %q", raw), Message: "count must be a positive integer", Code: http.StatusBadRequest}
		}
		count = min(n, maxSampleCount)
	}

	lang := middleware.LanguageFrom(r.Context())
	category := r.URL.Query().Get("category")

	var topics []*data.Topic
	if category != "" {
		topics = h.topicService.SampleCategory(r.Context(), lang, category, count)
	} else {
		topics = h.topicService.Sample(r.Context(), lang, count)
	}

	resp := map[string]interface{}{
		"language": lang,
		"topics":   topics,
	}
	if err := view.JSON(w, http.StatusOK, resp); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render topics", Code: http.StatusInternalServerError}
	}
	return nil
}

// categoriesHandler lists the categories of the request language with topic counts.
func (h *TopicHandler) categoriesHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	lang := middleware.LanguageFrom(r.Context())
	resp := map[string]interface{}{
		"language":   lang,
		"categories": h.topicService.Categories(r.Context(), lang),
	}
	if err := view.JSON(w, http.StatusOK, resp); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render categories", Code: http.StatusInternalServerError}
	}
	return nil
}
