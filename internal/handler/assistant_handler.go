package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"vivo-app/internal/assistant"
	"vivo-app/internal/logger"
	"vivo-app/internal/middleware"
	"vivo-app/internal/service"
	"vivo-app/internal/view"
)

type suggestRequest struct {
	People   []assistant.Person `json:"people"`
	Language string             `json:"language"`
}

// AssistantHandler serves assistant topic suggestions and stores the API key.
type AssistantHandler struct {
	assistantService service.AssistantServicer
	log              logger.Logger
}

// NewAssistantHandler creates a new AssistantHandler with the given dependencies.
func NewAssistantHandler(as service.AssistantServicer, log logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantService: as,
		log:              log,
	}
}

// suggestHandler asks the assistant for topics. The body language overrides
// the request language.
func (h *AssistantHandler) suggestHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &middleware.AppError{Error: err, Message: "Request body must be JSON", Code: http.StatusBadRequest}
	}
	lang := req.Language
	if lang == "" {
		lang = string(middleware.LanguageFrom(r.Context()))
	}

	topics, err := h.assistantService.SuggestTopics(r.Context(), req.People, lang)
	if err != nil {
		return assistantError(err)
	}
	if err := view.JSON(w, http.StatusOK, map[string]interface{}{"topics": topics}); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render topics", Code: http.StatusInternalServerError}
	}
	return nil
}

// setCredentialHandler stores the API key. The key is never returned.
func (h *AssistantHandler) setCredentialHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	req, appErr := decodeValue(r)
	if appErr != nil {
		return appErr
	}
	if err := h.assistantService.SetAPIKey(r.Context(), req.Value); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to store credential", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func assistantError(err error) *middleware.AppError {
	var apiErr *assistant.APIError
	switch {
	case errors.Is(err, assistant.ErrInvalidInput):
		return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
	case errors.Is(err, assistant.ErrMissingCredential):
		return &middleware.AppError{Error: err, Message: "Assistant API key is not configured", Code: http.StatusPreconditionFailed}
	case errors.As(err, &apiErr):
		return &middleware.AppError{Error: err, Message: "Assistant provider returned an error", Code: http.StatusBadGateway}
	case errors.Is(err, assistant.ErrInvalidResponse),
		errors.Is(err, assistant.ErrEmptyResponse),
		errors.Is(err, assistant.ErrDecodingFailed):
		return &middleware.AppError{Error: err, Message: "Assistant provider returned an unusable response", Code: http.StatusBadGateway}
	default:
		return &middleware.AppError{Error: err, Message: "Assistant request failed", Code: http.StatusInternalServerError}
	}
}
