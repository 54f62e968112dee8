package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"vivo-app/internal/logger"
	"vivo-app/internal/middleware"
	"vivo-app/internal/service"
	"vivo-app/internal/view"
)

// valueRequest is the body of every single-value PUT.
type valueRequest struct {
	Value string `json:"value"`
}

// PreferenceHandler reads and updates the language and theme preferences.
type PreferenceHandler struct {
	prefService service.PreferenceServicer
	log         logger.Logger
}

// NewPreferenceHandler creates a new PreferenceHandler with the given dependencies.
func NewPreferenceHandler(ps service.PreferenceServicer, log logger.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		prefService: ps,
		log:         log,
	}
}

func (h *PreferenceHandler) getHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	resp := map[string]interface{}{
		"language": h.prefService.Language(r.Context()),
		"theme":    h.prefService.Theme(r.Context()),
	}
	if err := view.JSON(w, http.StatusOK, resp); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render preferences", Code: http.StatusInternalServerError}
	}
	return nil
}

func (h *PreferenceHandler) setLanguageHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	req, appErr := decodeValue(r)
	if appErr != nil {
		return appErr
	}
	if _, err := h.prefService.SetLanguage(r.Context(), req.Value); err != nil {
		return preferenceError(err)
	}
	return h.getHandler(w, r)
}

func (h *PreferenceHandler) setThemeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	req, appErr := decodeValue(r)
	if appErr != nil {
		return appErr
	}
	if _, err := h.prefService.SetTheme(r.Context(), req.Value); err != nil {
		return preferenceError(err)
	}
	return h.getHandler(w, r)
}

func decodeValue(r *http.Request) (*valueRequest, *middleware.AppError) {
	var req valueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &middleware.AppError{Error: err, Message: "Request body must be JSON", Code: http.StatusBadRequest}
	}
	return &req, nil
}

func preferenceError(err error) *middleware.AppError {
	if errors.Is(err, service.ErrInvalidPreference) {
		return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
	}
	return &middleware.AppError{Error: err, Message: "Failed to save preference", Code: http.StatusInternalServerError}
}
