package handler

import (
	"net/http"
	"vivo-app/internal/logger"
	"vivo-app/internal/middleware"
	"vivo-app/internal/service"
	"vivo-app/internal/view"
)

// CatalogHandler exposes the seed state of the topic catalog.
type CatalogHandler struct {
	seedService service.SeedServicer
	log         logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler with the given dependencies.
func NewCatalogHandler(ss service.SeedServicer, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		seedService: ss,
		log:         log,
	}
}

func (h *CatalogHandler) statusHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	status, err := h.seedService.Status(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to read catalog status", Code: http.StatusInternalServerError}
	}
	if err := view.JSON(w, http.StatusOK, status); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render catalog status", Code: http.StatusInternalServerError}
	}
	return nil
}

// reseedHandler rebuilds the catalog and returns the resulting status.
func (h *CatalogHandler) reseedHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.seedService.Reseed(r.Context()); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to reseed catalog", Code: http.StatusInternalServerError}
	}
	return h.statusHandler(w, r)
}
