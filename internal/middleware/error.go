package middleware

import (
	"fmt"
	"net/http"
	"vivo-app/internal/logger"
	"vivo-app/internal/view"
)

// AppError represents a custom error type for the application.
type AppError struct {
	Error   error
	Message string
	Code    int
}

// AppHandler is a custom handler function type that returns an AppError.
type AppHandler func(http.ResponseWriter, *http.Request) *AppError

// Error is a middleware that converts handler errors into JSON error responses.
func Error(log logger.Logger) func(AppHandler) http.Handler {
	return func(next AppHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					log.Error(err, "Panic recovered")
					_ = view.Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
				}
			}()

			appErr := next(w, r)
			if appErr == nil {
				return
			}
			if appErr.Code >= http.StatusInternalServerError {
				log.Error(appErr.Error, appErr.Message)
			} else {
				log.Debug(fmt.Sprintf("%s: %v", appErr.Message, appErr.Error))
			}
			_ = view.Error(w, appErr.Code, appErr.Message)
		})
	}
}
