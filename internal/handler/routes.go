package handler

import (
	"net/http"
	"vivo-app/internal/logger"
	mw "vivo-app/internal/middleware"
	"vivo-app/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Topics      *TopicHandler
	Catalog     *CatalogHandler
	Preferences *PreferenceHandler
	Assistant   *AssistantHandler
}

// NewRouter creates and configures a new chi router.
func NewRouter(h Handlers, prefs mw.LanguageSource, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()
	appHandler := mw.Error(log)

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_ = view.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(mw.Language(prefs))

		r.Method(http.MethodGet, "/topics", appHandler(h.Topics.sampleHandler))
		r.Method(http.MethodGet, "/categories", appHandler(h.Topics.categoriesHandler))

		r.Method(http.MethodGet, "/catalog/status", appHandler(h.Catalog.statusHandler))
		r.Method(http.MethodPost, "/catalog/reseed", appHandler(h.Catalog.reseedHandler))

		r.Method(http.MethodGet, "/preferences", appHandler(h.Preferences.getHandler))
		r.Method(http.MethodPut, "/preferences/language", appHandler(h.Preferences.setLanguageHandler))
		r.Method(http.MethodPut, "/preferences/theme", appHandler(h.Preferences.setThemeHandler))

		r.Method(http.MethodPut, "/credentials/assistant", appHandler(h.Assistant.setCredentialHandler))
		r.Method(http.MethodPost, "/assistant/topics", appHandler(h.Assistant.suggestHandler))
	})

	return r
}
