package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vivo-app/internal/assistant"
	"vivo-app/internal/cache"
	"vivo-app/internal/catalog"
	"vivo-app/internal/config"
	"vivo-app/internal/credential"
	"vivo-app/internal/data"
	"vivo-app/internal/handler"
	"vivo-app/internal/logger"
	"vivo-app/internal/service"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, nil)

	// --- Database Initialization and Migration ---
	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	log.Info("Applying database migrations...")
	if err := data.Migrate(db); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	// --- Topic Catalog Seeding ---
	topicRepository := data.NewSQLTopicRepository(db)
	prefRepository := data.NewPreferenceRepository(db)
	seedService := service.NewSeedService(topicRepository, prefRepository, log)

	seed := seedService.EnsureSeeded
	if cfg.Seed.Force {
		seed = seedService.Reseed
	}
	if err := seed(context.Background()); err != nil {
		var authoringErr *catalog.AuthoringError
		if errors.As(err, &authoringErr) {
			log.Fatal(err, "Built-in seed tables are inconsistent")
		}
		// The read path tolerates an empty or stale catalog; the next start retries.
		log.Error(err, "Topic catalog seeding failed; continuing with the existing catalog")
	}

	// --- Credential Store ---
	credentials, err := credential.New(cfg.Credentials, log)
	if err != nil {
		log.Fatal(err, "Failed to initialize credential store")
	}

	// --- Cache Initialization ---
	log.Info("Initializing SQLite cache...")
	responseCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal(err, "Failed to initialize cache")
	}
	defer responseCache.Close()
	if n, err := responseCache.Purge(context.Background()); err != nil {
		log.Error(err, "Failed to purge expired cache items")
	} else if n > 0 {
		log.Debug(fmt.Sprintf("Purged %d expired cache items", n))
	}
	log.Info("Cache initialized.")

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	prefService := service.NewPreferenceService(prefRepository, log, cfg.App.DefaultLanguage)
	prefService.Subscribe(func(c service.PreferenceChange) {
		log.Info(fmt.Sprintf("Preference %s changed to %s", c.Key, c.Value))
	})
	topicService := service.NewTopicService(topicRepository, log)
	assistantClient := assistant.NewClient(cfg.Assistant)
	assistantService := service.NewAssistantService(assistantClient, credentials, responseCache, cfg.Assistant.CacheTTL, log)

	// --- Router Setup ---
	router := handler.NewRouter(handler.Handlers{
		Topics:      handler.NewTopicHandler(topicService, log),
		Catalog:     handler.NewCatalogHandler(seedService, log),
		Preferences: handler.NewPreferenceHandler(prefService, log),
		Assistant:   handler.NewAssistantHandler(assistantService, log),
	}, prefService, log)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "Could not start HTTP server")
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
