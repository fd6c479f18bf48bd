package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"darkparadise-rest-api/internal/config"
	"darkparadise-rest-api/internal/handler"
	"darkparadise-rest-api/internal/repository"
	"darkparadise-rest-api/internal/router"
	"darkparadise-rest-api/internal/service"
	"darkparadise-rest-api/internal/status"
	"darkparadise-rest-api/internal/steam"
	"darkparadise-rest-api/internal/telemetry"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Dark Paradise API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize store based on config
	store, err := openStore(cfg.Store)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Type, err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Initialize(ctx); err != nil {
		cancel()
		store.Close()
		log.Fatalf("Failed to initialize store: %v", err)
	}
	cancel()
	log.Printf("%s store initialized", cfg.Store.Type)

	// Telemetry: the store always, a Redis stream when enabled
	recorders := telemetry.Multi{telemetry.NewStoreRecorder(store)}

	var publisher *telemetry.StreamPublisher
	if cfg.Telemetry.RedisEnabled {
		publisher, err = telemetry.NewStreamPublisher(telemetry.StreamConfig{
			Addr:     cfg.Telemetry.RedisAddress(),
			Password: cfg.Telemetry.RedisPassword,
			DB:       cfg.Telemetry.RedisDB,
			Stream:   cfg.Telemetry.Stream,
			MaxLen:   cfg.Telemetry.MaxStreamLen,
		})
		if err != nil {
			log.Printf("Warning: Redis telemetry stream disabled: %v", err)
		} else {
			recorders = append(recorders, publisher)
			log.Printf("Redis telemetry stream %s initialized", cfg.Telemetry.Stream)
		}
	}

	// Initialize services
	serverService := service.NewServerService(cfg.GameServers, status.NewFetcher(cfg.Status.Timeout), recorders)
	shopService := service.NewShopService(store)
	profileService := service.NewProfileService(steam.NewClient(steam.Config{
		APIKey:  cfg.Steam.APIKey,
		BaseURL: cfg.Steam.BaseURL,
		Timeout: cfg.Steam.Timeout,
	}))
	if cfg.Steam.APIKey == "" {
		log.Println("Warning: STEAM_API_KEY is empty, nickname lookups will fail")
	}

	// Create router
	r := router.New(router.Config{
		Handler:        handler.New(handler.Info{Name: cfg.App.Name, Version: cfg.App.Version}, store, serverService.Keys()),
		ServerHandler:  handler.NewServerHandler(serverService),
		ShopHandler:    handler.NewShopHandler(shopService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if publisher != nil {
		log.Println("Closing Redis telemetry stream...")
		publisher.Close()
	}

	log.Println("Server stopped")
	fmt.Println("Goodbye!")
}

// openStore opens the backend selected by STORE_TYPE.
func openStore(cfg config.StoreConfig) (repository.Store, error) {
	switch cfg.Type {
	case "postgres":
		return repository.NewPostgresStore(cfg.PostgresDSN())
	case "mysql":
		return repository.NewMySQLStore(cfg.MySQLDSN())
	default: // sqlite
		return repository.NewSQLiteStore(cfg.Path)
	}
}
