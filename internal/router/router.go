package router

import (
	"darkparadise-rest-api/internal/handler"
	"darkparadise-rest-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	ServerHandler  *handler.ServerHandler
	ShopHandler    *handler.ShopHandler
	ProfileHandler *handler.ProfileHandler
	AllowedOrigins []string
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/", cfg.Handler.Root)
		r.Get("/health", cfg.Handler.Health)
	}

	r.Route("/api", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/status", cfg.Handler.Status)
		}

		if cfg.ServerHandler != nil {
			r.Get("/servers", cfg.ServerHandler.ListServers)
			r.Get("/server/{key}", cfg.ServerHandler.GetServer)
		}

		if cfg.ProfileHandler != nil {
			r.Get("/steam-nickname/{steam_id}", cfg.ProfileHandler.SteamNickname)
		}

		if cfg.ShopHandler != nil {
			r.Get("/shop/items", cfg.ShopHandler.ListItems)
		}

		// Integrations that are not configured yet
		r.Post("/auth/discord", handler.DiscordAuth)
		r.Post("/payment/create", handler.CreatePayment)
	})

	return r
}
