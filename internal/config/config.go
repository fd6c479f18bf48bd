package config

import (
	"fmt"
	"strings"
	"time"

	"darkparadise-rest-api/internal/model"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
// It is built once in main and handed to the components that need it.
type Config struct {
	Server    ServerConfig
	App       AppConfig
	Store     StoreConfig
	Status    StatusConfig
	Steam     SteamConfig
	CORS      CORSConfig
	Telemetry TelemetryConfig

	// GameServers is the static server catalog with URL overrides applied.
	GameServers []model.GameServer `ignored:"true"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8000"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"Dark Paradise SCP:SL API"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// StoreConfig selects and configures the relational store.
type StoreConfig struct {
	Type string `envconfig:"STORE_TYPE" default:"sqlite"` // sqlite, postgres, or mysql
	Path string `envconfig:"STORE_PATH" default:"./data/dark_paradise.db"`
	// Server-backed databases
	Host     string `envconfig:"STORE_HOST" default:"localhost"`
	Port     int    `envconfig:"STORE_PORT" default:"0"`
	Name     string `envconfig:"STORE_NAME" default:"dark_paradise"`
	User     string `envconfig:"STORE_USER" default:"darkparadise"`
	Password string `envconfig:"STORE_PASS" default:""`
	SSLMode  string `envconfig:"STORE_SSLMODE" default:"disable"`
}

// StatusConfig holds settings for the game-server status fetcher.
type StatusConfig struct {
	Timeout time.Duration `envconfig:"STATUS_TIMEOUT" default:"10s"`
	// URLOverrides replaces configured status URLs, e.g. "server1=https://...,server2=https://..."
	URLOverrides ServerURLs `envconfig:"GAME_SERVER_URLS"`
}

// SteamConfig holds Steam Web API settings.
type SteamConfig struct {
	APIKey  string        `envconfig:"STEAM_API_KEY" default:""`
	BaseURL string        `envconfig:"STEAM_API_URL" default:"https://api.steampowered.com"`
	Timeout time.Duration `envconfig:"STEAM_TIMEOUT" default:"10s"`
}

// CORSConfig holds allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

// TelemetryConfig holds settings for publishing status samples to a Redis stream.
type TelemetryConfig struct {
	RedisEnabled  bool   `envconfig:"TELEMETRY_REDIS_ENABLED" default:"false"`
	RedisHost     string `envconfig:"TELEMETRY_REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"TELEMETRY_REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"TELEMETRY_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"TELEMETRY_REDIS_DB" default:"0"`
	Stream        string `envconfig:"TELEMETRY_STREAM" default:"darkparadise:stream:server_stats"`
	MaxStreamLen  int64  `envconfig:"TELEMETRY_STREAM_MAXLEN" default:"100000"`
}

// ServerURLs maps server keys to status URLs.
type ServerURLs map[string]string

// Decode implements envconfig.Decoder. Entries are "key=url" separated by commas.
func (u *ServerURLs) Decode(value string) error {
	m := make(ServerURLs)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, url, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" || strings.TrimSpace(url) == "" {
			return fmt.Errorf("invalid server url entry %q", pair)
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(url)
	}
	*u = m
	return nil
}

// DefaultGameServers returns the static game-server catalog.
func DefaultGameServers() []model.GameServer {
	return []model.GameServer{
		{
			Key:         "server1",
			Name:        "Dark Paradise | Vanilla",
			Description: "Классический режим SCP:SL без модификаций. Полное погружение в атмосферу Фонда SCP.",
			StatusURL:   "https://api.scplist.kr/api/servers/79084",
			MaxPlayers:  25,
			ServerType:  "vanilla",
		},
		{
			Key:         "server2",
			Name:        "Dark Paradise | Only Events",
			Description: "Специальные события и уникальные режимы игры. Еженедельные тематические эвенты.",
			StatusURL:   "https://api.scplist.kr/api/servers/80810",
			MaxPlayers:  30,
			ServerType:  "events",
		},
	}
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PostgresDSN returns the PostgreSQL connection string.
func (s *StoreConfig) PostgresDSN() string {
	port := s.Port
	if port == 0 {
		port = 5432
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		s.User, s.Password, s.Host, port, s.Name, s.SSLMode)
}

// MySQLDSN returns the MySQL data source name.
func (s *StoreConfig) MySQLDSN() string {
	port := s.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		s.User, s.Password, s.Host, port, s.Name)
}

// RedisAddress returns the Redis address in host:port format.
func (t *TelemetryConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", t.RedisHost, t.RedisPort)
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch cfg.Store.Type {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported STORE_TYPE %q", cfg.Store.Type)
	}

	servers, err := applyURLOverrides(DefaultGameServers(), cfg.Status.URLOverrides)
	if err != nil {
		return nil, err
	}
	cfg.GameServers = servers

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func applyURLOverrides(servers []model.GameServer, overrides ServerURLs) ([]model.GameServer, error) {
	known := make(map[string]int, len(servers))
	for i, s := range servers {
		known[s.Key] = i
	}
	for key, url := range overrides {
		i, ok := known[key]
		if !ok {
			return nil, fmt.Errorf("GAME_SERVER_URLS: unknown server key %q", key)
		}
		servers[i].StatusURL = url
	}
	return servers, nil
}
