package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"darkparadise-rest-api/pkg/response"
)

// StartTime tracks when the server started for uptime calculation
var StartTime = time.Now()

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Info describes the running service.
type Info struct {
	Name    string
	Version string
}

// Handler serves the service-level endpoints: root, health and status.
type Handler struct {
	info       Info
	store      Pinger
	serverKeys []string
}

// New creates a new handler. store may be nil, in which case the database
// is reported as unavailable.
func New(info Info, store Pinger, serverKeys []string) *Handler {
	return &Handler{
		info:       info,
		store:      store,
		serverKeys: serverKeys,
	}
}

// RootResponse is the service banner.
type RootResponse struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, RootResponse{
		Message:   h.info.Name,
		Version:   h.info.Version,
		Status:    "active",
		Timestamp: time.Now().UTC(),
	})
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Servers   []string  `json:"servers"`
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  h.databaseState(r.Context()),
		Servers:   h.serverKeys,
	}
	if resp.Servers == nil {
		resp.Servers = []string{}
	}
	response.OK(w, resp)
}

func (h *Handler) databaseState(ctx context.Context) string {
	if h.store == nil {
		return "unavailable"
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return "unavailable"
	}
	return "connected"
}

// StatusChecks represents the checks in status response
type StatusChecks struct {
	Database string  `json:"database"`
	MemoryMB float64 `json:"memory_mb"`
}

// StatusResponse represents the unified status response for bot monitoring
type StatusResponse struct {
	Service       string       `json:"service"`
	Status        string       `json:"status"`
	Version       string       `json:"version"`
	Timestamp     string       `json:"timestamp"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	PingMS        int64        `json:"ping_ms"`
	Checks        StatusChecks `json:"checks"`
}

// Status handles GET /api/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	requestStart := time.Now()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryMB := float64(memStats.Alloc) / 1024 / 1024

	database := h.databaseState(r.Context())
	status := "ok"
	if database != "connected" {
		status = "degraded"
	}

	resp := StatusResponse{
		Service:       h.info.Name,
		Status:        status,
		Version:       h.info.Version,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: int64(time.Since(StartTime).Seconds()),
		PingMS:        time.Since(requestStart).Milliseconds(),
		Checks: StatusChecks{
			Database: database,
			MemoryMB: float64(int(memoryMB*100)) / 100,
		},
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	response.OK(w, resp)
}
