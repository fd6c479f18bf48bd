package handler

import (
	"net/http"

	"darkparadise-rest-api/internal/model"
	"darkparadise-rest-api/internal/service"
	"darkparadise-rest-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// ServerHandler serves game-server status.
type ServerHandler struct {
	serverService *service.ServerService
}

// NewServerHandler creates a new server handler.
func NewServerHandler(serverService *service.ServerService) *ServerHandler {
	return &ServerHandler{
		serverService: serverService,
	}
}

// ServersResponse wraps the status of every configured server.
type ServersResponse struct {
	Servers model.ServerSet `json:"servers"`
}

// ListServers handles GET /api/servers
func (h *ServerHandler) ListServers(w http.ResponseWriter, r *http.Request) {
	response.OK(w, ServersResponse{
		Servers: h.serverService.ListServers(r.Context()),
	})
}

// GetServer handles GET /api/server/{key}
func (h *ServerHandler) GetServer(w http.ResponseWriter, r *http.Request) {
	view, err := h.serverService.GetServer(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, view)
}
