package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"darkparadise-rest-api/internal/handler"
	"darkparadise-rest-api/internal/model"
	"darkparadise-rest-api/internal/service"
	"darkparadise-rest-api/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type offlineFetcher struct{}

func (offlineFetcher) Fetch(context.Context, string) model.StatusResult {
	return model.Unreachable("offline")
}

type emptyCatalog struct{}

func (emptyCatalog) ListActiveShopItems(context.Context) ([]model.ShopItem, error) { return nil, nil }

type fixedResolver struct{}

func (fixedResolver) Nickname(context.Context, string) (string, error) { return "Clef", nil }

func newTestRouter() http.Handler {
	servers := []model.GameServer{{Key: "server1", Name: "Vanilla", StatusURL: "u1", MaxPlayers: 25}}

	return New(Config{
		Handler:        handler.New(handler.Info{Name: "api", Version: "1.0.0"}, nil, []string{"server1"}),
		ServerHandler:  handler.NewServerHandler(service.NewServerService(servers, offlineFetcher{}, telemetry.Noop{})),
		ShopHandler:    handler.NewShopHandler(service.NewShopService(emptyCatalog{})),
		ProfileHandler: handler.NewProfileHandler(service.NewProfileService(fixedResolver{})),
		AllowedOrigins: []string{"http://localhost:3000"},
	})
}

func TestRoutes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/status", http.StatusOK},
		{http.MethodGet, "/api/servers", http.StatusOK},
		{http.MethodGet, "/api/server/server1", http.StatusOK},
		{http.MethodGet, "/api/server/server9", http.StatusNotFound},
		{http.MethodGet, "/api/steam-nickname/76561198000000000", http.StatusOK},
		{http.MethodGet, "/api/shop/items", http.StatusOK},
		{http.MethodPost, "/api/auth/discord", http.StatusNotImplemented},
		{http.MethodPost, "/api/payment/create", http.StatusNotImplemented},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
		{http.MethodPost, "/api/servers", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestCORS(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/servers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
