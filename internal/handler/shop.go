package handler

import (
	"net/http"

	"darkparadise-rest-api/internal/model"
	"darkparadise-rest-api/internal/service"
	"darkparadise-rest-api/pkg/response"
)

// ShopHandler serves the shop catalog.
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// ItemsResponse wraps the active catalog.
type ItemsResponse struct {
	Items []model.ShopItem `json:"items"`
}

// ListItems handles GET /api/shop/items
func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.shopService.ListItems(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []model.ShopItem{}
	}

	response.OK(w, ItemsResponse{Items: items})
}
