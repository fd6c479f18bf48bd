package service

import (
	"context"
	"fmt"

	"darkparadise-rest-api/internal/model"
	"darkparadise-rest-api/pkg/apierror"
)

// CatalogReader reads the active shop catalog.
type CatalogReader interface {
	ListActiveShopItems(ctx context.Context) ([]model.ShopItem, error)
}

// ShopService handles shop catalog reads.
type ShopService struct {
	catalog CatalogReader
}

// NewShopService creates a new shop service.
func NewShopService(catalog CatalogReader) *ShopService {
	return &ShopService{catalog: catalog}
}

// ListItems returns the active catalog ordered by category, then price.
func (s *ShopService) ListItems(ctx context.Context) ([]model.ShopItem, error) {
	items, err := s.catalog.ListActiveShopItems(ctx)
	if err != nil {
		return nil, apierror.InternalError(fmt.Sprintf("failed to load shop items: %v", err))
	}
	return items, nil
}
