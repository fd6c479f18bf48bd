package repository

import (
	"context"

	"darkparadise-rest-api/internal/model"
)

// Store defines persistence for users, purchases, the shop catalog and
// server-stat samples.
type Store interface {
	// Initialize creates missing tables and seeds an empty shop catalog.
	// Safe to call on every start.
	Initialize(ctx context.Context) error

	// RecordSample appends one server-stat sample.
	RecordSample(ctx context.Context, sample *model.ServerStatSample) error

	// ListActiveShopItems returns active items ordered by category, then price.
	ListActiveShopItems(ctx context.Context) ([]model.ShopItem, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection pool.
	Close() error
}
