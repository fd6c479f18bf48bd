package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"darkparadise-rest-api/internal/model"
)

// dialect holds the per-database differences of SQLStore.
type dialect struct {
	name   string
	schema []string
	// numbered placeholders ($1, $2, ...) instead of ?
	numbered bool
}

// rebind rewrites ? placeholders for dialects that number them.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLStore implements Store on top of database/sql.
// Every operation runs on its own connection taken from the pool and
// returned when the operation ends.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

func newSQLStore(db *sql.DB, d dialect) *SQLStore {
	return &SQLStore{db: db, dialect: d}
}

// withConn scopes fn to one pooled connection.
func (s *SQLStore) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// Initialize creates all tables if absent and seeds an empty catalog.
func (s *SQLStore) Initialize(ctx context.Context) error {
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		for _, stmt := range s.dialect.schema {
			if _, err := conn.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
		}

		var count int
		if err := conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM shop_items").Scan(&count); err != nil {
			return fmt.Errorf("failed to count shop items: %w", err)
		}
		if count > 0 {
			return nil
		}

		log.Printf("[SQLStore] Seeding empty shop catalog (%s)", s.dialect.name)
		return s.seedShop(ctx, conn, model.SeedCatalog())
	})
	if err != nil {
		return err
	}

	log.Printf("[SQLStore] Schema ready (%s)", s.dialect.name)
	return nil
}

func (s *SQLStore) seedShop(ctx context.Context, conn *sql.Conn, items []model.ShopItem) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, s.dialect.rebind(`
		INSERT INTO shop_items (name, description, price, currency, category, image_url, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.Name, item.Description, item.Price,
			item.Currency, item.Category, item.ImageURL, item.IsActive); err != nil {
			return fmt.Errorf("failed to seed item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RecordSample appends one server-stat sample.
func (s *SQLStore) RecordSample(ctx context.Context, sample *model.ServerStatSample) error {
	if sample.RecordedAt.IsZero() {
		sample.RecordedAt = time.Now().UTC()
	}

	return s.withConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, s.dialect.rebind(`
			INSERT INTO server_stats (server_key, players_count, is_online, recorded_at)
			VALUES (?, ?, ?, ?)`),
			sample.ServerKey, sample.PlayersCount, sample.IsOnline, sample.RecordedAt)
		if err != nil {
			return fmt.Errorf("failed to insert server stat for %s: %w", sample.ServerKey, err)
		}
		return nil
	})
}

// ListActiveShopItems returns active items ordered by category, then price.
func (s *SQLStore) ListActiveShopItems(ctx context.Context) ([]model.ShopItem, error) {
	items := []model.ShopItem{}

	err := s.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, s.dialect.rebind(`
			SELECT id, name, description, price, currency, category, image_url
			FROM shop_items
			WHERE is_active = ?
			ORDER BY category, price`), true)
		if err != nil {
			return fmt.Errorf("failed to query shop items: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				item        model.ShopItem
				description sql.NullString
				category    sql.NullString
			)
			if err := rows.Scan(&item.ID, &item.Name, &description, &item.Price,
				&item.Currency, &category, &item.ImageURL); err != nil {
				return fmt.Errorf("failed to scan shop item: %w", err)
			}
			item.Description = description.String
			item.Category = category.String
			item.IsActive = true
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Ping checks that the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Ensure SQLStore implements Store
var _ Store = (*SQLStore)(nil)
