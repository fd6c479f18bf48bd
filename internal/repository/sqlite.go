package repository

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

var sqliteDialect = dialect{
	name: "sqlite",
	schema: []string{`
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		discord_id VARCHAR(50) UNIQUE NOT NULL,
		username VARCHAR(100) NOT NULL,
		discriminator VARCHAR(10),
		avatar VARCHAR(200),
		steam_id VARCHAR(50),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`, `
	CREATE TABLE IF NOT EXISTS purchases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		item_name VARCHAR(100) NOT NULL,
		item_description TEXT,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		currency VARCHAR(3) DEFAULT 'RUB',
		status VARCHAR(20) DEFAULT 'pending',
		payment_id VARCHAR(100),
		provider_payment_id VARCHAR(100),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		completed_at DATETIME,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`, `
	CREATE TABLE IF NOT EXISTS shop_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		currency VARCHAR(3) DEFAULT 'RUB',
		category VARCHAR(50),
		image_url VARCHAR(200),
		is_active BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`, `
	CREATE TABLE IF NOT EXISTS server_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		server_key VARCHAR(20) NOT NULL,
		players_count INTEGER NOT NULL,
		is_online BOOLEAN NOT NULL,
		recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
		`CREATE INDEX IF NOT EXISTS idx_server_stats_key_time ON server_stats(server_key, recorded_at)`,
	},
}

// NewSQLiteStore opens the SQLite store at dbPath (":memory:" for an
// in-memory database). The parent directory is created if missing.
func NewSQLiteStore(dbPath string) (*SQLStore, error) {
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn += "&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite connection pool settings
	db.SetMaxOpenConns(1) // SQLite only supports 1 writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0) // Keep connection alive

	log.Printf("[SQLiteStore] Opened database: %s", dbPath)
	return newSQLStore(db, sqliteDialect), nil
}
