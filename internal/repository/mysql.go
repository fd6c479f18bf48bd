package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var mysqlDialect = dialect{
	name: "mysql",
	schema: []string{`
	CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		discord_id VARCHAR(50) UNIQUE NOT NULL,
		username VARCHAR(100) NOT NULL,
		discriminator VARCHAR(10),
		avatar VARCHAR(200),
		steam_id VARCHAR(50),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`, `
	CREATE TABLE IF NOT EXISTS purchases (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		item_name VARCHAR(100) NOT NULL,
		item_description TEXT,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		currency VARCHAR(3) DEFAULT 'RUB',
		status VARCHAR(20) DEFAULT 'pending',
		payment_id VARCHAR(100),
		provider_payment_id VARCHAR(100),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		completed_at DATETIME NULL,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`, `
	CREATE TABLE IF NOT EXISTS shop_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL CHECK (price >= 0),
		currency VARCHAR(3) DEFAULT 'RUB',
		category VARCHAR(50),
		image_url VARCHAR(200),
		is_active BOOLEAN DEFAULT TRUE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`, `
	CREATE TABLE IF NOT EXISTS server_stats (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		server_key VARCHAR(20) NOT NULL,
		players_count INT NOT NULL,
		is_online BOOLEAN NOT NULL,
		recorded_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
		INDEX idx_server_stats_key_time (server_key, recorded_at)
	)`,
	},
}

// NewMySQLStore connects to MySQL using a go-sql-driver DSN.
func NewMySQLStore(dsn string) (*SQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	log.Println("[MySQLStore] Connected")
	return newSQLStore(db, mysqlDialect), nil
}
