package mysql

import (
	"database/sql"
	"fmt"
)

// Migrate creates the four logical tables and their secondary indexes.
// Order lines live inside the orders row as a JSON payload; the aggregate
// is always written and read as a single record.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id VARCHAR(36) NOT NULL PRIMARY KEY,
			username VARCHAR(100) NOT NULL,
			email VARCHAR(150) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL,
			UNIQUE INDEX idx_users_email (email)
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			restaurant_id VARCHAR(36) NOT NULL PRIMARY KEY,
			name VARCHAR(150) NOT NULL,
			address VARCHAR(255) NOT NULL,
			phone VARCHAR(30) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS menus (
			menu_id VARCHAR(36) NOT NULL PRIMARY KEY,
			restaurant_id VARCHAR(36) NOT NULL,
			name VARCHAR(150) NOT NULL,
			description TEXT,
			price DECIMAL(10,2) NOT NULL,
			INDEX idx_menus_restaurant (restaurant_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			restaurant_id VARCHAR(36) NOT NULL,
			items JSON NOT NULL,
			total_price DECIMAL(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			INDEX idx_orders_user (user_id),
			INDEX idx_orders_status_created (status, created_at)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}

	return nil
}
