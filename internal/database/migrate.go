package database

import (
	"database/sql"
	"fmt"
)

// Migrate bootstraps the schema. Statements are idempotent so it is
// safe to run on every start.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			attributes JSON
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			category_id BIGINT NOT NULL,
			image_url TEXT NOT NULL,
			affiliate_url TEXT NOT NULL,
			address TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			KEY idx_products_category (category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS product_requests (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			category_id BIGINT NOT NULL,
			image_url TEXT NOT NULL,
			affiliate_url TEXT NOT NULL,
			address TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARBINARY(72) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			created_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
