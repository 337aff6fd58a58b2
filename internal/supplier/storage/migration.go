package storage

import (
	"database/sql"
	"fmt"
	"log"
)

type CatalogSchema struct{}

func (m *CatalogSchema) UpMigration(db *sql.DB) error {
	if _, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS catalog`); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

type MigrationsSchema struct{}

func (m *MigrationsSchema) UpMigration(db *sql.DB) error {
	if _, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS migrations`); err != nil {
		return fmt.Errorf("failed to create migrations schema: %w", err)
	}
	query := `
		CREATE TABLE IF NOT EXISTS migrations.migrations (
		name VARCHAR(255) PRIMARY KEY,
		time TIMESTAMP NOT NULL
		);
		`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

type CatalogSnapshot struct{}

func (m *CatalogSnapshot) UpMigration(db *sql.DB) error {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = 'catalog.snapshot')").Scan(&migrationExists)
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Println("Migration 'catalog.snapshot' already completed. Skipping.")
		return nil
	}
	query := `
		CREATE TABLE IF NOT EXISTS catalog.snapshot (
		id BIGINT PRIMARY KEY,
		vendor VARCHAR(255),
		title TEXT,
		product_type VARCHAR(255),
		price NUMERIC(10, 2),
		compare_at_price NUMERIC(10, 2),
		variant_id BIGINT,
		inventory_item_id BIGINT,
		variant_barcode VARCHAR(32),
		updated_at VARCHAR(64),
		custom JSONB
		);
		`
	if _, err = db.Exec(query); err != nil {
		return fmt.Errorf("failed to create catalog.snapshot table: %w", err)
	}
	_, err = db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ('catalog.snapshot', current_timestamp)")
	if err != nil {
		return fmt.Errorf("failed to mark catalog.snapshot migration as complete: %w", err)
	}

	log.Println("Migration 'catalog.snapshot' completed successfully.")
	return nil
}

type KnownCodes struct{}

func (m *KnownCodes) UpMigration(db *sql.DB) error {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = 'catalog.known_codes')").Scan(&migrationExists)
	if err != nil {
		return fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Println("Migration 'catalog.known_codes' already completed. Skipping.")
		return nil
	}
	query := `
		CREATE TABLE IF NOT EXISTS catalog.known_codes (
		code VARCHAR(32) PRIMARY KEY,
		consumed_at TIMESTAMP NOT NULL DEFAULT current_timestamp
		);
		`
	if _, err = db.Exec(query); err != nil {
		return fmt.Errorf("failed to create catalog.known_codes table: %w", err)
	}
	_, err = db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ('catalog.known_codes', current_timestamp)")
	if err != nil {
		return fmt.Errorf("failed to mark catalog.known_codes migration as complete: %w", err)
	}

	log.Println("Migration 'catalog.known_codes' completed successfully.")
	return nil
}
