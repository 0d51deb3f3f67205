package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT,
		price       NUMERIC(12,2) NOT NULL CHECK (price > 0),
		cost        NUMERIC(12,2) NOT NULL CHECK (cost > 0),
		category    TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS stock (
		id           TEXT PRIMARY KEY,
		product_id   TEXT NOT NULL UNIQUE REFERENCES products(id) ON DELETE CASCADE,
		quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		min_quantity INTEGER NOT NULL DEFAULT 10,
		max_quantity INTEGER NOT NULL DEFAULT 1000,
		location     TEXT,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id             TEXT PRIMARY KEY,
		order_id       TEXT,
		amount         NUMERIC(12,2) NOT NULL,
		payment_method TEXT NOT NULL,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		customer_name  TEXT,
		customer_email TEXT,
		payment_date   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		notes          TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id               TEXT PRIMARY KEY,
		order_id         TEXT,
		customer_name    TEXT NOT NULL,
		customer_address TEXT NOT NULL,
		customer_phone   TEXT,
		delivery_status  TEXT NOT NULL DEFAULT 'pending',
		delivery_date    DATE,
		tracking_number  TEXT,
		notes            TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_items (
		id          TEXT PRIMARY KEY,
		delivery_id TEXT NOT NULL REFERENCES deliveries(id) ON DELETE CASCADE,
		product_id  TEXT NOT NULL REFERENCES products(id),
		quantity    INTEGER NOT NULL CHECK (quantity > 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_items_delivery_id ON delivery_items (delivery_id)`,
	`CREATE INDEX IF NOT EXISTS idx_delivery_items_product_id ON delivery_items (product_id)`,
}

// Migrate creates the tables if they do not exist.
func (db *PostgresDB) Migrate(ctx context.Context, logger *zap.Logger) error {
	for _, stmt := range schema {
		if _, err := db.Conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	logger.Info("✅ Schema up to date", zap.Int("statements", len(schema)))
	return nil
}
