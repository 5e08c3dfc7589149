package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent
// (IF NOT EXISTS) so re-running the full list on every open is safe.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		contact    TEXT NOT NULL DEFAULT '',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS varieties (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		harvest_days  INTEGER NOT NULL DEFAULT 0 CHECK(harvest_days >= 0),
		blackout_days INTEGER NOT NULL DEFAULT 0 CHECK(blackout_days >= 0),
		soak_hours    INTEGER NOT NULL DEFAULT 0 CHECK(soak_hours >= 0),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		customer_id   TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		variety_id    TEXT NOT NULL REFERENCES varieties(id) ON DELETE CASCADE,
		quantity      INTEGER NOT NULL CHECK(quantity > 0),
		delivery_date TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'draft'
		              CHECK(status IN ('draft','confirmed','packed','delivered')),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_orders_delivery_date ON orders(delivery_date)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_variety ON orders(variety_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		due_date      TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'planned'
		              CHECK(status IN ('planned','done')),
		task_type     TEXT NOT NULL DEFAULT 'general',
		source        TEXT NOT NULL DEFAULT 'user'
		              CHECK(source IN ('user','generated')),
		phase         TEXT NOT NULL DEFAULT '',
		kind          TEXT NOT NULL DEFAULT '',
		generator_key TEXT,
		order_id      TEXT REFERENCES orders(id) ON DELETE CASCADE,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_order ON tasks(order_id)`,

	// Upsert conflict target for generated rows. Partial so user tasks,
	// which carry no generator key, never collide.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_tasks_generator_key
		ON tasks(source, generator_key)
		WHERE generator_key IS NOT NULL`,
}
