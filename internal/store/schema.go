package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Table creation statements. Column order is part of the boundary contract
// and must stay stable.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS books (
		book_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		title TEXT NOT NULL,
		genre TEXT NOT NULL DEFAULT '',
		author TEXT NOT NULL DEFAULT '',
		year_published INT NOT NULL DEFAULT 0,
		pages INT NOT NULL DEFAULT 0,
		medium TEXT NOT NULL DEFAULT '',
		sales_count INT NOT NULL DEFAULT 0 CHECK (sales_count >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS catalog (
		book_id BIGINT PRIMARY KEY REFERENCES books(book_id),
		retail_price DOUBLE PRECISION NOT NULL CHECK (retail_price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS stores (
		book_id BIGINT PRIMARY KEY REFERENCES books(book_id),
		wholesale_price DOUBLE PRECISION NOT NULL CHECK (wholesale_price >= 0),
		in_stock INT NOT NULL DEFAULT 0 CHECK (in_stock >= 0),
		sales_count INT NOT NULL DEFAULT 0 CHECK (sales_count >= 0)
	)`,
}

// Provision ensures the three inventory tables exist. Safe to call on every
// startup; existing tables and data are left untouched.
func Provision(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("provision schema: %w", err)
		}
	}
	return nil
}
