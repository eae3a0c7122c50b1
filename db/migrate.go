package db

import (
	"bank-admin-api/logger"
	"context"
	"database/sql"
	"fmt"
)

// Statements are idempotent so InitSchema is safe to run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id SERIAL PRIMARY KEY,
		holder_name TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL DEFAULT '',
		routing_number TEXT NOT NULL DEFAULT '',
		holder_address TEXT NOT NULL DEFAULT '',
		bank_name TEXT NOT NULL DEFAULT '',
		bank_address TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		balance DOUBLE PRECISION NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'USD'
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		tx_type TEXT NOT NULL DEFAULT 'sent',
		amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'USD',
		counterparty TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Personal-detail columns were added after the first deployment; existing
// account tables pick them up here.
var accountColumnAdds = []string{
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS first_name TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS last_name TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS date_of_birth TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS email TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS phone_number TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS address TEXT NOT NULL DEFAULT ''`,
}

// InitSchema creates the two tables and applies forward-compatible column
// additions. Callers treat a failure as non-fatal: the service keeps serving
// and queries against a missing table surface their own store errors.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, stmt := range accountColumnAdds {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add account column: %w", err)
		}
	}

	logger.Log.Info("Database schema initialized successfully")
	return nil
}
