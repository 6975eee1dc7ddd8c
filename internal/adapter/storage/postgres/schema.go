package postgres

import (
	"context"
	"fmt"
)

// schemaStatements creates the marketplace tables. Statements are
// idempotent so startup can run them unconditionally.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		wallet TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		balance BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT accounts_balance_non_negative CHECK (balance >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS offers (
		id UUID PRIMARY KEY,
		seller_id UUID NOT NULL REFERENCES accounts(id),
		kwh_total DOUBLE PRECISION NOT NULL,
		kwh_remaining DOUBLE PRECISION NOT NULL,
		unit_price BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_offers_active ON offers (unit_price, created_at DESC) WHERE status = 'active'`,
	`CREATE TABLE IF NOT EXISTS trades (
		id UUID PRIMARY KEY,
		offer_id UUID NOT NULL REFERENCES offers(id),
		buyer_id UUID NOT NULL REFERENCES accounts(id),
		kwh DOUBLE PRECISION NOT NULL,
		total BIGINT NOT NULL,
		fee BIGINT NOT NULL,
		tx_ref TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trades_buyer ON trades (buyer_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS meter_samples (
		id UUID PRIMARY KEY,
		account_id UUID NOT NULL REFERENCES accounts(id),
		production_kwh DOUBLE PRECISION NOT NULL,
		consumption_kwh DOUBLE PRECISION NOT NULL,
		ts BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_meter_samples_account_ts ON meter_samples (account_id, ts)`,
}

// EnsureSchema creates all marketplace tables and indexes if missing.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
