package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the DDL for the storefront tables. Statements are idempotent so
// the schema can be applied at startup and in test setup alike.
const Schema = `
	CREATE TABLE IF NOT EXISTS cart_items (
		user_id VARCHAR(100) NOT NULL,
		position INTEGER NOT NULL,
		product_id VARCHAR(100) NOT NULL,
		variant_id VARCHAR(100) NOT NULL DEFAULT '',
		name VARCHAR(255) NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		price DECIMAL(10, 2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 1),
		PRIMARY KEY (user_id, product_id, variant_id)
	);

	CREATE TABLE IF NOT EXISTS coupons (
		code VARCHAR(50) PRIMARY KEY,
		type VARCHAR(20) NOT NULL,
		value DECIMAL(10, 2) NOT NULL,
		usage_limit INTEGER NOT NULL DEFAULT 0,
		usage_count INTEGER NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		payment_method VARCHAR(20) NOT NULL,
		coupon_code VARCHAR(50),
		shipping_cost DECIMAL(10, 2) NOT NULL DEFAULT 0,
		total DECIMAL(10, 2) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY,
		order_id UUID NOT NULL REFERENCES orders(id),
		product_id VARCHAR(100) NOT NULL,
		variant_id VARCHAR(100) NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL,
		unit_price DECIMAL(10, 2) NOT NULL
	);
`

// EnsureSchema applies the storefront schema.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Debug().Msg("database schema ensured")
	return nil
}
