package repository

import (
	"context"

	"atelie-store/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartRepository defines the interface for server-side cart persistence.
type CartRepository interface {
	// GetItems retrieves a user's cart lines in insertion order.
	GetItems(ctx context.Context, userID string) ([]model.CartItem, error)

	// ReplaceItems replaces the user's cart with the given lines in a
	// single transaction.
	ReplaceItems(ctx context.Context, userID string, items []model.CartItem) error

	// Clear removes all cart lines for the user.
	Clear(ctx context.Context, userID string) error
}

// CouponRepository defines the interface for coupon data access.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its normalised code. Returns nil
	// when no such coupon exists.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)

	// IncrementUsage bumps the usage counter within the provided
	// transaction.
	IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}
