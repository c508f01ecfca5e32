package service

import (
	"context"

	"atelie-store/internal/model"

	"github.com/google/uuid"
)

// CartService defines server-side operations on a user's cart mirror.
type CartService interface {
	// Get retrieves the user's cart lines in insertion order.
	Get(ctx context.Context, userID string) ([]model.CartItem, error)

	// Sync replaces the user's cart with the pushed list.
	Sync(ctx context.Context, userID string, items []model.CartItem) ([]model.CartItem, error)

	// Clear removes the user's cart.
	Clear(ctx context.Context, userID string) error
}

// ShippingService answers shipping quote requests.
type ShippingService interface {
	// Quote computes carrier options for a destination. When shipping is
	// not configured, configMissing is true and options is nil.
	Quote(ctx context.Context, req model.ShippingQuoteRequest) (options *QuoteEnvelope, configMissing bool)
}

// CheckoutService processes order submissions.
type CheckoutService interface {
	// Process validates and persists an order.
	Process(ctx context.Context, req *model.CheckoutRequest) (*model.OrderConfirmation, error)

	// GetOrder retrieves a processed order by its ID.
	GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)
}
