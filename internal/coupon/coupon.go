package coupon

import (
	"context"

	"atelie-store/internal/model"
)

// Validator defines the interface for coupon code validation.
type Validator interface {
	// Validate checks a coupon code and returns the coupon on success.
	// A valid coupon must:
	// - Exist and be active
	// - Not have exhausted its usage limit
	Validate(ctx context.Context, code string) (*model.Coupon, error)
}
