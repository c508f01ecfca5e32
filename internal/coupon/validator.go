package coupon

import (
	"context"
	"fmt"

	"atelie-store/internal/model"
	"atelie-store/internal/repository"

	"github.com/rs/zerolog"
)

// validator implements Validator against the coupon repository.
type validator struct {
	repo   repository.CouponRepository
	logger zerolog.Logger
}

// NewValidator creates a repository-backed coupon validator.
func NewValidator(repo repository.CouponRepository, logger zerolog.Logger) Validator {
	return &validator{
		repo:   repo,
		logger: logger.With().Str("component", "coupon_validator").Logger(),
	}
}

// Validate checks a coupon code and returns the coupon on success.
func (v *validator) Validate(ctx context.Context, code string) (*model.Coupon, error) {
	normalized := model.NormalizeCouponCode(code)
	if normalized == "" {
		return nil, model.ErrInvalidCoupon
	}

	c, err := v.repo.GetByCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if c == nil || !c.Active {
		v.logger.Debug().Str("code", normalized).Msg("coupon invalid or inactive")
		return nil, model.ErrInvalidCoupon
	}
	if c.Exhausted() {
		v.logger.Debug().
			Str("code", normalized).
			Int("usage_count", c.UsageCount).
			Int("usage_limit", c.UsageLimit).
			Msg("coupon usage limit reached")
		return nil, model.ErrCouponExhausted
	}

	return c, nil
}
