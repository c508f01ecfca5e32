package service

import (
	"context"
	"fmt"

	"atelie-store/internal/model"
	"atelie-store/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	repo   repository.CartRepository
	logger zerolog.Logger
}

// NewCartService creates a new server-side cart service.
func NewCartService(repo repository.CartRepository, logger zerolog.Logger) CartService {
	return &cartService{
		repo:   repo,
		logger: logger.With().Str("service", "cart").Logger(),
	}
}

// Get retrieves the user's cart lines in insertion order.
func (s *cartService) Get(ctx context.Context, userID string) ([]model.CartItem, error) {
	items, err := s.repo.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return items, nil
}

// Sync replaces the user's cart with the pushed list after validating it.
func (s *cartService) Sync(ctx context.Context, userID string, items []model.CartItem) ([]model.CartItem, error) {
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("item %d: product ID is required", i)
		}
		if item.Quantity < 1 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity in cart sync")
			return nil, model.ErrInvalidQuantity
		}
	}

	if err := s.repo.ReplaceItems(ctx, userID, items); err != nil {
		return nil, fmt.Errorf("failed to sync cart: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("items", len(items)).
		Msg("cart synced")

	return items, nil
}

// Clear removes the user's cart.
func (s *cartService) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.logger.Debug().Str("user_id", userID).Msg("cart cleared")
	return nil
}
