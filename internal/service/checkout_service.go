package service

import (
	"context"
	"fmt"
	"time"

	"atelie-store/internal/checkout"
	"atelie-store/internal/config"
	"atelie-store/internal/coupon"
	"atelie-store/internal/model"
	"atelie-store/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	orderRepo  repository.OrderRepository
	couponRepo repository.CouponRepository
	validator  coupon.Validator
	cfg        config.CheckoutConfig
	logger     zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	couponRepo repository.CouponRepository,
	validator coupon.Validator,
	cfg config.CheckoutConfig,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:  orderRepo,
		couponRepo: couponRepo,
		validator:  validator,
		cfg:        cfg,
		logger:     logger.With().Str("service", "checkout").Logger(),
	}
}

// Process validates and persists an order.
func (s *checkoutService) Process(ctx context.Context, req *model.CheckoutRequest) (*model.OrderConfirmation, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	var appliedCoupon *model.Coupon
	if req.CouponCode != nil && *req.CouponCode != "" {
		c, err := s.validator.Validate(ctx, *req.CouponCode)
		if err != nil {
			s.logger.Warn().
				Str("coupon_code", *req.CouponCode).
				Err(err).
				Msg("invalid coupon code")
			return nil, err
		}
		appliedCoupon = c
	}

	totals := checkout.ComputeTotalsWith(
		cartItemsFrom(req.Items),
		shippingOptionFrom(req.Shipping),
		appliedCoupon,
		req.PaymentMethod,
		s.cfg.PixDiscountPercent,
	)

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to process order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.CouponCode,
		ShippingCost:  totals.Shipping,
		Total:         totals.Total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to process order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		variantID := ""
		if item.VariantID != nil {
			variantID = *item.VariantID
		}
		orderItems[i] = model.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			VariantID: variantID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to process order: %w", err)
	}

	if appliedCoupon != nil {
		if err = s.couponRepo.IncrementUsage(ctx, tx, appliedCoupon.Code); err != nil {
			s.logger.Error().
				Err(err).
				Str("coupon_code", appliedCoupon.Code).
				Msg("failed to increment coupon usage")
			return nil, fmt.Errorf("failed to process order: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to process order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(orderItems)).
		Float64("total", totals.Total).
		Str("payment_method", req.PaymentMethod).
		Msg("order processed successfully")

	return &model.OrderConfirmation{
		ID:            order.ID,
		Items:         orderItems,
		Total:         totals.Total,
		PaymentMethod: req.PaymentMethod,
	}, nil
}

// GetOrder retrieves a processed order by its ID.
func (s *checkoutService) GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, items, nil
}

// validateRequest validates the checkout request.
func (s *checkoutService) validateRequest(req *model.CheckoutRequest) error {
	if req == nil {
		return fmt.Errorf("checkout request is nil")
	}

	if len(req.Items) == 0 {
		return model.ErrEmptyCart
	}

	if req.PaymentMethod != model.PaymentPix && req.PaymentMethod != model.PaymentCard {
		return fmt.Errorf("unsupported payment method: %s", req.PaymentMethod)
	}

	for i, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("item %d: product ID is required", i)
		}
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

// cartItemsFrom reduces checkout lines to the fields total derivation needs.
func cartItemsFrom(items []model.CheckoutItem) []model.CartItem {
	cartItems := make([]model.CartItem, len(items))
	for i, item := range items {
		cartItems[i] = model.CartItem{
			ID:       item.ProductID,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return cartItems
}

func shippingOptionFrom(sel *model.ShippingSelection) *model.ShippingOption {
	if sel == nil {
		return nil
	}
	return &model.ShippingOption{
		Provider: sel.Service,
		Price:    sel.Price,
	}
}
