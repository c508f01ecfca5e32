package checkout

import (
	"context"

	"atelie-store/internal/model"

	"github.com/rs/zerolog"
)

// checkoutClient is the slice of the backend client checkout depends on.
type checkoutClient interface {
	ProcessCheckout(ctx context.Context, req model.CheckoutRequest) (*model.OrderConfirmation, error)
	ValidateCoupon(ctx context.Context, code, userID string, subtotal float64) (*model.Coupon, error)
}

// cartClearer empties the session cart after a successful submission.
type cartClearer interface {
	Clear(ctx context.Context) error
}

// Service submits order drafts to the backend. On success the cart is
// cleared; on failure the backend error is returned verbatim and the cart
// is left fully intact so the user can retry.
type Service struct {
	client checkoutClient
	cart   cartClearer
	logger zerolog.Logger
}

// NewService creates a checkout service.
func NewService(client checkoutClient, cart cartClearer, logger zerolog.Logger) *Service {
	return &Service{
		client: client,
		cart:   cart,
		logger: logger.With().Str("service", "checkout").Logger(),
	}
}

// Submit sends the order draft for processing.
func (s *Service) Submit(ctx context.Context, draft model.OrderDraft) (*model.OrderConfirmation, error) {
	if len(draft.Items) == 0 {
		return nil, model.ErrEmptyCart
	}

	confirmation, err := s.client.ProcessCheckout(ctx, requestFrom(draft))
	if err != nil {
		s.logger.Warn().Err(err).Msg("checkout submission failed, cart retained")
		return nil, err
	}

	// The cart is only cleared once the order is accepted; a clear failure
	// does not undo the confirmed order.
	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Str("order_id", confirmation.ID.String()).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("order_id", confirmation.ID.String()).
		Float64("total", confirmation.Total).
		Msg("order submitted")

	return confirmation, nil
}

// ApplyCoupon validates a coupon code for the given cart. Validation
// failures are returned for inline display next to the coupon input.
func (s *Service) ApplyCoupon(ctx context.Context, code, userID string, items []model.CartItem) (*model.Coupon, error) {
	coupon, err := s.client.ValidateCoupon(ctx, code, userID, model.Subtotal(items))
	if err != nil {
		s.logger.Debug().Err(err).Str("code", model.NormalizeCouponCode(code)).Msg("coupon validation failed")
		return nil, err
	}
	return coupon, nil
}

// requestFrom maps an order draft onto the wire payload.
func requestFrom(draft model.OrderDraft) model.CheckoutRequest {
	req := model.CheckoutRequest{
		CustomerName:     draft.CustomerName,
		CustomerEmail:    draft.CustomerEmail,
		CustomerDocument: draft.CustomerDocument,
		Items:            make([]model.CheckoutItem, 0, len(draft.Items)),
		ShippingAddress:  draft.ShippingAddress,
		PaymentMethod:    draft.PaymentMethod,
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = model.PaymentPix
	}

	for _, item := range draft.Items {
		line := model.CheckoutItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
		if item.VariantID != "" {
			variantID := item.VariantID
			line.VariantID = &variantID
		}
		req.Items = append(req.Items, line)
	}

	if draft.Shipping != nil {
		req.Shipping = &model.ShippingSelection{
			Service: draft.Shipping.Provider,
			Price:   draft.Shipping.Price,
		}
	}
	if draft.PaymentToken != "" {
		token := draft.PaymentToken
		req.PaymentToken = &token
	}
	if draft.CouponCode != "" {
		code := model.NormalizeCouponCode(draft.CouponCode)
		req.CouponCode = &code
	}
	return req
}
