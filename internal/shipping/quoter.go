package shipping

import (
	"context"
	"encoding/json"

	"atelie-store/internal/model"

	"github.com/rs/zerolog"
)

// quoteClient is the slice of the backend client the quoter depends on.
type quoteClient interface {
	QuoteShipping(ctx context.Context, req model.ShippingQuoteRequest) (json.RawMessage, error)
}

// Quoter fetches and normalises shipping quotes for the checkout flow. It
// never returns an error: any failure yields an empty option list, and a
// sentinel provider in the response is reported through the configMissing
// flag so the UI can show a maintenance notice instead of "no coverage".
type Quoter struct {
	client quoteClient
	logger zerolog.Logger
}

// NewQuoter creates a quoter on top of the backend client.
func NewQuoter(client quoteClient, logger zerolog.Logger) *Quoter {
	return &Quoter{
		client: client,
		logger: logger.With().Str("service", "shipping").Logger(),
	}
}

// Quote requests options for the destination CEP and cart contents.
func (q *Quoter) Quote(ctx context.Context, cep string, items []model.CartItem) (options []model.ShippingOption, configMissing bool) {
	req := model.ShippingQuoteRequest{
		CEP:      cep,
		Subtotal: model.Subtotal(items),
		Items:    make([]model.ShippingQuoteRef, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, model.ShippingQuoteRef{
			ProductID: item.ID,
			Quantity:  item.Quantity,
		})
	}

	raw, err := q.client.QuoteShipping(ctx, req)
	if err != nil {
		q.logger.Warn().Err(err).Str("cep", cep).Msg("shipping quote request failed")
		return []model.ShippingOption{}, false
	}

	normalized, err := Normalize(raw)
	if err != nil {
		q.logger.Warn().Err(err).Str("cep", cep).Msg("unrecognised shipping quote response")
		return []model.ShippingOption{}, false
	}

	for _, opt := range normalized {
		if opt.ConfigMissing() {
			q.logger.Warn().Str("cep", cep).Msg("shipping quote backend not configured")
			return []model.ShippingOption{}, true
		}
	}
	return normalized, false
}
