package service

import (
	"context"

	"atelie-store/internal/config"
	"atelie-store/internal/model"

	"github.com/rs/zerolog"
)

// Quote is one carrier option in a quote response.
type Quote struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DeliveryTime  int     `json:"delivery_time"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	FreeShipping  bool    `json:"free_shipping,omitempty"`
}

// QuoteEnvelope is the wire shape of a successful quote response.
type QuoteEnvelope struct {
	Options []Quote `json:"options"`
}

// ConfigMissingQuote is the response sent when shipping has not been
// configured for the store. The sentinel provider lets the storefront show
// a maintenance notice instead of "no coverage".
type ConfigMissingQuote struct {
	Provider      string  `json:"provider"`
	ShippingCost  float64 `json:"shippingCost"`
	EstimatedDays int     `json:"estimatedDays"`
}

// shippingService implements ShippingService from the configured carrier
// table.
type shippingService struct {
	cfg    config.ShippingConfig
	logger zerolog.Logger
}

// NewShippingService creates a new shipping quote service.
func NewShippingService(cfg config.ShippingConfig, logger zerolog.Logger) ShippingService {
	return &shippingService{
		cfg:    cfg,
		logger: logger.With().Str("service", "shipping").Logger(),
	}
}

// Quote computes carrier options for a destination.
func (s *shippingService) Quote(_ context.Context, req model.ShippingQuoteRequest) (*QuoteEnvelope, bool) {
	if !s.cfg.Enabled {
		s.logger.Warn().Str("cep", req.CEP).Msg("shipping quote requested but shipping is not configured")
		return nil, true
	}

	free := s.cfg.FreeShippingThreshold > 0 && req.Subtotal >= s.cfg.FreeShippingThreshold

	options := []Quote{
		carrierQuote("PAC", s.cfg.PACPrice, s.cfg.PACDays, free),
		carrierQuote("SEDEX", s.cfg.SedexPrice, s.cfg.SedexDays, free),
	}

	s.logger.Debug().
		Str("cep", req.CEP).
		Float64("subtotal", req.Subtotal).
		Bool("free_shipping", free).
		Msg("shipping quote computed")

	return &QuoteEnvelope{Options: options}, false
}

func carrierQuote(name string, price float64, days int, free bool) Quote {
	q := Quote{
		Name:         name,
		Price:        price,
		DeliveryTime: days,
	}
	if free {
		q.OriginalPrice = price
		q.Price = 0
		q.FreeShipping = true
	}
	return q
}
