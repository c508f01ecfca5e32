package shipping

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"atelie-store/internal/model"
)

// The quote backend answers in two shapes. Shape A wraps named options:
//
//	{"options": [{"name", "price", "delivery_time", "original_price", "free_shipping"}]}
//
// Shape B is a bare list (or single object) of carrier quotes:
//
//	[{"provider", "shippingCost", "estimatedDays", "freeShippingApplied"}]
//
// Normalize maps both into []model.ShippingOption, preserving order.

const defaultTransitDays = 5

type shapeAEnvelope struct {
	Options []shapeAOption `json:"options"`
}

type shapeAOption struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DeliveryTime  flexDays `json:"delivery_time"`
	OriginalPrice float64  `json:"original_price"`
	FreeShipping  bool     `json:"free_shipping"`
}

type shapeBOption struct {
	Provider            string   `json:"provider"`
	ShippingCost        float64  `json:"shippingCost"`
	EstimatedDays       flexDays `json:"estimatedDays"`
	FreeShippingApplied bool     `json:"freeShippingApplied"`
}

// flexDays accepts a transit estimate encoded as either a number or a
// numeric string; anything else falls back to the default.
type flexDays int

func (d *flexDays) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` {
		*d = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(trimmed); err == nil {
		trimmed = unquoted
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		*d = 0
		return nil
	}
	*d = flexDays(int(parsed))
	return nil
}

// Normalize decodes a raw quote response into the single option list the
// checkout flow consumes.
func Normalize(raw json.RawMessage) ([]model.ShippingOption, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []model.ShippingOption{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var quotes []shapeBOption
		if err := json.Unmarshal(raw, &quotes); err != nil {
			return nil, fmt.Errorf("failed to decode shipping quotes: %w", err)
		}
		return fromShapeB(quotes), nil
	}

	var envelope shapeAEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode shipping quote envelope: %w", err)
	}
	if envelope.Options != nil {
		options := make([]model.ShippingOption, 0, len(envelope.Options))
		for _, opt := range envelope.Options {
			options = append(options, model.ShippingOption{
				Provider:      opt.Name,
				Price:         opt.Price,
				Days:          int(opt.DeliveryTime),
				OriginalPrice: opt.OriginalPrice,
				Free:          opt.FreeShipping,
			})
		}
		return options, nil
	}

	// Single bare quote object.
	var quote shapeBOption
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, fmt.Errorf("failed to decode shipping quote: %w", err)
	}
	return fromShapeB([]shapeBOption{quote}), nil
}

func fromShapeB(quotes []shapeBOption) []model.ShippingOption {
	options := make([]model.ShippingOption, 0, len(quotes))
	for _, q := range quotes {
		options = append(options, model.ShippingOption{
			Provider: q.Provider,
			Price:    q.ShippingCost,
			Days:     daysOrDefault(q.EstimatedDays),
			Free:     q.FreeShippingApplied,
		})
	}
	return options
}

func daysOrDefault(d flexDays) int {
	if d <= 0 {
		return defaultTransitDays
	}
	return int(d)
}
