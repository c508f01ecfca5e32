package model

// ConfigMissingProvider is the sentinel provider value the quote backend
// returns when shipping has not been configured for the store. It must be
// treated as "feature misconfigured", not as "no coverage for this address".
const ConfigMissingProvider = "CONFIG_MISSING"

// ShippingOption represents a single normalised shipping quote.
type ShippingOption struct {
	Provider      string  `json:"provider"`
	Price         float64 `json:"price"`
	Days          int     `json:"days"`
	Free          bool    `json:"free,omitempty"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
}

// ConfigMissing reports whether the option is the misconfiguration sentinel.
func (o ShippingOption) ConfigMissing() bool {
	return o.Provider == ConfigMissingProvider
}

// ShippingQuoteRequest is the payload sent to the quote endpoint.
type ShippingQuoteRequest struct {
	CEP      string             `json:"cep"`
	Subtotal float64            `json:"subtotal"`
	Items    []ShippingQuoteRef `json:"items"`
}

// ShippingQuoteRef references a cart line in a quote request.
type ShippingQuoteRef struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
