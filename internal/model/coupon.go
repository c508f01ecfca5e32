package model

import "strings"

// Discount types supported by marketing coupons.
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

// Coupon represents a marketing coupon. Codes are upper-cased by
// convention; Value is a percentage (0-100) for PERCENTAGE coupons and a
// fixed currency amount for FIXED coupons.
type Coupon struct {
	Code       string  `json:"code"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	UsageLimit int     `json:"usageLimit,omitempty"`
	UsageCount int     `json:"usageCount,omitempty"`
	Active     bool    `json:"active"`
}

// NormalizeCouponCode upper-cases and trims a coupon code for lookup.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Exhausted reports whether the coupon has reached its usage limit. A zero
// limit means unlimited use.
func (c Coupon) Exhausted() bool {
	return c.UsageLimit > 0 && c.UsageCount >= c.UsageLimit
}
