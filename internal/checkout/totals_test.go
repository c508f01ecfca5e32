package checkout

import (
	"testing"

	"atelie-store/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	items := []model.CartItem{
		{ID: "prod-1", Price: 50.00, Quantity: 2},
	}
	shipping := &model.ShippingOption{Provider: "PAC", Price: 20.00, Days: 5}

	tests := []struct {
		name          string
		items         []model.CartItem
		shipping      *model.ShippingOption
		coupon        *model.Coupon
		paymentMethod string
		expected      Totals
	}{
		{
			name:          "Card payment with shipping and no coupon",
			items:         items,
			shipping:      shipping,
			paymentMethod: model.PaymentCard,
			expected: Totals{
				Subtotal: 100.00,
				Shipping: 20.00,
				Total:    120.00,
			},
		},
		{
			name:          "Pix payment discounts five percent of the subtotal",
			items:         items,
			shipping:      shipping,
			paymentMethod: model.PaymentPix,
			expected: Totals{
				Subtotal:    100.00,
				Shipping:    20.00,
				PixDiscount: 5.00,
				Total:       115.00,
			},
		},
		{
			name:          "Percentage coupon discounts the subtotal only",
			items:         items,
			shipping:      shipping,
			coupon:        &model.Coupon{Code: "AXE10", Type: model.DiscountPercentage, Value: 10},
			paymentMethod: model.PaymentCard,
			expected: Totals{
				Subtotal: 100.00,
				Shipping: 20.00,
				Discount: 10.00,
				Total:    110.00,
			},
		},
		{
			name:          "Fixed coupon subtracts its face value",
			items:         items,
			shipping:      shipping,
			coupon:        &model.Coupon{Code: "BEMVINDO15", Type: model.DiscountFixed, Value: 15},
			paymentMethod: model.PaymentCard,
			expected: Totals{
				Subtotal: 100.00,
				Shipping: 20.00,
				Discount: 15.00,
				Total:    105.00,
			},
		},
		{
			name:          "Fixed coupon is not clamped to the subtotal",
			items:         []model.CartItem{{ID: "prod-1", Price: 10.00, Quantity: 1}},
			coupon:        &model.Coupon{Code: "GRANDE50", Type: model.DiscountFixed, Value: 50},
			paymentMethod: model.PaymentCard,
			expected: Totals{
				Subtotal: 10.00,
				Discount: 50.00,
				Total:    -40.00,
			},
		},
		{
			name:          "Coupon and pix discounts stack additively",
			items:         items,
			shipping:      shipping,
			coupon:        &model.Coupon{Code: "AXE10", Type: model.DiscountPercentage, Value: 10},
			paymentMethod: model.PaymentPix,
			expected: Totals{
				Subtotal:    100.00,
				Shipping:    20.00,
				Discount:    10.00,
				PixDiscount: 5.00,
				Total:       105.00,
			},
		},
		{
			name:          "No shipping selected contributes zero",
			items:         items,
			paymentMethod: model.PaymentCard,
			expected: Totals{
				Subtotal: 100.00,
				Total:    100.00,
			},
		},
		{
			name:          "Unknown coupon type contributes no discount",
			items:         items,
			coupon:        &model.Coupon{Code: "RARO", Type: "BOGOF", Value: 10},
			paymentMethod: model.PaymentCard,
			expected: Totals{
				Subtotal: 100.00,
				Total:    100.00,
			},
		},
		{
			name:          "Empty cart totals to zero",
			items:         nil,
			paymentMethod: model.PaymentCard,
			expected:      Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items, tt.shipping, tt.coupon, tt.paymentMethod)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeTotalsWith(t *testing.T) {
	items := []model.CartItem{{ID: "prod-1", Price: 200.00, Quantity: 1}}

	got := ComputeTotalsWith(items, nil, nil, model.PaymentPix, 10)

	assert.Equal(t, 20.00, got.PixDiscount)
	assert.Equal(t, 180.00, got.Total)
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := []model.CartItem{
		{ID: "prod-1", Price: 33.33, Quantity: 3},
		{ID: "prod-2", Price: 9.90, Quantity: 2},
	}
	shipping := &model.ShippingOption{Provider: "SEDEX", Price: 28.00}
	coupon := &model.Coupon{Code: "AXE10", Type: model.DiscountPercentage, Value: 10}

	first := ComputeTotals(items, shipping, coupon, model.PaymentPix)
	second := ComputeTotals(items, shipping, coupon, model.PaymentPix)

	assert.Equal(t, first, second)
}
