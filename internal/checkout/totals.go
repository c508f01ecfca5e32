package checkout

import "atelie-store/internal/model"

// PixDiscountPercent is the storewide discount applied to the subtotal when
// paying with PIX.
const PixDiscountPercent = 5.0

// Totals breaks down the payable amount for an order draft.
type Totals struct {
	Subtotal    float64
	Shipping    float64
	Discount    float64
	PixDiscount float64
	Total       float64
}

// ComputeTotals derives the order total from the cart contents, the
// selected shipping option, the applied coupon and the payment method. It
// is a pure function: identical inputs always yield identical output.
//
// A FIXED coupon is not clamped to the subtotal, and the PIX discount
// stacks additively with a coupon. Both behaviours are awaiting product
// clarification and are kept as-is deliberately.
func ComputeTotals(items []model.CartItem, shipping *model.ShippingOption, coupon *model.Coupon, paymentMethod string) Totals {
	return ComputeTotalsWith(items, shipping, coupon, paymentMethod, PixDiscountPercent)
}

// ComputeTotalsWith is ComputeTotals with an explicit PIX discount
// percentage, for callers whose rate comes from configuration.
func ComputeTotalsWith(items []model.CartItem, shipping *model.ShippingOption, coupon *model.Coupon, paymentMethod string, pixPercent float64) Totals {
	t := Totals{Subtotal: model.Subtotal(items)}

	if shipping != nil {
		t.Shipping = shipping.Price
	}

	if coupon != nil {
		switch coupon.Type {
		case model.DiscountPercentage:
			t.Discount = t.Subtotal * coupon.Value / 100
		case model.DiscountFixed:
			t.Discount = coupon.Value
		}
	}

	if paymentMethod == model.PaymentPix {
		t.PixDiscount = t.Subtotal * pixPercent / 100
	}

	t.Total = t.Subtotal + t.Shipping - t.Discount - t.PixDiscount
	return t
}
