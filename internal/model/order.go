package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at checkout.
const (
	PaymentPix  = "pix"
	PaymentCard = "card"
)

// Address is a shipping destination.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Complement   string `json:"complement,omitempty"`
}

// OrderDraft aggregates everything the checkout flow collects before
// submission. It is built client-side, submitted once and discarded; the
// cart itself is the only state that survives a reload.
type OrderDraft struct {
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerDocument string          `json:"customerDocument"`
	Items            []CartItem      `json:"items"`
	ShippingAddress  Address         `json:"shippingAddress"`
	Shipping         *ShippingOption `json:"shipping,omitempty"`
	PaymentMethod    string          `json:"paymentMethod"`
	PaymentToken     string          `json:"paymentToken,omitempty"`
	CouponCode       string          `json:"couponCode,omitempty"`
}

// CheckoutRequest is the wire payload for POST /checkout/process.
type CheckoutRequest struct {
	CustomerName     string             `json:"customerName"`
	CustomerEmail    string             `json:"customerEmail"`
	CustomerDocument string             `json:"customerDocument,omitempty"`
	Items            []CheckoutItem     `json:"items"`
	ShippingAddress  Address            `json:"shippingAddress"`
	Shipping         *ShippingSelection `json:"shipping,omitempty"`
	PaymentMethod    string             `json:"paymentMethod"`
	PaymentToken     *string            `json:"paymentToken"`
	CouponCode       *string            `json:"couponCode"`
}

// CheckoutItem references a product line in a checkout request.
type CheckoutItem struct {
	ProductID string  `json:"productId"`
	VariantID *string `json:"variantId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ShippingSelection carries the shipping option chosen at checkout.
type ShippingSelection struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// Order represents a persisted customer order.
type Order struct {
	ID            uuid.UUID `json:"id" db:"id"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	CustomerEmail string    `json:"customerEmail" db:"customer_email"`
	PaymentMethod string    `json:"paymentMethod" db:"payment_method"`
	CouponCode    *string   `json:"couponCode,omitempty" db:"coupon_code"`
	ShippingCost  float64   `json:"shippingCost" db:"shipping_cost"`
	Total         float64   `json:"total" db:"total"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a persisted line item in an order.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"productId" db:"product_id"`
	VariantID string    `json:"variantId" db:"variant_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unitPrice" db:"unit_price"`
}

// OrderConfirmation is the response payload for a processed checkout.
type OrderConfirmation struct {
	ID            uuid.UUID   `json:"id"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"paymentMethod"`
}
