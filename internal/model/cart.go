package model

// User identifies an authenticated storefront session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// CartItem represents a single line in a shopping cart. Name, Image and
// Price are copied from the product at add-time and never re-fetched.
type CartItem struct {
	ID        string  `json:"id"`
	VariantID string  `json:"variantId"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// SameLine reports whether the item occupies the same cart line as the
// given (productID, variantID) pair. An empty variant ID is a distinct,
// stable key of its own.
func (i CartItem) SameLine(productID, variantID string) bool {
	return i.ID == productID && i.VariantID == variantID
}

// Subtotal returns the sum of price times quantity over all items.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
