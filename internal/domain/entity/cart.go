package entity

// CartItem is one line in the shopping cart: a product, the pharmacy that
// sells it, and the requested quantity. The cart holds at most one line item
// per product identifier, and quantity is always >= 1.
type CartItem struct {
	ProductID    string `json:"productId"`    // Product identifier, unique within the cart.
	Name         string `json:"name"`         // Display name of the product.
	Category     string `json:"category"`     // Product type label, e.g. "Analgésique".
	PriceCents   int64  `json:"priceCents"`   // Unit price in euro cents. Integer minor units avoid float drift on sums.
	Quantity     int    `json:"quantity"`     // Requested quantity, always >= 1.
	PharmacyID   string `json:"pharmacyId"`   // Pharmacy the product is sourced from.
	PharmacyName string `json:"pharmacyName"` // Display name of that pharmacy.
}

// Subtotal returns the line total in cents.
func (i *CartItem) Subtotal() int64 {
	return i.PriceCents * int64(i.Quantity)
}
