package models

import "time"

// CartItem is one cart line, keyed by (ProductID, VariantID).
// VariantID == nil means the base variant.
type CartItem struct {
	ProductID int  `json:"productId"`
	VariantID *int `json:"variantId,omitempty"`
	Quantity  int  `json:"quantity"`
}

type Variant struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Price *int64 `json:"price,omitempty"` // override, absent = product price
}

type Product struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	SKU      string    `json:"sku,omitempty"`
	Price    int64     `json:"price"`
	Currency string    `json:"currency"`
	Images   []string  `json:"images,omitempty"`
	Variants []Variant `json:"variants,omitempty"`
}

// Order is an immutable snapshot of a successfully submitted cart.
type Order struct {
	ID               int64      `json:"id"`
	Items            []CartItem `json:"items"`
	Total            int64      `json:"total"`
	Currency         string     `json:"currency"`
	LineItemsSummary string     `json:"lineItemsSummary"`
	CreatedAt        time.Time  `json:"createdAt"`
}
