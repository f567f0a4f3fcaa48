package models

import "time"

// Product represents one sellable species in the base inventory
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PricePerKg  float64    `json:"price_per_kg"`
	StockKg     float64    `json:"stock_kg"`
	Category    string     `json:"category,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// UpdatePriceRequest overwrites a product's suggested price. The raw value
// comes straight from a form field: anything that does not parse counts as 0.
type UpdatePriceRequest struct {
	Price string `json:"price"`
}

// AdjustStockRequest moves cold-room stock by a signed delta in kilograms.
// The resulting stock is clamped at zero.
type AdjustStockRequest struct {
	DeltaKg float64 `json:"delta_kg"`
}
