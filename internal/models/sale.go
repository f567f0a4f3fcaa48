package models

import "time"

// SaleItem is one line of a counter sale. PriceAtSale is snapshotted from the
// catalog at checkout.
type SaleItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	QuantityKg  float64 `json:"quantity_kg"`
	PriceAtSale float64 `json:"price_at_sale"`
}

// Sale is a direct counter sale, separate from the dispatch workflow.
type Sale struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Items         []SaleItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method"`
}

// CreateSaleItem references a product and the weight sold.
type CreateSaleItem struct {
	ProductID  string  `json:"product_id" validate:"required"`
	QuantityKg float64 `json:"quantity_kg" validate:"gt=0"`
}

// CreateSaleRequest is the checkout cart.
type CreateSaleRequest struct {
	Items         []CreateSaleItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string           `json:"payment_method"`
}

// HourlySales groups sale counts and amounts by hour of day.
type HourlySales struct {
	Hour        int     `json:"hour"`
	SaleCount   int     `json:"sale_count"`
	TotalAmount float64 `json:"total_amount"`
}
