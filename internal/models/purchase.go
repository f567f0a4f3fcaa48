package models

import "time"

// Purchase records one supplier intake event. Immutable after creation; each
// purchase emits one expense transaction in the ledger.
type Purchase struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	ProductName string    `json:"product_name"`
	QuantityKg  float64   `json:"quantity_kg"`
	TotalCost   float64   `json:"total_cost"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreatePurchaseRequest is the intake form: supplier (boat or dealer), the
// species received, weight and total cost.
type CreatePurchaseRequest struct {
	Provider   string  `json:"provider" validate:"required"`
	ProductID  string  `json:"product_id" validate:"required"`
	QuantityKg float64 `json:"quantity_kg" validate:"gt=0"`
	TotalCost  float64 `json:"total_cost" validate:"gt=0"`
}
