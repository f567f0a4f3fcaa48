package models

import "time"

// DispatchItem is one line of an outbound dispatch. PriceAtDispatch is a
// snapshot of the catalog price taken when the batch is saved; later catalog
// price edits never touch it.
type DispatchItem struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	QuantityKg      float64 `json:"quantity_kg"`
	ReturnedKg      float64 `json:"returned_kg"`
	PriceAtDispatch float64 `json:"price_at_dispatch"`
	TotalKg         float64 `json:"total_kg"`
	TotalAmount     float64 `json:"total_amount"`
}

// ApplyReturn records the returned weight and recomputes the derived fields.
// A return larger than the dispatched weight floors the net weight at zero.
func (it *DispatchItem) ApplyReturn(returnedKg float64) {
	it.ReturnedKg = returnedKg
	net := it.QuantityKg - returnedKg
	if net < 0 {
		net = 0
	}
	it.TotalKg = net
	it.TotalAmount = net * it.PriceAtDispatch
}

// Dispatch is an outbound shipment of mixed product weights to one store,
// tracked until its end-of-day settlement.
type Dispatch struct {
	ID          string         `json:"id"`
	Recipient   string         `json:"recipient"`
	Timestamp   time.Time      `json:"timestamp"`
	Items       []DispatchItem `json:"items"`
	TotalKg     float64        `json:"total_kg"`
	TotalAmount float64        `json:"total_amount"`
	CloseData   *CloseData     `json:"close_data,omitempty"`
	Closed      bool           `json:"closed"`
	ClosedAt    *time.Time     `json:"closed_at,omitempty"`
}

// RecomputeTotals resets the aggregates to the sum over the current items.
// The aggregates are derived values and are never edited independently.
func (d *Dispatch) RecomputeTotals() {
	var kg, amount float64
	for _, it := range d.Items {
		kg += it.TotalKg
		amount += it.TotalAmount
	}
	d.TotalKg = kg
	d.TotalAmount = amount
}

// Item returns the line for a product id, or nil when the dispatch has none.
func (d *Dispatch) Item(productID string) *DispatchItem {
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			return &d.Items[i]
		}
	}
	return nil
}

// Settle computes the cash reconciliation for this dispatch. Without close
// figures every settlement field is zero, matching the capture screen before
// any cash data is entered.
func (d *Dispatch) Settle() Settlement {
	if d.CloseData == nil {
		return Settlement{ExpectedUsd: d.TotalAmount}
	}
	c := d.CloseData
	incomeBs := c.TotalIncomeBs()
	expenseBs := c.TotalExpenseBs()
	rate := c.TasaCambio
	if rate == 0 {
		rate = 1
	}
	received := (incomeBs - expenseBs) / rate
	return Settlement{
		TotalIncomeBs:  incomeBs,
		TotalExpenseBs: expenseBs,
		ExchangeRate:   rate,
		ReceivedUsd:    received,
		ExpectedUsd:    d.TotalAmount,
		Difference:     received - d.TotalAmount,
	}
}

// Settlement is the reconciliation of expected sales against cash collected.
// Difference is signed: positive means the store handed in more than the net
// sales figure, negative means a shortfall.
type Settlement struct {
	TotalIncomeBs  float64 `json:"total_income_bs"`
	TotalExpenseBs float64 `json:"total_expense_bs"`
	ExchangeRate   float64 `json:"exchange_rate"`
	ReceivedUsd    float64 `json:"received_usd"`
	ExpectedUsd    float64 `json:"expected_usd"`
	Difference     float64 `json:"difference"`
}

// ApplyReturnRequest sets the returned weight for one line of a dispatch.
// ReturnedKg is the raw form value; non-numeric input counts as 0.
type ApplyReturnRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	ReturnedKg string `json:"returned_kg"`
}

// SetCloseFieldRequest writes one cash figure on a dispatch.
type SetCloseFieldRequest struct {
	Value string `json:"value"`
}
