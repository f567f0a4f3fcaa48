package services

import (
	"errors"
	"testing"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
)

func TestRecordPurchase(t *testing.T) {
	st := newTestStore()
	svc := NewPurchaseService(repositories.NewPurchaseRepository(st))

	purchase, err := svc.RecordPurchase(&models.CreatePurchaseRequest{
		Provider:   "Lancha San Rafael",
		ProductID:  "p-0",
		QuantityKg: 120,
		TotalCost:  420,
	})
	if err != nil {
		t.Fatalf("RecordPurchase error: %v", err)
	}
	if purchase.ProductName != "ANCHOA" {
		t.Fatalf("product name should be resolved from the catalog, got %q", purchase.ProductName)
	}
	if purchase.ID == "" || purchase.Timestamp.IsZero() {
		t.Fatalf("purchase not stamped: %+v", purchase)
	}

	// Stock went up
	p, err := repositories.NewProductRepository(st).GetByID("p-0")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if p.StockKg != 620 {
		t.Fatalf("expected stock 620, got %v", p.StockKg)
	}

	// One expense ledger entry
	txs := repositories.NewTransactionRepository(st).List(models.TransactionExpense)
	if len(txs) != 1 {
		t.Fatalf("expected 1 expense entry, got %d", len(txs))
	}
	if txs[0].Description != "Compra: ANCHOA" || txs[0].Amount != 420 {
		t.Fatalf("unexpected ledger entry: %+v", txs[0])
	}
}

func TestRecordPurchase_Validation(t *testing.T) {
	st := newTestStore()
	svc := NewPurchaseService(repositories.NewPurchaseRepository(st))

	cases := []struct {
		name     string
		req      models.CreatePurchaseRequest
		expected error
	}{
		{
			"missing provider",
			models.CreatePurchaseRequest{ProductID: "p-0", QuantityKg: 1, TotalCost: 1},
			models.ErrMissingProvider,
		},
		{
			"zero quantity",
			models.CreatePurchaseRequest{Provider: "x", ProductID: "p-0", QuantityKg: 0, TotalCost: 1},
			models.ErrNonPositiveQuantity,
		},
		{
			"negative cost",
			models.CreatePurchaseRequest{Provider: "x", ProductID: "p-0", QuantityKg: 1, TotalCost: -5},
			models.ErrNonPositiveCost,
		},
		{
			"unknown product",
			models.CreatePurchaseRequest{Provider: "x", ProductID: "p-999", QuantityKg: 1, TotalCost: 1},
			models.ErrProductNotFound,
		},
	}
	for _, tc := range cases {
		if _, err := svc.RecordPurchase(&tc.req); !errors.Is(err, tc.expected) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.expected, err)
		}
	}

	// Nothing was committed
	if len(svc.ListPurchases()) != 0 {
		t.Fatal("rejected purchases must not be stored")
	}
	if repositories.NewTransactionRepository(st).Summary().EntryCount != 0 {
		t.Fatal("rejected purchases must not touch the ledger")
	}
}
