package services

import (
	"errors"
	"testing"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
)

func TestCheckout(t *testing.T) {
	st := newTestStore()
	svc := NewSalesService(repositories.NewSaleRepository(st))

	sale, err := svc.Checkout(&models.CreateSaleRequest{
		Items: []models.CreateSaleItem{
			{ProductID: "p-21", QuantityKg: 2.5},
			{ProductID: "p-0", QuantityKg: 1},
		},
		PaymentMethod: "efectivo",
	})
	if err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	if sale.TotalAmount != 3.5*5.5 {
		t.Fatalf("expected %v, got %v", 3.5*5.5, sale.TotalAmount)
	}
	if sale.Items[0].ProductName != "DORADO" {
		t.Fatalf("expected DORADO for p-21, got %q", sale.Items[0].ProductName)
	}

	// Stock decremented
	p, _ := repositories.NewProductRepository(st).GetByID("p-21")
	if p.StockKg != 497.5 {
		t.Fatalf("expected 497.5 kg left, got %v", p.StockKg)
	}

	// One income ledger entry for the whole cart
	txs := repositories.NewTransactionRepository(st).List(models.TransactionIncome)
	if len(txs) != 1 {
		t.Fatalf("expected 1 income entry, got %d", len(txs))
	}
	if txs[0].Description != "Venta mostrador" || txs[0].Amount != sale.TotalAmount {
		t.Fatalf("unexpected ledger entry: %+v", txs[0])
	}
}

func TestCheckout_Validation(t *testing.T) {
	st := newTestStore()
	svc := NewSalesService(repositories.NewSaleRepository(st))

	if _, err := svc.Checkout(&models.CreateSaleRequest{}); !errors.Is(err, models.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	req := &models.CreateSaleRequest{Items: []models.CreateSaleItem{{ProductID: "p-0", QuantityKg: 0}}}
	if _, err := svc.Checkout(req); !errors.Is(err, models.ErrNonPositiveQuantity) {
		t.Fatalf("expected ErrNonPositiveQuantity, got %v", err)
	}

	req = &models.CreateSaleRequest{Items: []models.CreateSaleItem{{ProductID: "p-999", QuantityKg: 1}}}
	if _, err := svc.Checkout(req); !errors.Is(err, models.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if len(svc.ListSales()) != 0 {
		t.Fatal("rejected sales must not be stored")
	}
}

func TestSalesByHour(t *testing.T) {
	st := newTestStore()
	svc := NewSalesService(repositories.NewSaleRepository(st))

	for i := 0; i < 3; i++ {
		if _, err := svc.Checkout(&models.CreateSaleRequest{
			Items: []models.CreateSaleItem{{ProductID: "p-0", QuantityKg: 1}},
		}); err != nil {
			t.Fatalf("Checkout error: %v", err)
		}
	}

	buckets := svc.SalesByHour()
	if len(buckets) != 1 {
		t.Fatalf("sales in the same instant should share a bucket, got %d", len(buckets))
	}
	if buckets[0].SaleCount != 3 {
		t.Fatalf("expected 3 sales, got %d", buckets[0].SaleCount)
	}
	if buckets[0].TotalAmount != 3*5.5 {
		t.Fatalf("expected %v, got %v", 3*5.5, buckets[0].TotalAmount)
	}
}
