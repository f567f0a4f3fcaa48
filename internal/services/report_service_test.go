package services

import (
	"bytes"
	"strings"
	"testing"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/store"
)

func newReportService(st *store.Store) *ReportService {
	return NewReportService(
		repositories.NewProductRepository(st),
		repositories.NewDispatchRepository(st),
		repositories.NewPurchaseRepository(st),
		repositories.NewTransactionRepository(st),
		repositories.NewSaleRepository(st),
		50,
	)
}

func TestDashboard(t *testing.T) {
	st := newTestStore()
	reports := newReportService(st)

	purchases := NewPurchaseService(repositories.NewPurchaseRepository(st))
	if _, err := purchases.RecordPurchase(&models.CreatePurchaseRequest{
		Provider: "Lancha", ProductID: "p-0", QuantityKg: 100, TotalCost: 420,
	}); err != nil {
		t.Fatalf("RecordPurchase error: %v", err)
	}

	dispatchSvc := newDispatchService(st)
	dispatchSvc.SetDraftCell(&models.SetDraftCellRequest{ProductID: "p-0", Destination: 0, Value: "20"})
	dispatches, err := dispatchSvc.CommitDraft()
	if err != nil {
		t.Fatalf("CommitDraft error: %v", err)
	}

	summary := reports.Dashboard()
	if summary.TotalIncome != 110 || summary.TotalExpense != 420 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.Balance != -310 {
		t.Fatalf("expected balance -310, got %v", summary.Balance)
	}
	if summary.DispatchCount != 1 || summary.OpenDispatches != 1 {
		t.Fatalf("unexpected dispatch counts: %+v", summary)
	}
	if summary.PurchaseCount != 1 {
		t.Fatalf("expected 1 purchase, got %d", summary.PurchaseCount)
	}

	if _, err := dispatchSvc.Close(dispatches[0].ID); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if reports.Dashboard().OpenDispatches != 0 {
		t.Fatal("closed dispatch still counted as open")
	}
}

func TestGenerateSettlementPDF(t *testing.T) {
	st := newTestStore()
	reports := newReportService(st)

	dispatchSvc := newDispatchService(st)
	dispatchSvc.SetDraftCell(&models.SetDraftCellRequest{ProductID: "p-0", Destination: 0, Value: "20"})
	dispatches, err := dispatchSvc.CommitDraft()
	if err != nil {
		t.Fatalf("CommitDraft error: %v", err)
	}
	if _, err := dispatchSvc.SetCloseField(dispatches[0].ID, "efectivoBs", "35000"); err != nil {
		t.Fatalf("SetCloseField error: %v", err)
	}

	pdf, err := reports.GenerateSettlementPDF(dispatches[0].ID)
	if err != nil {
		t.Fatalf("GenerateSettlementPDF error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", pdf[:8])
	}

	if _, err := reports.GenerateSettlementPDF("missing"); err == nil {
		t.Fatal("expected error for unknown dispatch")
	}
}

func TestLedgerExportCSV(t *testing.T) {
	st := newTestStore()
	ledger := NewLedgerService(repositories.NewTransactionRepository(st))

	purchases := NewPurchaseService(repositories.NewPurchaseRepository(st))
	if _, err := purchases.RecordPurchase(&models.CreatePurchaseRequest{
		Provider: "Lancha", ProductID: "p-0", QuantityKg: 10, TotalCost: 42,
	}); err != nil {
		t.Fatalf("RecordPurchase error: %v", err)
	}

	data, err := ledger.ExportCSV()
	if err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ID,Tipo,Descripcion") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Compra: ANCHOA") || !strings.Contains(lines[1], "42.00") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestLedgerSummary(t *testing.T) {
	st := newTestStore()
	ledger := NewLedgerService(repositories.NewTransactionRepository(st))

	sales := NewSalesService(repositories.NewSaleRepository(st))
	if _, err := sales.Checkout(&models.CreateSaleRequest{
		Items: []models.CreateSaleItem{{ProductID: "p-0", QuantityKg: 2}},
	}); err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	purchases := NewPurchaseService(repositories.NewPurchaseRepository(st))
	if _, err := purchases.RecordPurchase(&models.CreatePurchaseRequest{
		Provider: "Lancha", ProductID: "p-1", QuantityKg: 5, TotalCost: 4,
	}); err != nil {
		t.Fatalf("RecordPurchase error: %v", err)
	}

	s := ledger.Summary()
	if s.TotalIncome != 11 || s.TotalExpense != 4 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Balance != 7 || s.EntryCount != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}

	// Type filter
	if got := len(ledger.ListTransactions(models.TransactionIncome)); got != 1 {
		t.Fatalf("expected 1 income entry, got %d", got)
	}
}
