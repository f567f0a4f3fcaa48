package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"pescaderia-backend/internal/health"
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/services"
	"pescaderia-backend/internal/store"
)

// newTestRouter wires the full API surface against a fresh seeded store.
// The router is rebuilt here instead of importing internal/http to avoid an
// import cycle with the handlers package.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	st := store.New()
	st.Seed(5.5, 500, "Pescado Fresco")

	productRepo := repositories.NewProductRepository(st)
	dispatchRepo := repositories.NewDispatchRepository(st)
	purchaseRepo := repositories.NewPurchaseRepository(st)
	transactionRepo := repositories.NewTransactionRepository(st)
	saleRepo := repositories.NewSaleRepository(st)

	catalogService := services.NewCatalogService(productRepo)
	dispatchService := services.NewDispatchService(dispatchRepo, productRepo, 350)
	purchaseService := services.NewPurchaseService(purchaseRepo)
	ledgerService := services.NewLedgerService(transactionRepo)
	salesService := services.NewSalesService(saleRepo)
	reportService := services.NewReportService(productRepo, dispatchRepo, purchaseRepo, transactionRepo, saleRepo, 50)

	productHandler := NewProductHandler(catalogService)
	dispatchHandler := NewDispatchHandler(dispatchService, reportService)
	purchaseHandler := NewPurchaseHandler(purchaseService)
	ledgerHandler := NewLedgerHandler(ledgerService)
	saleHandler := NewSaleHandler(salesService)
	reportHandler := NewReportHandler(reportService)
	healthHandler := NewHealthHandler(health.NewHealthChecker(st))

	r := mux.NewRouter()
	r.HandleFunc("/api/products", productHandler.ListProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", productHandler.GetProduct).Methods("GET")
	r.HandleFunc("/api/products/{id}/price", productHandler.UpdatePrice).Methods("PUT")
	r.HandleFunc("/api/products/{id}/stock", productHandler.AdjustStock).Methods("POST")
	r.HandleFunc("/api/dispatches/draft", dispatchHandler.GetDraft).Methods("GET")
	r.HandleFunc("/api/dispatches/draft", dispatchHandler.ReplaceDraft).Methods("PUT")
	r.HandleFunc("/api/dispatches/draft/cells", dispatchHandler.SetDraftCell).Methods("POST")
	r.HandleFunc("/api/dispatches", dispatchHandler.CommitDraft).Methods("POST")
	r.HandleFunc("/api/dispatches", dispatchHandler.ListDispatches).Methods("GET")
	r.HandleFunc("/api/dispatches/{id}", dispatchHandler.GetDispatch).Methods("GET")
	r.HandleFunc("/api/dispatches/{id}/returns", dispatchHandler.ApplyReturn).Methods("POST")
	r.HandleFunc("/api/dispatches/{id}/close-data/{field}", dispatchHandler.SetCloseField).Methods("PUT")
	r.HandleFunc("/api/dispatches/{id}/settlement", dispatchHandler.GetSettlement).Methods("GET")
	r.HandleFunc("/api/dispatches/{id}/close", dispatchHandler.CloseDispatch).Methods("POST")
	r.HandleFunc("/api/dispatches/{id}/report.pdf", dispatchHandler.SettlementPDF).Methods("GET")
	r.HandleFunc("/api/purchases", purchaseHandler.CreatePurchase).Methods("POST")
	r.HandleFunc("/api/purchases", purchaseHandler.ListPurchases).Methods("GET")
	r.HandleFunc("/api/ledger", ledgerHandler.ListTransactions).Methods("GET")
	r.HandleFunc("/api/ledger/summary", ledgerHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/ledger/export.csv", ledgerHandler.ExportCSV).Methods("GET")
	r.HandleFunc("/api/sales", saleHandler.CreateSale).Methods("POST")
	r.HandleFunc("/api/dashboard", reportHandler.GetDashboard).Methods("GET")
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	return r
}

func do(t *testing.T, r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDispatchDayFlow(t *testing.T) {
	r := newTestRouter(t)

	// Fill one cell and commit
	w := do(t, r, "POST", "/api/dispatches/draft/cells", map[string]interface{}{
		"product_id": "p-0", "destination": 0, "value": "20",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set cell: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, "POST", "/api/dispatches", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("commit: %d %s", w.Code, w.Body.String())
	}
	var dispatches []models.Dispatch
	if err := json.Unmarshal(w.Body.Bytes(), &dispatches); err != nil {
		t.Fatalf("decode commit response: %v", err)
	}
	if len(dispatches) != 1 || dispatches[0].TotalAmount != 110 {
		t.Fatalf("unexpected commit response: %+v", dispatches)
	}
	id := dispatches[0].ID

	// Return 5 kg
	w = do(t, r, "POST", "/api/dispatches/"+id+"/returns", map[string]string{
		"product_id": "p-0", "returned_kg": "5",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("return: %d %s", w.Code, w.Body.String())
	}

	// Record cash and close
	w = do(t, r, "PUT", "/api/dispatches/"+id+"/close-data/efectivoBs", map[string]string{"value": "35000"})
	if w.Code != http.StatusOK {
		t.Fatalf("close field: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, "GET", "/api/dispatches/"+id+"/settlement", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("settlement: %d %s", w.Code, w.Body.String())
	}
	var s models.Settlement
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode settlement: %v", err)
	}
	if s.ExpectedUsd != 82.5 {
		t.Fatalf("expected 82.5 after return, got %v", s.ExpectedUsd)
	}

	w = do(t, r, "POST", "/api/dispatches/"+id+"/close", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("close: %d %s", w.Code, w.Body.String())
	}

	// Frozen after close
	w = do(t, r, "POST", "/api/dispatches/"+id+"/returns", map[string]string{
		"product_id": "p-0", "returned_kg": "1",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on closed dispatch, got %d", w.Code)
	}

	// PDF renders
	w = do(t, r, "GET", "/api/dispatches/"+id+"/report.pdf", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("pdf: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestStatusMapping(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		method   string
		path     string
		body     interface{}
		expected int
	}{
		{"GET", "/api/products/p-999", nil, http.StatusNotFound},
		{"GET", "/api/dispatches/nope", nil, http.StatusNotFound},
		{"POST", "/api/dispatches", nil, http.StatusUnprocessableEntity},
		{"POST", "/api/purchases", map[string]interface{}{"product_id": "p-0", "quantity_kg": 1.0, "total_cost": 1.0}, http.StatusUnprocessableEntity},
		{"POST", "/api/sales", map[string]interface{}{"items": []interface{}{}}, http.StatusUnprocessableEntity},
		{"GET", "/api/ledger?type=weird", nil, http.StatusBadRequest},
		{"GET", "/health", nil, http.StatusOK},
	}
	for _, tc := range cases {
		w := do(t, r, tc.method, tc.path, tc.body)
		if w.Code != tc.expected {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.expected, w.Code, w.Body.String())
		}
	}
}

func TestPurchaseAndLedgerFlow(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "POST", "/api/purchases", map[string]interface{}{
		"provider": "Lancha San Rafael", "product_id": "p-0", "quantity_kg": 120.0, "total_cost": 420.0,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("purchase: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, "GET", "/api/ledger/summary", nil)
	var summary models.LedgerSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.TotalExpense != 420 || summary.EntryCount != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	// Stock reflects the intake
	w = do(t, r, "GET", "/api/products/p-0", nil)
	var p models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if p.StockKg != 620 {
		t.Fatalf("expected 620 kg, got %v", p.StockKg)
	}

	w = do(t, r, "GET", "/api/ledger/export.csv", nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "text/csv" {
		t.Fatalf("csv export: %d %q", w.Code, w.Header().Get("Content-Type"))
	}
}

func TestPriceUpdateRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "PUT", "/api/products/p-0/price", map[string]string{"price": "7.25"})
	if w.Code != http.StatusOK {
		t.Fatalf("price update: %d %s", w.Code, w.Body.String())
	}
	var p models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode product: %v", err)
	}
	if p.PricePerKg != 7.25 {
		t.Fatalf("expected 7.25, got %v", p.PricePerKg)
	}

	// Search filter
	w = do(t, r, "GET", fmt.Sprintf("/api/products?q=%s", "anchoa"), nil)
	var results []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &results); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(results) != 1 || results[0].ID != "p-0" {
		t.Fatalf("unexpected search results %+v", results)
	}
}
