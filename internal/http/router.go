package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pescaderia-backend/internal/handlers"
)

func NewRouter(
	productHandler *handlers.ProductHandler,
	dispatchHandler *handlers.DispatchHandler,
	purchaseHandler *handlers.PurchaseHandler,
	ledgerHandler *handlers.LedgerHandler,
	saleHandler *handlers.SaleHandler,
	reportHandler *handlers.ReportHandler,
	insightHandler *handlers.InsightHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Catalog
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.HandleFunc("", productHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("/{id}", productHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}/price", productHandler.UpdatePrice).Methods("PUT")
	productsAPI.HandleFunc("/{id}/stock", productHandler.AdjustStock).Methods("POST")

	// Dispatch workflow. Draft routes come before /{id} so "draft" is never
	// read as a dispatch id.
	dispatchesAPI := r.PathPrefix("/api/dispatches").Subrouter()
	dispatchesAPI.HandleFunc("/draft", dispatchHandler.GetDraft).Methods("GET")
	dispatchesAPI.HandleFunc("/draft", dispatchHandler.ReplaceDraft).Methods("PUT")
	dispatchesAPI.HandleFunc("/draft/cells", dispatchHandler.SetDraftCell).Methods("POST")
	dispatchesAPI.HandleFunc("", dispatchHandler.CommitDraft).Methods("POST")
	dispatchesAPI.HandleFunc("", dispatchHandler.ListDispatches).Methods("GET")
	dispatchesAPI.HandleFunc("/{id}", dispatchHandler.GetDispatch).Methods("GET")
	dispatchesAPI.HandleFunc("/{id}/returns", dispatchHandler.ApplyReturn).Methods("POST")
	dispatchesAPI.HandleFunc("/{id}/close-data/{field}", dispatchHandler.SetCloseField).Methods("PUT")
	dispatchesAPI.HandleFunc("/{id}/settlement", dispatchHandler.GetSettlement).Methods("GET")
	dispatchesAPI.HandleFunc("/{id}/close", dispatchHandler.CloseDispatch).Methods("POST")
	dispatchesAPI.HandleFunc("/{id}/report.pdf", dispatchHandler.SettlementPDF).Methods("GET")

	// Purchases
	purchasesAPI := r.PathPrefix("/api/purchases").Subrouter()
	purchasesAPI.HandleFunc("", purchaseHandler.CreatePurchase).Methods("POST")
	purchasesAPI.HandleFunc("", purchaseHandler.ListPurchases).Methods("GET")

	// Ledger
	ledgerAPI := r.PathPrefix("/api/ledger").Subrouter()
	ledgerAPI.HandleFunc("", ledgerHandler.ListTransactions).Methods("GET")
	ledgerAPI.HandleFunc("/summary", ledgerHandler.GetSummary).Methods("GET")
	ledgerAPI.HandleFunc("/export.csv", ledgerHandler.ExportCSV).Methods("GET")

	// Counter sales
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.HandleFunc("", saleHandler.CreateSale).Methods("POST")
	salesAPI.HandleFunc("", saleHandler.ListSales).Methods("GET")
	salesAPI.HandleFunc("/by-hour", saleHandler.SalesByHour).Methods("GET")

	// Dashboard and insights
	r.HandleFunc("/api/dashboard", reportHandler.GetDashboard).Methods("GET")
	r.HandleFunc("/api/insights", insightHandler.GetInsights).Methods("GET")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
