package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"pescaderia-backend/internal/cache"
	"pescaderia-backend/internal/config"
	"pescaderia-backend/internal/handlers"
	"pescaderia-backend/internal/health"
	h "pescaderia-backend/internal/http"
	"pescaderia-backend/internal/insights"
	"pescaderia-backend/internal/middleware"
	"pescaderia-backend/internal/monitoring"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/services"
	"pescaderia-backend/internal/store"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (insights will call the model every time)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Seed the in-memory store with the species catalog
	st := store.New()
	st.Seed(cfg.Catalog.DefaultPricePerKg, cfg.Catalog.DefaultStockKg, cfg.Catalog.Category)
	log.Printf("[Store] Seeded %d products", len(store.Species))

	// Initialize repositories
	productRepo := repositories.NewProductRepository(st)
	dispatchRepo := repositories.NewDispatchRepository(st)
	purchaseRepo := repositories.NewPurchaseRepository(st)
	transactionRepo := repositories.NewTransactionRepository(st)
	saleRepo := repositories.NewSaleRepository(st)

	// Initialize health checker
	healthChecker := health.NewHealthChecker(st)

	// Start monitoring dashboard server in background
	go monitoring.NewMonitoringServer(st, productRepo, cfg.Catalog.LowStockKg, cfg.Monitoring.Port).Start()

	// Initialize services
	catalogService := services.NewCatalogService(productRepo)
	dispatchService := services.NewDispatchService(dispatchRepo, productRepo, cfg.Settlement.DefaultExchangeRate)
	purchaseService := services.NewPurchaseService(purchaseRepo)
	ledgerService := services.NewLedgerService(transactionRepo)
	salesService := services.NewSalesService(saleRepo)
	reportService := services.NewReportService(productRepo, dispatchRepo, purchaseRepo, transactionRepo, saleRepo, cfg.Catalog.LowStockKg)

	geminiClient := insights.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if cfg.Gemini.APIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not set, insights will serve the static fallback list")
	}
	insightService := services.NewInsightService(productRepo, geminiClient)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	dispatchHandler := handlers.NewDispatchHandler(dispatchService, reportService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	saleHandler := handlers.NewSaleHandler(salesService)
	reportHandler := handlers.NewReportHandler(reportService)
	insightHandler := handlers.NewInsightHandler(insightService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		productHandler,
		dispatchHandler,
		purchaseHandler,
		ledgerHandler,
		saleHandler,
		reportHandler,
		insightHandler,
		healthHandler,
	)

	// Wrap with panic recovery, metrics, logging and CORS middleware
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(middleware.APILogging(corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
