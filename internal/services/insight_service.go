package services

import (
	"context"
	"log"

	"pescaderia-backend/internal/cache"
	"pescaderia-backend/internal/insights"
	"pescaderia-backend/internal/metrics"
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
)

type InsightService struct {
	ProductRepo *repositories.ProductRepository
	Client      *insights.Client
}

func NewInsightService(productRepo *repositories.ProductRepository, client *insights.Client) *InsightService {
	return &InsightService{ProductRepo: productRepo, Client: client}
}

// fallbackInsights are served when the model is unreachable, so the panel
// never renders empty.
var fallbackInsights = []models.InventoryInsight{
	{
		Title:       "Verificar Salmón",
		Description: "El stock parece bajo comparado con la demanda semanal.",
		Urgency:     models.UrgencyHigh,
	},
	{
		Title:       "Promoción de Marisco",
		Description: "Considera una oferta de fin de semana para los camarones.",
		Urgency:     models.UrgencyMedium,
	},
}

// InventoryInsights returns strategic recommendations for the current
// catalog. Responses are cached per catalog snapshot; on any model failure
// the static fallback list is returned instead of an error.
func (s *InsightService) InventoryInsights(ctx context.Context) []models.InventoryInsight {
	products := s.ProductRepo.List()

	if cached, ok := cache.GetCachedInsights(ctx, products); ok {
		return cached
	}

	result, err := s.Client.InventoryInsights(products)
	if err != nil {
		log.Printf("[Insights] Falling back to static recommendations: %v", err)
		metrics.InsightFallbacks.Inc()
		return fallbackInsights
	}

	cache.CacheInsights(ctx, products, result)
	return result
}
