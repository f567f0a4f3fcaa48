package services

import (
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
)

type CatalogService struct {
	Repo *repositories.ProductRepository
}

func NewCatalogService(repo *repositories.ProductRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListProducts(query string) []*models.Product {
	if query != "" {
		return s.Repo.Search(query)
	}
	return s.Repo.List()
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.Repo.GetByID(id)
}

// SetPrice updates a catalog price from the raw form value. Non-numeric
// input parses to 0, which is a legal price (free giveaway lines exist on
// promotion days).
func (s *CatalogService) SetPrice(id, rawPrice string) (*models.Product, error) {
	price := models.ParseAmount(rawPrice)
	if price < 0 {
		price = 0
	}
	return s.Repo.UpdatePrice(id, price)
}

func (s *CatalogService) AdjustStock(id string, deltaKg float64) (*models.Product, error) {
	return s.Repo.AdjustStock(id, deltaKg)
}

func (s *CatalogService) LowStock(thresholdKg float64) []*models.Product {
	return s.Repo.LowStock(thresholdKg)
}
