package services

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"pescaderia-backend/internal/metrics"
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/timeutil"
)

type SalesService struct {
	Repo     *repositories.SaleRepository
	Validate *validator.Validate
}

func NewSalesService(repo *repositories.SaleRepository) *SalesService {
	return &SalesService{Repo: repo, Validate: validator.New()}
}

// Checkout commits a counter sale at current catalog prices.
func (s *SalesService) Checkout(req *models.CreateSaleRequest) (*models.Sale, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, mapSaleValidation(err)
	}

	sale, err := s.Repo.Create(req.Items, req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	metrics.SalesRecorded.Inc()
	return sale, nil
}

func (s *SalesService) ListSales() []*models.Sale {
	return s.Repo.List()
}

// SalesByHour buckets counter sales by the local market hour they happened
// in. Hours without sales are omitted.
func (s *SalesService) SalesByHour() []models.HourlySales {
	sales := s.Repo.List()

	byHour := make(map[int]*models.HourlySales)
	for _, sale := range sales {
		hour := timeutil.In(sale.Timestamp).Hour()
		bucket := byHour[hour]
		if bucket == nil {
			bucket = &models.HourlySales{Hour: hour}
			byHour[hour] = bucket
		}
		bucket.SaleCount++
		bucket.TotalAmount += sale.TotalAmount
	}

	out := make([]models.HourlySales, 0, len(byHour))
	for _, b := range byHour {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

func mapSaleValidation(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range errs {
		switch fe.Field() {
		case "Items":
			return models.ErrEmptyCart
		case "ProductID":
			return models.ErrProductNotFound
		case "QuantityKg":
			return models.ErrNonPositiveQuantity
		}
	}
	return err
}
