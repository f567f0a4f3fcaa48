package services

import (
	"github.com/go-playground/validator/v10"

	"pescaderia-backend/internal/metrics"
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
)

type PurchaseService struct {
	Repo     *repositories.PurchaseRepository
	Validate *validator.Validate
}

func NewPurchaseService(repo *repositories.PurchaseRepository) *PurchaseService {
	return &PurchaseService{Repo: repo, Validate: validator.New()}
}

// RecordPurchase validates the intake form and commits the purchase together
// with its expense ledger entry and stock increase.
func (s *PurchaseService) RecordPurchase(req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, mapPurchaseValidation(err)
	}

	purchase, err := s.Repo.Create(req.ProductID, req.Provider, req.QuantityKg, req.TotalCost)
	if err != nil {
		return nil, err
	}
	metrics.PurchasesRecorded.Inc()
	return purchase, nil
}

func (s *PurchaseService) ListPurchases() []*models.Purchase {
	return s.Repo.List()
}

// mapPurchaseValidation translates validator failures into the domain
// sentinels the handlers know how to map to status codes.
func mapPurchaseValidation(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range errs {
		switch fe.Field() {
		case "Provider":
			return models.ErrMissingProvider
		case "ProductID":
			return models.ErrProductNotFound
		case "QuantityKg":
			return models.ErrNonPositiveQuantity
		case "TotalCost":
			return models.ErrNonPositiveCost
		}
	}
	return err
}
