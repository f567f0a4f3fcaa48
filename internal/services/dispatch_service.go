package services

import (
	"fmt"
	"time"

	"pescaderia-backend/internal/metrics"
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/store"
)

type DispatchService struct {
	Repo        *repositories.DispatchRepository
	ProductRepo *repositories.ProductRepository
	DefaultRate float64
}

func NewDispatchService(repo *repositories.DispatchRepository, productRepo *repositories.ProductRepository, defaultRate float64) *DispatchService {
	return &DispatchService{Repo: repo, ProductRepo: productRepo, DefaultRate: defaultRate}
}

func (s *DispatchService) ListDispatches() []*models.Dispatch {
	return s.Repo.List()
}

func (s *DispatchService) GetDispatch(id string) (*models.Dispatch, error) {
	return s.Repo.GetByID(id)
}

func (s *DispatchService) GetDraft() models.DispatchDraft {
	return s.Repo.GetDraft()
}

func (s *DispatchService) ReplaceDraft(draft models.DispatchDraft) models.DispatchDraft {
	return s.Repo.ReplaceDraft(draft)
}

func (s *DispatchService) SetDraftCell(req *models.SetDraftCellRequest) models.DispatchDraft {
	return s.Repo.SetDraftCell(req.ProductID, req.Destination, req.Value)
}

// CommitDraft turns the working grid into one dispatch per destination that
// has at least one positive weight, snapshots catalog prices into the lines,
// posts one income ledger entry per dispatch and consumes the committed
// cells; cells typed while the commit runs are kept for the next batch. With no
// positive cell anywhere it returns ErrNothingToSave and leaves the grid
// untouched.
func (s *DispatchService) CommitDraft() ([]*models.Dispatch, error) {
	draft := s.Repo.GetDraft()
	products := s.ProductRepo.List()

	now := time.Now()
	var dispatches []*models.Dispatch
	for destIdx, destination := range draft.Destinations {
		var items []models.DispatchItem
		for _, p := range products {
			qty := models.ParseAmount(draft.Cell(p.ID, destIdx))
			if qty <= 0 {
				continue
			}
			items = append(items, models.DispatchItem{
				ProductID:       p.ID,
				ProductName:     p.Name,
				QuantityKg:      qty,
				PriceAtDispatch: p.PricePerKg,
				TotalKg:         qty,
				TotalAmount:     qty * p.PricePerKg,
			})
		}
		if len(items) == 0 {
			continue
		}
		d := &models.Dispatch{
			ID:        store.NewID(),
			Recipient: fmt.Sprintf("%s - %s", draft.BatchName, destination),
			Timestamp: now,
			Items:     items,
		}
		d.RecomputeTotals()
		dispatches = append(dispatches, d)
	}

	if len(dispatches) == 0 {
		return nil, models.ErrNothingToSave
	}

	s.Repo.CommitBatch(dispatches, draft)
	metrics.DispatchesCreated.Add(float64(len(dispatches)))
	return dispatches, nil
}

// ApplyReturn records returned weight on one line of an open dispatch. The
// raw weight parses leniently: junk input counts as 0, which clears a
// previously recorded return.
func (s *DispatchService) ApplyReturn(dispatchID string, req *models.ApplyReturnRequest) (*models.Dispatch, error) {
	returned := models.ParseAmount(req.ReturnedKg)
	if returned < 0 {
		returned = 0
	}
	return s.Repo.ApplyReturn(dispatchID, req.ProductID, returned)
}

// SetCloseField writes one cash figure on an open dispatch's settlement
// sheet.
func (s *DispatchService) SetCloseField(dispatchID, field, rawValue string) (*models.Dispatch, error) {
	return s.Repo.SetCloseField(dispatchID, field, models.ParseAmount(rawValue), s.DefaultRate)
}

// Settlement computes the cash reconciliation for a dispatch.
func (s *DispatchService) Settlement(dispatchID string) (models.Settlement, error) {
	d, err := s.Repo.GetByID(dispatchID)
	if err != nil {
		return models.Settlement{}, err
	}
	return d.Settle(), nil
}

// Close marks a dispatch settled and frozen.
func (s *DispatchService) Close(dispatchID string) (*models.Dispatch, error) {
	d, err := s.Repo.Close(dispatchID, s.DefaultRate)
	if err != nil {
		return nil, err
	}
	metrics.DispatchesClosed.Inc()
	return d, nil
}
