package repositories

import (
	"time"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/store"
)

type PurchaseRepository struct {
	Store *store.Store
}

func NewPurchaseRepository(s *store.Store) *PurchaseRepository {
	return &PurchaseRepository{Store: s}
}

// Create records a supplier intake, its expense ledger entry and the stock
// increase in one step under the store lock.
func (r *PurchaseRepository) Create(productID, provider string, quantityKg, totalCost float64) (*models.Purchase, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	var product *models.Product
	for _, p := range r.Store.Products {
		if p.ID == productID {
			product = p
			break
		}
	}
	if product == nil {
		return nil, models.ErrProductNotFound
	}

	now := time.Now()
	purchase := &models.Purchase{
		ID:          store.NewID(),
		Provider:    provider,
		ProductName: product.Name,
		QuantityKg:  quantityKg,
		TotalCost:   totalCost,
		Timestamp:   now,
	}
	tx := &models.Transaction{
		ID:          store.NewID(),
		Type:        models.TransactionExpense,
		Description: "Compra: " + product.Name,
		Amount:      totalCost,
		Timestamp:   now,
	}

	product.StockKg += quantityKg
	product.LastUpdated = &now

	r.Store.Purchases = append([]*models.Purchase{purchase}, r.Store.Purchases...)
	r.Store.Transactions = append([]*models.Transaction{tx}, r.Store.Transactions...)

	cp := *purchase
	return &cp, nil
}

// List returns purchases newest first.
func (r *PurchaseRepository) List() []*models.Purchase {
	r.Store.RLock()
	defer r.Store.RUnlock()

	out := make([]*models.Purchase, 0, len(r.Store.Purchases))
	for _, p := range r.Store.Purchases {
		cp := *p
		out = append(out, &cp)
	}
	return out
}
