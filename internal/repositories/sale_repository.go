package repositories

import (
	"time"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/store"
)

type SaleRepository struct {
	Store *store.Store
}

func NewSaleRepository(s *store.Store) *SaleRepository {
	return &SaleRepository{Store: s}
}

// Create commits a counter sale: price each line at the current catalog
// price, decrement stock, record the sale and its income ledger entry. All
// of it happens under one lock acquisition so the cart prices and the stock
// decrement cannot interleave with catalog edits.
func (r *SaleRepository) Create(items []models.CreateSaleItem, paymentMethod string) (*models.Sale, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	byID := make(map[string]*models.Product, len(r.Store.Products))
	for _, p := range r.Store.Products {
		byID[p.ID] = p
	}

	now := time.Now()
	sale := &models.Sale{
		ID:            store.NewID(),
		Timestamp:     now,
		PaymentMethod: paymentMethod,
	}
	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, models.ErrProductNotFound
		}
		line := models.SaleItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			QuantityKg:  it.QuantityKg,
			PriceAtSale: p.PricePerKg,
		}
		sale.Items = append(sale.Items, line)
		sale.TotalAmount += line.QuantityKg * line.PriceAtSale
	}

	// Stock moves only after every line resolved to a product.
	for _, it := range items {
		p := byID[it.ProductID]
		p.StockKg -= it.QuantityKg
		if p.StockKg < 0 {
			p.StockKg = 0
		}
		p.LastUpdated = &now
	}

	tx := &models.Transaction{
		ID:          store.NewID(),
		Type:        models.TransactionIncome,
		Description: "Venta mostrador",
		Amount:      sale.TotalAmount,
		Timestamp:   now,
	}

	r.Store.Sales = append([]*models.Sale{sale}, r.Store.Sales...)
	r.Store.Transactions = append([]*models.Transaction{tx}, r.Store.Transactions...)

	cp := *sale
	cp.Items = make([]models.SaleItem, len(sale.Items))
	copy(cp.Items, sale.Items)
	return &cp, nil
}

// List returns counter sales newest first.
func (r *SaleRepository) List() []*models.Sale {
	r.Store.RLock()
	defer r.Store.RUnlock()

	out := make([]*models.Sale, 0, len(r.Store.Sales))
	for _, s := range r.Store.Sales {
		cp := *s
		cp.Items = make([]models.SaleItem, len(s.Items))
		copy(cp.Items, s.Items)
		out = append(out, &cp)
	}
	return out
}
