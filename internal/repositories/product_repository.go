package repositories

import (
	"sort"
	"strings"
	"time"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/store"
)

type ProductRepository struct {
	Store *store.Store
}

func NewProductRepository(s *store.Store) *ProductRepository {
	return &ProductRepository{Store: s}
}

// List returns the catalog in seed order. Copies are returned so callers
// cannot mutate shared state outside the lock.
func (r *ProductRepository) List() []*models.Product {
	r.Store.RLock()
	defer r.Store.RUnlock()

	out := make([]*models.Product, 0, len(r.Store.Products))
	for _, p := range r.Store.Products {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// Search filters the catalog by a case-insensitive name substring.
func (r *ProductRepository) Search(query string) []*models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List()
	}

	r.Store.RLock()
	defer r.Store.RUnlock()

	var out []*models.Product
	for _, p := range r.Store.Products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	r.Store.RLock()
	defer r.Store.RUnlock()

	p := r.find(id)
	if p == nil {
		return nil, models.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

// UpdatePrice sets the catalog price for a product and stamps LastUpdated.
func (r *ProductRepository) UpdatePrice(id string, price float64) (*models.Product, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, models.ErrProductNotFound
	}
	now := time.Now()
	p.PricePerKg = price
	p.LastUpdated = &now
	cp := *p
	return &cp, nil
}

// AdjustStock applies a signed delta to a product's stock, clamping at zero.
// The read-adjust-write runs under one lock acquisition so concurrent
// adjustments never lose updates.
func (r *ProductRepository) AdjustStock(id string, deltaKg float64) (*models.Product, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, models.ErrProductNotFound
	}
	p.StockKg += deltaKg
	if p.StockKg < 0 {
		p.StockKg = 0
	}
	now := time.Now()
	p.LastUpdated = &now
	cp := *p
	return &cp, nil
}

// LowStock returns products at or below the threshold, lowest first.
func (r *ProductRepository) LowStock(thresholdKg float64) []*models.Product {
	r.Store.RLock()
	defer r.Store.RUnlock()

	var out []*models.Product
	for _, p := range r.Store.Products {
		if p.StockKg <= thresholdKg {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StockKg < out[j].StockKg })
	return out
}

// find must be called with the store lock held.
func (r *ProductRepository) find(id string) *models.Product {
	for _, p := range r.Store.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}
