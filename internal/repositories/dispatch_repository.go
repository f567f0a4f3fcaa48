package repositories

import (
	"time"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/store"
)

type DispatchRepository struct {
	Store *store.Store
}

func NewDispatchRepository(s *store.Store) *DispatchRepository {
	return &DispatchRepository{Store: s}
}

// List returns dispatches newest first.
func (r *DispatchRepository) List() []*models.Dispatch {
	r.Store.RLock()
	defer r.Store.RUnlock()

	out := make([]*models.Dispatch, 0, len(r.Store.Dispatches))
	for _, d := range r.Store.Dispatches {
		cp := cloneDispatch(d)
		out = append(out, cp)
	}
	return out
}

func (r *DispatchRepository) GetByID(id string) (*models.Dispatch, error) {
	r.Store.RLock()
	defer r.Store.RUnlock()

	d := r.find(id)
	if d == nil {
		return nil, models.ErrDispatchNotFound
	}
	return cloneDispatch(d), nil
}

// CommitBatch prepends the batch's dispatches, appends one income ledger
// entry per dispatch and consumes the grid cells of the snapshot the batch
// was built from, all under one lock so a reader never observes a dispatch
// without its ledger entry or with a stale grid. Only cells still holding
// their snapshot value are cleared; a cell written since the snapshot keeps
// its new value for the next batch.
func (r *DispatchRepository) CommitBatch(dispatches []*models.Dispatch, snapshot models.DispatchDraft) []*models.Transaction {
	r.Store.Lock()
	defer r.Store.Unlock()

	txs := make([]*models.Transaction, 0, len(dispatches))
	for _, d := range dispatches {
		tx := &models.Transaction{
			ID:          store.NewID(),
			Type:        models.TransactionIncome,
			Description: "Despacho a " + d.Recipient,
			Amount:      d.TotalAmount,
			Timestamp:   d.Timestamp,
		}
		txs = append(txs, tx)
	}

	r.Store.Dispatches = append(dispatches, r.Store.Dispatches...)
	r.Store.Transactions = append(txs, r.Store.Transactions...)

	for productID, row := range snapshot.Cells {
		cur := r.Store.Draft.Cells[productID]
		if cur == nil {
			continue
		}
		for destIdx, v := range row {
			if cur[destIdx] == v {
				delete(cur, destIdx)
			}
		}
		if len(cur) == 0 {
			delete(r.Store.Draft.Cells, productID)
		}
	}

	cloned := make([]*models.Transaction, 0, len(txs))
	for _, tx := range txs {
		cp := *tx
		cloned = append(cloned, &cp)
	}
	return cloned
}

// ApplyReturn records returned weight against one line of an open dispatch
// and recomputes its totals.
func (r *DispatchRepository) ApplyReturn(dispatchID, productID string, returnedKg float64) (*models.Dispatch, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	d := r.find(dispatchID)
	if d == nil {
		return nil, models.ErrDispatchNotFound
	}
	if d.Closed {
		return nil, models.ErrDispatchClosed
	}
	item := d.Item(productID)
	if item == nil {
		return nil, models.ErrProductNotFound
	}
	item.ApplyReturn(returnedKg)
	d.RecomputeTotals()
	return cloneDispatch(d), nil
}

// SetCloseField writes one settlement field, allocating the close data on
// first touch with the given default exchange rate.
func (r *DispatchRepository) SetCloseField(dispatchID, field string, value, defaultRate float64) (*models.Dispatch, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	d := r.find(dispatchID)
	if d == nil {
		return nil, models.ErrDispatchNotFound
	}
	if d.Closed {
		return nil, models.ErrDispatchClosed
	}
	if d.CloseData == nil {
		d.CloseData = models.NewCloseData(defaultRate)
	}
	if !d.CloseData.SetField(field, value) {
		return nil, models.ErrUnknownCloseField
	}
	return cloneDispatch(d), nil
}

// Close marks a dispatch settled. Closing is terminal; further returns and
// close-data edits are rejected.
func (r *DispatchRepository) Close(dispatchID string, defaultRate float64) (*models.Dispatch, error) {
	r.Store.Lock()
	defer r.Store.Unlock()

	d := r.find(dispatchID)
	if d == nil {
		return nil, models.ErrDispatchNotFound
	}
	if d.Closed {
		return nil, models.ErrDispatchClosed
	}
	if d.CloseData == nil {
		d.CloseData = models.NewCloseData(defaultRate)
	}
	d.Closed = true
	now := time.Now()
	d.ClosedAt = &now
	return cloneDispatch(d), nil
}

// GetDraft returns a deep copy of the working grid.
func (r *DispatchRepository) GetDraft() models.DispatchDraft {
	r.Store.RLock()
	defer r.Store.RUnlock()
	return r.Store.Draft.Clone()
}

// ReplaceDraft swaps the whole grid, used when the capture screen renames
// the batch or edits destination columns.
func (r *DispatchRepository) ReplaceDraft(draft models.DispatchDraft) models.DispatchDraft {
	r.Store.Lock()
	defer r.Store.Unlock()

	r.Store.Draft = draft.Clone()
	return r.Store.Draft.Clone()
}

// SetDraftCell writes one cell of the grid.
func (r *DispatchRepository) SetDraftCell(productID string, destination int, value string) models.DispatchDraft {
	r.Store.Lock()
	defer r.Store.Unlock()

	r.Store.Draft.SetCell(productID, destination, value)
	return r.Store.Draft.Clone()
}

// find must be called with the store lock held.
func (r *DispatchRepository) find(id string) *models.Dispatch {
	for _, d := range r.Store.Dispatches {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func cloneDispatch(d *models.Dispatch) *models.Dispatch {
	cp := *d
	cp.Items = make([]models.DispatchItem, len(d.Items))
	copy(cp.Items, d.Items)
	if d.CloseData != nil {
		cd := *d.CloseData
		cp.CloseData = &cd
	}
	if d.ClosedAt != nil {
		t := *d.ClosedAt
		cp.ClosedAt = &t
	}
	return &cp
}
