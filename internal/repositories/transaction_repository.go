package repositories

import (
	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/store"
)

type TransactionRepository struct {
	Store *store.Store
}

func NewTransactionRepository(s *store.Store) *TransactionRepository {
	return &TransactionRepository{Store: s}
}

// List returns the ledger newest first, optionally filtered by entry type.
func (r *TransactionRepository) List(txType models.TransactionType) []*models.Transaction {
	r.Store.RLock()
	defer r.Store.RUnlock()

	out := make([]*models.Transaction, 0, len(r.Store.Transactions))
	for _, tx := range r.Store.Transactions {
		if txType != "" && tx.Type != txType {
			continue
		}
		cp := *tx
		out = append(out, &cp)
	}
	return out
}

// Summary aggregates the whole ledger.
func (r *TransactionRepository) Summary() models.LedgerSummary {
	r.Store.RLock()
	defer r.Store.RUnlock()

	var sum models.LedgerSummary
	for _, tx := range r.Store.Transactions {
		switch tx.Type {
		case models.TransactionIncome:
			sum.TotalIncome += tx.Amount
		case models.TransactionExpense:
			sum.TotalExpense += tx.Amount
		}
		sum.EntryCount++
	}
	sum.Balance = sum.TotalIncome - sum.TotalExpense
	return sum
}
