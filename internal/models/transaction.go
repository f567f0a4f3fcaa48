package models

import "time"

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one append-only ledger entry. Entries are derived from
// committed business events (dispatch batches, purchases, counter sales) and
// are never edited or deleted.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
}

// LedgerSummary aggregates the ledger by entry type.
type LedgerSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
	EntryCount   int     `json:"entry_count"`
}
