package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/repositories"
	"pescaderia-backend/internal/timeutil"
)

type LedgerService struct {
	Repo *repositories.TransactionRepository
}

func NewLedgerService(repo *repositories.TransactionRepository) *LedgerService {
	return &LedgerService{Repo: repo}
}

func (s *LedgerService) ListTransactions(txType models.TransactionType) []*models.Transaction {
	return s.Repo.List(txType)
}

func (s *LedgerService) Summary() models.LedgerSummary {
	return s.Repo.Summary()
}

// ExportCSV renders the whole ledger as CSV, newest first, timestamps in
// local market time.
func (s *LedgerService) ExportCSV() ([]byte, error) {
	txs := s.Repo.List("")

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ID", "Tipo", "Descripcion", "Monto", "Fecha"}); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		record := []string{
			tx.ID,
			string(tx.Type),
			tx.Description,
			fmt.Sprintf("%.2f", tx.Amount),
			timeutil.In(tx.Timestamp).Format("02/01/2006 15:04"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
