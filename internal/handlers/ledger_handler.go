package handlers

import (
	"net/http"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/services"
	"pescaderia-backend/pkg/utils"
)

type LedgerHandler struct {
	Service *services.LedgerService
}

func NewLedgerHandler(service *services.LedgerService) *LedgerHandler {
	return &LedgerHandler{Service: service}
}

// ListTransactions returns the ledger newest first; ?type=income|expense
// filters by entry type.
func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txType := models.TransactionType(r.URL.Query().Get("type"))
	if txType != "" && txType != models.TransactionIncome && txType != models.TransactionExpense {
		utils.Error(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.ListTransactions(txType))
}

func (h *LedgerHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.Summary())
}

// ExportCSV streams the whole ledger as a CSV download.
func (h *LedgerHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ExportCSV()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=finanzas.csv")
	w.Write(data)
}
