package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/services"
	"pescaderia-backend/pkg/utils"
)

type DispatchHandler struct {
	Service *services.DispatchService
	Reports *services.ReportService
}

func NewDispatchHandler(service *services.DispatchService, reports *services.ReportService) *DispatchHandler {
	return &DispatchHandler{Service: service, Reports: reports}
}

func (h *DispatchHandler) ListDispatches(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListDispatches())
}

func (h *DispatchHandler) GetDispatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dispatch, err := h.Service.GetDispatch(vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, dispatch)
}

func (h *DispatchHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.GetDraft())
}

// ReplaceDraft swaps the whole working grid: batch name, destination columns
// and cells.
func (h *DispatchHandler) ReplaceDraft(w http.ResponseWriter, r *http.Request) {
	var draft models.DispatchDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.ReplaceDraft(draft))
}

func (h *DispatchHandler) SetDraftCell(w http.ResponseWriter, r *http.Request) {
	var req models.SetDraftCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	utils.JSON(w, http.StatusOK, h.Service.SetDraftCell(&req))
}

// CommitDraft saves the grid as dispatches and clears it.
func (h *DispatchHandler) CommitDraft(w http.ResponseWriter, r *http.Request) {
	dispatches, err := h.Service.CommitDraft()
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, dispatches)
}

func (h *DispatchHandler) ApplyReturn(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	dispatch, err := h.Service.ApplyReturn(vars["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, dispatch)
}

func (h *DispatchHandler) SetCloseField(w http.ResponseWriter, r *http.Request) {
	var req models.SetCloseFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	dispatch, err := h.Service.SetCloseField(vars["id"], vars["field"], req.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, dispatch)
}

func (h *DispatchHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	settlement, err := h.Service.Settlement(vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, settlement)
}

func (h *DispatchHandler) CloseDispatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dispatch, err := h.Service.Close(vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, dispatch)
}

// SettlementPDF streams the settlement sheet as a PDF download.
func (h *DispatchHandler) SettlementPDF(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pdf, err := h.Reports.GenerateSettlementPDF(vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=cuadre-%s.pdf", vars["id"]))
	w.Write(pdf)
}
