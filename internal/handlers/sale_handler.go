package handlers

import (
	"encoding/json"
	"net/http"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/services"
	"pescaderia-backend/pkg/utils"
)

type SaleHandler struct {
	Service *services.SalesService
}

func NewSaleHandler(service *services.SalesService) *SaleHandler {
	return &SaleHandler{Service: service}
}

func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := h.Service.Checkout(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.ListSales())
}

func (h *SaleHandler) SalesByHour(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.SalesByHour())
}
