package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/internal/services"
	"pescaderia-backend/pkg/utils"
)

type ProductHandler struct {
	Service *services.CatalogService
}

func NewProductHandler(service *services.CatalogService) *ProductHandler {
	return &ProductHandler{Service: service}
}

// ListProducts returns the catalog, optionally filtered by ?q= name search.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	utils.JSON(w, http.StatusOK, h.Service.ListProducts(query))
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	product, err := h.Service.GetProduct(vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	product, err := h.Service.SetPrice(vars["id"], req.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req models.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vars := mux.Vars(r)
	product, err := h.Service.AdjustStock(vars["id"], req.DeltaKg)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, product)
}
