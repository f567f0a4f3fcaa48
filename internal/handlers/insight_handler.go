package handlers

import (
	"net/http"

	"pescaderia-backend/internal/services"
	"pescaderia-backend/pkg/utils"
)

type InsightHandler struct {
	Service *services.InsightService
}

func NewInsightHandler(service *services.InsightService) *InsightHandler {
	return &InsightHandler{Service: service}
}

// GetInsights returns strategic recommendations for the current inventory.
// Failures degrade to a static list, so this endpoint never errors.
func (h *InsightHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Service.InventoryInsights(r.Context()))
}
