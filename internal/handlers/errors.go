package handlers

import (
	"errors"
	"net/http"

	"pescaderia-backend/internal/models"
	"pescaderia-backend/pkg/utils"
)

// writeError maps domain sentinels to status codes. Unknown errors surface
// as 500 without leaking internals.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrDispatchNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrDispatchClosed):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrNothingToSave),
		errors.Is(err, models.ErrMissingProvider),
		errors.Is(err, models.ErrNonPositiveQuantity),
		errors.Is(err, models.ErrNonPositiveCost),
		errors.Is(err, models.ErrUnknownCloseField),
		errors.Is(err, models.ErrEmptyCart):
		utils.Error(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
