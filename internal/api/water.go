package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// WaterHandler handles water meter endpoints.
type WaterHandler struct {
	store *store.Store
}

// NewWaterHandler creates a new WaterHandler.
func NewWaterHandler(s *store.Store) *WaterHandler {
	return &WaterHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/water-fees.
// @Summary List water meter readings
// @Tags water-fees
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {array} models.WaterFeeReading
// @Router /properties/{propertyId}/water-fees [get]
func (h *WaterHandler) List(w http.ResponseWriter, r *http.Request) {
	readings, err := h.store.ListWaterFees(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list water fees")
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

// Create handles POST /api/properties/{propertyId}/water-fees.
// @Summary Record a meter reading
// @Description previousReading defaults to the unit's last recorded currentReading.
// @Tags water-fees
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreateWaterFeeRequest true "Reading"
// @Success 201 {object} models.WaterFeeReading
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/water-fees [post]
func (h *WaterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWaterFeeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	reading, err := h.store.CreateWaterFee(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create water fee")
		return
	}
	writeJSON(w, http.StatusCreated, reading)
}
