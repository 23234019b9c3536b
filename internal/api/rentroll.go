package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// RentRollHandler handles rent roll endpoints.
type RentRollHandler struct {
	store *store.Store
}

// NewRentRollHandler creates a new RentRollHandler.
func NewRentRollHandler(s *store.Store) *RentRollHandler {
	return &RentRollHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/rentroll.
// @Summary List the rent roll
// @Description Optional year/month/day narrow the entries by createdAt.
// @Tags rentroll
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Success 200 {array} models.RentRollEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{propertyId}/rentroll [get]
func (h *RentRollHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	entries, err := h.store.ListRentRolls(r.Context(), propertyID(r), p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list rent roll")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/properties/{propertyId}/rentroll.
// @Summary Add a unit to the rent roll
// @Tags rentroll
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreateRentRollRequest true "Rent roll entry"
// @Success 201 {object} models.RentRollEntry
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/rentroll [post]
func (h *RentRollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRentRollRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	entry, err := h.store.CreateRentRoll(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create rent roll entry")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
