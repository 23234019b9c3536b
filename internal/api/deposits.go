package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// DepositsHandler handles deposit ledger endpoints.
type DepositsHandler struct {
	store *store.Store
}

// NewDepositsHandler creates a new DepositsHandler.
func NewDepositsHandler(s *store.Store) *DepositsHandler {
	return &DepositsHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/deposit.
// @Summary List deposits
// @Tags deposit
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {array} models.Deposit
// @Router /properties/{propertyId}/deposit [get]
func (h *DepositsHandler) List(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.store.ListDeposits(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list deposits")
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}

// Create handles POST /api/properties/{propertyId}/deposit.
// @Summary Record a deposit
// @Tags deposit
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.DepositRequest true "Deposit"
// @Success 201 {object} models.Deposit
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/deposit [post]
func (h *DepositsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.DepositRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	deposit, err := h.store.CreateDeposit(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create deposit")
		return
	}
	writeJSON(w, http.StatusCreated, deposit)
}

// Update handles PUT /api/properties/{propertyId}/deposit/{id}.
// @Summary Replace a deposit
// @Tags deposit
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param id path int true "Deposit ID"
// @Param request body models.DepositRequest true "Deposit"
// @Success 200 {object} models.Deposit
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{propertyId}/deposit/{id} [put]
func (h *DepositsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id", "deposit ID")
	if !ok {
		return
	}

	var req models.DepositRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	deposit, err := h.store.UpdateDeposit(r.Context(), propertyID(r), id, &req)
	if err != nil {
		writeStoreError(w, r, err, "Deposit not found", "Failed to update deposit")
		return
	}
	writeJSON(w, http.StatusOK, deposit)
}

// Delete handles DELETE /api/properties/{propertyId}/deposit/{id}.
func (h *DepositsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id", "deposit ID")
	if !ok {
		return
	}

	if err := h.store.DeleteDeposit(r.Context(), propertyID(r), id); err != nil {
		writeStoreError(w, r, err, "Deposit not found", "Failed to delete deposit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
