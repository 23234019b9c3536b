package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// UtilitiesHandler handles utility expense ledger endpoints.
type UtilitiesHandler struct {
	store *store.Store
}

// NewUtilitiesHandler creates a new UtilitiesHandler.
func NewUtilitiesHandler(s *store.Store) *UtilitiesHandler {
	return &UtilitiesHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/utility-expenses.
// @Summary List utility expenses
// @Tags utility-expenses
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {array} models.UtilityExpense
// @Router /properties/{propertyId}/utility-expenses [get]
func (h *UtilitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.store.ListUtilityExpenses(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list utility expenses")
		return
	}
	writeJSON(w, http.StatusOK, expenses)
}

// Create handles POST /api/properties/{propertyId}/utility-expenses.
// @Summary Record a utility expense
// @Tags utility-expenses
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.UtilityExpenseRequest true "Utility expense"
// @Success 201 {object} models.UtilityExpense
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/utility-expenses [post]
func (h *UtilitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UtilityExpenseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	expense, err := h.store.CreateUtilityExpense(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create utility expense")
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// Update handles PUT /api/properties/{propertyId}/utility-expenses/{id}.
// @Summary Replace a utility expense
// @Tags utility-expenses
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param id path int true "Utility expense ID"
// @Param request body models.UtilityExpenseRequest true "Utility expense"
// @Success 200 {object} models.UtilityExpense
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /properties/{propertyId}/utility-expenses/{id} [put]
func (h *UtilitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id", "utility expense ID")
	if !ok {
		return
	}

	var req models.UtilityExpenseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	expense, err := h.store.UpdateUtilityExpense(r.Context(), propertyID(r), id, &req)
	if err != nil {
		writeStoreError(w, r, err, "Utility expense not found", "Failed to update utility expense")
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

// Delete handles DELETE /api/properties/{propertyId}/utility-expenses/{id}.
func (h *UtilitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id", "utility expense ID")
	if !ok {
		return
	}

	if err := h.store.DeleteUtilityExpense(r.Context(), propertyID(r), id); err != nil {
		writeStoreError(w, r, err, "Utility expense not found", "Failed to delete utility expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
