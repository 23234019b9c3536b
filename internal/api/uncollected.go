package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// UncollectedHandler handles uncollected and advance payments.
type UncollectedHandler struct {
	store *store.Store
}

// NewUncollectedHandler creates a new UncollectedHandler.
func NewUncollectedHandler(s *store.Store) *UncollectedHandler {
	return &UncollectedHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/uncollected-advance-payments.
// @Summary List uncollected and advance payments
// @Tags uncollected-advance-payments
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Success 200 {array} models.UncollectedAdvancePayment
// @Router /properties/{propertyId}/uncollected-advance-payments [get]
func (h *UncollectedHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	payments, err := h.store.ListUncollectedPayments(r.Context(), propertyID(r), p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list uncollected payments")
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// Create handles POST /api/properties/{propertyId}/uncollected-advance-payments.
// @Summary Record an uncollected or advance payment
// @Tags uncollected-advance-payments
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreateUncollectedRequest true "Payment"
// @Success 201 {object} models.UncollectedAdvancePayment
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/uncollected-advance-payments [post]
func (h *UncollectedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUncollectedRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	payment, err := h.store.CreateUncollectedPayment(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create uncollected payment")
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}
