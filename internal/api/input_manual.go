package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// InputManualHandler handles the monthly input checklist.
type InputManualHandler struct {
	store *store.Store
}

// NewInputManualHandler creates a new InputManualHandler.
func NewInputManualHandler(s *store.Store) *InputManualHandler {
	return &InputManualHandler{store: s}
}

// List handles GET /api/properties/{propertyId}/input-manual.
// @Summary List checklist entries
// @Tags input-manual
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param year query int false "Year"
// @Param month query int false "Month"
// @Success 200 {array} models.InputManualEntry
// @Router /properties/{propertyId}/input-manual [get]
func (h *InputManualHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}

	entries, err := h.store.ListInputManuals(r.Context(), propertyID(r), p)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list input manual")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Create handles POST /api/properties/{propertyId}/input-manual.
// @Summary Add a checklist entry
// @Tags input-manual
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body models.CreateInputManualRequest true "Entry"
// @Success 201 {object} models.InputManualEntry
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/input-manual [post]
func (h *InputManualHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInputManualRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	entry, err := h.store.CreateInputManual(r.Context(), propertyID(r), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create input manual entry")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// Years handles GET /api/properties/{propertyId}/input-manual/years.
func (h *InputManualHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.store.InputManualYears(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list years")
		return
	}
	writeJSON(w, http.StatusOK, years)
}

// Months handles GET /api/properties/{propertyId}/input-manual/months.
func (h *InputManualHandler) Months(w http.ResponseWriter, r *http.Request) {
	p, ok := queryPeriod(w, r)
	if !ok {
		return
	}
	if p.Year == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "year is required")
		return
	}

	months, err := h.store.InputManualMonths(r.Context(), propertyID(r), p.Year)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list months")
		return
	}
	writeJSON(w, http.StatusOK, months)
}
