package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/settings"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/report"
)

// ReportSettingsHandler handles per-property report settings and memos.
type ReportSettingsHandler struct {
	settings *settings.Store
}

// NewReportSettingsHandler creates a new ReportSettingsHandler.
func NewReportSettingsHandler(rs *settings.Store) *ReportSettingsHandler {
	return &ReportSettingsHandler{settings: rs}
}

// Get handles GET /api/properties/{propertyId}/report-settings.
// @Summary Report settings
// @Description Falls back to the configured defaults when the property has none.
// @Tags report
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {object} report.Settings
// @Router /properties/{propertyId}/report-settings [get]
func (h *ReportSettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rs, err := h.settings.ReportSettings(propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to load report settings")
		return
	}
	writeJSON(w, http.StatusOK, rs)
}

// Put handles PUT /api/properties/{propertyId}/report-settings.
// @Summary Replace report settings
// @Tags report
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param request body report.Settings true "Settings"
// @Success 200 {object} report.Settings
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/report-settings [put]
func (h *ReportSettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	var rs report.Settings
	if !decodeRequest(w, r, &rs) {
		return
	}

	pid := propertyID(r)
	if err := h.settings.PutReportSettings(pid, &rs); err != nil {
		writeStoreError(w, r, err, "", "Failed to save report settings")
		return
	}

	saved, err := h.settings.ReportSettings(pid)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to load report settings")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// Memos handles GET /api/properties/{propertyId}/report-memos.
// @Summary Report memos
// @Tags report
// @Produce json
// @Param propertyId path int true "Property ID"
// @Success 200 {array} models.ReportMemo
// @Router /properties/{propertyId}/report-memos [get]
func (h *ReportSettingsHandler) Memos(w http.ResponseWriter, r *http.Request) {
	memos, err := h.settings.Memos(propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list memos")
		return
	}
	writeJSON(w, http.StatusOK, memos)
}

// GetMemo handles GET /api/properties/{propertyId}/report-memos/{field}.
func (h *ReportSettingsHandler) GetMemo(w http.ResponseWriter, r *http.Request) {
	field, ok := memoField(w, r)
	if !ok {
		return
	}

	memo, err := h.settings.Memo(propertyID(r), field)
	if errors.Is(err, settings.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "not_found", "Memo not found")
		return
	}
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to get memo")
		return
	}
	writeJSON(w, http.StatusOK, memo)
}

// PutMemo handles PUT /api/properties/{propertyId}/report-memos/{field}.
// @Summary Set a report memo
// @Tags report
// @Accept json
// @Produce json
// @Param propertyId path int true "Property ID"
// @Param field path string true "Report field"
// @Param request body models.UpdateMemoRequest true "Memo"
// @Success 200 {object} models.ReportMemo
// @Failure 400 {object} ErrorResponse
// @Router /properties/{propertyId}/report-memos/{field} [put]
func (h *ReportSettingsHandler) PutMemo(w http.ResponseWriter, r *http.Request) {
	field, ok := memoField(w, r)
	if !ok {
		return
	}

	var req models.UpdateMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	memo, err := h.settings.PutMemo(propertyID(r), field, req.Value)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to save memo")
		return
	}
	writeJSON(w, http.StatusOK, memo)
}

func memoField(w http.ResponseWriter, r *http.Request) (string, bool) {
	field, err := url.PathUnescape(chi.URLParam(r, "field"))
	if err != nil || field == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Invalid memo field")
		return "", false
	}
	return field, true
}
